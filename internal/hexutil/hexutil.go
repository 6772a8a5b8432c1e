// Package hexutil provides hex parsing with an explicit alignment contract.
//
// All parsers here right-align: the value occupies the low-order bytes of the
// destination, and an odd nibble count pads the leading (most significant)
// nibble with zero. This is a numeric contract, not a formatting convenience;
// callers that need a different alignment must not use this package.
package hexutil

import (
	"encoding/hex"
	"fmt"
)

// ParseRightAligned parses s into a freshly allocated byte slice.
// "a" -> [0x0a], "abc" -> [0x0a, 0xbc], "" -> [].
func ParseRightAligned(s string) ([]byte, error) {
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hexutil: invalid hex %q: %w", s, err)
	}
	return b, nil
}

// ParseInto parses s right-aligned into dst. The high-order bytes of dst that
// s does not reach are zeroed. Fails if s needs more bytes than dst holds.
func ParseInto(dst []byte, s string) error {
	v, err := ParseRightAligned(s)
	if err != nil {
		return err
	}
	if len(v) > len(dst) {
		return fmt.Errorf("hexutil: value %d bytes exceeds destination %d bytes", len(v), len(dst))
	}
	for i := range dst[:len(dst)-len(v)] {
		dst[i] = 0
	}
	copy(dst[len(dst)-len(v):], v)
	return nil
}

// Nibble returns the numeric value of one hex digit, or ok=false.
func Nibble(c byte) (v byte, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
