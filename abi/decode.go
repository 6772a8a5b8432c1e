package abi

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrInvalid is the sentinel for every decode failure in this package.
var ErrInvalid = errors.New("abi: invalid encoding")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Reader decodes the argument region of a query payload. Head words are
// consumed in order; dynamic values are followed through their offset word.
type Reader struct {
	args []byte
	pos  int
}

func NewReader(args []byte) *Reader { return &Reader{args: args} }

func (r *Reader) head() ([WordSize]byte, error) {
	var w [WordSize]byte
	if r.pos+WordSize > len(r.args) {
		return w, invalid("argument region truncated at %d", r.pos)
	}
	copy(w[:], r.args[r.pos:])
	r.pos += WordSize
	return w, nil
}

// Word returns the next head word verbatim.
func (r *Reader) Word() ([WordSize]byte, error) { return r.head() }

// Uint64 returns the next head word as a uint64. Values wider than 64 bits
// are rejected rather than truncated.
func (r *Reader) Uint64() (uint64, error) {
	w, err := r.head()
	if err != nil {
		return 0, err
	}
	for _, b := range w[:WordSize-8] {
		if b != 0 {
			return 0, invalid("value exceeds 64 bits")
		}
	}
	return binary.BigEndian.Uint64(w[WordSize-8:]), nil
}

// Address returns the low 20 bytes of the next head word. The high 12 bytes
// are ignored: deriving an address from a word is a deliberate truncation to
// the low-order 160 bits.
func (r *Reader) Address() ([20]byte, error) {
	w, err := r.head()
	if err != nil {
		return [20]byte{}, err
	}
	var a [20]byte
	copy(a[:], w[WordSize-20:])
	return a, nil
}

// Bytes follows the next head word as an offset into the argument region and
// returns the length-prefixed payload found there.
func (r *Reader) Bytes() ([]byte, error) {
	offset, err := r.Uint64()
	if err != nil {
		return nil, err
	}
	if offset > uint64(len(r.args)) || offset+WordSize > uint64(len(r.args)) {
		return nil, invalid("dynamic offset %d out of range", offset)
	}
	size := binary.BigEndian.Uint64(r.args[offset+WordSize-8 : offset+WordSize])
	start := offset + WordSize
	if size > uint64(len(r.args)) || start+size > uint64(len(r.args)) {
		return nil, invalid("dynamic value of %d bytes overruns region", size)
	}
	out := make([]byte, size)
	copy(out, r.args[start:start+size])
	return out, nil
}

// String is Bytes reinterpreted as UTF-8 text.
func (r *Reader) String() (string, error) {
	b, err := r.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeBytes decodes a payload produced by EncodeBytes.
func DecodeBytes(data []byte) ([]byte, error) {
	return NewReader(data).Bytes()
}

// DecodeString decodes a payload produced by EncodeString.
func DecodeString(data []byte) (string, error) {
	return NewReader(data).String()
}

// DecodeBytesPair decodes a payload produced by EncodeBytesPair.
func DecodeBytesPair(data []byte) (a, b []byte, err error) {
	r := NewReader(data)
	if a, err = r.Bytes(); err != nil {
		return nil, nil, err
	}
	if b, err = r.Bytes(); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
