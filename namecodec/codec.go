package namecodec

import (
	"bytes"
	"encoding/hex"
	"strings"
)

const (
	// Separator splits labels in the textual form and must never appear
	// inside a label.
	Separator = '.'

	// MaxPlainLabel is the longest label the 1-byte length prefix can carry.
	MaxPlainLabel = 255

	// HashedLabelSize is the fixed wire size of a bracketed hashed-label
	// literal: '[' + 64 hex digits + ']'.
	HashedLabelSize = 66
)

// Encode converts a dotted name to its length-prefixed wire form.
//
// Labels longer than MaxPlainLabel bytes are replaced by their hashed-label
// literal. The empty name encodes to the bare terminator [0x00]. An empty
// segment ("a..b", leading or trailing separator) is malformed.
func Encode(name string) ([]byte, error) {
	if name == "" {
		return []byte{0}, nil
	}
	var buf bytes.Buffer
	for _, label := range strings.Split(name, string(Separator)) {
		if label == "" {
			return nil, malformed("encode", buf.Len(), "empty label")
		}
		b := []byte(label)
		if len(b) > MaxPlainLabel {
			h := LabelHash(b)
			b = make([]byte, 0, HashedLabelSize)
			b = append(b, '[')
			b = append(b, hex.EncodeToString(h[:])...)
			b = append(b, ']')
		}
		buf.WriteByte(byte(len(b)))
		buf.Write(b)
	}
	buf.WriteByte(0)
	return buf.Bytes(), nil
}

// Decode converts the length-prefixed wire form back to a dotted name.
//
// The single byte 0x00 decodes to the empty (root) name. Decode fails on a
// length prefix that overruns the buffer, a separator byte inside a label,
// a missing terminator, or trailing bytes after it.
func Decode(dns []byte) (string, error) {
	var sb strings.Builder
	offset := 0
	for {
		if offset >= len(dns) {
			return "", malformed("decode", offset, "missing terminator")
		}
		size := int(dns[offset])
		if size == 0 {
			if offset+1 != len(dns) {
				return "", malformed("decode", offset+1, "trailing bytes after terminator")
			}
			return sb.String(), nil
		}
		if offset+1+size > len(dns) {
			return "", malformed("decode", offset, "length prefix overruns buffer")
		}
		label := dns[offset+1 : offset+1+size]
		if bytes.IndexByte(label, Separator) >= 0 {
			return "", malformed("decode", offset+1, "separator byte inside label")
		}
		if sb.Len() > 0 {
			sb.WriteByte(Separator)
		}
		sb.Write(label)
		offset += 1 + size
	}
}
