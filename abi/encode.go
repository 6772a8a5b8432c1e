package abi

import "encoding/binary"

// WordSize is the width of one ABI head word.
const WordSize = 32

func pad32(n int) int { return (n + WordSize - 1) &^ (WordSize - 1) }

// EncodeWord returns v as a single 32-byte word.
func EncodeWord(v [32]byte) []byte {
	out := make([]byte, WordSize)
	copy(out, v[:])
	return out
}

// EncodeUint64 returns v right-aligned in a 32-byte word.
func EncodeUint64(v uint64) []byte {
	out := make([]byte, WordSize)
	binary.BigEndian.PutUint64(out[WordSize-8:], v)
	return out
}

// EncodeAddress returns a 20-byte address right-aligned in a 32-byte word.
func EncodeAddress(a [20]byte) []byte {
	out := make([]byte, WordSize)
	copy(out[WordSize-20:], a[:])
	return out
}

// EncodeBytes encodes b as the sole dynamic return value: an offset word,
// a length word, and the payload right-padded to a word boundary. EncodeBytes
// of an empty slice is the canonical "empty result" encoding.
func EncodeBytes(b []byte) []byte {
	out := make([]byte, 2*WordSize+pad32(len(b)))
	binary.BigEndian.PutUint64(out[WordSize-8:], WordSize)
	binary.BigEndian.PutUint64(out[2*WordSize-8:], uint64(len(b)))
	copy(out[2*WordSize:], b)
	return out
}

// EncodeString encodes s as the sole dynamic return value.
func EncodeString(s string) []byte { return EncodeBytes([]byte(s)) }

// EncodeBytesPair encodes (a, b) as two dynamic values, the framing used by
// resolve(name, query) payloads.
func EncodeBytesPair(a, b []byte) []byte {
	headA := 2 * WordSize
	headB := headA + WordSize + pad32(len(a))
	out := make([]byte, headB+WordSize+pad32(len(b)))
	binary.BigEndian.PutUint64(out[WordSize-8:], uint64(headA))
	binary.BigEndian.PutUint64(out[2*WordSize-8:], uint64(headB))
	binary.BigEndian.PutUint64(out[headA+WordSize-8:], uint64(len(a)))
	copy(out[headA+WordSize:], a)
	binary.BigEndian.PutUint64(out[headB+WordSize-8:], uint64(len(b)))
	copy(out[headB+WordSize:], b)
	return out
}
