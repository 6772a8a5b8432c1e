package namecodec

import "golang.org/x/crypto/sha3"

// Node is a 32-byte label or node hash. The zero value identifies the root.
type Node [32]byte

// ZeroNode is the root node hash and the terminator's label hash.
var ZeroNode Node

// IsZero reports whether n is the root/terminator value.
func (n Node) IsZero() bool { return n == ZeroNode }

// LabelHash returns the keccak-256 digest of a label's raw bytes.
func LabelHash(label []byte) Node {
	return keccak256(label)
}

// Combine derives the node for a child label under a parent node:
// keccak256(parent || child), each operand exactly 32 bytes.
func Combine(parent, child Node) Node {
	return keccak256(parent[:], child[:])
}

func keccak256(parts ...[]byte) (out Node) {
	d := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		d.Write(p)
	}
	d.Sum(out[:0])
	return out
}
