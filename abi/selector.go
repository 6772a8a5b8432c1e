package abi

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Selector is the leading 4-byte method tag of a query payload.
type Selector [4]byte

// ComputeSelector derives the selector for a canonical method signature,
// e.g. "text(bytes32,string)": the first 4 bytes of keccak256(signature).
func ComputeSelector(signature string) Selector {
	d := sha3.NewLegacyKeccak256()
	d.Write([]byte(signature))
	var sum [32]byte
	d.Sum(sum[:0])
	var s Selector
	copy(s[:], sum[:4])
	return s
}

func (s Selector) String() string { return "0x" + hex.EncodeToString(s[:]) }

// Split separates a query payload into its selector and argument region.
// ok is false when the payload is too short to carry a selector.
func Split(query []byte) (s Selector, args []byte, ok bool) {
	if len(query) < 4 {
		return Selector{}, nil, false
	}
	copy(s[:], query[:4])
	return s, query[4:], true
}
