// Package abi implements the small slice of contract-ABI encoding the
// resolution protocol needs: 4-byte method selectors, 32-byte head words,
// and dynamic bytes/string values addressed by offset words.
//
// It is deliberately not a general ABI codec; only the shapes used by the
// resolver query surface are supported, and every width/alignment rule is
// explicit (addresses occupy the low 20 bytes of a word, uint64 values the
// low 8, dynamic payloads are right-padded to a 32-byte boundary).
package abi
