// Package namecodec converts between dotted names and their length-prefixed
// wire encoding, and derives the hashes that identify labels and whole names.
//
// Wire form: each label is emitted as a 1-byte length followed by the label
// bytes, and the sequence is terminated by a zero-length label. A label longer
// than 255 bytes cannot be encoded literally; it is replaced by a fixed
// 66-byte "hashed label" literal, the keccak-256 digest of the label rendered
// as 64 hex digits inside square brackets.
//
// Name identity is positional: a node hash is built bottom-up by combining the
// parent node with each label hash, with the empty (root) name hashing to the
// all-zero value.
package namecodec
