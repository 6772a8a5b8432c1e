// Package keys provides key-related helpers for registry signers.
//
// The pure primitives (issuer-key formatting, role-seed derivation, signing
// and verification) are stable. The filesystem-backed KeyStore is a
// local-first convenience for the CLI and may change between releases.
package keys
