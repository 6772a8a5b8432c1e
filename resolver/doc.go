// Package resolver implements the wildcard resolution protocol over the
// chain registry.
//
// A query arrives as a wire-encoded name plus a method payload: a 4-byte
// selector followed by ABI-encoded arguments. The forward resolver serves
// record lookups for the name's first label (wildcard semantics: every
// subname resolves through that one label); the reverse resolver maps chain
// identifiers back to chain names via a reserved key prefix. Unrecognized
// selectors and keys produce an encoded empty value, never an error, so both
// resolvers stay forward-compatible with future method tags.
package resolver
