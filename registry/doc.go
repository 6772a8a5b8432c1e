// Package registry maps chain labels to chain identifiers and back, and
// holds the per-label records the resolvers serve.
//
// All state lives in an injected storage.Store. Every mutating operation
// takes the caller's identity explicitly, performs its authorization check,
// and commits its writes as one atomic batch: a failed call leaves the store
// untouched. The forward record (label hash -> chain id, chain name) and the
// reverse index (chain id -> label hash) are always written in the same
// batch.
package registry
