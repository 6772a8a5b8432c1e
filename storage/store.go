package storage

// Store is the transactional key-value repository the registry is bound to.
//
// Contract:
// - Get MUST return ErrNotFound for an absent key.
// - Apply MUST commit the whole batch or none of it.
// - Keys returns every stored key; order is unspecified.
// - Reads never mutate state.
type Store interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) bool
	Apply(batch Batch) error
	Keys() ([][]byte, error)
}

// Entry is one write in a Batch. Delete entries remove the key; removing an
// absent key is not an error.
type Entry struct {
	Key    []byte
	Value  []byte
	Delete bool
}

// Batch is an ordered set of writes committed atomically by Store.Apply.
// Later entries win when a key repeats.
type Batch []Entry

// Put appends a put entry.
func (b *Batch) Put(key, value []byte) {
	*b = append(*b, Entry{Key: key, Value: value})
}

// Del appends a delete entry.
func (b *Batch) Del(key []byte) {
	*b = append(*b, Entry{Key: key, Delete: true})
}

// Validate rejects batches no Store implementation may accept.
func (b Batch) Validate() error {
	for _, e := range b {
		if len(e.Key) == 0 {
			return ErrEmptyKey
		}
	}
	return nil
}
