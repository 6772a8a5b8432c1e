package storage

import "fmt"

// NamedStore associates a Store with a stable backend name, for
// multi-backend orchestration that reports per-backend outcomes.
type NamedStore struct {
	Name  string
	Store Store
}

// ReplicatingStore mirrors every batch to all configured backends.
//
// Reads fall back in order. A batch is validated once up front; a failure on
// any backend aborts with that backend's error. Atomicity across backends is
// NOT guaranteed — a backend that already committed stays committed — so this
// is a mirroring tool, not a distributed transaction.
type ReplicatingStore struct {
	Backends []NamedStore
}

var _ Store = (*ReplicatingStore)(nil)

func (r ReplicatingStore) Apply(batch Batch) error {
	if len(r.Backends) == 0 {
		return fmt.Errorf("storage: ReplicatingStore has no backends")
	}
	if err := batch.Validate(); err != nil {
		return err
	}
	for _, b := range r.Backends {
		if b.Store == nil {
			return fmt.Errorf("storage: nil store for backend %q", b.Name)
		}
		if err := b.Store.Apply(batch); err != nil {
			return fmt.Errorf("storage: backend %q: %w", b.Name, err)
		}
	}
	return nil
}

func (r ReplicatingStore) Get(key []byte) ([]byte, error) {
	for _, b := range r.Backends {
		v, err := b.Store.Get(key)
		if err == nil {
			return v, nil
		}
		if !IsNotFound(err) {
			return nil, err
		}
	}
	return nil, ErrNotFound
}

func (r ReplicatingStore) Has(key []byte) bool {
	for _, b := range r.Backends {
		if b.Store.Has(key) {
			return true
		}
	}
	return false
}

func (r ReplicatingStore) Keys() ([][]byte, error) {
	if len(r.Backends) == 0 {
		return nil, nil
	}
	return r.Backends[0].Store.Keys()
}
