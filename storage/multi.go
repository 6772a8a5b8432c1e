package storage

import "errors"

// FallbackStore provides deterministic, ordered read fallback across multiple
// stores. The first store is authoritative: all writes go to it, and reads
// consult the remaining stores only on ErrNotFound. The tail stores are
// typically read-only seeds (e.g. an imported snapshot).
//
// Callers MUST supply a fixed order; this avoids map-iteration nondeterminism
// and makes the retrieval strategy explicit.
type FallbackStore struct {
	Stores []Store
}

var _ Store = (*FallbackStore)(nil)

func (f FallbackStore) Get(key []byte) ([]byte, error) {
	if len(f.Stores) == 0 {
		return nil, errors.New("storage: FallbackStore has no stores")
	}
	for _, s := range f.Stores {
		v, err := s.Get(key)
		if err == nil {
			return v, nil
		}
		if !IsNotFound(err) {
			return nil, err
		}
	}
	return nil, ErrNotFound
}

func (f FallbackStore) Has(key []byte) bool {
	for _, s := range f.Stores {
		if s.Has(key) {
			return true
		}
	}
	return false
}

func (f FallbackStore) Apply(batch Batch) error {
	if len(f.Stores) == 0 {
		return errors.New("storage: FallbackStore has no stores")
	}
	return f.Stores[0].Apply(batch)
}

// Keys merges keys across all stores, first occurrence wins.
func (f FallbackStore) Keys() ([][]byte, error) {
	seen := make(map[string]bool)
	var out [][]byte
	for _, s := range f.Stores {
		keys, err := s.Keys()
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			if seen[string(k)] {
				continue
			}
			seen[string(k)] = true
			out = append(out, k)
		}
	}
	return out, nil
}
