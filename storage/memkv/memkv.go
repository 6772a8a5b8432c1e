// Package memkv is the in-memory Store binding used by tests and by
// deployments that do not need persistence.
package memkv

import (
	"sync"

	"xdao.co/chainreg/storage"
)

type Store struct {
	mu sync.RWMutex
	m  map[string][]byte
}

var _ storage.Store = (*Store)(nil)

func New() *Store {
	return &Store{m: make(map[string][]byte)}
}

func (s *Store) Get(key []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[string(key)]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *Store) Has(key []byte) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.m[string(key)]
	return ok
}

// Apply validates the whole batch before touching the map, so a rejected
// batch leaves the store unchanged.
func (s *Store) Apply(batch storage.Batch) error {
	if err := batch.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range batch {
		if e.Delete {
			delete(s.m, string(e.Key))
			continue
		}
		v := make([]byte, len(e.Value))
		copy(v, e.Value)
		s.m[string(e.Key)] = v
	}
	return nil
}

func (s *Store) Keys() ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([][]byte, 0, len(s.m))
	for k := range s.m {
		out = append(out, []byte(k))
	}
	return out, nil
}

// Len reports the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
