package memkv

import (
	"testing"

	"xdao.co/chainreg/storage"
	"xdao.co/chainreg/storage/testkit"
)

func TestMemKVConformance(t *testing.T) {
	testkit.RunStoreConformance(t, func(t *testing.T) storage.Store {
		return New()
	})
}

func TestGetReturnsCopy(t *testing.T) {
	s := New()
	var b storage.Batch
	b.Put([]byte("k"), []byte("value"))
	if err := s.Apply(b); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	v, err := s.Get([]byte("k"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	v[0] = 'X'
	again, _ := s.Get([]byte("k"))
	if string(again) != "value" {
		t.Fatalf("stored value was mutated through a Get result")
	}
}
