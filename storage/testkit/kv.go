package testkit

import (
	"bytes"
	"testing"

	"xdao.co/chainreg/storage"
)

// NewStore constructs a fresh, empty Store instance for a test.
// The returned Store MUST be isolated from other tests.
type NewStore func(t *testing.T) storage.Store

// RunStoreConformance exercises the storage.Store contract against a backend.
func RunStoreConformance(t *testing.T, newStore NewStore) {
	t.Helper()

	t.Run("GetPutRoundTrip", func(t *testing.T) {
		s := newStore(t)
		key := []byte("own/abc")
		want := []byte("hello, chainreg storage")

		var b storage.Batch
		b.Put(key, want)
		if err := s.Apply(b); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}

		got, err := s.Get(key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("Get bytes mismatch: got %q want %q", got, want)
		}
		if !s.Has(key) {
			t.Fatalf("Has returned false after Apply")
		}
	})

	t.Run("MissingKeyNotFound", func(t *testing.T) {
		s := newStore(t)
		if s.Has([]byte("missing")) {
			t.Fatalf("Has returned true for missing key")
		}
		if _, err := s.Get([]byte("missing")); !storage.IsNotFound(err) {
			t.Fatalf("Get missing: got err=%v want ErrNotFound", err)
		}
	})

	t.Run("BatchIsAtomic", func(t *testing.T) {
		s := newStore(t)
		var good storage.Batch
		good.Put([]byte("a"), []byte("1"))
		good.Put([]byte("b"), []byte("2"))
		if err := s.Apply(good); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}

		var bad storage.Batch
		bad.Put([]byte("c"), []byte("3"))
		bad.Put(nil, []byte("4")) // empty key must reject the whole batch
		if err := s.Apply(bad); err == nil {
			t.Fatalf("Apply accepted a batch with an empty key")
		}
		if s.Has([]byte("c")) {
			t.Fatalf("rejected batch left partial state behind")
		}
	})

	t.Run("LastWriteWinsWithinBatch", func(t *testing.T) {
		s := newStore(t)
		var b storage.Batch
		b.Put([]byte("k"), []byte("old"))
		b.Put([]byte("k"), []byte("new"))
		if err := s.Apply(b); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		got, err := s.Get([]byte("k"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != "new" {
			t.Fatalf("got %q, want %q", got, "new")
		}
	})

	t.Run("DeleteRemovesKey", func(t *testing.T) {
		s := newStore(t)
		var b storage.Batch
		b.Put([]byte("k"), []byte("v"))
		if err := s.Apply(b); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		var d storage.Batch
		d.Del([]byte("k"))
		d.Del([]byte("never-existed"))
		if err := s.Apply(d); err != nil {
			t.Fatalf("Apply(delete) failed: %v", err)
		}
		if s.Has([]byte("k")) {
			t.Fatalf("key survived delete")
		}
	})

	t.Run("KeysEnumeratesAll", func(t *testing.T) {
		s := newStore(t)
		var b storage.Batch
		b.Put([]byte{0x00, 0x01}, []byte("binary"))
		b.Put([]byte("text/label/key"), []byte("v"))
		if err := s.Apply(b); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		keys, err := s.Keys()
		if err != nil {
			t.Fatalf("Keys failed: %v", err)
		}
		found := map[string]bool{}
		for _, k := range keys {
			found[string(k)] = true
		}
		if !found[string([]byte{0x00, 0x01})] || !found["text/label/key"] {
			t.Fatalf("Keys missing entries: %v", found)
		}
	})
}
