package bundle

import (
	"archive/tar"
	"bytes"
	"testing"

	"xdao.co/chainreg/storage"
	"xdao.co/chainreg/storage/memkv"
)

func seed(t *testing.T) *memkv.Store {
	t.Helper()
	s := memkv.New()
	var b storage.Batch
	b.Put([]byte("own/a"), []byte("alice"))
	b.Put([]byte("cid/a"), []byte{0x00, 0x01, 0x0a})
	b.Put([]byte{0xff, 0x00}, []byte("binary key"))
	if err := s.Apply(b); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	return s
}

func TestExportImportRoundTrip(t *testing.T) {
	src := seed(t)
	var buf bytes.Buffer
	if err := Export(&buf, src); err != nil {
		t.Fatalf("Export: %v", err)
	}

	dst := memkv.New()
	n, err := Import(&buf, dst)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 3 {
		t.Fatalf("Import wrote %d keys, want 3", n)
	}
	for _, key := range [][]byte{[]byte("own/a"), []byte("cid/a"), {0xff, 0x00}} {
		want, _ := src.Get(key)
		got, err := dst.Get(key)
		if err != nil {
			t.Fatalf("Get(%x): %v", key, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("value mismatch for %x", key)
		}
	}
}

func TestExportIsDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := Export(&a, seed(t)); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if err := Export(&b, seed(t)); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatalf("snapshots of identical state differ")
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	if _, err := Import(bytes.NewReader([]byte("not a tar")), memkv.New()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestImportRequiresIndex(t *testing.T) {
	var tarOnly bytes.Buffer
	tw := tar.NewWriter(&tarOnly)
	hdr := &tar.Header{Name: "kv/aa", Mode: 0o444, Size: 1, Typeflag: tar.TypeReg}
	if err := tw.WriteHeader(hdr); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if _, err := tw.Write([]byte{0x01}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := Import(&tarOnly, memkv.New()); err == nil {
		t.Fatalf("tar without index should be rejected")
	}
}
