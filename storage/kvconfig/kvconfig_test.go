package kvconfig

import (
	"os"
	"path/filepath"
	"testing"

	"xdao.co/chainreg/storage"
	"xdao.co/chainreg/storage/kvregistry"

	_ "xdao.co/chainreg/storage/localfs"
	_ "xdao.co/chainreg/storage/memkv"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"empty", Config{}, false},
		{"one backend", Config{Backends: []BackendConfig{{Name: "mem"}}}, true},
		{"missing name", Config{Backends: []BackendConfig{{}}}, false},
		{"duplicate id", Config{Backends: []BackendConfig{{Name: "mem"}, {Name: "mem"}}}, false},
		{"aliased duplicate ok", Config{Backends: []BackendConfig{{Name: "mem"}, {Name: "mem", ID: "mem2"}}}, true},
		{"bad policy", Config{WritePolicy: "quorum", Backends: []BackendConfig{{Name: "mem"}}}, false},
		{"all policy", Config{WritePolicy: "all", Backends: []BackendConfig{{Name: "mem"}}}, true},
	}
	for _, c := range cases {
		err := c.cfg.Validate()
		if c.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
	}
}

func TestLoadFileAndOpen(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "store.json")
	body := `{
	  "write_policy": "all",
	  "backends": [
	    {"name":"localfs", "config":{"localfs-dir":"` + filepath.Join(dir, "kv") + `"}},
	    {"name":"mem"}
	  ]
	}`
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadFile(cfgPath)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	st, closeFn, err := cfg.Open(kvregistry.UsageCLI, "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if closeFn != nil {
		defer func() { _ = closeFn() }()
	}

	var b storage.Batch
	b.Put([]byte("k"), []byte("v"))
	if err := st.Apply(b); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got, err := st.Get([]byte("k"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v" {
		t.Fatalf("got %q", got)
	}
}
