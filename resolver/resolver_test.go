package resolver

import (
	"bytes"
	"encoding/hex"
	"testing"

	"xdao.co/chainreg/abi"
	"xdao.co/chainreg/namecodec"
	"xdao.co/chainreg/registry"
	"xdao.co/chainreg/storage/memkv"
)

var (
	registrar  = mustPrincipal("0x01")
	ownerA     = mustPrincipal("0xaa")
	optimismID = []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x01, 0x0a, 0x00}
)

func mustPrincipal(s string) registry.Principal {
	p, err := registry.ParsePrincipal(s)
	if err != nil {
		panic(err)
	}
	return p
}

// newFixture returns a registry with "optimism" registered and a resolver
// over it, plus the wire form of a name whose first label is "optimism".
func newFixture(t *testing.T) (*registry.Registry, *Resolver, []byte, namecodec.Node) {
	t.Helper()
	reg, err := registry.New(memkv.New(), testOptions())
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	h, err := reg.Register("optimism", ownerA, optimismID, registrar)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	name, err := namecodec.Encode("optimism.cid.eth")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return reg, New(reg), name, h
}

func testOptions() registry.Options {
	return registry.Options{Registrar: registrar}
}

func TestResolve_AddrDefaultCoinType(t *testing.T) {
	reg, res, name, h := newFixture(t)
	addr := bytes.Repeat([]byte{0xa1}, 20)
	if err := reg.SetAddr(h, addr, ownerA); err != nil {
		t.Fatalf("SetAddr: %v", err)
	}

	out, err := res.Resolve(name, NewAddrQuery(h))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got, err := abi.NewReader(out).Address()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got[:], addr) {
		t.Fatalf("addr = %x, want %x", got, addr)
	}
}

func TestResolve_AddrWithCoinType(t *testing.T) {
	reg, res, name, h := newFixture(t)
	v := []byte{1, 2, 3, 4, 5}
	if err := reg.SetAddrForCoin(h, 0, v, ownerA); err != nil {
		t.Fatalf("SetAddrForCoin: %v", err)
	}

	out, err := res.Resolve(name, NewAddrCoinQuery(h, 0))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got, err := abi.DecodeBytes(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, v) {
		t.Fatalf("addr = %x, want %x", got, v)
	}

	// Unset coin type answers empty, not an error.
	out, err = res.Resolve(name, NewAddrCoinQuery(h, 7))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, _ := abi.DecodeBytes(out); len(got) != 0 {
		t.Fatalf("unset coin type = %x, want empty", got)
	}
}

func TestResolve_ContentHash(t *testing.T) {
	reg, res, name, h := newFixture(t)
	ch := bytes.Repeat([]byte{0xc1}, 36)
	if err := reg.SetContentHash(h, ch, ownerA); err != nil {
		t.Fatalf("SetContentHash: %v", err)
	}
	out, err := res.Resolve(name, NewContentHashQuery(h))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got, err := abi.DecodeBytes(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, ch) {
		t.Fatalf("contenthash mismatch")
	}
}

func TestResolve_TextRecord(t *testing.T) {
	reg, res, name, h := newFixture(t)
	if err := reg.SetText(h, "url", "https://optimism.example", ownerA); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	out, err := res.Resolve(name, NewTextQuery(h, "url"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got, err := abi.DecodeString(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != "https://optimism.example" {
		t.Fatalf("text = %q", got)
	}

	out, _ = res.Resolve(name, NewTextQuery(h, "missing"))
	if got, _ := abi.DecodeString(out); got != "" {
		t.Fatalf("missing key = %q, want empty", got)
	}
}

func TestResolve_ChainIDTextOverride(t *testing.T) {
	reg, res, name, h := newFixture(t)
	// A directly stored value under the reserved key must be shadowed.
	if err := reg.SetText(h, KeyChainID, "forged", ownerA); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	out, err := res.Resolve(name, NewTextQuery(h, KeyChainID))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got, err := abi.DecodeString(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != hex.EncodeToString(optimismID) {
		t.Fatalf("chain-id text = %q, want %s", got, hex.EncodeToString(optimismID))
	}
}

func TestResolve_ChainIDDataOverride(t *testing.T) {
	reg, res, name, h := newFixture(t)
	if err := reg.SetData(h, []byte(KeyChainID), []byte("forged"), ownerA); err != nil {
		t.Fatalf("SetData: %v", err)
	}
	out, err := res.Resolve(name, NewDataQuery(h, []byte(KeyChainID)))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got, err := abi.DecodeBytes(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, optimismID) {
		t.Fatalf("chain-id data = %x, want %x", got, optimismID)
	}
}

func TestResolve_WildcardUsesFirstLabelOnly(t *testing.T) {
	reg, res, _, h := newFixture(t)
	if err := reg.SetText(h, "url", "https://optimism.example", ownerA); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	deep, err := namecodec.Encode("optimism.anything.else.entirely")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := res.Resolve(deep, NewTextQuery(h, "url"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, _ := abi.DecodeString(out); got != "https://optimism.example" {
		t.Fatalf("subname did not resolve through first label: %q", got)
	}
}

func TestResolve_UnknownSelectorAnswersEmpty(t *testing.T) {
	_, res, name, _ := newFixture(t)
	out, err := res.Resolve(name, []byte{0xde, 0xad, 0xbe, 0xef})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, derr := abi.DecodeBytes(out); derr != nil || len(got) != 0 {
		t.Fatalf("unknown selector: got %x err=%v, want encoded empty", got, derr)
	}

	// A payload too short to hold a selector is also answered empty.
	out, err = res.Resolve(name, []byte{0x01})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, _ := abi.DecodeBytes(out); len(got) != 0 {
		t.Fatalf("short payload: got %x, want empty", got)
	}
}

func TestResolve_MalformedNameFails(t *testing.T) {
	_, res, _, h := newFixture(t)
	_, err := res.Resolve([]byte{0x09, 'x'}, NewTextQuery(h, "url"))
	if !namecodec.IsMalformed(err) {
		t.Fatalf("got err=%v, want malformed", err)
	}
}

func TestResolve_HashedLabelQuery(t *testing.T) {
	reg, res, _, h := newFixture(t)
	if err := reg.SetText(h, "url", "https://optimism.example", ownerA); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	// Address the same label through its hashed literal.
	lit := "[" + hex.EncodeToString(h[:]) + "]"
	name := append([]byte{namecodec.HashedLabelSize}, lit...)
	name = append(name, 0)

	out, err := res.Resolve(name, NewTextQuery(h, "url"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, _ := abi.DecodeString(out); got != "https://optimism.example" {
		t.Fatalf("hashed-label query = %q", got)
	}
}
