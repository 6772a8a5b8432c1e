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

func newReverseFixture(t *testing.T) (*ReverseResolver, []byte, namecodec.Node) {
	t.Helper()
	reg, err := registry.New(memkv.New(), testOptions())
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	h, err := reg.Register("optimism", ownerA, optimismID, registrar)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	// The reverse name's first label is protocol routing filler; any
	// placeholder works.
	name, err := namecodec.Encode("placeholder.reverse")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return NewReverse(reg), name, h
}

func TestReverse_TextChainName(t *testing.T) {
	rev, name, h := newReverseFixture(t)
	key := KeyChainNamePrefix + hex.EncodeToString(optimismID)

	out, err := rev.Resolve(name, NewTextQuery(h, key))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got, err := abi.DecodeString(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != "optimism" {
		t.Fatalf("chain name = %q, want optimism", got)
	}
}

func TestReverse_TextOddNibbleIdentifier(t *testing.T) {
	rev, name, h := newReverseFixture(t)
	// Strip the leading zero nibble: the identifier must right-align.
	full := hex.EncodeToString(optimismID)
	out, err := rev.Resolve(name, NewTextQuery(h, KeyChainNamePrefix+full[1:]))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got, err := abi.DecodeString(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != "optimism" {
		t.Fatalf("odd-nibble chain name = %q, want optimism", got)
	}
}

func TestReverse_TextUnknownIdentifier(t *testing.T) {
	rev, name, h := newReverseFixture(t)
	out, err := rev.Resolve(name, NewTextQuery(h, KeyChainNamePrefix+"deadbeef"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, _ := abi.DecodeString(out); got != "" {
		t.Fatalf("unknown identifier = %q, want empty", got)
	}
}

func TestReverse_TextUnrelatedKey(t *testing.T) {
	rev, name, h := newReverseFixture(t)
	out, err := rev.Resolve(name, NewTextQuery(h, "avatar"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, _ := abi.DecodeString(out); got != "" {
		t.Fatalf("unrelated key = %q, want empty", got)
	}
}

func TestReverse_TextInvalidHexIdentifier(t *testing.T) {
	rev, name, h := newReverseFixture(t)
	out, err := rev.Resolve(name, NewTextQuery(h, KeyChainNamePrefix+"not-hex"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, _ := abi.DecodeString(out); got != "" {
		t.Fatalf("invalid hex = %q, want empty", got)
	}
}

func TestReverse_DataChainName(t *testing.T) {
	rev, name, h := newReverseFixture(t)
	key := append([]byte(KeyChainNamePrefix), optimismID...)

	out, err := rev.Resolve(name, NewDataQuery(h, key))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got, err := abi.DecodeBytes(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, []byte("optimism")) {
		t.Fatalf("chain name = %q, want optimism", got)
	}
}

func TestReverse_DataUnrelatedKey(t *testing.T) {
	rev, name, h := newReverseFixture(t)
	out, err := rev.Resolve(name, NewDataQuery(h, []byte("something-else")))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, _ := abi.DecodeBytes(out); len(got) != 0 {
		t.Fatalf("unrelated key = %x, want empty", got)
	}
}

func TestReverse_UnknownSelectorAnswersEmpty(t *testing.T) {
	rev, name, _ := newReverseFixture(t)
	out, err := rev.Resolve(name, []byte{0xde, 0xad, 0xbe, 0xef})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, _ := abi.DecodeBytes(out); len(got) != 0 {
		t.Fatalf("unknown selector = %x, want empty", got)
	}
}

func TestReverse_MalformedNameFails(t *testing.T) {
	rev, _, h := newReverseFixture(t)
	if _, err := rev.Resolve([]byte{0x09, 'x'}, NewTextQuery(h, "k")); !namecodec.IsMalformed(err) {
		t.Fatalf("got err=%v, want malformed", err)
	}
}
