package namecodec

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

func TestEncode_Basic(t *testing.T) {
	got, err := Encode("optimism.cid.eth")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte("\x08optimism\x03cid\x03eth\x00")
	if !bytes.Equal(got, want) {
		t.Fatalf("Encode mismatch:\n got %x\nwant %x", got, want)
	}
}

func TestEncode_EmptyNameIsBareTerminator(t *testing.T) {
	got, err := Encode("")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(got, []byte{0}) {
		t.Fatalf("Encode(\"\") = %x, want 00", got)
	}
}

func TestEncode_EmptySegmentRejected(t *testing.T) {
	for _, name := range []string{".", "a..b", ".a", "a."} {
		if _, err := Encode(name); !IsMalformed(err) {
			t.Fatalf("Encode(%q): got err=%v, want malformed", name, err)
		}
	}
}

func TestEncode_OversizedLabelBecomesHashedLiteral(t *testing.T) {
	long := strings.Repeat("x", 256)
	got, err := Encode(long + ".eth")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got[0] != HashedLabelSize {
		t.Fatalf("first length prefix = %d, want %d", got[0], HashedLabelSize)
	}
	lit := got[1 : 1+HashedLabelSize]
	if lit[0] != '[' || lit[HashedLabelSize-1] != ']' {
		t.Fatalf("literal not bracketed: %q", lit)
	}
	h := LabelHash([]byte(long))
	if string(lit[1:65]) != hex.EncodeToString(h[:]) {
		t.Fatalf("literal hex = %s, want %x", lit[1:65], h)
	}
	// The literal must hash-parse back to the same label hash.
	parsed, _, _, wasHashed, err := ReadLabel(got, 0, true)
	if err != nil {
		t.Fatalf("ReadLabel: %v", err)
	}
	if !wasHashed || parsed != h {
		t.Fatalf("ReadLabel(hashed) = %x wasHashed=%v, want %x true", parsed, wasHashed, h)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	names := []string{
		"",
		"eth",
		"optimism.cid.eth",
		"a.b.c.d.e",
		strings.Repeat("y", 255),
		"xn--espaa-rta.example",
	}
	for _, name := range names {
		enc, err := Encode(name)
		if err != nil {
			t.Fatalf("Encode(%q): %v", name, err)
		}
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(Encode(%q)): %v", name, err)
		}
		if dec != name {
			t.Fatalf("round trip: got %q, want %q", dec, name)
		}
	}
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string][]byte{
		"empty input":          {},
		"missing terminator":   []byte("\x03abc"),
		"prefix overruns":      []byte("\x05ab\x00"),
		"trailing bytes":       []byte("\x03abc\x00zz"),
		"separator in label":   []byte("\x03a.b\x00"),
		"truncated terminator": []byte("\x03abc\x02xy"),
	}
	for desc, dns := range cases {
		if _, err := Decode(dns); !IsMalformed(err) {
			t.Fatalf("%s: got err=%v, want malformed", desc, err)
		}
	}
}

func TestDecode_RootName(t *testing.T) {
	got, err := Decode([]byte{0})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "" {
		t.Fatalf("Decode(00) = %q, want empty", got)
	}
}
