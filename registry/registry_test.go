package registry

import (
	"bytes"
	"testing"

	"xdao.co/chainreg/namecodec"
	"xdao.co/chainreg/storage/memkv"
)

var (
	registrar = mustPrincipal("0x01")
	ownerA    = mustPrincipal("0xaa")
	opB       = mustPrincipal("0xbb")
	thirdC    = mustPrincipal("0xcc")

	optimismID = []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x01, 0x0a, 0x00}
)

func mustPrincipal(s string) Principal {
	p, err := ParsePrincipal(s)
	if err != nil {
		panic(err)
	}
	return p
}

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := New(memkv.New(), Options{Registrar: registrar})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func register(t *testing.T, r *Registry, label string, owner Principal, chainID []byte) namecodec.Node {
	t.Helper()
	h, err := r.Register(label, owner, chainID, registrar)
	if err != nil {
		t.Fatalf("Register(%q): %v", label, err)
	}
	return h
}

func TestUnregisteredLabelIsEmptyAndUnauthorized(t *testing.T) {
	r := newRegistry(t)
	h := namecodec.LabelHash([]byte("never-registered"))

	id, err := r.ChainID(h)
	if err != nil {
		t.Fatalf("ChainID: %v", err)
	}
	if len(id) != 0 {
		t.Fatalf("ChainID = %x, want empty", id)
	}
	for _, p := range []Principal{ownerA, opB, registrar} {
		ok, err := r.IsAuthorized(h, p)
		if err != nil {
			t.Fatalf("IsAuthorized: %v", err)
		}
		if ok {
			t.Fatalf("%s authorized on unclaimed label", p)
		}
	}
}

func TestRegisterAndLookup(t *testing.T) {
	r := newRegistry(t)
	h := register(t, r, "optimism", ownerA, optimismID)

	if h != namecodec.LabelHash([]byte("optimism")) {
		t.Fatalf("returned hash mismatch")
	}
	id, err := r.ChainID(h)
	if err != nil {
		t.Fatalf("ChainID: %v", err)
	}
	if !bytes.Equal(id, optimismID) {
		t.Fatalf("ChainID = %x, want %x", id, optimismID)
	}
	name, err := r.ChainName(optimismID)
	if err != nil {
		t.Fatalf("ChainName: %v", err)
	}
	if name != "optimism" {
		t.Fatalf("ChainName = %q, want optimism", name)
	}
	owner, err := r.Owner(h)
	if err != nil {
		t.Fatalf("Owner: %v", err)
	}
	if owner != ownerA {
		t.Fatalf("Owner = %s, want %s", owner, ownerA)
	}
}

func TestRegisterDuplicateFailsAndPreservesState(t *testing.T) {
	r := newRegistry(t)
	h := register(t, r, "optimism", ownerA, optimismID)

	_, err := r.Register("optimism", opB, []byte{0xde, 0xad}, registrar)
	if !IsDuplicate(err) {
		t.Fatalf("second Register: got err=%v, want duplicate", err)
	}
	owner, _ := r.Owner(h)
	if owner != ownerA {
		t.Fatalf("owner changed by failed Register")
	}
	id, _ := r.ChainID(h)
	if !bytes.Equal(id, optimismID) {
		t.Fatalf("chain id changed by failed Register")
	}
}

func TestRegisterRestrictedToRegistrar(t *testing.T) {
	r := newRegistry(t)
	if _, err := r.Register("optimism", ownerA, optimismID, thirdC); !IsUnauthorized(err) {
		t.Fatalf("got err=%v, want unauthorized", err)
	}
}

func TestOpenRegistration(t *testing.T) {
	r, err := New(memkv.New(), Options{OpenRegistration: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := r.Register("optimism", ownerA, optimismID, thirdC); err != nil {
		t.Fatalf("open Register: %v", err)
	}
}

func TestNewRequiresRegistrarOrOpenMode(t *testing.T) {
	if _, err := New(memkv.New(), Options{}); err == nil {
		t.Fatalf("expected configuration error")
	}
}

func TestRegisterRejectsInvalidLabels(t *testing.T) {
	r := newRegistry(t)
	for _, label := range []string{"", "a.b"} {
		if _, err := r.Register(label, ownerA, optimismID, registrar); err != ErrInvalidLabel {
			t.Fatalf("Register(%q): got err=%v, want ErrInvalidLabel", label, err)
		}
	}
}

func TestSetRecordOverwritesForwardAndReverse(t *testing.T) {
	r := newRegistry(t)
	h := register(t, r, "optimism", ownerA, optimismID)

	newID := []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x01, 0x0b, 0x00}
	if err := r.SetRecord(h, newID, "optimism", ownerA); err != nil {
		t.Fatalf("SetRecord: %v", err)
	}
	id, _ := r.ChainID(h)
	if !bytes.Equal(id, newID) {
		t.Fatalf("forward record not overwritten")
	}
	name, _ := r.ChainName(newID)
	if name != "optimism" {
		t.Fatalf("reverse entry for new id missing")
	}
	// The previous identifier's reverse entry is deliberately left behind.
	stale, _ := r.ChainName(optimismID)
	if stale != "optimism" {
		t.Fatalf("stale reverse entry should still resolve, got %q", stale)
	}
}

func TestSetRecordsLengthMismatch(t *testing.T) {
	r := newRegistry(t)
	h := register(t, r, "optimism", ownerA, optimismID)
	err := r.SetRecords([]namecodec.Node{h}, [][]byte{optimismID, {1}}, []string{"optimism"}, ownerA)
	if err != ErrLengthMismatch {
		t.Fatalf("got err=%v, want ErrLengthMismatch", err)
	}
}

func TestSetRecordsIsAllOrNothing(t *testing.T) {
	r := newRegistry(t)
	h := register(t, r, "optimism", ownerA, optimismID)
	unowned := namecodec.LabelHash([]byte("someone-elses"))

	newID := []byte{9, 9, 9}
	err := r.SetRecords(
		[]namecodec.Node{h, unowned},
		[][]byte{newID, {1}},
		[]string{"optimism", "other"},
		ownerA,
	)
	if !IsUnauthorized(err) {
		t.Fatalf("got err=%v, want unauthorized", err)
	}
	id, _ := r.ChainID(h)
	if !bytes.Equal(id, optimismID) {
		t.Fatalf("aborted batch modified the first element")
	}
}

func TestOperatorGrant(t *testing.T) {
	r := newRegistry(t)
	h := register(t, r, "optimism", ownerA, optimismID)

	if err := r.SetOperator(ownerA, opB, true); err != nil {
		t.Fatalf("SetOperator: %v", err)
	}
	ok, err := r.IsAuthorized(h, opB)
	if err != nil {
		t.Fatalf("IsAuthorized: %v", err)
	}
	if !ok {
		t.Fatalf("operator not authorized after grant")
	}
	if err := r.SetRecord(h, optimismID, "optimism", opB); err != nil {
		t.Fatalf("operator SetRecord: %v", err)
	}
	if err := r.SetRecord(h, optimismID, "optimism", thirdC); !IsUnauthorized(err) {
		t.Fatalf("third party SetRecord: got err=%v, want unauthorized", err)
	}

	// Grants are per owner, not per label: a second label owned by A is
	// covered by the same grant.
	h2 := register(t, r, "base", ownerA, []byte{0x00, 0x01})
	if err := r.SetText(h2, "url", "https://base.example", opB); err != nil {
		t.Fatalf("operator on second label: %v", err)
	}

	if err := r.SetOperator(ownerA, opB, false); err != nil {
		t.Fatalf("SetOperator(revoke): %v", err)
	}
	if err := r.SetRecord(h, optimismID, "optimism", opB); !IsUnauthorized(err) {
		t.Fatalf("revoked operator still authorized")
	}
}

func TestSetOwner(t *testing.T) {
	r := newRegistry(t)
	h := register(t, r, "optimism", ownerA, optimismID)

	if err := r.SetOwner(h, thirdC, opB); !IsUnauthorized(err) {
		t.Fatalf("stranger SetOwner: got err=%v, want unauthorized", err)
	}
	if err := r.SetOwner(h, opB, ownerA); err != nil {
		t.Fatalf("owner SetOwner: %v", err)
	}
	owner, _ := r.Owner(h)
	if owner != opB {
		t.Fatalf("owner = %s, want %s", owner, opB)
	}
	// Relinquish.
	if err := r.SetOwner(h, Nobody, opB); err != nil {
		t.Fatalf("relinquish: %v", err)
	}
	owner, _ = r.Owner(h)
	if !owner.IsNobody() {
		t.Fatalf("owner = %s, want Nobody", owner)
	}
}
