package registrar

import (
	"bytes"
	"testing"

	"xdao.co/chainreg/keys"
	"xdao.co/chainreg/registry"
	"xdao.co/chainreg/storage/memkv"
)

func newAuthority(t *testing.T, issuerKeys []string) (*Authority, *registry.Registry) {
	t.Helper()
	registrarPrincipal := mustPrincipal(t, "0x01")
	reg, err := registry.New(memkv.New(), registry.Options{Registrar: registrarPrincipal})
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	a, err := NewAuthority(reg, registrarPrincipal, issuerKeys)
	if err != nil {
		t.Fatalf("NewAuthority: %v", err)
	}
	return a, reg
}

func TestAuthority_AppliesValidTicket(t *testing.T) {
	pub, priv := testKeypair()
	issuerKey, err := keys.IssuerKeyFromPublicKey(pub)
	if err != nil {
		t.Fatalf("IssuerKeyFromPublicKey: %v", err)
	}
	a, reg := newAuthority(t, []string{issuerKey})

	ticket := testTicket(t)
	st, err := SignEd25519(ticket, priv)
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	h, err := a.Apply(st)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	id, err := reg.ChainID(h)
	if err != nil {
		t.Fatalf("ChainID: %v", err)
	}
	if !bytes.Equal(id, ticket.ChainID) {
		t.Fatalf("chain id = %x, want %x", id, ticket.ChainID)
	}
	owner, err := reg.Owner(h)
	if err != nil {
		t.Fatalf("Owner: %v", err)
	}
	if owner != ticket.Owner {
		t.Fatalf("owner = %s, want %s", owner, ticket.Owner)
	}
}

func TestAuthority_RejectsUnknownIssuer(t *testing.T) {
	_, priv := testKeypair()
	a, _ := newAuthority(t, []string{"ed25519:c29tZW9uZSBlbHNl"})

	st, err := SignEd25519(testTicket(t), priv)
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	if _, err := a.Apply(st); !registry.IsUnauthorized(err) {
		t.Fatalf("got err=%v, want unauthorized", err)
	}
}

func TestAuthority_RejectsBadSignature(t *testing.T) {
	pub, priv := testKeypair()
	issuerKey, err := keys.IssuerKeyFromPublicKey(pub)
	if err != nil {
		t.Fatalf("IssuerKeyFromPublicKey: %v", err)
	}
	a, _ := newAuthority(t, []string{issuerKey})

	st, err := SignEd25519(testTicket(t), priv)
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	st.Label = "forged"
	if _, err := a.Apply(st); err == nil {
		t.Fatalf("expected forged ticket to fail")
	}
}

func TestAuthority_DuplicateRegistration(t *testing.T) {
	pub, priv := testKeypair()
	issuerKey, err := keys.IssuerKeyFromPublicKey(pub)
	if err != nil {
		t.Fatalf("IssuerKeyFromPublicKey: %v", err)
	}
	a, _ := newAuthority(t, []string{issuerKey})

	st, err := SignEd25519(testTicket(t), priv)
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	if _, err := a.Apply(st); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	if _, err := a.Apply(st); !registry.IsDuplicate(err) {
		t.Fatalf("got err=%v, want duplicate", err)
	}
}

func TestNewAuthority_RequiresIssuerKeys(t *testing.T) {
	reg, err := registry.New(memkv.New(), registry.Options{OpenRegistration: true})
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	if _, err := NewAuthority(reg, registry.Nobody, nil); err == nil {
		t.Fatalf("expected missing issuer keys to be rejected")
	}
	if _, err := NewAuthority(nil, registry.Nobody, []string{"ed25519:AAAA"}); err == nil {
		t.Fatalf("expected missing registry to be rejected")
	}
}
