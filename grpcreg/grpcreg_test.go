package grpcreg

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"errors"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"xdao.co/chainreg/abi"
	"xdao.co/chainreg/keys"
	"xdao.co/chainreg/namecodec"
	"xdao.co/chainreg/registrar"
	"xdao.co/chainreg/registry"
	"xdao.co/chainreg/resolver"
	"xdao.co/chainreg/storage/memkv"
)

var testChainID = []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x01, 0x0a, 0x00}

func testSigner(t *testing.T) (string, ed25519.PrivateKey) {
	t.Helper()
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	issuerKey, err := keys.IssuerKeyFromPublicKey(priv.Public().(ed25519.PublicKey))
	if err != nil {
		t.Fatalf("IssuerKeyFromPublicKey: %v", err)
	}
	return issuerKey, priv
}

func newTestClient(t *testing.T) (*Client, *registry.Registry, ed25519.PrivateKey, registry.Principal) {
	t.Helper()

	registrarPrincipal, err := registry.ParsePrincipal("0x01")
	if err != nil {
		t.Fatalf("ParsePrincipal: %v", err)
	}
	reg, err := registry.New(memkv.New(), registry.Options{Registrar: registrarPrincipal})
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}

	issuerKey, priv := testSigner(t)
	authority, err := registrar.NewAuthority(reg, registrarPrincipal, []string{issuerKey})
	if err != nil {
		t.Fatalf("NewAuthority: %v", err)
	}

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	RegisterRegistryServer(srv, NewServer(reg, authority))

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	dialer := func(ctx context.Context, s string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.DialContext(
		context.Background(),
		"bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("DialContext: %v", err)
	}
	t.Cleanup(func() { _ = cc.Close() })

	owner, err := registry.ParsePrincipal("0xaa")
	if err != nil {
		t.Fatalf("ParsePrincipal: %v", err)
	}
	return &Client{cc: cc, client: NewRegistryClient(cc), Timeout: 2 * time.Second}, reg, priv, owner
}

func TestGRPCReg_RegisterAndLookup(t *testing.T) {
	client, _, priv, owner := newTestClient(t)

	st, err := registrar.SignEd25519(registrar.Ticket{Label: "optimism", Owner: owner, ChainID: testChainID}, priv)
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	h, err := client.Register(st)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if h != namecodec.LabelHash([]byte("optimism")) {
		t.Fatalf("label hash mismatch")
	}

	id, err := client.ChainID("optimism")
	if err != nil {
		t.Fatalf("ChainID: %v", err)
	}
	if !bytes.Equal(id, testChainID) {
		t.Fatalf("chain id = %x, want %x", id, testChainID)
	}

	name, err := client.ChainName(testChainID)
	if err != nil {
		t.Fatalf("ChainName: %v", err)
	}
	if name != "optimism" {
		t.Fatalf("chain name = %q, want optimism", name)
	}

	// Duplicate registration surfaces the sentinel through the RPC boundary.
	if _, err := client.Register(st); !registry.IsDuplicate(err) {
		t.Fatalf("got err=%v, want duplicate", err)
	}
}

func TestGRPCReg_Resolve(t *testing.T) {
	client, reg, priv, owner := newTestClient(t)

	st, err := registrar.SignEd25519(registrar.Ticket{Label: "optimism", Owner: owner, ChainID: testChainID}, priv)
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	h, err := client.Register(st)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.SetText(h, "url", "https://optimism.example", owner); err != nil {
		t.Fatalf("SetText: %v", err)
	}

	name, err := namecodec.Encode("optimism.cid.eth")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := client.Resolve(name, resolver.NewTextQuery(h, "url"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, _ := abi.DecodeString(out); got != "https://optimism.example" {
		t.Fatalf("text = %q", got)
	}
}

func TestGRPCReg_ReverseResolve(t *testing.T) {
	client, _, priv, owner := newTestClient(t)

	st, err := registrar.SignEd25519(registrar.Ticket{Label: "optimism", Owner: owner, ChainID: testChainID}, priv)
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	h, err := client.Register(st)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	name, err := namecodec.Encode("x.reverse")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	key := append([]byte(resolver.KeyChainNamePrefix), testChainID...)
	out, err := client.ReverseResolve(name, resolver.NewDataQuery(h, key))
	if err != nil {
		t.Fatalf("ReverseResolve: %v", err)
	}
	if got, _ := abi.DecodeBytes(out); string(got) != "optimism" {
		t.Fatalf("reverse = %q, want optimism", got)
	}
}

func TestGRPCReg_BadTicketSignature(t *testing.T) {
	client, _, priv, owner := newTestClient(t)

	st, err := registrar.SignEd25519(registrar.Ticket{Label: "optimism", Owner: owner, ChainID: testChainID}, priv)
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	st.Label = "forged"
	if _, err := client.Register(st); !errors.Is(err, registrar.ErrBadSignature) {
		t.Fatalf("got err=%v, want bad signature", err)
	}
}
