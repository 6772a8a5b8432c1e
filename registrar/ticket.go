package registrar

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"xdao.co/chainreg/keys"
	"xdao.co/chainreg/registry"
)

// signingPrefix domain-separates ticket signatures from any other use of the
// same keypair.
const signingPrefix = "xdao-chainreg-ticket-v1"

// ErrBadSignature reports a ticket whose signature does not verify against
// its embedded issuer key.
var ErrBadSignature = errors.New("ticket signature does not verify")

// Ticket is a registrar-authorized registration of one label.
type Ticket struct {
	Label   string
	Owner   registry.Principal
	ChainID []byte
}

// SigningBytes returns the canonical byte string a ticket signature covers.
// Owner is fixed width, so the layout is unambiguous without length prefixes
// for it; the label is NUL-terminated and may not contain NUL itself.
func (t Ticket) SigningBytes() ([]byte, error) {
	for i := 0; i < len(t.Label); i++ {
		if t.Label[i] == 0 {
			return nil, errors.New("label must not contain NUL")
		}
	}
	out := make([]byte, 0, len(signingPrefix)+1+len(t.Label)+1+len(t.Owner)+len(t.ChainID))
	out = append(out, signingPrefix...)
	out = append(out, 0)
	out = append(out, t.Label...)
	out = append(out, 0)
	out = append(out, t.Owner[:]...)
	out = append(out, t.ChainID...)
	return out, nil
}

// SignedTicket is the wire form of a ticket: the ticket fields plus the
// issuer key and signature. ChainID and Owner travel hex-encoded.
type SignedTicket struct {
	Label     string `json:"label"`
	Owner     string `json:"owner"`
	ChainID   string `json:"chain_id"`
	IssuerKey string `json:"issuer_key"`
	HashAlg   string `json:"hash_alg,omitempty"`
	Signature string `json:"signature"`
}

// SignEd25519 signs t and returns the wire form.
func SignEd25519(t Ticket, priv ed25519.PrivateKey) (SignedTicket, error) {
	msg, err := t.SigningBytes()
	if err != nil {
		return SignedTicket{}, err
	}
	issuerKey, err := keys.IssuerKeyFromPublicKey(priv.Public().(ed25519.PublicKey))
	if err != nil {
		return SignedTicket{}, err
	}
	return SignedTicket{
		Label:     t.Label,
		Owner:     t.Owner.String(),
		ChainID:   hex.EncodeToString(t.ChainID),
		IssuerKey: issuerKey,
		Signature: keys.SignEd25519SHA256(msg, priv),
	}, nil
}

// SignDilithium3 signs t with a dilithium3 key and returns the wire form.
// hashAlg must be one of: sha256, sha512, sha3-256.
func SignDilithium3(t Ticket, hashAlg string, pub *mode3.PublicKey, priv *mode3.PrivateKey) (SignedTicket, error) {
	msg, err := t.SigningBytes()
	if err != nil {
		return SignedTicket{}, err
	}
	issuerKey, err := keys.IssuerKeyFromDilithium3PublicKey(pub)
	if err != nil {
		return SignedTicket{}, err
	}
	sig, err := keys.SignDilithium3(msg, hashAlg, priv)
	if err != nil {
		return SignedTicket{}, err
	}
	return SignedTicket{
		Label:     t.Label,
		Owner:     t.Owner.String(),
		ChainID:   hex.EncodeToString(t.ChainID),
		IssuerKey: issuerKey,
		HashAlg:   hashAlg,
		Signature: sig,
	}, nil
}

// Verify checks the signature and returns the embedded ticket.
func (st SignedTicket) Verify() (Ticket, error) {
	owner, err := registry.ParsePrincipal(st.Owner)
	if err != nil {
		return Ticket{}, fmt.Errorf("ticket owner: %w", err)
	}
	chainID, err := hex.DecodeString(st.ChainID)
	if err != nil {
		return Ticket{}, fmt.Errorf("ticket chain_id: %w", err)
	}
	t := Ticket{Label: st.Label, Owner: owner, ChainID: chainID}
	msg, err := t.SigningBytes()
	if err != nil {
		return Ticket{}, err
	}

	alg, pub, err := keys.ParseIssuerKey(st.IssuerKey)
	if err != nil {
		return Ticket{}, err
	}
	switch alg {
	case "ed25519":
		if !keys.VerifyEd25519SHA256(msg, st.Signature, ed25519.PublicKey(pub)) {
			return Ticket{}, ErrBadSignature
		}
	case "dilithium3":
		hashAlg := st.HashAlg
		if hashAlg == "" {
			hashAlg = "sha3-256"
		}
		var pk mode3.PublicKey
		pk.Unpack((*[mode3.PublicKeySize]byte)(pub))
		if !keys.VerifyDilithium3(msg, hashAlg, st.Signature, &pk) {
			return Ticket{}, ErrBadSignature
		}
	default:
		return Ticket{}, fmt.Errorf("unsupported key algorithm: %q", alg)
	}
	return t, nil
}

// Encode serializes the signed ticket as JSON.
func (st SignedTicket) Encode() ([]byte, error) {
	return json.Marshal(st)
}

// DecodeSignedTicket parses the JSON wire form. It does not verify.
func DecodeSignedTicket(b []byte) (SignedTicket, error) {
	var st SignedTicket
	if err := json.Unmarshal(b, &st); err != nil {
		return SignedTicket{}, fmt.Errorf("decode ticket: %w", err)
	}
	return st, nil
}
