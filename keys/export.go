package keys

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
)

// IssuerKeyFromPublicKey encodes an Ed25519 public key into the issuer-key string.
func IssuerKeyFromPublicKey(pub ed25519.PublicKey) (string, error) {
	if l := len(pub); l != ed25519.PublicKeySize {
		return "", fmt.Errorf("ed25519 public key must be %d bytes, got %d", ed25519.PublicKeySize, l)
	}
	return "ed25519:" + base64.StdEncoding.EncodeToString(pub), nil
}

// IssuerKeyFromDilithium3PublicKey encodes a Dilithium3 public key into the
// issuer-key string.
func IssuerKeyFromDilithium3PublicKey(pub *mode3.PublicKey) (string, error) {
	if pub == nil {
		return "", fmt.Errorf("missing public key")
	}
	raw := make([]byte, mode3.PublicKeySize)
	pub.Pack((*[mode3.PublicKeySize]byte)(raw))
	return "dilithium3:" + base64.StdEncoding.EncodeToString(raw), nil
}

// ParseIssuerKey splits an issuer-key string of the form "<alg>:<base64>"
// into its algorithm name and raw public key bytes.
func ParseIssuerKey(issuerKey string) (alg string, pub []byte, err error) {
	alg, b64, ok := strings.Cut(issuerKey, ":")
	if !ok || alg == "" {
		return "", nil, fmt.Errorf("issuer key must look like <alg>:<base64>")
	}
	pub, err = base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", nil, fmt.Errorf("issuer key %s payload: %w", alg, err)
	}
	switch alg {
	case "ed25519":
		if len(pub) != ed25519.PublicKeySize {
			return "", nil, fmt.Errorf("ed25519 public key must be %d bytes, got %d", ed25519.PublicKeySize, len(pub))
		}
	case "dilithium3":
		if len(pub) != mode3.PublicKeySize {
			return "", nil, fmt.Errorf("dilithium3 public key must be %d bytes, got %d", mode3.PublicKeySize, len(pub))
		}
	default:
		return "", nil, fmt.Errorf("unsupported key algorithm: %q", alg)
	}
	return alg, pub, nil
}
