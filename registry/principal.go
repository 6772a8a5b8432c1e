package registry

import (
	"encoding/hex"
	"fmt"
	"strings"

	"xdao.co/chainreg/internal/hexutil"
)

// Principal is a 20-byte caller identity. The zero value, Nobody, is the
// "no owner" sentinel: it is never a real caller.
type Principal [20]byte

// Nobody is the absent-owner sentinel.
var Nobody Principal

func (p Principal) IsNobody() bool { return p == Nobody }

func (p Principal) String() string { return "0x" + hex.EncodeToString(p[:]) }

// ParsePrincipal parses a hex principal, with or without the 0x prefix.
// Shorter values right-align per the hexutil contract.
func ParsePrincipal(s string) (Principal, error) {
	s = strings.TrimPrefix(s, "0x")
	var p Principal
	if err := hexutil.ParseInto(p[:], s); err != nil {
		return Nobody, fmt.Errorf("registry: invalid principal: %w", err)
	}
	return p, nil
}

// PrincipalFromWord derives a Principal from a 32-byte word by taking its
// low 20 bytes. The high 12 bytes are discarded; this truncation is the
// protocol's word-to-identity rule.
func PrincipalFromWord(w [32]byte) Principal {
	var p Principal
	copy(p[:], w[12:])
	return p
}
