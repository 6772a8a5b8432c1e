package registrar

import (
	"errors"
	"fmt"

	"xdao.co/chainreg/namecodec"
	"xdao.co/chainreg/registry"
)

// Authority accepts signed tickets and applies them to a registry. Only
// tickets signed by one of the allowed issuer keys are admitted.
type Authority struct {
	reg       *registry.Registry
	registrar registry.Principal
	allowed   map[string]bool
}

// NewAuthority builds an authority acting as the given registrar principal.
// issuerKeys lists the "<alg>:<base64>" keys whose tickets are accepted.
func NewAuthority(reg *registry.Registry, registrar registry.Principal, issuerKeys []string) (*Authority, error) {
	if reg == nil {
		return nil, errors.New("missing registry")
	}
	if len(issuerKeys) == 0 {
		return nil, errors.New("at least one issuer key is required")
	}
	allowed := make(map[string]bool, len(issuerKeys))
	for _, k := range issuerKeys {
		allowed[k] = true
	}
	return &Authority{reg: reg, registrar: registrar, allowed: allowed}, nil
}

// Apply verifies the signed ticket and registers its label. The registration
// runs under the authority's registrar principal, so the registry's
// registrar restriction still holds for direct callers.
func (a *Authority) Apply(st SignedTicket) (namecodec.Node, error) {
	if !a.allowed[st.IssuerKey] {
		return namecodec.ZeroNode, fmt.Errorf("issuer key not allowed: %w", registry.ErrUnauthorized)
	}
	t, err := st.Verify()
	if err != nil {
		return namecodec.ZeroNode, err
	}
	return a.reg.Register(t.Label, t.Owner, t.ChainID, a.registrar)
}
