package model

import "xdao.co/chainreg/registrar"

// RegistrationTicket is the JSON wire form of a signed registration
// ticket, as accepted by the Register RPC and the ticket subcommands.
type RegistrationTicket = registrar.SignedTicket

// ChainInfo is the JSON projection of one registered label.
//
// LabelHash and ChainID are lowercase hex without a 0x prefix; Owner uses the
// 0x-prefixed form. ContentHash carries the record's CID string when the
// stored bytes parse as a CID, and falls back to hex otherwise.
type ChainInfo struct {
	Label       string            `json:"label"`
	LabelHash   string            `json:"labelHash"`
	ChainID     string            `json:"chainId"`
	Owner       string            `json:"owner"`
	Addr        string            `json:"addr,omitempty"`
	ContentHash string            `json:"contentHash,omitempty"`
	Texts       map[string]string `json:"texts,omitempty"`
}

// ResolutionView is the JSON projection of one resolution exchange: the
// DNS-form name, the hex query payload and the hex ABI answer.
type ResolutionView struct {
	Name   string `json:"name"`
	Query  string `json:"query"`
	Answer string `json:"answer"`
}
