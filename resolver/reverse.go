package resolver

import (
	"bytes"
	"strings"

	"xdao.co/chainreg/abi"
	"xdao.co/chainreg/internal/hexutil"
	"xdao.co/chainreg/namecodec"
)

// Directory is the registry read surface the reverse resolver consumes.
// *registry.Registry satisfies it.
type Directory interface {
	ChainName(chainID []byte) (string, error)
}

// ReverseResolver answers reverse (chain identifier -> chain name) queries.
//
// The protocol routes reverse lookups through text/data keys carrying the
// KeyChainNamePrefix: the key remainder is the identifier, hex-encoded for
// text queries and raw for data queries.
type ReverseResolver struct {
	dir Directory
}

func NewReverse(dir Directory) *ReverseResolver {
	return &ReverseResolver{dir: dir}
}

// Resolve decodes and discards the first label of name (it exists only to
// satisfy protocol routing), then serves the reverse lookup. Keys without
// the reserved prefix, identifiers that are not valid hex, and unknown
// identifiers all produce an encoded empty value.
func (r *ReverseResolver) Resolve(name, query []byte) ([]byte, error) {
	if _, _, _, _, err := namecodec.ReadLabel(name, 0, true); err != nil {
		return nil, err
	}
	q, err := DecodeQuery(query)
	if err != nil {
		return nil, err
	}

	switch q.Kind {
	case QueryText:
		rest, ok := strings.CutPrefix(q.TextKey, KeyChainNamePrefix)
		if !ok {
			return abi.EncodeString(""), nil
		}
		id, err := hexutil.ParseRightAligned(rest)
		if err != nil {
			return abi.EncodeString(""), nil
		}
		chainName, err := r.dir.ChainName(id)
		if err != nil {
			return nil, err
		}
		return abi.EncodeString(chainName), nil

	case QueryData:
		rest, ok := bytes.CutPrefix(q.DataKey, []byte(KeyChainNamePrefix))
		if !ok {
			return abi.EncodeBytes(nil), nil
		}
		chainName, err := r.dir.ChainName(rest)
		if err != nil {
			return nil, err
		}
		return abi.EncodeBytes([]byte(chainName)), nil

	default:
		return abi.EncodeBytes(nil), nil
	}
}
