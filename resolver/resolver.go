package resolver

import (
	"encoding/hex"

	"xdao.co/chainreg/abi"
	"xdao.co/chainreg/namecodec"
	"xdao.co/chainreg/registry"
)

// Records is the registry read surface the forward resolver consumes.
// *registry.Registry satisfies it.
type Records interface {
	AddrForCoin(labelHash namecodec.Node, coinType uint64) ([]byte, error)
	ContentHash(labelHash namecodec.Node) ([]byte, error)
	Text(labelHash namecodec.Node, key string) (string, error)
	Data(labelHash namecodec.Node, key []byte) ([]byte, error)
	ChainID(labelHash namecodec.Node) ([]byte, error)
}

// Resolver answers forward (label -> records) wildcard queries.
type Resolver struct {
	records Records
}

func New(records Records) *Resolver {
	return &Resolver{records: records}
}

// Resolve decodes the first label of name, dispatches query against that
// label's records and returns the ABI-encoded answer.
//
// Every label after the first is ignored: any subname under the attachment
// point resolves through the one registered label. A malformed name is a
// terminal error; an unknown selector is answered with an encoded empty
// value instead.
func (r *Resolver) Resolve(name, query []byte) ([]byte, error) {
	labelHash, _, _, _, err := namecodec.ReadLabel(name, 0, true)
	if err != nil {
		return nil, err
	}
	q, err := DecodeQuery(query)
	if err != nil {
		return nil, err
	}

	switch q.Kind {
	case QueryAddr:
		v, err := r.records.AddrForCoin(labelHash, registry.DefaultCoinType)
		if err != nil {
			return nil, err
		}
		return abi.EncodeAddress(addressFromRecord(v)), nil

	case QueryAddrCoin:
		v, err := r.records.AddrForCoin(labelHash, q.CoinType)
		if err != nil {
			return nil, err
		}
		return abi.EncodeBytes(v), nil

	case QueryContentHash:
		v, err := r.records.ContentHash(labelHash)
		if err != nil {
			return nil, err
		}
		return abi.EncodeBytes(v), nil

	case QueryText:
		if q.TextKey == KeyChainID {
			id, err := r.records.ChainID(labelHash)
			if err != nil {
				return nil, err
			}
			return abi.EncodeString(hex.EncodeToString(id)), nil
		}
		v, err := r.records.Text(labelHash, q.TextKey)
		if err != nil {
			return nil, err
		}
		return abi.EncodeString(v), nil

	case QueryData:
		if string(q.DataKey) == KeyChainID {
			id, err := r.records.ChainID(labelHash)
			if err != nil {
				return nil, err
			}
			return abi.EncodeBytes(id), nil
		}
		v, err := r.records.Data(labelHash, q.DataKey)
		if err != nil {
			return nil, err
		}
		return abi.EncodeBytes(v), nil

	default:
		return abi.EncodeBytes(nil), nil
	}
}

// addressFromRecord derives the 20-byte answer for a plain address query
// from a stored record of any length: the value is right-aligned, so a short
// record zero-pads on the left and a longer one keeps its low 160 bits.
func addressFromRecord(v []byte) [20]byte {
	var a [20]byte
	if len(v) > len(a) {
		v = v[len(v)-len(a):]
	}
	copy(a[len(a)-len(v):], v)
	return a
}
