package resolver

import (
	"xdao.co/chainreg/abi"
)

// Selectors for the standard resolution profiles.
var (
	SelAddr        = abi.ComputeSelector("addr(bytes32)")
	SelAddrCoin    = abi.ComputeSelector("addr(bytes32,uint256)")
	SelContentHash = abi.ComputeSelector("contenthash(bytes32)")
	SelText        = abi.ComputeSelector("text(bytes32,string)")
	SelData        = abi.ComputeSelector("data(bytes32,bytes)")
)

// Reserved keys with protocol-defined meaning.
const (
	// KeyChainID overrides text/data lookups on the forward path: the
	// answer comes from the registry's chain record, not a stored value.
	KeyChainID = "chain-id"

	// KeyChainNamePrefix routes reverse lookups: the key remainder is the
	// chain identifier to translate back to a name.
	KeyChainNamePrefix = "chain-name:"
)

// QueryKind tags the decoded form of a method payload.
type QueryKind int

const (
	QueryUnknown QueryKind = iota
	QueryAddr
	QueryAddrCoin
	QueryContentHash
	QueryText
	QueryData
)

// Query is one decoded resolution query. Only the fields implied by Kind
// are meaningful.
type Query struct {
	Kind QueryKind

	// Node is the bytes32 argument every profile carries. The wildcard
	// dispatch keys lookups off the queried name, so Node is decoded but
	// not consulted.
	Node [32]byte

	CoinType uint64
	TextKey  string
	DataKey  []byte
}

// DecodeQuery decodes a method payload into its tagged form. A selector
// outside the known profiles yields Kind == QueryUnknown and no error;
// malformed arguments of a known selector are an error.
func DecodeQuery(payload []byte) (Query, error) {
	sel, args, ok := abi.Split(payload)
	if !ok {
		return Query{Kind: QueryUnknown}, nil
	}

	q := Query{}
	r := abi.NewReader(args)
	var err error
	switch sel {
	case SelAddr:
		q.Kind = QueryAddr
		q.Node, err = r.Word()
	case SelAddrCoin:
		q.Kind = QueryAddrCoin
		if q.Node, err = r.Word(); err == nil {
			q.CoinType, err = r.Uint64()
		}
	case SelContentHash:
		q.Kind = QueryContentHash
		q.Node, err = r.Word()
	case SelText:
		q.Kind = QueryText
		if q.Node, err = r.Word(); err == nil {
			q.TextKey, err = r.String()
		}
	case SelData:
		q.Kind = QueryData
		if q.Node, err = r.Word(); err == nil {
			q.DataKey, err = r.Bytes()
		}
	default:
		q.Kind = QueryUnknown
	}
	if err != nil {
		return Query{}, err
	}
	return q, nil
}
