package registry

import (
	"encoding/binary"

	"xdao.co/chainreg/namecodec"
)

// Store key layout. Every key starts with a short prefix naming the map it
// belongs to; fixed-width parts are concatenated raw, variable parts last.
const (
	prefixOwner       = "own/"
	prefixOperator    = "op/"
	prefixChainID     = "cid/"
	prefixChainName   = "cname/"
	prefixReverse     = "rev/"
	prefixAddr        = "addr/"
	prefixContentHash = "chash/"
	prefixText        = "text/"
	prefixData        = "data/"
)

func ownerKey(h namecodec.Node) []byte {
	return append([]byte(prefixOwner), h[:]...)
}

func operatorKey(owner, operator Principal) []byte {
	k := make([]byte, 0, len(prefixOperator)+2*len(owner))
	k = append(k, prefixOperator...)
	k = append(k, owner[:]...)
	return append(k, operator[:]...)
}

func chainIDKey(h namecodec.Node) []byte {
	return append([]byte(prefixChainID), h[:]...)
}

func chainNameKey(h namecodec.Node) []byte {
	return append([]byte(prefixChainName), h[:]...)
}

func reverseKey(chainID []byte) []byte {
	return append([]byte(prefixReverse), chainID...)
}

func addrKey(h namecodec.Node, coinType uint64) []byte {
	k := make([]byte, 0, len(prefixAddr)+len(h)+8)
	k = append(k, prefixAddr...)
	k = append(k, h[:]...)
	return binary.BigEndian.AppendUint64(k, coinType)
}

func contentHashKey(h namecodec.Node) []byte {
	return append([]byte(prefixContentHash), h[:]...)
}

func textKey(h namecodec.Node, key string) []byte {
	k := make([]byte, 0, len(prefixText)+len(h)+len(key))
	k = append(k, prefixText...)
	k = append(k, h[:]...)
	return append(k, key...)
}

func dataKey(h namecodec.Node, key []byte) []byte {
	k := make([]byte, 0, len(prefixData)+len(h)+len(key))
	k = append(k, prefixData...)
	k = append(k, h[:]...)
	return append(k, key...)
}
