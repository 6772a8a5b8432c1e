package resolver

import "xdao.co/chainreg/abi"

// Query builders for clients. Each returns a complete method payload:
// selector followed by ABI-encoded arguments.

func NewAddrQuery(node [32]byte) []byte {
	return append(append([]byte{}, SelAddr[:]...), abi.EncodeWord(node)...)
}

func NewAddrCoinQuery(node [32]byte, coinType uint64) []byte {
	out := append([]byte{}, SelAddrCoin[:]...)
	out = append(out, abi.EncodeWord(node)...)
	return append(out, abi.EncodeUint64(coinType)...)
}

func NewContentHashQuery(node [32]byte) []byte {
	return append(append([]byte{}, SelContentHash[:]...), abi.EncodeWord(node)...)
}

func NewTextQuery(node [32]byte, key string) []byte {
	return dynamicQuery(SelText, node, []byte(key))
}

func NewDataQuery(node [32]byte, key []byte) []byte {
	return dynamicQuery(SelData, node, key)
}

// dynamicQuery assembles (bytes32, dynamic) arguments: two head words (the
// node and the tail offset) followed by the length-prefixed payload.
func dynamicQuery(sel abi.Selector, node [32]byte, payload []byte) []byte {
	out := append([]byte{}, sel[:]...)
	out = append(out, abi.EncodeWord(node)...)
	out = append(out, abi.EncodeUint64(2*abi.WordSize)...)
	tail := abi.EncodeBytes(payload)[abi.WordSize:] // length word + padded payload
	return append(out, tail...)
}
