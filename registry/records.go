package registry

import (
	"xdao.co/chainreg/namecodec"
	"xdao.co/chainreg/storage"
)

// DefaultCoinType is the conventional coin type served for address queries
// that carry no explicit coin type.
const DefaultCoinType = 60

// SetAddr stores the address record for the default coin type.
func (r *Registry) SetAddr(labelHash namecodec.Node, addr []byte, caller Principal) error {
	return r.SetAddrForCoin(labelHash, DefaultCoinType, addr, caller)
}

// SetAddrForCoin stores the address record for one coin type.
func (r *Registry) SetAddrForCoin(labelHash namecodec.Node, coinType uint64, addr []byte, caller Principal) error {
	return r.putRecord(labelHash, addrKey(labelHash, coinType), addr, caller)
}

// SetContentHash stores the content-hash record.
func (r *Registry) SetContentHash(labelHash namecodec.Node, value []byte, caller Principal) error {
	return r.putRecord(labelHash, contentHashKey(labelHash), value, caller)
}

// SetText stores a text record under key.
func (r *Registry) SetText(labelHash namecodec.Node, key, value string, caller Principal) error {
	return r.putRecord(labelHash, textKey(labelHash, key), []byte(value), caller)
}

// SetData stores a data record under key.
func (r *Registry) SetData(labelHash namecodec.Node, key, value []byte, caller Principal) error {
	return r.putRecord(labelHash, dataKey(labelHash, key), value, caller)
}

func (r *Registry) putRecord(labelHash namecodec.Node, storeKey, value []byte, caller Principal) error {
	if err := r.requireAuthorized(labelHash, caller); err != nil {
		return err
	}
	var b storage.Batch
	b.Put(storeKey, value)
	return r.store.Apply(b)
}

// Addr returns the address record for the default coin type, nil when unset.
func (r *Registry) Addr(labelHash namecodec.Node) ([]byte, error) {
	return r.AddrForCoin(labelHash, DefaultCoinType)
}

// AddrForCoin returns the address record for coinType, nil when unset.
func (r *Registry) AddrForCoin(labelHash namecodec.Node, coinType uint64) ([]byte, error) {
	return r.getRecord(addrKey(labelHash, coinType))
}

// ContentHash returns the content-hash record, nil when unset.
func (r *Registry) ContentHash(labelHash namecodec.Node) ([]byte, error) {
	return r.getRecord(contentHashKey(labelHash))
}

// Text returns the text record under key, "" when unset.
func (r *Registry) Text(labelHash namecodec.Node, key string) (string, error) {
	v, err := r.getRecord(textKey(labelHash, key))
	return string(v), err
}

// Data returns the data record under key, nil when unset.
func (r *Registry) Data(labelHash namecodec.Node, key []byte) ([]byte, error) {
	return r.getRecord(dataKey(labelHash, key))
}

func (r *Registry) getRecord(storeKey []byte) ([]byte, error) {
	v, err := r.store.Get(storeKey)
	if storage.IsNotFound(err) {
		return nil, nil
	}
	return v, err
}
