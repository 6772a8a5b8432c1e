package model

import (
	"encoding/hex"
	"errors"

	"xdao.co/chainreg/cidutil"
	"xdao.co/chainreg/namecodec"
	"xdao.co/chainreg/registry"
	"xdao.co/chainreg/storage"
)

// ChainInfoFromRegistry hydrates the projection of one registered label.
// textKeys selects which text records to include; unset keys are omitted.
func ChainInfoFromRegistry(reg *registry.Registry, label string, textKeys []string) (*ChainInfo, error) {
	if reg == nil {
		return nil, NewError(ErrInternal, "missing registry")
	}
	h := namecodec.LabelHash([]byte(label))

	id, err := reg.ChainID(h)
	if err != nil {
		return nil, mapErr(err)
	}
	if id == nil {
		return nil, NewError(ErrNotFound, "label not registered: "+label)
	}
	owner, err := reg.Owner(h)
	if err != nil {
		return nil, mapErr(err)
	}
	addr, err := reg.AddrForCoin(h, registry.DefaultCoinType)
	if err != nil {
		return nil, mapErr(err)
	}
	chash, err := reg.ContentHash(h)
	if err != nil {
		return nil, mapErr(err)
	}

	info := &ChainInfo{
		Label:       label,
		LabelHash:   hex.EncodeToString(h[:]),
		ChainID:     hex.EncodeToString(id),
		Owner:       owner.String(),
		Addr:        hex.EncodeToString(addr),
		ContentHash: cidutil.FormatContentHash(chash),
	}
	for _, key := range textKeys {
		v, err := reg.Text(h, key)
		if err != nil {
			return nil, mapErr(err)
		}
		if v == "" {
			continue
		}
		if info.Texts == nil {
			info.Texts = make(map[string]string)
		}
		info.Texts[key] = v
	}
	return info, nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce
	}
	switch {
	case registry.IsUnauthorized(err):
		return NewError(ErrUnauthorized, err.Error())
	case registry.IsDuplicate(err):
		return NewError(ErrDuplicate, err.Error())
	case errors.Is(err, registry.ErrInvalidLabel):
		return NewError(ErrInvalidRequest, err.Error())
	case namecodec.IsMalformed(err):
		return NewError(ErrInvalidName, err.Error())
	case storage.IsNotFound(err):
		return NewError(ErrNotFound, err.Error())
	default:
		return NewError(ErrInternal, err.Error())
	}
}
