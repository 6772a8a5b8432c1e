package registry

import (
	"errors"
	"strings"

	"xdao.co/chainreg/namecodec"
	"xdao.co/chainreg/storage"
)

// Options configures a Registry.
type Options struct {
	// Registrar is the only principal allowed to call Register.
	// Required unless OpenRegistration is set.
	Registrar Principal

	// OpenRegistration removes the registrar restriction, letting any
	// caller claim unowned labels. Intended for demos and tests.
	OpenRegistration bool
}

// Registry is the chain-label registry bound to one Store.
type Registry struct {
	store storage.Store
	opts  Options
}

// New constructs a Registry over store.
func New(store storage.Store, opts Options) (*Registry, error) {
	if store == nil {
		return nil, errors.New("registry: nil store")
	}
	if opts.Registrar.IsNobody() && !opts.OpenRegistration {
		return nil, errors.New("registry: a registrar is required unless OpenRegistration is set")
	}
	return &Registry{store: store, opts: opts}, nil
}

// Register claims label for owner and binds it to chainID.
//
// The label hash is claimed exactly once: a second Register for the same
// label fails with ErrDuplicateRegistration and changes nothing. Unless the
// registry is open, only the configured registrar may call Register.
func (r *Registry) Register(label string, owner Principal, chainID []byte, caller Principal) (namecodec.Node, error) {
	if !r.opts.OpenRegistration && caller != r.opts.Registrar {
		return namecodec.ZeroNode, ErrUnauthorized
	}
	if label == "" || strings.ContainsRune(label, namecodec.Separator) {
		return namecodec.ZeroNode, ErrInvalidLabel
	}
	h := namecodec.LabelHash([]byte(label))

	existing, err := r.Owner(h)
	if err != nil {
		return namecodec.ZeroNode, err
	}
	if !existing.IsNobody() {
		return namecodec.ZeroNode, ErrDuplicateRegistration
	}

	var b storage.Batch
	b.Put(ownerKey(h), owner[:])
	appendChainRecord(&b, h, chainID, label)
	if err := r.store.Apply(b); err != nil {
		return namecodec.ZeroNode, err
	}
	return h, nil
}

// SetRecord overwrites the chain record for an already-claimed label.
//
// The forward record and the reverse index entry for the new identifier are
// written together. A reverse entry left behind by a previous identifier is
// not cleared: reverse lookups for a stale identifier keep answering until
// that identifier is bound again.
func (r *Registry) SetRecord(labelHash namecodec.Node, chainID []byte, chainName string, caller Principal) error {
	if err := r.requireAuthorized(labelHash, caller); err != nil {
		return err
	}
	var b storage.Batch
	appendChainRecord(&b, labelHash, chainID, chainName)
	return r.store.Apply(b)
}

// SetRecords is the batch form of SetRecord over parallel slices. The whole
// batch commits atomically; any element failing authorization aborts all of
// it, and mismatched slice lengths fail with ErrLengthMismatch.
func (r *Registry) SetRecords(labelHashes []namecodec.Node, chainIDs [][]byte, chainNames []string, caller Principal) error {
	if len(labelHashes) != len(chainIDs) || len(labelHashes) != len(chainNames) {
		return ErrLengthMismatch
	}
	var b storage.Batch
	for i, h := range labelHashes {
		if err := r.requireAuthorized(h, caller); err != nil {
			return err
		}
		appendChainRecord(&b, h, chainIDs[i], chainNames[i])
	}
	return r.store.Apply(b)
}

func appendChainRecord(b *storage.Batch, h namecodec.Node, chainID []byte, chainName string) {
	b.Put(chainIDKey(h), chainID)
	b.Put(chainNameKey(h), []byte(chainName))
	b.Put(reverseKey(chainID), h[:])
}

// ChainID returns the identifier bound to labelHash, or nil when absent.
func (r *Registry) ChainID(labelHash namecodec.Node) ([]byte, error) {
	v, err := r.store.Get(chainIDKey(labelHash))
	if storage.IsNotFound(err) {
		return nil, nil
	}
	return v, err
}

// ChainName resolves a chain identifier back to its registered name, or ""
// when the identifier is unknown.
func (r *Registry) ChainName(chainID []byte) (string, error) {
	h, ok, err := r.ReverseLookup(chainID)
	if err != nil || !ok {
		return "", err
	}
	v, err := r.store.Get(chainNameKey(h))
	if storage.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// ReverseLookup returns the label hash the reverse index maps chainID to.
func (r *Registry) ReverseLookup(chainID []byte) (namecodec.Node, bool, error) {
	v, err := r.store.Get(reverseKey(chainID))
	if storage.IsNotFound(err) {
		return namecodec.ZeroNode, false, nil
	}
	if err != nil {
		return namecodec.ZeroNode, false, err
	}
	if len(v) != 32 {
		return namecodec.ZeroNode, false, storage.ErrCorrupt
	}
	var h namecodec.Node
	copy(h[:], v)
	return h, true, nil
}
