package registry

import (
	"fmt"

	"xdao.co/chainreg/namecodec"
	"xdao.co/chainreg/storage"
)

// Owner returns the principal owning labelHash, or Nobody when unclaimed.
func (r *Registry) Owner(labelHash namecodec.Node) (Principal, error) {
	v, err := r.store.Get(ownerKey(labelHash))
	if storage.IsNotFound(err) {
		return Nobody, nil
	}
	if err != nil {
		return Nobody, err
	}
	if len(v) != len(Nobody) {
		return Nobody, fmt.Errorf("registry: owner record: %w", storage.ErrCorrupt)
	}
	var p Principal
	copy(p[:], v)
	return p, nil
}

// Operator reports whether owner has granted operator rights to operator.
func (r *Registry) Operator(owner, operator Principal) (bool, error) {
	_, err := r.store.Get(operatorKey(owner, operator))
	if storage.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// IsAuthorized reports whether candidate may mutate labelHash's records:
// candidate owns the label, or holds an operator grant from its owner.
// An unclaimed label (owner == Nobody) authorizes no real caller.
func (r *Registry) IsAuthorized(labelHash namecodec.Node, candidate Principal) (bool, error) {
	owner, err := r.Owner(labelHash)
	if err != nil {
		return false, err
	}
	if candidate == owner {
		return true, nil
	}
	return r.Operator(owner, candidate)
}

func (r *Registry) requireAuthorized(labelHash namecodec.Node, caller Principal) error {
	ok, err := r.IsAuthorized(labelHash, caller)
	if err != nil {
		return err
	}
	if !ok || caller.IsNobody() {
		return ErrUnauthorized
	}
	return nil
}

// SetOwner assigns labelHash to newOwner. It succeeds when the label is
// unclaimed, or when caller is the current owner or one of their operators.
// Assigning Nobody relinquishes the label.
func (r *Registry) SetOwner(labelHash namecodec.Node, newOwner, caller Principal) error {
	owner, err := r.Owner(labelHash)
	if err != nil {
		return err
	}
	if !owner.IsNobody() {
		if err := r.requireAuthorized(labelHash, caller); err != nil {
			return err
		}
	}
	var b storage.Batch
	b.Put(ownerKey(labelHash), newOwner[:])
	return r.store.Apply(b)
}

// SetOperator updates caller's grant for operator. It is scoped to the
// caller's own grants and never fails an authorization check.
func (r *Registry) SetOperator(caller, operator Principal, granted bool) error {
	var b storage.Batch
	if granted {
		b.Put(operatorKey(caller, operator), []byte{1})
	} else {
		b.Del(operatorKey(caller, operator))
	}
	return r.store.Apply(b)
}
