package grpcreg

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xdao.co/chainreg/registrar"
	"xdao.co/chainreg/registry"
	"xdao.co/chainreg/storage"
)

func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return storage.ErrNotFound
	case codes.PermissionDenied:
		return registry.ErrUnauthorized
	case codes.AlreadyExists:
		return registry.ErrDuplicateRegistration
	case codes.Unauthenticated:
		return registrar.ErrBadSignature
	default:
		// Best-effort: if the server sent a known sentinel message, preserve it.
		switch st.Message() {
		case storage.ErrNotFound.Error():
			return storage.ErrNotFound
		case registry.ErrUnauthorized.Error():
			return registry.ErrUnauthorized
		case registry.ErrDuplicateRegistration.Error():
			return registry.ErrDuplicateRegistration
		default:
			return err
		}
	}
}
