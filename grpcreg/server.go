package grpcreg

import (
	"context"
	"encoding/hex"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/chainreg/abi"
	"xdao.co/chainreg/namecodec"
	"xdao.co/chainreg/registrar"
	"xdao.co/chainreg/registry"
	"xdao.co/chainreg/resolver"
	"xdao.co/chainreg/storage"
)

// Server exposes a registry plus its resolvers over the Registry gRPC
// service. Authority may be nil, in which case Register is refused.
type Server struct {
	UnimplementedRegistryServer

	Registry  *registry.Registry
	Forward   *resolver.Resolver
	Reverse   *resolver.ReverseResolver
	Authority *registrar.Authority
}

// NewServer wires the forward and reverse resolvers over reg.
func NewServer(reg *registry.Registry, authority *registrar.Authority) *Server {
	return &Server{
		Registry:  reg,
		Forward:   resolver.New(reg),
		Reverse:   resolver.NewReverse(reg),
		Authority: authority,
	}
}

func (s *Server) Resolve(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Forward == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing resolver")
	}
	name, query, err := abi.DecodeBytesPair(in.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "malformed argument pair")
	}
	out, err := s.Forward.Resolve(name, query)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bytes(out), nil
}

func (s *Server) ReverseResolve(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Reverse == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing resolver")
	}
	name, query, err := abi.DecodeBytesPair(in.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "malformed argument pair")
	}
	out, err := s.Reverse.Resolve(name, query)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bytes(out), nil
}

func (s *Server) ChainId(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Registry == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing registry")
	}
	id, err := s.Registry.ChainID(namecodec.LabelHash([]byte(in.GetValue())))
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bytes(id), nil
}

func (s *Server) ChainName(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil || s.Registry == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing registry")
	}
	name, err := s.Registry.ChainName(in.GetValue())
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(name), nil
}

func (s *Server) Register(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil || s.Authority == nil {
		return nil, status.Error(codes.FailedPrecondition, "registration not enabled")
	}
	st, err := registrar.DecodeSignedTicket(in.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	h, err := s.Authority.Apply(st)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(hex.EncodeToString(h[:])), nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, registrar.ErrBadSignature):
		return status.Error(codes.Unauthenticated, err.Error())
	case registry.IsUnauthorized(err):
		return status.Error(codes.PermissionDenied, err.Error())
	case registry.IsDuplicate(err):
		return status.Error(codes.AlreadyExists, err.Error())
	case namecodec.IsMalformed(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case storage.IsNotFound(err):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
