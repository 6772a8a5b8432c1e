package grpcreg

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/chainreg/abi"
	"xdao.co/chainreg/namecodec"
	"xdao.co/chainreg/registrar"
)

// Client talks to a Registry gRPC service.
type Client struct {
	cc     *grpc.ClientConn
	client RegistryClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewRegistryClient(cc), Timeout: 0}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// Resolve runs a forward resolution: name is the wire-encoded name, query a
// selector-prefixed method payload. The reply is the ABI-encoded answer.
func (c *Client) Resolve(name, query []byte) ([]byte, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Resolve(ctx, wrapperspb.Bytes(abi.EncodeBytesPair(name, query)))
	if err != nil {
		return nil, mapRPC(err)
	}
	return reply.GetValue(), nil
}

// ReverseResolve runs a reverse resolution with the same framing as Resolve.
func (c *Client) ReverseResolve(name, query []byte) ([]byte, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.ReverseResolve(ctx, wrapperspb.Bytes(abi.EncodeBytesPair(name, query)))
	if err != nil {
		return nil, mapRPC(err)
	}
	return reply.GetValue(), nil
}

// ChainID returns the chain identifier registered under label, or nil when
// the label is unregistered.
func (c *Client) ChainID(label string) ([]byte, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.ChainId(ctx, wrapperspb.String(label))
	if err != nil {
		return nil, mapRPC(err)
	}
	return reply.GetValue(), nil
}

// ChainName returns the label registered for chainID, or "" when unknown.
func (c *Client) ChainName(chainID []byte) (string, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.ChainName(ctx, wrapperspb.Bytes(chainID))
	if err != nil {
		return "", mapRPC(err)
	}
	return reply.GetValue(), nil
}

// Register submits a signed registration ticket and returns the label hash
// the server registered.
func (c *Client) Register(st registrar.SignedTicket) (namecodec.Node, error) {
	b, err := st.Encode()
	if err != nil {
		return namecodec.ZeroNode, err
	}

	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Register(ctx, wrapperspb.Bytes(b))
	if err != nil {
		return namecodec.ZeroNode, mapRPC(err)
	}
	raw, err := hex.DecodeString(reply.GetValue())
	if err != nil || len(raw) != len(namecodec.ZeroNode) {
		return namecodec.ZeroNode, fmt.Errorf("malformed label hash in reply: %q", reply.GetValue())
	}
	var h namecodec.Node
	copy(h[:], raw)
	return h, nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}
