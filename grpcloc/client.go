package grpcloc

import (
	"context"
	"encoding/json"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/conloc/convert"
	"xdao.co/conloc/loc"
	"xdao.co/conloc/model"
)

// Client calls a remote Locator service with the same shapes the in-process
// packages use: loc.Location in, loc.Location or convert.Account out.
type Client struct {
	cc     *grpc.ClientConn
	client LocatorClient

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
	return &Client{cc: cc, client: NewLocatorClient(cc), Timeout: 0}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// Invert asks the server to express its own anchor from target's viewpoint.
func (c *Client) Invert(target loc.Location) (loc.Location, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	in, err := marshalLocation(target)
	if err != nil {
		return loc.Location{}, err
	}
	reply, err := c.client.Invert(ctx, in)
	if err != nil {
		return loc.Location{}, mapRPC(err)
	}
	return unmarshalLocation(reply.GetValue())
}

// Reanchor rewrites target relative to the frame described by inverted.
func (c *Client) Reanchor(target, inverted loc.Location) (loc.Location, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	req := model.ReanchorRequest{
		Target:   model.FromLocation(target),
		Inverted: model.FromLocation(inverted),
	}
	b, err := json.Marshal(req)
	if err != nil {
		return loc.Location{}, err
	}
	reply, err := c.client.Reanchor(ctx, wrapperspb.Bytes(b))
	if err != nil {
		return loc.Location{}, mapRPC(err)
	}
	return unmarshalLocation(reply.GetValue())
}

// Convert derives a local account identifier for l using the server's chain.
func (c *Client) Convert(l loc.Location) (convert.Account, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	in, err := marshalLocation(l)
	if err != nil {
		return nil, err
	}
	reply, err := c.client.Convert(ctx, in)
	if err != nil {
		return nil, mapRPC(err)
	}
	return model.ToAccount(reply.GetValue())
}

// Reverse recovers the location a recoverable scheme derived a from.
func (c *Client) Reverse(a convert.Account) (loc.Location, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Reverse(ctx, wrapperspb.String(model.FromAccount(a)))
	if err != nil {
		return loc.Location{}, mapRPC(err)
	}
	return unmarshalLocation(reply.GetValue())
}

// LocationID returns the content identifier of l's canonical encoding.
func (c *Client) LocationID(l loc.Location) (string, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	in, err := marshalLocation(l)
	if err != nil {
		return "", err
	}
	reply, err := c.client.LocationID(ctx, in)
	if err != nil {
		return "", mapRPC(err)
	}
	return reply.GetValue(), nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}

func marshalLocation(l loc.Location) (*wrapperspb.BytesValue, error) {
	b, err := json.Marshal(model.FromLocation(l))
	if err != nil {
		return nil, err
	}
	return wrapperspb.Bytes(b), nil
}

func unmarshalLocation(b []byte) (loc.Location, error) {
	var dto model.Location
	if err := json.Unmarshal(b, &dto); err != nil {
		return loc.Location{}, err
	}
	return dto.ToLocation()
}
