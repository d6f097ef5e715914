package grpcloc

import (
	"context"
	"encoding/json"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/conloc/anchor"
	"xdao.co/conloc/convert"
	"xdao.co/conloc/loc"
	"xdao.co/conloc/locid"
	"xdao.co/conloc/model"
)

// Server exposes an anchor.Inverter and a convert.Chain over the Locator
// gRPC service.
type Server struct {
	UnimplementedLocatorServer
	Inverter *anchor.Inverter
	Chain    convert.Chain
}

func (s *Server) Invert(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Inverter == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing inverter")
	}
	target, err := decodeLocation(in.GetValue())
	if err != nil {
		return nil, err
	}
	inverted, err := s.Inverter.Invert(target)
	if err != nil {
		return nil, mapErr(err)
	}
	return encodeLocation(inverted)
}

func (s *Server) Reanchor(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	var req model.ReanchorRequest
	if err := json.Unmarshal(in.GetValue(), &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, "malformed reanchor request")
	}
	target, err := req.Target.ToLocation()
	if err != nil {
		return nil, mapErr(err)
	}
	inverted, err := req.Inverted.ToLocation()
	if err != nil {
		return nil, mapErr(err)
	}
	out, err := anchor.Reanchor(target, inverted)
	if err != nil {
		return nil, mapErr(err)
	}
	return encodeLocation(out)
}

func (s *Server) Convert(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil || len(s.Chain) == 0 {
		return nil, status.Error(codes.FailedPrecondition, "missing converter chain")
	}
	l, err := decodeLocation(in.GetValue())
	if err != nil {
		return nil, err
	}
	a, err := s.Chain.Convert(l)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(model.FromAccount(a)), nil
}

func (s *Server) Reverse(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || len(s.Chain) == 0 {
		return nil, status.Error(codes.FailedPrecondition, "missing converter chain")
	}
	a, err := model.ToAccount(in.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	l, err := s.Chain.Reverse(a)
	if err != nil {
		return nil, mapErr(err)
	}
	return encodeLocation(l)
}

func (s *Server) LocationID(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	l, err := decodeLocation(in.GetValue())
	if err != nil {
		return nil, err
	}
	id, err := locid.IDString(l)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(id), nil
}

func decodeLocation(b []byte) (loc.Location, error) {
	var dto model.Location
	if err := json.Unmarshal(b, &dto); err != nil {
		return loc.Location{}, status.Error(codes.InvalidArgument, "malformed location")
	}
	l, err := dto.ToLocation()
	if err != nil {
		return loc.Location{}, mapErr(err)
	}
	return l, nil
}

func encodeLocation(l loc.Location) (*wrapperspb.BytesValue, error) {
	b, err := json.Marshal(model.FromLocation(l))
	if err != nil {
		return nil, status.Error(codes.Internal, "location encoding failed")
	}
	return wrapperspb.Bytes(b), nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case convert.IsNoMatch(err):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, convert.ErrOneWay):
		return status.Error(codes.FailedPrecondition, err.Error())
	case loc.IsOverflow(err):
		return status.Error(codes.OutOfRange, err.Error())
	default:
		return status.Error(codes.InvalidArgument, err.Error())
	}
}
