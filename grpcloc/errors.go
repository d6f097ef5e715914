package grpcloc

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xdao.co/conloc/convert"
	"xdao.co/conloc/loc"
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
		// Server uses NotFound when no scheme in its chain matched.
		return convert.ErrNoConverter
	case codes.FailedPrecondition:
		return convert.ErrOneWay
	case codes.OutOfRange:
		return loc.ErrOverflow
	default:
		// Best-effort: if the server sent a known sentinel message, preserve it.
		switch st.Message() {
		case convert.ErrNoMatch.Error():
			return convert.ErrNoMatch
		case convert.ErrNoConverter.Error():
			return convert.ErrNoConverter
		case convert.ErrOneWay.Error():
			return convert.ErrOneWay
		case loc.ErrOverflow.Error():
			return loc.ErrOverflow
		default:
			return err
		}
	}
}
