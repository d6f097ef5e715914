package convert

import "errors"

var (
	// ErrNoMatch reports that the input did not have the shape a scheme
	// expects. It is recoverable: callers try the next scheme in their
	// chain.
	ErrNoMatch = errors.New("convert: no match")

	// ErrOneWay reports that a structurally one-way scheme was invoked in
	// its unsupported direction.
	ErrOneWay = errors.New("convert: scheme is one-way")

	// ErrNoConverter reports that every scheme in a chain was tried and
	// none matched.
	ErrNoConverter = errors.New("convert: no converter matched")
)

// IsNoMatch reports whether err is (or wraps) ErrNoMatch or ErrNoConverter.
func IsNoMatch(err error) bool {
	return errors.Is(err, ErrNoMatch) || errors.Is(err, ErrNoConverter)
}
