package loc

import "errors"

var (
	// ErrOverflow reports that an operation would push a junction sequence
	// or an ascend-count past its depth bound. Sequences are never
	// truncated to fit.
	ErrOverflow = errors.New("loc: depth limit exceeded")
)

// IsOverflow reports whether err is (or wraps) ErrOverflow.
func IsOverflow(err error) bool { return errors.Is(err, ErrOverflow) }
