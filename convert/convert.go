package convert

import (
	"errors"

	"xdao.co/conloc/loc"
)

// Converter converts between a relative location and a local account
// identifier.
//
// Contract:
//   - Convert and Reverse MUST be pure: no state, no I/O, deterministic.
//   - A shape the scheme does not recognize returns ErrNoMatch, never a
//     fault.
//   - A direction the scheme cannot support returns ErrOneWay.
type Converter interface {
	Convert(l loc.Location) (Account, error)
	Reverse(a Account) (loc.Location, error)
}

// Chain tries converters in order and returns the first success. A Chain is
// itself a Converter, so chains compose.
type Chain []Converter

// Convert returns the account from the first scheme whose shape matches l.
// When none match it returns ErrNoConverter.
func (c Chain) Convert(l loc.Location) (Account, error) {
	for _, conv := range c {
		a, err := conv.Convert(l)
		if err == nil {
			return a, nil
		}
		if !recoverable(err) {
			return nil, err
		}
	}
	return nil, ErrNoConverter
}

// Reverse returns the location from the first scheme that recognizes a.
// When none match it returns ErrNoConverter.
func (c Chain) Reverse(a Account) (loc.Location, error) {
	for _, conv := range c {
		l, err := conv.Reverse(a)
		if err == nil {
			return l, nil
		}
		if !recoverable(err) {
			return loc.Location{}, err
		}
	}
	return loc.Location{}, ErrNoConverter
}

// recoverable reports whether the chain should advance past err. Shape
// mismatches and one-way schemes are expected; anything else aborts the
// chain.
func recoverable(err error) bool {
	return IsNoMatch(err) || errors.Is(err, ErrOneWay)
}
