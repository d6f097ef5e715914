// Package anchor computes reciprocal locations and reframes locations when
// the reference context changes.
package anchor

import (
	"errors"

	"xdao.co/conloc/loc"
)

// ErrAncestryAscends reports an ancestry with a non-zero ascend-count.
// Ancestry is a descend-only path from the global reference point to the
// local system's parent.
var ErrAncestryAscends = errors.New("anchor: ancestry must be descend-only")

// Inverter holds the local system's ancestry. It is configured once at
// system initialization and read-only afterwards; Invert never mutates it.
type Inverter struct {
	ancestry loc.Location
}

// New configures an Inverter with the local ancestry. Ancestries with a
// non-zero ascend-count are rejected.
func New(ancestry loc.Location) (*Inverter, error) {
	if ancestry.Parents() != 0 {
		return nil, ErrAncestryAscends
	}
	return &Inverter{ancestry: ancestry}, nil
}

// Ancestry returns a copy of the configured ancestry.
func (iv *Inverter) Ancestry() loc.Location { return iv.ancestry }

// Invert computes the location a system at the far end of l would use to
// address back to the local system.
//
// Each ascent hop of l consumes one junction from the front of a working
// copy of the ancestry, preserving root-to-local order in the output; once
// the ancestry is exhausted, OnlyChild stands in for ancestors the local
// system cannot name. The inverted ascend-count is the depth l descends.
// It returns loc.ErrOverflow when the output would exceed
// loc.MaxJunctions; the output is never truncated.
func (iv *Inverter) Invert(l loc.Location) (loc.Location, error) {
	working := iv.ancestry
	var out loc.Junctions
	for hop := uint8(0); hop < l.Parents(); hop++ {
		j, ok := working.TakeFirst()
		if !ok {
			j = loc.OnlyChild()
		}
		if err := out.PushBack(j); err != nil {
			return loc.Location{}, err
		}
	}
	return loc.New(uint8(l.Len()), out), nil
}
