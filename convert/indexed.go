package convert

import (
	"encoding/binary"

	"xdao.co/conloc/loc"
)

// Child and sibling sub-systems are addressed by a numeric id. Their accounts
// are derived with a recoverable encoding: a 4-byte ASCII tag naming the
// relationship, the big-endian id, then zero padding to the account width.
// The inverse checks the tag and the padding, so a derived account decodes
// back to exactly the id it came from.

var (
	childTag   = [4]byte{'p', 'a', 'r', 'a'}
	siblingTag = [4]byte{'s', 'i', 'b', 'l'}
)

// ChildSystemIndex converts locations of the form [sub-system id] (no
// ascent) for directly descending sub-systems.
type ChildSystemIndex struct {
	width int
}

// NewChildSystemIndex configures the scheme for the local account width.
func NewChildSystemIndex(width int) (*ChildSystemIndex, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	return &ChildSystemIndex{width: width}, nil
}

func (c *ChildSystemIndex) Convert(l loc.Location) (Account, error) {
	id, ok := soleSystemIndex(l, 0)
	if !ok {
		return nil, ErrNoMatch
	}
	return indexedAccount(childTag, id, c.width), nil
}

func (c *ChildSystemIndex) Reverse(a Account) (loc.Location, error) {
	id, ok := indexedAccountID(childTag, a, c.width)
	if !ok {
		return loc.Location{}, ErrNoMatch
	}
	return systemLocation(0, id), nil
}

// SiblingSystemIndex converts locations of the form ../[sub-system id] for
// sub-systems sharing the local system's parent.
type SiblingSystemIndex struct {
	width int
}

// NewSiblingSystemIndex configures the scheme for the local account width.
func NewSiblingSystemIndex(width int) (*SiblingSystemIndex, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	return &SiblingSystemIndex{width: width}, nil
}

func (c *SiblingSystemIndex) Convert(l loc.Location) (Account, error) {
	id, ok := soleSystemIndex(l, 1)
	if !ok {
		return nil, ErrNoMatch
	}
	return indexedAccount(siblingTag, id, c.width), nil
}

func (c *SiblingSystemIndex) Reverse(a Account) (loc.Location, error) {
	id, ok := indexedAccountID(siblingTag, a, c.width)
	if !ok {
		return loc.Location{}, ErrNoMatch
	}
	return systemLocation(1, id), nil
}

// soleSystemIndex extracts the sub-system id from a location that is exactly
// (parents, [Parachain(id)]).
func soleSystemIndex(l loc.Location, parents uint8) (uint32, bool) {
	if l.Parents() != parents || l.Len() != 1 {
		return 0, false
	}
	j := l.Interior().At(0)
	if j.Kind != loc.KindParachain {
		return 0, false
	}
	return j.Parachain, true
}

func systemLocation(parents uint8, id uint32) loc.Location {
	interior, err := loc.Path(loc.Parachain(id))
	if err != nil {
		// A single junction cannot overflow the capacity of 8.
		panic(err)
	}
	return loc.New(parents, interior)
}

func indexedAccount(tag [4]byte, id uint32, width int) Account {
	a := make(Account, width)
	copy(a, tag[:])
	binary.BigEndian.PutUint32(a[4:8], id)
	return a
}

func indexedAccountID(tag [4]byte, a Account, width int) (uint32, bool) {
	if len(a) != width {
		return 0, false
	}
	for i := 0; i < 4; i++ {
		if a[i] != tag[i] {
			return 0, false
		}
	}
	for _, b := range a[8:] {
		if b != 0 {
			return 0, false
		}
	}
	return binary.BigEndian.Uint32(a[4:8]), true
}
