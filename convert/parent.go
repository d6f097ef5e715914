package convert

import "xdao.co/conloc/loc"

// ParentDefault maps the immediate parent system to the default account:
// ascend-only(1) converts to the all-zero account, and only the all-zero
// account reverses to ascend-only(1).
type ParentDefault struct {
	width int
}

// NewParentDefault configures the scheme for the local account width
// (Width32 or Width20).
func NewParentDefault(width int) (*ParentDefault, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	return &ParentDefault{width: width}, nil
}

func (c *ParentDefault) Convert(l loc.Location) (Account, error) {
	if !l.IsAscendOnly(1) {
		return nil, ErrNoMatch
	}
	return ZeroAccount(c.width), nil
}

func (c *ParentDefault) Reverse(a Account) (loc.Location, error) {
	if len(a) != c.width || !a.IsZero() {
		return loc.Location{}, ErrNoMatch
	}
	return loc.Ancestor(1), nil
}
