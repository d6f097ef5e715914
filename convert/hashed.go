package convert

import (
	"golang.org/x/crypto/blake2b"

	"xdao.co/conloc/loc"
)

// hashDomain separates location-derived accounts from every other use of the
// same digest. Changing it changes every derived account.
const hashDomain = "conloc"

// HashedOrigin derives an account for any location as the blake2b-256 digest
// of the domain tag followed by the canonical binary form of the location,
// truncated to the account width. The mapping is one-way: Reverse always
// fails with ErrOneWay.
type HashedOrigin struct {
	width int
}

// NewHashedOrigin configures the scheme for the local account width.
func NewHashedOrigin(width int) (*HashedOrigin, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	return &HashedOrigin{width: width}, nil
}

func (c *HashedOrigin) Convert(l loc.Location) (Account, error) {
	b, err := l.AppendBinary([]byte(hashDomain))
	if err != nil {
		return nil, err
	}
	sum := blake2b.Sum256(b)
	return Account(sum[:c.width]), nil
}

func (c *HashedOrigin) Reverse(Account) (loc.Location, error) {
	return loc.Location{}, ErrOneWay
}
