package convert

import (
	"errors"

	"xdao.co/conloc/loc"
)

// The alias schemes reinterpret a local account junction as the account
// itself. Convert accepts the wildcard network or the configured one;
// Reverse always re-emits the configured network and never the wildcard.
// The asymmetry is deliberate: an inbound location may leave the network
// unsaid, but an outbound one always names it.

// AccountID32Alias aliases [AccountId32] junctions at the local system.
type AccountID32Alias struct {
	network loc.NetworkID
}

// NewAccountID32Alias configures the scheme with the local network. The
// wildcard is rejected: the configured network is what Reverse emits, so it
// must name a network.
func NewAccountID32Alias(network loc.NetworkID) (*AccountID32Alias, error) {
	if network.IsAny() {
		return nil, errors.New("convert: alias network must not be the wildcard")
	}
	return &AccountID32Alias{network: network}, nil
}

func (c *AccountID32Alias) Convert(l loc.Location) (Account, error) {
	if l.Parents() != 0 || l.Len() != 1 {
		return nil, ErrNoMatch
	}
	j := l.Interior().At(0)
	if j.Kind != loc.KindAccountID32 {
		return nil, ErrNoMatch
	}
	if !j.Network.IsAny() && !j.Network.Equal(c.network) {
		return nil, ErrNoMatch
	}
	return Account(append([]byte(nil), j.AccountID[:]...)), nil
}

func (c *AccountID32Alias) Reverse(a Account) (loc.Location, error) {
	if len(a) != Width32 {
		return loc.Location{}, ErrNoMatch
	}
	var id [32]byte
	copy(id[:], a)
	return accountLocation(loc.AccountID32(c.network, id)), nil
}

// AccountKey20Alias aliases [AccountKey20] junctions at the local system.
type AccountKey20Alias struct {
	network loc.NetworkID
}

// NewAccountKey20Alias configures the scheme with the local network; the
// wildcard is rejected as for NewAccountID32Alias.
func NewAccountKey20Alias(network loc.NetworkID) (*AccountKey20Alias, error) {
	if network.IsAny() {
		return nil, errors.New("convert: alias network must not be the wildcard")
	}
	return &AccountKey20Alias{network: network}, nil
}

func (c *AccountKey20Alias) Convert(l loc.Location) (Account, error) {
	if l.Parents() != 0 || l.Len() != 1 {
		return nil, ErrNoMatch
	}
	j := l.Interior().At(0)
	if j.Kind != loc.KindAccountKey20 {
		return nil, ErrNoMatch
	}
	if !j.Network.IsAny() && !j.Network.Equal(c.network) {
		return nil, ErrNoMatch
	}
	return Account(append([]byte(nil), j.AccountKey[:]...)), nil
}

func (c *AccountKey20Alias) Reverse(a Account) (loc.Location, error) {
	if len(a) != Width20 {
		return loc.Location{}, ErrNoMatch
	}
	var key [20]byte
	copy(key[:], a)
	return accountLocation(loc.AccountKey20(c.network, key)), nil
}

func accountLocation(j loc.Junction) loc.Location {
	interior, err := loc.Path(j)
	if err != nil {
		// A single junction cannot overflow the capacity of 8.
		panic(err)
	}
	return loc.New(0, interior)
}
