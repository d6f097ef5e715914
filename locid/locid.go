// Package locid derives content identifiers for locations.
//
// The identifier is an IPFS-compatible CIDv1 (raw + sha2-256) over the
// canonical binary form of the location. Two locations share an identifier
// exactly when they are structurally equal, which makes the ID usable as a
// stable diagnostic and cache key. An ID is not an account: account
// derivation stays with the conversion schemes.
package locid

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"xdao.co/conloc/loc"
)

// ID returns the CIDv1 (raw + sha2-256) of l's canonical binary form.
func ID(l loc.Location) (cid.Cid, error) {
	b, err := l.EncodeBinary()
	if err != nil {
		return cid.Undef, err
	}
	sum, err := multihash.Sum(b, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// IDString returns ID(l) rendered as a CID string.
func IDString(l loc.Location) (string, error) {
	id, err := ID(l)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
