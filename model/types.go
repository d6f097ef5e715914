package model

import (
	"encoding/hex"
	"fmt"

	"xdao.co/conloc/convert"
	"xdao.co/conloc/loc"
)

// Junction is the JSON projection of one descent step. Kind selects which of
// the remaining fields are meaningful.
//
// JSON note: byte fields (Account, Key, Network names) are 0x-prefixed hex.
type Junction struct {
	Kind      string `json:"kind"`
	Parachain uint32 `json:"parachain,omitempty"`
	Network   string `json:"network,omitempty"`
	Account   string `json:"account,omitempty"`
	Pallet    uint8  `json:"pallet,omitempty"`
	IndexHi   uint64 `json:"indexHi,omitempty"`
	IndexLo   uint64 `json:"indexLo,omitempty"`
	Key       string `json:"key,omitempty"`
	Body      uint32 `json:"body,omitempty"`
	Part      uint32 `json:"part,omitempty"`
}

// Junction kind names used on the wire.
const (
	KindParachain      = "parachain"
	KindAccountID32    = "accountId32"
	KindAccountKey20   = "accountKey20"
	KindPalletInstance = "palletInstance"
	KindGeneralIndex   = "generalIndex"
	KindGeneralKey     = "generalKey"
	KindOnlyChild      = "onlyChild"
	KindPlurality      = "plurality"
)

// Location is the JSON projection of a relative location.
type Location struct {
	Parents  uint8      `json:"parents"`
	Interior []Junction `json:"interior,omitempty"`
}

// ReanchorRequest carries the two inputs of a reframing operation.
type ReanchorRequest struct {
	Target   Location `json:"target"`
	Inverted Location `json:"inverted"`
}

// ConvertResponse carries a derived account identifier.
type ConvertResponse struct {
	Account string `json:"account"` // 0x-prefixed hex
}

// FromLocation projects a location value.
func FromLocation(l loc.Location) Location {
	out := Location{Parents: l.Parents()}
	for _, j := range l.Interior().Slice() {
		out.Interior = append(out.Interior, fromJunction(j))
	}
	return out
}

// ToLocation rebuilds the location value, validating shape and depth.
func (l Location) ToLocation() (loc.Location, error) {
	var interior loc.Junctions
	for i, j := range l.Interior {
		dj, err := j.toJunction()
		if err != nil {
			return loc.Location{}, fmt.Errorf("model: interior[%d]: %w", i, err)
		}
		if err := interior.PushBack(dj); err != nil {
			return loc.Location{}, err
		}
	}
	return loc.New(l.Parents, interior), nil
}

// FromAccount projects an account identifier.
func FromAccount(a convert.Account) string {
	return "0x" + hex.EncodeToString(a)
}

// ToAccount parses a projected account identifier.
func ToAccount(s string) (convert.Account, error) {
	if len(s) < 2 || s[:2] != "0x" {
		return nil, fmt.Errorf("model: account must be 0x-prefixed hex, got %q", s)
	}
	b, err := hex.DecodeString(s[2:])
	if err != nil {
		return nil, fmt.Errorf("model: bad account hex %q", s)
	}
	return convert.Account(b), nil
}

func fromJunction(j loc.Junction) Junction {
	switch j.Kind {
	case loc.KindParachain:
		return Junction{Kind: KindParachain, Parachain: j.Parachain}
	case loc.KindAccountID32:
		return Junction{
			Kind:    KindAccountID32,
			Network: fromNetwork(j.Network),
			Account: "0x" + hex.EncodeToString(j.AccountID[:]),
		}
	case loc.KindAccountKey20:
		return Junction{
			Kind:    KindAccountKey20,
			Network: fromNetwork(j.Network),
			Account: "0x" + hex.EncodeToString(j.AccountKey[:]),
		}
	case loc.KindPalletInstance:
		return Junction{Kind: KindPalletInstance, Pallet: j.Pallet}
	case loc.KindGeneralIndex:
		return Junction{Kind: KindGeneralIndex, IndexHi: j.IndexHi, IndexLo: j.IndexLo}
	case loc.KindGeneralKey:
		return Junction{Kind: KindGeneralKey, Key: "0x" + hex.EncodeToString(j.Key)}
	case loc.KindOnlyChild:
		return Junction{Kind: KindOnlyChild}
	case loc.KindPlurality:
		return Junction{Kind: KindPlurality, Body: j.Body, Part: j.Part}
	default:
		return Junction{Kind: fmt.Sprintf("unknown(%d)", j.Kind)}
	}
}

func (j Junction) toJunction() (loc.Junction, error) {
	switch j.Kind {
	case KindParachain:
		return loc.Parachain(j.Parachain), nil
	case KindAccountID32:
		n, err := toNetwork(j.Network)
		if err != nil {
			return loc.Junction{}, err
		}
		b, err := decodeHexField("account", j.Account, 32)
		if err != nil {
			return loc.Junction{}, err
		}
		var id [32]byte
		copy(id[:], b)
		return loc.AccountID32(n, id), nil
	case KindAccountKey20:
		n, err := toNetwork(j.Network)
		if err != nil {
			return loc.Junction{}, err
		}
		b, err := decodeHexField("account", j.Account, 20)
		if err != nil {
			return loc.Junction{}, err
		}
		var key [20]byte
		copy(key[:], b)
		return loc.AccountKey20(n, key), nil
	case KindPalletInstance:
		return loc.PalletInstance(j.Pallet), nil
	case KindGeneralIndex:
		return loc.GeneralIndex(j.IndexHi, j.IndexLo), nil
	case KindGeneralKey:
		b, err := decodeHexField("key", j.Key, -1)
		if err != nil {
			return loc.Junction{}, err
		}
		return loc.GeneralKey(b), nil
	case KindOnlyChild:
		return loc.OnlyChild(), nil
	case KindPlurality:
		return loc.Plurality(j.Body, j.Part), nil
	default:
		return loc.Junction{}, fmt.Errorf("unknown junction kind %q", j.Kind)
	}
}

func fromNetwork(n loc.NetworkID) string {
	switch n.Kind {
	case loc.NetworkAny:
		return "any"
	case loc.NetworkPolkadot:
		return "polkadot"
	case loc.NetworkKusama:
		return "kusama"
	case loc.NetworkNamed:
		return "0x" + hex.EncodeToString(n.Name)
	default:
		return fmt.Sprintf("unknown(%d)", n.Kind)
	}
}

func toNetwork(s string) (loc.NetworkID, error) {
	switch s {
	case "any", "":
		return loc.AnyNetwork(), nil
	case "polkadot":
		return loc.Polkadot(), nil
	case "kusama":
		return loc.Kusama(), nil
	}
	name, err := decodeHexField("network", s, -1)
	if err != nil {
		return loc.NetworkID{}, err
	}
	return loc.NamedNetwork(name), nil
}

func decodeHexField(field, s string, want int) ([]byte, error) {
	if len(s) < 2 || s[:2] != "0x" {
		return nil, fmt.Errorf("%s must be 0x-prefixed hex, got %q", field, s)
	}
	b, err := hex.DecodeString(s[2:])
	if err != nil {
		return nil, fmt.Errorf("bad %s hex %q", field, s)
	}
	if want >= 0 && len(b) != want {
		return nil, fmt.Errorf("%s must be %d bytes, got %d", field, want, len(b))
	}
	return b, nil
}
