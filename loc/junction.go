package loc

import "bytes"

// NetworkKind discriminates NetworkID values.
type NetworkKind uint8

const (
	// NetworkAny is the wildcard: the junction does not pin a network.
	NetworkAny NetworkKind = iota
	// NetworkNamed identifies a network by an opaque name.
	NetworkNamed
	// NetworkPolkadot and NetworkKusama are the standard named networks.
	NetworkPolkadot
	NetworkKusama
)

// NetworkID tags an account junction with the consensus network the account
// belongs to. The zero value is the wildcard.
type NetworkID struct {
	Kind NetworkKind
	Name []byte // set only for NetworkNamed
}

// AnyNetwork returns the wildcard network tag.
func AnyNetwork() NetworkID { return NetworkID{Kind: NetworkAny} }

// NamedNetwork returns a network tag carrying an opaque name.
func NamedNetwork(name []byte) NetworkID {
	return NetworkID{Kind: NetworkNamed, Name: append([]byte(nil), name...)}
}

// Polkadot and Kusama return the standard network tags.
func Polkadot() NetworkID { return NetworkID{Kind: NetworkPolkadot} }
func Kusama() NetworkID   { return NetworkID{Kind: NetworkKusama} }

// IsAny reports whether n is the wildcard.
func (n NetworkID) IsAny() bool { return n.Kind == NetworkAny }

// Equal reports structural equality of two network tags.
func (n NetworkID) Equal(o NetworkID) bool {
	if n.Kind != o.Kind {
		return false
	}
	if n.Kind == NetworkNamed {
		return bytes.Equal(n.Name, o.Name)
	}
	return true
}

// JunctionKind discriminates Junction values. The set is closed: algorithms
// in this module match exhaustively on it, and a new kind requires updating
// every matcher.
type JunctionKind uint8

const (
	KindParachain JunctionKind = iota + 1
	KindAccountID32
	KindAccountKey20
	KindPalletInstance
	KindGeneralIndex
	KindGeneralKey
	KindOnlyChild
	KindPlurality
)

// Junction is one descent step in the system tree: an indexed sub-system, an
// account reference, a pallet sub-index, a generic index or key, the
// structural OnlyChild placeholder, or a plurality (collective body) marker.
//
// Only the fields relevant to Kind are meaningful; constructors below are the
// supported way to build one.
type Junction struct {
	Kind JunctionKind

	Parachain  uint32    // KindParachain
	Network    NetworkID // KindAccountID32, KindAccountKey20
	AccountID  [32]byte  // KindAccountID32
	AccountKey [20]byte  // KindAccountKey20
	Pallet     uint8     // KindPalletInstance
	IndexHi    uint64    // KindGeneralIndex, high 64 bits
	IndexLo    uint64    // KindGeneralIndex, low 64 bits
	Key        []byte    // KindGeneralKey
	Body       uint32    // KindPlurality
	Part       uint32    // KindPlurality
}

// Parachain names a sub-system by its numeric identifier within the parent's
// namespace.
func Parachain(id uint32) Junction {
	return Junction{Kind: KindParachain, Parachain: id}
}

// AccountID32 references a 32-byte account on the given network.
func AccountID32(network NetworkID, id [32]byte) Junction {
	return Junction{Kind: KindAccountID32, Network: network, AccountID: id}
}

// AccountKey20 references a 20-byte account key on the given network.
func AccountKey20(network NetworkID, key [20]byte) Junction {
	return Junction{Kind: KindAccountKey20, Network: network, AccountKey: key}
}

// PalletInstance names an instanced sub-component of the enclosing system.
func PalletInstance(i uint8) Junction {
	return Junction{Kind: KindPalletInstance, Pallet: i}
}

// GeneralIndex is a non-descript 128-bit index, split into high and low
// 64-bit halves.
func GeneralIndex(hi, lo uint64) Junction {
	return Junction{Kind: KindGeneralIndex, IndexHi: hi, IndexLo: lo}
}

// GeneralKey is a non-descript opaque key.
func GeneralKey(key []byte) Junction {
	return Junction{Kind: KindGeneralKey, Key: append([]byte(nil), key...)}
}

// OnlyChild is the placeholder for the sole, otherwise-unspecified descendant
// of a system. Inversion pads with it when ascent exceeds the known ancestry.
func OnlyChild() Junction { return Junction{Kind: KindOnlyChild} }

// Plurality marks a pluralistic body (a collective) and the part of it that
// is being referenced.
func Plurality(body, part uint32) Junction {
	return Junction{Kind: KindPlurality, Body: body, Part: part}
}

// Equal reports structural equality of two junctions.
func (j Junction) Equal(o Junction) bool {
	if j.Kind != o.Kind {
		return false
	}
	switch j.Kind {
	case KindParachain:
		return j.Parachain == o.Parachain
	case KindAccountID32:
		return j.Network.Equal(o.Network) && j.AccountID == o.AccountID
	case KindAccountKey20:
		return j.Network.Equal(o.Network) && j.AccountKey == o.AccountKey
	case KindPalletInstance:
		return j.Pallet == o.Pallet
	case KindGeneralIndex:
		return j.IndexHi == o.IndexHi && j.IndexLo == o.IndexLo
	case KindGeneralKey:
		return bytes.Equal(j.Key, o.Key)
	case KindOnlyChild:
		return true
	case KindPlurality:
		return j.Body == o.Body && j.Part == o.Part
	default:
		return false
	}
}
