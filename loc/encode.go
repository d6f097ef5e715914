package loc

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Canonical binary form of a location. Exactly one byte form exists per
// location value: fixed-width big-endian integers, one tag byte per junction,
// single-byte length prefixes for variable fields. The form exists so that
// derived identities (hashes, content IDs) are stable; it is not a wire
// protocol.
//
// Layout: parents | interior-count | junction...
//
// This is the only encoding the module itself depends on. Transport codecs
// live with their transports.

// MaxKeyLen bounds GeneralKey keys and named-network names so both fit a
// single-byte length prefix.
const MaxKeyLen = 255

var errNonCanonical = errors.New("loc: non-canonical binary form")

// AppendBinary appends the canonical binary form of l to dst.
func (l Location) AppendBinary(dst []byte) ([]byte, error) {
	dst = append(dst, l.parents, byte(l.interior.n))
	for i := 0; i < l.interior.n; i++ {
		var err error
		dst, err = appendJunction(dst, l.interior.j[i])
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// EncodeBinary returns the canonical binary form of l.
func (l Location) EncodeBinary() ([]byte, error) {
	return l.AppendBinary(make([]byte, 0, 2+l.interior.n*8))
}

func appendJunction(dst []byte, j Junction) ([]byte, error) {
	dst = append(dst, byte(j.Kind))
	switch j.Kind {
	case KindParachain:
		dst = binary.BigEndian.AppendUint32(dst, j.Parachain)
	case KindAccountID32:
		var err error
		if dst, err = appendNetwork(dst, j.Network); err != nil {
			return nil, err
		}
		dst = append(dst, j.AccountID[:]...)
	case KindAccountKey20:
		var err error
		if dst, err = appendNetwork(dst, j.Network); err != nil {
			return nil, err
		}
		dst = append(dst, j.AccountKey[:]...)
	case KindPalletInstance:
		dst = append(dst, j.Pallet)
	case KindGeneralIndex:
		dst = binary.BigEndian.AppendUint64(dst, j.IndexHi)
		dst = binary.BigEndian.AppendUint64(dst, j.IndexLo)
	case KindGeneralKey:
		if len(j.Key) > MaxKeyLen {
			return nil, fmt.Errorf("loc: general key exceeds %d bytes", MaxKeyLen)
		}
		dst = append(dst, byte(len(j.Key)))
		dst = append(dst, j.Key...)
	case KindOnlyChild:
		// tag only
	case KindPlurality:
		dst = binary.BigEndian.AppendUint32(dst, j.Body)
		dst = binary.BigEndian.AppendUint32(dst, j.Part)
	default:
		return nil, fmt.Errorf("loc: unknown junction kind %d", j.Kind)
	}
	return dst, nil
}

func appendNetwork(dst []byte, n NetworkID) ([]byte, error) {
	dst = append(dst, byte(n.Kind))
	switch n.Kind {
	case NetworkAny, NetworkPolkadot, NetworkKusama:
		return dst, nil
	case NetworkNamed:
		if len(n.Name) > MaxKeyLen {
			return nil, fmt.Errorf("loc: network name exceeds %d bytes", MaxKeyLen)
		}
		dst = append(dst, byte(len(n.Name)))
		return append(dst, n.Name...), nil
	default:
		return nil, fmt.Errorf("loc: unknown network kind %d", n.Kind)
	}
}

// DecodeBinary parses the canonical binary form. It rejects unknown tags,
// interior counts beyond MaxJunctions, and trailing bytes.
func DecodeBinary(data []byte) (Location, error) {
	r := byteReader{data: data}
	parents, err := r.byte()
	if err != nil {
		return Location{}, err
	}
	count, err := r.byte()
	if err != nil {
		return Location{}, err
	}
	if int(count) > MaxJunctions {
		return Location{}, ErrOverflow
	}
	var interior Junctions
	for i := 0; i < int(count); i++ {
		j, err := r.junction()
		if err != nil {
			return Location{}, err
		}
		if err := interior.PushBack(j); err != nil {
			return Location{}, err
		}
	}
	if r.rest() != 0 {
		return Location{}, errNonCanonical
	}
	return New(parents, interior), nil
}

type byteReader struct {
	data []byte
	off  int
}

func (r *byteReader) rest() int { return len(r.data) - r.off }

func (r *byteReader) byte() (byte, error) {
	if r.rest() < 1 {
		return 0, errNonCanonical
	}
	b := r.data[r.off]
	r.off++
	return b, nil
}

func (r *byteReader) take(n int) ([]byte, error) {
	if r.rest() < n {
		return nil, errNonCanonical
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *byteReader) uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *byteReader) uint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (r *byteReader) junction() (Junction, error) {
	tag, err := r.byte()
	if err != nil {
		return Junction{}, err
	}
	switch JunctionKind(tag) {
	case KindParachain:
		id, err := r.uint32()
		if err != nil {
			return Junction{}, err
		}
		return Parachain(id), nil
	case KindAccountID32:
		n, err := r.network()
		if err != nil {
			return Junction{}, err
		}
		b, err := r.take(32)
		if err != nil {
			return Junction{}, err
		}
		var id [32]byte
		copy(id[:], b)
		return AccountID32(n, id), nil
	case KindAccountKey20:
		n, err := r.network()
		if err != nil {
			return Junction{}, err
		}
		b, err := r.take(20)
		if err != nil {
			return Junction{}, err
		}
		var key [20]byte
		copy(key[:], b)
		return AccountKey20(n, key), nil
	case KindPalletInstance:
		b, err := r.byte()
		if err != nil {
			return Junction{}, err
		}
		return PalletInstance(b), nil
	case KindGeneralIndex:
		hi, err := r.uint64()
		if err != nil {
			return Junction{}, err
		}
		lo, err := r.uint64()
		if err != nil {
			return Junction{}, err
		}
		return GeneralIndex(hi, lo), nil
	case KindGeneralKey:
		n, err := r.byte()
		if err != nil {
			return Junction{}, err
		}
		b, err := r.take(int(n))
		if err != nil {
			return Junction{}, err
		}
		return GeneralKey(b), nil
	case KindOnlyChild:
		return OnlyChild(), nil
	case KindPlurality:
		body, err := r.uint32()
		if err != nil {
			return Junction{}, err
		}
		part, err := r.uint32()
		if err != nil {
			return Junction{}, err
		}
		return Plurality(body, part), nil
	default:
		return Junction{}, fmt.Errorf("loc: unknown junction tag %d", tag)
	}
}

func (r *byteReader) network() (NetworkID, error) {
	tag, err := r.byte()
	if err != nil {
		return NetworkID{}, err
	}
	switch NetworkKind(tag) {
	case NetworkAny:
		return AnyNetwork(), nil
	case NetworkNamed:
		n, err := r.byte()
		if err != nil {
			return NetworkID{}, err
		}
		name, err := r.take(int(n))
		if err != nil {
			return NetworkID{}, err
		}
		return NamedNetwork(name), nil
	case NetworkPolkadot:
		return Polkadot(), nil
	case NetworkKusama:
		return Kusama(), nil
	default:
		return NetworkID{}, fmt.Errorf("loc: unknown network tag %d", tag)
	}
}
