package loc

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Textual form of a location, used by the CLI and in diagnostics. The grammar
// is path-like: `here` for the current system, leading `..` segments for
// ascent, then junction segments joined by `/`:
//
//	here
//	../..
//	../Parachain(2)/AccountId32(any:0x<64 hex>)
//	Parachain(1000)/PalletInstance(42)/GeneralIndex(7)
//
// Networks are written any, polkadot, kusama, or 0x<hex> for a named network.
// Parsing is strict; Format(ParseLocation(s)) == s for every accepted s.

// Format renders l in the textual form.
func Format(l Location) string {
	var parts []string
	for i := uint8(0); i < l.parents; i++ {
		parts = append(parts, "..")
	}
	for i := 0; i < l.interior.n; i++ {
		parts = append(parts, formatJunction(l.interior.j[i]))
	}
	if len(parts) == 0 {
		return "here"
	}
	return strings.Join(parts, "/")
}

// String renders l in the textual form.
func (l Location) String() string { return Format(l) }

func formatJunction(j Junction) string {
	switch j.Kind {
	case KindParachain:
		return fmt.Sprintf("Parachain(%d)", j.Parachain)
	case KindAccountID32:
		return fmt.Sprintf("AccountId32(%s:0x%x)", formatNetwork(j.Network), j.AccountID)
	case KindAccountKey20:
		return fmt.Sprintf("AccountKey20(%s:0x%x)", formatNetwork(j.Network), j.AccountKey)
	case KindPalletInstance:
		return fmt.Sprintf("PalletInstance(%d)", j.Pallet)
	case KindGeneralIndex:
		if j.IndexHi == 0 {
			return fmt.Sprintf("GeneralIndex(%d)", j.IndexLo)
		}
		return fmt.Sprintf("GeneralIndex(0x%x%016x)", j.IndexHi, j.IndexLo)
	case KindGeneralKey:
		return fmt.Sprintf("GeneralKey(0x%x)", j.Key)
	case KindOnlyChild:
		return "OnlyChild"
	case KindPlurality:
		return fmt.Sprintf("Plurality(%d,%d)", j.Body, j.Part)
	default:
		return fmt.Sprintf("Unknown(%d)", j.Kind)
	}
}

func formatNetwork(n NetworkID) string {
	switch n.Kind {
	case NetworkAny:
		return "any"
	case NetworkPolkadot:
		return "polkadot"
	case NetworkKusama:
		return "kusama"
	case NetworkNamed:
		return "0x" + hex.EncodeToString(n.Name)
	default:
		return fmt.Sprintf("unknown(%d)", n.Kind)
	}
}

// ParseLocation parses the textual form.
func ParseLocation(s string) (Location, error) {
	if s == "here" {
		return Here(), nil
	}
	if s == "" {
		return Location{}, errors.New("loc: empty location")
	}
	parents := 0
	var interior Junctions
	segs := strings.Split(s, "/")
	i := 0
	for ; i < len(segs) && segs[i] == ".."; i++ {
		parents++
	}
	if parents > 255 {
		return Location{}, ErrOverflow
	}
	for ; i < len(segs); i++ {
		if segs[i] == ".." {
			return Location{}, errors.New("loc: ascent after descent")
		}
		j, err := parseJunction(segs[i])
		if err != nil {
			return Location{}, err
		}
		if err := interior.PushBack(j); err != nil {
			return Location{}, err
		}
	}
	return New(uint8(parents), interior), nil
}

func parseJunction(s string) (Junction, error) {
	if s == "OnlyChild" {
		return OnlyChild(), nil
	}
	name, rest, ok := strings.Cut(s, "(")
	if !ok || !strings.HasSuffix(rest, ")") {
		return Junction{}, fmt.Errorf("loc: malformed junction %q", s)
	}
	arg := strings.TrimSuffix(rest, ")")
	switch name {
	case "Parachain":
		id, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return Junction{}, fmt.Errorf("loc: bad sub-system id %q", arg)
		}
		return Parachain(uint32(id)), nil
	case "AccountId32":
		n, b, err := parseAccountArg(arg, 32)
		if err != nil {
			return Junction{}, err
		}
		var id [32]byte
		copy(id[:], b)
		return AccountID32(n, id), nil
	case "AccountKey20":
		n, b, err := parseAccountArg(arg, 20)
		if err != nil {
			return Junction{}, err
		}
		var key [20]byte
		copy(key[:], b)
		return AccountKey20(n, key), nil
	case "PalletInstance":
		idx, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			return Junction{}, fmt.Errorf("loc: bad pallet instance %q", arg)
		}
		return PalletInstance(uint8(idx)), nil
	case "GeneralIndex":
		return parseGeneralIndex(arg)
	case "GeneralKey":
		b, err := parseHex(arg)
		if err != nil {
			return Junction{}, err
		}
		if len(b) > MaxKeyLen {
			return Junction{}, fmt.Errorf("loc: general key exceeds %d bytes", MaxKeyLen)
		}
		return GeneralKey(b), nil
	case "Plurality":
		bodyStr, partStr, ok := strings.Cut(arg, ",")
		if !ok {
			return Junction{}, fmt.Errorf("loc: malformed plurality %q", arg)
		}
		body, err := strconv.ParseUint(bodyStr, 10, 32)
		if err != nil {
			return Junction{}, fmt.Errorf("loc: bad plurality body %q", bodyStr)
		}
		part, err := strconv.ParseUint(partStr, 10, 32)
		if err != nil {
			return Junction{}, fmt.Errorf("loc: bad plurality part %q", partStr)
		}
		return Plurality(uint32(body), uint32(part)), nil
	default:
		return Junction{}, fmt.Errorf("loc: unknown junction %q", name)
	}
}

func parseAccountArg(arg string, width int) (NetworkID, []byte, error) {
	netStr, acctStr, ok := strings.Cut(arg, ":")
	if !ok {
		return NetworkID{}, nil, fmt.Errorf("loc: malformed account junction %q", arg)
	}
	n, err := parseNetwork(netStr)
	if err != nil {
		return NetworkID{}, nil, err
	}
	b, err := parseHex(acctStr)
	if err != nil {
		return NetworkID{}, nil, err
	}
	if len(b) != width {
		return NetworkID{}, nil, fmt.Errorf("loc: account must be %d bytes, got %d", width, len(b))
	}
	return n, b, nil
}

// ParseNetwork parses a network name as it appears in account junctions:
// "any", "polkadot", "kusama", or 0x-prefixed hex naming a network.
func ParseNetwork(s string) (NetworkID, error) { return parseNetwork(s) }

func parseNetwork(s string) (NetworkID, error) {
	switch s {
	case "any":
		return AnyNetwork(), nil
	case "polkadot":
		return Polkadot(), nil
	case "kusama":
		return Kusama(), nil
	}
	if strings.HasPrefix(s, "0x") {
		name, err := parseHex(s)
		if err != nil {
			return NetworkID{}, err
		}
		if len(name) > MaxKeyLen {
			return NetworkID{}, fmt.Errorf("loc: network name exceeds %d bytes", MaxKeyLen)
		}
		return NamedNetwork(name), nil
	}
	return NetworkID{}, fmt.Errorf("loc: unknown network %q", s)
}

func parseGeneralIndex(arg string) (Junction, error) {
	if strings.HasPrefix(arg, "0x") {
		digits := strings.TrimPrefix(arg, "0x")
		if len(digits) == 0 || len(digits) > 32 {
			return Junction{}, fmt.Errorf("loc: bad general index %q", arg)
		}
		var hi, lo uint64
		if len(digits) > 16 {
			var err error
			hi, err = strconv.ParseUint(digits[:len(digits)-16], 16, 64)
			if err != nil {
				return Junction{}, fmt.Errorf("loc: bad general index %q", arg)
			}
			digits = digits[len(digits)-16:]
		}
		lo, err := strconv.ParseUint(digits, 16, 64)
		if err != nil {
			return Junction{}, fmt.Errorf("loc: bad general index %q", arg)
		}
		return GeneralIndex(hi, lo), nil
	}
	lo, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return Junction{}, fmt.Errorf("loc: bad general index %q", arg)
	}
	return GeneralIndex(0, lo), nil
}

func parseHex(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") {
		return nil, fmt.Errorf("loc: expected 0x-prefixed hex, got %q", s)
	}
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("loc: bad hex %q", s)
	}
	return b, nil
}
