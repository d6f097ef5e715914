package loc

import (
	"bytes"
	"errors"
	"testing"
)

func sampleLocations(t *testing.T) []Location {
	t.Helper()
	var id [32]byte
	var key [20]byte
	for i := range id {
		id[i] = byte(i)
	}
	for i := range key {
		key[i] = byte(0xA0 + i)
	}
	return []Location{
		Here(),
		Ancestor(1),
		Ancestor(255),
		New(0, mustPath(t, Parachain(2000))),
		New(1, mustPath(t, Parachain(2), AccountID32(AnyNetwork(), id))),
		New(0, mustPath(t, AccountKey20(Kusama(), key))),
		New(2, mustPath(t, Parachain(1000), PalletInstance(42), GeneralIndex(1, 7))),
		New(0, mustPath(t, GeneralKey([]byte("BNC")), OnlyChild())),
		New(0, mustPath(t, Plurality(3, 1))),
		New(0, mustPath(t, AccountID32(NamedNetwork([]byte("testnet")), id))),
	}
}

func TestEncodeBinary_RoundTrip(t *testing.T) {
	for _, l := range sampleLocations(t) {
		b, err := l.EncodeBinary()
		if err != nil {
			t.Fatalf("EncodeBinary(%s): %v", l, err)
		}
		got, err := DecodeBinary(b)
		if err != nil {
			t.Fatalf("DecodeBinary(%s): %v", l, err)
		}
		if !got.Equal(l) {
			t.Fatalf("round trip: got %s, want %s", got, l)
		}
	}
}

func TestEncodeBinary_Deterministic(t *testing.T) {
	for _, l := range sampleLocations(t) {
		a, err := l.EncodeBinary()
		if err != nil {
			t.Fatalf("EncodeBinary: %v", err)
		}
		b, err := l.EncodeBinary()
		if err != nil {
			t.Fatalf("EncodeBinary: %v", err)
		}
		if !bytes.Equal(a, b) {
			t.Fatalf("encoding of %s is not stable", l)
		}
	}
}

func TestEncodeBinary_DistinguishesLocations(t *testing.T) {
	seen := map[string]Location{}
	for _, l := range sampleLocations(t) {
		b, err := l.EncodeBinary()
		if err != nil {
			t.Fatalf("EncodeBinary: %v", err)
		}
		if prev, dup := seen[string(b)]; dup {
			t.Fatalf("locations %s and %s share canonical bytes", prev, l)
		}
		seen[string(b)] = l
	}
}

func TestDecodeBinary_RejectsTrailingBytes(t *testing.T) {
	b, err := New(1, mustPath(t, Parachain(1))).EncodeBinary()
	if err != nil {
		t.Fatalf("EncodeBinary: %v", err)
	}
	if _, err := DecodeBinary(append(b, 0)); err == nil {
		t.Fatalf("expected rejection of trailing bytes")
	}
}

func TestDecodeBinary_RejectsTruncation(t *testing.T) {
	b, err := New(0, mustPath(t, Parachain(88), GeneralKey([]byte("key")))).EncodeBinary()
	if err != nil {
		t.Fatalf("EncodeBinary: %v", err)
	}
	for n := 0; n < len(b); n++ {
		if _, err := DecodeBinary(b[:n]); err == nil {
			t.Fatalf("expected rejection of %d-byte prefix", n)
		}
	}
}

func TestDecodeBinary_RejectsUnknownTags(t *testing.T) {
	if _, err := DecodeBinary([]byte{0, 1, 99}); err == nil {
		t.Fatalf("expected rejection of unknown junction tag")
	}
	if _, err := DecodeBinary([]byte{0, 1, byte(KindAccountID32), 77}); err == nil {
		t.Fatalf("expected rejection of unknown network tag")
	}
}

func TestDecodeBinary_RejectsExcessCount(t *testing.T) {
	_, err := DecodeBinary([]byte{0, MaxJunctions + 1})
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("got %v, want ErrOverflow", err)
	}
}

func TestEncodeBinary_RejectsOversizedKey(t *testing.T) {
	l := New(0, mustPath(t, GeneralKey(make([]byte, MaxKeyLen+1))))
	if _, err := l.EncodeBinary(); err == nil {
		t.Fatalf("expected rejection of oversized general key")
	}
}
