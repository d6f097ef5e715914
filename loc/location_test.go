package loc

import (
	"errors"
	"testing"
)

func mustPath(t *testing.T, js ...Junction) Junctions {
	t.Helper()
	p, err := Path(js...)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	return p
}

func TestTakeFirst_ConsumesFromFront(t *testing.T) {
	ancestry := New(0, mustPath(t, Parachain(1000), PalletInstance(42)))
	if got := ancestry.Len(); got != 2 {
		t.Fatalf("Len: got %d, want 2", got)
	}

	first, ok := ancestry.TakeFirst()
	if !ok {
		t.Fatalf("TakeFirst: expected junction")
	}
	if !first.Equal(Parachain(1000)) {
		t.Fatalf("TakeFirst: got %v", first)
	}
	if !ancestry.Equal(New(0, mustPath(t, PalletInstance(42)))) {
		t.Fatalf("after first take: got %s", ancestry)
	}

	first, ok = ancestry.TakeFirst()
	if !ok || !first.Equal(PalletInstance(42)) {
		t.Fatalf("second take: got %v ok=%v", first, ok)
	}
	if !ancestry.Equal(Here()) {
		t.Fatalf("after second take: got %s", ancestry)
	}

	// Draining an empty interior reports none and leaves the value alone.
	for i := 0; i < 2; i++ {
		if _, ok := ancestry.TakeFirst(); ok {
			t.Fatalf("TakeFirst on empty: expected ok=false")
		}
		if !ancestry.Equal(Here()) {
			t.Fatalf("empty take mutated location: %s", ancestry)
		}
	}
}

func TestTakeFirst_LeavesParentsAlone(t *testing.T) {
	l := New(2, mustPath(t, Parachain(7)))
	j, ok := l.TakeFirst()
	if !ok || !j.Equal(Parachain(7)) {
		t.Fatalf("TakeFirst: got %v ok=%v", j, ok)
	}
	if l.Parents() != 2 || l.Len() != 0 {
		t.Fatalf("got %s, want ascend-only(2)", l)
	}
}

func TestTakeLast_ConsumesFromBack(t *testing.T) {
	js := mustPath(t, Parachain(1), PalletInstance(2), OnlyChild())
	j, ok := js.TakeLast()
	if !ok || !j.Equal(OnlyChild()) {
		t.Fatalf("TakeLast: got %v ok=%v", j, ok)
	}
	if !js.Equal(mustPath(t, Parachain(1), PalletInstance(2))) {
		t.Fatalf("after TakeLast: got %v", js.Slice())
	}
	empty := Junctions{}
	if _, ok := empty.TakeLast(); ok {
		t.Fatalf("TakeLast on empty: expected ok=false")
	}
}

func TestPushBack_OverflowsAtCapacity(t *testing.T) {
	var js Junctions
	for i := 0; i < MaxJunctions; i++ {
		if err := js.PushBack(PalletInstance(uint8(i))); err != nil {
			t.Fatalf("PushBack %d: %v", i, err)
		}
	}
	if err := js.PushBack(OnlyChild()); !errors.Is(err, ErrOverflow) {
		t.Fatalf("PushBack past capacity: got %v, want ErrOverflow", err)
	}
	if js.Len() != MaxJunctions {
		t.Fatalf("overflowing push changed length: %d", js.Len())
	}
}

func TestPushFront_PrependsAndOverflows(t *testing.T) {
	js := mustPath(t, PalletInstance(42))
	if err := js.PushFront(Parachain(1000)); err != nil {
		t.Fatalf("PushFront: %v", err)
	}
	if !js.Equal(mustPath(t, Parachain(1000), PalletInstance(42))) {
		t.Fatalf("PushFront order: got %v", js.Slice())
	}
	for js.Len() < MaxJunctions {
		if err := js.PushFront(OnlyChild()); err != nil {
			t.Fatalf("PushFront: %v", err)
		}
	}
	if err := js.PushFront(OnlyChild()); !errors.Is(err, ErrOverflow) {
		t.Fatalf("PushFront past capacity: got %v, want ErrOverflow", err)
	}
}

func TestIsAscendOnly(t *testing.T) {
	if !Ancestor(1).IsAscendOnly(1) {
		t.Fatalf("Ancestor(1) should be ascend-only(1)")
	}
	if Ancestor(2).IsAscendOnly(1) {
		t.Fatalf("Ancestor(2) is not ascend-only(1)")
	}
	if New(1, mustPath(t, Parachain(1))).IsAscendOnly(1) {
		t.Fatalf("non-empty interior is not ascend-only")
	}
	if !Here().IsAscendOnly(0) {
		t.Fatalf("Here should be ascend-only(0)")
	}
}

func TestJunctionEqual_DiscriminatesKindsAndPayloads(t *testing.T) {
	var id [32]byte
	id[0] = 1
	cases := []struct {
		a, b Junction
		want bool
	}{
		{Parachain(1), Parachain(1), true},
		{Parachain(1), Parachain(2), false},
		{Parachain(1), PalletInstance(1), false},
		{AccountID32(AnyNetwork(), id), AccountID32(AnyNetwork(), id), true},
		{AccountID32(AnyNetwork(), id), AccountID32(Polkadot(), id), false},
		{AccountID32(AnyNetwork(), id), AccountID32(AnyNetwork(), [32]byte{}), false},
		{GeneralKey([]byte("BNC")), GeneralKey([]byte("BNC")), true},
		{GeneralKey([]byte("BNC")), GeneralKey([]byte("KAR")), false},
		{GeneralIndex(0, 42), GeneralIndex(0, 42), true},
		{GeneralIndex(1, 42), GeneralIndex(0, 42), false},
		{OnlyChild(), OnlyChild(), true},
		{Plurality(1, 2), Plurality(1, 2), true},
		{Plurality(1, 2), Plurality(1, 3), false},
		{
			AccountID32(NamedNetwork([]byte("testnet")), [32]byte{}),
			AccountID32(NamedNetwork([]byte("testnet")), [32]byte{}),
			true,
		},
		{
			AccountID32(NamedNetwork([]byte("testnet")), [32]byte{}),
			AccountID32(NamedNetwork([]byte("othernet")), [32]byte{}),
			false,
		},
	}
	for i, c := range cases {
		if got := c.a.Equal(c.b); got != c.want {
			t.Fatalf("case %d: Equal(%v, %v) = %v, want %v", i, c.a, c.b, got, c.want)
		}
	}
}

func TestWorkingCopyDoesNotAliasOriginal(t *testing.T) {
	orig := New(1, mustPath(t, Parachain(1), PalletInstance(2)))
	work := orig
	if _, ok := work.TakeFirst(); !ok {
		t.Fatalf("TakeFirst on copy")
	}
	if err := work.PushBack(OnlyChild()); err != nil {
		t.Fatalf("PushBack on copy: %v", err)
	}
	if !orig.Equal(New(1, mustPath(t, Parachain(1), PalletInstance(2)))) {
		t.Fatalf("mutating a copy changed the original: %s", orig)
	}
}
