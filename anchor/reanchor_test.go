package anchor

import (
	"testing"

	"xdao.co/conloc/loc"
)

// Sibling topology: the local system is sub-system 1, the destination is
// sibling sub-system 2, so the destination reaches back via (1, [Parachain(1)]).
func siblingInverted(t *testing.T) loc.Location {
	t.Helper()
	iv := mustInverter(t, loc.Parachain(1))
	inv, err := iv.Invert(loc.New(1, mustPath(t, loc.Parachain(2))))
	if err != nil {
		t.Fatalf("Invert: %v", err)
	}
	want := loc.New(1, mustPath(t, loc.Parachain(1)))
	if !inv.Equal(want) {
		t.Fatalf("inverted destination: got %s, want %s", inv, want)
	}
	return inv
}

func TestReanchor_LocalAssetGainsFullPath(t *testing.T) {
	inv := siblingInverted(t)

	// An asset native to the local system ("here") is, from the sibling,
	// one hop up and back down into sub-system 1.
	got, err := Reanchor(loc.Here(), inv)
	if err != nil {
		t.Fatalf("Reanchor: %v", err)
	}
	want := loc.New(1, mustPath(t, loc.Parachain(1)))
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestReanchor_SharedParentAssetIsUnchanged(t *testing.T) {
	inv := siblingInverted(t)

	// An asset of the common parent is "up one" from both systems.
	got, err := Reanchor(loc.Ancestor(1), inv)
	if err != nil {
		t.Fatalf("Reanchor: %v", err)
	}
	if !got.Equal(loc.Ancestor(1)) {
		t.Fatalf("got %s, want ..", got)
	}
}

func TestReanchor_DescendingAssetAppends(t *testing.T) {
	inv := siblingInverted(t)

	// A local sub-index travels below the full path to the local system.
	got, err := Reanchor(loc.New(0, mustPath(t, loc.GeneralIndex(0, 42))), inv)
	if err != nil {
		t.Fatalf("Reanchor: %v", err)
	}
	want := loc.New(1, mustPath(t, loc.Parachain(1), loc.GeneralIndex(0, 42)))
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}

	// Even a descent naming another sub-system composes below the local path.
	got, err = Reanchor(loc.New(0, mustPath(t, loc.Parachain(1))), inv)
	if err != nil {
		t.Fatalf("Reanchor: %v", err)
	}
	want = loc.New(1, mustPath(t, loc.Parachain(1), loc.Parachain(1)))
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestReanchor_ForeignAssetKeepsItsPath(t *testing.T) {
	// Local system 2001 sends to sibling 2000; an asset already expressed
	// as (1, [Parachain(2000), key]) stays put from 2000's point of view.
	iv := mustInverter(t, loc.Parachain(2001))
	inv, err := iv.Invert(loc.New(1, mustPath(t, loc.Parachain(2000))))
	if err != nil {
		t.Fatalf("Invert: %v", err)
	}

	asset := loc.New(1, mustPath(t, loc.Parachain(2000), loc.GeneralKey([]byte("KAR"))))
	got, err := Reanchor(asset, inv)
	if err != nil {
		t.Fatalf("Reanchor: %v", err)
	}
	if !got.Equal(asset) {
		t.Fatalf("got %s, want %s", got, asset)
	}

	// A key native to 2001 gains the hop into 2001.
	native := loc.New(0, mustPath(t, loc.GeneralKey([]byte("BNC"))))
	got, err = Reanchor(native, inv)
	if err != nil {
		t.Fatalf("Reanchor: %v", err)
	}
	want := loc.New(1, mustPath(t, loc.Parachain(2001), loc.GeneralKey([]byte("BNC"))))
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestReanchor_ExcessAscentAddsToParents(t *testing.T) {
	inv := siblingInverted(t) // (1, [Parachain(1)])

	got, err := Reanchor(loc.Ancestor(3), inv)
	if err != nil {
		t.Fatalf("Reanchor: %v", err)
	}
	// One hop cancels Parachain(1); two remain on top of inv's single parent.
	if !got.Equal(loc.Ancestor(3)) {
		t.Fatalf("got %s, want ../../..", got)
	}
}

func TestReanchor_CancelsDeepestJunctionFirst(t *testing.T) {
	inverted := loc.New(1, mustPath(t, loc.Parachain(9), loc.PalletInstance(7)))

	got, err := Reanchor(loc.Ancestor(1), inverted)
	if err != nil {
		t.Fatalf("Reanchor: %v", err)
	}
	// `a/b/..` collapses b, the deepest component.
	want := loc.New(1, mustPath(t, loc.Parachain(9)))
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestReanchor_OverflowOnDeepComposition(t *testing.T) {
	full := make([]loc.Junction, loc.MaxJunctions)
	for i := range full {
		full[i] = loc.PalletInstance(uint8(i))
	}
	inverted := loc.New(0, mustPath(t, full...))

	_, err := Reanchor(loc.New(0, mustPath(t, loc.Parachain(1))), inverted)
	if !loc.IsOverflow(err) {
		t.Fatalf("Reanchor: got %v, want ErrOverflow", err)
	}
}

func TestReanchor_OverflowOnAscendCount(t *testing.T) {
	_, err := Reanchor(loc.Ancestor(1), loc.Ancestor(255))
	if !loc.IsOverflow(err) {
		t.Fatalf("Reanchor: got %v, want ErrOverflow", err)
	}
}
