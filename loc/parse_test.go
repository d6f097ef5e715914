package loc

import (
	"strings"
	"testing"
)

func TestFormat_KnownForms(t *testing.T) {
	var id [32]byte
	cases := []struct {
		l    Location
		want string
	}{
		{Here(), "here"},
		{Ancestor(2), "../.."},
		{New(0, mustPath(t, Parachain(2000))), "Parachain(2000)"},
		{New(1, mustPath(t, Parachain(2))), "../Parachain(2)"},
		{
			New(0, mustPath(t, Parachain(1000), PalletInstance(42))),
			"Parachain(1000)/PalletInstance(42)",
		},
		{
			New(0, mustPath(t, AccountID32(AnyNetwork(), id))),
			"AccountId32(any:0x" + strings.Repeat("0", 64) + ")",
		},
		{New(0, mustPath(t, GeneralIndex(0, 42))), "GeneralIndex(42)"},
		{New(0, mustPath(t, GeneralKey([]byte{0xBE, 0xEF}))), "GeneralKey(0xbeef)"},
		{New(0, mustPath(t, OnlyChild())), "OnlyChild"},
		{New(0, mustPath(t, Plurality(3, 1))), "Plurality(3,1)"},
	}
	for _, c := range cases {
		if got := Format(c.l); got != c.want {
			t.Fatalf("Format: got %q, want %q", got, c.want)
		}
	}
}

func TestParseLocation_RoundTrip(t *testing.T) {
	for _, l := range sampleLocations(t) {
		s := Format(l)
		got, err := ParseLocation(s)
		if err != nil {
			t.Fatalf("ParseLocation(%q): %v", s, err)
		}
		if !got.Equal(l) {
			t.Fatalf("round trip of %q: got %s", s, got)
		}
		if again := Format(got); again != s {
			t.Fatalf("reformat of %q: got %q", s, again)
		}
	}
}

func TestParseLocation_Rejections(t *testing.T) {
	bad := []string{
		"",
		"Parachain(2)/..",             // ascent after descent
		"Parachain()",                 // missing id
		"Parachain(4294967296)",       // id out of range
		"Parachain(2",                 // unbalanced
		"Frobnicate(1)",               // unknown junction
		"AccountId32(any:0xdead)",     // wrong account width
		"AccountId32(mars:0x" + strings.Repeat("0", 64) + ")", // unknown network
		"AccountId32(0x" + strings.Repeat("0", 64) + ")",      // missing network
		"GeneralKey(beef)",            // missing 0x
		"PalletInstance(256)",         // out of range
		"Plurality(1)",                // missing part
		strings.Repeat("OnlyChild/", MaxJunctions) + "OnlyChild", // too deep
	}
	for _, s := range bad {
		if _, err := ParseLocation(s); err == nil {
			t.Fatalf("ParseLocation(%q): expected error", s)
		}
	}
}

func TestParseLocation_AscendOnly(t *testing.T) {
	l, err := ParseLocation("../../..")
	if err != nil {
		t.Fatalf("ParseLocation: %v", err)
	}
	if !l.IsAscendOnly(3) {
		t.Fatalf("got %s, want ascend-only(3)", l)
	}
}

func TestParseLocation_GeneralIndexHex(t *testing.T) {
	l, err := ParseLocation("GeneralIndex(0x10000000000000000)")
	if err != nil {
		t.Fatalf("ParseLocation: %v", err)
	}
	want := New(0, mustPath(t, GeneralIndex(1, 0)))
	if !l.Equal(want) {
		t.Fatalf("got %s, want %s", l, want)
	}
}
