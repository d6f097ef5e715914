package locid

import (
	"strings"
	"testing"

	"github.com/ipfs/go-cid"

	"xdao.co/conloc/loc"
)

func mustLocation(t *testing.T, parents uint8, js ...loc.Junction) loc.Location {
	t.Helper()
	interior, err := loc.Path(js...)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	return loc.New(parents, interior)
}

func TestID_DeterministicAndDistinct(t *testing.T) {
	a := mustLocation(t, 1, loc.Parachain(2000))
	b := mustLocation(t, 1, loc.Parachain(2001))

	id1, err := ID(a)
	if err != nil {
		t.Fatalf("ID: %v", err)
	}
	id2, err := ID(a)
	if err != nil {
		t.Fatalf("ID: %v", err)
	}
	if !id1.Equals(id2) {
		t.Fatalf("repeated ID differs: %s vs %s", id1, id2)
	}

	other, err := ID(b)
	if err != nil {
		t.Fatalf("ID: %v", err)
	}
	if id1.Equals(other) {
		t.Fatalf("distinct locations share an ID: %s", id1)
	}
}

func TestIDString_ParsesAsCIDv1(t *testing.T) {
	s, err := IDString(loc.Here())
	if err != nil {
		t.Fatalf("IDString: %v", err)
	}
	if !strings.HasPrefix(s, "bafk") {
		t.Fatalf("unexpected CID form: %s", s)
	}
	id, err := cid.Decode(s)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if id.Version() != 1 {
		t.Fatalf("CID version: got %d, want 1", id.Version())
	}
}

func TestID_RejectsUnencodableLocation(t *testing.T) {
	l := mustLocation(t, 0, loc.GeneralKey(make([]byte, loc.MaxKeyLen+1)))
	if _, err := ID(l); err == nil {
		t.Fatalf("expected error for unencodable location")
	}
}
