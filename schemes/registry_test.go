package schemes

import (
	"testing"

	"xdao.co/conloc/convert"
	"xdao.co/conloc/loc"
)

func TestBuild_OrderPreserved(t *testing.T) {
	cfg := Config{Width: convert.Width32, Network: loc.Polkadot()}
	chain, err := Build("parent,sibling,hashed", cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(chain) != 3 {
		t.Fatalf("chain length: got %d, want 3", len(chain))
	}
	if _, ok := chain[0].(*convert.ParentDefault); !ok {
		t.Fatalf("chain[0]: got %T, want *convert.ParentDefault", chain[0])
	}
	if _, ok := chain[2].(*convert.HashedOrigin); !ok {
		t.Fatalf("chain[2]: got %T, want *convert.HashedOrigin", chain[2])
	}
}

func TestBuild_Rejections(t *testing.T) {
	cfg := Config{Width: convert.Width32, Network: loc.Polkadot()}
	if _, err := Build("parent,frobnicate", cfg); err == nil {
		t.Fatalf("expected error for unknown scheme")
	}
	if _, err := Build("", cfg); err == nil {
		t.Fatalf("expected error for empty scheme list")
	}
	if _, err := Build("parent", Config{Width: 16, Network: loc.Polkadot()}); err == nil {
		t.Fatalf("expected error for unsupported width")
	}
	if _, err := Build("account32", Config{Width: convert.Width32, Network: loc.AnyNetwork()}); err == nil {
		t.Fatalf("expected error for wildcard alias network")
	}
}

func TestNames_IncludeBuiltins(t *testing.T) {
	names := Names()
	want := map[string]bool{
		"parent": false, "child": false, "sibling": false,
		"account32": false, "account20": false, "hashed": false,
	}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, seen := range want {
		if !seen {
			t.Fatalf("missing builtin scheme %q", n)
		}
	}
}
