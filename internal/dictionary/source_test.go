package dictionary

import (
	"testing"

	"github.com/jageocoder-go/internal/geocoder"
	"github.com/jageocoder-go/internal/itaiji"
)

func TestEmbeddedSourceOpenBuildsSearchableEngine(t *testing.T) {
	h, err := EmbeddedSource{}.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if h.Signature == "" {
		t.Errorf("Signature is empty")
	}

	eng := geocoder.NewEngine(h.Store, h.Trie, itaiji.Default)
	cfg := geocoder.DefaultConfig()
	cfg.RequireCoordinates = false
	candidates := eng.Search("多摩市落合1-15", cfg)
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1: %+v", len(candidates), candidates)
	}

	want := []string{"東京都", "多摩市", "落合", "一丁目", "15番地"}
	got := candidates[0].FullName
	if len(got) != len(want) {
		t.Fatalf("fullname = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fullname[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEmbeddedSourceOpenResolvesAzaMaster(t *testing.T) {
	h, err := EmbeddedSource{}.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	r, ok := h.Aza.ByCode("132020000206")
	if !ok {
		t.Fatalf("ByCode(132020000206) not found")
	}
	if len(r.Postcode) != 1 || r.Postcode[0] != "206-0033" {
		t.Errorf("Postcode = %v, want [206-0033]", r.Postcode)
	}
}

func TestCachedStoreServesSameNodesAsInner(t *testing.T) {
	h, err := EmbeddedSource{}.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	cached, err := NewCachedStore(h.Store, 4)
	if err != nil {
		t.Fatalf("NewCachedStore: %v", err)
	}

	root := cached.Root()
	if root.ID != h.Store.Root().ID {
		t.Errorf("Root() = %d, want %d", root.ID, h.Store.Root().ID)
	}

	// First call populates the LRU, second call must return the exact
	// same materialized node from cache.
	first, ok := cached.GetByID(1)
	if !ok {
		t.Fatalf("GetByID(1) not found")
	}
	second, ok := cached.GetByID(1)
	if !ok || second != first {
		t.Errorf("GetByID(1) second call = %p, want same pointer %p", second, first)
	}

	if len(cached.Children(root)) == 0 {
		t.Errorf("Children(root) is empty, want at least one prefecture")
	}
}
