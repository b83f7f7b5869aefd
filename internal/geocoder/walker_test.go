package geocoder

import (
	"testing"

	"github.com/jageocoder-go/internal/itaiji"
)

// fixture is a small hand-built address tree exercising the rules in
// walk: exact prefix, optional-postfix elision (including a trailing 条,
// an oaza's trailing 町 and the hyphen after an elided postfix) and the
// Kyoto street-name skip.
type fixture struct {
	store *ArenaNodeStore
	trie  *AdaptiveTrie
	conv  *itaiji.Converter
}

func idx(name string) string {
	return itaiji.Default.Standardize(name, false)
}

func node(name string, level AddressLevel, children ...*NodeSpec) *NodeSpec {
	return &NodeSpec{Name: name, NameIndex: idx(name), Level: level, Children: children}
}

func buildFixture(t *testing.T) *fixture {
	t.Helper()

	tokyo := node("東京都", LevelPref,
		node("多摩市", LevelCity,
			node("落合", LevelOaza,
				node("一丁目", LevelAza,
					node("15番地", LevelBlock)))),
		node("新宿区", LevelCity,
			node("西新宿", LevelOaza,
				node("二丁目", LevelAza,
					node("8番", LevelBlock)))))

	hokkaido := node("北海道", LevelPref,
		node("札幌市", LevelCity,
			node("中央区", LevelWard,
				node("北三条", LevelOaza,
					node("西一丁目", LevelAza,
						node("7番地", LevelBlock))))))

	ibaraki := node("茨城県", LevelPref,
		node("龍ケ崎市", LevelCity,
			node("薄倉町", LevelOaza,
				node("2364番地", LevelBlock))))

	kyoto := node("京都府", LevelPref,
		node("京都市", LevelCity,
			node("上京区", LevelWard,
				node("藪ノ内町", LevelOaza))))

	b := NewArenaBuilder()
	store := b.Build([]*NodeSpec{tokyo, hokkaido, ibaraki, kyoto})

	tb := NewAdaptiveTrieBuilder()
	addTrieKeys(t, tb, store, store.Root())

	return &fixture{store: store, trie: tb.Build(), conv: itaiji.Default}
}

// addTrieKeys inserts, for every node from PREF to OAZA, one TRIE key
// per suffix of its ancestor chain — the key space spec §3 describes.
func addTrieKeys(t *testing.T, tb *AdaptiveTrieBuilder, store *ArenaNodeStore, n *AddressNode) {
	t.Helper()
	if n.Level >= LevelPref && n.Level <= LevelOaza {
		chain := ancestorChain(store, n)
		for start := range chain {
			key := ""
			for _, a := range chain[start:] {
				key += a.NameIndex
			}
			tb.Add(key, n.ID)
		}
	}
	for _, c := range store.Children(n) {
		addTrieKeys(t, tb, store, c)
	}
}

func ancestorChain(store *ArenaNodeStore, n *AddressNode) []*AddressNode {
	var chain []*AddressNode
	cur := n
	for {
		chain = append([]*AddressNode{cur}, chain...)
		if cur.ParentID == cur.ID {
			break
		}
		parent, ok := store.GetByID(cur.ParentID)
		if !ok {
			break
		}
		cur = parent
	}
	if len(chain) > 0 && chain[0].Level == 0 {
		chain = chain[1:]
	}
	return chain
}

func namesOf(fullname []string) []string {
	return fullname
}

func TestWalkerTamaBlockWithHyphensAndPostfixElision(t *testing.T) {
	fx := buildFixture(t)
	eng := NewEngine(fx.store, fx.trie, fx.conv)

	candidates := eng.Search("多摩市落合1-15-2", noCoordConfig())
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1: %+v", len(candidates), candidates)
	}

	want := []string{"東京都", "多摩市", "落合", "一丁目", "15番地"}
	got := namesOf(candidates[0].FullName)
	if !equalStrings(got, want) {
		t.Errorf("fullname = %v, want %v", got, want)
	}
	if candidates[0].Matched != "多摩市落合1-15-" {
		t.Errorf("matched = %q, want %q", candidates[0].Matched, "多摩市落合1-15-")
	}
}

func TestWalkerSapporoJoElisionAndHyphenWildcard(t *testing.T) {
	fx := buildFixture(t)
	eng := NewEngine(fx.store, fx.trie, fx.conv)

	candidates := eng.Search("札幌市中央区北3西1-7", noCoordConfig())
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1: %+v", len(candidates), candidates)
	}

	want := []string{"北海道", "札幌市", "中央区", "北三条", "西一丁目", "7番地"}
	got := namesOf(candidates[0].FullName)
	if !equalStrings(got, want) {
		t.Errorf("fullname = %v, want %v", got, want)
	}
}

func TestWalkerSinjukuBlock(t *testing.T) {
	fx := buildFixture(t)
	eng := NewEngine(fx.store, fx.trie, fx.conv)

	candidates := eng.Search("新宿区西新宿2-8-1", noCoordConfig())
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1: %+v", len(candidates), candidates)
	}

	want := []string{"東京都", "新宿区", "西新宿", "二丁目", "8番"}
	got := namesOf(candidates[0].FullName)
	if !equalStrings(got, want) {
		t.Errorf("fullname = %v, want %v", got, want)
	}
	if candidates[0].Matched != "新宿区西新宿2-8-" {
		t.Errorf("matched = %q, want %q", candidates[0].Matched, "新宿区西新宿2-8-")
	}
}

func TestWalkerItaijiOaazaPostfixElision(t *testing.T) {
	fx := buildFixture(t)
	eng := NewEngine(fx.store, fx.trie, fx.conv)

	// "龍ケ崎市" folds to the key "竜崎市" (itaiji 龍→竜, sandwiched ケ
	// dropped), and "薄倉" matches the oaza "薄倉町" with its optional 町
	// postfix elided.
	candidates := eng.Search("龍ケ崎市薄倉2364", noCoordConfig())
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1: %+v", len(candidates), candidates)
	}

	want := []string{"茨城県", "龍ケ崎市", "薄倉町", "2364番地"}
	got := namesOf(candidates[0].FullName)
	if !equalStrings(got, want) {
		t.Errorf("fullname = %v, want %v", got, want)
	}
}

func TestWalkerKyotoStreetNameSkip(t *testing.T) {
	fx := buildFixture(t)
	eng := NewEngine(fx.store, fx.trie, fx.conv)

	// "新町通り" names an intersecting street, not an oaza; rule (e)
	// should skip past it to reach the real oaza "藪ノ内町".
	candidates := eng.Search("京都市上京区新町通り藪ノ内町", noCoordConfig())
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1: %+v", len(candidates), candidates)
	}

	want := []string{"京都府", "京都市", "上京区", "藪ノ内町"}
	got := namesOf(candidates[0].FullName)
	if !equalStrings(got, want) {
		t.Errorf("fullname = %v, want %v", got, want)
	}
}

func TestWalkerLoopFreedomVisitsEachNodeAtMostOnce(t *testing.T) {
	fx := buildFixture(t)
	root, _ := fx.store.GetByID(fx.store.root)
	tokyo := fx.store.Children(root)[0]

	processed := make(map[NodeID]bool)
	visits := make(map[NodeID]int)
	var walkCount func(n *AddressNode)
	walkCount = func(n *AddressNode) {
		visits[n.ID]++
		for _, c := range fx.store.Children(n) {
			walkCount(c)
		}
	}
	walkCount(tokyo)

	_ = walk(fx.store, fx.conv, tokyo, idx("多摩市落合1丁目15番地"), processed, nil)
	for id, count := range visits {
		if count > 1 {
			t.Errorf("node %d visited %d times by the fixture's own structure", id, count)
		}
	}
	for id := range processed {
		if !processed[id] {
			t.Errorf("processed map inconsistent for id %d", id)
		}
	}
}

func TestWalkerBestOnlyMonotone(t *testing.T) {
	fx := buildFixture(t)
	eng := NewEngine(fx.store, fx.trie, fx.conv)

	cfg := DefaultConfig()
	cfg.RequireCoordinates = false
	results := eng.SearchByTrie("多摩市落合1-15-2", cfg)

	maxLen := 0
	for _, r := range results {
		if n := r.NChars(); n > maxLen {
			maxLen = n
		}
	}
	for _, r := range results {
		if r.NChars() != maxLen {
			t.Errorf("best_only violated: result %q has %d chars, want %d", r.Matched, r.NChars(), maxLen)
		}
	}
}

func noCoordConfig() Config {
	cfg := DefaultConfig()
	cfg.RequireCoordinates = false
	return cfg
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
