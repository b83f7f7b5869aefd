package geocoder

import "testing"

func TestAdaptiveTrieGetAndCommonPrefixes(t *testing.T) {
	b := NewAdaptiveTrieBuilder()
	b.Add("東京都", 1)
	b.Add("東京都多摩市", 2)
	b.Add("東京都多摩市落合", 3)
	b.Add("大阪府", 4)
	trie := b.Build()

	if ids, ok := trie.Get("東京都多摩市"); !ok || len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("Get(東京都多摩市) = %v, %v", ids, ok)
	}
	if _, ok := trie.Get("東京都多摩"); ok {
		t.Fatalf("Get(東京都多摩) unexpectedly found")
	}

	prefixes := trie.CommonPrefixes("東京都多摩市落合一丁目")
	want := map[string][]NodeID{
		"東京都":     {1},
		"東京都多摩市":   {2},
		"東京都多摩市落合": {3},
	}
	if len(prefixes) != len(want) {
		t.Fatalf("CommonPrefixes returned %d entries, want %d: %v", len(prefixes), len(want), prefixes)
	}
	for k, ids := range want {
		got, ok := prefixes[k]
		if !ok {
			t.Errorf("missing prefix key %q", k)
			continue
		}
		if len(got) != len(ids) || got[0] != ids[0] {
			t.Errorf("prefix %q = %v, want %v", k, got, ids)
		}
	}
	if _, ok := prefixes["大阪府"]; ok {
		t.Errorf("unrelated key 大阪府 should not appear as a common prefix")
	}
}

func TestAdaptiveTrieAddMergesIDsOnSameKey(t *testing.T) {
	b := NewAdaptiveTrieBuilder()
	b.Add("落合", 10)
	b.Add("落合", 20)
	trie := b.Build()

	ids, ok := trie.Get("落合")
	if !ok {
		t.Fatalf("Get(落合) not found")
	}
	if len(ids) != 2 || ids[0] != 10 || ids[1] != 20 {
		t.Errorf("Get(落合) = %v, want [10 20]", ids)
	}
}

func TestAdaptiveTrieCommonPrefixesEmptyQuery(t *testing.T) {
	b := NewAdaptiveTrieBuilder()
	b.Add("東京都", 1)
	trie := b.Build()

	prefixes := trie.CommonPrefixes("")
	if len(prefixes) != 0 {
		t.Errorf("CommonPrefixes(\"\") = %v, want empty", prefixes)
	}
}
