package geocoder

import adaptive "github.com/absolutelightning/go-immutable-adaptive-radix"

// PrefixTrie is the contract from spec §4.3: enumerate every stored key
// that is a prefix of a query (CommonPrefixes), and fetch the id list
// stored exactly under a key (Get).
type PrefixTrie interface {
	CommonPrefixes(query string) map[string][]NodeID
	Get(key string) ([]NodeID, bool)
}

// AdaptiveTrie backs PrefixTrie with an immutable adaptive radix tree
// (github.com/absolutelightning/go-immutable-adaptive-radix), the one
// genuine structural-indexing library carried over from the retrieved
// pack — in place of the reference implementation's memory-mapped
// MARISA trie, for which no pure-Go binding exists in the pack.
//
// common_prefixes is implemented by probing Get at each rune-boundary
// length of the query rather than a native prefix-walk, since the
// library does not expose an iterator keyed by "all prefixes of X".
// That is one Get per rune of the query, each over a prefix of up to
// the query's length, so the cost grows with the square of the length;
// queries normalize to at most a few hundred characters (spec §5).
type AdaptiveTrie struct {
	tree *adaptive.RadixTree[[]NodeID]
}

// NewAdaptiveTrieBuilder starts an empty trie ready to be populated via
// Add, then finalized with Build.
type AdaptiveTrieBuilder struct {
	tree *adaptive.RadixTree[[]NodeID]
}

func NewAdaptiveTrieBuilder() *AdaptiveTrieBuilder {
	return &AdaptiveTrieBuilder{tree: adaptive.NewRadixTree[[]NodeID]()}
}

// Add inserts ids under key, appending to any ids already stored there —
// a label may resolve to multiple nodes (e.g. "中央区中央" exists under
// both 千葉市 and 相模原市).
func (b *AdaptiveTrieBuilder) Add(key string, ids ...NodeID) {
	existing, _ := b.tree.Get([]byte(key))
	merged := append(append([]NodeID{}, existing...), ids...)
	newTree, _, _ := b.tree.Insert([]byte(key), merged)
	b.tree = newTree
}

// Build finalizes the trie. The returned AdaptiveTrie shares the
// builder's immutable tree and is safe for concurrent read-only use.
func (b *AdaptiveTrieBuilder) Build() *AdaptiveTrie {
	return &AdaptiveTrie{tree: b.tree}
}

// Get implements PrefixTrie.
func (t *AdaptiveTrie) Get(key string) ([]NodeID, bool) {
	ids, found := t.tree.Get([]byte(key))
	return ids, found
}

// CommonPrefixes implements PrefixTrie.
func (t *AdaptiveTrie) CommonPrefixes(query string) map[string][]NodeID {
	results := make(map[string][]NodeID)
	runes := []rune(query)
	for i := 1; i <= len(runes); i++ {
		prefix := string(runes[:i])
		if ids, found := t.tree.Get([]byte(prefix)); found {
			results[prefix] = ids
		}
	}
	return results
}
