package geocoder

import (
	"sort"

	"github.com/jageocoder-go/internal/itaiji"
)

// Engine ties the TRIE index, the node store and the normalizer
// together into the public search contract (spec §4.1): SearchByTrie
// does the raw tree-walk, Search adds ranking, config filtering and
// de-standardization back to the caller's original spelling.
type Engine struct {
	Store NodeStore
	Trie  PrefixTrie
	Conv  *itaiji.Converter
}

func NewEngine(store NodeStore, trie PrefixTrie, conv *itaiji.Converter) *Engine {
	return &Engine{Store: store, Trie: trie, Conv: conv}
}

// SearchByTrie normalizes query, seeds the walker at every TRIE entry
// that is a prefix of the canonical form, and merges the results across
// all seeds per Config.BestOnly. Ported from search_by_trie.
func (e *Engine) SearchByTrie(query string, cfg Config) []Result {
	index := e.Conv.Standardize(query, false)
	indexRunes := []rune(index)
	prefixes := e.Trie.CommonPrefixes(index)

	keys := make([]string, 0, len(prefixes))
	for key := range prefixes {
		keys = append(keys, key)
	}
	// Longest-first (spec §5): establishes a deterministic order of
	// starting nodes, and with it a deterministic tie-break for the
	// first-seen dedup below.
	sort.Slice(keys, func(i, j int) bool {
		return len([]rune(keys[i])) > len([]rune(keys[j]))
	})

	results := make(map[NodeID]Result)
	maxLen := 0

	for _, key := range keys {
		ids := prefixes[key]
		offset := len([]rune(key))
		rest := string(indexRunes[offset:])

		for _, id := range ids {
			node, ok := e.Store.GetByID(id)
			if !ok {
				continue
			}

			processed := make(map[NodeID]bool)
			for _, cand := range walk(e.Store, e.Conv, node, rest, processed, cfg.AzaSkip) {
				nchars := offset + cand.NChars()
				matched := key + cand.Matched

				if cfg.BestOnly {
					if nchars > maxLen {
						results = make(map[NodeID]Result)
						maxLen = nchars
					}
					if nchars == maxLen {
						if _, exists := results[cand.Node.ID]; !exists {
							results[cand.Node.ID] = Result{Node: cand.Node, Matched: matched}
						}
					}
				} else {
					results[cand.Node.ID] = Result{Node: cand.Node, Matched: matched}
					if nchars > maxLen {
						maxLen = nchars
					}
				}
			}
		}
	}

	out := make([]Result, 0, len(results))
	for _, r := range results {
		out = append(out, r)
	}
	return out
}

// Search runs SearchByTrie, drops results the active Config excludes,
// ranks the survivors, and recovers each one's substring of the
// original (non-normalized) query.
func (e *Engine) Search(query string, cfg Config) []Candidate {
	results := applyFilters(e.Store, e.SearchByTrie(query, cfg), cfg)

	sort.Slice(results, func(i, j int) bool {
		si := len([]rune(results[i].Matched))*100 - results[i].Node.Priority
		sj := len([]rune(results[j].Matched))*100 - results[j].Node.Priority
		return si > sj
	})

	destdCache := make(map[string]string, len(results))
	candidates := make([]Candidate, 0, len(results))
	for _, r := range results {
		original, ok := destdCache[r.Matched]
		if !ok {
			original = Destandardize(e.Conv, query, r.Matched, r.Node.Name)
			destdCache[r.Matched] = original
		}
		candidates = append(candidates, Candidate{
			Node:     r.Node,
			Matched:  original,
			FullName: FullName(e.Store, r.Node),
		})
	}
	return candidates
}

func applyFilters(store NodeStore, results []Result, cfg Config) []Result {
	if !cfg.RequireCoordinates && len(cfg.TargetArea) == 0 {
		return results
	}

	out := results[:0]
	for _, r := range results {
		if cfg.RequireCoordinates && !r.Node.HasCoordinate() {
			continue
		}
		if len(cfg.TargetArea) > 0 && !inTargetArea(store, r.Node, cfg.TargetArea) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func inTargetArea(store NodeStore, n *AddressNode, targets []string) bool {
	cur := n
	for {
		for _, t := range targets {
			if cur.Name == t || cur.NoteValue("jisx0401") == t || cur.NoteValue("jisx0402") == t {
				return true
			}
		}
		if cur.ParentID == cur.ID {
			return false
		}
		parent, ok := store.GetByID(cur.ParentID)
		if !ok {
			return false
		}
		cur = parent
	}
}
