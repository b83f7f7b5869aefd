package geocoder

import (
	"regexp"
	"strings"

	"github.com/jageocoder-go/internal/itaiji"
)

// walk is the recursive tree-walker: it consumes as much of index as it
// can against node's descendants and returns every dead-end reached,
// each paired with the canonical substring of index that explains it.
//
// Ported rule-for-rule from the reference implementation's
// search_recursive, with two additions the reference does not have:
// the hyphen-as-wildcard rule (d) and the loop guard via processed.
// azaSkip is the tri-state from Config.AzaSkip threaded through the
// recursion: nil means "auto" (try the NONAME fallback only when no
// other child matched at this node), non-nil forces it on or off. The
// reference behaviour of disabling aza-skip for the duration of the
// fallback descent itself is modeled by passing a forced-false pointer
// into that one recursive call.
func walk(store NodeStore, conv *itaiji.Converter, node *AddressNode, index string, processed map[NodeID]bool, azaSkip *bool) []Result {
	lOptPre := conv.CheckOptionalPrefixes(index)
	indexRunes := []rune(index)
	optPre := string(indexRunes[:lOptPre])
	indexRunes = indexRunes[lOptPre:]

	if len(indexRunes) == 0 {
		return []Result{{Node: node, Matched: optPre}}
	}

	var filter []rune
	if indexRunes[0] >= '0' && indexRunes[0] <= '9' {
		k := len(indexRunes) - 1
		for i, r := range indexRunes {
			if r == '.' {
				k = i
				break
			}
		}
		filter = indexRunes[:k+1]
	} else {
		filter = indexRunes[:1]
	}

	var candidates []Result

	for _, child := range store.Children(node) {
		if processed[child.ID] {
			continue
		}
		childRunes := []rune(child.NameIndex)
		if !runeHasPrefix(childRunes, filter) {
			continue
		}

		// (a) exact prefix
		if runeHasPrefix(indexRunes, childRunes) {
			offset := len(childRunes)
			processed[child.ID] = true
			for _, sr := range walk(store, conv, child, string(indexRunes[offset:]), processed, azaSkip) {
				candidates = append(candidates, Result{
					Node:    sr.Node,
					Matched: optPre + child.NameIndex + sr.Matched,
				})
			}
			continue
		}

		// (b) optional-postfix elision; a trailing 町 on an oaza name is
		// elided the same way
		lPostfix := conv.CheckOptionalPostfixes(child.NameIndex)
		if lPostfix == 0 && child.Level == LevelOaza && strings.HasSuffix(child.NameIndex, "町") {
			lPostfix = 1
		}
		if lPostfix > 0 {
			alt := childRunes[:len(childRunes)-lPostfix]
			if runeHasPrefix(indexRunes, alt) {
				offset := len(alt)
				if offset < len(indexRunes) && indexRunes[offset] == '-' {
					offset++
				}
				processed[child.ID] = true
				for _, sr := range walk(store, conv, child, string(indexRunes[offset:]), processed, azaSkip) {
					candidates = append(candidates, Result{
						Node:    sr.Node,
						Matched: optPre + string(indexRunes[:offset]) + sr.Matched,
					})
				}
				continue
			}
		}

		// (c) Sapporo-style 条 elision
		if strings.ContainsRune(child.NameIndex, '条') {
			alt := []rune(strings.Replace(child.NameIndex, "条", "", 1))
			if runeHasPrefix(indexRunes, alt) {
				offset := len(alt)
				processed[child.ID] = true
				for _, sr := range walk(store, conv, child, string(indexRunes[offset:]), processed, azaSkip) {
					candidates = append(candidates, Result{
						Node:    sr.Node,
						Matched: optPre + string(alt) + sr.Matched,
					})
				}
				continue
			}
		}

		// (d) hyphen-as-wildcard
		if h := strings.IndexRune(string(indexRunes), '-'); h >= 0 {
			hRunes := len([]rune(string(indexRunes)[:h]))
			prefix := indexRunes[:hRunes]
			pattern := "^" + regexp.QuoteMeta(string(prefix)) + ".*"
			if matched, _ := regexp.MatchString(pattern, child.NameIndex); matched {
				offset := hRunes + 1
				processed[child.ID] = true
				for _, sr := range walk(store, conv, child, string(indexRunes[offset:]), processed, azaSkip) {
					candidates = append(candidates, Result{
						Node:    sr.Node,
						Matched: optPre + string(indexRunes[:offset]) + sr.Matched,
					})
				}
			}
		}
	}

	// (e) Kyoto street-name skip: only tried as a fallback, when (a)-(d)
	// matched nothing for any child of this node.
	if len(candidates) == 0 && node.Level == LevelWard {
		if parent, ok := store.GetByID(node.ParentID); ok && parent.Name == "京都市" {
			for _, child := range store.Children(node) {
				if processed[child.ID] {
					continue
				}
				rest := string(indexRunes)
				pos := strings.Index(rest, child.NameIndex)
				if pos <= 0 {
					continue
				}
				offset := len([]rune(rest[:pos])) + len([]rune(child.NameIndex))
				processed[child.ID] = true
				for _, sr := range walk(store, conv, child, string(indexRunes[offset:]), processed, azaSkip) {
					candidates = append(candidates, Result{
						Node:    sr.Node,
						Matched: optPre + string(indexRunes[:offset]) + sr.Matched,
					})
				}
			}
		}
	}

	skipAza := len(candidates) == 0
	if azaSkip != nil {
		skipAza = *azaSkip
	}
	if skipAza && node.Level == LevelCity {
		for _, child := range store.Children(node) {
			if child.Name != NONAME || processed[child.ID] {
				continue
			}
			processed[child.ID] = true
			disabled := false
			for _, sr := range walk(store, conv, child, string(indexRunes), processed, &disabled) {
				candidates = append(candidates, Result{
					Node:    sr.Node,
					Matched: optPre + sr.Matched,
				})
			}
			break
		}
	}

	if len(candidates) == 0 {
		return []Result{{Node: node, Matched: optPre}}
	}

	return candidates
}

func runeHasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}
