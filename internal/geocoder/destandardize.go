package geocoder

import "github.com/jageocoder-go/internal/itaiji"

// Destandardize recovers the slice of the original query that produced
// the canonical matched substring, by probing Standardize at candidate
// cut points until the standardized length matches. Ported from the
// reference implementation's _get_matched_substring, with a
// cycle-detection guard (the reference has none) and the two cosmetic
// extensions described for the trailing kana case.
func Destandardize(conv *itaiji.Converter, query, matched, nodeName string) string {
	qRunes := []rune(query)
	target := len([]rune(matched))

	pos := target
	if pos > len(qRunes) {
		pos = len(qRunes)
	}
	if pos < 0 {
		pos = 0
	}

	visited := make(map[int]bool)
	for !visited[pos] {
		visited[pos] = true

		substr := string(qRunes[:pos])
		standardized := conv.Standardize(substr, true)
		lStd := len([]rune(standardized))

		if lStd == target {
			break
		}
		if lStd < target {
			if pos >= len(qRunes) {
				break
			}
			pos++
		} else {
			if pos <= 0 {
				break
			}
			pos--
		}
	}

	// (i) the matched node name ends in a kana the normalizer would
	// drop; if the query has that same kana right after the cut, keep it.
	nodeRunes := []rune(nodeName)
	if len(nodeRunes) > 0 && pos < len(qRunes) {
		last := nodeRunes[len(nodeRunes)-1]
		if itaiji.IsOmittableKana(last) && qRunes[pos] == last {
			pos++
		}
	}

	// (ii) a street-name notation ending in "通り"/"通リ": keep the
	// trailing kana the normalizer would otherwise not require.
	if pos > 0 && pos < len(qRunes) && qRunes[pos-1] == '通' {
		if qRunes[pos] == 'り' || qRunes[pos] == 'リ' {
			pos++
		}
	}

	return string(qRunes[:pos])
}
