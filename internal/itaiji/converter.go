package itaiji

import (
	"strconv"
)

// OptionalPrefixes are the leading tokens ("字", "大字", "小字") that the
// walker may strip before matching a node's children; the normalizer
// itself never removes them (see Converter.CheckOptionalPrefixes).
var OptionalPrefixes = []string{"字", "大字", "小字"}

// OptionalPostfixes are the trailing tokens ("条", "線", "丁", "丁目",
// "番", "番地", "号") that the walker may elide when a child's name
// carries one but the query spells it with a bare number or hyphen.
var OptionalPostfixes = []string{"条", "線", "丁", "丁目", "番", "番地", "号"}

// Converter holds the immutable itaiji table and exposes Standardize, the
// single normalization entry point used by both the trie and the walker.
type Converter struct {
	itaijiTable map[rune]rune
}

// NewConverter loads the embedded itaiji table and builds a Converter.
func NewConverter() (*Converter, error) {
	table, err := loadItaijiTable()
	if err != nil {
		return nil, err
	}
	return &Converter{itaijiTable: table}, nil
}

// Default is the process-wide converter, analogous to the reference
// implementation's module-level singleton: the table is immutable and
// shared, so no synchronization is required to read from it concurrently.
var Default *Converter

func init() {
	c, err := NewConverter()
	if err != nil {
		panic("itaiji: failed to load embedded itaiji table: " + err.Error())
	}
	Default = c
}

// CheckOptionalPrefixes returns the rune-length of a leading optional
// prefix ("字"/"大字"/"小字") in notation, or 0 if none is present.
func (c *Converter) CheckOptionalPrefixes(notation string) int {
	runes := []rune(notation)
	for _, prefix := range OptionalPrefixes {
		pr := []rune(prefix)
		if hasPrefixRunes(runes, pr) {
			return len(pr)
		}
	}
	return 0
}

// CheckOptionalPostfixes returns the rune-length of a trailing optional
// postfix ("条"/"線"/"丁"/"丁目"/"番"/"番地"/"号") in notation, or 0.
func (c *Converter) CheckOptionalPostfixes(notation string) int {
	runes := []rune(notation)
	for _, postfix := range OptionalPostfixes {
		pr := []rune(postfix)
		if hasSuffixRunes(runes, pr) {
			return len(pr)
		}
	}
	return 0
}

func hasPrefixRunes(s, prefix []rune) bool {
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

func hasSuffixRunes(s, suffix []rune) bool {
	if len(suffix) > len(s) {
		return false
	}
	off := len(s) - len(suffix)
	for i, r := range suffix {
		if s[off+i] != r {
			return false
		}
	}
	return true
}

func foldWidth(r rune) rune {
	// Full-width ASCII block starts at U+FF01 ('！') and maps 1:1 onto
	// the half-width ASCII block starting at U+0021 ('!'), 94 code points.
	if r >= 0xFF01 && r <= 0xFF01+93 {
		return 0x0021 + (r - 0xFF01)
	}
	return r
}

// Standardize folds notation into its canonical index form: itaiji
// variants and full-width ASCII are folded, hyphen-like glyphs become
// '-', optional kana (ケヶガがツッつ) is dropped when neither neighbour
// is hiragana or katakana (the start and end of the string count as
// non-kana), ノ/の between two ASCII/digit/latin runs becomes '-', and
// every maximal numeric run becomes its value (or, when keepNumbers is
// true, the original digit glyphs) followed by a '.' sentinel.
//
// Standardize never strips optional prefixes/postfixes; that is the
// walker's job (see CheckOptionalPrefixes/CheckOptionalPostfixes), since
// whether a prefix is "optional" depends on where in the address tree
// the string is being matched, not on the string alone.
func (c *Converter) Standardize(notation string, keepNumbers bool) string {
	if notation == "" {
		return notation
	}

	src := []rune(notation)
	folded := make([]rune, len(src))
	for i, r := range src {
		if d, ok := c.itaijiTable[r]; ok {
			r = d
		}
		folded[i] = foldWidth(r)
	}

	n := len(folded)
	out := make([]rune, 0, n+n/4)

	var prectype, ctype, nctype CType = CTypeUnknown, CTypeUnknown, CTypeUnknown
	i := 0
	for i < n {
		ch := folded[i]
		prectype = ctype
		ctype = nctype
		if i == n-1 {
			nctype = CTypeASCII
		} else {
			nctype = GetCType(folded[i+1])
		}

		if isOmittableKana(ch) && prectype != CTypeHiragana && prectype != CTypeKatakana &&
			nctype != CTypeHiragana && nctype != CTypeKatakana {
			ctype = prectype
			i++
			continue
		}

		if (ch == 'ノ' || ch == 'の') && isDigitAsciiLatin(prectype) && isDigitAsciiLatin(nctype) {
			out = append(out, '-')
			ctype = CTypeASCII
			i++
			continue
		}

		if IsHyphen(ch) {
			out = append(out, '-')
			ctype = CTypeASCII
			i++
			continue
		}

		if _, ok := NumericChar(ch); ok {
			value, consumed := GetNumber(folded[i:])
			if consumed == 0 {
				// A lone kansuji zero ('〇') at the start of a numeric
				// run: GetNumber rejects it (mirrors the reference's
				// rejection of a leading "0" before another kansuji
				// digit) rather than parsing it, so fall through and
				// emit the rune literally instead of spinning with no
				// progress.
				out = append(out, ch)
				i++
				continue
			}
			if keepNumbers {
				out = append(out, folded[i:i+consumed]...)
			} else {
				out = append(out, []rune(strconv.Itoa(value))...)
			}
			out = append(out, '.')
			i += consumed
			if i < n && folded[i] == '.' {
				i++
			}
			ctype = CTypeASCII
			continue
		}

		out = append(out, ch)
		i++
	}

	return string(out)
}

func isOmittableKana(c rune) bool {
	switch c {
	case 'ケ', 'ヶ', 'ガ', 'が', 'ツ', 'ッ', 'つ':
		return true
	}
	return false
}

func isDigitAsciiLatin(t CType) bool {
	return t == CTypeASCII || t == CTypeDigit || t == CTypeLatin
}
