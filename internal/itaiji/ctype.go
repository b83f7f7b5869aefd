// Package itaiji implements the character-level normalization that turns a
// free-form Japanese address notation into a canonical index key: itaiji
// (variant-kanji) folding, half/full-width folding, numeric-literal
// canonicalization and the sandwich rules around ケ/ヶ/ノ and friends.
package itaiji

// CType is the character classification used to drive the "sandwich" rules
// in Standardize. The numeric values intentionally mirror the reference
// implementation's classifier so the sandwich-rule comparisons below read
// the same way: 0=ASCII, 1=KANJI, 2=DIGIT, 4=HIRAGANA, 5=KATAKANA, 6=LATIN.
type CType int

const (
	CTypeUnknown CType = -1
	CTypeASCII   CType = 0
	CTypeKanji   CType = 1
	CTypeDigit   CType = 2
	CTypeHiragana CType = 4
	CTypeKatakana CType = 5
	CTypeLatin    CType = 6
)

const (
	kansuji = "〇一二三四五六七八九"
	arabic  = "０１２３４５６７８９"
	hyphens = "-﹣－‐‑⁃−‒–—―﹘゠ー"
)

// GetCType returns the character classification of a single rune.
func GetCType(c rune) CType {
	switch {
	case c >= 0x3041 && c <= 0x309F:
		return CTypeHiragana
	case c >= 0x30A1 && c <= 0x30FF:
		return CTypeKatakana
	case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		return CTypeLatin
	case c >= 0x0021 && c <= 0x007E:
		return CTypeASCII
	case runeIn(c, arabic) || runeIn(c, kansuji):
		return CTypeDigit
	case c >= 0x4E00 && c <= 0x9FFF:
		return CTypeKanji
	default:
		return CTypeUnknown
	}
}

// IsHyphen reports whether c is one of the hyphen-like glyphs (ASCII hyphen,
// various Unicode dashes, the katakana long vowel mark) that the normalizer
// folds to a plain ASCII '-'.
func IsHyphen(c rune) bool {
	return runeIn(c, hyphens)
}

// IsKansuji reports whether c is one of 〇一二三四五六七八九.
func IsKansuji(c rune) bool {
	return runeIn(c, kansuji)
}

// IsFullWidthDigit reports whether c is one of ０-９.
func IsFullWidthDigit(c rune) bool {
	return runeIn(c, arabic)
}

// IsOmittableKana reports whether c is one of the kana (ケヶガがツッつ)
// that Standardize drops when sandwiched between two non-kana runs. It
// is exported for the de-standardizer's cosmetic position recovery.
func IsOmittableKana(c rune) bool {
	return isOmittableKana(c)
}

func runeIn(c rune, set string) bool {
	for _, r := range set {
		if r == c {
			return true
		}
	}
	return false
}
