package geocoder

import (
	"regexp"
	"strings"

	"github.com/jageocoder-go/internal/itaiji"
)

// AzaNameElement is one [level, name] pair (plus kana/romaji spellings
// and the registry's partial code at that level) describing a
// chō-aza record's position in the address hierarchy.
type AzaNameElement struct {
	Level       AddressLevel
	Name        string
	Kana        string
	Eng         string
	PartialCode string
}

// AzaRecord is a row of the chō-aza reference table: postal codes,
// 住居表示 (jukyo) status and the national registry code for a single
// town/aza entry. It is looked up independently of the address tree —
// by registry code or by its standardized name sequence — to answer
// "what's the postcode for this oaza" without a tree walk.
type AzaRecord struct {
	Code           string
	Names          []AzaNameElement
	NamesIndex     string
	AzaClass       int
	IsJukyo        bool
	StartCountType int
	Postcode       []string
}

// azaOptionalPattern mirrors re_optional: the kana/prefix tokens that
// standardizeAzaName strips from the interior of each name element
// (never its first or last character) before the comparison key is
// built. Order matches the source; it only matters where two
// alternatives could start at the same position, which none of these
// do (大字/小字 start with 大/小, absent from the single-rune list).
var azaOptionalPattern = regexp.MustCompile(`ケ|ヶ|ガ|ツ|ッ|ノ|字|大字|小字`)

// StandardizeAzaName builds the comparison key search_by_names uses:
// each element is standardized, has its leading optional prefix
// stripped, then has the optional tokens removed from its body (every
// rune but the first and last, which are kept verbatim so that e.g. a
// leading 字 that survived CheckOptionalPrefixes's exact-token check
// is still visible for disambiguation).
func StandardizeAzaName(conv *itaiji.Converter, elements []AzaNameElement) string {
	var b strings.Builder
	for _, el := range elements {
		name := conv.Standardize(el.Name, false)
		prefixLen := conv.CheckOptionalPrefixes(name)
		runes := []rune(name)[prefixLen:]

		var head, body, tail string
		switch {
		case len(runes) > 1:
			head = string(runes[0])
			body = string(runes[1 : len(runes)-1])
			tail = string(runes[len(runes)-1])
		case len(runes) == 1:
			head = string(runes[0])
		}

		body = azaOptionalPattern.ReplaceAllString(body, "")
		b.WriteString(head)
		b.WriteString(body)
		b.WriteString(tail)
	}
	return b.String()
}

// AzaMaster is the exact-key lookup table over AzaRecord, indexed both
// by registry code and by standardized name sequence.
type AzaMaster struct {
	byCode  map[string]*AzaRecord
	byNames map[string]*AzaRecord
}

// NewAzaMaster indexes records for both lookup paths.
func NewAzaMaster(records []*AzaRecord) *AzaMaster {
	m := &AzaMaster{
		byCode:  make(map[string]*AzaRecord, len(records)),
		byNames: make(map[string]*AzaRecord, len(records)),
	}
	for _, r := range records {
		m.byCode[r.Code] = r
		m.byNames[r.NamesIndex] = r
	}
	return m
}

// ByCode looks up a record by its registry code. A 13-digit legacy code
// (6-digit local-authority code + 7-digit aza id) is folded to the
// current 5+7 digit form before lookup.
func (m *AzaMaster) ByCode(code string) (*AzaRecord, bool) {
	if len(code) == 13 {
		code = code[0:5] + code[6:]
	}
	r, ok := m.byCode[code]
	return r, ok
}

// ByNames looks up a record by its address-element sequence.
func (m *AzaMaster) ByNames(conv *itaiji.Converter, elements []AzaNameElement) (*AzaRecord, bool) {
	r, ok := m.byNames[StandardizeAzaName(conv, elements)]
	return r, ok
}
