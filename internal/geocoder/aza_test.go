package geocoder

import (
	"testing"

	"github.com/jageocoder-go/internal/itaiji"
)

func sampleAzaRecords() []*AzaRecord {
	tama := []AzaNameElement{
		{Level: LevelPref, Name: "東京都"},
		{Level: LevelCity, Name: "多摩市"},
		{Level: LevelOaza, Name: "落合"},
	}
	ryugasaki := []AzaNameElement{
		{Level: LevelPref, Name: "茨城県"},
		{Level: LevelCity, Name: "龍ケ崎市"},
		{Level: LevelOaza, Name: "字薄倉"},
	}
	return []*AzaRecord{
		{
			Code:       "132020000206",
			Names:      tama,
			NamesIndex: StandardizeAzaName(itaiji.Default, tama),
			Postcode:   []string{"206-0033"},
		},
		{
			Code:       "082060000603",
			Names:      ryugasaki,
			NamesIndex: StandardizeAzaName(itaiji.Default, ryugasaki),
			Postcode:   []string{"301-0005"},
		},
	}
}

func TestAzaMasterByCode(t *testing.T) {
	m := NewAzaMaster(sampleAzaRecords())

	r, ok := m.ByCode("132020000206")
	if !ok || r.Postcode[0] != "206-0033" {
		t.Fatalf("ByCode(132020000206) = %+v, %v", r, ok)
	}

	if _, ok := m.ByCode("999999999999"); ok {
		t.Errorf("ByCode unexpectedly found an unknown code")
	}
}

// A 13-digit legacy code (6-digit local-authority code + 7-digit aza
// id) folds to the current 5+7 digit form by dropping the 6th digit:
// code[0:5] + code[6:]. Any digit may sit at that dropped position.
func TestAzaMasterByCodeFoldsLegacy13DigitForm(t *testing.T) {
	m := NewAzaMaster(sampleAzaRecords())

	current := "132020000206"
	legacy := current[0:5] + "9" + current[5:]
	if len(legacy) != 13 {
		t.Fatalf("test fixture bug: legacy code length = %d, want 13", len(legacy))
	}

	r, ok := m.ByCode(legacy)
	if !ok || r.Postcode[0] != "206-0033" {
		t.Fatalf("ByCode(%s) = %+v, %v", legacy, r, ok)
	}
}

func TestAzaMasterByNamesIgnoresOptionalTokensAndSandwichKana(t *testing.T) {
	m := NewAzaMaster(sampleAzaRecords())

	// "龍ケ崎市"/"字薄倉" (sandwiched ケ, optional 字 prefix) and
	// "龍崎市"/"薄倉" (neither) must resolve to the same record, since
	// Standardize drops the sandwiched ケ and StandardizeAzaName strips
	// the optional prefix from the oaza element before building the key.
	withPrefix := []AzaNameElement{
		{Level: LevelPref, Name: "茨城県"},
		{Level: LevelCity, Name: "龍ケ崎市"},
		{Level: LevelOaza, Name: "字薄倉"},
	}
	withoutPrefix := []AzaNameElement{
		{Level: LevelPref, Name: "茨城県"},
		{Level: LevelCity, Name: "龍崎市"},
		{Level: LevelOaza, Name: "薄倉"},
	}

	r1, ok1 := m.ByNames(itaiji.Default, withPrefix)
	r2, ok2 := m.ByNames(itaiji.Default, withoutPrefix)
	if !ok1 || !ok2 {
		t.Fatalf("ByNames lookups failed: ok1=%v ok2=%v", ok1, ok2)
	}
	if r1 != r2 {
		t.Errorf("字-prefixed and bare oaza names resolved to different records")
	}
}

func TestStandardizeAzaNameKeepsFirstAndLastRuneOfEachElement(t *testing.T) {
	// "ノ" at the very start or end of an element must survive even
	// though it is one of the tokens azaOptionalPattern strips from the
	// interior — StandardizeAzaName only replaces runes[1:len-1]. (ノ is
	// used because Standardize itself leaves it in place, whereas a
	// leading ケ is already dropped by Standardize.)
	elements := []AzaNameElement{
		{Level: LevelCity, Name: "ノ市"},
	}
	got := StandardizeAzaName(itaiji.Default, elements)
	if got != "ノ市" {
		t.Errorf("got %q, want %q (leading ノ must be preserved)", got, "ノ市")
	}
}
