package geocoder

import (
	"testing"

	"github.com/jageocoder-go/internal/itaiji"
)

func TestDestandardizeIdentityNoNormalization(t *testing.T) {
	got := Destandardize(itaiji.Default, "多摩市落合", "多摩市", "多摩市")
	if got != "多摩市" {
		t.Errorf("got %q, want %q", got, "多摩市")
	}
}

// Reproduces the walker's own canonical output for "多摩市落合1-15-2":
// the numeric-run folding turns "1-15-2" into "1.-15.-2." and the
// matched prefix "1.-15.-" (everything but the trailing house number)
// must decode back to "1-15-" in the original spelling.
func TestDestandardizeRecoversHyphenatedNumberRun(t *testing.T) {
	got := Destandardize(itaiji.Default, "多摩市落合1-15-2", "多摩市落合1.-15.-", "15番地")
	want := "多摩市落合1-15-"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// "ケ" sandwiched between two kanji runs is dropped by Standardize; once
// the matched length accounts for the full original string, the probe
// must land past it rather than stopping one rune short.
func TestDestandardizeRecoversDroppedSandwichKana(t *testing.T) {
	got := Destandardize(itaiji.Default, "龍ケ崎市", "龍崎市", "龍ケ崎市")
	if got != "龍ケ崎市" {
		t.Errorf("got %q, want %q", got, "龍ケ崎市")
	}
}

// When the binary probe lands exactly after a trailing "通" and the
// query continues with "り"/"リ", the cosmetic extension recovers the
// full street-name suffix rather than truncating it.
func TestDestandardizeExtendsTrailingToriSuffix(t *testing.T) {
	got := Destandardize(itaiji.Default, "新町通り", "新町通", "新町通")
	if got != "新町通り" {
		t.Errorf("got %q, want %q", got, "新町通り")
	}

	gotKatakana := Destandardize(itaiji.Default, "新町通リ", "新町通", "新町通")
	if gotKatakana != "新町通リ" {
		t.Errorf("got %q, want %q", gotKatakana, "新町通リ")
	}
}

func TestDestandardizeEmptyMatchedReturnsEmpty(t *testing.T) {
	got := Destandardize(itaiji.Default, "落合", "", "落合")
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

// A target length no prefix of the query can ever reach must still
// terminate: the probe clamps at the query's bounds instead of cycling
// forever between two positions.
func TestDestandardizeUnreachableTargetTerminates(t *testing.T) {
	got := Destandardize(itaiji.Default, "落合", "落合落合落合落合落合", "落合")
	if len([]rune(got)) > len([]rune("落合")) {
		t.Errorf("got %q, longer than the original query", got)
	}
}
