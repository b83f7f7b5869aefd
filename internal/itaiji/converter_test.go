package itaiji

import "testing"

func TestStandardizeNumbers(t *testing.T) {
	cases := []struct{ in, want string }{
		{"１０１番地", "101.番地"},
		{"二十四号", "24.号"},
		{"あ二五四線", "あ254.線"},
	}
	for _, c := range cases {
		if got := Default.Standardize(c.in, false); got != c.want {
			t.Errorf("Standardize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStandardizeReplacesNoBetweenNumbers(t *testing.T) {
	if got := Default.Standardize("２の１", false); got != "2.-1." {
		t.Errorf("got %q, want %q", got, "2.-1.")
	}
	if got := Default.Standardize("井の頭公園駅", false); got != "井の頭公園駅" {
		t.Errorf("got %q, want unchanged", got)
	}
}

func TestStandardizeOmitsSandwichedKana(t *testing.T) {
	if got := Default.Standardize("竜ヶ崎市", false); got != "竜崎市" {
		t.Errorf("got %q, want %q", got, "竜崎市")
	}
	if got := Default.Standardize("つつじが丘", false); got != "つつじが丘" {
		t.Errorf("got %q, want unchanged", got)
	}
}

func TestStandardizeFoldsItaiji(t *testing.T) {
	if got := Default.Standardize("龍崎市", false); got != "竜崎市" {
		t.Errorf("got %q, want %q", got, "竜崎市")
	}
	if got := Default.Standardize("籠原駅", false); got != "篭原駅" {
		t.Errorf("got %q, want %q", got, "篭原駅")
	}
}

func TestStandardizeKeepNumbersPreservesGlyphs(t *testing.T) {
	got := Default.Standardize("多摩市落合1-15-2", true)
	want := "多摩市落合1.-15.-2."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStandardizeIdempotent(t *testing.T) {
	inputs := []string{"多摩市落合1-15-2", "龍ケ崎市薄倉2364", "京都市上京区下立売通新町西入薮ノ内町"}
	for _, s := range inputs {
		once := Default.Standardize(s, false)
		twice := Default.Standardize(once, false)
		if once != twice {
			t.Errorf("Standardize not idempotent for %q: once=%q twice=%q", s, once, twice)
		}
	}
}

func TestGetNumber(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"2-", 2},
		{"1234a", 1234},
		{"0015", 15},
		{"24", 24},
		{"一三五", 135},
		{"二千四十五万円", 20450000},
	}
	for _, c := range cases {
		n, _ := GetNumber([]rune(c.in))
		if n != c.want {
			t.Errorf("GetNumber(%q) = %d, want %d", c.in, n, c.want)
		}
	}
}

func TestCheckOptionalPrefixesAndPostfixes(t *testing.T) {
	if l := Default.CheckOptionalPrefixes("大字道仏"); l != 2 {
		t.Errorf("CheckOptionalPrefixes = %d, want 2", l)
	}
	if l := Default.CheckOptionalPrefixes("字貝取"); l != 1 {
		t.Errorf("CheckOptionalPrefixes = %d, want 1", l)
	}
	if l := Default.CheckOptionalPostfixes("1番地"); l != 2 {
		t.Errorf("CheckOptionalPostfixes = %d, want 2", l)
	}
	if l := Default.CheckOptionalPostfixes("15号"); l != 1 {
		t.Errorf("CheckOptionalPostfixes = %d, want 1", l)
	}
}
