package itaiji

// NumericChar returns the integer value represented by a single rune: 0-9
// for ASCII/full-width/kansuji digits, and the positional multiplier for
// 十(10)/百(100)/千(1000)/万(10000). ok is false for any other rune.
func NumericChar(c rune) (value int, ok bool) {
	if c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	for i, r := range []rune(arabic) {
		if r == c {
			return i, true
		}
	}
	for i, r := range []rune(kansuji) {
		if r == c {
			return i, true
		}
	}
	switch c {
	case '十':
		return 10, true
	case '百':
		return 100, true
	case '千':
		return 1000, true
	case '万':
		return 10000, true
	}
	return 0, false
}

// GetNumber parses the longest numeric prefix of runes, mixing Arabic
// digits (ASCII or full-width) and kansuji positional notation
// (e.g. 二千四十五万 = 20450000). It returns the parsed value and the
// count of runes consumed. A run of Arabic digits ends at the first
// kansuji, so "0一" yields 0 with one rune consumed; a kansuji zero ('〇')
// at the very start is not consumed at all (consumed is 0).
func GetNumber(runes []rune) (value int, consumed int) {
	total, curval := 0, 0
	mode := -1 // -1 unset, 0 parsing arabic digits, 1 parsing kansuji
	pos := 0

	for _, c := range runes {
		switch {
		case (c >= '0' && c <= '9') || IsFullWidthDigit(c):
			k, _ := NumericChar(c)
			curval = curval*10 + k
			mode = 0
			pos++

		case mode == 0:
			goto done

		case IsKansuji(c):
			k, _ := NumericChar(c)
			if total+curval == 0 && k == 0 {
				goto done
			}
			curval = curval*10 + k
			mode = 1
			pos++

		case c == '十' || c == '百' || c == '千' || c == '万':
			k, _ := NumericChar(c)
			if curval == 0 {
				curval = 1
			}
			if total%k > 0 {
				total = total * k
			}
			total += curval * k
			curval = 0
			mode = 1
			pos++

		default:
			goto done
		}
	}

done:
	total += curval
	return total, pos
}
