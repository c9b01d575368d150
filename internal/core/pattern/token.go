package pattern

import (
	"unicode"
	"unicode/utf8"
)

// isWord reports whether r is considered a word character for boundary checks.
// Letters, numbers, combining marks (Mn) and connector punctuation (Pc, e.g. underscore)
func isWord(r rune) bool {
	if r == utf8.RuneError || r == 0 {
		return false
	}
	return unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.In(r, unicode.Mn, unicode.Pc)
}

// isUnitRune reports whether r may be part of a unit token run.
// ASCII digits end a token so "9w8d" splits into parts
func isUnitRune(r rune) bool {
	return isWord(r) && !isDigit(r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// skipSpace advances over at most limit whitespace runes (limit < 0 means any)
func skipSpace(s string, i, limit int) int {
	for n := 0; i < len(s) && (limit < 0 || n < limit); n++ {
		r, sz := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += sz
	}
	return i
}

// unitRun returns the end of the unit token run starting at i
func unitRun(s string, i int) int {
	for i < len(s) {
		r, sz := utf8.DecodeRuneInString(s[i:])
		if !isUnitRune(r) {
			break
		}
		i += sz
	}
	return i
}

// AtWordStart reports whether byte offset i is not preceded by a word character
func AtWordStart(s string, i int) bool {
	if i <= 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWord(r)
}
