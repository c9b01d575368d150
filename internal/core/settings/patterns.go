package settings

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Named groups shared by the separator patterns
const (
	GroupFirst = "first"
	GroupNext  = "next"
)

// LeadingSeparatorExpression splits leading data from the rest of the input.
// Case-insensitive and greedy on the leading side so the last separator wins;
// the separator must have whitespace on both sides
func (s Settings) LeadingSeparatorExpression() string {
	return `(?is)^(.*)\s+(?:` + regexp.QuoteMeta(s.LeadingSeparator) + `)\s+(.*)$`
}

// LeadingSeparatorPattern compiles LeadingSeparatorExpression
func (s Settings) LeadingSeparatorPattern() *regexp.Regexp {
	return regexp.MustCompile(s.LeadingSeparatorExpression())
}

// LeadingMarkerExpression splits a segment prefix into leading data and an
// optional trailing separator word, used when several intervals share one input
func (s Settings) LeadingMarkerExpression() string {
	return `(?is)^(.*?)((?:^|\s+)(?:` + regexp.QuoteMeta(s.LeadingSeparator) + `)\s*)?$`
}

// LeadingMarkerPattern compiles LeadingMarkerExpression
func (s Settings) LeadingMarkerPattern() *regexp.Regexp {
	return regexp.MustCompile(s.LeadingMarkerExpression())
}

// SymbolSeparatorExpression splits off the first segment at the symbol separator.
// A single rune symbol uses a negated class, longer symbols a lazy match
func (s Settings) SymbolSeparatorExpression() string {
	q := regexp.QuoteMeta(s.SymbolSeparator)
	first := `.*?`
	if utf8.RuneCountInString(s.SymbolSeparator) == 1 {
		first = `[^` + q + `]*`
	}
	return `(?s)^(?P<first>` + first + `)\s?` + q + `\s?(?P<next>.*)$`
}

// WordSeparatorExpression splits off the first segment at the word separator,
// case-insensitively and on word boundaries
func (s Settings) WordSeparatorExpression() string {
	w := s.WordSeparator
	q := regexp.QuoteMeta(w)
	if r, _ := utf8.DecodeRuneInString(w); isWordRune(r) {
		q = `\b` + q
	}
	if r, _ := utf8.DecodeLastRuneInString(w); isWordRune(r) {
		q += `\b`
	}
	return `(?is)^(?P<first>.*?)\s?` + q + `\s?(?P<next>.*)$`
}

// SeparatorExpression picks the expression for the configured separation type
func (s Settings) SeparatorExpression() string {
	if s.SeparationType == SeparationWord {
		return s.WordSeparatorExpression()
	}
	return s.SymbolSeparatorExpression()
}

// SeparatorPattern compiles SeparatorExpression
func (s Settings) SeparatorPattern() *regexp.Regexp {
	return regexp.MustCompile(s.SeparatorExpression())
}

// isWordRune mirrors the ASCII \b definition used by RE2
func isWordRune(r rune) bool {
	return r < utf8.RuneSelf && (r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}
