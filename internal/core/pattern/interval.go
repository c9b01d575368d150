package pattern

// Match is an interval recognised at the start of a string
type Match struct {
	Text  string // the interval text, always a prefix of the scanned string
	Parts []Part
}

// Len is the byte length of the interval text
func (m Match) Len() int { return len(m.Text) }

// MatchPrefix consumes as many time parts as possible from the start of s.
// Parts after the first may not start on a new line. It never gives back a
// part once consumed
func MatchPrefix(s string) (Match, bool) {
	var parts []Part
	pos := 0
	for pos < len(s) {
		if len(parts) > 0 && s[pos] == '\n' {
			break
		}
		p, ok := ScanPart(s, pos, Loose)
		if !ok {
			break
		}
		parts = append(parts, p)
		pos = p.End
	}
	if len(parts) == 0 {
		return Match{}, false
	}
	return Match{Text: s[:pos], Parts: parts}, true
}

// MatchInterval reports whether the whole of s is an interval
func MatchInterval(s string) (Match, bool) {
	m, ok := MatchPrefix(s)
	if !ok || m.Len() != len(s) {
		return Match{}, false
	}
	return m, true
}

// SplitTrailing separates the interval at the start of s from whatever follows it.
// trailing is returned verbatim and may be empty
func SplitTrailing(s string) (m Match, trailing string, ok bool) {
	m, ok = MatchPrefix(s)
	if !ok {
		return Match{}, "", false
	}
	return m, s[m.Len():], true
}
