package pattern

// MaxDigits is the longest count a time part may carry
const MaxDigits = 5

// Spacing controls how much whitespace a time part may carry around its count
type Spacing uint8

const (
	// Loose allows any whitespace before the count and between count and unit.
	// This is the structural grammar
	Loose Spacing = iota
	// Tight allows at most one whitespace rune in each of those positions.
	// This is the abbreviation form the normalizer rewrites
	Tight
)

func (sp Spacing) limit() int {
	if sp == Tight {
		return 1
	}
	return -1
}

// Part is one recognised time part; [Start,End) covers the consumed text
// including any whitespace ahead of the count
type Part struct {
	Digits string // count as written, e.g. "05"
	Count  int
	Unit   Unit
	Token  string // unit token as written, e.g. "Hrs"
	Start  int
	End    int
}

// ScanPart recognises a single time part starting at byte offset at.
// The unit token must be the whole run of word characters that follows the
// count (a digit may follow it directly), so "5 minx" and "5mo" are rejected
func ScanPart(s string, at int, sp Spacing) (Part, bool) {
	if at < 0 || at > len(s) {
		return Part{}, false
	}

	i := skipSpace(s, at, sp.limit())

	ds := i
	for i < len(s) && isDigit(rune(s[i])) {
		i++
		if i-ds > MaxDigits {
			return Part{}, false
		}
	}
	if i == ds {
		return Part{}, false
	}
	digits := s[ds:i]

	i = skipSpace(s, i, sp.limit())

	ts := i
	i = unitRun(s, i)
	if i == ts {
		return Part{}, false
	}
	tok := s[ts:i]
	u, ok := LookupUnit(tok)
	if !ok {
		return Part{}, false
	}

	return Part{
		Digits: digits,
		Count:  atoi(digits),
		Unit:   u,
		Token:  tok,
		Start:  at,
		End:    i,
	}, true
}

// atoi parses at most MaxDigits ASCII digits, which cannot overflow
func atoi(digits string) int {
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	return n
}
