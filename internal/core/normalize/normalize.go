// Package normalize rewrites abbreviated time parts into their spelled-out form,
// e.g. "9w8d" becomes "9 weeks 8 days".
//
// Scanning starts at the beginning of each line. Every time part found there is
// rewritten as "<digits> <unit word> ". The first position that does not start a
// time part ends the run: the rest of that line is copied trimmed. A count and
// its unit may be separated by at most one whitespace rune. Newlines are
// kept, and the whole result is trimmed at both ends
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"intervalparser/internal/core/pattern"
	pstrings "intervalparser/internal/platform/strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is safe for concurrent use
type Normalizer struct {
	fold bool
}

// Option configures a Normalizer
type Option func(*Normalizer)

// WithWidthFold enables a pre-pass that applies NFKC, strips format and control
// runes and folds fullwidth forms, so "５ｍ" normalizes like "5m"
func WithWidthFold() Option {
	return func(n *Normalizer) { n.fold = true }
}

// New constructs a Normalizer
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, o := range opts {
		o(n)
	}
	return n
}

// pool of fresh transformer chains for the fold pre-pass
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)), // ZWJ ZWNJ FEFF etc
			runes.Remove(runes.Predicate(isControl)),
			width.Fold,
		)
	},
}

// isControl matches C0 controls other than tab, LF and CR, plus DEL and C1
func isControl(r rune) bool {
	switch {
	case r == '\n' || r == '\r' || r == '\t':
		return false
	case r < 0x20, r == 0x7F:
		return true
	default:
		return r >= 0x80 && r <= 0x9F
	}
}

// Normalize returns the normalized form of s
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}
	if n != nil && n.fold {
		s = foldWidth(s)
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/2)

	for line := range strings.Lines(s) {
		body, nl := strings.CutSuffix(line, "\n")
		writeLine(&b, body)
		if nl {
			b.WriteByte('\n')
		}
	}
	return pstrings.Trim(b.String())
}

// writeLine rewrites the run of time parts at the start of line. Whitespace
// before each count is dropped so the text left over never starts a part
func writeLine(b *strings.Builder, line string) {
	for {
		line = pstrings.TrimLeft(line)
		p, ok := pattern.ScanPart(line, 0, pattern.Tight)
		if !ok {
			break
		}
		b.WriteString(p.Digits)
		b.WriteByte(' ')
		b.WriteString(p.Unit.Word(p.Count))
		b.WriteByte(' ')
		line = line[p.End:]
	}
	b.WriteString(pstrings.TrimRight(line))
}

func foldWidth(s string) string {
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return s
	}
	return out
}

// Normalize runs a default Normalizer over s
func Normalize(s string) string { return New().Normalize(s) }
