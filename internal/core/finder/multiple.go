package finder

import (
	"intervalparser/internal/core/duration"
	"intervalparser/internal/core/pattern"
	pstrings "intervalparser/internal/platform/strings"
)

// segment is a piece of the input between multi-interval separators
type segment struct {
	text string
	base int // byte offset of text within the input
}

// FindMultiple splits input on the configured separator and extracts one
// interval per segment. Segments without an interval are skipped, so an input
// with none yields an empty result rather than an error
func (f *Finder) FindMultiple(input string) []TimeInterval {
	var out []TimeInterval
	for _, seg := range f.split(input) {
		ti, ok := f.fromSegment(seg)
		if !ok {
			f.log.Debug().
				Str("mode", MultipleIntervals.String()).
				Int("offset", seg.base).
				Str("segment", seg.text).
				Msg("segment skipped")
			continue
		}
		out = append(out, ti)
	}
	return out
}

func (f *Finder) split(input string) []segment {
	var segs []segment
	base := 0
	rest := input
	for rest != "" {
		loc := f.sep.FindStringSubmatchIndex(rest)
		// the next group must move forward or the split would never end
		if loc == nil || loc[4] <= 0 {
			segs = append(segs, segment{text: rest, base: base})
			break
		}
		segs = append(segs, segment{text: rest[loc[2]:loc[3]], base: base + loc[2]})
		base += loc[4]
		rest = rest[loc[4]:]
	}
	return segs
}

// fromSegment finds the first interval in seg that starts at a word boundary.
// Text before it is leading data, minus the separator word unless it is kept
func (f *Finder) fromSegment(seg segment) (TimeInterval, bool) {
	s := seg.text
	for p := 0; p < len(s); p++ {
		if s[p] < '0' || s[p] > '9' || !pattern.AtWordStart(s, p) {
			continue
		}
		if _, ok := pattern.MatchPrefix(s[p:]); !ok {
			continue
		}

		normalized := f.norm.Normalize(s[p:])
		m, trailing, ok := pattern.SplitTrailing(normalized)
		if !ok {
			return TimeInterval{}, false
		}

		prefix := s[:p]
		lead := prefix
		if !f.settings.KeepLeadingSeparator {
			if lm := f.marker.FindStringSubmatchIndex(prefix); lm != nil {
				lead = prefix[lm[2]:lm[3]]
			}
		}
		return TimeInterval{
			Interval: duration.FromParts(m.Parts),
			Offset:   seg.base + p,
			Length:   m.Len(),
			Leading:  pstrings.Trim(lead),
			Trailing: trailing,
		}, true
	}
	return TimeInterval{}, false
}
