// Package finder locates intervals in free text.
//
// Each mode first splits off what it needs (leading data before the separator
// word), normalizes the remainder and matches it against the interval grammar.
// Offsets point into the original input, lengths are measured on the normalized
// interval text since normalization changes length
package finder

import (
	"regexp"

	"intervalparser/internal/core/duration"
	"intervalparser/internal/core/normalize"
	"intervalparser/internal/core/pattern"
	"intervalparser/internal/core/settings"
	perr "intervalparser/internal/platform/errors"
	"intervalparser/internal/platform/logger"
	pstrings "intervalparser/internal/platform/strings"
)

// Normalizer rewrites abbreviated time parts before matching
type Normalizer interface {
	Normalize(s string) string
}

// Finder is immutable after New and safe for concurrent use
type Finder struct {
	settings settings.Settings
	norm     Normalizer
	log      logger.Logger

	leading *regexp.Regexp
	marker  *regexp.Regexp
	sep     *regexp.Regexp
}

// Option configures a Finder
type Option func(*Finder)

// WithNormalizer replaces the default normalizer
func WithNormalizer(n Normalizer) Option {
	return func(f *Finder) {
		if n != nil {
			f.norm = n
		}
	}
}

// WithLogger sets the logger; the default discards everything
func WithLogger(l logger.Logger) Option {
	return func(f *Finder) { f.log = l }
}

// New validates s and builds a Finder with the patterns derived from it
func New(s settings.Settings, opts ...Option) (*Finder, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	f := &Finder{
		settings: s,
		norm:     normalize.New(),
		log:      logger.Nop(),
		leading:  s.LeadingSeparatorPattern(),
		marker:   s.LeadingMarkerPattern(),
		sep:      s.SeparatorPattern(),
	}
	for _, o := range opts {
		o(f)
	}
	return f, nil
}

// Settings returns the settings the Finder was built with
func (f *Finder) Settings() settings.Settings { return f.settings }

// Find extracts a single interval according to flags. With MultipleIntervals it
// returns the first interval FindMultiple yields
func (f *Finder) Find(input string, flags Flags) (TimeInterval, error) {
	if err := flags.Validate(); err != nil {
		f.log.Debug().Str("mode", flags.String()).Err(err).Msg("invalid mode")
		return TimeInterval{}, err
	}

	var (
		ti  TimeInterval
		err error
	)
	switch flags {
	case IntervalOnly:
		ti, err = f.intervalOnly(input)
	case RequireLeading:
		ti, err = f.withLeading(input)
	case RequireTrailing:
		ti, err = f.withTrailing(input)
	case RequireLeading | RequireTrailing:
		ti, err = f.withLeadingAndTrailing(input)
	case MultipleIntervals:
		all := f.FindMultiple(input)
		if len(all) == 0 {
			err = formatErr(PartInterval, "no interval found in %q", input)
			break
		}
		ti = all[0]
	}

	if err != nil {
		f.log.Debug().
			Str("mode", flags.String()).
			Str("reason", perr.FieldOf(err)).
			Err(err).
			Msg("interval rejected")
		return TimeInterval{}, err
	}
	f.log.Debug().
		Str("mode", flags.String()).
		Int("offset", ti.Offset).
		Int("length", ti.Length).
		Stringer("interval", ti.Interval).
		Msg("interval found")
	return ti, nil
}

func (f *Finder) intervalOnly(input string) (TimeInterval, error) {
	normalized := f.norm.Normalize(input)
	m, ok := pattern.MatchInterval(normalized)
	if !ok {
		return TimeInterval{}, formatErr(PartInterval, "%q is not an interval, surrounding text is not allowed in this mode", input)
	}
	return TimeInterval{
		Interval: duration.FromParts(m.Parts),
		Length:   len(normalized),
	}, nil
}

func (f *Finder) withLeading(input string) (TimeInterval, error) {
	lead, rest, offset, err := f.splitLeading(input)
	if err != nil {
		return TimeInterval{}, err
	}
	normalized := f.norm.Normalize(rest)
	m, trailing, ok := pattern.SplitTrailing(normalized)
	if !ok {
		return TimeInterval{}, formatErr(PartInterval, "no interval after %q in %q", f.settings.LeadingSeparator, input)
	}
	if trailing != "" {
		return TimeInterval{}, formatErr(PartInterval, "unexpected %q after the interval, trailing data is not allowed in this mode", trailing)
	}
	return TimeInterval{
		Interval: duration.FromParts(m.Parts),
		Offset:   offset,
		Length:   len(normalized),
		Leading:  lead,
	}, nil
}

func (f *Finder) withTrailing(input string) (TimeInterval, error) {
	normalized := f.norm.Normalize(input)
	m, trailing, ok := pattern.SplitTrailing(normalized)
	if !ok {
		return TimeInterval{}, formatErr(PartInterval, "%q does not start with an interval, leading data requires a separator, e.g. foo %s <interval>", input, f.settings.LeadingSeparator)
	}
	if pstrings.IsBlank(trailing) {
		return TimeInterval{}, formatErr(PartTrailing, "missing trailing data after the interval in %q", input)
	}
	return TimeInterval{
		Interval: duration.FromParts(m.Parts),
		Length:   m.Len(),
		Trailing: trailing,
	}, nil
}

func (f *Finder) withLeadingAndTrailing(input string) (TimeInterval, error) {
	lead, rest, offset, err := f.splitLeading(input)
	if err != nil {
		return TimeInterval{}, err
	}
	normalized := f.norm.Normalize(rest)
	m, trailing, ok := pattern.SplitTrailing(normalized)
	if !ok {
		return TimeInterval{}, formatErr(PartInterval, "no interval after %q in %q", f.settings.LeadingSeparator, input)
	}
	return TimeInterval{
		Interval: duration.FromParts(m.Parts),
		Offset:   offset,
		Length:   m.Len(),
		Leading:  lead,
		Trailing: trailing,
	}, nil
}

// splitLeading cuts input at the last leading separator. offset is where the
// remainder starts in input
func (f *Finder) splitLeading(input string) (lead, rest string, offset int, err error) {
	loc := f.leading.FindStringSubmatchIndex(input)
	if loc == nil {
		sep := f.settings.LeadingSeparator
		return "", "", 0, formatErr(PartSeparator, "no separator %q found, leading data requires a separator, e.g. foo %s <interval>", sep, sep)
	}
	offset = loc[4]
	rest = input[offset:loc[5]]

	lead = pstrings.Trim(input[loc[2]:loc[3]])
	if lead == "" {
		return "", "", 0, formatErr(PartLeading, "missing leading data before %q", f.settings.LeadingSeparator)
	}
	if pstrings.IsBlank(rest) {
		return "", "", 0, formatErr(PartInterval, "missing interval after %q", f.settings.LeadingSeparator)
	}
	if f.settings.KeepLeadingSeparator {
		lead = pstrings.Trim(input[loc[2]:offset])
	}
	return lead, rest, offset, nil
}
