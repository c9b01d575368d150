// Package intervalparser finds human-written time intervals such as
// "9w8d7h6m5s", "remind me in 2 hours" or "3d4h bazinga!" in text and turns
// them into durations.
//
// Four single-interval modes are selected with Flags: IntervalOnly,
// RequireLeading, RequireTrailing and RequireLeading|RequireTrailing.
// MultipleIntervals splits the input on a configurable separator and returns
// one interval per segment, skipping segments without one.
//
//	ti, err := intervalparser.Find("foo in 9w8d", intervalparser.RequireLeading)
//	// ti.Leading == "foo", ti.Offset == 7, ti.Interval.Days == 71
package intervalparser

import (
	"sync"

	"intervalparser/internal/core/duration"
	"intervalparser/internal/core/finder"
	"intervalparser/internal/core/normalize"
	"intervalparser/internal/core/parser"
	"intervalparser/internal/core/settings"
	perr "intervalparser/internal/platform/errors"
)

type (
	// TimeInterval is an interval found in an input with its position and context
	TimeInterval = finder.TimeInterval
	// Duration is the per-unit sum of an interval's time parts
	Duration = duration.Duration
	// Flags selects the extraction mode
	Flags = finder.Flags
	// Part names the piece of input a format error blames
	Part = finder.Part
	// Finder extracts intervals with fixed settings
	Finder = finder.Finder
	// Option configures a Finder
	Option = finder.Option
	// Normalizer rewrites abbreviated time parts before matching
	Normalizer = finder.Normalizer
	// Settings holds the separators a Finder works with
	Settings = settings.Settings
	// SettingsOption changes one setting
	SettingsOption = settings.Option
	// SeparationType selects how multiple intervals are separated
	SeparationType = settings.SeparationType
)

// Modes
const (
	IntervalOnly      = finder.IntervalOnly
	RequireTrailing   = finder.RequireTrailing
	RequireLeading    = finder.RequireLeading
	MultipleIntervals = finder.MultipleIntervals
)

// Format error parts
const (
	PartSeparator = finder.PartSeparator
	PartLeading   = finder.PartLeading
	PartInterval  = finder.PartInterval
	PartTrailing  = finder.PartTrailing
)

// Separation types
const (
	SeparationSymbol = settings.SeparationSymbol
	SeparationWord   = settings.SeparationWord
)

var (
	// DefaultSettings returns the default settings
	DefaultSettings = settings.Default
	// NewSettings applies options over the defaults and validates
	NewSettings = settings.New

	WithLeadingSeparator     = settings.WithLeadingSeparator
	WithKeepLeadingSeparator = settings.WithKeepLeadingSeparator
	WithSymbolSeparator      = settings.WithSymbolSeparator
	WithWordSeparator        = settings.WithWordSeparator

	WithNormalizer = finder.WithNormalizer
	WithLogger     = finder.WithLogger

	// MissingPart reports which part of the input a format error blames
	MissingPart = finder.MissingPart
)

// New builds a Finder for s
func New(s Settings, opts ...Option) (*Finder, error) {
	return finder.New(s, opts...)
}

var defaultFinder = sync.OnceValue(func() *Finder {
	f, err := finder.New(settings.Default())
	if err != nil {
		// defaults always validate
		panic(err)
	}
	return f
})

// Find extracts one interval from input with the default settings
func Find(input string, flags Flags) (TimeInterval, error) {
	return defaultFinder().Find(input, flags)
}

// FindMultiple extracts every interval from input with the default settings
func FindMultiple(input string) []TimeInterval {
	return defaultFinder().FindMultiple(input)
}

// Parse requires the whole input to be an interval and returns its duration
func Parse(input string) (Duration, error) {
	return parser.New().Parse(input)
}

// Normalize spells out abbreviated time parts, e.g. "5m" becomes "5 minutes"
func Normalize(input string) string {
	return normalize.Normalize(input)
}

// IsInvalidFlag reports whether err rejected a mode flag combination
func IsInvalidFlag(err error) bool { return perr.IsCode(err, perr.ErrorCodeInvalidFlag) }

// IsFormat reports whether err rejected the input's format
func IsFormat(err error) bool { return perr.IsCode(err, perr.ErrorCodeFormat) }

// IsValidation reports whether err rejected the settings
func IsValidation(err error) bool { return perr.IsCode(err, perr.ErrorCodeValidation) }
