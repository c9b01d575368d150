package finder

import (
	"strings"

	perr "intervalparser/internal/platform/errors"
)

// Flags selects the extraction mode
type Flags uint8

const (
	// IntervalOnly accepts an interval with no surrounding text
	IntervalOnly Flags = 0
	// RequireTrailing requires text after the interval
	RequireTrailing Flags = 1 << 0
	// RequireLeading requires text and a separator before the interval
	RequireLeading Flags = 1 << 1
	// MultipleIntervals splits the input into several intervals; it combines with nothing
	MultipleIntervals Flags = 1 << 2

	knownFlags = RequireTrailing | RequireLeading | MultipleIntervals
)

// Validate rejects unknown bits and MultipleIntervals combined with another flag
func (f Flags) Validate() error {
	if f&^knownFlags != 0 {
		return perr.InvalidFlagf("unknown mode flags %#x", uint8(f&^knownFlags))
	}
	if f&MultipleIntervals != 0 && f != MultipleIntervals {
		return perr.InvalidFlagf("multiple intervals cannot be combined with other modes (%s)", f)
	}
	return nil
}

// String names the mode, e.g. "leading|trailing"
func (f Flags) String() string {
	if f == IntervalOnly {
		return "interval_only"
	}
	var names []string
	if f&RequireLeading != 0 {
		names = append(names, "leading")
	}
	if f&RequireTrailing != 0 {
		names = append(names, "trailing")
	}
	if f&MultipleIntervals != 0 {
		names = append(names, "multiple")
	}
	if f&^knownFlags != 0 {
		names = append(names, "unknown")
	}
	return strings.Join(names, "|")
}
