package finder

import (
	"intervalparser/internal/core/duration"
	perr "intervalparser/internal/platform/errors"
)

// TimeInterval is one interval found in an input. Offset is a byte offset into
// the original input; Length is the byte length of the normalized interval text.
// Leading and Trailing are only set when the mode asked for them
type TimeInterval struct {
	Interval duration.Duration `json:"interval"`
	Offset   int               `json:"offset"`
	Length   int               `json:"length"`
	Leading  string            `json:"leading,omitempty"`
	Trailing string            `json:"trailing,omitempty"`
}

// Part names the piece of the input a format error is about
type Part string

const (
	// PartSeparator means no leading separator was found
	PartSeparator Part = "separator"
	// PartLeading means leading data was missing
	PartLeading Part = "leading"
	// PartInterval means the interval was missing or malformed, or followed by forbidden text
	PartInterval Part = "interval"
	// PartTrailing means trailing data was missing
	PartTrailing Part = "trailing"
)

// MissingPart reports which part of the input a format error blames
func MissingPart(err error) (Part, bool) {
	if !perr.IsCode(err, perr.ErrorCodeFormat) {
		return "", false
	}
	switch p := Part(perr.FieldOf(err)); p {
	case PartSeparator, PartLeading, PartInterval, PartTrailing:
		return p, true
	default:
		return "", false
	}
}

func formatErr(p Part, format string, a ...any) error {
	return perr.Formatf(string(p), format, a...)
}
