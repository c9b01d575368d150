// Package pattern holds the shared time part grammar used by the normalizer,
// the finder and the duration parser.
//
// A time part is a 1-5 digit count followed by a unit token, an interval is one
// or more time parts with no required separator. The grammar is recognised by a
// hand-written scanner that never backtracks across parts, so every match is
// linear in the length of the input
package pattern

import "strings"

// Unit is a duration unit the grammar recognises
type Unit uint8

const (
	// UnitNone is the zero value and never produced by a successful scan
	UnitNone Unit = iota
	// UnitSecond is s, sec, secs, second, seconds
	UnitSecond
	// UnitMinute is m, min, mins, minute, minutes
	UnitMinute
	// UnitHour is h, hr, hrs, hour, hours
	UnitHour
	// UnitDay is d, day, days
	UnitDay
	// UnitWeek is w, week, weeks
	UnitWeek
	// UnitMonth is mon, month, months
	UnitMonth
)

// unitWords holds the spelled-out singular form per unit
var unitWords = [...]string{
	UnitNone:   "",
	UnitSecond: "second",
	UnitMinute: "minute",
	UnitHour:   "hour",
	UnitDay:    "day",
	UnitWeek:   "week",
	UnitMonth:  "month",
}

// String returns the singular unit word
func (u Unit) String() string {
	if int(u) >= len(unitWords) {
		return ""
	}
	return unitWords[u]
}

// Word returns the unit word for count, plural unless count is exactly 1
func (u Unit) Word(count int) string {
	w := u.String()
	if w == "" || count == 1 {
		return w
	}
	return w + "s"
}

// unitTokens maps every accepted spelling (lowercase) to its unit.
// Bare "m" is minutes; months need at least "mon"
var unitTokens = map[string]Unit{
	"s": UnitSecond, "sec": UnitSecond, "secs": UnitSecond, "second": UnitSecond, "seconds": UnitSecond,
	"m": UnitMinute, "min": UnitMinute, "mins": UnitMinute, "minute": UnitMinute, "minutes": UnitMinute,
	"h": UnitHour, "hr": UnitHour, "hrs": UnitHour, "hour": UnitHour, "hours": UnitHour,
	"d": UnitDay, "day": UnitDay, "days": UnitDay,
	"w": UnitWeek, "week": UnitWeek, "weeks": UnitWeek,
	"mon": UnitMonth, "month": UnitMonth, "months": UnitMonth,
}

// LookupUnit resolves a unit token case-insensitively
func LookupUnit(tok string) (Unit, bool) {
	u, ok := unitTokens[strings.ToLower(tok)]
	return u, ok
}
