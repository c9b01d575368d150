// Package duration holds the calendar-aware duration an interval resolves to
package duration

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"intervalparser/internal/core/pattern"
	perr "intervalparser/internal/platform/errors"
	pstrings "intervalparser/internal/platform/strings"

	str2duration "github.com/xhit/go-str2duration/v2"
)

// Duration is a sum of time parts per unit. Weeks fold into days, nothing else is
// carried: 90 minutes stay 90 minutes. Months have no fixed length
type Duration struct {
	Months  int `json:"months"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// FromParts sums recognised time parts into a Duration
func FromParts(parts []pattern.Part) Duration {
	var d Duration
	for _, p := range parts {
		switch p.Unit {
		case pattern.UnitMonth:
			d.Months += p.Count
		case pattern.UnitWeek:
			d.Days += 7 * p.Count
		case pattern.UnitDay:
			d.Days += p.Count
		case pattern.UnitHour:
			d.Hours += p.Count
		case pattern.UnitMinute:
			d.Minutes += p.Count
		case pattern.UnitSecond:
			d.Seconds += p.Count
		}
	}
	return d
}

// Parse builds a Duration from a description made only of time parts,
// e.g. "9 weeks 8 days" or "9w8d"
func Parse(desc string) (Duration, error) {
	m, ok := pattern.MatchInterval(pstrings.Trim(desc))
	if !ok {
		return Duration{}, perr.Formatf("interval", "%q is not a valid interval", desc)
	}
	return FromParts(m.Parts), nil
}

// IsZero reports whether every component is zero
func (d Duration) IsZero() bool { return d == Duration{} }

// String renders d as an ISO-8601 duration, PT0S when zero
func (d Duration) String() string {
	if d.IsZero() {
		return "PT0S"
	}
	var b strings.Builder
	b.WriteByte('P')
	writeISO(&b, d.Months, 'M')
	writeISO(&b, d.Days, 'D')
	if d.Hours != 0 || d.Minutes != 0 || d.Seconds != 0 {
		b.WriteByte('T')
		writeISO(&b, d.Hours, 'H')
		writeISO(&b, d.Minutes, 'M')
		writeISO(&b, d.Seconds, 'S')
	}
	return b.String()
}

func writeISO(b *strings.Builder, n int, designator byte) {
	if n == 0 {
		return
	}
	b.WriteString(strconv.Itoa(n))
	b.WriteByte(designator)
}

// maxSeconds is the largest second count a time.Duration can hold
const maxSeconds = math.MaxInt64 / int64(time.Second)

// Std converts d to a time.Duration. It fails when d has months or does not fit
func (d Duration) Std() (time.Duration, error) {
	if d.Months != 0 {
		return 0, perr.InvalidArgf("duration %s has months, which have no fixed length", d)
	}
	total := int64(d.Days)*86400 + int64(d.Hours)*3600 + int64(d.Minutes)*60 + int64(d.Seconds)
	if total > maxSeconds {
		return 0, perr.InvalidArgf("duration %s overflows time.Duration", d)
	}
	std, err := str2duration.ParseDuration(fmt.Sprintf("%dd%dh%dm%ds", d.Days, d.Hours, d.Minutes, d.Seconds))
	if err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "convert duration %s", d)
	}
	return std, nil
}

// AddTo applies d to t: months and days on the calendar, the rest as clock time
func (d Duration) AddTo(t time.Time) time.Time {
	t = t.AddDate(0, d.Months, d.Days)
	return t.Add(time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute +
		time.Duration(d.Seconds)*time.Second)
}
