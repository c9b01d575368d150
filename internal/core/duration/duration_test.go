package duration

import (
	"testing"
	"time"

	perr "intervalparser/internal/platform/errors"
	kit "intervalparser/internal/platform/testkit"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Duration
	}{
		{"9 weeks 8 days 7 hours 6 minutes 5 seconds", Duration{Days: 71, Hours: 7, Minutes: 6, Seconds: 5}},
		{"9w8d7h6m5s", Duration{Days: 71, Hours: 7, Minutes: 6, Seconds: 5}},
		{"7mon6w5d4h3m2s", Duration{Months: 7, Days: 47, Hours: 4, Minutes: 3, Seconds: 2}},
		{"90m", Duration{Minutes: 90}},
		{"5m 5m", Duration{Minutes: 10}},
		{"  1 hour  ", Duration{Hours: 1}},
		{"0s", Duration{}},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c.in, err)
		}
		kit.MustEqual(t, c.want, got)
	}
}

func TestParse_Rejects(t *testing.T) {
	for _, in := range []string{"", "soon", "5 minutes later", "123456s"} {
		_, err := Parse(in)
		kit.MustCode(t, err, perr.ErrorCodeFormat, "interval")
	}
}

func TestString(t *testing.T) {
	cases := map[Duration]string{
		{}:            "PT0S",
		{Days: 71}:    "P71D",
		{Minutes: 90}: "PT90M",
		{Months: 1, Seconds: 1}:                                 "P1MT1S",
		{Months: 7, Days: 47, Hours: 4, Minutes: 3, Seconds: 2}: "P7M47DT4H3M2S",
	}
	for d, want := range cases {
		if got := d.String(); got != want {
			t.Fatalf("%+v String() = %q, want %q", d, got, want)
		}
	}
}

func TestStd(t *testing.T) {
	d := Duration{Days: 71, Hours: 7, Minutes: 6, Seconds: 5}
	got, err := d.Std()
	if err != nil {
		t.Fatalf("Std error: %v", err)
	}
	want := 71*24*time.Hour + 7*time.Hour + 6*time.Minute + 5*time.Second
	if got != want {
		t.Fatalf("Std = %v, want %v", got, want)
	}

	if z, err := (Duration{}).Std(); err != nil || z != 0 {
		t.Fatalf("zero Std = %v, %v", z, err)
	}

	_, err = Duration{Months: 1}.Std()
	kit.MustCode(t, err, perr.ErrorCodeInvalidArgument, "")

	_, err = Duration{Days: 1 << 40}.Std()
	kit.MustCode(t, err, perr.ErrorCodeInvalidArgument, "")
}

func TestAddTo(t *testing.T) {
	base := time.Date(2024, time.January, 31, 10, 0, 0, 0, time.UTC)
	got := Duration{Months: 1, Days: 1, Hours: 2, Minutes: 90}.AddTo(base)
	// Jan 31 plus one month and one day is Feb 32, which lands on Mar 3 in 2024
	want := time.Date(2024, time.March, 3, 13, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("AddTo = %v, want %v", got, want)
	}
}
