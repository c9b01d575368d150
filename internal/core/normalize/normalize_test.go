package normalize

import (
	"testing"
)

func TestNormalize_Table(t *testing.T) {
	n := New()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"empty", "", ""},
		{"compact run", "9w8d7h6m5s", "9 weeks 8 days 7 hours 6 minutes 5 seconds"},
		{"singular", "1d1h", "1 day 1 hour"},
		{"zero is plural", "0s", "0 seconds"},
		{"leading zero keeps digits", "01m", "01 minute"},
		{"months", "7mon6w5d4h3m2s", "7 months 6 weeks 5 days 4 hours 3 minutes 2 seconds"},
		{
			name: "trailing text copied trimmed",
			in:   "7mon6w5d4h3m2s bazinga!",
			out:  "7 months 6 weeks 5 days 4 hours 3 minutes 2 seconds bazinga!",
		},
		{"spelled units respelled", "2 hrs 5 mins", "2 hours 5 minutes"},
		{"single spaces allowed", " 5 m", "5 minutes"},
		{"double space between count and unit", "5  m", "5  m"},
		{"extra spaces between parts", "5m  3h", "5 minutes 3 hours"},
		{"text first leaves line alone", "foo in 9w8d", "foo in 9w8d"},
		{"unknown unit", "5 dollars", "5 dollars"},
		{"outer whitespace trimmed", "\t foo \x0b\x00", "foo"},
		{"per line", "5m foo\n3h", "5 minutes foo\n3 hours"},
		{"six digits untouched", "123456s", "123456s"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.in); got != tc.out {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	n := New()
	inputs := []string{
		"9w8d7h6m5s",
		"31d12h30m0s foo",
		" 1 h  then\nmore 5m",
		"7mon6w5d4h3m2s bazinga!",
		"plain text",
		"5m  3h",
		"5m \x003h",
		"5m3",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		if twice := n.Normalize(once); twice != once {
			t.Fatalf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalize_WidthFold(t *testing.T) {
	in := "\uff15\uff4d\u200b\uff13\uff53" // fullwidth 5m3s with a zero width space
	if got := New().Normalize(in); got == "5 minutes 3 seconds" {
		t.Fatalf("fold should be off by default")
	}
	if got := New(WithWidthFold()).Normalize(in); got != "5 minutes 3 seconds" {
		t.Fatalf("folded = %q", got)
	}

	// control runes and invalid bytes are dropped before scanning
	raw := string([]byte{'5', 0x01, 'm', 0xff})
	if got := New(WithWidthFold()).Normalize(raw); got != "5 minutes" {
		t.Fatalf("sanitized = %q", got)
	}
}

func TestNormalize_NilReceiverAndHelper(t *testing.T) {
	var n *Normalizer
	if got := n.Normalize("5m"); got != "5 minutes" {
		t.Fatalf("nil receiver = %q", got)
	}
	if got := Normalize("2w"); got != "2 weeks" {
		t.Fatalf("Normalize helper = %q", got)
	}
}
