package strings

import "testing"

func TestTrim(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want, left, right string
	}{
		{"  5 minutes  ", "5 minutes", "5 minutes  ", "  5 minutes"},
		{"\t\n5 days\r\n", "5 days", "5 days\r\n", "\t\n5 days"},
		{"\x00\x0Bfoo\x0B\x00", "foo", "foo\x0B\x00", "\x00\x0Bfoo"},
		{"\u00a0foo", "\u00a0foo", "\u00a0foo", "\u00a0foo"}, // NBSP is not in the set
		{"", "", "", ""},
	}
	for _, c := range cases {
		if got := Trim(c.in); got != c.want {
			t.Fatalf("Trim(%q) = %q, want %q", c.in, got, c.want)
		}
		if got := TrimLeft(c.in); got != c.left {
			t.Fatalf("TrimLeft(%q) = %q, want %q", c.in, got, c.left)
		}
		if got := TrimRight(c.in); got != c.right {
			t.Fatalf("TrimRight(%q) = %q, want %q", c.in, got, c.right)
		}
	}
}

func TestIsBlank(t *testing.T) {
	t.Parallel()

	if !IsBlank(" \t\n ") || !IsBlank("") {
		t.Fatalf("IsBlank should be true for whitespace")
	}
	if IsBlank(" x ") {
		t.Fatalf("IsBlank should be false for content")
	}
}

func TestPtrDeref(t *testing.T) {
	t.Parallel()

	if Ptr("") != nil {
		t.Fatalf("Ptr(\"\") should be nil")
	}
	p := Ptr("foo")
	if p == nil || *p != "foo" {
		t.Fatalf("Ptr(foo) mismatch")
	}
	if Deref(nil) != "" || Deref(p) != "foo" {
		t.Fatalf("Deref mismatch")
	}
}
