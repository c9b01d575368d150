package config

import (
	"testing"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	iv := root.Prefix("INTERVAL_")
	if got := iv.key("LEADING_SEPARATOR"); got != "INTERVAL_LEADING_SEPARATOR" {
		t.Fatalf("key() = %q, want %q", got, "INTERVAL_LEADING_SEPARATOR")
	}
	// nested prefix
	nested := iv.Prefix("NORMALIZE_")
	if got := nested.key("WIDTH_FOLD"); got != "INTERVAL_NORMALIZE_WIDTH_FOLD" {
		t.Fatalf("nested key() = %q, want %q", got, "INTERVAL_NORMALIZE_WIDTH_FOLD")
	}
}

func TestLookup(t *testing.T) {
	c := New().Prefix("LK_")
	t.Setenv("LK_SEP", " ")
	v, ok := c.Lookup("SEP")
	if !ok || v != " " {
		t.Fatalf("Lookup = %q,%v, want untrimmed space", v, ok)
	}
	if _, ok := c.Lookup("MISSING"); ok {
		t.Fatalf("Lookup(MISSING) should report unset")
	}
}

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "in"); got != "in" {
		t.Fatalf("MayString default = %q, want %q", got, "in")
	}
	t.Setenv("S_SEP", "  after ")
	if got := c.MayString("SEP", "in"); got != "after" {
		t.Fatalf("MayString = %q, want %q", got, "after")
	}
	t.Setenv("S_BLANK", "   ")
	if got := c.MayString("BLANK", "in"); got != "in" {
		t.Fatalf("MayString(blank) = %q, want default", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if !c.MayBool("MISSING", true) {
		t.Fatalf("MayBool default true expected")
	}
	t.Setenv("B_ON", " true ")
	if !c.MayBool("ON", false) {
		t.Fatalf("MayBool true expected")
	}
	t.Setenv("B_BAD", "perhaps")
	if c.MayBool("BAD", false) {
		t.Fatalf("MayBool invalid should fall back to default")
	}
}
