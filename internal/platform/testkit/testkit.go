// Package testkit provides testing helpers shared by the package tests
package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	perr "intervalparser/internal/platform/errors"

	"github.com/google/go-cmp/cmp"
)

// MustContain asserts that haystack contains needle. If not, writes haystack to a temp file for debugging
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		tmpfile := filepath.Join(t.TempDir(), "output.txt")
		_ = os.WriteFile(tmpfile, []byte(haystack), 0o600)
		t.Fatalf("expected output to contain %q\n\nfull output written to %s", needle, tmpfile)
	}
}

// MustEqual fails with a readable diff when got differs from want
func MustEqual[T any](t *testing.T, want, got T, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Fatalf("mismatch (-want +got):\n%s", d)
	}
}

// MustCode asserts err carries the given code and, when field is non-empty, that field
func MustCode(t *testing.T, err error, code perr.ErrorCode, field string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if got := perr.CodeOf(err); got != code {
		t.Fatalf("code = %s, want %s (err: %v)", got, code, err)
	}
	if field != "" {
		if got := perr.FieldOf(err); got != field {
			t.Fatalf("field = %q, want %q (err: %v)", got, field, err)
		}
	}
}
