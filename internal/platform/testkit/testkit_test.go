package testkit

import (
	"testing"

	perr "intervalparser/internal/platform/errors"
)

func TestMustContain(t *testing.T) {
	t.Parallel()

	MustContain(t, "foo in 5 minutes", "5 minutes")
}

func TestMustEqual(t *testing.T) {
	t.Parallel()

	type pair struct{ A, B int }
	MustEqual(t, pair{1, 2}, pair{1, 2})
	MustEqual(t, []string{"a"}, []string{"a"})
}

func TestMustCode(t *testing.T) {
	t.Parallel()

	MustCode(t, perr.Formatf("trailing", "missing"), perr.ErrorCodeFormat, "trailing")
	MustCode(t, perr.InvalidFlagf("bad"), perr.ErrorCodeInvalidFlag, "")
}
