package version

import (
	"runtime/debug"
	"testing"

	kit "intervalparser/internal/platform/testkit"
)

func TestInfo_Defaults(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) { return nil, false })

	got := Info()
	kit.MustEqual(t, BuildInfo{Service: "intervalfind", Version: "dev", Commit: "none", Date: "unknown"}, got)
	if s := got.String(); s != "intervalfind dev (none, unknown)" {
		t.Fatalf("String() = %q", s)
	}
}

func TestInfo_Stamped(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &version, "v1.2.3")
	kit.Swap(t, &commit, "abc123")
	kit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{GoVersion: "go1.25.0"}, true
	})

	got := Info()
	if got.Version != "v1.2.3" || got.Commit != "abc123" || got.GoVersion != "go1.25.0" {
		t.Fatalf("Info() = %+v", got)
	}
}
