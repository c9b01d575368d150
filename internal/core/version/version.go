// Package version reports build information for the intervalfind binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// BuildInfo holds version information about the build.
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version,omitempty"`
}

// Info returns the build information. version, commit and date are set at
// build time:
//
//	-ldflags "-X 'intervalparser/internal/core/version.version=v0.1.0'
//	-X 'intervalparser/internal/core/version.commit=abcd' -X 'intervalparser/internal/core/version.date=2025-09-02'"
func Info() BuildInfo {
	bi := BuildInfo{
		Service: "intervalfind",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	if info, ok := readBuildInfo(); ok && info != nil {
		bi.GoVersion = info.GoVersion
	}
	return bi
}

// String renders a one-line summary, e.g. "intervalfind dev (none, unknown)"
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (%s, %s)", b.Service, b.Version, b.Commit, b.Date)
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	readBuildInfo = debug.ReadBuildInfo // seam
)
