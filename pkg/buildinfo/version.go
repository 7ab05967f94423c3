// Package buildinfo reports the version of the gridscad binary.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/gridscad/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/gridscad/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/gridscad/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Binaries built with "go install ...@version" carry no ldflags; for those the
// module version and VCS stamps embedded by the Go toolchain fill in whatever
// ldflags left at its default.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

const (
	defaultVersion = "dev"
	defaultCommit  = "none"
	defaultDate    = "unknown"
)

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = defaultVersion

	// Commit is the git commit SHA.
	Commit = defaultCommit

	// Date is the build timestamp.
	Date = defaultDate
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fromBuildInfo(info)
	}
}

// fromBuildInfo fills variables still at their defaults from info.
func fromBuildInfo(info *debug.BuildInfo) {
	if Version == defaultVersion && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == defaultCommit && s.Value != "" {
				Commit = s.Value
			}
		case "vcs.time":
			if Date == defaultDate && s.Value != "" {
				Date = s.Value
			}
		}
	}
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
