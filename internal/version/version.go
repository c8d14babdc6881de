package version

import (
	"fmt"
	"runtime"
)

// Overridden at link time, e.g.
//
//	go build -ldflags "-X github.com/latoulicious/roster/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// Version is the roster release
	Version = "0.1.0"

	// GitCommit is the commit the binary was built from
	GitCommit = "unknown"

	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// Get returns version information
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
}

// Dirty reports whether the binary was built without link-time version data
func (i Info) Dirty() bool {
	return i.GitCommit == "unknown"
}

// String is what `roster --version` prints after the command name
func (i Info) String() string {
	if i.Dirty() {
		return fmt.Sprintf("%s (dev build, go: %s)", i.Version, i.GoVersion)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s, go: %s)", i.Version, i.GitCommit, i.BuildTime, i.GoVersion)
}
