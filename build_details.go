package googlemap

import (
	"fmt"
	"runtime"
)

// Set with -ldflags "-X github.com/erraggy/googlemap.version=v1.2.3" by release builds.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the release version, or "dev" when built from source.
func Version() string {
	return version
}

// Commit returns the short git hash of the build, or "unknown".
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or "unknown".
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go version the binary was built with.
func GoVersion() string {
	return runtime.Version()
}

// BuildInfo returns every build detail, one per line.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}
