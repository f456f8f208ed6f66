// Package build provides version and build information for changelogkyper.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

import (
	"fmt"
	"runtime"
)

// SourceURL is the project source URL.
const SourceURL = "https://github.com/floranpagliai/changelogkyper"

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ShortCommit returns the first 7 characters of the commit hash.
func ShortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}

// Fields returns the build metadata as label/value pairs in display order.
func Fields() [][2]string {
	return [][2]string{
		{"version", Version},
		{"commit", ShortCommit()},
		{"built", BuildDate},
		{"go", runtime.Version()},
		{"platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
	}
}
