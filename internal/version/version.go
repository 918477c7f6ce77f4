package version

import (
	"fmt"
	"strings"
)

// DefaultVersion is reported when the build injected an empty version.
const DefaultVersion = "0.0.0-dev"

var (
	// Version is the semantic version of the build. It can be overridden via ldflags.
	Version = "1.0.0"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns only the semantic version string. It is never empty.
func Short() string {
	if v := strings.TrimSpace(Version); v != "" {
		return v
	}

	return DefaultVersion
}

// Full returns a human-readable version string with commit and build time.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Short(), Commit, BuildTime)
}
