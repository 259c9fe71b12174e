// Package version holds build metadata stamped in via -ldflags.
package version

import "fmt"

var (
	Version = "0.3.0"
	Commit  = "dev"
	Date    = "unknown"
)

// Short returns just the semantic version.
func Short() string {
	return Version
}

// Full returns the version with commit and build date.
func Full() string {
	return fmt.Sprintf("%s (%s, built %s)", Version, Commit, Date)
}
