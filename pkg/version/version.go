// Package version contains version information for scriptcomplete.
package version

var (
	// Version is the current version of scriptcomplete.
	Version = "dev"
	// BuildTime is the time when the binary was built.
	BuildTime = "unknown"
	// GitCommit is the git commit hash of the build.
	GitCommit = "unknown"
)

// String returns the version with its build metadata
func String() string {
	return Version + " (commit " + GitCommit + ", built " + BuildTime + ")"
}
