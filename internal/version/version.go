// Package version holds the tigerc build identity: a semantic version
// plus the optional commit/build-date stamps a release build sets via
// -ldflags, colorized the way the teacher's internal/version colorizes
// its own CLI's version string.
package version

import "github.com/fatih/color"

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = majorColor.Sprint("0") + "." + minorColor.Sprint("1") + "." + patchColor.Sprint("0") + "-dev"

	// GitCommit is an optional git commit hash, set via -ldflags.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601, set via -ldflags.
	BuildDate = ""
)

// String reports the full version line `tigerc version` prints,
// appending the commit and build date only when a release build has
// set them.
func String() string {
	s := "tigerc " + Version
	if GitCommit != "" {
		s += " (" + GitCommit
		if BuildDate != "" {
			s += ", built " + BuildDate
		}
		s += ")"
	} else if BuildDate != "" {
		s += " (built " + BuildDate + ")"
	}
	return s
}
