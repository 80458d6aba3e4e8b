package version

import "github.com/fatih/color"

// Build metadata for the crier CLI. The raw values can be overridden at
// build time via -ldflags.

const (
	major = "0"
	minor = "1"
	patch = "0"
	pre   = "dev"
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)

	// Version is the colorized semantic version of the CLI.
	Version = majorColor.Sprint(major) + "." + minorColor.Sprint(minor) + "." + patchColor.Sprint(patch) + "-" + pre

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Plain returns the version string without color codes, for logs and
// machine-readable output.
func Plain() string {
	return major + "." + minor + "." + patch + "-" + pre
}
