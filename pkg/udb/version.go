// Package udb holds application-wide metadata.
package udb

var (
	// Version is set by build flags.
	Version = "v0.1.0"

	// Build is set by build flags to the git commit hash.
	Build = "n/a"
)
