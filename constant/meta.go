// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Dynstack is the canonical application identifier used for filesystem paths and CLI branding.
	Dynstack = "dynstack"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridden at link time by the release pipeline.
var (
	// BuiltAt is the UTC timestamp of the binary's build.
	BuiltAt = "unknown"

	// BuiltBy identifies the builder (CI job or developer) that produced the binary.
	BuiltBy = "unknown"

	// Revision is the VCS revision the binary was built from.
	Revision = "unknown"
)
