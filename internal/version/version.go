// Package version reports the build version of the tool.
package version

// Overridden at release time via -ldflags "-X .../internal/version.v=...".
var v = "0.1.0"

func String() string { return v }
