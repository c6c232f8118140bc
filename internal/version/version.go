// Package version provides the tool's version string and the
// version-derived installation defaults.
package version

import "path/filepath"

// Version is the release version, overridable at build time via
// -ldflags "-X .../internal/version.Version=...".
var Version = "1.0.0"

// Default file names for the two configuration artifacts, resolved
// relative to the installation data directory unless overridden at build
// time with absolute paths.
var (
	BuildConfigName    = "build.cfg"
	DefaultsConfigName = "defaults.cfg"
)

// DefaultPrefix returns the version-derived default installation prefix.
func DefaultPrefix() string {
	return filepath.Join("/opt", "taucmdr-"+Version)
}

// ConfigPath resolves a configured artifact name against the data
// directory. Absolute names are used as-is so a build can pin either
// artifact to a fixed location.
func ConfigPath(name, dataDir string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dataDir, name)
}
