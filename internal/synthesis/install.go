package synthesis

import (
	"path/filepath"

	"github.com/wohlbier/taucmdr/internal/confmodel"
	"github.com/wohlbier/taucmdr/internal/domain"
)

// InstallSettings holds the install section of the build-config. Every
// field is always written regardless of what the user supplied, since all
// of them have hard-coded defaults or derive from the prefix.
type InstallSettings struct {
	Prefix   string `toml:"prefix"`
	Scripts  string `toml:"install-scripts"`
	Lib      string `toml:"install-lib"`
	Data     string `toml:"install-data"`
	Record   string `toml:"record"`
	Compile  bool   `toml:"compile"`
	Optimize int64  `toml:"optimize"`
}

// DeriveInstall computes the path-derived installation fields from a
// single resolved prefix: scripts under bin/, libraries under packages/,
// data at the prefix itself, and the install record log at the prefix root.
func DeriveInstall(prefix string, compile bool, optimize int64) InstallSettings {
	return InstallSettings{
		Prefix:   prefix,
		Scripts:  filepath.Join(prefix, "bin"),
		Lib:      filepath.Join(prefix, "packages"),
		Data:     prefix,
		Record:   filepath.Join(prefix, "install.log"),
		Compile:  compile,
		Optimize: optimize,
	}
}

// ApplyInstall writes the install settings into the build-config's
// dedicated install section.
func ApplyInstall(build *confmodel.Model, s InstallSettings) {
	sec := build.Section("install")
	sec.SetComment("Installation layout derived from the resolved prefix.")
	sec.Set("prefix", s.Prefix)
	sec.Set("install-scripts", s.Scripts)
	sec.Set("install-lib", s.Lib)
	sec.Set("install-data", s.Data)
	sec.Set("record", s.Record)
	sec.Set("compile", s.Compile)
	sec.Set("optimize", s.Optimize)
}

// ApplyBuild writes the extracted compiler commands into the
// build-config's build section.
func ApplyBuild(build *confmodel.Model, compilers []domain.Compiler) {
	sec := build.Section("build")
	sec.SetComment("Compilers used to build managed software packages.")
	for _, c := range compilers {
		sec.Set(c.Role, c.Command)
	}
}
