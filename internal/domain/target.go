// Package domain defines the argument schemas and default values of the
// create-command modules (target, application, measurement) and the
// factory producing the defaults-config model seeded from them.
package domain

import (
	"runtime"

	"github.com/wohlbier/taucmdr/internal/schema"
)

// provider is the common Provider implementation for the static schemas
// below.
type provider struct {
	title string
	args  *schema.Schema
}

func (p provider) Title() string             { return p.title }
func (p provider) Arguments() *schema.Schema { return p.args }

// compilerFamilies maps a --host-compilers family name to the host
// compiler command for each role.
var compilerFamilies = map[string]map[string]string{
	"GNU":   {"cc": "gcc", "cxx": "g++", "fc": "gfortran"},
	"Intel": {"cc": "icc", "cxx": "icpc", "fc": "ifort"},
	"PGI":   {"cc": "pgcc", "cxx": "pgc++", "fc": "pgfortran"},
}

// mpiFamilies maps a --mpi-compilers family name to the MPI compiler
// wrapper command for each role.
var mpiFamilies = map[string]map[string]string{
	"System": {"mpi-cc": "mpicc", "mpi-cxx": "mpic++", "mpi-fc": "mpiftn"},
	"Intel":  {"mpi-cc": "mpiicc", "mpi-cxx": "mpiicpc", "mpi-fc": "mpiifort"},
	"IBM":    {"mpi-cc": "mpixlc", "mpi-cxx": "mpixlc++", "mpi-fc": "mpixlf77"},
	"Cray":   {"mpi-cc": "cc", "mpi-cxx": "CC", "mpi-fc": "ftn"},
}

func familyNames() []string {
	// Fixed order for stable help text.
	return []string{"GNU", "Intel", "PGI"}
}

func mpiFamilyNames() []string {
	return []string{"System", "Intel", "IBM", "Cray"}
}

// Target returns the schema provider of the `target create` module.
func Target() schema.Provider {
	s := schema.New("target")
	s.MustAdd(schema.Option{
		Name: "host-os", Kind: schema.KindString, Default: defaultHostOS(),
		Help: "host operating system",
	})
	s.MustAdd(schema.Option{
		Name: "host-arch", Kind: schema.KindString, Default: runtime.GOARCH,
		Help: "host architecture",
	})
	s.MustAdd(schema.Option{
		Name: "device-arch", Kind: schema.KindString, Default: "",
		Help: "coprocessor architecture",
	})
	s.MustAdd(schema.Option{
		Name: "host-compilers", Kind: schema.KindString, Default: "",
		Choices: familyNames(),
		Help:    "select all host compilers from the given family",
	})
	s.MustAdd(schema.Option{
		Name: "cc", Kind: schema.KindString, Default: "gcc",
		Help: "C compiler command",
	})
	s.MustAdd(schema.Option{
		Name: "cxx", Kind: schema.KindString, Default: "g++",
		Help: "C++ compiler command",
	})
	s.MustAdd(schema.Option{
		Name: "fc", Kind: schema.KindString, Default: "gfortran",
		Help: "Fortran compiler command",
	})
	s.MustAdd(schema.Option{
		Name: "mpi-compilers", Kind: schema.KindString, Default: "",
		Choices: mpiFamilyNames(),
		Help:    "select all MPI compilers from the given family",
	})
	s.MustAdd(schema.Option{
		Name: "mpi-cc", Kind: schema.KindString, Default: "mpicc",
		Help: "MPI C compiler command",
	})
	s.MustAdd(schema.Option{
		Name: "mpi-cxx", Kind: schema.KindString, Default: "mpic++",
		Help: "MPI C++ compiler command",
	})
	s.MustAdd(schema.Option{
		Name: "mpi-fc", Kind: schema.KindString, Default: "mpiftn",
		Help: "MPI Fortran compiler command",
	})
	s.MustAdd(schema.Option{
		Name: "with-cuda", Kind: schema.KindString, Default: "",
		Help: "path to an NVIDIA CUDA installation",
	})
	s.MustAdd(schema.Option{
		Name: "with-tau", Kind: schema.KindString, Default: "download",
		Help: "URL or path to a TAU installation or archive",
	})
	s.MustAdd(schema.Option{
		Name: "with-pdt", Kind: schema.KindString, Default: "download",
		Help: "URL or path to a PDT installation or archive",
	})
	s.MustAdd(schema.Option{
		Name: "with-bfd", Kind: schema.KindString, Default: "download",
		Help: "URL or path to a BFD installation or archive",
	})
	s.MustAdd(schema.Option{
		Name: "with-libunwind", Kind: schema.KindString, Default: "download",
		Help: "URL or path to a libunwind installation or archive",
	})
	s.MustAdd(schema.Option{
		Name: "with-papi", Kind: schema.KindString, Default: "",
		Help: "URL or path to a PAPI installation or archive",
	})
	s.MustAdd(schema.Option{
		Name: "with-score-p", Kind: schema.KindString, Default: "",
		Help: "URL or path to a Score-P installation or archive",
	})
	return provider{title: "target", args: s}
}

func defaultHostOS() string {
	switch runtime.GOOS {
	case "darwin":
		return "Darwin"
	case "linux":
		return "Linux"
	default:
		return runtime.GOOS
	}
}

// Compiler pairs a compiler role keyword with its resolved command.
type Compiler struct {
	Role    string
	Command string
}

// Role keywords per compiler group, in emission order.
var (
	hostRoles = []string{"cc", "cxx", "fc"}
	mpiRoles  = []string{"mpi-cc", "mpi-cxx", "mpi-fc"}
)

// ExtractCompilers resolves the compiler commands for the build section
// from already-parsed values. Naming a family replaces every role command
// in its group; per-role commands apply only when no family is named.
func ExtractCompilers(vals schema.Values) []Compiler {
	out := make([]Compiler, 0, len(hostRoles)+len(mpiRoles))
	out = append(out, resolveRoles(vals, "host-compilers", compilerFamilies, hostRoles)...)
	out = append(out, resolveRoles(vals, "mpi-compilers", mpiFamilies, mpiRoles)...)
	return out
}

func resolveRoles(vals schema.Values, familyKey string, families map[string]map[string]string, roles []string) []Compiler {
	family, _ := vals[familyKey].(string)
	familyCmds := families[family]

	out := make([]Compiler, 0, len(roles))
	for _, role := range roles {
		cmd, _ := vals[role].(string)
		if familyCmds != nil {
			cmd = familyCmds[role]
		}
		if cmd == "" {
			continue
		}
		out = append(out, Compiler{Role: role, Command: cmd})
	}
	return out
}
