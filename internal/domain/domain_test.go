package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wohlbier/taucmdr/internal/schema"
)

func TestProviders(t *testing.T) {
	providers := Providers()
	require.Len(t, providers, 3)

	titles := make([]string, 0, len(providers))
	for _, p := range providers {
		titles = append(titles, p.Title())
	}
	assert.Equal(t, []string{"target", "application", "measurement"}, titles)

	// Provider schemas must merge without exclusions: no shared names.
	_, err := schema.NewMerger().Add(providers...).Merge()
	assert.NoError(t, err)
}

func TestDefaultConfig(t *testing.T) {
	m := DefaultConfig()

	sections := m.Sections()
	require.Len(t, sections, 3)

	for i, p := range Providers() {
		sec := sections[i]
		assert.Equal(t, p.Title(), sec.Name())
		assert.NotEmpty(t, sec.Comment())

		opts := p.Arguments().Options()
		keys := sec.Keys()
		require.Len(t, keys, len(opts), "section %q", sec.Name())

		// Every defaults-config key corresponds to a schema option with
		// the schema's default value, in declaration order.
		for j, opt := range opts {
			assert.Equal(t, opt.Name, keys[j])
			got, ok := sec.Value(opt.Name)
			require.True(t, ok)
			if want, isInt := opt.Default.(int); isInt {
				assert.EqualValues(t, want, got, "key %q", opt.Name)
			} else {
				assert.Equal(t, opt.Default, got, "key %q", opt.Name)
			}
		}
	}
}

func TestTargetSchema(t *testing.T) {
	args := Target().Arguments()
	for _, name := range []string{
		"with-cuda", "with-score-p",
		"mpi-compilers", "mpi-cc", "mpi-cxx", "mpi-fc",
	} {
		_, ok := args.Lookup(name)
		assert.True(t, ok, "missing option %q", name)
	}

	opt, ok := args.Lookup("mpi-compilers")
	require.True(t, ok)
	assert.Equal(t, []string{"System", "Intel", "IBM", "Cray"}, opt.Choices)
}

func TestExtractCompilers(t *testing.T) {
	t.Run("ExplicitCommands", func(t *testing.T) {
		vals := schema.Values{"cc": "gcc", "cxx": "g++", "fc": "gfortran"}
		got := ExtractCompilers(vals)
		assert.Equal(t, []Compiler{
			{Role: "cc", Command: "gcc"},
			{Role: "cxx", Command: "g++"},
			{Role: "fc", Command: "gfortran"},
		}, got)
	})

	t.Run("FamilySelection", func(t *testing.T) {
		vals := schema.Values{
			"host-compilers": "Intel",
			"cc":             "gcc",
			"cxx":            "g++",
			"fc":             "gfortran",
		}
		got := ExtractCompilers(vals)
		assert.Equal(t, []Compiler{
			{Role: "cc", Command: "icc"},
			{Role: "cxx", Command: "icpc"},
			{Role: "fc", Command: "ifort"},
		}, got)
	})

	t.Run("FamilyWinsOverExplicit", func(t *testing.T) {
		// A named family replaces every role command in its group.
		vals := schema.Values{
			"host-compilers": "Intel",
			"cc":             "clang",
			"cxx":            "g++",
			"fc":             "gfortran",
		}
		got := ExtractCompilers(vals)
		require.Len(t, got, 3)
		assert.Equal(t, Compiler{Role: "cc", Command: "icc"}, got[0])
		assert.Equal(t, Compiler{Role: "cxx", Command: "icpc"}, got[1])
	})

	t.Run("MpiFamilySelection", func(t *testing.T) {
		vals := schema.Values{
			"mpi-compilers": "Cray",
			"mpi-cc":        "mpicc",
			"mpi-cxx":       "mpic++",
			"mpi-fc":        "mpiftn",
		}
		got := ExtractCompilers(vals)
		assert.Equal(t, []Compiler{
			{Role: "mpi-cc", Command: "cc"},
			{Role: "mpi-cxx", Command: "CC"},
			{Role: "mpi-fc", Command: "ftn"},
		}, got)
	})

	t.Run("HostFamilyLeavesMpiRolesAlone", func(t *testing.T) {
		vals := schema.Values{
			"host-compilers": "Intel",
			"cc":             "gcc",
			"mpi-cc":         "mpicc",
		}
		got := ExtractCompilers(vals)
		assert.Equal(t, []Compiler{
			{Role: "cc", Command: "icc"},
			{Role: "cxx", Command: "icpc"},
			{Role: "fc", Command: "ifort"},
			{Role: "mpi-cc", Command: "mpicc"},
		}, got)
	})

	t.Run("MissingRolesSkipped", func(t *testing.T) {
		got := ExtractCompilers(schema.Values{"cc": "gcc"})
		assert.Equal(t, []Compiler{{Role: "cc", Command: "gcc"}}, got)
	})
}
