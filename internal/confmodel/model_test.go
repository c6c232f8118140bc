package confmodel

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionOrdering(t *testing.T) {
	m := New()
	sec := m.Section("target")
	sec.Set("host-os", "Linux")
	sec.Set("cc", "gcc")
	sec.Set("host-os", "Darwin") // update must not change position
	m.Section("application").Set("mpi", false)

	assert.Equal(t, []string{"host-os", "cc"}, m.Section("target").Keys())

	names := make([]string, 0, 2)
	for _, s := range m.Sections() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"target", "application"}, names)

	v, ok := sec.Value("host-os")
	require.True(t, ok)
	assert.Equal(t, "Darwin", v)
}

func TestTypedGetters(t *testing.T) {
	m := New()
	sec := m.Section("install")
	sec.Set("prefix", "/opt/x")
	sec.Set("compile", true)
	sec.Set("optimize", 2)

	s, err := sec.String("prefix")
	require.NoError(t, err)
	assert.Equal(t, "/opt/x", s)

	b, err := sec.Bool("compile")
	require.NoError(t, err)
	assert.True(t, b)

	i, err := sec.Int64("optimize")
	require.NoError(t, err)
	assert.Equal(t, int64(2), i)

	// conversions
	s, err = sec.String("optimize")
	require.NoError(t, err)
	assert.Equal(t, "2", s)

	_, err = sec.Int64("prefix")
	assert.Error(t, err)

	_, err = sec.Bool("missing")
	assert.Error(t, err)
}

func TestWriteFormat(t *testing.T) {
	m := New()
	m.SetBanner("banner line", "")
	sec := m.Section("build")
	sec.SetComment("compilers")
	sec.Set("cc", "gcc")
	sec.Set("optimize", int64(2))
	sec.Set("compile", true)
	sec.Set("metrics", []string{"TIME", "PAPI_FP_INS"})

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "# banner line\n#\n")
	assert.Contains(t, out, "# compilers\n[build]\n")
	assert.Contains(t, out, "cc = \"gcc\"\n")
	assert.Contains(t, out, "optimize = 2\n")
	assert.Contains(t, out, "compile = true\n")
	assert.Contains(t, out, "metrics = [\"TIME\", \"PAPI_FP_INS\"]\n")
}

func TestRoundTrip(t *testing.T) {
	m := New()
	m.SetBanner("generated")
	target := m.Section("target")
	target.SetComment("target defaults")
	target.Set("host-os", "Linux")
	target.Set("device-arch", "")
	measurement := m.Section("measurement")
	measurement.Set("profile", true)
	measurement.Set("callpath", 2)
	measurement.Set("metrics", []string{"TIME"})

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)

	got, err := Read(buf.Bytes())
	require.NoError(t, err)

	require.Len(t, got.Sections(), 2)
	assert.Equal(t, "target", got.Sections()[0].Name())
	assert.Equal(t, "measurement", got.Sections()[1].Name())

	gotTarget, ok := got.Lookup("target")
	require.True(t, ok)
	assert.Equal(t, []string{"host-os", "device-arch"}, gotTarget.Keys())

	hostOS, _ := gotTarget.Value("host-os")
	assert.Equal(t, "Linux", hostOS)
	empty, _ := gotTarget.Value("device-arch")
	assert.Equal(t, "", empty)

	gotMeas, ok := got.Lookup("measurement")
	require.True(t, ok)
	profile, _ := gotMeas.Value("profile")
	assert.Equal(t, true, profile)
	callpath, _ := gotMeas.Value("callpath")
	assert.Equal(t, int64(2), callpath)
	metrics, _ := gotMeas.Value("metrics")
	assert.Equal(t, []string{"TIME"}, metrics)
}

func TestRead(t *testing.T) {
	t.Run("RejectsTopLevelKey", func(t *testing.T) {
		_, err := Read([]byte("stray = 1\n[ok]\nkey = 2\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "outside any section")
	})

	t.Run("RejectsNestedTables", func(t *testing.T) {
		_, err := Read([]byte("[a.b]\nkey = 1\n"))
		assert.Error(t, err)
	})

	t.Run("InvalidSyntax", func(t *testing.T) {
		_, err := Read([]byte("not toml at all ==="))
		assert.Error(t, err)
	})
}

func TestSaveAndLoadFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("CreatesDirectories", func(t *testing.T) {
		path := filepath.Join(tmpDir, "nested", "dir", "build.cfg")

		m := New()
		m.Section("install").Set("prefix", "/opt/x")
		require.NoError(t, m.Save(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

		got, err := LoadFile(path)
		require.NoError(t, err)
		prefix, _ := got.Section("install").Value("prefix")
		assert.Equal(t, "/opt/x", prefix)
	})

	t.Run("TruncatesExisting", func(t *testing.T) {
		path := filepath.Join(tmpDir, "overwrite.cfg")

		first := New()
		first.Section("a").Set("key", "old")
		require.NoError(t, first.Save(path))

		second := New()
		second.Section("b").Set("key", "new")
		require.NoError(t, second.Save(path))

		got, err := LoadFile(path)
		require.NoError(t, err)
		require.Len(t, got.Sections(), 1)
		assert.Equal(t, "b", got.Sections()[0].Name())
	})

	t.Run("NoTempFileLeftBehind", func(t *testing.T) {
		path := filepath.Join(tmpDir, "clean.cfg")
		m := New()
		m.Section("a").Set("key", "value")
		require.NoError(t, m.Save(path))

		entries, err := os.ReadDir(tmpDir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".tmp")
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(tmpDir, "does-not-exist.cfg"))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestScan(t *testing.T) {
	type installSettings struct {
		Prefix   string `toml:"prefix"`
		Scripts  string `toml:"install-scripts"`
		Compile  bool   `toml:"compile"`
		Optimize int64  `toml:"optimize"`
	}

	m := New()
	sec := m.Section("install")
	sec.Set("prefix", "/opt/x")
	sec.Set("install-scripts", "/opt/x/bin")
	sec.Set("compile", true)
	sec.Set("optimize", 2)

	var got installSettings
	require.NoError(t, sec.Scan(&got))
	assert.Equal(t, "/opt/x", got.Prefix)
	assert.Equal(t, "/opt/x/bin", got.Scripts)
	assert.True(t, got.Compile)
	assert.Equal(t, int64(2), got.Optimize)

	assert.Error(t, sec.Scan(installSettings{}))
}
