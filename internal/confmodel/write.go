package confmodel

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteTo serializes the model: banner, then each section's comment block,
// header, and key = value lines in stored order. The emitted text is valid
// TOML, so Read reproduces the model with equivalently typed values.
func (m *Model) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, line := range m.banner {
		writeComment(&buf, line)
	}
	for i, sec := range m.Sections() {
		if i > 0 || len(m.banner) > 0 {
			buf.WriteByte('\n')
		}
		for _, line := range sec.comment {
			writeComment(&buf, line)
		}
		fmt.Fprintf(&buf, "[%s]\n", sec.name)
		for _, key := range sec.keys {
			encoded, err := encodeValue(sec.values[key])
			if err != nil {
				return 0, fmt.Errorf("section %q key %q: %w", sec.name, key, err)
			}
			fmt.Fprintf(&buf, "%s = %s\n", key, encoded)
		}
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

func writeComment(buf *bytes.Buffer, line string) {
	if line == "" {
		buf.WriteString("#\n")
		return
	}
	fmt.Fprintf(buf, "# %s\n", line)
}

// encodeValue renders a value as a TOML scalar or array. Booleans and
// integers stringify losslessly; strings are quoted.
func encodeValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val), nil
	case bool:
		return strconv.FormatBool(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case []string:
		quoted := make([]string, len(val))
		for i, s := range val {
			quoted[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]", nil
	default:
		return "", fmt.Errorf("cannot encode type %T", v)
	}
}

// Save writes the model to path atomically: the serialized text goes to a
// temporary file in the destination directory which is then renamed over
// the target. The temporary file is removed on every error path.
func (m *Model) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary config file in '%s': %w", dir, err)
	}

	tempPath := tempFile.Name()
	renamed := false
	defer func() {
		if !renamed {
			os.Remove(tempPath)
		}
	}()

	if _, err := m.WriteTo(tempFile); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temp config file '%s': %w", tempPath, err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temp config file '%s': %w", tempPath, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp config file '%s': %w", tempPath, err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on temp config file '%s': %w", tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file '%s' to '%s': %w", tempPath, path, err)
	}
	renamed = true

	return nil
}
