package confmodel

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrNotFound indicates the config file does not exist.
var ErrNotFound = errors.New("config file not found")

// Read parses serialized config text back into a model. Section and key
// order follow the order of appearance in the text, so Write followed by
// Read is order-preserving. Comment blocks are not recovered.
func Read(data []byte) (*Model, error) {
	raw := make(map[string]any)
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config text: %w", err)
	}

	m := New()
	for _, key := range md.Keys() {
		switch len(key) {
		case 1:
			if md.Type(key...) != "Hash" {
				return nil, fmt.Errorf("top-level key %q outside any section", key[0])
			}
			m.Section(key[0])
		case 2:
			if md.Type(key...) == "Hash" {
				return nil, fmt.Errorf("table %q nested inside section %q", key[1], key[0])
			}
			sec, ok := raw[key[0]].(map[string]any)
			if !ok {
				return nil, fmt.Errorf("section %q is not a table", key[0])
			}
			m.Section(key[0]).Set(key[1], normalizeValue(sec[key[1]]))
		default:
			return nil, fmt.Errorf("key %q nested deeper than one section", key.String())
		}
	}
	return m, nil
}

// LoadFile reads and parses a config file.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	m, err := Read(data)
	if err != nil {
		return nil, fmt.Errorf("config file '%s': %w", path, err)
	}
	return m, nil
}

// normalizeValue maps decoded TOML values onto the model's canonical types:
// int64 for integers and []string for homogeneous string arrays.
func normalizeValue(v any) any {
	arr, ok := v.([]any)
	if !ok {
		return v
	}
	strs := make([]string, 0, len(arr))
	for _, elem := range arr {
		s, isStr := elem.(string)
		if !isStr {
			return v
		}
		strs = append(strs, s)
	}
	return strs
}
