// Package confmodel holds the layered configuration model: an ordered
// collection of sections, each an ordered key/value mapping, with comment
// blocks attached to the file and to individual sections. The on-disk form
// is TOML-compatible key = value text so a written model can be read back
// with identical order and equivalently typed values.
package confmodel

import (
	"fmt"
	"reflect"
	"strconv"
)

// Section is an ordered mapping from key to value with an optional
// attached comment block emitted before the section header.
type Section struct {
	name    string
	comment []string
	keys    []string
	values  map[string]any
}

// Name returns the section's header name.
func (s *Section) Name() string {
	return s.name
}

// SetComment replaces the section's comment block.
func (s *Section) SetComment(lines ...string) {
	s.comment = lines
}

// Comment returns the section's comment block.
func (s *Section) Comment() []string {
	return s.comment
}

// Set stores a value under key, keeping first-insertion order. Integer
// values normalize to int64 so written and re-read models compare equal.
func (s *Section) Set(key string, value any) {
	if v, ok := value.(int); ok {
		value = int64(v)
	}
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Has reports whether the key is present in the section.
func (s *Section) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns the section's keys in insertion order.
func (s *Section) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Value returns the raw value stored under key.
func (s *Section) Value(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// String returns the value under key as a string, converting common
// scalar types.
func (s *Section) String(key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("key %q not present in section %q", key, s.name)
	}
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case fmt.Stringer:
		return val.String(), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for key %q", v, key)
	}
}

// Int64 returns the value under key as an int64, converting numeric types
// and parsable strings.
func (s *Section) Int64(key string) (int64, error) {
	v, ok := s.values[key]
	if !ok {
		return 0, fmt.Errorf("key %q not present in section %q", key, s.name)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Float32, reflect.Float64:
		return int64(rv.Float()), nil
	case reflect.String:
		i, err := strconv.ParseInt(rv.String(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to int64 for key %q: %w", rv.String(), key, err)
		}
		return i, nil
	case reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("cannot convert type %T to int64 for key %q", v, key)
}

// Bool returns the value under key as a bool, converting numeric types
// and parsable strings.
func (s *Section) Bool(key string) (bool, error) {
	v, ok := s.values[key]
	if !ok {
		return false, fmt.Errorf("key %q not present in section %q", key, s.name)
	}
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return false, fmt.Errorf("cannot convert %q to bool for key %q: %w", val, key, err)
		}
		return b, nil
	case int64:
		return val != 0, nil
	case float64:
		return val != 0, nil
	}
	return false, fmt.Errorf("cannot convert type %T to bool for key %q", v, key)
}

// Model is an ordered collection of sections with an optional file-level
// comment banner emitted before the first section.
type Model struct {
	banner   []string
	order    []string
	sections map[string]*Section
}

// New returns an empty model.
func New() *Model {
	return &Model{
		sections: make(map[string]*Section),
	}
}

// SetBanner replaces the file-level comment banner.
func (m *Model) SetBanner(lines ...string) {
	m.banner = lines
}

// Banner returns the file-level comment banner.
func (m *Model) Banner() []string {
	return m.banner
}

// Section returns the named section, creating and appending it if absent.
func (m *Model) Section(name string) *Section {
	if s, ok := m.sections[name]; ok {
		return s
	}
	s := &Section{
		name:   name,
		values: make(map[string]any),
	}
	m.sections[name] = s
	m.order = append(m.order, name)
	return s
}

// Lookup returns the named section without creating it.
func (m *Model) Lookup(name string) (*Section, bool) {
	s, ok := m.sections[name]
	return s, ok
}

// Sections returns the sections in declaration order.
func (m *Model) Sections() []*Section {
	out := make([]*Section, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.sections[name])
	}
	return out
}
