// Package schema models the command-line argument schemas exposed by the
// create-command modules and merges them into a single flag set.
package schema

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Kind identifies the value type of an option.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindStringSlice
)

// Option is a single named command-line option with its type, default,
// constraint, and help text. Only named (flag) options are modeled.
type Option struct {
	Name      string
	Shorthand string
	Kind      Kind
	Default   any
	Choices   []string // non-empty restricts accepted values (KindString only)
	Help      string
}

// Schema is an ordered collection of options owned by one provider,
// tagged with the provider's group title for help output.
type Schema struct {
	title string
	opts  []Option
	index map[string]int
}

// New returns an empty schema with the given group title.
func New(title string) *Schema {
	return &Schema{
		title: title,
		index: make(map[string]int),
	}
}

// Title returns the group title the schema's options belong to.
func (s *Schema) Title() string {
	return s.title
}

// Add appends an option to the schema. Option names must be unique
// within a schema.
func (s *Schema) Add(opt Option) error {
	if opt.Name == "" {
		return fmt.Errorf("option name cannot be empty")
	}
	if _, exists := s.index[opt.Name]; exists {
		return fmt.Errorf("option %q already defined in group %q", opt.Name, s.title)
	}
	s.index[opt.Name] = len(s.opts)
	s.opts = append(s.opts, opt)
	return nil
}

// MustAdd is like Add but panics on error. Provider schemas are static
// definitions, so a duplicate here is a programming error.
func (s *Schema) MustAdd(opt Option) {
	if err := s.Add(opt); err != nil {
		panic(err)
	}
}

// Lookup returns the option with the given name.
func (s *Schema) Lookup(name string) (Option, bool) {
	i, ok := s.index[name]
	if !ok {
		return Option{}, false
	}
	return s.opts[i], true
}

// Options returns the options in declaration order.
func (s *Schema) Options() []Option {
	out := make([]Option, len(s.opts))
	copy(out, s.opts)
	return out
}

// Len returns the number of options in the schema.
func (s *Schema) Len() int {
	return len(s.opts)
}

// groupAnnotation is the pflag annotation key carrying the owning group title.
const groupAnnotation = "taucmdr_group"

// AddFlags registers every option on the flag set, preserving the option's
// type, default, and choice constraint. The group title is recorded as a
// flag annotation for grouped help output.
func (s *Schema) AddFlags(fs *pflag.FlagSet) error {
	for _, opt := range s.opts {
		if err := addFlag(fs, opt); err != nil {
			return err
		}
		if err := fs.SetAnnotation(opt.Name, groupAnnotation, []string{s.title}); err != nil {
			return err
		}
	}
	return nil
}

func addFlag(fs *pflag.FlagSet, opt Option) error {
	switch opt.Kind {
	case KindString:
		def, _ := opt.Default.(string)
		if len(opt.Choices) > 0 {
			fs.VarP(newChoiceValue(def, opt.Choices), opt.Name, opt.Shorthand,
				fmt.Sprintf("%s (one of: %s)", opt.Help, strings.Join(opt.Choices, ", ")))
			return nil
		}
		fs.StringP(opt.Name, opt.Shorthand, def, opt.Help)
	case KindBool:
		def, _ := opt.Default.(bool)
		fs.BoolP(opt.Name, opt.Shorthand, def, opt.Help)
	case KindInt:
		def, _ := opt.Default.(int)
		fs.IntP(opt.Name, opt.Shorthand, def, opt.Help)
	case KindStringSlice:
		def, _ := opt.Default.([]string)
		fs.StringSliceP(opt.Name, opt.Shorthand, def, opt.Help)
	default:
		return fmt.Errorf("option %q has unknown kind %d", opt.Name, opt.Kind)
	}
	return nil
}

// GroupOf returns the group title recorded for a flag, or "" if none.
func GroupOf(f *pflag.Flag) string {
	if g, ok := f.Annotations[groupAnnotation]; ok && len(g) > 0 {
		return g[0]
	}
	return ""
}

// choiceValue is a pflag.Value that restricts a string flag to a fixed
// set of accepted values.
type choiceValue struct {
	value   string
	choices []string
}

func newChoiceValue(def string, choices []string) *choiceValue {
	return &choiceValue{value: def, choices: choices}
}

func (c *choiceValue) String() string {
	return c.value
}

func (c *choiceValue) Set(s string) error {
	for _, choice := range c.choices {
		if s == choice {
			c.value = s
			return nil
		}
	}
	return fmt.Errorf("invalid value %q (expected one of: %s)", s, strings.Join(c.choices, ", "))
}

func (c *choiceValue) Type() string {
	return "string"
}
