package schema

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Provider exposes a self-contained argument schema owned by one
// create-command module.
type Provider interface {
	// Title returns the provider's group title, used to namespace its
	// options in help output and to address per-provider exclusions.
	Title() string
	// Arguments returns the provider's argument schema.
	Arguments() *Schema
}

// ConflictError reports two non-excluded providers defining the same
// option name.
type ConflictError struct {
	Name   string // colliding option name
	First  string // group title that defined the option first
	Second string // group title attempting the redefinition
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("option --%s defined by both %q and %q", e.Name, e.First, e.Second)
}

// group pairs a provider's title with its surviving options.
type group struct {
	title string
	opts  []Option
}

// Merged is the union of several providers' schemas. Surviving options
// keep their original type, constraint, and default, grouped under the
// owning provider's title.
type Merged struct {
	groups []group
	owner  map[string]string // option name -> group title
}

// Merger composes provider schemas into a single Merged schema.
// Exclusions drop caller-specified option names from a provider before
// merging, for names owned by the top-level parser.
type Merger struct {
	providers []Provider
	exclude   map[string]map[string]bool // provider title -> excluded names
}

// NewMerger returns an empty Merger.
func NewMerger() *Merger {
	return &Merger{
		exclude: make(map[string]map[string]bool),
	}
}

// Add appends a provider. Providers merge in the order added.
func (m *Merger) Add(providers ...Provider) *Merger {
	m.providers = append(m.providers, providers...)
	return m
}

// Exclude drops the named options from the provider with the given title.
func (m *Merger) Exclude(title string, names ...string) *Merger {
	set := m.exclude[title]
	if set == nil {
		set = make(map[string]bool)
		m.exclude[title] = set
	}
	for _, name := range names {
		set[name] = true
	}
	return m
}

// Merge builds the unified schema. It fails with a *ConflictError if two
// non-excluded options from different providers share a name.
func (m *Merger) Merge() (*Merged, error) {
	merged := &Merged{
		owner: make(map[string]string),
	}
	for _, p := range m.providers {
		title := p.Title()
		excluded := m.exclude[title]
		g := group{title: title}
		for _, opt := range p.Arguments().Options() {
			if excluded[opt.Name] {
				continue
			}
			if first, taken := merged.owner[opt.Name]; taken {
				return nil, &ConflictError{Name: opt.Name, First: first, Second: title}
			}
			merged.owner[opt.Name] = title
			g.opts = append(g.opts, opt)
		}
		merged.groups = append(merged.groups, g)
	}
	return merged, nil
}

// Len returns the total number of surviving options.
func (m *Merged) Len() int {
	return len(m.owner)
}

// Owner returns the group title that owns an option name.
func (m *Merged) Owner(name string) (string, bool) {
	title, ok := m.owner[name]
	return title, ok
}

// Options returns all surviving options in provider order.
func (m *Merged) Options() []Option {
	var out []Option
	for _, g := range m.groups {
		out = append(out, g.opts...)
	}
	return out
}

// AddFlags registers every surviving option on the flag set, annotated
// with its owning group title.
func (m *Merged) AddFlags(fs *pflag.FlagSet) error {
	for _, g := range m.groups {
		for _, opt := range g.opts {
			if err := addFlag(fs, opt); err != nil {
				return err
			}
			if err := fs.SetAnnotation(opt.Name, groupAnnotation, []string{g.title}); err != nil {
				return err
			}
		}
	}
	return nil
}
