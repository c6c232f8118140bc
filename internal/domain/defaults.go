package domain

import (
	"fmt"

	"github.com/wohlbier/taucmdr/internal/confmodel"
	"github.com/wohlbier/taucmdr/internal/schema"
)

// Providers returns the create-command schema providers in merge order.
func Providers() []schema.Provider {
	return []schema.Provider{Target(), Application(), Measurement()}
}

// DefaultConfig builds the defaults-config model: one section per
// provider, seeded with every option's schema default in declaration
// order. Every key present here is, by construction, a name in the merged
// schema's option namespace.
func DefaultConfig() *confmodel.Model {
	m := confmodel.New()
	for _, p := range Providers() {
		sec := m.Section(p.Title())
		sec.SetComment(fmt.Sprintf("Default values for `%s create` options.", p.Title()))
		for _, opt := range p.Arguments().Options() {
			sec.Set(opt.Name, opt.Default)
		}
	}
	return m
}
