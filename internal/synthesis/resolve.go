// Package synthesis resolves parsed command-line values against the two
// configuration models and fills in the installation layout.
package synthesis

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/wohlbier/taucmdr/internal/confmodel"
	"github.com/wohlbier/taucmdr/internal/schema"
)

// Resolve overwrites each key already present in the defaults-config with
// the corresponding parsed value, when that value is truthy. Falsy parsed
// values mean "not provided" and never replace a pre-seeded default.
// Iteration follows the model's declared section and key order, so
// repeated runs with identical input produce identical output. The model
// is mutated in place and returned for chaining.
func Resolve(vals schema.Values, defaults *confmodel.Model) *confmodel.Model {
	for _, sec := range defaults.Sections() {
		for _, key := range sec.Keys() {
			v, ok := vals[key]
			if !ok || !schema.Truthy(v) {
				log.Debug("keeping default", "section", sec.Name(), "key", key)
				continue
			}
			log.Debug("applying override", "section", sec.Name(), "key", key, "value", v)
			sec.Set(key, v)
		}
	}
	return defaults
}

// ParseToggle interprets the textual boolean forms accepted by the
// --compile flag.
func ParseToggle(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "t", "yes", "y", "on", "1":
		return true, nil
	case "false", "f", "no", "n", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value %q (expected true/false, yes/no, on/off, or 1/0)", s)
}
