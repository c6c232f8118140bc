package schema

import "github.com/spf13/pflag"

// Values maps option names to the scalar or sequence values resolved by
// CLI parsing. Values carries every registered option, whether the user
// supplied it or the schema default survived; Truthy distinguishes the two
// for override purposes.
type Values map[string]any

// Collect reads the current typed value of every flag on the set.
func Collect(fs *pflag.FlagSet) Values {
	vals := make(Values)
	fs.VisitAll(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "bool":
			v, err := fs.GetBool(f.Name)
			if err == nil {
				vals[f.Name] = v
			}
		case "int":
			v, err := fs.GetInt(f.Name)
			if err == nil {
				vals[f.Name] = v
			}
		case "stringSlice":
			v, err := fs.GetStringSlice(f.Name)
			if err == nil {
				vals[f.Name] = v
			}
		default:
			vals[f.Name] = f.Value.String()
		}
	})
	return vals
}

// Truthy reports whether a parsed value counts as "provided" for override
// purposes. False, zero, empty strings, and empty sequences are treated as
// not provided, so they never replace a pre-seeded default.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case []string:
		return len(val) > 0
	case []any:
		return len(val) > 0
	default:
		return true
	}
}
