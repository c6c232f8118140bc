package confmodel

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Scan decodes the section's key/value pairs into the target struct or
// map. The target must be a non-nil pointer. Fields map via the "toml"
// struct tag, with weakly typed conversions for scalar mismatches.
func (s *Section) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(s.values); err != nil {
		return fmt.Errorf("failed to decode section %q into %T: %w", s.name, target, err)
	}
	return nil
}
