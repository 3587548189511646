package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Load describes where a configuration is found.
// Flat indicates the `path` tags hold full key paths.
type Load struct {
	Path string
	Flat bool
}

// New returns a configuration of type T populated from
// the provider.  Structs are validated using `validate`
// tags and an optional Validate method.
func New[T any](
	provider Provider,
	load     Load,
) (T, error) {
	var out T
	if provider == nil {
		return out, errors.New("config: provider cannot be nil")
	}
	if err := provider.Unmarshal(load.Path, load.Flat, &out); err != nil {
		return out, fmt.Errorf("config: %w", err)
	}
	if typ := reflect.TypeOf(out); typ != nil && typ.Kind() == reflect.Struct {
		if err := validate.Struct(&out); err != nil {
			return out, fmt.Errorf("config: %w", err)
		}
	}
	if v, ok := any(&out).(interface {
		Validate() error
	}); ok {
		if err := v.Validate(); err != nil {
			return out, fmt.Errorf("config: %w", err)
		}
	}
	if c, ok := any(&out).(Configuration); ok {
		c.ConfigurationReady()
	}
	return out, nil
}

var validate = validator.New()
