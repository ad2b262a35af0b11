package base

import (
	"maps"

	"github.com/erraggy/googlemap/gmerrors"
)

// Options is a free-form set of JavaScript options rendered as-is next to the
// typed fields of an object (e.g. a marker's "clickable" flag).
// The zero value is an empty set.
type Options struct {
	values map[string]any
}

// HasOptions reports whether at least one option is set.
func (o *Options) HasOptions() bool {
	return len(o.values) > 0
}

// AllOptions returns a copy of every option.
func (o *Options) AllOptions() map[string]any {
	return maps.Clone(o.values)
}

// SetOptions sets every given option, stopping at the first invalid name.
func (o *Options) SetOptions(options map[string]any) error {
	for name, value := range options {
		if err := o.SetOption(name, value); err != nil {
			return err
		}
	}
	return nil
}

// HasOption reports whether the option is set.
func (o *Options) HasOption(name string) bool {
	_, ok := o.values[name]
	return ok
}

// Option returns the value of an option.
func (o *Options) Option(name string) (any, error) {
	value, ok := o.values[name]
	if !ok {
		return nil, gmerrors.Invalid(gmerrors.ComponentBase, "options", name, nil, "the option does not exist")
	}
	return value, nil
}

// SetOption sets an option. The name must not be empty.
func (o *Options) SetOption(name string, value any) error {
	if name == "" {
		return gmerrors.Invalid(gmerrors.ComponentBase, "options", "name", name, "an option name must not be empty")
	}
	if o.values == nil {
		o.values = make(map[string]any)
	}
	o.values[name] = value
	return nil
}

// RemoveOption removes an option that must exist.
func (o *Options) RemoveOption(name string) error {
	if !o.HasOption(name) {
		return gmerrors.Invalid(gmerrors.ComponentBase, "options", name, nil, "the option does not exist")
	}
	delete(o.values, name)
	return nil
}
