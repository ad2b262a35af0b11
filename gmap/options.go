package gmap

import (
	"fmt"
	"maps"

	"github.com/erraggy/googlemap/gmerrors"
)

// optionSet is a named set of free-form options reporting map errors.
type optionSet struct {
	entity string
	values map[string]any
}

func (o *optionSet) invalidName(name string) error {
	return gmerrors.Invalid(gmerrors.ComponentMap, "map", o.entity, name,
		fmt.Sprintf("the %s name must not be empty", o.entity))
}

func (o *optionSet) missing(name string) error {
	return gmerrors.Invalid(gmerrors.ComponentMap, "map", o.entity, name,
		fmt.Sprintf("the %s %q does not exist", o.entity, name))
}

func (o *optionSet) has(name string) bool {
	_, ok := o.values[name]
	return ok
}

func (o *optionSet) all() map[string]any {
	return maps.Clone(o.values)
}

func (o *optionSet) setAll(options map[string]any) error {
	for name, value := range options {
		if err := o.set(name, value); err != nil {
			return err
		}
	}
	return nil
}

func (o *optionSet) get(name string) (any, error) {
	if name == "" {
		return nil, o.invalidName(name)
	}
	value, ok := o.values[name]
	if !ok {
		return nil, o.missing(name)
	}
	return value, nil
}

func (o *optionSet) set(name string, value any) error {
	if name == "" {
		return o.invalidName(name)
	}
	if o.values == nil {
		o.values = make(map[string]any)
	}
	o.values[name] = value
	return nil
}

func (o *optionSet) remove(name string) error {
	if name == "" {
		return o.invalidName(name)
	}
	if !o.has(name) {
		return o.missing(name)
	}
	delete(o.values, name)
	return nil
}
