package gmerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a map document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrReference indicates a named reference could not be resolved.
	ErrReference = errors.New("reference error")

	// ErrValidation indicates a value was rejected by the object model.
	ErrValidation = errors.New("validation error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// Component sentinels. A ValidationError matches the one for its Component.
var (
	ErrMap     = errors.New("map error")
	ErrBase    = errors.New("base error")
	ErrOverlay = errors.New("overlay error")
	ErrControl = errors.New("control error")
	ErrLayer   = errors.New("layer error")
	ErrService = errors.New("service error")
)

// Component identifies the part of the object model that rejected a value.
type Component string

const (
	// ComponentMap is the map itself (options, stylesheet, container).
	ComponentMap Component = "map"
	// ComponentBase covers coordinates, bounds, points and sizes.
	ComponentBase Component = "base"
	// ComponentOverlay covers markers, info windows, shapes and the other overlays.
	ComponentOverlay Component = "overlay"
	// ComponentControl covers the map controls.
	ComponentControl Component = "control"
	// ComponentLayer covers KML layers.
	ComponentLayer Component = "layer"
	// ComponentService covers geocoding, directions and distance matrix requests.
	ComponentService Component = "service"
)

var componentSentinels = map[Component]error{
	ComponentMap:     ErrMap,
	ComponentBase:    ErrBase,
	ComponentOverlay: ErrOverlay,
	ComponentControl: ErrControl,
	ComponentLayer:   ErrLayer,
	ComponentService: ErrService,
}

// ParseError represents a failure to decode a map document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Format is the document format that was attempted ("yaml" or "json")
	Format string
	// Message describes the decoding failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ReferenceError represents a named reference in a map document that does not
// point at any declared object.
type ReferenceError struct {
	// Ref is the reference name that failed to resolve
	Ref string
	// Kind is the section the reference was looked up in (e.g. "coordinates")
	Kind string
	// Path is the document location holding the reference (e.g. "markers[2].position")
	Path string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Kind != "" {
		msg += " (" + e.Kind + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

// ValidationError represents a value rejected by a setter or constructor.
type ValidationError struct {
	// Component is the part of the object model that rejected the value
	Component Component
	// Entity is the type holding the field (e.g. "marker shape")
	Entity string
	// Field is the specific field name with the issue
	Field string
	// Value is the problematic value (may be nil)
	Value any
	// Message describes the validation failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Entity != "" {
		msg += " in " + e.Entity
	}
	if e.Field != "" {
		msg += "." + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrValidation, and the sentinel of the error's Component.
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	if sentinel, ok := componentSentinels[e.Component]; ok {
		return target == sentinel
	}
	return false
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// Invalid is a shorthand used by the object model packages to build a
// ValidationError.
func Invalid(component Component, entity, field string, value any, message string) *ValidationError {
	return &ValidationError{
		Component: component,
		Entity:    entity,
		Field:     field,
		Value:     value,
		Message:   message,
	}
}
