package gmerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ParseError{
			Path:    "map.yaml",
			Format:  "yaml",
			Message: "invalid syntax",
			Cause:   errors.New("underlying error"),
		}
		assert.Equal(t, "parse error in map.yaml (yaml): invalid syntax: underlying error", err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		assert.Equal(t, "parse error", (&ParseError{}).Error())
	})

	t.Run("Unwrap and Is", func(t *testing.T) {
		cause := errors.New("underlying")
		err := fmt.Errorf("loading: %w", &ParseError{Cause: cause})
		assert.ErrorIs(t, err, ErrParse)
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, ErrValidation)
	})
}

func TestReferenceError(t *testing.T) {
	err := &ReferenceError{Ref: "paris", Kind: "coordinates", Path: "markers[0].position"}
	assert.Equal(t, "reference error at markers[0].position: paris (coordinates)", err.Error())
	assert.ErrorIs(t, err, ErrReference)
	assert.NotErrorIs(t, err, ErrParse)
}

func TestValidationError(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		err := Invalid(ComponentOverlay, "circle", "radius", -1.0, "must be a positive value")
		assert.Equal(t, "validation error in circle.radius: must be a positive value", err.Error())
	})

	t.Run("matches component sentinel", func(t *testing.T) {
		tests := []struct {
			component Component
			sentinel  error
		}{
			{ComponentMap, ErrMap},
			{ComponentBase, ErrBase},
			{ComponentOverlay, ErrOverlay},
			{ComponentControl, ErrControl},
			{ComponentLayer, ErrLayer},
			{ComponentService, ErrService},
		}
		for _, tt := range tests {
			t.Run(string(tt.component), func(t *testing.T) {
				var err error = Invalid(tt.component, "entity", "field", nil, "bad")
				assert.ErrorIs(t, err, ErrValidation)
				assert.ErrorIs(t, err, tt.sentinel)
			})
		}
	})

	t.Run("does not match other components", func(t *testing.T) {
		var err error = Invalid(ComponentOverlay, "marker", "icon", nil, "bad")
		assert.NotErrorIs(t, err, ErrControl)
		assert.NotErrorIs(t, err, ErrConfig)
	})

	t.Run("errors.As", func(t *testing.T) {
		err := fmt.Errorf("building marker: %w", Invalid(ComponentOverlay, "marker", "animation", "spin", "unknown animation"))
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Equal(t, "animation", verr.Field)
		assert.Equal(t, "spin", verr.Value)
	})
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "format", Value: "xml", Message: "unsupported"}
	assert.Equal(t, "configuration error for format (value: xml): unsupported", err.Error())
	assert.ErrorIs(t, err, ErrConfig)
	assert.Nil(t, err.Unwrap())
}
