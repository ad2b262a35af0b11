package base

import (
	"testing"

	"github.com/erraggy/googlemap/gmerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	var o Options
	assert.False(t, o.HasOptions())
	assert.False(t, o.HasOption("clickable"))

	require.NoError(t, o.SetOption("clickable", false))
	assert.True(t, o.HasOption("clickable"))

	v, err := o.Option("clickable")
	require.NoError(t, err)
	assert.Equal(t, false, v)

	require.NoError(t, o.SetOptions(map[string]any{"zIndex": 3, "title": "Home"}))
	assert.Len(t, o.AllOptions(), 3)

	snapshot := o.AllOptions()
	snapshot["draggable"] = true
	assert.False(t, o.HasOption("draggable"), "AllOptions must return a copy")

	require.NoError(t, o.RemoveOption("title"))
	assert.False(t, o.HasOption("title"))

	_, err = o.Option("title")
	assert.ErrorIs(t, err, gmerrors.ErrValidation)
	assert.ErrorIs(t, o.RemoveOption("title"), gmerrors.ErrBase)
	assert.ErrorIs(t, o.SetOption("", 1), gmerrors.ErrValidation)
}
