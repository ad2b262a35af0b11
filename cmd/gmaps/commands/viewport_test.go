package commands

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/googlemap/internal/report"
)

func TestSetupViewportFlags(t *testing.T) {
	fs, flags := SetupViewportFlags()
	require.NoError(t, fs.Parse([]string{"-q", "-format", "json", "-input", "yaml", "-"}))

	assert.True(t, flags.Quiet)
	assert.Equal(t, "json", flags.Format)
	assert.Equal(t, "yaml", flags.Input)
	assert.Equal(t, []string{"-"}, fs.Args())
}

func TestHandleViewportText(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = HandleViewport([]string{"-q", cityJSON})
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Viewport\n")
	assert.Contains(t, out, "South West: 48.858")
	assert.Contains(t, out, "North East: 48.860")
	assert.Contains(t, out, "Center: ")
}

func TestHandleViewportJSON(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = HandleViewport([]string{"-q", "-format", "json", cityJSON})
	})
	require.NoError(t, err)

	var v report.Viewport
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.False(t, v.Empty)
	require.NotNil(t, v.SouthWest)
	require.NotNil(t, v.NorthEast)
	assert.InDelta(t, 48.8584, v.SouthWest.Lat, 1e-9)
	assert.InDelta(t, 2.2945, v.SouthWest.Lng, 1e-9)
	assert.InDelta(t, 48.8606, v.NorthEast.Lat, 1e-9)
	assert.InDelta(t, 2.3376, v.NorthEast.Lng, 1e-9)
	require.NotNil(t, v.Center)
	assert.InDelta(t, 48.8595, v.Center.Lat, 1e-9)
}

func TestHandleViewportEmpty(t *testing.T) {
	withStdin(t, `{"map": {"center": {"lat": 95, "lng": 0}}}`)
	var err error
	out := captureStdout(t, func() {
		err = HandleViewport([]string{"-q", StdinFilePath})
	})
	require.NoError(t, err)
	assert.Equal(t, "Viewport: empty\n", out)
}

func TestHandleViewportErrors(t *testing.T) {
	assert.ErrorContains(t, HandleViewport(nil), "requires exactly one file path")
	assert.ErrorContains(t, HandleViewport([]string{"-format", "csv", cityJSON}), "invalid format 'csv'")
	assert.ErrorContains(t, HandleViewport([]string{"-input", "csv", cityJSON}), "invalid input format 'csv'")
	assert.NoError(t, HandleViewport([]string{"--help"}))
}
