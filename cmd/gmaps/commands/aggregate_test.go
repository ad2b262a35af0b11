package commands

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/googlemap/internal/report"
)

func TestSetupAggregateFlags(t *testing.T) {
	fs, flags := SetupAggregateFlags()
	require.NoError(t, fs.Parse([]string{"-kind", "sizes", "--quiet", "-format", "yaml", "city.yaml"}))

	assert.Equal(t, "sizes", flags.Kind)
	assert.Equal(t, "yaml", flags.Format)
	assert.True(t, flags.Quiet)
	assert.False(t, flags.Verbose)
	assert.Equal(t, []string{"city.yaml"}, fs.Args())
}

func TestSetupAggregateFlagsDefaults(t *testing.T) {
	fs, flags := SetupAggregateFlags()
	require.NoError(t, fs.Parse([]string{"city.yaml"}))

	assert.Equal(t, string(report.KindAll), flags.Kind)
	assert.Equal(t, report.FormatText, flags.Format)
	assert.Empty(t, flags.Input)
}

func TestHandleAggregateText(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = HandleAggregate([]string{"-q", cityJSON})
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Coordinates (2)\n")
	assert.Contains(t, out, "[louvre]: 48.8606,2.3376")
	assert.Contains(t, out, "Marker Images (1)\n")
	assert.Contains(t, out, "[pin]: https://maps.example.com/pin.png")
	assert.Contains(t, out, "Info Windows (1)\n")
	assert.NotContains(t, out, "Google Maps Aggregation")
}

func TestHandleAggregateJSON(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = HandleAggregate([]string{"-q", "-kind", "coordinates", "-format", "json", cityYAML})
	})
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, cityYAML, r.Source)
	assert.Len(t, r.Coordinates, 8)
	assert.Nil(t, r.MarkerImages)
}

func TestHandleAggregateYAMLFromStdin(t *testing.T) {
	withStdin(t, `
coordinates:
  home: {lat: 1, lng: 2}
map:
  overlays:
    markers:
      - position: {ref: home}
`)
	var err error
	out := captureStdout(t, func() {
		err = HandleAggregate([]string{"-q", "-kind", "coordinates", "-format", "yaml", "-input", "yaml", StdinFilePath})
	})
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "<stdin>", r.Source)
	require.Len(t, r.Coordinates, 2)
	assert.Equal(t, "home", r.Coordinates[1].Name)
}

func TestHandleAggregateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no file", []string{"-q"}, "requires exactly one file path"},
		{"two files", []string{cityYAML, cityJSON}, "requires exactly one file path"},
		{"bad kind", []string{"-kind", "roads", cityYAML}, "invalid kind"},
		{"bad format", []string{"-format", "xml", cityYAML}, "invalid format 'xml'"},
		{"bad input", []string{"-input", "toml", cityYAML}, "invalid input format 'toml'"},
		{"missing file", []string{"nope.yaml"}, "loading nope.yaml"},
		{"unknown flag", []string{"-nope", cityYAML}, "flag provided but not defined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			captureStdout(t, func() {
				err = HandleAggregate(tt.args)
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHandleAggregateHelp(t *testing.T) {
	assert.NoError(t, HandleAggregate([]string{"-h"}))
}
