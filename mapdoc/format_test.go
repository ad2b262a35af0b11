package mapdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in     string
		want   Format
		wantOK bool
	}{
		{"yaml", FormatYAML, true},
		{"YML", FormatYAML, true},
		{"json", FormatJSON, true},
		{"toml", FormatUnknown, false},
		{"", FormatUnknown, false},
	}
	for _, tt := range tests {
		got, ok := ParseFormat(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
}

func TestFormatDetection(t *testing.T) {
	assert.Equal(t, FormatJSON, formatFromPath("maps/city.JSON"))
	assert.Equal(t, FormatYAML, formatFromPath("city.yml"))
	assert.Equal(t, FormatUnknown, formatFromPath("city"))

	assert.Equal(t, FormatJSON, formatFromContent([]byte("\n  {\"map\": {}}")))
	assert.Equal(t, FormatYAML, formatFromContent([]byte("map: {}")))
	assert.Equal(t, FormatYAML, formatFromContent(nil))
}
