package mcpserver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got, cut := limitSlice(items, 2)
	assert.Equal(t, []int{1, 2}, got)
	assert.True(t, cut)

	got, cut = limitSlice(items, 10)
	assert.Equal(t, items, got)
	assert.False(t, cut)

	got, cut = limitSlice([]int(nil), 3)
	assert.Nil(t, got)
	assert.False(t, cut)
}

func TestLimitSlice_MaxLimitCap(t *testing.T) {
	prev := cfg.MaxLimit
	cfg.MaxLimit = 3
	t.Cleanup(func() { cfg.MaxLimit = prev })

	items := []int{1, 2, 3, 4, 5}

	got, cut := limitSlice(items, 0)
	assert.Len(t, got, 3, "non-positive limit uses MaxLimit")
	assert.True(t, cut)

	got, _ = limitSlice(items, 100)
	assert.Len(t, got, 3, "limit is capped at MaxLimit")
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error returns empty string",
			err:  nil,
			want: "",
		},
		{
			name: "strips absolute path",
			err:  fmt.Errorf("parse error in /home/user/maps/city.yaml: malformed document"),
			want: "parse error in <path>: malformed document",
		},
		{
			name: "preserves non-path content",
			err:  fmt.Errorf("reference error at map.center: paris (coordinates)"),
			want: "reference error at map.center: paris (coordinates)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}
