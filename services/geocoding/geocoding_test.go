package geocoding

import (
	"testing"

	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressRequest(t *testing.T) {
	r := NewAddressRequest("1600 Amphitheatre Parkway, Mountain View")
	assert.True(t, r.IsValid())
	assert.False(t, r.HasBound())
	assert.False(t, r.HasSensor())

	require.NoError(t, r.SetRegion("us"))
	require.NoError(t, r.SetLanguage("en-US"))
	assert.ErrorIs(t, r.SetRegion("usa"), gmerrors.ErrService)

	b := base.NewBound(base.NewCoordinate(37, -123), base.NewCoordinate(38, -122))
	r.SetBound(b)
	assert.Same(t, b, r.Bound())

	r.SetAddress("")
	assert.False(t, r.IsValid())
}

func TestCoordinateRequest(t *testing.T) {
	c := base.NewCoordinate(40.714, -73.961)
	r := NewCoordinateRequest(c)
	assert.True(t, r.IsValid())
	assert.Same(t, c, r.Coordinate())

	r.SetSensor(true)
	assert.True(t, r.HasSensor())

	r.SetCoordinate(nil)
	assert.False(t, r.IsValid())
	assert.False(t, NewCoordinateRequest(nil).IsValid())
}
