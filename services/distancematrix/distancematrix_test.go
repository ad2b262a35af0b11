package distancematrix

import (
	"testing"

	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmerrors"
	"github.com/erraggy/googlemap/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest(t *testing.T) {
	origins := []services.Location{
		services.LocationFromAddress("Vancouver BC"),
		{},
		services.LocationFromCoordinate(base.NewCoordinate(49.2, -123.1)),
	}
	destinations := []services.Location{services.LocationFromAddress("San Francisco")}

	r := NewRequest(origins, destinations)
	assert.Len(t, r.Origins(), 2, "empty locations are skipped")
	assert.True(t, r.IsValid())

	r.SetDestinations()
	assert.False(t, r.HasDestinations())
	assert.False(t, r.IsValid())

	assert.False(t, NewRequest(nil, destinations).IsValid())
}

func TestRequestTravelMode(t *testing.T) {
	r := NewRequest(
		[]services.Location{services.LocationFromAddress("A")},
		[]services.Location{services.LocationFromAddress("B")},
	)

	require.NoError(t, r.SetTravelMode(services.TravelModeBicycling))
	assert.Equal(t, services.TravelModeBicycling, r.TravelMode())

	err := r.SetTravelMode(services.TravelModeTransit)
	assert.ErrorIs(t, err, gmerrors.ErrService)
	assert.Equal(t, services.TravelModeBicycling, r.TravelMode())

	require.NoError(t, r.RouteOptions.SetTravelMode(services.TravelModeTransit))
	assert.False(t, r.IsValid())
}
