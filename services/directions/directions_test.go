package directions

import (
	"testing"
	"time"

	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIsValid(t *testing.T) {
	paris := services.LocationFromAddress("Paris")
	lyon := services.LocationFromCoordinate(base.NewCoordinate(45.76, 4.84))

	tests := []struct {
		name  string
		setup func(t *testing.T) *Request
		want  bool
	}{
		{
			name:  "origin and destination",
			setup: func(t *testing.T) *Request { return NewRequest(paris, lyon) },
			want:  true,
		},
		{
			name:  "missing origin",
			setup: func(t *testing.T) *Request { return NewRequest(services.Location{}, lyon) },
			want:  false,
		},
		{
			name:  "missing destination",
			setup: func(t *testing.T) *Request { return NewRequest(paris, services.Location{}) },
			want:  false,
		},
		{
			name: "valid waypoints",
			setup: func(t *testing.T) *Request {
				r := NewRequest(paris, lyon)
				r.AddWaypoint(NewWaypoint(services.LocationFromAddress("Dijon"), true))
				return r
			},
			want: true,
		},
		{
			name: "empty waypoint",
			setup: func(t *testing.T) *Request {
				r := NewRequest(paris, lyon)
				r.SetWaypoints(NewWaypoint(services.LocationFromAddress("Dijon"), false), &Waypoint{})
				return r
			},
			want: false,
		},
		{
			name: "nil waypoint",
			setup: func(t *testing.T) *Request {
				r := NewRequest(paris, lyon)
				r.AddWaypoint(nil)
				return r
			},
			want: false,
		},
		{
			name: "transit without time",
			setup: func(t *testing.T) *Request {
				r := NewRequest(paris, lyon)
				require.NoError(t, r.SetTravelMode(services.TravelModeTransit))
				return r
			},
			want: false,
		},
		{
			name: "transit with departure time",
			setup: func(t *testing.T) *Request {
				r := NewRequest(paris, lyon)
				require.NoError(t, r.SetTravelMode(services.TravelModeTransit))
				r.SetDepartureTime(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
				return r
			},
			want: true,
		},
		{
			name: "transit with arrival time",
			setup: func(t *testing.T) *Request {
				r := NewRequest(paris, lyon)
				require.NoError(t, r.SetTravelMode(services.TravelModeTransit))
				r.SetArrivalTime(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
				return r
			},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.setup(t).IsValid())
		})
	}
}

func TestRequestFlags(t *testing.T) {
	r := NewRequest(services.LocationFromAddress("A"), services.LocationFromAddress("B"))
	assert.False(t, r.HasOptimizeWaypoints())
	assert.False(t, r.HasProvideRouteAlternatives())

	r.SetOptimizeWaypoints(true)
	r.SetProvideRouteAlternatives(false)
	assert.True(t, r.OptimizeWaypoints())
	assert.True(t, r.HasProvideRouteAlternatives())
	assert.False(t, r.ProvideRouteAlternatives())

	r.SetAvoidHighways(true)
	assert.True(t, r.AvoidHighways())
	require.NoError(t, r.SetLanguage("fr"))
	assert.Equal(t, "fr", r.Language())
}
