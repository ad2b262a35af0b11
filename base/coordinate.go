package base

import (
	"github.com/golang/geo/s2"
)

// Coordinate is a latitude/longitude pair in degrees.
// NoWrap disables longitude wrapping when the coordinate is rendered.
type Coordinate struct {
	Variable

	Latitude  float64
	Longitude float64
	NoWrap    bool
}

// NewCoordinate creates a coordinate that wraps longitudes.
func NewCoordinate(latitude, longitude float64) *Coordinate {
	return &Coordinate{
		Variable:  NewVariable("coordinate_"),
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// NewCoordinateNoWrap creates a coordinate with longitude wrapping disabled.
func NewCoordinateNoWrap(latitude, longitude float64) *Coordinate {
	c := NewCoordinate(latitude, longitude)
	c.NoWrap = true
	return c
}

// LatLng converts the coordinate to an s2.LatLng.
func (c *Coordinate) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Latitude, c.Longitude)
}

// IsValid reports whether the latitude is within [-90, 90] and the longitude
// within [-180, 180].
func (c *Coordinate) IsValid() bool {
	return c.LatLng().IsValid()
}
