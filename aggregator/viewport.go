package aggregator

import (
	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmap"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Viewport returns the smallest latitude/longitude rectangle containing every
// valid coordinate, as a new bound. A rectangle may cross the antimeridian, in
// which case its south-west longitude is greater than its north-east one.
//
// It reports false when no coordinate is valid.
func Viewport(coordinates []*base.Coordinate) (*base.Bound, bool) {
	rect := s2.EmptyRect()
	for _, c := range coordinates {
		if c == nil || !c.IsValid() {
			continue
		}
		rect = rect.AddPoint(c.LatLng())
	}
	if rect.IsEmpty() {
		return nil, false
	}
	lo, hi := rect.Lo(), rect.Hi()
	return base.NewBound(
		base.NewCoordinate(lo.Lat.Degrees(), lo.Lng.Degrees()),
		base.NewCoordinate(hi.Lat.Degrees(), hi.Lng.Degrees()),
	), true
}

// MapViewport aggregates the coordinates of m and returns their viewport.
func MapViewport(m *gmap.Map, opts ...Option) (*base.Bound, bool) {
	return Viewport(NewCoordinateAggregator(opts...).Aggregate(m))
}

// ViewportCenter returns the center of a viewport returned by Viewport. Unlike
// Bound.Center it follows the rectangle across the antimeridian, so the
// viewport from 170 to -170 is centered on longitude 180.
//
// It reports false when a corner is missing.
func ViewportCenter(b *base.Bound) (*base.Coordinate, bool) {
	if b == nil || !b.HasCoordinates() {
		return nil, false
	}
	sw, ne := b.SouthWest.LatLng(), b.NorthEast.LatLng()
	rect := s2.Rect{
		Lat: r1.Interval{Lo: sw.Lat.Radians(), Hi: ne.Lat.Radians()},
		Lng: s1.IntervalFromEndpoints(sw.Lng.Radians(), ne.Lng.Radians()),
	}
	center := rect.Center()
	return base.NewCoordinate(center.Lat.Degrees(), center.Lng.Degrees()), true
}
