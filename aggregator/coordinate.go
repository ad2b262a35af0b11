package aggregator

import (
	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmap"
)

// CoordinateAggregator collects every coordinate of a map, in this order:
//
//  1. the center, unless the map auto-zooms
//  2. south-west then north-east corner of each bound that has both corners
//     and no extends
//  3. circle centers
//  4. info window positions
//  5. marker positions
//  6. polygon vertices
//  7. polyline vertices
//
// Bounds built from extends are skipped; resolving them is left to the
// renderer. The zero value uses a BoundAggregator and an InfoWindowAggregator.
type CoordinateAggregator struct {
	collaborators collaborators
}

var _ Aggregator[*base.Coordinate] = (*CoordinateAggregator)(nil)

// NewCoordinateAggregator creates a coordinate aggregator.
func NewCoordinateAggregator(opts ...Option) *CoordinateAggregator {
	return &CoordinateAggregator{collaborators: newCollaborators(opts)}
}

// BoundAggregator returns the aggregator bounds are read from.
func (a *CoordinateAggregator) BoundAggregator() Aggregator[*base.Bound] {
	return a.collaborators.withDefaults().bounds
}

// Aggregate returns the coordinates of m.
func (a *CoordinateAggregator) Aggregate(m *gmap.Map) []*base.Coordinate {
	coordinates := []*base.Coordinate{}
	if m == nil {
		return coordinates
	}
	coordinates = a.AggregateCenter(m, coordinates)
	coordinates = a.AggregateBounds(m, coordinates)
	coordinates = a.AggregateCircles(m, coordinates)
	coordinates = a.AggregateInfoWindows(m, coordinates)
	coordinates = a.AggregateMarkers(m, coordinates)
	coordinates = a.AggregatePolygons(m, coordinates)
	return a.AggregatePolylines(m, coordinates)
}

// AggregateCenter adds the map center when the map does not auto-zoom.
func (a *CoordinateAggregator) AggregateCenter(m *gmap.Map, coordinates []*base.Coordinate) []*base.Coordinate {
	if m == nil || m.IsAutoZoom() {
		return coordinates
	}
	return AggregateValue(m.Center(), coordinates)
}

// AggregateBounds adds both corners of every usable bound, south-west first.
func (a *CoordinateAggregator) AggregateBounds(m *gmap.Map, coordinates []*base.Coordinate) []*base.Coordinate {
	if m == nil {
		return coordinates
	}
	for _, b := range a.collaborators.withDefaults().bounds.Aggregate(m) {
		if b == nil || b.HasExtends() || !b.HasCoordinates() {
			continue
		}
		coordinates = AggregateValue(b.SouthWest, coordinates)
		coordinates = AggregateValue(b.NorthEast, coordinates)
	}
	return coordinates
}

// AggregateCircles adds the center of every circle.
func (a *CoordinateAggregator) AggregateCircles(m *gmap.Map, coordinates []*base.Coordinate) []*base.Coordinate {
	if m == nil {
		return coordinates
	}
	for _, c := range m.Overlays().Circles() {
		coordinates = AggregateValue(c.Center(), coordinates)
	}
	return coordinates
}

// AggregateInfoWindows adds the position of every info window, standalone or
// attached to a marker.
func (a *CoordinateAggregator) AggregateInfoWindows(m *gmap.Map, coordinates []*base.Coordinate) []*base.Coordinate {
	if m == nil {
		return coordinates
	}
	for _, w := range a.collaborators.withDefaults().infoWindows.Aggregate(m) {
		if w == nil {
			continue
		}
		coordinates = AggregateValue(w.Position(), coordinates)
	}
	return coordinates
}

// AggregateMarkers adds the position of every marker.
func (a *CoordinateAggregator) AggregateMarkers(m *gmap.Map, coordinates []*base.Coordinate) []*base.Coordinate {
	if m == nil {
		return coordinates
	}
	for _, marker := range m.Overlays().Markers() {
		coordinates = AggregateValue(marker.Position(), coordinates)
	}
	return coordinates
}

// AggregatePolygons adds the vertices of every polygon, in path order.
func (a *CoordinateAggregator) AggregatePolygons(m *gmap.Map, coordinates []*base.Coordinate) []*base.Coordinate {
	if m == nil {
		return coordinates
	}
	for _, p := range m.Overlays().Polygons() {
		coordinates = AggregateValues(p.Coordinates(), coordinates)
	}
	return coordinates
}

// AggregatePolylines adds the vertices of every polyline, in path order.
func (a *CoordinateAggregator) AggregatePolylines(m *gmap.Map, coordinates []*base.Coordinate) []*base.Coordinate {
	if m == nil {
		return coordinates
	}
	for _, p := range m.Overlays().Polylines() {
		coordinates = AggregateValues(p.Coordinates(), coordinates)
	}
	return coordinates
}
