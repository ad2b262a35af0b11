package aggregator

import (
	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmap"
)

// BoundAggregator collects the bounds that matter for the viewport of a map:
// the map bound when the map auto-zooms, then ground overlay bounds, then
// rectangle bounds.
//
// Bounds are collected whether or not they have corners; filtering unusable
// bounds is left to the consumer (see CoordinateAggregator). The zero value is
// ready to use.
type BoundAggregator struct{}

var _ Aggregator[*base.Bound] = (*BoundAggregator)(nil)

// Aggregate returns the bounds of m.
func (a *BoundAggregator) Aggregate(m *gmap.Map) []*base.Bound {
	bounds := []*base.Bound{}
	if m == nil {
		return bounds
	}
	if m.IsAutoZoom() {
		bounds = AggregateValue(m.Bound(), bounds)
	}
	bounds = a.AggregateGroundOverlays(m, bounds)
	return a.AggregateRectangles(m, bounds)
}

// AggregateGroundOverlays adds the bound of every ground overlay of m.
func (a *BoundAggregator) AggregateGroundOverlays(m *gmap.Map, bounds []*base.Bound) []*base.Bound {
	if m == nil {
		return bounds
	}
	for _, g := range m.Overlays().GroundOverlays() {
		bounds = AggregateValue(g.Bound(), bounds)
	}
	return bounds
}

// AggregateRectangles adds the bound of every rectangle of m.
func (a *BoundAggregator) AggregateRectangles(m *gmap.Map, bounds []*base.Bound) []*base.Bound {
	if m == nil {
		return bounds
	}
	for _, r := range m.Overlays().Rectangles() {
		bounds = AggregateValue(r.Bound(), bounds)
	}
	return bounds
}
