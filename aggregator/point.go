package aggregator

import (
	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmap"
	"github.com/erraggy/googlemap/overlays"
)

// PointAggregator collects the anchor and origin points of marker icons and
// shadows. The zero value is ready to use.
type PointAggregator struct{}

var _ Aggregator[*base.Point] = (*PointAggregator)(nil)

// Aggregate returns the points of m: per marker, the icon anchor and origin,
// then the shadow anchor and origin.
func (a *PointAggregator) Aggregate(m *gmap.Map) []*base.Point {
	points := []*base.Point{}
	if m == nil {
		return points
	}
	return a.AggregateMarkers(m, points)
}

// AggregateMarkers adds the icon and shadow points of every marker.
func (a *PointAggregator) AggregateMarkers(m *gmap.Map, points []*base.Point) []*base.Point {
	if m == nil {
		return points
	}
	for _, marker := range m.Overlays().Markers() {
		if marker.HasIcon() {
			points = a.AggregateMarkerImage(marker.Icon(), points)
		}
		if marker.HasShadow() {
			points = a.AggregateMarkerImage(marker.Shadow(), points)
		}
	}
	return points
}

// AggregateMarkerImage adds the anchor then the origin of img, when set.
func (a *PointAggregator) AggregateMarkerImage(img *overlays.MarkerImage, points []*base.Point) []*base.Point {
	if img == nil {
		return points
	}
	if img.HasAnchor() {
		points = AggregateValue(img.Anchor(), points)
	}
	if img.HasOrigin() {
		points = AggregateValue(img.Origin(), points)
	}
	return points
}
