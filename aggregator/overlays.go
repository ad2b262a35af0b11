package aggregator

import (
	"github.com/erraggy/googlemap/gmap"
	"github.com/erraggy/googlemap/overlays"
)

// InfoWindowAggregator collects the standalone info windows of a map, then the
// ones attached to markers. The zero value is ready to use.
type InfoWindowAggregator struct{}

var _ Aggregator[*overlays.InfoWindow] = (*InfoWindowAggregator)(nil)

// Aggregate returns the info windows of m.
func (a *InfoWindowAggregator) Aggregate(m *gmap.Map) []*overlays.InfoWindow {
	windows := []*overlays.InfoWindow{}
	if m == nil {
		return windows
	}
	windows = AggregateValues(m.Overlays().InfoWindows(), windows)
	return a.AggregateMarkers(m, windows)
}

// AggregateMarkers adds the info window attached to every marker.
func (a *InfoWindowAggregator) AggregateMarkers(m *gmap.Map, windows []*overlays.InfoWindow) []*overlays.InfoWindow {
	if m == nil {
		return windows
	}
	for _, marker := range m.Overlays().Markers() {
		if marker.HasInfoWindow() {
			windows = AggregateValue(marker.InfoWindow(), windows)
		}
	}
	return windows
}

// MarkerImageAggregator collects marker icons and shadows. The zero value is
// ready to use.
type MarkerImageAggregator struct{}

var _ Aggregator[*overlays.MarkerImage] = (*MarkerImageAggregator)(nil)

// Aggregate returns the marker images of m: per marker, the icon then the shadow.
func (a *MarkerImageAggregator) Aggregate(m *gmap.Map) []*overlays.MarkerImage {
	images := []*overlays.MarkerImage{}
	if m == nil {
		return images
	}
	return a.AggregateMarkers(m, images)
}

// AggregateMarkers adds the icon and shadow of every marker.
func (a *MarkerImageAggregator) AggregateMarkers(m *gmap.Map, images []*overlays.MarkerImage) []*overlays.MarkerImage {
	if m == nil {
		return images
	}
	for _, marker := range m.Overlays().Markers() {
		if marker.HasIcon() {
			images = AggregateValue(marker.Icon(), images)
		}
		if marker.HasShadow() {
			images = AggregateValue(marker.Shadow(), images)
		}
	}
	return images
}

// MarkerShapeAggregator collects marker shapes. The zero value is ready to use.
type MarkerShapeAggregator struct{}

var _ Aggregator[*overlays.MarkerShape] = (*MarkerShapeAggregator)(nil)

// Aggregate returns the marker shapes of m.
func (a *MarkerShapeAggregator) Aggregate(m *gmap.Map) []*overlays.MarkerShape {
	shapes := []*overlays.MarkerShape{}
	if m == nil {
		return shapes
	}
	return a.AggregateMarkers(m, shapes)
}

// AggregateMarkers adds the shape of every marker.
func (a *MarkerShapeAggregator) AggregateMarkers(m *gmap.Map, shapes []*overlays.MarkerShape) []*overlays.MarkerShape {
	if m == nil {
		return shapes
	}
	for _, marker := range m.Overlays().Markers() {
		if marker.HasShape() {
			shapes = AggregateValue(marker.Shape(), shapes)
		}
	}
	return shapes
}
