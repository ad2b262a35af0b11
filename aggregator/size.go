package aggregator

import (
	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmap"
	"github.com/erraggy/googlemap/overlays"
)

// SizeAggregator collects info window pixel offsets, then the sizes and scaled
// sizes of marker icons and shadows. The zero value uses an
// InfoWindowAggregator.
type SizeAggregator struct {
	collaborators collaborators
}

var _ Aggregator[*base.Size] = (*SizeAggregator)(nil)

// NewSizeAggregator creates a size aggregator.
func NewSizeAggregator(opts ...Option) *SizeAggregator {
	return &SizeAggregator{collaborators: newCollaborators(opts)}
}

// InfoWindowAggregator returns the aggregator info windows are read from.
func (a *SizeAggregator) InfoWindowAggregator() Aggregator[*overlays.InfoWindow] {
	return a.collaborators.withDefaults().infoWindows
}

// Aggregate returns the sizes of m.
func (a *SizeAggregator) Aggregate(m *gmap.Map) []*base.Size {
	sizes := []*base.Size{}
	if m == nil {
		return sizes
	}
	sizes = a.AggregateInfoWindows(m, sizes)
	return a.AggregateMarkers(m, sizes)
}

// AggregateInfoWindows adds the pixel offset of every info window, when set.
func (a *SizeAggregator) AggregateInfoWindows(m *gmap.Map, sizes []*base.Size) []*base.Size {
	if m == nil {
		return sizes
	}
	for _, w := range a.collaborators.withDefaults().infoWindows.Aggregate(m) {
		if w != nil && w.HasPixelOffset() {
			sizes = AggregateValue(w.PixelOffset(), sizes)
		}
	}
	return sizes
}

// AggregateMarkers adds the icon then shadow sizes of every marker.
func (a *SizeAggregator) AggregateMarkers(m *gmap.Map, sizes []*base.Size) []*base.Size {
	if m == nil {
		return sizes
	}
	for _, marker := range m.Overlays().Markers() {
		if marker.HasIcon() {
			sizes = a.AggregateMarkerImage(marker.Icon(), sizes)
		}
		if marker.HasShadow() {
			sizes = a.AggregateMarkerImage(marker.Shadow(), sizes)
		}
	}
	return sizes
}

// AggregateMarkerImage adds the size then the scaled size of img, when set.
func (a *SizeAggregator) AggregateMarkerImage(img *overlays.MarkerImage, sizes []*base.Size) []*base.Size {
	if img == nil {
		return sizes
	}
	if img.HasSize() {
		sizes = AggregateValue(img.Size(), sizes)
	}
	if img.HasScaledSize() {
		sizes = AggregateValue(img.ScaledSize(), sizes)
	}
	return sizes
}
