package aggregator

import (
	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmap"
	"github.com/erraggy/googlemap/overlays"
)

// Collection holds the result of every aggregator for one map.
type Collection struct {
	// Bounds are the bounds relevant to the viewport.
	Bounds []*base.Bound

	// Coordinates are every coordinate to declare, in first-occurrence order.
	Coordinates []*base.Coordinate

	// Points are marker image anchors and origins.
	Points []*base.Point

	// Sizes are info window pixel offsets and marker image sizes.
	Sizes []*base.Size

	// InfoWindows are standalone then marker-attached info windows.
	InfoWindows []*overlays.InfoWindow

	// MarkerImages are marker icons and shadows.
	MarkerImages []*overlays.MarkerImage

	// MarkerShapes are marker shapes.
	MarkerShapes []*overlays.MarkerShape
}

// Len returns the number of collected objects across every list.
func (c *Collection) Len() int {
	return len(c.Bounds) + len(c.Coordinates) + len(c.Points) + len(c.Sizes) +
		len(c.InfoWindows) + len(c.MarkerImages) + len(c.MarkerShapes)
}

// Collect runs every aggregator over m. The options configure the
// collaborators shared by the coordinate and size aggregators, and the bound
// and info window lists of the collection come from those same collaborators.
func Collect(m *gmap.Map, opts ...Option) *Collection {
	c := newCollaborators(opts)
	coordinates := &CoordinateAggregator{collaborators: c}
	sizes := &SizeAggregator{collaborators: c}

	return &Collection{
		Bounds:       nonNil(c.bounds.Aggregate(m)),
		Coordinates:  coordinates.Aggregate(m),
		Points:       (&PointAggregator{}).Aggregate(m),
		Sizes:        sizes.Aggregate(m),
		InfoWindows:  nonNil(c.infoWindows.Aggregate(m)),
		MarkerImages: (&MarkerImageAggregator{}).Aggregate(m),
		MarkerShapes: (&MarkerShapeAggregator{}).Aggregate(m),
	}
}

// nonNil guards against substitute aggregators returning nil.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
