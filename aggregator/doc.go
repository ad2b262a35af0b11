// Package aggregator collects the shared objects of a map graph.
//
// A renderer declares every coordinate, bound, point, size, info window,
// marker image and marker shape once, as one JavaScript variable, and then
// references it from the overlays that use it. The aggregators in this package
// produce those declaration lists: each walks a *gmap.Map in a fixed order and
// returns the objects it found, deduplicated by identity and ordered by first
// occurrence.
//
// Identity means pointer equality. Two coordinates with the same latitude and
// longitude are two entries unless they are the same *base.Coordinate.
//
// # Aggregators
//
//   - BoundAggregator: the map bound when auto-zooming, then ground overlay and
//     rectangle bounds.
//   - CoordinateAggregator: the center, usable bound corners, circle centers,
//     info window positions, marker positions, polygon and polyline vertices.
//   - PointAggregator: marker icon and shadow anchors and origins.
//   - SizeAggregator: info window pixel offsets, then marker icon and shadow sizes.
//   - InfoWindowAggregator, MarkerImageAggregator, MarkerShapeAggregator.
//
// Every step of an aggregation is exported (for example
// CoordinateAggregator.AggregateCircles) and takes the accumulator to extend,
// so a renderer can compose its own traversal. The accumulator passed in is
// never modified.
//
// # Collaborators
//
// The coordinate and size aggregators delegate to other aggregators, which can
// be replaced with options:
//
//	coords := aggregator.NewCoordinateAggregator(
//		aggregator.WithBoundAggregator(myBounds),
//	)
//
// Collect runs every aggregator at once and Viewport computes the rectangle
// covering a list of coordinates.
//
// Aggregations only read the map. They are safe for concurrent use as long as
// the map is not modified at the same time.
package aggregator
