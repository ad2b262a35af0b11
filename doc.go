// Package googlemap is an object model of a Google Maps JavaScript map and
// the aggregation passes a renderer runs over it.
//
// # Overview
//
// The module consists of these packages:
//
//   - base: coordinates, points, sizes, bounds and map type ids
//   - overlays: markers, marker images and shapes, info windows, paths,
//     rectangles, circles, ground overlays and marker clusters
//   - controls: the seven optional map controls
//   - layers: KML layers
//   - gmap: the map itself, owning its overlays, controls and layers
//   - aggregator: collects every distinct object of one kind reachable from a map
//   - mapdoc: builds a map from a YAML or JSON document
//   - services: request objects for the geocoding, directions and distance
//     matrix services
//   - gmerrors: the error types shared by every package
//
// # Installation
//
//	go get github.com/erraggy/googlemap
//
// # Quick Start
//
// Build a map by hand:
//
//	m := gmap.New()
//	m.SetAutoZoom(true)
//
//	paris := base.NewCoordinate(48.8566, 2.3522)
//	m.Overlays().AddMarker(overlays.NewMarker(paris))
//
//	circle, err := overlays.NewCircle(paris, 500)
//	if err != nil {
//		log.Fatal(err)
//	}
//	m.Overlays().AddCircle(circle)
//
// Or load it from a document:
//
//	res, err := mapdoc.Load(mapdoc.WithFilePath("city.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	m := res.Map
//
// Then aggregate what a renderer needs to declare:
//
//	coords := (&aggregator.CoordinateAggregator{}).Aggregate(m)
//	images := (&aggregator.MarkerImageAggregator{}).Aggregate(m)
//
// Each aggregation returns every distinct object once, in a stable order.
// Objects are compared by identity: two coordinates with the same latitude
// and longitude are two objects, a coordinate shared by a marker and a
// polygon is one.
//
// # Aggregator Package
//
// One aggregator per kind of object:
//
//   - BoundAggregator: the map bound (auto-zoom only), ground overlay bounds, rectangle bounds
//   - CoordinateAggregator: center, bound corners, circle centers, info window
//     and marker positions, polygon and polyline coordinates
//   - PointAggregator: marker icon and shadow anchors and origins
//   - SizeAggregator: info window pixel offsets, marker icon and shadow sizes
//   - InfoWindowAggregator, MarkerImageAggregator, MarkerShapeAggregator
//
// The Coordinate and Size aggregators depend on other aggregators; substitutes
// are given with WithBoundAggregator and WithInfoWindowAggregator. Collect runs
// them all at once and Viewport computes the smallest bound covering a set of
// coordinates.
//
// Aggregators never fail. A nil map aggregates to an empty slice.
//
// # Errors
//
// Constructors and setters of the object model validate their input and
// return *gmerrors.ValidationError values. The mapdoc loader also returns
// *gmerrors.ParseError and *gmerrors.ReferenceError. Use errors.Is with the
// gmerrors sentinels or errors.As with the struct types.
//
// # Command Line
//
// The gmaps command loads map documents and prints aggregations:
//
//	gmaps aggregate -kind coordinates city.yaml
//	gmaps viewport -format json city.yaml
//	gmaps mcp
//
// The mcp subcommand serves the same operations as Model Context Protocol
// tools over stdio.
package googlemap
