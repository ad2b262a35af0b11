// Package gmap provides Map, the root of the map object graph.
//
// A Map owns its controls, overlays and layers. Overlays added while the map
// auto-zooms are recorded in the map bound's extends list so a renderer can
// fit the viewport to them:
//
//	m := gmap.New()
//	m.SetAutoZoom(true)
//	m.Overlays().AddMarker(overlays.NewMarker(base.NewCoordinate(48.85, 2.35)))
//
// The package aggregator walks a Map to collect the shared objects it
// references.
package gmap
