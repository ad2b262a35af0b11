package overlays

import (
	"github.com/erraggy/googlemap/base"
)

// Owner is the map an Overlays collection belongs to. The collection only
// reads from it.
type Owner interface {
	IsAutoZoom() bool
	Bound() *base.Bound
}

// Overlays is the ordered collection of a map's overlays.
// Markers live in the marker cluster.
type Overlays struct {
	owner Owner

	markerCluster    *MarkerCluster
	infoWindows      []*InfoWindow
	polylines        []*Polyline
	encodedPolylines []*EncodedPolyline
	polygons         []*Polygon
	rectangles       []*Rectangle
	circles          []*Circle
	groundOverlays   []*GroundOverlay
}

// New creates an empty collection for owner, which may be nil for a
// detached collection.
func New(owner Owner) *Overlays {
	return &Overlays{
		owner:         owner,
		markerCluster: NewMarkerCluster(),
	}
}

// Owner returns the map the collection belongs to, or nil.
func (o *Overlays) Owner() Owner { return o.owner }

// extend appends e to the owner's bound when the owner auto-zooms.
func (o *Overlays) extend(e base.Extendable) {
	if o.owner == nil || !o.owner.IsAutoZoom() {
		return
	}
	if b := o.owner.Bound(); b != nil {
		b.Extend(e)
	}
}

// MarkerCluster returns the cluster holding the markers.
func (o *Overlays) MarkerCluster() *MarkerCluster { return o.markerCluster }

// SetMarkerCluster replaces the marker cluster. Nil is ignored.
func (o *Overlays) SetMarkerCluster(c *MarkerCluster) {
	if c == nil {
		return
	}
	o.markerCluster = c
}

// HasMarkers reports whether the map has at least one marker.
func (o *Overlays) HasMarkers() bool { return o.markerCluster.HasMarkers() }

// Markers returns the markers in insertion order.
func (o *Overlays) Markers() []*Marker { return o.markerCluster.Markers() }

// AddMarker adds a marker. Nil is ignored.
func (o *Overlays) AddMarker(m *Marker) {
	if m == nil {
		return
	}
	o.markerCluster.AddMarker(m)
	o.extend(m)
}

// HasInfoWindows reports whether the map has at least one standalone info window.
func (o *Overlays) HasInfoWindows() bool { return len(o.infoWindows) > 0 }

// InfoWindows returns the standalone info windows in insertion order.
// Info windows attached to markers are not included.
func (o *Overlays) InfoWindows() []*InfoWindow { return o.infoWindows }

// AddInfoWindow adds a standalone info window. Nil is ignored.
func (o *Overlays) AddInfoWindow(w *InfoWindow) {
	if w == nil {
		return
	}
	o.infoWindows = append(o.infoWindows, w)
	o.extend(w)
}

// HasPolylines reports whether the map has at least one polyline.
func (o *Overlays) HasPolylines() bool { return len(o.polylines) > 0 }

// Polylines returns the polylines in insertion order.
func (o *Overlays) Polylines() []*Polyline { return o.polylines }

// AddPolyline adds a polyline. Nil is ignored.
func (o *Overlays) AddPolyline(p *Polyline) {
	if p == nil {
		return
	}
	o.polylines = append(o.polylines, p)
	o.extend(p)
}

// HasEncodedPolylines reports whether the map has at least one encoded polyline.
func (o *Overlays) HasEncodedPolylines() bool { return len(o.encodedPolylines) > 0 }

// EncodedPolylines returns the encoded polylines in insertion order.
func (o *Overlays) EncodedPolylines() []*EncodedPolyline { return o.encodedPolylines }

// AddEncodedPolyline adds an encoded polyline. Nil is ignored.
func (o *Overlays) AddEncodedPolyline(p *EncodedPolyline) {
	if p == nil {
		return
	}
	o.encodedPolylines = append(o.encodedPolylines, p)
	o.extend(p)
}

// HasPolygons reports whether the map has at least one polygon.
func (o *Overlays) HasPolygons() bool { return len(o.polygons) > 0 }

// Polygons returns the polygons in insertion order.
func (o *Overlays) Polygons() []*Polygon { return o.polygons }

// AddPolygon adds a polygon. Nil is ignored.
func (o *Overlays) AddPolygon(p *Polygon) {
	if p == nil {
		return
	}
	o.polygons = append(o.polygons, p)
	o.extend(p)
}

// HasRectangles reports whether the map has at least one rectangle.
func (o *Overlays) HasRectangles() bool { return len(o.rectangles) > 0 }

// Rectangles returns the rectangles in insertion order.
func (o *Overlays) Rectangles() []*Rectangle { return o.rectangles }

// AddRectangle adds a rectangle. Nil is ignored.
func (o *Overlays) AddRectangle(r *Rectangle) {
	if r == nil {
		return
	}
	o.rectangles = append(o.rectangles, r)
	o.extend(r)
}

// HasCircles reports whether the map has at least one circle.
func (o *Overlays) HasCircles() bool { return len(o.circles) > 0 }

// Circles returns the circles in insertion order.
func (o *Overlays) Circles() []*Circle { return o.circles }

// AddCircle adds a circle. Nil is ignored.
func (o *Overlays) AddCircle(c *Circle) {
	if c == nil {
		return
	}
	o.circles = append(o.circles, c)
	o.extend(c)
}

// HasGroundOverlays reports whether the map has at least one ground overlay.
func (o *Overlays) HasGroundOverlays() bool { return len(o.groundOverlays) > 0 }

// GroundOverlays returns the ground overlays in insertion order.
func (o *Overlays) GroundOverlays() []*GroundOverlay { return o.groundOverlays }

// AddGroundOverlay adds a ground overlay. Nil is ignored.
func (o *Overlays) AddGroundOverlay(g *GroundOverlay) {
	if g == nil {
		return
	}
	o.groundOverlays = append(o.groundOverlays, g)
	o.extend(g)
}
