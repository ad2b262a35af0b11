package overlays

import (
	"github.com/erraggy/googlemap/base"
)

// path is the ordered coordinate list shared by polylines and polygons.
type path struct {
	coordinates []*base.Coordinate
}

// HasCoordinates reports whether the path has at least one coordinate.
func (p *path) HasCoordinates() bool { return len(p.coordinates) > 0 }

// Coordinates returns the coordinates in drawing order.
func (p *path) Coordinates() []*base.Coordinate { return p.coordinates }

// SetCoordinates replaces the coordinates. Nil entries are skipped.
func (p *path) SetCoordinates(coordinates ...*base.Coordinate) {
	p.coordinates = nil
	for _, c := range coordinates {
		p.AddCoordinate(c)
	}
}

// AddCoordinate appends a coordinate. Nil is ignored.
func (p *path) AddCoordinate(c *base.Coordinate) {
	if c == nil {
		return
	}
	p.coordinates = append(p.coordinates, c)
}

// Polyline is an open path.
type Polyline struct {
	base.Variable
	base.Options
	path
}

// NewPolyline creates a polyline through the given coordinates.
func NewPolyline(coordinates ...*base.Coordinate) *Polyline {
	p := &Polyline{Variable: base.NewVariable("polyline_")}
	p.SetCoordinates(coordinates...)
	return p
}

// ExtendableKind implements base.Extendable.
func (p *Polyline) ExtendableKind() string { return "polyline" }

// Polygon is a closed path.
type Polygon struct {
	base.Variable
	base.Options
	path
}

// NewPolygon creates a polygon with the given vertices.
func NewPolygon(coordinates ...*base.Coordinate) *Polygon {
	p := &Polygon{Variable: base.NewVariable("polygon_")}
	p.SetCoordinates(coordinates...)
	return p
}

// ExtendableKind implements base.Extendable.
func (p *Polygon) ExtendableKind() string { return "polygon" }

// EncodedPolyline is a polyline given in the Google encoded polyline format.
// Its coordinates are only known once decoded by the renderer.
type EncodedPolyline struct {
	base.Variable
	base.Options

	value string
}

// NewEncodedPolyline creates an encoded polyline.
func NewEncodedPolyline(value string) *EncodedPolyline {
	return &EncodedPolyline{Variable: base.NewVariable("encoded_polyline_"), value: value}
}

// ExtendableKind implements base.Extendable.
func (p *EncodedPolyline) ExtendableKind() string { return "encoded_polyline" }

// Value returns the encoded path.
func (p *EncodedPolyline) Value() string { return p.value }

// SetValue sets the encoded path.
func (p *EncodedPolyline) SetValue(value string) { p.value = value }
