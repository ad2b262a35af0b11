package overlays

import (
	"fmt"

	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmerrors"
)

// MarkerShape is the clickable region of a marker icon, in image pixels.
//
// Coordinates depend on the type:
//
//	circle: x, y, r
//	rect:   x1, y1, x2, y2
//	poly:   x1, y1, ..., xn, yn
type MarkerShape struct {
	base.Variable

	shapeType   ShapeType
	coordinates []float64
}

// NewMarkerShape creates a shape of the given type and coordinates.
func NewMarkerShape(shapeType ShapeType, coordinates ...float64) (*MarkerShape, error) {
	s := &MarkerShape{Variable: base.NewVariable("marker_shape_")}
	if err := s.SetShape(shapeType, coordinates...); err != nil {
		return nil, err
	}
	return s, nil
}

// Type returns the shape type.
func (s *MarkerShape) Type() ShapeType { return s.shapeType }

// HasCoordinates reports whether the shape has any coordinate.
func (s *MarkerShape) HasCoordinates() bool { return len(s.coordinates) > 0 }

// Coordinates returns the shape coordinates.
func (s *MarkerShape) Coordinates() []float64 { return s.coordinates }

// SetShape replaces the type and coordinates together, since the number of
// coordinates depends on the type.
func (s *MarkerShape) SetShape(shapeType ShapeType, coordinates ...float64) error {
	if err := checkShapeCoordinates(shapeType, coordinates); err != nil {
		return err
	}
	s.shapeType = shapeType
	s.coordinates = append([]float64(nil), coordinates...)
	return nil
}

// AddPolyCoordinate appends a vertex to a poly shape.
func (s *MarkerShape) AddPolyCoordinate(x, y float64) error {
	if s.shapeType != ShapePoly {
		return gmerrors.Invalid(gmerrors.ComponentOverlay, "marker shape", "type", s.shapeType,
			"poly coordinates can only be added to a marker shape of type poly")
	}
	s.coordinates = append(s.coordinates, x, y)
	return nil
}

func checkShapeCoordinates(shapeType ShapeType, coordinates []float64) error {
	invalid := func(expected string) error {
		return gmerrors.Invalid(gmerrors.ComponentOverlay, "marker shape", "coordinates", coordinates,
			fmt.Sprintf("a %s marker shape expects %s", shapeType, expected))
	}
	switch shapeType {
	case ShapeCircle:
		if len(coordinates) != 3 {
			return invalid("x, y, r")
		}
	case ShapeRect:
		if len(coordinates) != 4 {
			return invalid("x1, y1, x2, y2")
		}
	case ShapePoly:
		if len(coordinates) == 0 || len(coordinates)%2 != 0 {
			return invalid("x1, y1, ..., xn, yn")
		}
	default:
		return gmerrors.Invalid(gmerrors.ComponentOverlay, "marker shape", "type", shapeType,
			"the type of a marker shape can only be: circle, poly, rect")
	}
	return nil
}
