package overlays

import (
	"math"

	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmerrors"
)

// defaultBound is the bound used when a rectangle or ground overlay is created without one.
func defaultBound() *base.Bound {
	return base.NewBound(base.NewCoordinate(-1, -1), base.NewCoordinate(1, 1))
}

// Rectangle is a lat/lng aligned rectangle.
type Rectangle struct {
	base.Variable
	base.Options

	bound *base.Bound
}

// NewRectangle creates a rectangle. A nil bound defaults to -1,-1 / 1,1.
func NewRectangle(bound *base.Bound) (*Rectangle, error) {
	if bound == nil {
		bound = defaultBound()
	}
	r := &Rectangle{Variable: base.NewVariable("rectangle_")}
	if err := r.SetBound(bound); err != nil {
		return nil, err
	}
	return r, nil
}

// ExtendableKind implements base.Extendable.
func (r *Rectangle) ExtendableKind() string { return "rectangle" }

// Bound returns the rectangle bound.
func (r *Rectangle) Bound() *base.Bound { return r.bound }

// SetBound sets the rectangle bound, which needs both corners.
func (r *Rectangle) SetBound(bound *base.Bound) error {
	if bound == nil || !bound.HasCoordinates() {
		return gmerrors.Invalid(gmerrors.ComponentOverlay, "rectangle", "bound", nil,
			"a rectangle bound must have a south west & a north east coordinate")
	}
	r.bound = bound
	return nil
}

// Circle is a circle on the earth's surface; the radius is in meters.
type Circle struct {
	base.Variable
	base.Options

	center *base.Coordinate
	radius float64
}

// NewCircle creates a circle. A nil center defaults to 0,0.
func NewCircle(center *base.Coordinate, radius float64) (*Circle, error) {
	if center == nil {
		center = base.NewCoordinate(0, 0)
	}
	c := &Circle{Variable: base.NewVariable("circle_"), center: center}
	if err := c.SetRadius(radius); err != nil {
		return nil, err
	}
	return c, nil
}

// ExtendableKind implements base.Extendable.
func (c *Circle) ExtendableKind() string { return "circle" }

// Center returns the circle center.
func (c *Circle) Center() *base.Coordinate { return c.center }

// SetCenter sets the circle center.
func (c *Circle) SetCenter(center *base.Coordinate) { c.center = center }

// Radius returns the radius in meters.
func (c *Circle) Radius() float64 { return c.radius }

// SetRadius sets the radius, which must be a finite, non-negative number.
func (c *Circle) SetRadius(radius float64) error {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		return gmerrors.Invalid(gmerrors.ComponentOverlay, "circle", "radius", radius,
			"the radius of a circle must be a finite, non-negative value")
	}
	c.radius = radius
	return nil
}

// GroundOverlay is an image stretched over a bound.
type GroundOverlay struct {
	base.Variable
	base.Options

	url   string
	bound *base.Bound
}

// NewGroundOverlay creates a ground overlay. A nil bound defaults to -1,-1 / 1,1.
func NewGroundOverlay(url string, bound *base.Bound) (*GroundOverlay, error) {
	if bound == nil {
		bound = defaultBound()
	}
	g := &GroundOverlay{Variable: base.NewVariable("ground_overlay_")}
	if err := g.SetURL(url); err != nil {
		return nil, err
	}
	if err := g.SetBound(bound); err != nil {
		return nil, err
	}
	return g, nil
}

// ExtendableKind implements base.Extendable.
func (g *GroundOverlay) ExtendableKind() string { return "ground_overlay" }

// URL returns the image URL.
func (g *GroundOverlay) URL() string { return g.url }

// SetURL sets the image URL, which must not be empty.
func (g *GroundOverlay) SetURL(url string) error {
	if url == "" {
		return gmerrors.Invalid(gmerrors.ComponentOverlay, "ground overlay", "url", url,
			"the url of a ground overlay must not be empty")
	}
	g.url = url
	return nil
}

// Bound returns the area covered by the image.
func (g *GroundOverlay) Bound() *base.Bound { return g.bound }

// SetBound sets the covered area, which needs both corners.
func (g *GroundOverlay) SetBound(bound *base.Bound) error {
	if bound == nil || !bound.HasCoordinates() {
		return gmerrors.Invalid(gmerrors.ComponentOverlay, "ground overlay", "bound", nil,
			"a ground overlay bound must have a south west & a north east coordinate")
	}
	g.bound = bound
	return nil
}
