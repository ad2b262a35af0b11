package base

// Point is a pixel position, used for marker image anchors and origins.
type Point struct {
	Variable

	X float64
	Y float64
}

// NewPoint creates a point.
func NewPoint(x, y float64) *Point {
	return &Point{Variable: NewVariable("point_"), X: x, Y: y}
}

// Size is a two-dimensional size. Units are optional CSS units ("px", "%").
type Size struct {
	Variable

	Width      float64
	Height     float64
	WidthUnit  string
	HeightUnit string
}

// NewSize creates a size without units.
func NewSize(width, height float64) *Size {
	return &Size{Variable: NewVariable("size_"), Width: width, Height: height}
}

// NewSizeWithUnits creates a size with explicit width and height units.
func NewSizeWithUnits(width, height float64, widthUnit, heightUnit string) *Size {
	s := NewSize(width, height)
	s.WidthUnit = widthUnit
	s.HeightUnit = heightUnit
	return s
}

// HasUnits reports whether both units are set.
func (s *Size) HasUnits() bool {
	return s.WidthUnit != "" && s.HeightUnit != ""
}
