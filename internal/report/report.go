// Package report turns aggregation results into serializable values and
// text listings, shared by the gmaps command and the MCP server.
package report

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/googlemap/aggregator"
	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/mapdoc"
	"github.com/erraggy/googlemap/overlays"
)

// Kind selects one aggregation.
type Kind string

const (
	KindAll          Kind = "all"
	KindBounds       Kind = "bounds"
	KindCoordinates  Kind = "coordinates"
	KindPoints       Kind = "points"
	KindSizes        Kind = "sizes"
	KindInfoWindows  Kind = "info-windows"
	KindMarkerImages Kind = "marker-images"
	KindMarkerShapes Kind = "marker-shapes"
)

// Kinds returns every kind, KindAll first.
func Kinds() []Kind {
	return []Kind{
		KindAll, KindBounds, KindCoordinates, KindPoints, KindSizes,
		KindInfoWindows, KindMarkerImages, KindMarkerShapes,
	}
}

// ParseKind returns the kind named s. The empty string is KindAll.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return KindAll, nil
	}
	k := Kind(strings.ToLower(s))
	if !slices.Contains(Kinds(), k) {
		names := make([]string, 0, len(Kinds()))
		for _, k := range Kinds() {
			names = append(names, string(k))
		}
		return "", fmt.Errorf("invalid kind %q. Valid kinds: %s", s, strings.Join(names, ", "))
	}
	return k, nil
}

// Coordinate is a serializable coordinate.
type Coordinate struct {
	Variable string  `json:"variable" yaml:"variable"`
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Lat      float64 `json:"lat" yaml:"lat"`
	Lng      float64 `json:"lng" yaml:"lng"`
	NoWrap   bool    `json:"noWrap,omitempty" yaml:"noWrap,omitempty"`
}

// Bound is a serializable bound. Extends counts the overlays an extends-based
// bound covers.
type Bound struct {
	Variable  string      `json:"variable" yaml:"variable"`
	Name      string      `json:"name,omitempty" yaml:"name,omitempty"`
	SouthWest *Coordinate `json:"southWest,omitempty" yaml:"southWest,omitempty"`
	NorthEast *Coordinate `json:"northEast,omitempty" yaml:"northEast,omitempty"`
	Extends   int         `json:"extends,omitempty" yaml:"extends,omitempty"`
}

// Point is a serializable point.
type Point struct {
	Variable string  `json:"variable" yaml:"variable"`
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
}

// Size is a serializable size.
type Size struct {
	Variable   string  `json:"variable" yaml:"variable"`
	Width      float64 `json:"width" yaml:"width"`
	Height     float64 `json:"height" yaml:"height"`
	WidthUnit  string  `json:"widthUnit,omitempty" yaml:"widthUnit,omitempty"`
	HeightUnit string  `json:"heightUnit,omitempty" yaml:"heightUnit,omitempty"`
}

// InfoWindow is a serializable info window.
type InfoWindow struct {
	Variable string      `json:"variable" yaml:"variable"`
	Name     string      `json:"name,omitempty" yaml:"name,omitempty"`
	Content  string      `json:"content,omitempty" yaml:"content,omitempty"`
	Position *Coordinate `json:"position,omitempty" yaml:"position,omitempty"`
}

// MarkerImage is a serializable marker image.
type MarkerImage struct {
	Variable string `json:"variable" yaml:"variable"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	URL      string `json:"url" yaml:"url"`
}

// MarkerShape is a serializable marker shape.
type MarkerShape struct {
	Variable    string    `json:"variable" yaml:"variable"`
	Type        string    `json:"type" yaml:"type"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates"`
}

// Report is the aggregation of one document. Lists not selected by the kind
// are nil and omitted.
type Report struct {
	Source       string         `json:"source,omitempty" yaml:"source,omitempty"`
	Bounds       []*Bound       `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	Coordinates  []*Coordinate  `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
	Points       []*Point       `json:"points,omitempty" yaml:"points,omitempty"`
	Sizes        []*Size        `json:"sizes,omitempty" yaml:"sizes,omitempty"`
	InfoWindows  []*InfoWindow  `json:"infoWindows,omitempty" yaml:"infoWindows,omitempty"`
	MarkerImages []*MarkerImage `json:"markerImages,omitempty" yaml:"markerImages,omitempty"`
	MarkerShapes []*MarkerShape `json:"markerShapes,omitempty" yaml:"markerShapes,omitempty"`
}

// Count returns the number of entries across every list.
func (r *Report) Count() int {
	return len(r.Bounds) + len(r.Coordinates) + len(r.Points) + len(r.Sizes) +
		len(r.InfoWindows) + len(r.MarkerImages) + len(r.MarkerShapes)
}

// Build aggregates the map of res and keeps the lists selected by kind.
func Build(res *mapdoc.Result, kind Kind) *Report {
	c := aggregator.Collect(res.Map)
	b := builder{res: res}
	r := &Report{Source: res.SourcePath}

	want := func(k Kind) bool { return kind == KindAll || kind == k }
	if want(KindBounds) {
		r.Bounds = convert(c.Bounds, b.bound)
	}
	if want(KindCoordinates) {
		r.Coordinates = convert(c.Coordinates, b.coordinate)
	}
	if want(KindPoints) {
		r.Points = convert(c.Points, b.point)
	}
	if want(KindSizes) {
		r.Sizes = convert(c.Sizes, b.size)
	}
	if want(KindInfoWindows) {
		r.InfoWindows = convert(c.InfoWindows, b.infoWindow)
	}
	if want(KindMarkerImages) {
		r.MarkerImages = convert(c.MarkerImages, b.markerImage)
	}
	if want(KindMarkerShapes) {
		r.MarkerShapes = convert(c.MarkerShapes, b.markerShape)
	}
	return r
}

// Viewport is the viewport of one document. Empty is set, and the corners
// omitted, when the map has no valid coordinate.
type Viewport struct {
	Source    string      `json:"source,omitempty" yaml:"source,omitempty"`
	Empty     bool        `json:"empty,omitempty" yaml:"empty,omitempty"`
	SouthWest *Coordinate `json:"southWest,omitempty" yaml:"southWest,omitempty"`
	NorthEast *Coordinate `json:"northEast,omitempty" yaml:"northEast,omitempty"`
	Center    *Coordinate `json:"center,omitempty" yaml:"center,omitempty"`
}

// BuildViewport computes the viewport of the map of res.
func BuildViewport(res *mapdoc.Result) *Viewport {
	v := &Viewport{Source: res.SourcePath}
	bound, ok := aggregator.MapViewport(res.Map)
	if !ok {
		v.Empty = true
		return v
	}
	b := builder{res: res}
	v.SouthWest = b.coordinate(bound.SouthWest)
	v.NorthEast = b.coordinate(bound.NorthEast)
	if center, ok := aggregator.ViewportCenter(bound); ok {
		v.Center = b.coordinate(center)
	}
	return v
}

func convert[T, E any](values []T, fn func(T) E) []E {
	out := make([]E, 0, len(values))
	for _, v := range values {
		out = append(out, fn(v))
	}
	return out
}

type builder struct {
	res *mapdoc.Result
}

func (b builder) coordinate(c *base.Coordinate) *Coordinate {
	if c == nil {
		return nil
	}
	return &Coordinate{
		Variable: c.JavascriptVariable(),
		Name:     b.res.NameOf(c),
		Lat:      c.Latitude,
		Lng:      c.Longitude,
		NoWrap:   c.NoWrap,
	}
}

func (b builder) bound(v *base.Bound) *Bound {
	return &Bound{
		Variable:  v.JavascriptVariable(),
		Name:      b.res.NameOf(v),
		SouthWest: b.coordinate(v.SouthWest),
		NorthEast: b.coordinate(v.NorthEast),
		Extends:   len(v.Extends()),
	}
}

func (b builder) point(p *base.Point) *Point {
	return &Point{Variable: p.JavascriptVariable(), X: p.X, Y: p.Y}
}

func (b builder) size(s *base.Size) *Size {
	return &Size{
		Variable:   s.JavascriptVariable(),
		Width:      s.Width,
		Height:     s.Height,
		WidthUnit:  s.WidthUnit,
		HeightUnit: s.HeightUnit,
	}
}

func (b builder) infoWindow(w *overlays.InfoWindow) *InfoWindow {
	return &InfoWindow{
		Variable: w.JavascriptVariable(),
		Name:     b.res.NameOf(w),
		Content:  w.Content(),
		Position: b.coordinate(w.Position()),
	}
}

func (b builder) markerImage(img *overlays.MarkerImage) *MarkerImage {
	return &MarkerImage{
		Variable: img.JavascriptVariable(),
		Name:     b.res.NameOf(img),
		URL:      img.URL(),
	}
}

func (b builder) markerShape(s *overlays.MarkerShape) *MarkerShape {
	return &MarkerShape{
		Variable:    s.JavascriptVariable(),
		Type:        string(s.Type()),
		Coordinates: s.Coordinates(),
	}
}
