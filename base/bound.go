package base

import (
	"github.com/erraggy/googlemap/gmerrors"
)

// Extendable is implemented by overlays that can contribute to the implicit
// extent of a Bound. Resolving that extent is left to the renderer.
type Extendable interface {
	JavascriptVariable() string
	// ExtendableKind names the overlay type, e.g. "marker" or "polyline".
	ExtendableKind() string
}

// Bound is a rectangle given by its south-west and north-east corners, or a
// deferred list of overlays whose union the renderer computes.
type Bound struct {
	Variable

	SouthWest *Coordinate
	NorthEast *Coordinate

	extends []Extendable
}

// NewBound creates a bound from its corners. Either corner may be nil.
func NewBound(southWest, northEast *Coordinate) *Bound {
	return &Bound{
		Variable:  NewVariable("bound_"),
		SouthWest: southWest,
		NorthEast: northEast,
	}
}

// NewExtendedBound creates a bound without corners that covers the given overlays.
func NewExtendedBound(extends ...Extendable) *Bound {
	b := NewBound(nil, nil)
	b.SetExtends(extends...)
	return b
}

// HasCoordinates reports whether both corners are set.
func (b *Bound) HasCoordinates() bool {
	return b.SouthWest != nil && b.NorthEast != nil
}

// HasExtends reports whether the bound covers at least one overlay.
func (b *Bound) HasExtends() bool {
	return len(b.extends) > 0
}

// Extends returns the overlays the bound covers, in insertion order.
func (b *Bound) Extends() []Extendable {
	return b.extends
}

// SetExtends replaces the covered overlays. Nil entries are skipped.
func (b *Bound) SetExtends(extends ...Extendable) {
	b.extends = nil
	for _, e := range extends {
		b.Extend(e)
	}
}

// Extend adds an overlay to the covered list.
func (b *Bound) Extend(e Extendable) {
	if e == nil {
		return
	}
	b.extends = append(b.extends, e)
}

// Center returns a new coordinate halfway between both corners.
func (b *Bound) Center() (*Coordinate, error) {
	if !b.HasCoordinates() {
		return nil, gmerrors.Invalid(gmerrors.ComponentBase, "bound", "coordinates", nil,
			"a bound center needs a south west and a north east coordinate")
	}
	return NewCoordinate(
		(b.SouthWest.Latitude+b.NorthEast.Latitude)/2,
		(b.SouthWest.Longitude+b.NorthEast.Longitude)/2,
	), nil
}
