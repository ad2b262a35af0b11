package overlays

import (
	"slices"

	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmerrors"
)

// Marker is a point overlay with optional icon, shadow, shape and info window.
type Marker struct {
	base.Variable
	base.Options

	position   *base.Coordinate
	animation  Animation
	icon       *MarkerImage
	shadow     *MarkerImage
	shape      *MarkerShape
	infoWindow *InfoWindow
}

// NewMarker creates a marker at the given position, or at 0,0 when nil.
func NewMarker(position *base.Coordinate) *Marker {
	if position == nil {
		position = base.NewCoordinate(0, 0)
	}
	return &Marker{
		Variable: base.NewVariable("marker_"),
		position: position,
	}
}

// ExtendableKind implements base.Extendable.
func (m *Marker) ExtendableKind() string { return "marker" }

// Position returns the marker position.
func (m *Marker) Position() *base.Coordinate { return m.position }

// SetPosition sets the marker position.
func (m *Marker) SetPosition(c *base.Coordinate) { m.position = c }

// HasAnimation reports whether an animation is set.
func (m *Marker) HasAnimation() bool { return m.animation != "" }

// Animation returns the animation, or "" when none.
func (m *Marker) Animation() Animation { return m.animation }

// SetAnimation sets the animation. An empty animation removes it.
func (m *Marker) SetAnimation(animation Animation) error {
	if animation != "" && !slices.Contains(Animations(), animation) {
		return gmerrors.Invalid(gmerrors.ComponentOverlay, "marker", "animation", animation,
			"the animation of a marker can only be: bounce, drop")
	}
	m.animation = animation
	return nil
}

// HasIcon reports whether an icon is set.
func (m *Marker) HasIcon() bool { return m.icon != nil }

// Icon returns the icon, or nil.
func (m *Marker) Icon() *MarkerImage { return m.icon }

// SetIcon sets the icon. Nil removes it; a non-nil icon needs a URL.
func (m *Marker) SetIcon(icon *MarkerImage) error {
	if icon != nil && icon.URL() == "" {
		return gmerrors.Invalid(gmerrors.ComponentOverlay, "marker", "icon", nil, "a marker image icon must have an url")
	}
	m.icon = icon
	return nil
}

// HasShadow reports whether a shadow is set.
func (m *Marker) HasShadow() bool { return m.shadow != nil }

// Shadow returns the shadow, or nil.
func (m *Marker) Shadow() *MarkerImage { return m.shadow }

// SetShadow sets the shadow. Nil removes it; a non-nil shadow needs a URL.
func (m *Marker) SetShadow(shadow *MarkerImage) error {
	if shadow != nil && shadow.URL() == "" {
		return gmerrors.Invalid(gmerrors.ComponentOverlay, "marker", "shadow", nil, "a marker image shadow must have an url")
	}
	m.shadow = shadow
	return nil
}

// HasShape reports whether a shape is set.
func (m *Marker) HasShape() bool { return m.shape != nil }

// Shape returns the shape, or nil.
func (m *Marker) Shape() *MarkerShape { return m.shape }

// SetShape sets the shape. Nil removes it; a non-nil shape needs coordinates.
func (m *Marker) SetShape(shape *MarkerShape) error {
	if shape != nil && !shape.HasCoordinates() {
		return gmerrors.Invalid(gmerrors.ComponentOverlay, "marker", "shape", nil, "a marker shape must have coordinates")
	}
	m.shape = shape
	return nil
}

// HasInfoWindow reports whether an info window is attached.
func (m *Marker) HasInfoWindow() bool { return m.infoWindow != nil }

// InfoWindow returns the attached info window, or nil.
func (m *Marker) InfoWindow() *InfoWindow { return m.infoWindow }

// SetInfoWindow attaches an info window. Nil detaches it.
func (m *Marker) SetInfoWindow(w *InfoWindow) { m.infoWindow = w }
