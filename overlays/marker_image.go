package overlays

import (
	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmerrors"
)

// DefaultMarkerImageURL is the stock Google marker.
const DefaultMarkerImageURL = "//maps.gstatic.com/mapfiles/markers/marker.png"

// MarkerImage is a marker icon or shadow.
type MarkerImage struct {
	base.Variable

	url        string
	anchor     *base.Point
	origin     *base.Point
	size       *base.Size
	scaledSize *base.Size
}

// NewMarkerImage creates a marker image. The URL must not be empty.
func NewMarkerImage(url string) (*MarkerImage, error) {
	m := &MarkerImage{Variable: base.NewVariable("marker_image_")}
	if err := m.SetURL(url); err != nil {
		return nil, err
	}
	return m, nil
}

// URL returns the image URL.
func (m *MarkerImage) URL() string { return m.url }

// SetURL sets the image URL.
func (m *MarkerImage) SetURL(url string) error {
	if url == "" {
		return gmerrors.Invalid(gmerrors.ComponentOverlay, "marker image", "url", url, "the url of a marker image must not be empty")
	}
	m.url = url
	return nil
}

// HasAnchor reports whether the image has an anchor point.
func (m *MarkerImage) HasAnchor() bool { return m.anchor != nil }

// Anchor returns the pixel the image is anchored at, or nil.
func (m *MarkerImage) Anchor() *base.Point { return m.anchor }

// SetAnchor sets the anchor point. Nil removes it.
func (m *MarkerImage) SetAnchor(p *base.Point) { m.anchor = p }

// HasOrigin reports whether the image has an origin point.
func (m *MarkerImage) HasOrigin() bool { return m.origin != nil }

// Origin returns the position of the image within a sprite, or nil.
func (m *MarkerImage) Origin() *base.Point { return m.origin }

// SetOrigin sets the origin point. Nil removes it.
func (m *MarkerImage) SetOrigin(p *base.Point) { m.origin = p }

// HasSize reports whether the image has a display size.
func (m *MarkerImage) HasSize() bool { return m.size != nil }

// Size returns the display size, or nil.
func (m *MarkerImage) Size() *base.Size { return m.size }

// SetSize sets the display size. Nil removes it.
func (m *MarkerImage) SetSize(s *base.Size) { m.size = s }

// HasScaledSize reports whether the image has a scaled size.
func (m *MarkerImage) HasScaledSize() bool { return m.scaledSize != nil }

// ScaledSize returns the size of the whole image after scaling, or nil.
func (m *MarkerImage) ScaledSize() *base.Size { return m.scaledSize }

// SetScaledSize sets the scaled size. Nil removes it.
func (m *MarkerImage) SetScaledSize(s *base.Size) { m.scaledSize = s }
