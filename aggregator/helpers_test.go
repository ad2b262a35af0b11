package aggregator

import (
	"testing"

	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmap"
	"github.com/erraggy/googlemap/overlays"
	"github.com/stretchr/testify/require"
)

func newMarkerImage(t *testing.T, url string) *overlays.MarkerImage {
	t.Helper()
	img, err := overlays.NewMarkerImage(url)
	require.NoError(t, err)
	return img
}

func newCircle(t *testing.T, center *base.Coordinate) *overlays.Circle {
	t.Helper()
	c, err := overlays.NewCircle(center, 100)
	require.NoError(t, err)
	return c
}

func newRectangle(t *testing.T, b *base.Bound) *overlays.Rectangle {
	t.Helper()
	r, err := overlays.NewRectangle(b)
	require.NoError(t, err)
	return r
}

func newGroundOverlay(t *testing.T, b *base.Bound) *overlays.GroundOverlay {
	t.Helper()
	g, err := overlays.NewGroundOverlay("https://example.com/overlay.png", b)
	require.NoError(t, err)
	return g
}

func newBound(swLat, swLng, neLat, neLng float64) *base.Bound {
	return base.NewBound(base.NewCoordinate(swLat, swLng), base.NewCoordinate(neLat, neLng))
}

// stubBounds returns a fixed list of bounds.
type stubBounds []*base.Bound

func (s stubBounds) Aggregate(*gmap.Map) []*base.Bound { return s }

// stubInfoWindows returns a fixed list of info windows.
type stubInfoWindows []*overlays.InfoWindow

func (s stubInfoWindows) Aggregate(*gmap.Map) []*overlays.InfoWindow { return s }
