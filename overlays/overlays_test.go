package overlays

import (
	"math"
	"testing"

	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOwner struct {
	autoZoom bool
	bound    *base.Bound
}

func (s *stubOwner) IsAutoZoom() bool { return s.autoZoom }
func (s *stubOwner) Bound() *base.Bound { return s.bound }

func TestMarker(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		m := NewMarker(nil)
		require.NotNil(t, m.Position())
		assert.Equal(t, 0.0, m.Position().Latitude)
		assert.False(t, m.HasAnimation())
		assert.False(t, m.HasIcon())
		assert.False(t, m.HasShadow())
		assert.False(t, m.HasShape())
		assert.False(t, m.HasInfoWindow())
		assert.Equal(t, "marker", m.ExtendableKind())
	})

	t.Run("animation", func(t *testing.T) {
		m := NewMarker(nil)
		require.NoError(t, m.SetAnimation(AnimationDrop))
		assert.Equal(t, AnimationDrop, m.Animation())

		err := m.SetAnimation("spin")
		assert.ErrorIs(t, err, gmerrors.ErrOverlay)
		assert.Equal(t, AnimationDrop, m.Animation())

		require.NoError(t, m.SetAnimation(""))
		assert.False(t, m.HasAnimation())
	})

	t.Run("icon and shadow need an url", func(t *testing.T) {
		m := NewMarker(nil)
		assert.ErrorIs(t, m.SetIcon(&MarkerImage{}), gmerrors.ErrValidation)
		assert.ErrorIs(t, m.SetShadow(&MarkerImage{}), gmerrors.ErrValidation)

		icon, err := NewMarkerImage(DefaultMarkerImageURL)
		require.NoError(t, err)
		require.NoError(t, m.SetIcon(icon))
		require.NoError(t, m.SetShadow(icon))
		assert.Same(t, icon, m.Icon())
		assert.Same(t, icon, m.Shadow())

		require.NoError(t, m.SetIcon(nil))
		assert.False(t, m.HasIcon())
	})

	t.Run("shape needs coordinates", func(t *testing.T) {
		m := NewMarker(nil)
		assert.ErrorIs(t, m.SetShape(&MarkerShape{}), gmerrors.ErrOverlay)

		shape, err := NewMarkerShape(ShapeCircle, 1, 2, 3)
		require.NoError(t, err)
		require.NoError(t, m.SetShape(shape))
		assert.True(t, m.HasShape())
	})

	t.Run("info window", func(t *testing.T) {
		m := NewMarker(nil)
		w := NewInfoWindow("<p>hi</p>")
		m.SetInfoWindow(w)
		assert.Same(t, w, m.InfoWindow())
	})
}

func TestMarkerImage(t *testing.T) {
	_, err := NewMarkerImage("")
	assert.ErrorIs(t, err, gmerrors.ErrOverlay)

	img, err := NewMarkerImage("icon.png")
	require.NoError(t, err)
	assert.False(t, img.HasAnchor())
	assert.False(t, img.HasOrigin())
	assert.False(t, img.HasSize())
	assert.False(t, img.HasScaledSize())

	anchor, origin := base.NewPoint(16, 32), base.NewPoint(0, 0)
	size, scaled := base.NewSize(32, 32), base.NewSize(64, 64)
	img.SetAnchor(anchor)
	img.SetOrigin(origin)
	img.SetSize(size)
	img.SetScaledSize(scaled)
	assert.Same(t, anchor, img.Anchor())
	assert.Same(t, origin, img.Origin())
	assert.Same(t, size, img.Size())
	assert.Same(t, scaled, img.ScaledSize())
}

func TestMarkerShape(t *testing.T) {
	tests := []struct {
		name        string
		shapeType   ShapeType
		coordinates []float64
		wantErr     bool
	}{
		{"circle", ShapeCircle, []float64{1, 1, 10}, false},
		{"circle missing radius", ShapeCircle, []float64{1, 1}, true},
		{"rect", ShapeRect, []float64{0, 0, 10, 10}, false},
		{"rect too many", ShapeRect, []float64{0, 0, 10, 10, 5}, true},
		{"poly", ShapePoly, []float64{0, 0, 10, 0, 10, 10}, false},
		{"poly odd", ShapePoly, []float64{0, 0, 10}, true},
		{"poly empty", ShapePoly, nil, true},
		{"unknown type", ShapeType("hexagon"), []float64{1, 2, 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMarkerShape(tt.shapeType, tt.coordinates...)
			if tt.wantErr {
				assert.ErrorIs(t, err, gmerrors.ErrOverlay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.shapeType, s.Type())
			assert.Equal(t, tt.coordinates, s.Coordinates())
		})
	}

	t.Run("add poly coordinate", func(t *testing.T) {
		poly, err := NewMarkerShape(ShapePoly, 0, 0)
		require.NoError(t, err)
		require.NoError(t, poly.AddPolyCoordinate(5, 5))
		assert.Equal(t, []float64{0, 0, 5, 5}, poly.Coordinates())

		rect, err := NewMarkerShape(ShapeRect, 0, 0, 1, 1)
		require.NoError(t, err)
		assert.ErrorIs(t, rect.AddPolyCoordinate(5, 5), gmerrors.ErrValidation)
	})

	t.Run("input slice is copied", func(t *testing.T) {
		coords := []float64{1, 2, 3}
		s, err := NewMarkerShape(ShapeCircle, coords...)
		require.NoError(t, err)
		coords[0] = 99
		assert.Equal(t, 1.0, s.Coordinates()[0])
	})
}

func TestInfoWindow(t *testing.T) {
	w := NewInfoWindow("content")
	assert.Equal(t, "content", w.Content())
	assert.True(t, w.IsAutoOpen())
	assert.False(t, w.IsOpen())
	assert.False(t, w.IsAutoClose())
	assert.Equal(t, MouseEventClick, w.OpenEvent())
	assert.NotNil(t, w.Position())
	assert.False(t, w.HasPixelOffset())

	require.NoError(t, w.SetOpenEvent(MouseEventMouseOver))
	assert.Equal(t, MouseEventMouseOver, w.OpenEvent())
	assert.ErrorIs(t, w.SetOpenEvent("keypress"), gmerrors.ErrOverlay)

	offset := base.NewSize(0, -10)
	w.SetPixelOffset(offset)
	assert.Same(t, offset, w.PixelOffset())
}

func TestPaths(t *testing.T) {
	a, b := base.NewCoordinate(1, 1), base.NewCoordinate(2, 2)

	line := NewPolyline(a, nil, b)
	assert.Equal(t, []*base.Coordinate{a, b}, line.Coordinates())
	assert.Equal(t, "polyline", line.ExtendableKind())

	polygon := NewPolygon()
	assert.False(t, polygon.HasCoordinates())
	polygon.AddCoordinate(a)
	polygon.AddCoordinate(a)
	assert.Len(t, polygon.Coordinates(), 2, "paths keep repeated vertices")

	encoded := NewEncodedPolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", encoded.Value())
}

func TestRectangleAndGroundOverlay(t *testing.T) {
	r, err := NewRectangle(nil)
	require.NoError(t, err)
	assert.True(t, r.Bound().HasCoordinates())

	_, err = NewRectangle(base.NewBound(base.NewCoordinate(0, 0), nil))
	assert.ErrorIs(t, err, gmerrors.ErrOverlay)

	g, err := NewGroundOverlay("overlay.png", nil)
	require.NoError(t, err)
	assert.Equal(t, "overlay.png", g.URL())
	assert.True(t, g.Bound().HasCoordinates())

	_, err = NewGroundOverlay("", nil)
	assert.ErrorIs(t, err, gmerrors.ErrValidation)

	assert.ErrorIs(t, g.SetBound(base.NewBound(nil, nil)), gmerrors.ErrOverlay)
}

func TestCircle(t *testing.T) {
	c, err := NewCircle(nil, 500)
	require.NoError(t, err)
	assert.NotNil(t, c.Center())
	assert.Equal(t, 500.0, c.Radius())

	for _, radius := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := NewCircle(nil, radius)
		assert.ErrorIs(t, err, gmerrors.ErrOverlay)
	}
}

func TestMarkerCluster(t *testing.T) {
	c := NewMarkerCluster()
	assert.Equal(t, MarkerClusterDefault, c.Type())
	require.NoError(t, c.SetType(MarkerClusterMarkerCluster))
	assert.ErrorIs(t, c.SetType("heatmap"), gmerrors.ErrOverlay)

	m1, m2 := NewMarker(nil), NewMarker(nil)
	c.SetMarkers(m1, nil, m2)
	assert.Equal(t, []*Marker{m1, m2}, c.Markers())
}

func TestOverlays(t *testing.T) {
	t.Run("detached collection", func(t *testing.T) {
		o := New(nil)
		o.AddMarker(NewMarker(nil))
		o.AddMarker(nil)
		assert.Len(t, o.Markers(), 1)
		assert.Nil(t, o.Owner())
	})

	t.Run("auto zoom extends the owner bound", func(t *testing.T) {
		owner := &stubOwner{autoZoom: true, bound: base.NewBound(nil, nil)}
		o := New(owner)

		marker := NewMarker(nil)
		circle, err := NewCircle(nil, 1)
		require.NoError(t, err)
		line := NewPolyline()

		o.AddMarker(marker)
		o.AddCircle(circle)
		o.AddPolyline(line)

		assert.Equal(t, []base.Extendable{marker, circle, line}, owner.bound.Extends())
	})

	t.Run("no auto zoom leaves the owner bound untouched", func(t *testing.T) {
		owner := &stubOwner{bound: base.NewBound(nil, nil)}
		o := New(owner)
		o.AddInfoWindow(NewInfoWindow(""))
		o.AddPolygon(NewPolygon())
		o.AddEncodedPolyline(NewEncodedPolyline("abc"))
		assert.False(t, owner.bound.HasExtends())
		assert.True(t, o.HasInfoWindows())
		assert.True(t, o.HasPolygons())
		assert.True(t, o.HasEncodedPolylines())
	})

	t.Run("ordered sequences", func(t *testing.T) {
		o := New(nil)
		r1, err := NewRectangle(nil)
		require.NoError(t, err)
		r2, err := NewRectangle(nil)
		require.NoError(t, err)
		g, err := NewGroundOverlay("img.png", nil)
		require.NoError(t, err)

		o.AddRectangle(r1)
		o.AddRectangle(r2)
		o.AddGroundOverlay(g)

		assert.Equal(t, []*Rectangle{r1, r2}, o.Rectangles())
		assert.Equal(t, []*GroundOverlay{g}, o.GroundOverlays())
		assert.False(t, o.HasCircles())
	})

	t.Run("marker cluster replacement", func(t *testing.T) {
		o := New(nil)
		c := NewMarkerCluster()
		m := NewMarker(nil)
		c.AddMarker(m)

		o.SetMarkerCluster(c)
		o.SetMarkerCluster(nil)
		assert.Same(t, c, o.MarkerCluster())
		assert.Equal(t, []*Marker{m}, o.Markers())
	})
}
