package aggregator

import (
	"testing"

	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmap"
	"github.com/erraggy/googlemap/overlays"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateAggregator(t *testing.T) {
	t.Run("center before marker", func(t *testing.T) {
		m := gmap.New()
		c := m.Center()
		marker := overlays.NewMarker(base.NewCoordinate(10, 10))
		m.Overlays().AddMarker(marker)

		got := NewCoordinateAggregator().Aggregate(m)
		require.Len(t, got, 2)
		assert.Same(t, c, got[0])
		assert.Same(t, marker.Position(), got[1])
	})

	t.Run("fixed step order", func(t *testing.T) {
		m := gmap.New()
		center := m.Center()

		rectBound := newBound(1, 1, 2, 2)
		m.Overlays().AddRectangle(newRectangle(t, rectBound))

		circle := newCircle(t, base.NewCoordinate(3, 3))
		m.Overlays().AddCircle(circle)

		window := overlays.NewInfoWindow("standalone")
		window.SetPosition(base.NewCoordinate(4, 4))
		m.Overlays().AddInfoWindow(window)

		marker := overlays.NewMarker(base.NewCoordinate(5, 5))
		attached := overlays.NewInfoWindow("attached")
		attached.SetPosition(base.NewCoordinate(6, 6))
		marker.SetInfoWindow(attached)
		m.Overlays().AddMarker(marker)

		polygonA, polygonB := base.NewCoordinate(7, 7), base.NewCoordinate(8, 8)
		m.Overlays().AddPolygon(overlays.NewPolygon(polygonA, polygonB))

		lineA, lineB := base.NewCoordinate(9, 9), base.NewCoordinate(10, 10)
		m.Overlays().AddPolyline(overlays.NewPolyline(lineA, lineB))

		got := NewCoordinateAggregator().Aggregate(m)
		want := []*base.Coordinate{
			center,
			rectBound.SouthWest, rectBound.NorthEast,
			circle.Center(),
			window.Position(), attached.Position(),
			marker.Position(),
			polygonA, polygonB,
			lineA, lineB,
		}
		assert.Equal(t, want, got)
	})

	t.Run("bound with extends is skipped", func(t *testing.T) {
		m := gmap.New()
		b := newBound(1, 1, 2, 2)
		b.Extend(overlays.NewMarker(nil))
		m.Overlays().AddRectangle(newRectangle(t, b))

		got := NewCoordinateAggregator().Aggregate(m)
		assert.Equal(t, []*base.Coordinate{m.Center()}, got)
	})

	t.Run("bound without both corners is skipped", func(t *testing.T) {
		half := base.NewBound(base.NewCoordinate(1, 1), nil)
		a := NewCoordinateAggregator(WithBoundAggregator(stubBounds{half, nil}))
		m := gmap.New()
		assert.Equal(t, []*base.Coordinate{m.Center()}, a.Aggregate(m))
	})

	t.Run("auto zoom end to end", func(t *testing.T) {
		m := gmap.New()
		m.SetAutoZoom(true)
		marker := overlays.NewMarker(base.NewCoordinate(48.85, 2.35))
		circle := newCircle(t, base.NewCoordinate(45.76, 4.84))
		m.Overlays().AddMarker(marker)
		m.Overlays().AddCircle(circle)

		assert.Equal(t, []*base.Bound{m.Bound()}, (&BoundAggregator{}).Aggregate(m))
		assert.True(t, m.Bound().HasExtends())

		got := NewCoordinateAggregator().Aggregate(m)
		assert.Equal(t, []*base.Coordinate{circle.Center(), marker.Position()}, got)
	})

	t.Run("auto zoom with explicit map bound", func(t *testing.T) {
		m := gmap.New()
		m.SetAutoZoom(true)
		m.SetBoundLatLng(-1, -1, 1, 1)

		got := NewCoordinateAggregator().Aggregate(m)
		assert.Equal(t, []*base.Coordinate{m.Bound().SouthWest, m.Bound().NorthEast}, got)
	})

	t.Run("shared coordinates appear once", func(t *testing.T) {
		m := gmap.New()
		shared := m.Center()
		m.Overlays().AddMarker(overlays.NewMarker(shared))
		m.Overlays().AddCircle(newCircle(t, shared))
		m.Overlays().AddPolyline(overlays.NewPolyline(shared, shared))

		assert.Equal(t, []*base.Coordinate{shared}, NewCoordinateAggregator().Aggregate(m))
	})

	t.Run("substitute collaborators", func(t *testing.T) {
		b := newBound(1, 1, 2, 2)
		w := overlays.NewInfoWindow("")
		a := NewCoordinateAggregator(
			WithBoundAggregator(stubBounds{b}),
			WithInfoWindowAggregator(stubInfoWindows{w}),
		)
		m := gmap.New()
		m.SetAutoZoom(true)

		got := a.Aggregate(m)
		assert.Equal(t, []*base.Coordinate{b.SouthWest, b.NorthEast, w.Position()}, got)
		assert.Equal(t, stubBounds{b}, a.BoundAggregator())
	})

	t.Run("zero value uses default collaborators", func(t *testing.T) {
		var a CoordinateAggregator
		m := gmap.New()
		m.Overlays().AddRectangle(newRectangle(t, nil))
		assert.Len(t, a.Aggregate(m), 3)
		assert.IsType(t, &BoundAggregator{}, a.BoundAggregator())
	})

	t.Run("nil map", func(t *testing.T) {
		a := NewCoordinateAggregator()
		assert.Empty(t, a.Aggregate(nil))
		acc := []*base.Coordinate{base.NewCoordinate(0, 0)}
		assert.Equal(t, acc, a.AggregateMarkers(nil, acc))
	})
}
