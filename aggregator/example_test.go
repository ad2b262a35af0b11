package aggregator_test

import (
	"fmt"

	"github.com/erraggy/googlemap/aggregator"
	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmap"
	"github.com/erraggy/googlemap/overlays"
)

func ExampleCoordinateAggregator() {
	m := gmap.New()
	paris := base.NewCoordinate(48.8566, 2.3522)

	// Two markers sharing one coordinate object.
	m.Overlays().AddMarker(overlays.NewMarker(paris))
	m.Overlays().AddMarker(overlays.NewMarker(paris))

	coords := aggregator.NewCoordinateAggregator().Aggregate(m)
	for _, c := range coords {
		fmt.Printf("%.4f,%.4f\n", c.Latitude, c.Longitude)
	}
	// Output:
	// 0.0000,0.0000
	// 48.8566,2.3522
}

func ExampleCollect() {
	m := gmap.New()
	m.SetAutoZoom(true)

	icon, _ := overlays.NewMarkerImage("https://example.com/pin.png")
	icon.SetSize(base.NewSize(20, 32))
	for _, c := range []*base.Coordinate{base.NewCoordinate(1, 1), base.NewCoordinate(2, 2)} {
		marker := overlays.NewMarker(c)
		_ = marker.SetIcon(icon)
		m.Overlays().AddMarker(marker)
	}

	c := aggregator.Collect(m)
	fmt.Println("coordinates:", len(c.Coordinates))
	fmt.Println("marker images:", len(c.MarkerImages))
	fmt.Println("sizes:", len(c.Sizes))
	// Output:
	// coordinates: 2
	// marker images: 1
	// sizes: 1
}

func ExampleViewport() {
	b, ok := aggregator.Viewport([]*base.Coordinate{
		base.NewCoordinate(48.8566, 2.3522),
		base.NewCoordinate(45.7640, 4.8357),
	})
	fmt.Println(ok)
	fmt.Printf("%.4f,%.4f %.4f,%.4f\n",
		b.SouthWest.Latitude, b.SouthWest.Longitude,
		b.NorthEast.Latitude, b.NorthEast.Longitude)
	// Output:
	// true
	// 45.7640,2.3522 48.8566,4.8357
}
