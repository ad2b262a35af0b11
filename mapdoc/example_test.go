package mapdoc_test

import (
	"fmt"
	"log"

	"github.com/erraggy/googlemap/aggregator"
	"github.com/erraggy/googlemap/mapdoc"
)

func ExampleLoad() {
	doc := `
coordinates:
  louvre: {lat: 48.8606, lng: 2.3376}
map:
  overlays:
    markers:
      - position: {ref: louvre}
    circles:
      - center: {ref: louvre}
        radius: 250
`
	res, err := mapdoc.Load(mapdoc.WithBytes([]byte(doc)))
	if err != nil {
		log.Fatal(err)
	}

	coords := (&aggregator.CoordinateAggregator{}).Aggregate(res.Map)
	for _, c := range coords {
		name := res.NameOf(c)
		if name == "" {
			name = "(inline)"
		}
		fmt.Printf("%s %g,%g\n", name, c.Latitude, c.Longitude)
	}
	// Output:
	// (inline) 0,0
	// louvre 48.8606,2.3376
}
