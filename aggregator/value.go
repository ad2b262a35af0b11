package aggregator

import (
	"slices"

	"github.com/erraggy/googlemap/gmap"
)

// Aggregator produces the ordered, deduplicated objects of type T referenced by
// a map.
type Aggregator[T any] interface {
	Aggregate(m *gmap.Map) []T
}

// AggregateValue returns acc with value appended, unless acc already holds it.
// The zero value (a nil pointer) is ignored.
//
// acc is never written to: when value is appended the result uses a new
// backing array, otherwise acc itself is returned.
func AggregateValue[T comparable](value T, acc []T) []T {
	var zero T
	if value == zero || slices.Contains(acc, value) {
		return acc
	}
	return append(slices.Clip(acc), value)
}

// AggregateValues folds AggregateValue over values, in order.
func AggregateValues[T comparable](values, acc []T) []T {
	var zero T
	out := slices.Clip(acc)
	for _, value := range values {
		if value == zero || slices.Contains(out, value) {
			continue
		}
		// The first append copies out of acc; later ones grow our own array.
		out = append(out, value)
	}
	return out
}
