package aggregator

import (
	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/overlays"
)

// collaborators are the aggregators other aggregators delegate to.
type collaborators struct {
	bounds      Aggregator[*base.Bound]
	infoWindows Aggregator[*overlays.InfoWindow]
}

// Option configures the collaborators of an aggregator.
type Option func(*collaborators)

// WithBoundAggregator sets the aggregator the coordinate aggregator reads
// bounds from. Nil keeps the default.
func WithBoundAggregator(a Aggregator[*base.Bound]) Option {
	return func(c *collaborators) {
		if a != nil {
			c.bounds = a
		}
	}
}

// WithInfoWindowAggregator sets the aggregator the coordinate and size
// aggregators read info windows from. Nil keeps the default.
func WithInfoWindowAggregator(a Aggregator[*overlays.InfoWindow]) Option {
	return func(c *collaborators) {
		if a != nil {
			c.infoWindows = a
		}
	}
}

func newCollaborators(opts []Option) collaborators {
	c := collaborators{}
	for _, opt := range opts {
		opt(&c)
	}
	return c.withDefaults()
}

// withDefaults fills unset collaborators, which makes zero values usable.
func (c collaborators) withDefaults() collaborators {
	if c.bounds == nil {
		c.bounds = &BoundAggregator{}
	}
	if c.infoWindows == nil {
		c.infoWindows = &InfoWindowAggregator{}
	}
	return c
}
