// Package distancematrix models distance matrix requests: travel distance and
// time for every pair of origins and destinations.
package distancematrix

import (
	"github.com/erraggy/googlemap/gmerrors"
	"github.com/erraggy/googlemap/services"
)

// Request asks for the distances between origins and destinations.
type Request struct {
	services.RouteOptions

	origins      []services.Location
	destinations []services.Location
}

// NewRequest creates a request. Empty locations are skipped.
func NewRequest(origins, destinations []services.Location) *Request {
	r := &Request{}
	r.SetOrigins(origins...)
	r.SetDestinations(destinations...)
	return r
}

// HasOrigins reports whether at least one origin is set.
func (r *Request) HasOrigins() bool { return len(r.origins) > 0 }

// Origins returns the origins in insertion order.
func (r *Request) Origins() []services.Location { return r.origins }

// SetOrigins replaces the origins. Empty locations are skipped.
func (r *Request) SetOrigins(origins ...services.Location) {
	r.origins = nil
	for _, l := range origins {
		r.AddOrigin(l)
	}
}

// AddOrigin appends an origin. An empty location is ignored.
func (r *Request) AddOrigin(l services.Location) {
	if l.IsZero() {
		return
	}
	r.origins = append(r.origins, l)
}

// HasDestinations reports whether at least one destination is set.
func (r *Request) HasDestinations() bool { return len(r.destinations) > 0 }

// Destinations returns the destinations in insertion order.
func (r *Request) Destinations() []services.Location { return r.destinations }

// SetDestinations replaces the destinations. Empty locations are skipped.
func (r *Request) SetDestinations(destinations ...services.Location) {
	r.destinations = nil
	for _, l := range destinations {
		r.AddDestination(l)
	}
}

// AddDestination appends a destination. An empty location is ignored.
func (r *Request) AddDestination(l services.Location) {
	if l.IsZero() {
		return
	}
	r.destinations = append(r.destinations, l)
}

// SetTravelMode sets the travel mode. The distance matrix has no transit mode.
func (r *Request) SetTravelMode(mode services.TravelMode) error {
	if mode == services.TravelModeTransit {
		return gmerrors.Invalid(gmerrors.ComponentService, "distance matrix request", "travelMode", mode,
			"the distance matrix does not support the transit travel mode")
	}
	return r.RouteOptions.SetTravelMode(mode)
}

// IsValid reports whether the request can be sent.
func (r *Request) IsValid() bool {
	return r.HasOrigins() && r.HasDestinations() && r.TravelMode() != services.TravelModeTransit
}
