// Package directions models directions requests: a route from an origin to a
// destination through optional waypoints.
package directions

import (
	"time"

	"github.com/erraggy/googlemap/services"
)

// Waypoint is an intermediate location of a route.
type Waypoint struct {
	Location services.Location
	// Stopover splits the route in two legs at the waypoint.
	Stopover bool
}

// NewWaypoint creates a waypoint.
func NewWaypoint(location services.Location, stopover bool) *Waypoint {
	return &Waypoint{Location: location, Stopover: stopover}
}

// IsValid reports whether the waypoint has a location.
func (w *Waypoint) IsValid() bool { return w != nil && !w.Location.IsZero() }

// Request asks for the routes between two locations.
type Request struct {
	services.RouteOptions

	origin                   services.Location
	destination              services.Location
	waypoints                []*Waypoint
	optimizeWaypoints        *bool
	provideRouteAlternatives *bool
	departureTime            time.Time
	arrivalTime              time.Time
}

// NewRequest creates a request from origin to destination.
func NewRequest(origin, destination services.Location) *Request {
	return &Request{origin: origin, destination: destination}
}

// Origin returns the start of the route.
func (r *Request) Origin() services.Location { return r.origin }

// SetOrigin sets the start of the route.
func (r *Request) SetOrigin(l services.Location) { r.origin = l }

// Destination returns the end of the route.
func (r *Request) Destination() services.Location { return r.destination }

// SetDestination sets the end of the route.
func (r *Request) SetDestination(l services.Location) { r.destination = l }

// HasWaypoints reports whether the route goes through waypoints.
func (r *Request) HasWaypoints() bool { return len(r.waypoints) > 0 }

// Waypoints returns the waypoints in route order.
func (r *Request) Waypoints() []*Waypoint { return r.waypoints }

// SetWaypoints replaces the waypoints.
func (r *Request) SetWaypoints(waypoints ...*Waypoint) {
	r.waypoints = append([]*Waypoint(nil), waypoints...)
}

// AddWaypoint appends a waypoint.
func (r *Request) AddWaypoint(w *Waypoint) { r.waypoints = append(r.waypoints, w) }

// HasOptimizeWaypoints reports whether the optimize waypoints flag is set.
func (r *Request) HasOptimizeWaypoints() bool { return r.optimizeWaypoints != nil }

// OptimizeWaypoints returns whether the service may reorder waypoints.
func (r *Request) OptimizeWaypoints() bool {
	return r.optimizeWaypoints != nil && *r.optimizeWaypoints
}

// SetOptimizeWaypoints sets whether the service may reorder waypoints.
func (r *Request) SetOptimizeWaypoints(optimize bool) { r.optimizeWaypoints = &optimize }

// HasProvideRouteAlternatives reports whether the alternatives flag is set.
func (r *Request) HasProvideRouteAlternatives() bool { return r.provideRouteAlternatives != nil }

// ProvideRouteAlternatives returns whether more than one route is requested.
func (r *Request) ProvideRouteAlternatives() bool {
	return r.provideRouteAlternatives != nil && *r.provideRouteAlternatives
}

// SetProvideRouteAlternatives sets whether more than one route is requested.
func (r *Request) SetProvideRouteAlternatives(provide bool) { r.provideRouteAlternatives = &provide }

// HasDepartureTime reports whether a departure time is set.
func (r *Request) HasDepartureTime() bool { return !r.departureTime.IsZero() }

// DepartureTime returns the departure time, zero when unset.
func (r *Request) DepartureTime() time.Time { return r.departureTime }

// SetDepartureTime sets the departure time. The zero time unsets it.
func (r *Request) SetDepartureTime(t time.Time) { r.departureTime = t }

// HasArrivalTime reports whether an arrival time is set.
func (r *Request) HasArrivalTime() bool { return !r.arrivalTime.IsZero() }

// ArrivalTime returns the arrival time, zero when unset.
func (r *Request) ArrivalTime() time.Time { return r.arrivalTime }

// SetArrivalTime sets the arrival time. The zero time unsets it.
func (r *Request) SetArrivalTime(t time.Time) { r.arrivalTime = t }

// IsValid reports whether the request can be sent: it needs an origin, a
// destination and valid waypoints. Transit requests need a departure or
// arrival time.
func (r *Request) IsValid() bool {
	if r.origin.IsZero() || r.destination.IsZero() {
		return false
	}
	for _, w := range r.waypoints {
		if !w.IsValid() {
			return false
		}
	}
	if r.TravelMode() == services.TravelModeTransit {
		return r.HasDepartureTime() || r.HasArrivalTime()
	}
	return true
}
