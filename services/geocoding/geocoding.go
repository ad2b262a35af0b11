// Package geocoding models geocoder requests: an address to look up
// (geocoding) or a coordinate to describe (reverse geocoding).
package geocoding

import (
	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/services"
)

// request holds what address and coordinate requests share.
type request struct {
	services.Locale

	bound  *base.Bound
	sensor bool
}

// HasBound reports whether results are biased towards a bound.
func (r *request) HasBound() bool { return r.bound != nil }

// Bound returns the viewport results are biased towards, or nil.
func (r *request) Bound() *base.Bound { return r.bound }

// SetBound biases results towards a viewport. Nil removes the bias.
func (r *request) SetBound(b *base.Bound) { r.bound = b }

// HasSensor reports whether the request comes from a device with a location sensor.
func (r *request) HasSensor() bool { return r.sensor }

// SetSensor sets the sensor flag.
func (r *request) SetSensor(sensor bool) { r.sensor = sensor }

// AddressRequest looks up the coordinates of an address.
type AddressRequest struct {
	request

	address string
}

// NewAddressRequest creates a request for address.
func NewAddressRequest(address string) *AddressRequest {
	return &AddressRequest{address: address}
}

// HasAddress reports whether an address is set.
func (r *AddressRequest) HasAddress() bool { return r.address != "" }

// Address returns the address to look up.
func (r *AddressRequest) Address() string { return r.address }

// SetAddress sets the address to look up.
func (r *AddressRequest) SetAddress(address string) { r.address = address }

// IsValid reports whether the request can be sent.
func (r *AddressRequest) IsValid() bool { return r.HasAddress() }

// CoordinateRequest looks up the addresses at a coordinate.
type CoordinateRequest struct {
	request

	coordinate *base.Coordinate
}

// NewCoordinateRequest creates a request for c.
func NewCoordinateRequest(c *base.Coordinate) *CoordinateRequest {
	return &CoordinateRequest{coordinate: c}
}

// HasCoordinate reports whether a coordinate is set.
func (r *CoordinateRequest) HasCoordinate() bool { return r.coordinate != nil }

// Coordinate returns the coordinate to describe.
func (r *CoordinateRequest) Coordinate() *base.Coordinate { return r.coordinate }

// SetCoordinate sets the coordinate to describe.
func (r *CoordinateRequest) SetCoordinate(c *base.Coordinate) { r.coordinate = c }

// IsValid reports whether the request can be sent.
func (r *CoordinateRequest) IsValid() bool { return r.HasCoordinate() }
