package services

import (
	"fmt"
	"slices"

	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmerrors"
)

// TravelMode is the means of transport of a route.
type TravelMode string

const (
	TravelModeBicycling TravelMode = "BICYCLING"
	TravelModeDriving   TravelMode = "DRIVING"
	TravelModeTransit   TravelMode = "TRANSIT"
	TravelModeWalking   TravelMode = "WALKING"
)

// TravelModes returns every known travel mode.
func TravelModes() []TravelMode {
	return []TravelMode{TravelModeBicycling, TravelModeDriving, TravelModeTransit, TravelModeWalking}
}

// IsValid reports whether m is a known travel mode.
func (m TravelMode) IsValid() bool { return slices.Contains(TravelModes(), m) }

// UnitSystem is the unit system distances are reported in.
type UnitSystem string

const (
	UnitSystemImperial UnitSystem = "IMPERIAL"
	UnitSystemMetric   UnitSystem = "METRIC"
)

// UnitSystems returns every known unit system.
func UnitSystems() []UnitSystem {
	return []UnitSystem{UnitSystemImperial, UnitSystemMetric}
}

// IsValid reports whether u is a known unit system.
func (u UnitSystem) IsValid() bool { return slices.Contains(UnitSystems(), u) }

// Location is a place given either as a free-form address or as a coordinate.
// The zero value is empty.
type Location struct {
	address    string
	coordinate *base.Coordinate
}

// LocationFromAddress returns a location for a free-form address.
func LocationFromAddress(address string) Location {
	return Location{address: address}
}

// LocationFromCoordinate returns a location for a coordinate.
func LocationFromCoordinate(c *base.Coordinate) Location {
	return Location{coordinate: c}
}

// IsZero reports whether the location has neither an address nor a coordinate.
func (l Location) IsZero() bool { return l.address == "" && l.coordinate == nil }

// Address returns the address, or "" for a coordinate location.
func (l Location) Address() string { return l.address }

// Coordinate returns the coordinate, or nil for an address location.
func (l Location) Coordinate() *base.Coordinate { return l.coordinate }

// String returns the address, or "lat,lng" for a coordinate location.
func (l Location) String() string {
	if l.coordinate != nil {
		return fmt.Sprintf("%g,%g", l.coordinate.Latitude, l.coordinate.Longitude)
	}
	return l.address
}

// Locale is the region bias and result language of a request.
// Empty values mean "not set".
type Locale struct {
	region   string
	language string
}

// HasRegion reports whether a region is set.
func (l *Locale) HasRegion() bool { return l.region != "" }

// Region returns the ccTLD region code, e.g. "fr".
func (l *Locale) Region() string { return l.region }

// SetRegion sets the region code, which must have 2 characters. "" unsets it.
func (l *Locale) SetRegion(region string) error {
	if region != "" && len(region) != 2 {
		return gmerrors.Invalid(gmerrors.ComponentService, "request", "region", region,
			"the region must be a 2 characters code")
	}
	l.region = region
	return nil
}

// HasLanguage reports whether a language is set.
func (l *Locale) HasLanguage() bool { return l.language != "" }

// Language returns the result language, e.g. "en" or "pt-BR".
func (l *Locale) Language() string { return l.language }

// SetLanguage sets the language, which must have 2 or 5 characters. "" unsets it.
func (l *Locale) SetLanguage(language string) error {
	if language != "" && len(language) != 2 && len(language) != 5 {
		return gmerrors.Invalid(gmerrors.ComponentService, "request", "language", language,
			"the language must be a 2 or 5 characters code")
	}
	l.language = language
	return nil
}

// RouteOptions are the options shared by the directions and distance matrix
// requests. Unset flags are left to the service defaults.
type RouteOptions struct {
	Locale

	avoidHighways *bool
	avoidTolls    *bool
	travelMode    TravelMode
	unitSystem    UnitSystem
	sensor        bool
}

// HasAvoidHighways reports whether the avoid highways flag is set.
func (o *RouteOptions) HasAvoidHighways() bool { return o.avoidHighways != nil }

// AvoidHighways returns the avoid highways flag, false when unset.
func (o *RouteOptions) AvoidHighways() bool { return o.avoidHighways != nil && *o.avoidHighways }

// SetAvoidHighways sets the avoid highways flag.
func (o *RouteOptions) SetAvoidHighways(avoid bool) { o.avoidHighways = &avoid }

// HasAvoidTolls reports whether the avoid tolls flag is set.
func (o *RouteOptions) HasAvoidTolls() bool { return o.avoidTolls != nil }

// AvoidTolls returns the avoid tolls flag, false when unset.
func (o *RouteOptions) AvoidTolls() bool { return o.avoidTolls != nil && *o.avoidTolls }

// SetAvoidTolls sets the avoid tolls flag.
func (o *RouteOptions) SetAvoidTolls(avoid bool) { o.avoidTolls = &avoid }

// HasTravelMode reports whether a travel mode is set.
func (o *RouteOptions) HasTravelMode() bool { return o.travelMode != "" }

// TravelMode returns the travel mode, or "" when unset.
func (o *RouteOptions) TravelMode() TravelMode { return o.travelMode }

// SetTravelMode sets the travel mode. "" unsets it.
func (o *RouteOptions) SetTravelMode(mode TravelMode) error {
	if mode != "" && !mode.IsValid() {
		return gmerrors.Invalid(gmerrors.ComponentService, "request", "travelMode", mode,
			fmt.Sprintf("the travel mode can only be: %v", TravelModes()))
	}
	o.travelMode = mode
	return nil
}

// HasUnitSystem reports whether a unit system is set.
func (o *RouteOptions) HasUnitSystem() bool { return o.unitSystem != "" }

// UnitSystem returns the unit system, or "" when unset.
func (o *RouteOptions) UnitSystem() UnitSystem { return o.unitSystem }

// SetUnitSystem sets the unit system. "" unsets it.
func (o *RouteOptions) SetUnitSystem(u UnitSystem) error {
	if u != "" && !u.IsValid() {
		return gmerrors.Invalid(gmerrors.ComponentService, "request", "unitSystem", u,
			fmt.Sprintf("the unit system can only be: %v", UnitSystems()))
	}
	o.unitSystem = u
	return nil
}

// HasSensor reports whether the request comes from a device with a location sensor.
func (o *RouteOptions) HasSensor() bool { return o.sensor }

// SetSensor sets the sensor flag.
func (o *RouteOptions) SetSensor(sensor bool) { o.sensor = sensor }
