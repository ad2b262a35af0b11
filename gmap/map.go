package gmap

import (
	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/controls"
	"github.com/erraggy/googlemap/gmerrors"
	"github.com/erraggy/googlemap/layers"
	"github.com/erraggy/googlemap/overlays"
)

// Default values of a new map.
const (
	DefaultHTMLContainerID = "map_canvas"
	DefaultLanguage        = "en"
	DefaultZoom            = 3
	DefaultWidth           = "300px"
	DefaultHeight          = "300px"
)

// Map is a Google map with everything drawn on it.
type Map struct {
	base.Variable

	htmlContainerID   string
	async             bool
	autoZoom          bool
	center            *base.Coordinate
	bound             *base.Bound
	mapOptions        optionSet
	stylesheetOptions optionSet
	controls          *controls.Controls
	overlays          *overlays.Overlays
	layers            *layers.Layers
	libraries         []string
	language          string
}

// New creates a map centered on 0,0 with the default options.
func New() *Map {
	m := &Map{
		Variable:          base.NewVariable("map_"),
		htmlContainerID:   DefaultHTMLContainerID,
		center:            base.NewCoordinate(0, 0),
		bound:             base.NewBound(nil, nil),
		mapOptions:        optionSet{entity: "map option"},
		stylesheetOptions: optionSet{entity: "stylesheet option"},
		controls:          &controls.Controls{},
		layers:            &layers.Layers{},
		language:          DefaultLanguage,
	}
	m.overlays = overlays.New(m)
	// Defaults cannot fail: the names are non-empty.
	_ = m.mapOptions.set("mapTypeId", base.MapTypeRoadmap)
	_ = m.mapOptions.set("zoom", DefaultZoom)
	_ = m.stylesheetOptions.set("width", DefaultWidth)
	_ = m.stylesheetOptions.set("height", DefaultHeight)
	return m
}

// HTMLContainerID returns the id of the HTML element the map is drawn in.
func (m *Map) HTMLContainerID() string { return m.htmlContainerID }

// SetHTMLContainerID sets the id of the HTML element the map is drawn in.
func (m *Map) SetHTMLContainerID(id string) error {
	if id == "" {
		return gmerrors.Invalid(gmerrors.ComponentMap, "map", "htmlContainerId", id,
			"the html container id of a map must not be empty")
	}
	m.htmlContainerID = id
	return nil
}

// IsAsync reports whether the Google Maps script is loaded asynchronously.
func (m *Map) IsAsync() bool { return m.async }

// SetAsync sets whether the Google Maps script is loaded asynchronously.
func (m *Map) SetAsync(async bool) { m.async = async }

// IsAutoZoom reports whether the viewport fits the overlays instead of the
// center and zoom.
func (m *Map) IsAutoZoom() bool { return m.autoZoom }

// SetAutoZoom enables or disables auto-zoom. Overlays added before it is
// enabled are not recorded in the bound.
func (m *Map) SetAutoZoom(autoZoom bool) { m.autoZoom = autoZoom }

// Center returns the map center.
func (m *Map) Center() *base.Coordinate { return m.center }

// SetCenter sets the map center. Nil is ignored.
func (m *Map) SetCenter(c *base.Coordinate) {
	if c == nil {
		return
	}
	m.center = c
}

// SetCenterLatLng centers the map on a new coordinate.
func (m *Map) SetCenterLatLng(latitude, longitude float64, noWrap bool) {
	c := base.NewCoordinate(latitude, longitude)
	c.NoWrap = noWrap
	m.center = c
}

// Bound returns the map bound. It is never nil.
func (m *Map) Bound() *base.Bound { return m.bound }

// SetBound replaces the map bound. Nil clears the corners of the current one.
func (m *Map) SetBound(b *base.Bound) {
	if b == nil {
		m.ClearBound()
		return
	}
	m.bound = b
}

// SetBoundCoordinates sets both corners of the current bound.
func (m *Map) SetBoundCoordinates(southWest, northEast *base.Coordinate) error {
	if southWest == nil || northEast == nil {
		return gmerrors.Invalid(gmerrors.ComponentMap, "map", "bound", nil,
			"a map bound needs a south west and a north east coordinate")
	}
	m.bound.SouthWest = southWest
	m.bound.NorthEast = northEast
	return nil
}

// SetBoundLatLng sets both corners of the current bound to new coordinates.
func (m *Map) SetBoundLatLng(southWestLat, southWestLng, northEastLat, northEastLng float64) {
	m.bound.SouthWest = base.NewCoordinate(southWestLat, southWestLng)
	m.bound.NorthEast = base.NewCoordinate(northEastLat, northEastLng)
}

// ClearBound removes both corners of the current bound. Its extends are kept.
func (m *Map) ClearBound() {
	m.bound.SouthWest = nil
	m.bound.NorthEast = nil
}

// HasMapOption reports whether the map option is set.
func (m *Map) HasMapOption(name string) bool { return m.mapOptions.has(name) }

// MapOptions returns a copy of the map options.
func (m *Map) MapOptions() map[string]any { return m.mapOptions.all() }

// SetMapOptions sets every given map option.
func (m *Map) SetMapOptions(options map[string]any) error { return m.mapOptions.setAll(options) }

// MapOption returns the value of a map option.
func (m *Map) MapOption(name string) (any, error) { return m.mapOptions.get(name) }

// SetMapOption sets a map option. The name must not be empty.
func (m *Map) SetMapOption(name string, value any) error { return m.mapOptions.set(name, value) }

// RemoveMapOption removes a map option that must exist.
func (m *Map) RemoveMapOption(name string) error { return m.mapOptions.remove(name) }

// HasStylesheetOption reports whether the stylesheet option is set.
func (m *Map) HasStylesheetOption(name string) bool { return m.stylesheetOptions.has(name) }

// StylesheetOptions returns a copy of the CSS properties of the container.
func (m *Map) StylesheetOptions() map[string]any { return m.stylesheetOptions.all() }

// SetStylesheetOptions sets every given stylesheet option.
func (m *Map) SetStylesheetOptions(options map[string]any) error {
	return m.stylesheetOptions.setAll(options)
}

// StylesheetOption returns the value of a stylesheet option.
func (m *Map) StylesheetOption(name string) (any, error) { return m.stylesheetOptions.get(name) }

// SetStylesheetOption sets a stylesheet option. The name must not be empty.
func (m *Map) SetStylesheetOption(name string, value any) error {
	return m.stylesheetOptions.set(name, value)
}

// RemoveStylesheetOption removes a stylesheet option that must exist.
func (m *Map) RemoveStylesheetOption(name string) error { return m.stylesheetOptions.remove(name) }

// Controls returns the map controls.
func (m *Map) Controls() *controls.Controls { return m.controls }

// SetControls replaces the map controls. Nil is ignored.
func (m *Map) SetControls(c *controls.Controls) {
	if c == nil {
		return
	}
	m.controls = c
}

// Overlays returns the overlays owned by the map.
func (m *Map) Overlays() *overlays.Overlays { return m.overlays }

// Layers returns the map layers.
func (m *Map) Layers() *layers.Layers { return m.layers }

// SetLayers replaces the map layers. Nil is ignored.
func (m *Map) SetLayers(l *layers.Layers) {
	if l == nil {
		return
	}
	m.layers = l
}

// HasLibraries reports whether extra Google Maps libraries are requested.
func (m *Map) HasLibraries() bool { return len(m.libraries) > 0 }

// Libraries returns the extra Google Maps libraries (e.g. "places").
func (m *Map) Libraries() []string { return m.libraries }

// SetLibraries replaces the extra Google Maps libraries.
func (m *Map) SetLibraries(libraries ...string) {
	m.libraries = append([]string(nil), libraries...)
}

// Language returns the language the map is rendered in.
func (m *Map) Language() string { return m.language }

// SetLanguage sets the language the map is rendered in.
func (m *Map) SetLanguage(language string) { m.language = language }
