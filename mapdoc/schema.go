package mapdoc

// Document is the decoded form of a map document.
//
// The top-level sections declare named objects. Anywhere an object of the
// same kind is expected, {ref: name} points at the named declaration, and
// every reference to one name resolves to the same object:
//
//	coordinates:
//	  paris: {lat: 48.8566, lng: 2.3522}
//	map:
//	  center: {ref: paris}
//	  overlays:
//	    markers:
//	      - position: {ref: paris}
type Document struct {
	Coordinates  map[string]*CoordinateDef  `yaml:"coordinates,omitempty" json:"coordinates,omitempty"`
	Bounds       map[string]*BoundDef       `yaml:"bounds,omitempty" json:"bounds,omitempty"`
	MarkerImages map[string]*MarkerImageDef `yaml:"markerImages,omitempty" json:"markerImages,omitempty"`
	InfoWindows  map[string]*InfoWindowDef  `yaml:"infoWindows,omitempty" json:"infoWindows,omitempty"`
	Map          *MapDef                    `yaml:"map" json:"map"`
}

// CoordinateDef is a coordinate, or a reference to a named one.
type CoordinateDef struct {
	Ref      string   `yaml:"ref,omitempty" json:"ref,omitempty"`
	Variable string   `yaml:"variable,omitempty" json:"variable,omitempty"`
	Lat      *float64 `yaml:"lat,omitempty" json:"lat,omitempty"`
	Lng      *float64 `yaml:"lng,omitempty" json:"lng,omitempty"`
	NoWrap   bool     `yaml:"noWrap,omitempty" json:"noWrap,omitempty"`
}

// BoundDef is a bound given by its corners, or a reference to a named one.
type BoundDef struct {
	Ref       string         `yaml:"ref,omitempty" json:"ref,omitempty"`
	Variable  string         `yaml:"variable,omitempty" json:"variable,omitempty"`
	SouthWest *CoordinateDef `yaml:"southWest,omitempty" json:"southWest,omitempty"`
	NorthEast *CoordinateDef `yaml:"northEast,omitempty" json:"northEast,omitempty"`
}

// PointDef is a pixel position.
type PointDef struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// SizeDef is a pixel or CSS size.
type SizeDef struct {
	Width      float64 `yaml:"width" json:"width"`
	Height     float64 `yaml:"height" json:"height"`
	WidthUnit  string  `yaml:"widthUnit,omitempty" json:"widthUnit,omitempty"`
	HeightUnit string  `yaml:"heightUnit,omitempty" json:"heightUnit,omitempty"`
}

// MarkerImageDef is a marker icon or shadow, or a reference to a named one.
type MarkerImageDef struct {
	Ref        string    `yaml:"ref,omitempty" json:"ref,omitempty"`
	Variable   string    `yaml:"variable,omitempty" json:"variable,omitempty"`
	URL        string    `yaml:"url,omitempty" json:"url,omitempty"`
	Anchor     *PointDef `yaml:"anchor,omitempty" json:"anchor,omitempty"`
	Origin     *PointDef `yaml:"origin,omitempty" json:"origin,omitempty"`
	Size       *SizeDef  `yaml:"size,omitempty" json:"size,omitempty"`
	ScaledSize *SizeDef  `yaml:"scaledSize,omitempty" json:"scaledSize,omitempty"`
}

// MarkerShapeDef is the clickable region of a marker.
type MarkerShapeDef struct {
	Type        string    `yaml:"type" json:"type"`
	Coordinates []float64 `yaml:"coordinates" json:"coordinates"`
}

// InfoWindowDef is an info window, or a reference to a named one.
type InfoWindowDef struct {
	Ref         string         `yaml:"ref,omitempty" json:"ref,omitempty"`
	Variable    string         `yaml:"variable,omitempty" json:"variable,omitempty"`
	Content     string         `yaml:"content,omitempty" json:"content,omitempty"`
	Position    *CoordinateDef `yaml:"position,omitempty" json:"position,omitempty"`
	PixelOffset *SizeDef       `yaml:"pixelOffset,omitempty" json:"pixelOffset,omitempty"`
	Open        bool           `yaml:"open,omitempty" json:"open,omitempty"`
	AutoOpen    *bool          `yaml:"autoOpen,omitempty" json:"autoOpen,omitempty"`
	OpenEvent   string         `yaml:"openEvent,omitempty" json:"openEvent,omitempty"`
	AutoClose   bool           `yaml:"autoClose,omitempty" json:"autoClose,omitempty"`
	Options     map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}

// MapDef is the map itself.
type MapDef struct {
	Variable          string         `yaml:"variable,omitempty" json:"variable,omitempty"`
	HTMLContainerID   string         `yaml:"htmlContainerId,omitempty" json:"htmlContainerId,omitempty"`
	Async             bool           `yaml:"async,omitempty" json:"async,omitempty"`
	AutoZoom          bool           `yaml:"autoZoom,omitempty" json:"autoZoom,omitempty"`
	Center            *CoordinateDef `yaml:"center,omitempty" json:"center,omitempty"`
	Bound             *BoundDef      `yaml:"bound,omitempty" json:"bound,omitempty"`
	MapOptions        map[string]any `yaml:"mapOptions,omitempty" json:"mapOptions,omitempty"`
	StylesheetOptions map[string]any `yaml:"stylesheetOptions,omitempty" json:"stylesheetOptions,omitempty"`
	Controls          *ControlsDef   `yaml:"controls,omitempty" json:"controls,omitempty"`
	Layers            *LayersDef     `yaml:"layers,omitempty" json:"layers,omitempty"`
	Overlays          *OverlaysDef   `yaml:"overlays,omitempty" json:"overlays,omitempty"`
	Libraries         []string       `yaml:"libraries,omitempty" json:"libraries,omitempty"`
	Language          string         `yaml:"language,omitempty" json:"language,omitempty"`
}

// ControlsDef lists the controls to enable. Empty positions and styles take
// the control's default.
type ControlsDef struct {
	MapType     *MapTypeControlDef     `yaml:"mapType,omitempty" json:"mapType,omitempty"`
	OverviewMap *OverviewMapControlDef `yaml:"overviewMap,omitempty" json:"overviewMap,omitempty"`
	Pan         *ControlDef            `yaml:"pan,omitempty" json:"pan,omitempty"`
	Rotate      *ControlDef            `yaml:"rotate,omitempty" json:"rotate,omitempty"`
	Scale       *ControlDef            `yaml:"scale,omitempty" json:"scale,omitempty"`
	StreetView  *ControlDef            `yaml:"streetView,omitempty" json:"streetView,omitempty"`
	Zoom        *ControlDef            `yaml:"zoom,omitempty" json:"zoom,omitempty"`
}

// ControlDef is a positioned control. Style is ignored by controls without one.
type ControlDef struct {
	Position string `yaml:"position,omitempty" json:"position,omitempty"`
	Style    string `yaml:"style,omitempty" json:"style,omitempty"`
}

// MapTypeControlDef is the map type control.
type MapTypeControlDef struct {
	ControlDef `yaml:",inline"`

	MapTypeIDs []string `yaml:"mapTypeIds,omitempty" json:"mapTypeIds,omitempty"`
}

// OverviewMapControlDef is the overview map control.
type OverviewMapControlDef struct {
	Opened bool `yaml:"opened,omitempty" json:"opened,omitempty"`
}

// LayersDef lists the map layers.
type LayersDef struct {
	KML []*KMLLayerDef `yaml:"kml,omitempty" json:"kml,omitempty"`
}

// KMLLayerDef is a KML layer.
type KMLLayerDef struct {
	URL     string         `yaml:"url" json:"url"`
	Options map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}

// OverlaysDef lists the overlays of the map, in insertion order.
type OverlaysDef struct {
	MarkerCluster    *MarkerClusterDef     `yaml:"markerCluster,omitempty" json:"markerCluster,omitempty"`
	InfoWindows      []*InfoWindowDef      `yaml:"infoWindows,omitempty" json:"infoWindows,omitempty"`
	Markers          []*MarkerDef          `yaml:"markers,omitempty" json:"markers,omitempty"`
	Polylines        []*PathDef            `yaml:"polylines,omitempty" json:"polylines,omitempty"`
	EncodedPolylines []*EncodedPolylineDef `yaml:"encodedPolylines,omitempty" json:"encodedPolylines,omitempty"`
	Polygons         []*PathDef            `yaml:"polygons,omitempty" json:"polygons,omitempty"`
	Rectangles       []*RectangleDef       `yaml:"rectangles,omitempty" json:"rectangles,omitempty"`
	Circles          []*CircleDef          `yaml:"circles,omitempty" json:"circles,omitempty"`
	GroundOverlays   []*GroundOverlayDef   `yaml:"groundOverlays,omitempty" json:"groundOverlays,omitempty"`
}

// MarkerClusterDef selects how markers are grouped.
type MarkerClusterDef struct {
	Type    string         `yaml:"type,omitempty" json:"type,omitempty"`
	Options map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}

// MarkerDef is a marker.
type MarkerDef struct {
	Variable   string          `yaml:"variable,omitempty" json:"variable,omitempty"`
	Position   *CoordinateDef  `yaml:"position,omitempty" json:"position,omitempty"`
	Animation  string          `yaml:"animation,omitempty" json:"animation,omitempty"`
	Icon       *MarkerImageDef `yaml:"icon,omitempty" json:"icon,omitempty"`
	Shadow     *MarkerImageDef `yaml:"shadow,omitempty" json:"shadow,omitempty"`
	Shape      *MarkerShapeDef `yaml:"shape,omitempty" json:"shape,omitempty"`
	InfoWindow *InfoWindowDef  `yaml:"infoWindow,omitempty" json:"infoWindow,omitempty"`
	Options    map[string]any  `yaml:"options,omitempty" json:"options,omitempty"`
}

// PathDef is a polyline or polygon.
type PathDef struct {
	Variable    string           `yaml:"variable,omitempty" json:"variable,omitempty"`
	Coordinates []*CoordinateDef `yaml:"coordinates" json:"coordinates"`
	Options     map[string]any   `yaml:"options,omitempty" json:"options,omitempty"`
}

// EncodedPolylineDef is a polyline in the encoded polyline algorithm format.
type EncodedPolylineDef struct {
	Variable string         `yaml:"variable,omitempty" json:"variable,omitempty"`
	Value    string         `yaml:"value" json:"value"`
	Options  map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}

// RectangleDef is a rectangle. A missing bound takes the default one.
type RectangleDef struct {
	Variable string         `yaml:"variable,omitempty" json:"variable,omitempty"`
	Bound    *BoundDef      `yaml:"bound,omitempty" json:"bound,omitempty"`
	Options  map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}

// CircleDef is a circle; the radius is in meters.
type CircleDef struct {
	Variable string         `yaml:"variable,omitempty" json:"variable,omitempty"`
	Center   *CoordinateDef `yaml:"center,omitempty" json:"center,omitempty"`
	Radius   float64        `yaml:"radius" json:"radius"`
	Options  map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}

// GroundOverlayDef is an image laid over a bound.
type GroundOverlayDef struct {
	Variable string         `yaml:"variable,omitempty" json:"variable,omitempty"`
	URL      string         `yaml:"url" json:"url"`
	Bound    *BoundDef      `yaml:"bound,omitempty" json:"bound,omitempty"`
	Options  map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}
