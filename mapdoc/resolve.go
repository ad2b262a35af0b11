package mapdoc

import (
	"fmt"

	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/controls"
	"github.com/erraggy/googlemap/gmap"
	"github.com/erraggy/googlemap/gmerrors"
	"github.com/erraggy/googlemap/layers"
	"github.com/erraggy/googlemap/overlays"
)

// resolver builds the object graph of a document. Named declarations are
// built once, on first reference.
type resolver struct {
	doc    *Document
	source string
	format Format
	logger Logger

	coordinates map[string]*base.Coordinate
	bounds      map[string]*base.Bound
	images      map[string]*overlays.MarkerImage
	windows     map[string]*overlays.InfoWindow

	// names maps every object built from a named declaration to its name.
	names map[any]string
	// variables maps every explicit JavaScript variable to the path declaring it.
	variables map[string]string
}

func newResolver(doc *Document, source string, format Format, logger Logger) *resolver {
	return &resolver{
		doc:         doc,
		source:      source,
		format:      format,
		logger:      logger,
		coordinates: make(map[string]*base.Coordinate),
		bounds:      make(map[string]*base.Bound),
		images:      make(map[string]*overlays.MarkerImage),
		windows:     make(map[string]*overlays.InfoWindow),
		names:       make(map[any]string),
		variables:   make(map[string]string),
	}
}

func (r *resolver) parseError(path, message string) error {
	return &gmerrors.ParseError{
		Path:    r.source,
		Format:  string(r.format),
		Message: path + ": " + message,
	}
}

// nullEntry reports a null element of a list.
func (r *resolver) nullEntry(path string) error {
	return r.parseError(path, "a list entry cannot be null")
}

// variable names v after the variable declared at path. A variable names one
// object only.
func (r *resolver) variable(v *base.Variable, name, path string) error {
	if name == "" {
		return nil
	}
	if first, ok := r.variables[name]; ok {
		return r.parseError(path, fmt.Sprintf("variable %q is already declared at %s", name, first))
	}
	r.variables[name] = path
	v.SetJavascriptVariable(name)
	return nil
}

// named resolves ref in the given section, building the declaration on first use.
// Declarations cannot themselves be references.
func named[D any, T comparable](r *resolver, kind, ref, path string,
	defs map[string]*D, cache map[string]T, refOf func(*D) string,
	build func(*D, string) (T, error),
) (T, error) {
	if v, ok := cache[ref]; ok {
		return v, nil
	}
	var zero T
	def, ok := defs[ref]
	if !ok || def == nil {
		return zero, &gmerrors.ReferenceError{Ref: ref, Kind: kind, Path: path, Message: "no declaration with this name"}
	}
	if refOf(def) != "" {
		return zero, &gmerrors.ReferenceError{
			Ref: ref, Kind: kind, Path: kind + "." + ref,
			Message: "a declaration cannot be a reference",
		}
	}
	v, err := build(def, kind+"."+ref)
	if err != nil {
		return zero, err
	}
	cache[ref] = v
	r.names[v] = ref
	r.logger.Debug("resolved reference", "kind", kind, "ref", ref, "path", path)
	return v, nil
}

func (r *resolver) coordinate(def *CoordinateDef, path string) (*base.Coordinate, error) {
	if def == nil {
		return nil, nil
	}
	if def.Ref != "" {
		return named(r, "coordinates", def.Ref, path, r.doc.Coordinates, r.coordinates,
			func(d *CoordinateDef) string { return d.Ref }, r.inlineCoordinate)
	}
	return r.inlineCoordinate(def, path)
}

func (r *resolver) inlineCoordinate(def *CoordinateDef, path string) (*base.Coordinate, error) {
	if def.Lat == nil || def.Lng == nil {
		return nil, r.parseError(path, "a coordinate needs lat and lng")
	}
	c := base.NewCoordinate(*def.Lat, *def.Lng)
	c.NoWrap = def.NoWrap
	if err := r.variable(&c.Variable, def.Variable, path); err != nil {
		return nil, err
	}
	if !c.IsValid() {
		r.logger.Warn("coordinate out of range", "path", path, "lat", c.Latitude, "lng", c.Longitude)
	}
	return c, nil
}

func (r *resolver) bound(def *BoundDef, path string) (*base.Bound, error) {
	if def == nil {
		return nil, nil
	}
	if def.Ref != "" {
		return named(r, "bounds", def.Ref, path, r.doc.Bounds, r.bounds,
			func(d *BoundDef) string { return d.Ref }, r.inlineBound)
	}
	return r.inlineBound(def, path)
}

func (r *resolver) inlineBound(def *BoundDef, path string) (*base.Bound, error) {
	sw, err := r.coordinate(def.SouthWest, path+".southWest")
	if err != nil {
		return nil, err
	}
	ne, err := r.coordinate(def.NorthEast, path+".northEast")
	if err != nil {
		return nil, err
	}
	b := base.NewBound(sw, ne)
	if err := r.variable(&b.Variable, def.Variable, path); err != nil {
		return nil, err
	}
	return b, nil
}

func point(def *PointDef) *base.Point {
	if def == nil {
		return nil
	}
	return base.NewPoint(def.X, def.Y)
}

func size(def *SizeDef) *base.Size {
	if def == nil {
		return nil
	}
	return base.NewSizeWithUnits(def.Width, def.Height, def.WidthUnit, def.HeightUnit)
}

func (r *resolver) markerImage(def *MarkerImageDef, path string) (*overlays.MarkerImage, error) {
	if def == nil {
		return nil, nil
	}
	if def.Ref != "" {
		return named(r, "markerImages", def.Ref, path, r.doc.MarkerImages, r.images,
			func(d *MarkerImageDef) string { return d.Ref }, r.inlineMarkerImage)
	}
	return r.inlineMarkerImage(def, path)
}

func (r *resolver) inlineMarkerImage(def *MarkerImageDef, path string) (*overlays.MarkerImage, error) {
	img, err := overlays.NewMarkerImage(def.URL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := r.variable(&img.Variable, def.Variable, path); err != nil {
		return nil, err
	}
	img.SetAnchor(point(def.Anchor))
	img.SetOrigin(point(def.Origin))
	img.SetSize(size(def.Size))
	img.SetScaledSize(size(def.ScaledSize))
	return img, nil
}

func (r *resolver) infoWindow(def *InfoWindowDef, path string) (*overlays.InfoWindow, error) {
	if def == nil {
		return nil, nil
	}
	if def.Ref != "" {
		return named(r, "infoWindows", def.Ref, path, r.doc.InfoWindows, r.windows,
			func(d *InfoWindowDef) string { return d.Ref }, r.inlineInfoWindow)
	}
	return r.inlineInfoWindow(def, path)
}

func (r *resolver) inlineInfoWindow(def *InfoWindowDef, path string) (*overlays.InfoWindow, error) {
	w := overlays.NewInfoWindow(def.Content)
	if err := r.variable(&w.Variable, def.Variable, path); err != nil {
		return nil, err
	}
	position, err := r.coordinate(def.Position, path+".position")
	if err != nil {
		return nil, err
	}
	if position != nil {
		w.SetPosition(position)
	}
	w.SetPixelOffset(size(def.PixelOffset))
	w.SetOpen(def.Open)
	if def.AutoOpen != nil {
		w.SetAutoOpen(*def.AutoOpen)
	}
	if def.OpenEvent != "" {
		if err := w.SetOpenEvent(overlays.MouseEvent(def.OpenEvent)); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	w.SetAutoClose(def.AutoClose)
	if err := w.SetOptions(def.Options); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// buildMap builds the map. Auto-zoom and the bound are set before any overlay
// so that overlays are recorded in the bound's extends.
func (r *resolver) buildMap(def *MapDef) (*gmap.Map, error) {
	m := gmap.New()
	if err := r.variable(&m.Variable, def.Variable, "map"); err != nil {
		return nil, err
	}
	if def.HTMLContainerID != "" {
		if err := m.SetHTMLContainerID(def.HTMLContainerID); err != nil {
			return nil, fmt.Errorf("map: %w", err)
		}
	}
	m.SetAsync(def.Async)
	m.SetAutoZoom(def.AutoZoom)

	center, err := r.coordinate(def.Center, "map.center")
	if err != nil {
		return nil, err
	}
	m.SetCenter(center)

	bound, err := r.bound(def.Bound, "map.bound")
	if err != nil {
		return nil, err
	}
	if bound != nil {
		m.SetBound(bound)
	}

	if err := m.SetMapOptions(def.MapOptions); err != nil {
		return nil, fmt.Errorf("map.mapOptions: %w", err)
	}
	if err := m.SetStylesheetOptions(def.StylesheetOptions); err != nil {
		return nil, fmt.Errorf("map.stylesheetOptions: %w", err)
	}
	if len(def.Libraries) > 0 {
		m.SetLibraries(def.Libraries...)
	}
	if def.Language != "" {
		m.SetLanguage(def.Language)
	}

	if err := r.controls(m.Controls(), def.Controls); err != nil {
		return nil, err
	}
	if err := r.layers(m.Layers(), def.Layers); err != nil {
		return nil, err
	}
	if err := r.overlays(m.Overlays(), def.Overlays); err != nil {
		return nil, err
	}
	return m, nil
}

func orDefault[T ~string](value string, def T) T {
	if value == "" {
		return def
	}
	return T(value)
}

func (r *resolver) controls(c *controls.Controls, def *ControlsDef) error {
	if def == nil {
		return nil
	}
	const path = "map.controls"

	if d := def.MapType; d != nil {
		ids := make([]base.MapTypeID, 0, len(d.MapTypeIDs))
		for _, id := range d.MapTypeIDs {
			ids = append(ids, base.MapTypeID(id))
		}
		if len(ids) == 0 {
			ids = controls.DefaultMapTypeControl().MapTypeIDs()
		}
		ctrl, err := controls.NewMapTypeControl(ids,
			orDefault(d.Position, controls.PositionTopRight),
			orDefault(d.Style, controls.MapTypeControlStyleDefault))
		if err != nil {
			return fmt.Errorf("%s.mapType: %w", path, err)
		}
		c.SetMapTypeControl(ctrl)
	}
	if d := def.OverviewMap; d != nil {
		c.SetOverviewMapControl(controls.NewOverviewMapControl(d.Opened))
	}
	if d := def.Pan; d != nil {
		ctrl, err := controls.NewPanControl(orDefault(d.Position, controls.PositionTopLeft))
		if err != nil {
			return fmt.Errorf("%s.pan: %w", path, err)
		}
		c.SetPanControl(ctrl)
	}
	if d := def.Rotate; d != nil {
		ctrl, err := controls.NewRotateControl(orDefault(d.Position, controls.PositionTopLeft))
		if err != nil {
			return fmt.Errorf("%s.rotate: %w", path, err)
		}
		c.SetRotateControl(ctrl)
	}
	if d := def.Scale; d != nil {
		ctrl, err := controls.NewScaleControl(
			orDefault(d.Position, controls.PositionBottomLeft),
			orDefault(d.Style, controls.ScaleControlStyleDefault))
		if err != nil {
			return fmt.Errorf("%s.scale: %w", path, err)
		}
		c.SetScaleControl(ctrl)
	}
	if d := def.StreetView; d != nil {
		ctrl, err := controls.NewStreetViewControl(orDefault(d.Position, controls.PositionTopLeft))
		if err != nil {
			return fmt.Errorf("%s.streetView: %w", path, err)
		}
		c.SetStreetViewControl(ctrl)
	}
	if d := def.Zoom; d != nil {
		ctrl, err := controls.NewZoomControl(
			orDefault(d.Position, controls.PositionTopLeft),
			orDefault(d.Style, controls.ZoomControlStyleDefault))
		if err != nil {
			return fmt.Errorf("%s.zoom: %w", path, err)
		}
		c.SetZoomControl(ctrl)
	}
	return nil
}

func (r *resolver) layers(l *layers.Layers, def *LayersDef) error {
	if def == nil {
		return nil
	}
	for i, d := range def.KML {
		p := fmt.Sprintf("map.layers.kml[%d]", i)
		if d == nil {
			return r.nullEntry(p)
		}
		layer, err := layers.NewKMLLayer(d.URL, d.Options)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		l.AddKMLLayer(layer)
	}
	return nil
}

func (r *resolver) overlays(o *overlays.Overlays, def *OverlaysDef) error {
	if def == nil {
		return nil
	}
	const path = "map.overlays"

	if d := def.MarkerCluster; d != nil {
		cluster := overlays.NewMarkerCluster()
		if d.Type != "" {
			if err := cluster.SetType(overlays.MarkerClusterType(d.Type)); err != nil {
				return fmt.Errorf("%s.markerCluster: %w", path, err)
			}
		}
		if err := cluster.SetOptions(d.Options); err != nil {
			return fmt.Errorf("%s.markerCluster: %w", path, err)
		}
		o.SetMarkerCluster(cluster)
	}

	for i, d := range def.InfoWindows {
		p := fmt.Sprintf("%s.infoWindows[%d]", path, i)
		if d == nil {
			return r.nullEntry(p)
		}
		w, err := r.infoWindow(d, p)
		if err != nil {
			return err
		}
		o.AddInfoWindow(w)
	}
	for i, d := range def.Markers {
		p := fmt.Sprintf("%s.markers[%d]", path, i)
		if d == nil {
			return r.nullEntry(p)
		}
		m, err := r.marker(d, p)
		if err != nil {
			return err
		}
		o.AddMarker(m)
	}
	for i, d := range def.Polylines {
		p := fmt.Sprintf("%s.polylines[%d]", path, i)
		if d == nil {
			return r.nullEntry(p)
		}
		coordinates, options, err := r.path(d, p)
		if err != nil {
			return err
		}
		line := overlays.NewPolyline(coordinates...)
		if err := r.finish(&line.Variable, &line.Options, d.Variable, options, p); err != nil {
			return err
		}
		o.AddPolyline(line)
	}
	for i, d := range def.EncodedPolylines {
		p := fmt.Sprintf("%s.encodedPolylines[%d]", path, i)
		if d == nil {
			return r.nullEntry(p)
		}
		line := overlays.NewEncodedPolyline(d.Value)
		if err := r.finish(&line.Variable, &line.Options, d.Variable, d.Options, p); err != nil {
			return err
		}
		o.AddEncodedPolyline(line)
	}
	for i, d := range def.Polygons {
		p := fmt.Sprintf("%s.polygons[%d]", path, i)
		if d == nil {
			return r.nullEntry(p)
		}
		coordinates, options, err := r.path(d, p)
		if err != nil {
			return err
		}
		polygon := overlays.NewPolygon(coordinates...)
		if err := r.finish(&polygon.Variable, &polygon.Options, d.Variable, options, p); err != nil {
			return err
		}
		o.AddPolygon(polygon)
	}
	for i, d := range def.Rectangles {
		p := fmt.Sprintf("%s.rectangles[%d]", path, i)
		if d == nil {
			return r.nullEntry(p)
		}
		b, err := r.bound(d.Bound, p+".bound")
		if err != nil {
			return err
		}
		rect, err := overlays.NewRectangle(b)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		if err := r.finish(&rect.Variable, &rect.Options, d.Variable, d.Options, p); err != nil {
			return err
		}
		o.AddRectangle(rect)
	}
	for i, d := range def.Circles {
		p := fmt.Sprintf("%s.circles[%d]", path, i)
		if d == nil {
			return r.nullEntry(p)
		}
		center, err := r.coordinate(d.Center, p+".center")
		if err != nil {
			return err
		}
		circle, err := overlays.NewCircle(center, d.Radius)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		if err := r.finish(&circle.Variable, &circle.Options, d.Variable, d.Options, p); err != nil {
			return err
		}
		o.AddCircle(circle)
	}
	for i, d := range def.GroundOverlays {
		p := fmt.Sprintf("%s.groundOverlays[%d]", path, i)
		if d == nil {
			return r.nullEntry(p)
		}
		b, err := r.bound(d.Bound, p+".bound")
		if err != nil {
			return err
		}
		g, err := overlays.NewGroundOverlay(d.URL, b)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		if err := r.finish(&g.Variable, &g.Options, d.Variable, d.Options, p); err != nil {
			return err
		}
		o.AddGroundOverlay(g)
	}
	return nil
}

// finish applies the variable name and options shared by every overlay.
func (r *resolver) finish(v *base.Variable, o *base.Options, variable string, options map[string]any, path string) error {
	if err := r.variable(v, variable, path); err != nil {
		return err
	}
	if err := o.SetOptions(options); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (r *resolver) path(def *PathDef, path string) ([]*base.Coordinate, map[string]any, error) {
	coordinates := make([]*base.Coordinate, 0, len(def.Coordinates))
	for i, d := range def.Coordinates {
		p := fmt.Sprintf("%s.coordinates[%d]", path, i)
		if d == nil {
			return nil, nil, r.nullEntry(p)
		}
		c, err := r.coordinate(d, p)
		if err != nil {
			return nil, nil, err
		}
		coordinates = append(coordinates, c)
	}
	return coordinates, def.Options, nil
}

func (r *resolver) marker(def *MarkerDef, path string) (*overlays.Marker, error) {
	if def == nil {
		return nil, nil
	}
	position, err := r.coordinate(def.Position, path+".position")
	if err != nil {
		return nil, err
	}
	m := overlays.NewMarker(position)
	if err := r.finish(&m.Variable, &m.Options, def.Variable, def.Options, path); err != nil {
		return nil, err
	}
	if err := m.SetAnimation(overlays.Animation(def.Animation)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	icon, err := r.markerImage(def.Icon, path+".icon")
	if err != nil {
		return nil, err
	}
	if err := m.SetIcon(icon); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	shadow, err := r.markerImage(def.Shadow, path+".shadow")
	if err != nil {
		return nil, err
	}
	if err := m.SetShadow(shadow); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if def.Shape != nil {
		shape, err := overlays.NewMarkerShape(overlays.ShapeType(def.Shape.Type), def.Shape.Coordinates...)
		if err != nil {
			return nil, fmt.Errorf("%s.shape: %w", path, err)
		}
		if err := m.SetShape(shape); err != nil {
			return nil, fmt.Errorf("%s.shape: %w", path, err)
		}
	}

	w, err := r.infoWindow(def.InfoWindow, path+".infoWindow")
	if err != nil {
		return nil, err
	}
	m.SetInfoWindow(w)
	return m, nil
}
