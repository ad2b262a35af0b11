package controls

import (
	"fmt"
	"slices"

	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmerrors"
)

func invalidPosition(entity string, p Position) error {
	return gmerrors.Invalid(gmerrors.ComponentControl, entity, "position", p,
		fmt.Sprintf("the control position can only be: %v", Positions()))
}

// positioned is the anchor shared by every control except the overview map.
type positioned struct {
	position Position
}

// Position returns where the control is anchored.
func (c *positioned) Position() Position { return c.position }

func (c *positioned) setPosition(entity string, p Position) error {
	if !p.IsValid() {
		return invalidPosition(entity, p)
	}
	c.position = p
	return nil
}

// MapTypeControl lets the user switch between map types.
type MapTypeControl struct {
	positioned

	mapTypeIDs []base.MapTypeID
	style      MapTypeControlStyle
}

// NewMapTypeControl creates a map type control offering ids.
func NewMapTypeControl(ids []base.MapTypeID, position Position, style MapTypeControlStyle) (*MapTypeControl, error) {
	c := &MapTypeControl{}
	if err := c.SetMapTypeIDs(ids...); err != nil {
		return nil, err
	}
	if err := c.SetPosition(position); err != nil {
		return nil, err
	}
	if err := c.SetStyle(style); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultMapTypeControl returns a control offering roadmap and satellite at the top right.
func DefaultMapTypeControl() *MapTypeControl {
	return &MapTypeControl{
		positioned: positioned{position: PositionTopRight},
		mapTypeIDs: []base.MapTypeID{base.MapTypeRoadmap, base.MapTypeSatellite},
		style:      MapTypeControlStyleDefault,
	}
}

// MapTypeIDs returns the offered map types.
func (c *MapTypeControl) MapTypeIDs() []base.MapTypeID { return c.mapTypeIDs }

// SetMapTypeIDs replaces the offered map types.
func (c *MapTypeControl) SetMapTypeIDs(ids ...base.MapTypeID) error {
	for _, id := range ids {
		if !id.IsValid() {
			return gmerrors.Invalid(gmerrors.ComponentControl, "map type control", "mapTypeIds", id,
				fmt.Sprintf("the map type id can only be: %v", base.MapTypeIDs()))
		}
	}
	c.mapTypeIDs = append([]base.MapTypeID(nil), ids...)
	return nil
}

// AddMapTypeID offers one more map type. Known ids are not added twice.
func (c *MapTypeControl) AddMapTypeID(id base.MapTypeID) error {
	if !id.IsValid() {
		return gmerrors.Invalid(gmerrors.ComponentControl, "map type control", "mapTypeIds", id,
			fmt.Sprintf("the map type id can only be: %v", base.MapTypeIDs()))
	}
	if slices.Contains(c.mapTypeIDs, id) {
		return nil
	}
	c.mapTypeIDs = append(c.mapTypeIDs, id)
	return nil
}

// SetPosition anchors the control.
func (c *MapTypeControl) SetPosition(p Position) error { return c.setPosition("map type control", p) }

// Style returns the control style.
func (c *MapTypeControl) Style() MapTypeControlStyle { return c.style }

// SetStyle sets the control style.
func (c *MapTypeControl) SetStyle(s MapTypeControlStyle) error {
	if !s.IsValid() {
		return gmerrors.Invalid(gmerrors.ComponentControl, "map type control", "style", s,
			fmt.Sprintf("the map type control style can only be: %v", MapTypeControlStyles()))
	}
	c.style = s
	return nil
}

// OverviewMapControl is the collapsible overview in the bottom right corner.
type OverviewMapControl struct {
	opened bool
}

// NewOverviewMapControl creates an overview map control.
func NewOverviewMapControl(opened bool) *OverviewMapControl {
	return &OverviewMapControl{opened: opened}
}

// IsOpened reports whether the overview starts expanded.
func (c *OverviewMapControl) IsOpened() bool { return c.opened }

// SetOpened sets whether the overview starts expanded.
func (c *OverviewMapControl) SetOpened(opened bool) { c.opened = opened }

// PanControl shows the pan buttons.
type PanControl struct{ positioned }

// NewPanControl creates a pan control.
func NewPanControl(position Position) (*PanControl, error) {
	c := &PanControl{}
	if err := c.SetPosition(position); err != nil {
		return nil, err
	}
	return c, nil
}

// SetPosition anchors the control.
func (c *PanControl) SetPosition(p Position) error { return c.setPosition("pan control", p) }

// RotateControl rotates 45° imagery.
type RotateControl struct{ positioned }

// NewRotateControl creates a rotate control.
func NewRotateControl(position Position) (*RotateControl, error) {
	c := &RotateControl{}
	if err := c.SetPosition(position); err != nil {
		return nil, err
	}
	return c, nil
}

// SetPosition anchors the control.
func (c *RotateControl) SetPosition(p Position) error { return c.setPosition("rotate control", p) }

// ScaleControl shows the map scale.
type ScaleControl struct {
	positioned

	style ScaleControlStyle
}

// NewScaleControl creates a scale control.
func NewScaleControl(position Position, style ScaleControlStyle) (*ScaleControl, error) {
	c := &ScaleControl{}
	if err := c.SetPosition(position); err != nil {
		return nil, err
	}
	if err := c.SetStyle(style); err != nil {
		return nil, err
	}
	return c, nil
}

// SetPosition anchors the control.
func (c *ScaleControl) SetPosition(p Position) error { return c.setPosition("scale control", p) }

// Style returns the control style.
func (c *ScaleControl) Style() ScaleControlStyle { return c.style }

// SetStyle sets the control style.
func (c *ScaleControl) SetStyle(s ScaleControlStyle) error {
	if !s.IsValid() {
		return gmerrors.Invalid(gmerrors.ComponentControl, "scale control", "style", s,
			fmt.Sprintf("the scale control style can only be: %v", ScaleControlStyles()))
	}
	c.style = s
	return nil
}

// StreetViewControl is the pegman used to enter street view.
type StreetViewControl struct{ positioned }

// NewStreetViewControl creates a street view control.
func NewStreetViewControl(position Position) (*StreetViewControl, error) {
	c := &StreetViewControl{}
	if err := c.SetPosition(position); err != nil {
		return nil, err
	}
	return c, nil
}

// SetPosition anchors the control.
func (c *StreetViewControl) SetPosition(p Position) error {
	return c.setPosition("street view control", p)
}

// ZoomControl shows the zoom buttons or slider.
type ZoomControl struct {
	positioned

	style ZoomControlStyle
}

// NewZoomControl creates a zoom control.
func NewZoomControl(position Position, style ZoomControlStyle) (*ZoomControl, error) {
	c := &ZoomControl{}
	if err := c.SetPosition(position); err != nil {
		return nil, err
	}
	if err := c.SetStyle(style); err != nil {
		return nil, err
	}
	return c, nil
}

// SetPosition anchors the control.
func (c *ZoomControl) SetPosition(p Position) error { return c.setPosition("zoom control", p) }

// Style returns the control style.
func (c *ZoomControl) Style() ZoomControlStyle { return c.style }

// SetStyle sets the control style.
func (c *ZoomControl) SetStyle(s ZoomControlStyle) error {
	if !s.IsValid() {
		return gmerrors.Invalid(gmerrors.ComponentControl, "zoom control", "style", s,
			fmt.Sprintf("the zoom control style can only be: %v", ZoomControlStyles()))
	}
	c.style = s
	return nil
}

// Controls holds the controls of a map. The zero value has no control.
type Controls struct {
	mapType     *MapTypeControl
	overviewMap *OverviewMapControl
	pan         *PanControl
	rotate      *RotateControl
	scale       *ScaleControl
	streetView  *StreetViewControl
	zoom        *ZoomControl
}

// HasMapTypeControl reports whether a map type control is set.
func (c *Controls) HasMapTypeControl() bool { return c.mapType != nil }

// MapTypeControl returns the map type control, or nil.
func (c *Controls) MapTypeControl() *MapTypeControl { return c.mapType }

// SetMapTypeControl sets the map type control. Nil removes it.
func (c *Controls) SetMapTypeControl(ctrl *MapTypeControl) { c.mapType = ctrl }

// HasOverviewMapControl reports whether an overview map control is set.
func (c *Controls) HasOverviewMapControl() bool { return c.overviewMap != nil }

// OverviewMapControl returns the overview map control, or nil.
func (c *Controls) OverviewMapControl() *OverviewMapControl { return c.overviewMap }

// SetOverviewMapControl sets the overview map control. Nil removes it.
func (c *Controls) SetOverviewMapControl(ctrl *OverviewMapControl) { c.overviewMap = ctrl }

// HasPanControl reports whether a pan control is set.
func (c *Controls) HasPanControl() bool { return c.pan != nil }

// PanControl returns the pan control, or nil.
func (c *Controls) PanControl() *PanControl { return c.pan }

// SetPanControl sets the pan control. Nil removes it.
func (c *Controls) SetPanControl(ctrl *PanControl) { c.pan = ctrl }

// HasRotateControl reports whether a rotate control is set.
func (c *Controls) HasRotateControl() bool { return c.rotate != nil }

// RotateControl returns the rotate control, or nil.
func (c *Controls) RotateControl() *RotateControl { return c.rotate }

// SetRotateControl sets the rotate control. Nil removes it.
func (c *Controls) SetRotateControl(ctrl *RotateControl) { c.rotate = ctrl }

// HasScaleControl reports whether a scale control is set.
func (c *Controls) HasScaleControl() bool { return c.scale != nil }

// ScaleControl returns the scale control, or nil.
func (c *Controls) ScaleControl() *ScaleControl { return c.scale }

// SetScaleControl sets the scale control. Nil removes it.
func (c *Controls) SetScaleControl(ctrl *ScaleControl) { c.scale = ctrl }

// HasStreetViewControl reports whether a street view control is set.
func (c *Controls) HasStreetViewControl() bool { return c.streetView != nil }

// StreetViewControl returns the street view control, or nil.
func (c *Controls) StreetViewControl() *StreetViewControl { return c.streetView }

// SetStreetViewControl sets the street view control. Nil removes it.
func (c *Controls) SetStreetViewControl(ctrl *StreetViewControl) { c.streetView = ctrl }

// HasZoomControl reports whether a zoom control is set.
func (c *Controls) HasZoomControl() bool { return c.zoom != nil }

// ZoomControl returns the zoom control, or nil.
func (c *Controls) ZoomControl() *ZoomControl { return c.zoom }

// SetZoomControl sets the zoom control. Nil removes it.
func (c *Controls) SetZoomControl(ctrl *ZoomControl) { c.zoom = ctrl }
