package overlays

import "slices"

// Animation is a marker animation.
type Animation string

const (
	AnimationBounce Animation = "bounce"
	AnimationDrop   Animation = "drop"
)

// Animations returns every known marker animation.
func Animations() []Animation {
	return []Animation{AnimationBounce, AnimationDrop}
}

// MouseEvent is a DOM mouse event an info window can be opened on.
type MouseEvent string

const (
	MouseEventClick     MouseEvent = "click"
	MouseEventDblClick  MouseEvent = "dblclick"
	MouseEventMouseUp   MouseEvent = "mouseup"
	MouseEventMouseDown MouseEvent = "mousedown"
	MouseEventMouseOver MouseEvent = "mouseover"
	MouseEventMouseOut  MouseEvent = "mouseout"
)

// MouseEvents returns every known mouse event.
func MouseEvents() []MouseEvent {
	return []MouseEvent{
		MouseEventClick, MouseEventDblClick,
		MouseEventMouseUp, MouseEventMouseDown,
		MouseEventMouseOver, MouseEventMouseOut,
	}
}

// IsValid reports whether e is a known mouse event.
func (e MouseEvent) IsValid() bool {
	return slices.Contains(MouseEvents(), e)
}

// ShapeType is the geometry of a marker's clickable region.
type ShapeType string

const (
	ShapeCircle ShapeType = "circle"
	ShapePoly   ShapeType = "poly"
	ShapeRect   ShapeType = "rect"
)

// MarkerClusterType selects how markers are grouped when rendered.
type MarkerClusterType string

const (
	// MarkerClusterDefault renders every marker individually.
	MarkerClusterDefault MarkerClusterType = "default"
	// MarkerClusterMarkerCluster groups nearby markers with the MarkerClusterer library.
	MarkerClusterMarkerCluster MarkerClusterType = "marker_cluster"
)
