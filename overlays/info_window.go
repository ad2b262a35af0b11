package overlays

import (
	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmerrors"
)

// InfoWindow is a popup bubble, either standalone at a position or attached
// to a marker.
type InfoWindow struct {
	base.Variable
	base.Options

	position    *base.Coordinate
	pixelOffset *base.Size
	content     string
	open        bool
	autoOpen    bool
	openEvent   MouseEvent
	autoClose   bool
}

// NewInfoWindow creates a closed info window that auto-opens on click.
func NewInfoWindow(content string) *InfoWindow {
	return &InfoWindow{
		Variable:  base.NewVariable("info_window_"),
		position:  base.NewCoordinate(0, 0),
		content:   content,
		autoOpen:  true,
		openEvent: MouseEventClick,
	}
}

// ExtendableKind implements base.Extendable.
func (w *InfoWindow) ExtendableKind() string { return "info_window" }

// Position returns where a standalone info window is anchored.
func (w *InfoWindow) Position() *base.Coordinate { return w.position }

// SetPosition sets the anchor position.
func (w *InfoWindow) SetPosition(c *base.Coordinate) { w.position = c }

// HasPixelOffset reports whether a pixel offset is set.
func (w *InfoWindow) HasPixelOffset() bool { return w.pixelOffset != nil }

// PixelOffset returns the offset of the bubble tip, or nil.
func (w *InfoWindow) PixelOffset() *base.Size { return w.pixelOffset }

// SetPixelOffset sets the pixel offset. Nil removes it.
func (w *InfoWindow) SetPixelOffset(s *base.Size) { w.pixelOffset = s }

// Content returns the HTML content.
func (w *InfoWindow) Content() string { return w.content }

// SetContent sets the HTML content.
func (w *InfoWindow) SetContent(content string) { w.content = content }

// IsOpen reports whether the window is open when the map loads.
func (w *InfoWindow) IsOpen() bool { return w.open }

// SetOpen sets whether the window is open when the map loads.
func (w *InfoWindow) SetOpen(open bool) { w.open = open }

// IsAutoOpen reports whether a marker opens the window on its open event.
func (w *InfoWindow) IsAutoOpen() bool { return w.autoOpen }

// SetAutoOpen sets whether a marker opens the window on its open event.
func (w *InfoWindow) SetAutoOpen(autoOpen bool) { w.autoOpen = autoOpen }

// OpenEvent returns the mouse event that opens the window.
func (w *InfoWindow) OpenEvent() MouseEvent { return w.openEvent }

// SetOpenEvent sets the mouse event that opens the window.
func (w *InfoWindow) SetOpenEvent(event MouseEvent) error {
	if !event.IsValid() {
		return gmerrors.Invalid(gmerrors.ComponentOverlay, "info window", "openEvent", event,
			"the open event of an info window must be a mouse event")
	}
	w.openEvent = event
	return nil
}

// IsAutoClose reports whether opening the window closes the others.
func (w *InfoWindow) IsAutoClose() bool { return w.autoClose }

// SetAutoClose sets whether opening the window closes the others.
func (w *InfoWindow) SetAutoClose(autoClose bool) { w.autoClose = autoClose }
