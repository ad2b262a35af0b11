// Package overlays models everything drawn on top of a map: markers and their
// images and shapes, info windows, polylines, polygons, rectangles, circles and
// ground overlays.
//
// Setters validate their input and return a *gmerrors.ValidationError that
// matches gmerrors.ErrOverlay. Getters never fail; optional parts (a marker's
// icon, shadow, shape or info window) are reported through the Has methods and
// are nil when absent.
//
// The Overlays collection is owned by a map. When the owning map auto-zooms,
// every added overlay is also appended to the map bound's extends list.
package overlays
