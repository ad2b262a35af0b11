// Package controls models the optional user interface controls of a map.
//
// Each control has a constructor per call shape, e.g. NewZoomControl(position,
// style), that validates its arguments. Positions and styles are string enums
// with an IsValid method. Controls groups the seven controls a map can carry;
// a control that is not set is not rendered.
package controls
