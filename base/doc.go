// Package base holds the value types every other part of the map model is
// built from: coordinates, bounds, points and sizes.
//
// Each of these types describes exactly one JavaScript variable once rendered,
// which is why the model compares them by pointer identity: two distinct
// *Coordinate values at the same latitude and longitude are two variables.
//
//	sw := base.NewCoordinate(48.80, 2.25)
//	ne := base.NewCoordinate(48.90, 2.42)
//	paris := base.NewBound(sw, ne)
//	center, _ := paris.Center()
package base
