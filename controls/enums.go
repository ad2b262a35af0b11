package controls

import "slices"

// Position is where a control is anchored on the map.
type Position string

const (
	PositionBottomCenter Position = "bottom_center"
	PositionBottomLeft   Position = "bottom_left"
	PositionBottomRight  Position = "bottom_right"
	PositionLeftBottom   Position = "left_bottom"
	PositionLeftCenter   Position = "left_center"
	PositionLeftTop      Position = "left_top"
	PositionRightBottom  Position = "right_bottom"
	PositionRightCenter  Position = "right_center"
	PositionRightTop     Position = "right_top"
	PositionTopCenter    Position = "top_center"
	PositionTopLeft      Position = "top_left"
	PositionTopRight     Position = "top_right"
)

// Positions returns every known control position.
func Positions() []Position {
	return []Position{
		PositionBottomCenter, PositionBottomLeft, PositionBottomRight,
		PositionLeftBottom, PositionLeftCenter, PositionLeftTop,
		PositionRightBottom, PositionRightCenter, PositionRightTop,
		PositionTopCenter, PositionTopLeft, PositionTopRight,
	}
}

// IsValid reports whether p is a known position.
func (p Position) IsValid() bool { return slices.Contains(Positions(), p) }

// MapTypeControlStyle is the look of the map type control.
type MapTypeControlStyle string

const (
	MapTypeControlStyleDefault       MapTypeControlStyle = "default"
	MapTypeControlStyleDropdownMenu  MapTypeControlStyle = "dropdown_menu"
	MapTypeControlStyleHorizontalBar MapTypeControlStyle = "horizontal_bar"
)

// MapTypeControlStyles returns every known map type control style.
func MapTypeControlStyles() []MapTypeControlStyle {
	return []MapTypeControlStyle{
		MapTypeControlStyleDefault,
		MapTypeControlStyleDropdownMenu,
		MapTypeControlStyleHorizontalBar,
	}
}

// IsValid reports whether s is a known style.
func (s MapTypeControlStyle) IsValid() bool { return slices.Contains(MapTypeControlStyles(), s) }

// ScaleControlStyle is the look of the scale control.
type ScaleControlStyle string

// ScaleControlStyleDefault is the only scale control style.
const ScaleControlStyleDefault ScaleControlStyle = "default"

// ScaleControlStyles returns every known scale control style.
func ScaleControlStyles() []ScaleControlStyle {
	return []ScaleControlStyle{ScaleControlStyleDefault}
}

// IsValid reports whether s is a known style.
func (s ScaleControlStyle) IsValid() bool { return slices.Contains(ScaleControlStyles(), s) }

// ZoomControlStyle is the look of the zoom control.
type ZoomControlStyle string

const (
	ZoomControlStyleDefault ZoomControlStyle = "default"
	ZoomControlStyleLarge   ZoomControlStyle = "large"
	ZoomControlStyleSmall   ZoomControlStyle = "small"
)

// ZoomControlStyles returns every known zoom control style.
func ZoomControlStyles() []ZoomControlStyle {
	return []ZoomControlStyle{ZoomControlStyleDefault, ZoomControlStyleLarge, ZoomControlStyleSmall}
}

// IsValid reports whether s is a known style.
func (s ZoomControlStyle) IsValid() bool { return slices.Contains(ZoomControlStyles(), s) }
