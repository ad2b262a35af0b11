package base

import (
	"slices"
)

// MapTypeID identifies a base map type.
type MapTypeID string

const (
	MapTypeHybrid    MapTypeID = "hybrid"
	MapTypeRoadmap   MapTypeID = "roadmap"
	MapTypeSatellite MapTypeID = "satellite"
	MapTypeTerrain   MapTypeID = "terrain"
)

// MapTypeIDs returns every known map type.
func MapTypeIDs() []MapTypeID {
	return []MapTypeID{MapTypeHybrid, MapTypeRoadmap, MapTypeSatellite, MapTypeTerrain}
}

// IsValid reports whether id is a known map type.
func (id MapTypeID) IsValid() bool {
	return slices.Contains(MapTypeIDs(), id)
}
