package overlays

import (
	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmerrors"
)

// MarkerCluster holds a map's markers and how they are grouped when rendered.
type MarkerCluster struct {
	base.Variable
	base.Options

	clusterType MarkerClusterType
	markers     []*Marker
}

// NewMarkerCluster creates an empty cluster of the default type.
func NewMarkerCluster() *MarkerCluster {
	return &MarkerCluster{
		Variable:    base.NewVariable("marker_cluster_"),
		clusterType: MarkerClusterDefault,
	}
}

// Type returns the cluster type.
func (c *MarkerCluster) Type() MarkerClusterType { return c.clusterType }

// SetType sets the cluster type.
func (c *MarkerCluster) SetType(t MarkerClusterType) error {
	if t != MarkerClusterDefault && t != MarkerClusterMarkerCluster {
		return gmerrors.Invalid(gmerrors.ComponentOverlay, "marker cluster", "type", t,
			"the type of a marker cluster can only be: default, marker_cluster")
	}
	c.clusterType = t
	return nil
}

// HasMarkers reports whether the cluster holds at least one marker.
func (c *MarkerCluster) HasMarkers() bool { return len(c.markers) > 0 }

// Markers returns the markers in insertion order.
func (c *MarkerCluster) Markers() []*Marker { return c.markers }

// SetMarkers replaces the markers. Nil entries are skipped.
func (c *MarkerCluster) SetMarkers(markers ...*Marker) {
	c.markers = nil
	for _, m := range markers {
		c.AddMarker(m)
	}
}

// AddMarker appends a marker. Nil is ignored.
func (c *MarkerCluster) AddMarker(m *Marker) {
	if m == nil {
		return
	}
	c.markers = append(c.markers, m)
}
