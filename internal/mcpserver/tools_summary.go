package mcpserver

import (
	"context"

	"github.com/erraggy/googlemap/controls"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mapSummaryInput struct {
	Map docInput `json:"map" jsonschema:"The map document"`
}

type overlayCounts struct {
	Markers          int `json:"markers"`
	InfoWindows      int `json:"info_windows"`
	Polylines        int `json:"polylines"`
	EncodedPolylines int `json:"encoded_polylines"`
	Polygons         int `json:"polygons"`
	Rectangles       int `json:"rectangles"`
	Circles          int `json:"circles"`
	GroundOverlays   int `json:"ground_overlays"`
}

type mapSummaryOutput struct {
	Source            string        `json:"source,omitempty"`
	Format            string        `json:"format"`
	Variable          string        `json:"variable"`
	HTMLContainerID   string        `json:"html_container_id"`
	Async             bool          `json:"async"`
	AutoZoom          bool          `json:"auto_zoom"`
	Language          string        `json:"language"`
	Libraries         []string      `json:"libraries,omitempty"`
	Controls          []string      `json:"controls,omitempty"`
	KMLLayers         int           `json:"kml_layers"`
	MarkerClusterType string        `json:"marker_cluster_type"`
	Overlays          overlayCounts `json:"overlays"`
}

func handleMapSummary(_ context.Context, _ *mcp.CallToolRequest, input mapSummaryInput) (*mcp.CallToolResult, mapSummaryOutput, error) {
	res, err := input.Map.load()
	if err != nil {
		return errResult(err), mapSummaryOutput{}, nil
	}

	m := res.Map
	o := m.Overlays()
	return nil, mapSummaryOutput{
		Source:            res.SourcePath,
		Format:            string(res.Format),
		Variable:          m.JavascriptVariable(),
		HTMLContainerID:   m.HTMLContainerID(),
		Async:             m.IsAsync(),
		AutoZoom:          m.IsAutoZoom(),
		Language:          m.Language(),
		Libraries:         m.Libraries(),
		Controls:          enabledControls(m.Controls()),
		KMLLayers:         len(m.Layers().KMLLayers()),
		MarkerClusterType: string(o.MarkerCluster().Type()),
		Overlays: overlayCounts{
			Markers:          len(o.Markers()),
			InfoWindows:      len(o.InfoWindows()),
			Polylines:        len(o.Polylines()),
			EncodedPolylines: len(o.EncodedPolylines()),
			Polygons:         len(o.Polygons()),
			Rectangles:       len(o.Rectangles()),
			Circles:          len(o.Circles()),
			GroundOverlays:   len(o.GroundOverlays()),
		},
	}, nil
}

func enabledControls(c *controls.Controls) []string {
	var names []string
	for _, ctrl := range []struct {
		name string
		on   bool
	}{
		{"map_type", c.HasMapTypeControl()},
		{"overview_map", c.HasOverviewMapControl()},
		{"pan", c.HasPanControl()},
		{"rotate", c.HasRotateControl()},
		{"scale", c.HasScaleControl()},
		{"street_view", c.HasStreetViewControl()},
		{"zoom", c.HasZoomControl()},
	} {
		if ctrl.on {
			names = append(names, ctrl.name)
		}
	}
	return names
}
