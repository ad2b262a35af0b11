package mcpserver

import (
	"context"

	"github.com/erraggy/googlemap/internal/report"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type aggregateInput struct {
	Map   docInput `json:"map"             jsonschema:"The map document to aggregate"`
	Kind  string   `json:"kind,omitempty"  jsonschema:"One of: all, bounds, coordinates, points, sizes, info-windows, marker-images, marker-shapes"`
	Limit int      `json:"limit,omitempty" jsonschema:"Maximum entries per list"`
}

type aggregateOutput struct {
	Source    string         `json:"source,omitempty"`
	Kind      string         `json:"kind"`
	Total     int            `json:"total"`
	Truncated bool           `json:"truncated,omitempty"`
	Report    *report.Report `json:"report"`
}

func handleAggregate(_ context.Context, _ *mcp.CallToolRequest, input aggregateInput) (*mcp.CallToolResult, aggregateOutput, error) {
	kind := cfg.DefaultKind
	if input.Kind != "" {
		k, err := report.ParseKind(input.Kind)
		if err != nil {
			return errResult(err), aggregateOutput{}, nil
		}
		kind = k
	}

	res, err := input.Map.load()
	if err != nil {
		return errResult(err), aggregateOutput{}, nil
	}

	r := report.Build(res, kind)
	output := aggregateOutput{
		Source: r.Source,
		Kind:   string(kind),
		Total:  r.Count(),
		Report: r,
	}

	var cut [7]bool
	r.Bounds, cut[0] = limitSlice(r.Bounds, input.Limit)
	r.Coordinates, cut[1] = limitSlice(r.Coordinates, input.Limit)
	r.Points, cut[2] = limitSlice(r.Points, input.Limit)
	r.Sizes, cut[3] = limitSlice(r.Sizes, input.Limit)
	r.InfoWindows, cut[4] = limitSlice(r.InfoWindows, input.Limit)
	r.MarkerImages, cut[5] = limitSlice(r.MarkerImages, input.Limit)
	r.MarkerShapes, cut[6] = limitSlice(r.MarkerShapes, input.Limit)
	for _, c := range cut {
		output.Truncated = output.Truncated || c
	}

	return nil, output, nil
}
