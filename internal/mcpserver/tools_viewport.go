package mcpserver

import (
	"context"

	"github.com/erraggy/googlemap/internal/report"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type viewportInput struct {
	Map docInput `json:"map" jsonschema:"The map document"`
}

type viewportOutput struct {
	Viewport *report.Viewport `json:"viewport"`
}

func handleViewport(_ context.Context, _ *mcp.CallToolRequest, input viewportInput) (*mcp.CallToolResult, viewportOutput, error) {
	res, err := input.Map.load()
	if err != nil {
		return errResult(err), viewportOutput{}, nil
	}
	return nil, viewportOutput{Viewport: report.BuildViewport(res)}, nil
}
