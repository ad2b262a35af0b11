// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes map document aggregation as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/googlemap"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `gmaps MCP server: loads Google Maps map documents (YAML or JSON) and reports what a renderer must declare for them.

Documents declare named coordinates, bounds, markerImages and infoWindows at the top level and reference them with {ref: name}; every reference to a name is the same object and is aggregated once.

Configuration: defaults come from GMAPS_* environment variables set in your MCP client config.
- GMAPS_MAX_DOCUMENT_SIZE (default: 10485760) - maximum document size in bytes
- GMAPS_DEFAULT_FORMAT (default: detect) - format of inline documents, yaml or json
- GMAPS_DEFAULT_KIND (default: all) - aggregation returned by the aggregate tool
- GMAPS_MAX_LIMIT (default: 1000) - maximum entries per list
- GMAPS_CACHE_ENABLED (default: true), GMAPS_CACHE_MAX_SIZE (default: 10)
- GMAPS_CACHE_FILE_TTL, GMAPS_CACHE_CONTENT_TTL (default: 15m), GMAPS_CACHE_SWEEP_INTERVAL (default: 60s)

Caching: loaded documents are cached per session. File entries are keyed by path and modification time.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "gmaps", Version: googlemap.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "aggregate",
		Description: "Aggregate the objects of a map document a renderer must declare: bounds, coordinates, points, sizes, info-windows, marker-images or marker-shapes, or all of them. Each object appears once, in first-occurrence order, with its JavaScript variable and, when declared at the top level, its name. Use limit to cap each list. The default kind is configurable via GMAPS_DEFAULT_KIND.",
	}, handleAggregate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "viewport",
		Description: "Compute the smallest latitude/longitude rectangle covering every coordinate of a map document, with its center. Reports empty when the map has no valid coordinate. The south-west longitude is greater than the north-east one when the rectangle crosses the antimeridian.",
	}, handleViewport)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "map_summary",
		Description: "Summarize a map document: container, auto-zoom, language, libraries, enabled controls, and overlay and layer counts. Use it first to decide which aggregation to request.",
	}, handleMapSummary)
}

// limitSlice caps items at limit entries. A non-positive limit means
// cfg.MaxLimit, and limits above cfg.MaxLimit are lowered to it.
func limitSlice[T any](items []T, limit int) ([]T, bool) {
	if limit <= 0 || limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if len(items) <= limit {
		return items, false
	}
	return items[:limit], true
}

// pathPattern matches absolute filesystem paths so they are not leaked to
// MCP clients in error messages.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
