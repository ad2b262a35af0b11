package mapdoc

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format is the encoding of a map document.
type Format string

const (
	// FormatUnknown lets Load detect the format.
	FormatUnknown Format = ""
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
)

// ParseFormat returns the format named s ("yaml", "yml" or "json").
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return FormatUnknown, false
	}
}

// formatFromPath detects the format from a file extension.
func formatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// formatFromContent treats anything starting with '{' as JSON and the rest as
// YAML, which is a superset of JSON anyway.
func formatFromContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatYAML
}
