// Package options holds checks shared by the functional option sets of the
// loader, the CLI and the MCP server.
package options

import (
	"sort"
	"strings"

	"github.com/erraggy/googlemap/gmerrors"
)

// Source is a named input source and whether a caller set it.
type Source struct {
	Option string
	Set    bool
}

// ExactlyOne reports a *gmerrors.ConfigError unless exactly one source is set.
func ExactlyOne(sources ...Source) error {
	var set, all []string
	for _, s := range sources {
		all = append(all, s.Option)
		if s.Set {
			set = append(set, s.Option)
		}
	}
	switch len(set) {
	case 1:
		return nil
	case 0:
		return &gmerrors.ConfigError{
			Option:  "input",
			Message: "no input source, use one of " + strings.Join(all, ", "),
		}
	default:
		sort.Strings(set)
		return &gmerrors.ConfigError{
			Option:  "input",
			Message: "only one input source allowed, got " + strings.Join(set, ", "),
		}
	}
}

// PositiveLimit returns value when it is positive and fallback otherwise.
func PositiveLimit(value, fallback int64) int64 {
	if value > 0 {
		return value
	}
	return fallback
}
