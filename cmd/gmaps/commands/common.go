// Package commands provides CLI command handlers for gmaps.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/googlemap"
	"github.com/erraggy/googlemap/internal/cliutil"
	"github.com/erraggy/googlemap/internal/report"
	"github.com/erraggy/googlemap/mapdoc"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// stdin is the reader used for StdinFilePath. Tests replace it.
var stdin io.Reader = os.Stdin

// FormatDocPath returns a display-friendly path for a map document.
func FormatDocPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// LoadDocument loads the map document at path, or from stdin when path is
// StdinFilePath. Verbose diagnostics are written to stderr through log/slog.
func LoadDocument(path string, format mapdoc.Format, logger mapdoc.Logger) (*mapdoc.Result, error) {
	opts := []mapdoc.Option{mapdoc.WithFormat(format), mapdoc.WithLogger(logger)}
	if path == StdinFilePath {
		opts = append(opts, mapdoc.WithReader(stdin), mapdoc.WithSourceName(FormatDocPath(path)))
	} else {
		opts = append(opts, mapdoc.WithFilePath(path))
	}
	res, err := mapdoc.Load(opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", FormatDocPath(path), err)
	}
	return res, nil
}

// ParseInputFormat returns the document format named by the -input flag.
// The empty string lets the loader detect it.
func ParseInputFormat(s string) (mapdoc.Format, error) {
	if s == "" {
		return mapdoc.FormatUnknown, nil
	}
	f, ok := mapdoc.ParseFormat(s)
	if !ok {
		return "", fmt.Errorf("invalid input format '%s'. Valid formats: yaml, json", s)
	}
	return f, nil
}

// OutputStructured writes data to stdout as JSON or YAML.
func OutputStructured(data any, format string) error {
	b, err := report.Marshal(data, format)
	if err != nil {
		return err
	}
	cliutil.Writef(os.Stdout, "%s\n", b)
	return nil
}

// OutputDocHeader writes the common document header to stderr.
func OutputDocHeader(res *mapdoc.Result) {
	cliutil.Writef(os.Stderr, "gmaps version: %s\n", googlemap.Version())
	cliutil.Writef(os.Stderr, "Document: %s\n", FormatDocPath(res.SourcePath))
	cliutil.Writef(os.Stderr, "Format: %s\n", res.Format)
	cliutil.Writef(os.Stderr, "Markers: %d\n\n", len(res.Map.Overlays().Markers()))
}
