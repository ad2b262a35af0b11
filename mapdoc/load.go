package mapdoc

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/googlemap/gmap"
	"github.com/erraggy/googlemap/gmerrors"
	"github.com/erraggy/googlemap/internal/options"
)

// DefaultMaxSize is the largest document Load reads unless WithMaxSize says otherwise.
const DefaultMaxSize int64 = 10 << 20

// Result is a loaded map document.
type Result struct {
	// Map is the map built from the document.
	Map *gmap.Map
	// Format is the format the document was decoded from.
	Format Format
	// SourcePath is the file the document was read from, or the name set
	// with WithSourceName. Empty for anonymous readers and byte slices.
	SourcePath string

	names map[any]string
}

// NameOf returns the name of the top-level declaration v was built from, or
// "" when v was declared inline.
func (r *Result) NameOf(v any) string {
	if r == nil {
		return ""
	}
	return r.names[v]
}

// Option configures Load.
type Option func(*loadConfig) error

type loadConfig struct {
	filePath *string
	reader   io.Reader
	bytes    []byte

	format     Format
	logger     Logger
	maxSize    int64
	sourceName *string
}

// Load decodes a map document and builds its map.
//
// Exactly one input source must be given:
//
//	res, err := mapdoc.Load(mapdoc.WithFilePath("city.yaml"))
//	if err != nil {
//	    return err
//	}
//	coords := (&aggregator.CoordinateAggregator{}).Aggregate(res.Map)
//
// Malformed input is reported as a *gmerrors.ParseError, an unknown named
// reference as a *gmerrors.ReferenceError, and an invalid field value as the
// *gmerrors.ValidationError of the object model.
func Load(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("mapdoc: invalid options: %w", err)
	}

	source := ""
	if cfg.filePath != nil {
		source = *cfg.filePath
	}
	if cfg.sourceName != nil {
		source = *cfg.sourceName
	}

	data, err := cfg.read(source)
	if err != nil {
		return nil, err
	}

	format := cfg.format
	if format == FormatUnknown && cfg.filePath != nil {
		format = formatFromPath(*cfg.filePath)
	}
	if format == FormatUnknown {
		format = formatFromContent(data)
	}

	doc, err := decode(data, format, source)
	if err != nil {
		return nil, err
	}

	logger := cfg.logger.With("source", source, "format", string(format))
	r := newResolver(doc, source, format, logger)
	m, err := r.buildMap(doc.Map)
	if err != nil {
		return nil, err
	}
	logger.Info("map document loaded",
		"markers", len(m.Overlays().Markers()),
		"infoWindows", len(m.Overlays().InfoWindows()),
		"references", len(r.names))

	return &Result{Map: m, Format: format, SourcePath: source, names: r.names}, nil
}

func (cfg *loadConfig) read(source string) ([]byte, error) {
	var src io.Reader
	switch {
	case cfg.bytes != nil:
		if int64(len(cfg.bytes)) > cfg.maxSize {
			return nil, tooLarge(source, cfg.maxSize)
		}
		return cfg.bytes, nil
	case cfg.reader != nil:
		src = cfg.reader
	default:
		f, err := os.Open(*cfg.filePath)
		if err != nil {
			return nil, &gmerrors.ParseError{Path: source, Message: "cannot open document", Cause: err}
		}
		defer func() { _ = f.Close() }()
		src = f
	}

	data, err := io.ReadAll(io.LimitReader(src, cfg.maxSize+1))
	if err != nil {
		return nil, &gmerrors.ParseError{Path: source, Message: "cannot read document", Cause: err}
	}
	if int64(len(data)) > cfg.maxSize {
		return nil, tooLarge(source, cfg.maxSize)
	}
	return data, nil
}

func tooLarge(source string, limit int64) error {
	return &gmerrors.ParseError{
		Path:    source,
		Message: fmt.Sprintf("document exceeds the maximum size of %d bytes", limit),
	}
}

func decode(data []byte, format Format, source string) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, &gmerrors.ParseError{
			Path:    source,
			Format:  string(format),
			Message: "malformed document",
			Cause:   err,
		}
	}
	if doc.Map == nil {
		return nil, &gmerrors.ParseError{
			Path:    source,
			Format:  string(format),
			Message: "the document has no map",
		}
	}
	return &doc, nil
}

func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{
		logger:  NopLogger{},
		maxSize: DefaultMaxSize,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := options.ExactlyOne(
		options.Source{Option: "WithFilePath", Set: cfg.filePath != nil},
		options.Source{Option: "WithReader", Set: cfg.reader != nil},
		options.Source{Option: "WithBytes", Set: cfg.bytes != nil},
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath reads the document from a file. The format is taken from the
// extension unless WithFormat is given.
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		if path == "" {
			return &gmerrors.ConfigError{Option: "WithFilePath", Message: "path cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithReader reads the document from r.
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		if r == nil {
			return &gmerrors.ConfigError{Option: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes decodes data.
func WithBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		if data == nil {
			return &gmerrors.ConfigError{Option: "WithBytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithFormat forces the document format.
// Default: detected from the file extension, then from the content.
func WithFormat(f Format) Option {
	return func(cfg *loadConfig) error {
		if f != FormatUnknown && f != FormatYAML && f != FormatJSON {
			return &gmerrors.ConfigError{Option: "WithFormat", Value: f, Message: "unknown format"}
		}
		cfg.format = f
		return nil
	}
}

// WithLogger sets the logger. Nil restores the default NopLogger.
func WithLogger(l Logger) Option {
	return func(cfg *loadConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}

// WithMaxSize limits the document size in bytes.
// Default: DefaultMaxSize. Zero or less keeps the default.
func WithMaxSize(n int64) Option {
	return func(cfg *loadConfig) error {
		cfg.maxSize = options.PositiveLimit(n, DefaultMaxSize)
		return nil
	}
}

// WithSourceName overrides Result.SourcePath and the path reported in errors.
func WithSourceName(name string) Option {
	return func(cfg *loadConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
