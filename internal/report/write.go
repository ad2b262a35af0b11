package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateFormat returns an error unless format is text, json or yaml.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
}

// Marshal encodes v as indented JSON or YAML.
func Marshal(v any, format string) ([]byte, error) {
	var data []byte
	var err error
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return data, nil
}

var title = cases.Title(language.English)

// heading turns a kind into a section title ("info-windows" is "Info Windows").
func heading(k Kind) string {
	return title.String(strings.ReplaceAll(string(k), "-", " "))
}

// WriteText lists every non-nil list of r, one section per kind.
func WriteText(w io.Writer, r *Report) error {
	tw := &textWriter{w: w}
	if r.Bounds != nil {
		tw.section(KindBounds, len(r.Bounds))
		for _, b := range r.Bounds {
			switch {
			case b.SouthWest != nil && b.NorthEast != nil:
				tw.line(b.Variable, b.Name, "%s .. %s", latLng(b.SouthWest), latLng(b.NorthEast))
			default:
				tw.line(b.Variable, b.Name, "extends %d overlay(s)", b.Extends)
			}
		}
	}
	if r.Coordinates != nil {
		tw.section(KindCoordinates, len(r.Coordinates))
		for _, c := range r.Coordinates {
			tw.line(c.Variable, c.Name, "%s", latLng(c))
		}
	}
	if r.Points != nil {
		tw.section(KindPoints, len(r.Points))
		for _, p := range r.Points {
			tw.line(p.Variable, "", "%g,%g", p.X, p.Y)
		}
	}
	if r.Sizes != nil {
		tw.section(KindSizes, len(r.Sizes))
		for _, s := range r.Sizes {
			tw.line(s.Variable, "", "%g%s x %g%s", s.Width, s.WidthUnit, s.Height, s.HeightUnit)
		}
	}
	if r.InfoWindows != nil {
		tw.section(KindInfoWindows, len(r.InfoWindows))
		for _, iw := range r.InfoWindows {
			tw.line(iw.Variable, iw.Name, "%q at %s", iw.Content, latLng(iw.Position))
		}
	}
	if r.MarkerImages != nil {
		tw.section(KindMarkerImages, len(r.MarkerImages))
		for _, img := range r.MarkerImages {
			tw.line(img.Variable, img.Name, "%s", img.URL)
		}
	}
	if r.MarkerShapes != nil {
		tw.section(KindMarkerShapes, len(r.MarkerShapes))
		for _, s := range r.MarkerShapes {
			tw.line(s.Variable, "", "%s %v", s.Type, s.Coordinates)
		}
	}
	return tw.err
}

// WriteViewportText prints the corners and center of v.
func WriteViewportText(w io.Writer, v *Viewport) error {
	tw := &textWriter{w: w}
	if v.Empty {
		tw.printf("Viewport: empty\n")
		return tw.err
	}
	tw.printf("Viewport\n")
	tw.printf("  South West: %s\n", latLng(v.SouthWest))
	tw.printf("  North East: %s\n", latLng(v.NorthEast))
	if v.Center != nil {
		tw.printf("  Center:     %s\n", latLng(v.Center))
	}
	return tw.err
}

func latLng(c *Coordinate) string {
	if c == nil {
		return "-"
	}
	return fmt.Sprintf("%g,%g", c.Lat, c.Lng)
}

// textWriter keeps the first write error.
type textWriter struct {
	w   io.Writer
	err error
}

func (tw *textWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func (tw *textWriter) section(k Kind, n int) {
	tw.printf("%s (%d)\n", heading(k), n)
}

func (tw *textWriter) line(variable, name, format string, args ...any) {
	label := variable
	if name != "" {
		label += " [" + name + "]"
	}
	tw.printf("  %s: %s\n", label, fmt.Sprintf(format, args...))
}
