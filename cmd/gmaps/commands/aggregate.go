package commands

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/erraggy/googlemap/internal/cliutil"
	"github.com/erraggy/googlemap/internal/report"
	"github.com/erraggy/googlemap/mapdoc"
)

// AggregateFlags contains flags for the aggregate command
type AggregateFlags struct {
	Kind    string
	Format  string
	Input   string
	Quiet   bool
	Verbose bool
}

// SetupAggregateFlags creates and configures a FlagSet for the aggregate command.
func SetupAggregateFlags() (*flag.FlagSet, *AggregateFlags) {
	fs := flag.NewFlagSet("aggregate", flag.ContinueOnError)
	flags := &AggregateFlags{}

	fs.StringVar(&flags.Kind, "kind", string(report.KindAll), "what to aggregate: all, bounds, coordinates, points, sizes, info-windows, marker-images, marker-shapes")
	fs.StringVar(&flags.Format, "format", report.FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Input, "input", "", "input document format: yaml or json (detected by default)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the aggregation, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the aggregation, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "v", false, "log resolved references and suspicious values to stderr")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: gmaps aggregate [flags] <file|->\n\n")
		cliutil.Writef(output, "Aggregate the objects a renderer must declare for a map document.\n")
		cliutil.Writef(output, "Every object is listed once, in first-occurrence order.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  gmaps aggregate city.yaml\n")
		cliutil.Writef(output, "  gmaps aggregate -kind coordinates -format json city.yaml\n")
		cliutil.Writef(output, "  cat city.json | gmaps aggregate -q -kind marker-images -\n")
		cliutil.Writef(output, "\nExit Codes:\n")
		cliutil.Writef(output, "  0    Aggregation successful\n")
		cliutil.Writef(output, "  1    The document could not be loaded\n")
	}

	return fs, flags
}

// HandleAggregate executes the aggregate command
func HandleAggregate(args []string) error {
	fs, flags := SetupAggregateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("aggregate command requires exactly one file path or '-' for stdin")
	}

	kind, err := report.ParseKind(flags.Kind)
	if err != nil {
		return err
	}
	if err := report.ValidateFormat(flags.Format); err != nil {
		return err
	}
	input, err := ParseInputFormat(flags.Input)
	if err != nil {
		return err
	}

	res, err := LoadDocument(fs.Arg(0), input, newLogger(flags.Verbose))
	if err != nil {
		return err
	}

	if !flags.Quiet {
		cliutil.Heading(os.Stderr, "Google Maps Aggregation")
		OutputDocHeader(res)
	}

	r := report.Build(res, kind)
	if flags.Format != report.FormatText {
		return OutputStructured(r, flags.Format)
	}
	return report.WriteText(os.Stdout, r)
}

// newLogger returns a stderr logger at debug level when verbose, and a
// discarding logger otherwise.
func newLogger(verbose bool) mapdoc.Logger {
	if !verbose {
		return mapdoc.NopLogger{}
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return mapdoc.NewSlogAdapter(slog.New(h))
}
