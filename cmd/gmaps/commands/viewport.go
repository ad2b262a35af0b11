package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/googlemap/internal/cliutil"
	"github.com/erraggy/googlemap/internal/report"
)

// ViewportFlags contains flags for the viewport command
type ViewportFlags struct {
	Format string
	Input  string
	Quiet  bool
}

// SetupViewportFlags creates and configures a FlagSet for the viewport command.
func SetupViewportFlags() (*flag.FlagSet, *ViewportFlags) {
	fs := flag.NewFlagSet("viewport", flag.ContinueOnError)
	flags := &ViewportFlags{}

	fs.StringVar(&flags.Format, "format", report.FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Input, "input", "", "input document format: yaml or json (detected by default)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the viewport, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the viewport, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: gmaps viewport [flags] <file|->\n\n")
		cliutil.Writef(output, "Print the smallest rectangle covering every coordinate of a map document.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  gmaps viewport city.yaml\n")
		cliutil.Writef(output, "  gmaps viewport -q -format json - < city.json\n")
	}

	return fs, flags
}

// HandleViewport executes the viewport command
func HandleViewport(args []string) error {
	fs, flags := SetupViewportFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("viewport command requires exactly one file path or '-' for stdin")
	}

	if err := report.ValidateFormat(flags.Format); err != nil {
		return err
	}
	input, err := ParseInputFormat(flags.Input)
	if err != nil {
		return err
	}

	res, err := LoadDocument(fs.Arg(0), input, newLogger(false))
	if err != nil {
		return err
	}

	if !flags.Quiet {
		OutputDocHeader(res)
	}

	v := report.BuildViewport(res)
	if flags.Format != report.FormatText {
		return OutputStructured(v, flags.Format)
	}
	return report.WriteViewportText(os.Stdout, v)
}
