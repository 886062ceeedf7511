package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/benoitkugler/svg2png/convert"
	"github.com/spf13/pflag"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("github.com/benoitkugler/svg2png")
}

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code. Conversion failures are
// reported on stdout and do not change it.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		req         convert.Request
		showVersion bool
	)
	flags := pflag.NewFlagSet("svg2png", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.IntVar(&req.Width, "width", 0, "Output width in pixels (0 keeps the SVG aspect ratio or size)")
	flags.IntVar(&req.Height, "height", 0, "Output height in pixels (0 keeps the SVG aspect ratio or size)")
	flags.StringVar(&req.Color, "color", "", "New color replacing every color of the SVG, in hex format (#RRGGBB)")
	flags.BoolVar(&req.Strict, "strict", false, "Fail on SVG elements the renderer does not support")
	flags.BoolVarP(&req.Verbose, "verbose", "v", false, "Log processing steps to stderr")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Convert SVG to PNG with optional resizing and color replacement")
		fmt.Fprintf(stderr, "\nUsage: svg2png [flags] <input> <output>\n")
		fmt.Fprintln(stderr, "\nThe output format follows the output extension: .bmp, .tif/.tiff, otherwise PNG.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if flags.NArg() != 2 {
		fmt.Fprintf(stderr, "expected 2 arguments <input> <output>, got %d\n", flags.NArg())
		flags.Usage()
		return 2
	}
	req.Input, req.Output = flags.Arg(0), flags.Arg(1)

	if err := convert.Convert(req); err != nil {
		fmt.Fprintf(stdout, "Error converting SVG to PNG: %s\n", err)
		return 0
	}
	fmt.Fprintf(stdout, "Successfully converted %s to %s\n", req.Input, req.Output)
	return 0
}
