// Converts SVG files to raster images, optionally
// replacing all their colors beforehand.
package convert

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/svg2png/recolor"
	"github.com/benoitkugler/svg2png/svgraster"
	"github.com/srwiley/oksvg"
)

// Request fully describes one conversion.
type Request struct {
	Input, Output string
	// zero values use the intrinsic size of the SVG,
	// see svgraster.TargetSize
	Width, Height int
	// if not empty, a #RRGGBB color replacing every color
	// of the input
	Color string
	// fail on SVG elements the rasterizer does not support
	Strict bool
	// log each step with the standard logger
	Verbose bool
}

func (req Request) errorMode() oksvg.ErrorMode {
	switch {
	case req.Strict:
		return oksvg.StrictErrorMode
	case req.Verbose:
		return oksvg.WarnErrorMode
	default:
		return oksvg.IgnoreErrorMode
	}
}

func (req Request) logf(format string, args ...interface{}) {
	if req.Verbose {
		log.Printf(format, args...)
	}
}

// Convert reads the SVG file req.Input and writes its rasterization to req.Output,
// creating the missing parent directories.
// The output format is chosen from the output extension (see svgraster.FormatFromPath).
// The first failing step aborts the conversion and is returned as an *Error.
// Directories created before the failure are kept.
func Convert(req Request) error {
	if dir := filepath.Dir(req.Output); dir != "." && dir != string(filepath.Separator) {
		req.logf("creating directory %s", dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &Error{Kind: KindWrite, Path: dir, Err: err}
		}
	}

	raw, err := os.ReadFile(req.Input)
	if err != nil {
		return &Error{Kind: KindRead, Path: req.Input, Err: err}
	}
	markup, err := decodeMarkup(raw)
	if err != nil {
		return &Error{Kind: KindRead, Path: req.Input, Err: err}
	}
	req.logf("read %d bytes from %s", len(raw), req.Input)

	if req.Color != "" {
		if err := recolor.ValidateColor(req.Color); err != nil {
			return &Error{Kind: KindColor, Err: err}
		}
		markup = recolor.Rewrite(markup, req.Color)
		req.logf("replaced colors by %s", req.Color)
	}

	img, err := svgraster.Rasterize(strings.NewReader(markup), svgraster.Options{
		Width:     req.Width,
		Height:    req.Height,
		ErrorMode: req.errorMode(),
	})
	if err != nil {
		return &Error{Kind: KindRender, Path: req.Input, Err: err}
	}
	format := svgraster.FormatFromPath(req.Output)
	req.logf("rendered %dx%d image, encoding as %s", img.Bounds().Dx(), img.Bounds().Dy(), format)

	var buf bytes.Buffer
	if err := svgraster.Encode(&buf, img, format); err != nil {
		return &Error{Kind: KindRender, Path: req.Output, Err: err}
	}
	if err := os.WriteFile(req.Output, buf.Bytes(), 0o644); err != nil {
		return &Error{Kind: KindWrite, Path: req.Output, Err: err}
	}
	return nil
}
