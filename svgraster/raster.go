// Implements the raster backend turning SVG markup into images,
// by wrapping oksvg and rasterx.
package svgraster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrInvalidSize is returned when the output dimensions can't be resolved.
var ErrInvalidSize = errors.New("invalid output size")

// Options control the rasterization.
// A zero Width or Height is resolved from the
// intrinsic size of the icon, see TargetSize.
type Options struct {
	Width, Height int
	// how unsupported SVG elements are handled
	ErrorMode oksvg.ErrorMode
}

// TargetSize returns the pixel size of the output image, given the
// intrinsic size of the icon.
// When both width and height are given, they are used as is.
// When only one is given, the other one follows the intrinsic aspect ratio.
// When none is given, the intrinsic size is used.
func TargetSize(intrinsicW, intrinsicH float64, width, height int) (int, int, error) {
	if width < 0 || height < 0 {
		return 0, 0, fmt.Errorf("%w: negative dimension %dx%d", ErrInvalidSize, width, height)
	}
	if width > 0 && height > 0 {
		return width, height, nil
	}
	if intrinsicW <= 0 || intrinsicH <= 0 {
		return 0, 0, fmt.Errorf("%w: svg has no intrinsic size, set both width and height", ErrInvalidSize)
	}
	switch {
	case width > 0:
		return width, scaled(width, intrinsicH/intrinsicW), nil
	case height > 0:
		return scaled(height, intrinsicW/intrinsicH), height, nil
	default:
		return int(math.Ceil(intrinsicW)), int(math.Ceil(intrinsicH)), nil
	}
}

func scaled(v int, ratio float64) int {
	out := int(math.Round(float64(v) * ratio))
	if out < 1 {
		out = 1
	}
	return out
}

// Rasterize parses the icon read from markup and renders it
// on a transparent image, sized according to opts.
// The view box is fitted into the image following the
// preserveAspectRatio attribute of the root element.
func Rasterize(markup io.Reader, opts Options) (*image.RGBA, error) {
	data, err := io.ReadAll(markup)
	if err != nil {
		return nil, err
	}
	root, err := readRoot(data)
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), opts.ErrorMode)
	if err != nil {
		return nil, err
	}
	vb := &icon.ViewBox
	if (vb.W <= 0 || vb.H <= 0) && root.width > 0 && root.height > 0 {
		vb.X, vb.Y, vb.W, vb.H = 0, 0, root.width, root.height
	}
	iw, ih := root.intrinsicSize(vb.W, vb.H)
	w, h, err := TargetSize(iw, ih, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	if vb.W <= 0 || vb.H <= 0 {
		return nil, fmt.Errorf("%w: svg has no view box", ErrInvalidSize)
	}
	icon.SetTarget(root.aspect.place(vb.W, vb.H, float64(w), float64(h)))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img, nil
}
