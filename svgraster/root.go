package svgraster

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// rootElement holds the sizing attributes of the top level svg element.
type rootElement struct {
	width, height float64 // in pixels, zero when missing or relative
	aspect        aspectRatio
}

// aspectRatio is a parsed preserveAspectRatio attribute
type aspectRatio struct {
	none           bool
	alignX, alignY float64 // 0 for min, 0.5 for mid, 1 for max
	slice          bool
}

// xMidYMid meet
var defaultAspectRatio = aspectRatio{alignX: 0.5, alignY: 0.5}

// readRoot scans markup up to its first element.
func readRoot(markup []byte) (rootElement, error) {
	root := rootElement{aspect: defaultAspectRatio}
	decoder := xml.NewDecoder(bytes.NewReader(markup))
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err == io.EOF {
			return root, errors.New("invalid svg xml icon")
		}
		if err != nil {
			return root, err
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "width":
				root.width = parseLength(attr.Value)
			case "height":
				root.height = parseLength(attr.Value)
			case "preserveAspectRatio":
				root.aspect = parseAspectRatio(attr.Value)
			}
		}
		return root, nil
	}
}

// intrinsicSize resolves the size of the document, in pixels.
// A missing width or height follows the view box aspect ratio.
func (r rootElement) intrinsicSize(viewW, viewH float64) (float64, float64) {
	hasView := viewW > 0 && viewH > 0
	switch {
	case r.width > 0 && r.height > 0:
		return r.width, r.height
	case r.width > 0 && hasView:
		return r.width, r.width * viewH / viewW
	case r.height > 0 && hasView:
		return r.height * viewW / viewH, r.height
	default:
		return viewW, viewH
	}
}

// pixels per unit, at 96 dpi
var units = map[string]float64{
	"":   1,
	"px": 1,
	"pt": 96. / 72,
	"pc": 16,
	"mm": 96 / 25.4,
	"cm": 96 / 2.54,
	"in": 96,
}

// parseLength returns 0 for relative or invalid lengths
func parseLength(v string) float64 {
	v = strings.TrimSpace(v)
	i := len(v)
	for i > 0 && v[i-1] >= 'a' && v[i-1] <= 'z' {
		i--
	}
	factor, ok := units[v[i:]]
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v[:i]), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f * factor
}

var alignments = map[string]float64{"Min": 0, "Mid": 0.5, "Max": 1}

func parseAspectRatio(v string) aspectRatio {
	out := defaultAspectRatio
	fields := strings.Fields(v)
	if len(fields) > 0 && fields[0] == "defer" {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return out
	}
	if align := fields[0]; align == "none" {
		out.none = true
	} else if len(align) == 8 && align[0] == 'x' && align[4] == 'Y' {
		x, okX := alignments[align[1:4]]
		y, okY := alignments[align[5:8]]
		if okX && okY {
			out.alignX, out.alignY = x, y
		}
	}
	if len(fields) > 1 && fields[1] == "slice" {
		out.slice = true
	}
	return out
}

// place returns the rectangle (x, y, w, h) of the image
// the view box is mapped to.
func (a aspectRatio) place(viewW, viewH, width, height float64) (float64, float64, float64, float64) {
	if a.none {
		return 0, 0, width, height
	}
	s := width / viewW
	if sy := height / viewH; (sy < s) != a.slice {
		s = sy
	}
	w, h := viewW*s, viewH*s
	return (width - w) * a.alignX, (height - h) * a.alignY, w, h
}
