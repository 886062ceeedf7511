package convert

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
)

var (
	utf8BOM     = []byte{0xef, 0xbb, 0xbf}
	utf16LEBOM  = []byte{0xff, 0xfe}
	utf16BEBOM  = []byte{0xfe, 0xff}
	xmlEncoding = regexp.MustCompile(`^\s*<\?xml[^>]*?\bencoding\s*=\s*["']([^"']+)["']`)
)

// decodeMarkup returns the markup as UTF-8 text.
// The encoding is given by the byte order mark, or else by the XML
// declaration. A transcoded document has its declaration updated so
// that the rasterizer does not decode it twice.
// UTF-16 without a byte order mark is not detected.
func decodeMarkup(raw []byte) (string, error) {
	var label string
	switch {
	case bytes.HasPrefix(raw, utf8BOM):
		raw = raw[len(utf8BOM):]
	case bytes.HasPrefix(raw, utf16LEBOM):
		raw, label = raw[len(utf16LEBOM):], "utf-16le"
	case bytes.HasPrefix(raw, utf16BEBOM):
		raw, label = raw[len(utf16BEBOM):], "utf-16be"
	}
	if label == "" {
		loc := xmlEncoding.FindSubmatchIndex(raw)
		if loc == nil {
			return string(raw), nil
		}
		label = strings.ToLower(strings.TrimSpace(string(raw[loc[2]:loc[3]])))
		if label == "utf-8" || label == "utf8" {
			return string(raw), nil
		}
		if strings.HasPrefix(label, "utf-16") {
			// an ASCII readable declaration can't be UTF-16
			return string(raw[:loc[2]]) + "UTF-8" + string(raw[loc[3]:]), nil
		}
	}
	r, err := charset.NewReaderLabel(label, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decoding %s markup: %w", label, err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decoding %s markup: %w", label, err)
	}
	text := strings.TrimPrefix(string(decoded), "\ufeff")
	if loc := xmlEncoding.FindStringSubmatchIndex(text); loc != nil {
		text = text[:loc[2]] + "UTF-8" + text[loc[3]:]
	}
	return text, nil
}
