// Replaces every color expression found in SVG markup
// by a single color, using plain textual substitution.
// The markup structure is never parsed: a color-like substring
// inside a comment or an unrelated attribute is rewritten too.
package recolor

import (
	"errors"
	"regexp"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ValidateColor.
var ErrInvalidColor = errors.New("Color must be in hex format: #RRGGBB")

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateColor checks that s is a strict #RRGGBB color.
func ValidateColor(s string) error {
	if !hexColor.MatchString(s) {
		return ErrInvalidColor
	}
	return nil
}

// namedColors holds the SVG 1.1 color keywords, plus the later
// CSS addition rebeccapurple.
var namedColors = map[string]bool{"rebeccapurple": true}

func init() {
	for name := range colornames.Map {
		namedColors[name] = true
	}
}

// IsNamedColor reports whether s is a color keyword.
// Only lowercase spellings are recognized.
func IsNamedColor(s string) bool { return namedColors[s] }

// pass is one substitution step of Rewrite
type pass struct {
	re *regexp.Regexp
	// returns the text replacing match
	repl func(match, color string) string
}

func verbatim(_, color string) string { return color }

// order matters: the attribute pass re-stamps values
// already rewritten by the first three.
var passes = [...]pass{
	{regexp.MustCompile(`#[0-9a-fA-F]{3,6}`), verbatim},
	{regexp.MustCompile(`rgb\([^)]+\)`), verbatim},
	{regexp.MustCompile(`rgba\([^)]+\)`), verbatim},
	{regexp.MustCompile(`(?:fill|stroke)="[^"]+"`), func(match, color string) string {
		if match[0] == 'f' {
			return `fill="` + color + `"`
		}
		return `stroke="` + color + `"`
	}},
	{regexp.MustCompile(`\b[a-z]+\b`), func(match, color string) string {
		if namedColors[match] {
			return color
		}
		return match
	}},
}

// Rewrite replaces every hex, rgb(), rgba() and named color of markup,
// as well as the value of every fill and stroke attribute, by replacement.
// Each pass works on the output of the previous one.
// replacement is used as is: see ValidateColor.
func Rewrite(markup, replacement string) string {
	for _, p := range passes {
		markup = p.re.ReplaceAllStringFunc(markup, func(match string) string {
			return p.repl(match, replacement)
		})
	}
	return markup
}
