package recolor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const green = "#00ff00"

func TestRewrite(t *testing.T) {
	for _, tc := range []struct {
		name, in, want string
	}{
		{"hex attribute", `<svg><rect fill="#ff0000"/></svg>`, `<svg><rect fill="#00ff00"/></svg>`},
		{"hex in text", `a #fff b #123456 c`, `a #00ff00 b #00ff00 c`},
		{"rgb", `<rect style="color:rgb(1, 2, 3)"/>`, `<rect style="color:#00ff00"/>`},
		{"rgba", `<stop stop-color="rgba(0,0,0,0.5)"/>`, `<stop stop-color="#00ff00"/>`},
		{"named attribute", `<rect fill="red"/>`, `<rect fill="#00ff00"/>`},
		{"named text", `<text>red</text>`, `<text>#00ff00</text>`},
		{"named case sensitive", `<text>Red RED red</text>`, `<text>Red RED #00ff00</text>`},
		{"named inside word", `<text>stored redness</text>`, `<text>stored redness</text>`},
		{"stroke url", `<path stroke="url(#grad)"/>`, `<path stroke="#00ff00"/>`},
		{"empty attribute", `<path fill=""/>`, `<path fill=""/>`},
		{"malformed", `fill-opacity:#zz; rgb`, `fill-opacity:#zz; rgb`},
		{
			"no color",
			`<svg xmlns="http://www.w3.org/2000/svg"><path d="M0 0L10 10"/></svg>`,
			`<svg xmlns="http://www.w3.org/2000/svg"><path d="M0 0L10 10"/></svg>`,
		},
	} {
		got := Rewrite(tc.in, green)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s: unexpected rewrite (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestRewriteIdempotent(t *testing.T) {
	in := `<svg>
  <!-- navy border -->
  <rect fill="#abc" stroke="rgb(0, 0, 255)"/>
  <circle style="fill:rgba(1,2,3,.5);stroke:gold"/>
  <text fill="none">#abcdef12 dark red</text>
</svg>`
	once := Rewrite(in, "#123abc")
	twice := Rewrite(once, "#123abc")
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("rewrite is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestNamedColors(t *testing.T) {
	for _, name := range []string{"aliceblue", "rebeccapurple", "grey", "darkslategrey", "yellowgreen", "tan"} {
		if !IsNamedColor(name) {
			t.Errorf("expected %s to be a named color", name)
		}
	}
	for _, name := range []string{"Red", "RED", "transparent", "currentColor", "none", ""} {
		if IsNamedColor(name) {
			t.Errorf("unexpected named color %q", name)
		}
	}
	for name := range namedColors {
		for _, r := range name {
			if r < 'a' || r > 'z' {
				t.Fatalf("named color %q is not lowercase", name)
			}
		}
	}
}

func TestValidateColor(t *testing.T) {
	for _, c := range []string{"#00ff00", "#ABCDEF", "#a1B2c3"} {
		if err := ValidateColor(c); err != nil {
			t.Errorf("%s: unexpected error %s", c, err)
		}
	}
	for _, c := range []string{"red", "#fff", "#gggggg", "00ff00", "#00ff001", " #00ff00", ""} {
		if err := ValidateColor(c); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("%q: expected ErrInvalidColor, got %v", c, err)
		}
	}
}
