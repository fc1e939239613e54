package sink

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// hexColor formats c as #rrggbb, or "none" when c is fully transparent.
func hexColor(c color.RGBA) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "none"
	}
	return cf.Hex()
}

// parseColor parses #rrggbb back into an opaque color. "none" and the empty
// string yield the transparent zero value.
func parseColor(s string) (color.RGBA, error) {
	if s == "" || s == "none" {
		return color.RGBA{}, nil
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
