package widget

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Hex parses a hex color string.
// Supported formats: "#RRGGBB" and "#RGB".
func Hex(hex string) (color.RGBA, error) {
	if !strings.HasPrefix(hex, "#") {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: missing #", hex)
	}
	if len(hex) == 4 {
		// #RGB -> #RRGGBB
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	if len(hex) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: expected #RGB or #RRGGBB", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return toRGBA(c), nil
}

// MustHex is like Hex but panics on malformed input. Use it for constants.
func MustHex(hex string) color.RGBA {
	c, err := Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Shade blends c towards white (amount > 0) or black (amount < 0) in Lab
// space. amount is clamped to [-1, 1].
func Shade(c color.Color, amount float64) color.RGBA {
	base, ok := colorful.MakeColor(c)
	if !ok {
		// fully transparent
		return color.RGBA{}
	}
	amount = max(-1, min(1, amount))
	target := colorful.Color{R: 1, G: 1, B: 1}
	if amount < 0 {
		target = colorful.Color{}
		amount = -amount
	}
	return toRGBA(base.BlendLab(target, amount).Clamped())
}

// Luminance returns the relative luminance of c (0.0-1.0).
func Luminance(c color.Color) float64 {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return 0
	}
	r, g, b := cc.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// IsLight reports whether c is perceptually light.
func IsLight(c color.Color) bool {
	return Luminance(c) > 0.2
}

// TextOn returns black or white, whichever reads better on bg.
func TextOn(bg color.Color) color.RGBA {
	if IsLight(bg) {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
