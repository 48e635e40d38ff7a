package graphics

import (
	"fmt"
	"image/color"

	"github.com/go-playground/colors"
)

// ParseHex parses "#rrggbb" (or "#rgb") into an opaque-aware RGBA color.
func ParseHex(s string) (color.RGBA, error) {
	hex, err := colors.ParseHEX(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	rgba := hex.ToRGBA()
	return color.RGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: uint8(rgba.A*255 + 0.5)}, nil
}

// MustHex is ParseHex for palette constants. It panics on malformed input.
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func lerpChannel(from, to uint8, t float64) uint8 {
	return uint8(float64(from) + (float64(to)-float64(from))*t)
}
