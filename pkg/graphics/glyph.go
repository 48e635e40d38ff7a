package graphics

import (
	"fmt"
	"image"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
)

// Glyph draws a large symbol centered on (X, Y). It is rasterized from the
// raw font data through a vector renderer, which keeps big glyphs smooth.
// Without font data it falls back to an ordinary Text directive.
type Glyph struct {
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	Text  string    `json:"text"`
	Style TextStyle `json:"style"`
}

func (g Glyph) Draw(c *Canvas) {
	data := c.fonts.Data(g.Style.Font)
	if data != nil {
		img, err := RenderGlyph(data, g.Text, g.Style.Size, g.Style.Color)
		if err == nil {
			c.dc.DrawImageAnchored(img, int(g.X), int(g.Y), 0.5, 0.5)
			return
		}
	}
	Text{X: g.X, Y: g.Y, Text: g.Text, Style: g.Style, Anchor: AnchorMiddle}.Draw(c)
}

// RenderGlyph rasterizes text with the given font file at an em size of px
// pixels. The result is a transparent square image, 1.5 em wide, with the
// text centered horizontally.
func RenderGlyph(fontData []byte, text string, px float64, col color.Color) (image.Image, error) {
	if px <= 0 {
		return nil, fmt.Errorf("glyph size must be positive, got %v", px)
	}

	family := canvas.NewFontFamily("glyph")
	if err := family.LoadFont(fontData, 0, canvas.FontRegular); err != nil {
		return nil, err
	}
	// one canvas millimetre maps to one pixel below
	face := family.Face(mmToPoints(px), col, canvas.FontRegular, canvas.FontNormal)

	side := px * 1.5
	c := canvas.New(side, side)
	ctx := canvas.NewContext(c)
	// canvas y grows upwards; leave room for descenders below the baseline
	ctx.DrawText(side/2, side*0.3, canvas.NewTextLine(face, text, canvas.Center))

	return rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace), nil
}

func mmToPoints(mm float64) float64 {
	return mm * 2.834645669291339
}
