package graphics

import (
	"image"
	"image/color"
	"image/draw"
)

// VerticalGradient fills Area one scanline at a time, interpolating linearly
// from From on the first row towards To. Channels are truncated, so the last
// row stops just short of To.
type VerticalGradient struct {
	Area image.Rectangle `json:"area"`
	From color.RGBA      `json:"from"`
	To   color.RGBA      `json:"to"`
}

// RowColor returns the color of the given row, counted from the top of Area.
func (g VerticalGradient) RowColor(row int) color.RGBA {
	h := g.Area.Dy()
	if h <= 0 {
		return g.From
	}
	t := float64(row) / float64(h)
	return color.RGBA{
		R: lerpChannel(g.From.R, g.To.R, t),
		G: lerpChannel(g.From.G, g.To.G, t),
		B: lerpChannel(g.From.B, g.To.B, t),
		A: 0xff,
	}
}

func (g VerticalGradient) Draw(c *Canvas) {
	area := g.Area.Intersect(c.img.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		line := image.Rect(area.Min.X, y, area.Max.X, y+1)
		draw.Draw(c.img, line, image.NewUniform(g.RowColor(y-g.Area.Min.Y)), image.Point{}, draw.Src)
	}
}
