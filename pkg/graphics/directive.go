package graphics

import (
	"image"
	"image/color"
)

// Directive is a single drawing instruction. Drawing is immediate and
// cannot be undone.
type Directive interface {
	Draw(c *Canvas)
}

// Fill paints the whole canvas.
type Fill struct {
	Color color.Color `json:"color"`
}

func (f Fill) Draw(c *Canvas) {
	c.dc.SetColor(f.Color)
	c.dc.Clear()
}

// Rect is a rectangle whose corners (X0,Y0) and (X1,Y1) are both inside the
// shape, so it covers X1-X0+1 columns. Nil Fill or Stroke skips that part.
// Stroke is one pixel wide and stays inside the bounds.
type Rect struct {
	X0     int         `json:"x0"`
	Y0     int         `json:"y0"`
	X1     int         `json:"x1"`
	Y1     int         `json:"y1"`
	Radius float64     `json:"radius,omitempty"`
	Fill   color.Color `json:"fill,omitempty"`
	Stroke color.Color `json:"stroke,omitempty"`
}

// Bounds returns the half-open pixel rectangle covered by r.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X0, r.Y0, r.X1+1, r.Y1+1)
}

func (r Rect) Draw(c *Canvas) {
	dc := c.dc
	x := float64(r.X0)
	y := float64(r.Y0)
	w := float64(r.X1 - r.X0 + 1)
	h := float64(r.Y1 - r.Y0 + 1)
	if w <= 0 || h <= 0 {
		return
	}
	radius := min(r.Radius, w/2, h/2)

	if r.Fill != nil {
		if radius > 0 {
			dc.DrawRoundedRectangle(x, y, w, h, radius)
		} else {
			dc.DrawRectangle(x, y, w, h)
		}
		dc.SetColor(r.Fill)
		dc.Fill()
	}

	if r.Stroke != nil {
		if radius > 0 {
			dc.DrawRoundedRectangle(x+0.5, y+0.5, w-1, h-1, max(radius-0.5, 0))
		} else {
			dc.DrawRectangle(x+0.5, y+0.5, w-1, h-1)
		}
		dc.SetLineWidth(1)
		dc.SetColor(r.Stroke)
		dc.Stroke()
	}
}

// ImageAt composites Image with its top-left corner at (X, Y).
type ImageAt struct {
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Image image.Image `json:"-"`
}

func (d ImageAt) Draw(c *Canvas) {
	if d.Image == nil {
		return
	}
	c.dc.DrawImage(d.Image, d.X, d.Y)
}
