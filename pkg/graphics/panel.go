package graphics

import (
	"image/color"
)

// Panel is a bordered rounded card with an optional soft shadow underneath.
type Panel struct {
	Rect
	Shadow struct {
		Blur    int         `json:"blur"`
		OffsetY int         `json:"offsetY"`
		Color   color.Color `json:"color"`
	} `json:"shadow"`
}

// NewPanel returns a panel with the card colors used across the assets:
// white fill, light gray border and a faint shadow.
func NewPanel(r Rect) Panel {
	p := Panel{Rect: r}
	if p.Fill == nil {
		p.Fill = color.White
	}
	if p.Stroke == nil {
		p.Stroke = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	}
	p.Shadow.Blur = 6
	p.Shadow.OffsetY = 2
	p.Shadow.Color = color.NRGBA{0x1e, 0x3c, 0x72, 0x1c}
	return p
}

func (p Panel) Directives() []Directive {
	var out []Directive
	if p.Shadow.Color != nil && p.Shadow.Blur > 0 {
		out = append(out, Shadow{
			Area:    p.Rect.Bounds(),
			Radius:  p.Radius,
			Blur:    p.Shadow.Blur,
			OffsetY: p.Shadow.OffsetY,
			Color:   p.Shadow.Color,
		})
	}
	return append(out, p.Rect)
}

func (p Panel) Draw(c *Canvas) {
	c.Apply(p.Directives()...)
}
