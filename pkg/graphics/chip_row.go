package graphics

import (
	"image/color"
)

// ChipRow is a left-to-right row of rounded "tag" chips with centered labels.
type ChipRow struct {
	X            int         `json:"x"`
	Y            int         `json:"y"`
	ItemWidth    int         `json:"itemWidth"`
	ItemHeight   int         `json:"itemHeight"`
	ItemMargin   int         `json:"itemMargin"`
	CornerRadius float64     `json:"cornerRadius"`
	Fill         color.Color `json:"fill"`
	Label        TextStyle   `json:"label"`
	Labels       []string    `json:"labels"`
}

// Chip returns the outline of the i-th chip. Corners are inclusive, matching
// Rect.
func (r ChipRow) Chip(i int) Rect {
	x := r.X + i*(r.ItemWidth+r.ItemMargin)
	return Rect{
		X0:     x,
		Y0:     r.Y,
		X1:     x + r.ItemWidth,
		Y1:     r.Y + r.ItemHeight,
		Radius: r.CornerRadius,
		Fill:   r.Fill,
	}
}

// Directives expands the row into primitive directives.
func (r ChipRow) Directives() []Directive {
	out := make([]Directive, 0, len(r.Labels)*2)
	for i, label := range r.Labels {
		chip := r.Chip(i)
		out = append(out, chip, Text{
			X:      float64(chip.X0 + r.ItemWidth/2),
			Y:      float64(chip.Y0 + r.ItemHeight/2),
			Text:   label,
			Style:  r.Label,
			Anchor: AnchorMiddle,
		})
	}
	return out
}

func (r ChipRow) Draw(c *Canvas) {
	c.Apply(r.Directives()...)
}
