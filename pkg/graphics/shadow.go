package graphics

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/esimov/stackblur-go"
	"github.com/fogleman/gg"
)

// Shadow draws a blurred rounded rectangle under Area, shifted by OffsetY.
// Nothing is drawn when the blur fails.
type Shadow struct {
	Area    image.Rectangle `json:"area"`
	Radius  float64         `json:"radius"`
	Blur    int             `json:"blur"`
	OffsetY int             `json:"offsetY"`
	Color   color.Color     `json:"color"`
}

func (s Shadow) Draw(c *Canvas) {
	img, err := s.Render()
	if err != nil {
		return
	}
	at := s.Area.Min.Add(image.Pt(-s.Blur, s.OffsetY-s.Blur))
	draw.Draw(c.img, img.Bounds().Add(at), img, image.Point{}, draw.Over)
}

// Render returns the blurred shadow on a transparent image padded by Blur
// pixels on every side.
func (s Shadow) Render() (*image.NRGBA, error) {
	pad := max(s.Blur, 0)
	w := s.Area.Dx() + pad*2
	h := s.Area.Dy() + pad*2

	dc := gg.NewContext(w, h)
	dc.DrawRoundedRectangle(float64(pad), float64(pad), float64(s.Area.Dx()), float64(s.Area.Dy()), s.Radius)
	dc.SetColor(s.Color)
	dc.Fill()

	if pad == 0 {
		out := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Src)
		return out, nil
	}
	return stackblur.Process(dc.Image(), uint32(pad))
}
