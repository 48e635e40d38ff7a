package graphics

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Canvas is a fixed-size raster surface that directives draw into.
type Canvas struct {
	img   *image.RGBA
	dc    *gg.Context
	fonts Fonts
}

// NewCanvas returns a width x height canvas filled with bg.
func NewCanvas(width, height int, bg color.Color, fonts Fonts) *Canvas {
	if fonts == nil {
		fonts = DefaultFonts{}
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	c := &Canvas{
		img:   img,
		dc:    gg.NewContextForRGBA(img),
		fonts: fonts,
	}
	Fill{Color: bg}.Draw(c)
	return c
}

func (c *Canvas) Width() int  { return c.img.Bounds().Dx() }
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Context exposes the underlying drawing context.
func (c *Canvas) Context() *gg.Context { return c.dc }

func (c *Canvas) Fonts() Fonts { return c.fonts }

// Apply draws ds in order.
func (c *Canvas) Apply(ds ...Directive) {
	for _, d := range ds {
		d.Draw(c)
	}
}

// Image returns the backing image. Later draws still mutate it.
func (c *Canvas) Image() *image.RGBA { return c.img }
