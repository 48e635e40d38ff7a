// Package assets holds the layouts of the store listing images.
//
// Each layout is a plain list of graphics directives with hardcoded
// coordinates. Rendering applies the list to a fresh canvas of the size the
// store requires.
package assets

import (
	"image"
	"image/color"

	"github.com/hrko/store-assets/pkg/graphics"
)

const (
	PromoWidth  = 440
	PromoHeight = 280
	PromoFile   = "promo-440x280.png"

	ScreenshotWidth  = 1280
	ScreenshotHeight = 800
	ScreenshotFile   = "screenshot-1280x800.png"
)

// Palette shared by both images.
var (
	colorNavy        = graphics.MustHex("#1e3c72")
	colorBlue        = graphics.MustHex("#2a5298")
	colorWhite       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorMuted       = graphics.MustHex("#aaaaaa")
	colorPage        = graphics.MustHex("#f5f7fa")
	colorBorder      = graphics.MustHex("#e0e0e0")
	colorText        = graphics.MustHex("#333333")
	colorSubtle      = graphics.MustHex("#666666")
	colorInput       = graphics.MustHex("#f8f9fa")
	colorInputBorder = graphics.MustHex("#dddddd")
	colorCodeBg      = graphics.MustHex("#1e1e1e")
	colorCodeFg      = graphics.MustHex("#d4d4d4")
)

// HeaderColor is the fill of the screenshot's header and footer bars.
var HeaderColor = colorNavy

// Asset is one image of the store listing.
type Asset struct {
	Name   string
	Width  int
	Height int
	// Layout returns the directives in drawing order, without the background.
	Layout     func() []graphics.Directive
	Background color.Color
}

// Render draws the asset with the given fonts.
func (a Asset) Render(fonts graphics.Fonts) *image.RGBA {
	c := graphics.NewCanvas(a.Width, a.Height, a.Background, fonts)
	c.Apply(a.Layout()...)
	return c.Image()
}

var (
	Promo = Asset{
		Name:       PromoFile,
		Width:      PromoWidth,
		Height:     PromoHeight,
		Layout:     PromoLayout,
		Background: colorNavy,
	}
	Screenshot = Asset{
		Name:       ScreenshotFile,
		Width:      ScreenshotWidth,
		Height:     ScreenshotHeight,
		Layout:     ScreenshotLayout,
		Background: colorPage,
	}
)

// All returns the assets in the order they are generated.
func All() []Asset {
	return []Asset{Promo, Screenshot}
}

// Lookup finds an asset by file name or by its short name ("promo",
// "screenshot").
func Lookup(name string) (Asset, bool) {
	switch name {
	case "promo", PromoFile:
		return Promo, true
	case "screenshot", ScreenshotFile:
		return Screenshot, true
	}
	return Asset{}, false
}

// RenderPromo draws the 440x280 promotional tile.
func RenderPromo(fonts graphics.Fonts) *image.RGBA {
	return Promo.Render(fonts)
}

// RenderScreenshot draws the 1280x800 feature screenshot.
func RenderScreenshot(fonts graphics.Fonts) *image.RGBA {
	return Screenshot.Render(fonts)
}
