package main

import (
	"flag"
	"fmt"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/hrko/store-assets/internal/config"
	"github.com/hrko/store-assets/pkg/graphics"
)

func main() {
	out := flag.String("o", "glyph.png", "output file")
	size := flag.Float64("size", 80, "em size in pixels")
	fontPath := flag.String("font", config.Default().Fonts.Regular, "font file")
	flag.Parse()

	text := "🛠️"
	if flag.NArg() > 0 {
		text = flag.Arg(0)
	}

	if err := render(*out, *size, *fontPath, text); err != nil {
		panic(err)
	}
}

func render(out string, size float64, fontPath, text string) error {
	fonts := graphics.LoadFonts(graphics.FontPaths{Regular: fontPath}, nil)
	data := fonts.Data(graphics.FontRegular)
	if data == nil {
		return fmt.Errorf("font not found: %s", fontPath)
	}

	img, err := graphics.RenderGlyph(data, text, size, color.Black)
	if err != nil {
		return err
	}
	return imaging.Save(img, out)
}
