package graphics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/flopp/go-findfont"
	"github.com/fufuok/cmap"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	FontRegular FontStyle = iota
	FontBold
	FontMono
)

type FontStyle int

func (s FontStyle) String() string {
	switch s {
	case FontRegular:
		return "regular"
	case FontBold:
		return "bold"
	case FontMono:
		return "mono"
	default:
		return fmt.Sprintf("FontStyle(%d)", int(s))
	}
}

// FontPaths names the font file for each style.
type FontPaths struct {
	Regular string `toml:"regular" json:"regular"`
	Bold    string `toml:"bold" json:"bold"`
	Mono    string `toml:"mono" json:"mono"`
}

func (p FontPaths) path(style FontStyle) string {
	switch style {
	case FontBold:
		return p.Bold
	case FontMono:
		return p.Mono
	default:
		return p.Regular
	}
}

// Fonts hands out font faces to directives. Implementations never fail: a
// style that could not be loaded is served by a substitute face.
type Fonts interface {
	// Face returns a face for style whose em size is px pixels.
	Face(style FontStyle, px float64) font.Face
	// Data returns the raw font file for style, or nil when the style is
	// served by a built-in face.
	Data(style FontStyle) []byte
	// Fallback reports whether no font file could be loaded at all.
	Fallback() bool
}

// DefaultFonts serves every style with basicfont.Face7x13, whatever size is asked for.
type DefaultFonts struct{}

func (DefaultFonts) Face(FontStyle, float64) font.Face { return basicfont.Face7x13 }
func (DefaultFonts) Data(FontStyle) []byte            { return nil }
func (DefaultFonts) Fallback() bool                    { return true }

type loadedFont struct {
	data []byte
	font *truetype.Font
}

// TrueTypeFonts serves faces parsed from font files. Faces are cached per
// style and size.
type TrueTypeFonts struct {
	fonts map[FontStyle]loadedFont
	faces *cmap.MapOf[string, font.Face] // key: style@size
}

func (f *TrueTypeFonts) resolve(style FontStyle) (loadedFont, bool) {
	if lf, ok := f.fonts[style]; ok {
		return lf, true
	}
	// bold and mono degrade to regular before giving up on files entirely
	lf, ok := f.fonts[FontRegular]
	return lf, ok
}

func (f *TrueTypeFonts) Face(style FontStyle, px float64) font.Face {
	lf, ok := f.resolve(style)
	if !ok {
		return basicfont.Face7x13
	}

	key := fmt.Sprintf("%s@%.2f", style, px)
	if face, ok := f.faces.Get(key); ok {
		return face
	}
	face := truetype.NewFace(lf.font, &truetype.Options{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	f.faces.Set(key, face)
	return face
}

func (f *TrueTypeFonts) Data(style FontStyle) []byte {
	lf, ok := f.resolve(style)
	if !ok {
		return nil
	}
	return lf.data
}

func (f *TrueTypeFonts) Fallback() bool { return false }

// Styles lists the styles that were loaded from their own file.
func (f *TrueTypeFonts) Styles() []FontStyle {
	var out []FontStyle
	for _, s := range []FontStyle{FontRegular, FontBold, FontMono} {
		if _, ok := f.fonts[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// LoadFonts loads every style named in paths. A path that cannot be read is
// looked up by file name in the system font directories. When no style can
// be loaded the result is DefaultFonts. logger may be nil.
func LoadFonts(paths FontPaths, logger *log.Logger) Fonts {
	tt := &TrueTypeFonts{
		fonts: make(map[FontStyle]loadedFont),
		faces: cmap.NewOf[string, font.Face](),
	}

	for _, style := range []FontStyle{FontRegular, FontBold, FontMono} {
		p := paths.path(style)
		if p == "" {
			continue
		}
		lf, err := loadFontFile(p)
		if err != nil {
			if logger != nil {
				logger.Debug("font fallback", "style", style, "path", p, "err", err)
			}
			continue
		}
		tt.fonts[style] = lf
	}

	if len(tt.fonts) == 0 {
		if logger != nil {
			logger.Debug("no font files available, using built-in face")
		}
		return DefaultFonts{}
	}
	return tt
}

func loadFontFile(p string) (loadedFont, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		found, ferr := findfont.Find(filepath.Base(p))
		if ferr != nil {
			return loadedFont{}, err
		}
		data, err = os.ReadFile(found)
		if err != nil {
			return loadedFont{}, err
		}
	}

	f, err := truetype.Parse(data)
	if err != nil {
		return loadedFont{}, fmt.Errorf("parse font %s: %w", p, err)
	}
	return loadedFont{data: data, font: f}, nil
}
