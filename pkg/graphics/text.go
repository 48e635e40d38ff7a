package graphics

import (
	"image/color"
	"strings"

	"golang.org/x/image/font"
)

const (
	// AnchorLeftTop puts the left edge and the ascender line at (X, Y).
	AnchorLeftTop Anchor = iota
	// AnchorMiddle centers the text horizontally on X and puts the middle
	// between ascender and descender on Y.
	AnchorMiddle
)

type Anchor int

// DefaultLineSpacing is the gap in pixels between lines of MultilineText.
const DefaultLineSpacing = 4

// TextStyle selects font, size and color for text directives.
type TextStyle struct {
	Font  FontStyle   `json:"font"`
	Size  float64     `json:"size"`
	Color color.Color `json:"color"`
}

// Text draws a single line of text.
type Text struct {
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Text   string    `json:"text"`
	Style  TextStyle `json:"style"`
	Anchor Anchor    `json:"anchor"`
}

func (t Text) Draw(c *Canvas) {
	face := c.fonts.Face(t.Style.Font, t.Style.Size)
	c.dc.SetFontFace(face)
	c.dc.SetColor(t.Style.Color)

	x := t.X
	if t.Anchor == AnchorMiddle {
		w, _ := c.dc.MeasureString(t.Text)
		x -= w / 2
	}
	c.dc.DrawString(t.Text, x, Baseline(face, t.Y, t.Anchor))
}

// MultilineText draws Lines top to bottom starting at (X, Y), left aligned.
type MultilineText struct {
	X       float64   `json:"x"`
	Y       float64   `json:"y"`
	Lines   []string  `json:"lines"`
	Style   TextStyle `json:"style"`
	Spacing float64   `json:"spacing"`
}

// NewMultilineText splits s on newlines.
func NewMultilineText(x, y float64, s string, style TextStyle) MultilineText {
	return MultilineText{
		X:       x,
		Y:       y,
		Lines:   strings.Split(s, "\n"),
		Style:   style,
		Spacing: DefaultLineSpacing,
	}
}

func (t MultilineText) Draw(c *Canvas) {
	face := c.fonts.Face(t.Style.Font, t.Style.Size)
	c.dc.SetFontFace(face)
	c.dc.SetColor(t.Style.Color)

	step := LineHeight(face) + t.Spacing
	baseline := Baseline(face, t.Y, AnchorLeftTop)
	for i, line := range t.Lines {
		c.dc.DrawString(line, t.X, baseline+float64(i)*step)
	}
}

// Baseline returns the baseline y for text placed at y with the given anchor.
func Baseline(face font.Face, y float64, anchor Anchor) float64 {
	m := face.Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64
	switch anchor {
	case AnchorMiddle:
		return y + (ascent-descent)/2
	default:
		return y + ascent
	}
}

// LineHeight is the ascender-to-descender distance of face in pixels.
func LineHeight(face font.Face) float64 {
	m := face.Metrics()
	return float64(m.Ascent+m.Descent) / 64
}
