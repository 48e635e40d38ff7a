package graphics

import (
	"image/color"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// CodeBlock draws syntax-highlighted source. Tokens without a color of their
// own in Theme use Style.Color. Unknown languages are drawn uncolored.
type CodeBlock struct {
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Source   string    `json:"source"`
	Language string    `json:"language"`
	Theme    string    `json:"theme"`
	Style    TextStyle `json:"style"`
	Spacing  float64   `json:"spacing"`
}

func (b CodeBlock) Draw(c *Canvas) {
	lines, err := b.highlight()
	if err != nil {
		NewMultilineText(b.X, b.Y, b.Source, b.Style).Draw(c)
		return
	}

	face := c.fonts.Face(b.Style.Font, b.Style.Size)
	c.dc.SetFontFace(face)

	step := LineHeight(face) + b.Spacing
	baseline := Baseline(face, b.Y, AnchorLeftTop)
	for i, line := range lines {
		x := b.X
		y := baseline + float64(i)*step
		for _, span := range line {
			c.dc.SetColor(span.color)
			c.dc.DrawString(span.text, x, y)
			w, _ := c.dc.MeasureString(span.text)
			x += w
		}
	}
}

type codeSpan struct {
	text  string
	color color.Color
}

func (b CodeBlock) highlight() ([][]codeSpan, error) {
	lexer := lexers.Get(b.Language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	style := styles.Get(b.Theme)

	it, err := lexer.Tokenise(nil, strings.TrimRight(b.Source, "\n"))
	if err != nil {
		return nil, err
	}

	var out [][]codeSpan
	for _, tokens := range chroma.SplitTokensIntoLines(it.Tokens()) {
		var line []codeSpan
		for _, tok := range tokens {
			text := strings.TrimRight(tok.Value, "\n")
			if text == "" {
				continue
			}
			line = append(line, codeSpan{text: text, color: b.tokenColor(style, tok.Type)})
		}
		out = append(out, line)
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (b CodeBlock) tokenColor(style *chroma.Style, t chroma.TokenType) color.Color {
	entry := style.Get(t)
	// tokens that only inherit the theme's base text color use Style.Color
	if !entry.Colour.IsSet() || entry.Colour == style.Get(chroma.Background).Colour {
		return b.Style.Color
	}
	return color.RGBA{R: entry.Colour.Red(), G: entry.Colour.Green(), B: entry.Colour.Blue(), A: 0xff}
}
