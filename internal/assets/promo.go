package assets

import (
	"image"
	"image/color"

	"github.com/hrko/store-assets/pkg/graphics"
)

var (
	promoGradientTop    = color.RGBA{30, 60, 114, 0xff}
	promoGradientBottom = color.RGBA{42, 82, 152, 0xff}

	promoTags = []string{"JSON", "时间戳", "Base64", "JWT", "UUID", "哈希"}
)

// PromoLayout is the promotional tile: gradient, icon, title, tagline and a
// row of feature tags.
func PromoLayout() []graphics.Directive {
	desc := graphics.TextStyle{Font: graphics.FontRegular, Size: 14, Color: colorMuted}

	return []graphics.Directive{
		graphics.VerticalGradient{
			Area: image.Rect(0, 0, PromoWidth, PromoHeight),
			From: promoGradientTop,
			To:   promoGradientBottom,
		},
		graphics.Glyph{
			X:     220,
			Y:     60,
			Text:  "🛠️",
			Style: graphics.TextStyle{Font: graphics.FontRegular, Size: 80, Color: colorWhite},
		},
		graphics.Text{
			X:      220,
			Y:      140,
			Text:   "开发者工具箱",
			Style:  graphics.TextStyle{Font: graphics.FontBold, Size: 28, Color: colorWhite},
			Anchor: graphics.AnchorMiddle,
		},
		graphics.Text{
			X:      220,
			Y:      180,
			Text:   "JSON格式化 | 时间戳转换 | Base64编解码",
			Style:  desc,
			Anchor: graphics.AnchorMiddle,
		},
		graphics.ChipRow{
			X:            70,
			Y:            220,
			ItemWidth:    50,
			ItemHeight:   24,
			ItemMargin:   5,
			CornerRadius: 12,
			Fill:         colorBlue,
			Label:        graphics.TextStyle{Font: graphics.FontRegular, Size: 14, Color: colorWhite},
			Labels:       promoTags,
		},
	}
}
