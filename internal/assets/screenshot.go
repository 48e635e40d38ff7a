package assets

import (
	"github.com/hrko/store-assets/pkg/graphics"
)

type feature struct {
	title string
	desc  string
}

var (
	quickActions = []string{"✨ 智能格式化", "📋 复制选中", "🕐 当前时间戳", "🆔 生成UUID"}

	features = []feature{
		{"⏰ 时间工具", "时间戳转换、日期计算"},
		{"🔐 编解码", "Base64、URL、HTML"},
		{"📝 格式化", "JSON、JWT、智能识别"},
		{"📄 文本", "统计、大小写、去重"},
		{"🎲 生成器", "UUID、密码、二维码"},
		{"🔒 安全", "SHA-256、SHA-512"},
	}
)

// Index of the feature card that carries a sample QR code.
const qrFeature = 4

var (
	styleTitle      = graphics.TextStyle{Font: graphics.FontBold, Size: 16, Color: colorNavy}
	styleTitleLight = graphics.TextStyle{Font: graphics.FontBold, Size: 16, Color: colorWhite}
	styleNormal     = graphics.TextStyle{Font: graphics.FontRegular, Size: 11, Color: colorText}
	styleOnButton   = graphics.TextStyle{Font: graphics.FontRegular, Size: 11, Color: colorWhite}
	styleDesc       = graphics.TextStyle{Font: graphics.FontRegular, Size: 11, Color: colorSubtle}
	styleCode       = graphics.TextStyle{Font: graphics.FontMono, Size: 10, Color: colorText}
	styleCodeDark   = graphics.TextStyle{Font: graphics.FontMono, Size: 10, Color: colorCodeFg}

	quickActionGrid = graphics.NewGrid(20, 85, len(quickActions), 135, 45, 10, 0)
	featureGrid     = graphics.NewGrid(20, 470, 3, 400, 70, 20, 10)
)

// ScreenshotLayout is the feature screenshot: a mock of the extension popup
// with quick actions, two live demos and a feature overview.
func ScreenshotLayout() []graphics.Directive {
	var ds []graphics.Directive
	ds = append(ds, header()...)
	ds = append(ds, quickActionRow()...)
	ds = append(ds, formatterDemo()...)
	ds = append(ds, jwtDemo()...)
	ds = append(ds, featureCards()...)
	ds = append(ds, footer()...)
	return ds
}

func header() []graphics.Directive {
	return []graphics.Directive{
		graphics.Rect{X0: 0, Y0: 0, X1: ScreenshotWidth, Y1: 50, Fill: colorNavy},
		graphics.Text{X: 20, Y: 15, Text: "🛠️ 开发者工具箱", Style: styleTitleLight},
	}
}

func quickActionRow() []graphics.Directive {
	ds := []graphics.Directive{
		graphics.Text{X: 20, Y: 60, Text: "快捷操作", Style: styleTitle},
	}
	for i, label := range quickActions {
		cell := quickActionGrid.Cell(i)
		cell.Radius = 8
		cell.Fill = colorWhite
		cell.Stroke = colorBorder
		ds = append(ds, cell, graphics.Text{
			X:      float64(cell.X0 + 67),
			Y:      float64(cell.Y0 + 22),
			Text:   label,
			Style:  styleNormal,
			Anchor: graphics.AnchorMiddle,
		})
	}
	return ds
}

func button(x0, y0, x1, y1 int, label string) []graphics.Directive {
	return []graphics.Directive{
		graphics.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1, Radius: 4, Fill: colorNavy},
		graphics.Text{
			X:      float64(x0+x1) / 2,
			Y:      float64(y0+y1) / 2,
			Text:   label,
			Style:  styleOnButton,
			Anchor: graphics.AnchorMiddle,
		},
	}
}

func inputBox(x0, y0, x1, y1 int) graphics.Rect {
	return graphics.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1, Fill: colorInput, Stroke: colorInputBorder}
}

func formatterDemo() []graphics.Directive {
	const y = 150

	output, err := FormatJSON(demoJSON)
	if err != nil {
		output = "❌ " + err.Error()
	}

	ds := []graphics.Directive{
		graphics.NewPanel(graphics.Rect{X0: 20, Y0: y, X1: 620, Y1: y + 300, Radius: 8}),
		graphics.Text{X: 30, Y: y + 10, Text: "📝 JSON 格式化", Style: styleTitle},
		inputBox(30, y+40, 610, y+130),
		graphics.Text{X: 35, Y: y + 50, Text: demoJSON, Style: styleCode},
	}
	ds = append(ds, button(30, y+140, 90, y+165, "格式化")...)
	return append(ds,
		graphics.Rect{X0: 30, Y0: y + 175, X1: 610, Y1: y + 280, Fill: colorCodeBg},
		graphics.CodeBlock{
			X:        35,
			Y:        y + 185,
			Source:   output,
			Language: "json",
			Theme:    "monokai",
			Style:    styleCodeDark,
			Spacing:  graphics.DefaultLineSpacing,
		},
	)
}

func jwtDemo() []graphics.Directive {
	const y = 150

	token := DemoToken()
	result := "❌ "
	if summary, err := DecodeJWT(token); err != nil {
		result += err.Error()
	} else {
		result = summary.String()
	}

	ds := []graphics.Directive{
		graphics.NewPanel(graphics.Rect{X0: 640, Y0: y, X1: 1260, Y1: y + 300, Radius: 8}),
		graphics.Text{X: 650, Y: y + 10, Text: "🎫 JWT 解析", Style: styleTitle},
		inputBox(650, y+40, 1250, y+100),
		graphics.Text{X: 655, Y: y + 50, Text: TokenPreview(token), Style: styleCode},
	}
	ds = append(ds, button(650, y+110, 710, y+135, "解析")...)
	return append(ds,
		inputBox(650, y+145, 1250, y+280),
		graphics.NewMultilineText(655, y+155, result, styleCode),
	)
}

func featureCards() []graphics.Directive {
	var ds []graphics.Directive
	for i, f := range features {
		cell := featureGrid.Cell(i)
		cell.Radius = 8
		ds = append(ds,
			graphics.NewPanel(cell),
			graphics.Text{X: float64(cell.X0 + 15), Y: float64(cell.Y0 + 15), Text: f.title, Style: styleTitle},
			graphics.Text{X: float64(cell.X0 + 15), Y: float64(cell.Y0 + 40), Text: f.desc, Style: styleDesc},
		)
		if i == qrFeature {
			ds = append(ds, graphics.QRCode{
				X:       cell.X1 - 62,
				Y:       cell.Y0 + 7,
				Size:    56,
				Payload: "开发者工具箱",
				Color:   colorNavy,
			})
		}
	}
	return ds
}

func footer() []graphics.Directive {
	return []graphics.Directive{
		graphics.Rect{X0: 0, Y0: 770, X1: ScreenshotWidth, Y1: ScreenshotHeight, Fill: colorNavy},
		graphics.Text{
			X:      640,
			Y:      785,
			Text:   "按 Ctrl+Shift+D 快速打开 | 所有数据本地处理，保护隐私",
			Style:  styleOnButton,
			Anchor: graphics.AnchorMiddle,
		},
	}
}
