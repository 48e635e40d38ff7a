package graphics

import (
	"image"
	"image/color"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 64

// GenerateQRCodeImage returns a borderless QR code image for payload.
// If payload is empty, it returns (nil, nil).
func GenerateQRCodeImage(payload string, sizePx int, fg, bg color.Color) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	qrCode.DisableBorder = true
	if fg != nil {
		qrCode.ForegroundColor = fg
	}
	if bg != nil {
		qrCode.BackgroundColor = bg
	}

	return qrCode.Image(sizePx), nil
}

// QRCode draws a QR code of Payload with its top-left corner at (X, Y).
// Nothing is drawn when the payload cannot be encoded.
type QRCode struct {
	X       int         `json:"x"`
	Y       int         `json:"y"`
	Size    int         `json:"size"`
	Payload string      `json:"payload"`
	Color   color.Color `json:"color"`
}

func (q QRCode) Draw(c *Canvas) {
	img, err := GenerateQRCodeImage(q.Payload, q.Size, q.Color, color.Transparent)
	if err != nil || img == nil {
		return
	}
	ImageAt{X: q.X, Y: q.Y, Image: img}.Draw(c)
}
