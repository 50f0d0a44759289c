package imagepkg

import (
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQRImage returns a size×size QR code for text.
func GenerateQRImage(text string, size int) (image.Image, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return q.Image(size), nil
}

// drawQR places the store QR code in the bottom-left corner, mirroring the
// date label's margins. Its side is three date-label heights.
func drawQR(pg *page, text string) error {
	d := pg.geo.Decorations
	side := d.DateSize * 3
	img, err := GenerateQRImage(text, side)
	if err != nil {
		return err
	}
	h := pg.canvas.Bounds().Dy()
	paste(pg.canvas, img, d.DateRight, h-side-d.DateBottom)
	return nil
}
