package imagepkg

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/colornames"

	"github.com/youruser/purchasetable/internal/format"
)

// ErrInvalidStyle is returned when a style color cannot be parsed.
var ErrInvalidStyle = errors.New("invalid style")

// DefaultAccent is the brand red used when no accent color is given.
var DefaultAccent = color.NRGBA{R: 162, G: 58, B: 49, A: 255}

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

// Style carries the caller's visual parameters for one generation.
type Style struct {
	Accent         string
	BackgroundText string
	CaptionText    string
	TemplateURL    string
	Comment        string
	Title          string
	StoreName      string
	// QRText, when set, adds a QR code to the bottom-left corner.
	QRText string
}

type palette struct {
	accent     color.Color
	background color.Color
	caption    color.Color
}

// Validate checks the style colors without drawing anything.
func (s Style) Validate() error {
	_, err := s.palette()
	return err
}

func (s Style) palette() (palette, error) {
	accent, err := ParseColor(s.Accent, DefaultAccent)
	if err != nil {
		return palette{}, fmt.Errorf("%w: color: %v", ErrInvalidStyle, err)
	}
	bg, err := ParseColor(s.BackgroundText, black)
	if err != nil {
		return palette{}, fmt.Errorf("%w: background_text_color: %v", ErrInvalidStyle, err)
	}
	caption, err := ParseColor(s.CaptionText, white)
	if err != nil {
		return palette{}, fmt.Errorf("%w: cardname_and_price_text_color: %v", ErrInvalidStyle, err)
	}
	return palette{accent: accent, background: bg, caption: caption}, nil
}

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa and CSS color names. Empty
// input yields fallback.
func ParseColor(s string, fallback color.Color) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
		return nil, fmt.Errorf("unknown color %q", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// borderedBox is a w×h box of fill surrounded by border pixels of edge.
func borderedBox(w, h, border int, fill, edge color.Color) *image.NRGBA {
	box := imaging.New(w+2*border, h+2*border, edge)
	inner := image.Rect(border, border, border+w, border+h)
	draw.Draw(box, inner, image.NewUniform(fill), image.Point{}, draw.Src)
	return box
}

// captionFrame sits behind name and price: accent fill, white border.
func captionFrame(g format.Geometry, accent color.Color) *image.NRGBA {
	return borderedBox(g.FrameWidth, g.FrameHeight, g.FrameBorder, accent, white)
}

// numberFrame holds the catalog number: white fill, accent border.
func numberFrame(g format.Geometry, accent color.Color) *image.NRGBA {
	return borderedBox(g.NumberWidth, g.NumberHeight, g.NumberBorder, white, accent)
}

// paste copies src onto dst with its top-left at (x, y), replacing pixels.
func paste(dst *image.NRGBA, src image.Image, x, y int) {
	b := src.Bounds()
	draw.Draw(dst, image.Rect(x, y, x+b.Dx(), y+b.Dy()), src, b.Min, draw.Src)
}

// overlay alpha-composites src onto dst with its top-left at (x, y).
func overlay(dst *image.NRGBA, src image.Image, x, y int) {
	b := src.Bounds()
	draw.Draw(dst, image.Rect(x, y, x+b.Dx(), y+b.Dy()), src, b.Min, draw.Over)
}

// flattenOnWhite composites src over an opaque white background.
func flattenOnWhite(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := imaging.New(b.Dx(), b.Dy(), white)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
