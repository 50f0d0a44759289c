package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Family is a parsed font file. It is shared by all requests; faces are
// created per Typesetter.
type Family struct {
	name   string
	parsed *opentype.Font
}

const embeddedFamily = "goregular"

// LoadFamily reads an OTF/TTF file. An empty path selects the embedded Go
// Regular font, which has no CJK glyphs.
func LoadFamily(path string) (*Family, error) {
	if path == "" {
		return ParseFamily(embeddedFamily, goregular.TTF)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	return ParseFamily(path, data)
}

func ParseFamily(name string, data []byte) (*Family, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", name, err)
	}
	f := &Family{name: name, parsed: parsed}
	// Surface a broken metrics table now instead of on the first page.
	if _, err := f.newFace(12); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Family) Name() string {
	return f.name
}

// Embedded reports whether f is the built-in Latin-only font.
func (f *Family) Embedded() bool {
	return f.name == embeddedFamily
}

func (f *Family) newFace(size int) (font.Face, error) {
	face, err := opentype.NewFace(f.parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face %s at %dpx: %w", f.name, size, err)
	}
	return face, nil
}

// NewTypesetter returns a measuring/drawing helper. Not safe for
// concurrent use.
func (f *Family) NewTypesetter() *Typesetter {
	return &Typesetter{family: f, faces: map[int]font.Face{}}
}

// TextBox is the rendered extent of a string drawn with its ascender line
// at y=0.
type TextBox struct {
	Width  int
	Height int
}

// Typesetter caches one face per pixel size. The first face error is kept
// in Err and a bitmap face is used in its place.
type Typesetter struct {
	family *Family
	faces  map[int]font.Face
	err    error
}

func (t *Typesetter) Err() error {
	return t.err
}

func (t *Typesetter) face(size int) font.Face {
	if size < 1 {
		size = 1
	}
	if face, ok := t.faces[size]; ok {
		return face
	}
	face, err := t.family.newFace(size)
	if err != nil {
		if t.err == nil {
			t.err = err
		}
		face = basicfont.Face7x13
	}
	t.faces[size] = face
	return face
}

// Measure returns the advance width and ink height of text at size.
func (t *Typesetter) Measure(text string, size int) TextBox {
	face := t.face(size)
	bounds, advance := font.BoundString(face, text)
	return TextBox{
		Width:  advance.Ceil(),
		Height: (bounds.Max.Y - bounds.Min.Y).Ceil(),
	}
}

// Fit returns the largest size <= start at which text is no wider than
// maxWidth. Size 1 is returned when nothing fits.
func (t *Typesetter) Fit(text string, start, maxWidth int) int {
	size := start
	if size < 1 {
		size = 1
	}
	for size > 1 && t.Measure(text, size).Width > maxWidth {
		size--
	}
	return size
}

// Draw writes text with its top-left (ascender line) at x, y.
func (t *Typesetter) Draw(dst draw.Image, text string, size, x, y int, c color.Color) {
	if text == "" {
		return
	}
	face := t.face(size)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + face.Metrics().Ascent},
	}
	d.DrawString(text)
}

// Close releases the cached faces.
func (t *Typesetter) Close() error {
	for size, face := range t.faces {
		_ = face.Close()
		delete(t.faces, size)
	}
	return nil
}
