package format

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned by Resolve for identifiers outside the catalog.
var ErrUnknownFormat = errors.New("unknown format")

type ID string

const (
	Horizontal8  ID = "HORIZONTAL_8"
	Horizontal18 ID = "HORIZONTAL_18"
	Horizontal36 ID = "HORIZONTAL_36"
	Vertical4    ID = "VERTICAL_4"
	Vertical9    ID = "VERTICAL_9"
	Vertical16   ID = "VERTICAL_16"
	Vertical25   ID = "VERTICAL_25"
	Square2      ID = "SQUARE_2"
	Square6      ID = "SQUARE_6"
	Monitor3     ID = "MONITOR_3"
	Monitor12    ID = "MONITOR_12"
	Enhanced1    ID = "ENHANCED_1"
	Enhanced2    ID = "ENHANCED_2"
)

// Template file names, relative to the template base location.
const (
	TemplateHorizontal  = "HORIZONTAL.jpg"
	TemplateVertical    = "VERTICAL.jpg"
	TemplateSquare      = "SQUARE.jpg"
	TemplateMonitor     = "MONITOR.jpg"
	TemplateHorizontal2 = "HORIZONTAL2.jpg"
)

// Spec describes one preset: which template it is drawn on, its grid and
// every geometry constant the composer needs.
type Spec struct {
	ID       ID
	Template string
	Columns  int
	Rows     int
	Geometry Geometry
}

// Capacity is the number of cells on one page.
func (s Spec) Capacity() int {
	return s.Columns * s.Rows
}

// Cell returns the row and column of cell index i (row-major).
func (s Spec) Cell(i int) (row, col int) {
	return i / s.Columns, i % s.Columns
}

// CellOrigin returns the top-left pixel of the card art for cell index i.
func (s Spec) CellOrigin(i int) (x, y int) {
	row, col := s.Cell(i)
	g := s.Geometry
	return g.XStart + col*g.XPitch, g.YStart + row*g.YPitch
}

// Resolve looks up a format identifier.
func Resolve(id string) (Spec, error) {
	spec, ok := catalog[ID(strings.TrimSpace(id))]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownFormat, id)
	}
	return spec, nil
}

// IDs lists the recognised identifiers in catalog order.
func IDs() []ID {
	out := make([]ID, len(order))
	copy(out, order)
	return out
}
