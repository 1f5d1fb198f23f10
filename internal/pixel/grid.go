// Package pixel holds the logical raster being edited: a fixed-size grid of
// colour cells, independent of how large each cell is drawn on screen.
package pixel

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/colornames"
)

var (
	// ErrOutOfRange is returned for coordinates outside the grid.
	ErrOutOfRange = errors.New("pixel: coordinate out of range")
	// ErrSizeMismatch is returned when a snapshot does not fit the grid.
	ErrSizeMismatch = errors.New("pixel: snapshot size mismatch")
	// ErrInvalidSize is returned for non-positive grid dimensions.
	ErrInvalidSize = errors.New("pixel: invalid grid size")
)

// Background colours. A cell holding one of these is not counted as drawn
// content on export.
var (
	Background  = FromColor(colornames.White)
	LightGray   = FromColor(colornames.Lightgray)
	Transparent = color.NRGBA{}
)

// FromColor converts any colour to the non-premultiplied form stored in cells.
func FromColor(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// IsBackground reports whether c is fully transparent, white or light gray.
func IsBackground(c color.NRGBA) bool {
	return c.A == 0 || c == Background || c == LightGray
}

// Grid is a width × height raster of cells. Its dimensions never change.
type Grid struct {
	width  int
	height int
	cells  []color.NRGBA // row-major
}

// NewGrid creates a grid with every cell set to Background.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]color.NRGBA, width*height),
	}
	g.Fill(Background)
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Bounds returns the cell rectangle of the grid.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// In reports whether p addresses a cell of the grid.
func (g *Grid) In(p image.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the colour of cell (x, y).
func (g *Grid) At(x, y int) (color.NRGBA, error) {
	if !g.In(image.Pt(x, y)) {
		return color.NRGBA{}, ErrOutOfRange
	}
	return g.cells[y*g.width+x], nil
}

// Set overwrites cell (x, y).
func (g *Grid) Set(x, y int, c color.NRGBA) error {
	if !g.In(image.Pt(x, y)) {
		return ErrOutOfRange
	}
	g.cells[y*g.width+x] = c
	return nil
}

// Fill sets every cell to c.
func (g *Grid) Fill(c color.NRGBA) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Snapshot returns a deep copy of the current cells.
func (g *Grid) Snapshot() *Snapshot {
	s := &Snapshot{
		width:  g.width,
		height: g.height,
		cells:  make([]color.NRGBA, len(g.cells)),
	}
	copy(s.cells, g.cells)
	return s
}

// Restore overwrites every cell from s. The grid is left untouched when the
// dimensions differ.
func (g *Grid) Restore(s *Snapshot) error {
	if s == nil || s.width != g.width || s.height != g.height {
		return ErrSizeMismatch
	}
	copy(g.cells, s.cells)
	return nil
}

// Image returns a copy of the grid with one pixel per cell.
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(g.Bounds())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			img.SetNRGBA(x, y, g.cells[y*g.width+x])
		}
	}
	return img
}

// Snapshot is an immutable copy of a grid's cells.
type Snapshot struct {
	width  int
	height int
	cells  []color.NRGBA
}

// Width returns the number of columns captured.
func (s *Snapshot) Width() int {
	return s.width
}

// Height returns the number of rows captured.
func (s *Snapshot) Height() int {
	return s.height
}

// At returns the captured colour of cell (x, y).
func (s *Snapshot) At(x, y int) (color.NRGBA, error) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.NRGBA{}, ErrOutOfRange
	}
	return s.cells[y*s.width+x], nil
}
