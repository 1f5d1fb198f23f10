// Package brush computes the cells covered by a square brush and stamps
// them onto a grid, with a non-destructive hover preview.
package brush

import (
	"image"
	"image/color"

	"github.com/ha1tch/onepix/internal/pixel"
)

// Brush size limits, in cells per side.
const (
	MinSize = 1
	MaxSize = 10
)

// ClampSize limits size to [MinSize, MaxSize].
func ClampSize(size int) int {
	if size < MinSize {
		return MinSize
	}
	if size > MaxSize {
		return MaxSize
	}
	return size
}

// Footprint returns the cells of the size × size block whose top-left cell
// is top, clipped to bounds. Cells past the edge are skipped.
func Footprint(top image.Point, size int, bounds image.Rectangle) []image.Point {
	block := image.Rect(top.X, top.Y, top.X+size, top.Y+size).Intersect(bounds)
	if block.Empty() {
		return nil
	}
	cells := make([]image.Point, 0, block.Dx()*block.Dy())
	for x := block.Min.X; x < block.Max.X; x++ {
		for y := block.Min.Y; y < block.Max.Y; y++ {
			cells = append(cells, image.Pt(x, y))
		}
	}
	return cells
}

// Stroke paints the footprint at top with c and returns the number of cells
// written.
func Stroke(g *pixel.Grid, top image.Point, size int, c color.NRGBA) int {
	cells := Footprint(top, size, g.Bounds())
	for _, p := range cells {
		_ = g.Set(p.X, p.Y, c)
	}
	return len(cells)
}
