// Package render draws the logical grid at display resolution.
package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/ha1tch/onepix/internal/pixel"
)

// Canvas returns the grid scaled so each cell covers cellSize × cellSize
// pixels.
func Canvas(g *pixel.Grid, cellSize int) *image.RGBA {
	return Into(nil, g, cellSize)
}

// Into draws the grid into dst, reallocating it only when its size does not
// match. It returns the buffer drawn into.
func Into(dst *image.RGBA, g *pixel.Grid, cellSize int) *image.RGBA {
	if cellSize < 1 {
		cellSize = 1
	}
	r := image.Rect(0, 0, g.Width()*cellSize, g.Height()*cellSize)
	if dst == nil || dst.Bounds() != r {
		dst = image.NewRGBA(r)
	}
	src := g.Image()
	xdraw.NearestNeighbor.Scale(dst, r, src, src.Bounds(), xdraw.Src, nil)
	return dst
}
