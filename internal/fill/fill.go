// Package fill repaints 4-connected regions of equal colour.
package fill

import (
	"image"
	"image/color"

	"github.com/ha1tch/onepix/internal/pixel"
)

// neighbours are up, down, left and right. No diagonals.
var neighbours = [4]image.Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Fill repaints the region around seed with c and returns the number of
// cells painted. When the seed already holds c nothing is touched.
func Fill(g *pixel.Grid, seed image.Point, c color.NRGBA) (int, error) {
	target, err := g.At(seed.X, seed.Y)
	if err != nil {
		return 0, err
	}
	if target == c {
		return 0, nil
	}
	n := 0
	walk(g, seed, target, func(p image.Point) {
		_ = g.Set(p.X, p.Y, c)
		n++
	})
	return n, nil
}

// Region returns the cells Fill would repaint from seed, in visit order,
// without changing the grid.
func Region(g *pixel.Grid, seed image.Point) ([]image.Point, error) {
	target, err := g.At(seed.X, seed.Y)
	if err != nil {
		return nil, err
	}
	var cells []image.Point
	walk(g, seed, target, func(p image.Point) {
		cells = append(cells, p)
	})
	return cells, nil
}

// walk runs a breadth-first traversal from seed over cells equal to target,
// calling visit as each cell is dequeued. A cell is compared against target
// before it is enqueued and enqueued at most once.
func walk(g *pixel.Grid, seed image.Point, target color.NRGBA, visit func(image.Point)) {
	w := g.Width()
	visited := make([]bool, w*g.Height())
	visited[seed.Y*w+seed.X] = true

	queue := []image.Point{seed}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		visit(p)

		for _, d := range neighbours {
			q := p.Add(d)
			if !g.In(q) || visited[q.Y*w+q.X] {
				continue
			}
			if c, _ := g.At(q.X, q.Y); c != target {
				continue
			}
			visited[q.Y*w+q.X] = true
			queue = append(queue, q)
		}
	}
}
