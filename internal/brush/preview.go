package brush

import (
	"image"
	"image/color"

	"github.com/ha1tch/onepix/internal/pixel"
)

// Preview provisionally paints the brush footprint under the pointer and
// remembers what it covered so it can be put back.
type Preview struct {
	orig   map[image.Point]color.NRGBA
	last   image.Point
	active bool
}

// NewPreview returns an empty preview.
func NewPreview() *Preview {
	return &Preview{orig: make(map[image.Point]color.NRGBA)}
}

// Show moves the preview to top. When top is the cell already previewed it
// does nothing and returns false. Otherwise the previous footprint is
// restored, and the new one recorded and painted with c.
func (pv *Preview) Show(g *pixel.Grid, top image.Point, size int, c color.NRGBA) bool {
	if pv.active && pv.last == top {
		return false
	}
	pv.Restore(g)
	for _, p := range Footprint(top, size, g.Bounds()) {
		prev, _ := g.At(p.X, p.Y)
		pv.orig[p] = prev
		_ = g.Set(p.X, p.Y, c)
	}
	pv.last = top
	pv.active = true
	return true
}

// Restore puts every previewed cell back to its recorded colour and clears
// the preview.
func (pv *Preview) Restore(g *pixel.Grid) {
	for p, c := range pv.orig {
		_ = g.Set(p.X, p.Y, c)
	}
	pv.Commit()
}

// Commit forgets the recorded cells, keeping whatever is painted.
func (pv *Preview) Commit() {
	clear(pv.orig)
	pv.active = false
}

// Len returns the number of cells currently previewed.
func (pv *Preview) Len() int {
	return len(pv.orig)
}

// Active reports whether a preview is shown and at which cell.
func (pv *Preview) Active() (image.Point, bool) {
	return pv.last, pv.active
}
