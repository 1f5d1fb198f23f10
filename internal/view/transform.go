// Package view maps pointer positions on the zoomed canvas to grid cells and
// back.
//
// Device coordinates are measured from the top-left corner of the unzoomed
// canvas. Zooming scales the canvas about its centre, so a canvas point p is
// drawn at translation + p*zoom.
package view

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Zoom limits and step.
const (
	MinZoom = 1.0
	MaxZoom = 5.0
	Factor  = 1.1
)

// Transform holds the zoom level and the translation that keeps the zoomed
// canvas centred.
type Transform struct {
	width, height float64
	cellSize      int

	zoom float64
	tx   float64
	ty   float64
}

// New returns a transform for a canvas of displayW × displayH device units
// drawn with cellSize units per grid cell. A cell size below 1 is treated as 1.
func New(displayW, displayH float64, cellSize int) *Transform {
	if cellSize < 1 {
		cellSize = 1
	}
	t := &Transform{width: displayW, height: displayH, cellSize: cellSize, zoom: MinZoom}
	t.apply()
	return t
}

// Zoom returns the current zoom level.
func (t *Transform) Zoom() float64 {
	return t.zoom
}

// Translation returns the current offset of the zoomed canvas.
func (t *Transform) Translation() gg.Point {
	return gg.Pt(t.tx, t.ty)
}

// CellSize returns the device size of one cell at zoom 1.
func (t *Transform) CellSize() int {
	return t.cellSize
}

// ZoomIn scales up by Factor, stopping at MaxZoom. It reports whether the
// zoom changed.
func (t *Transform) ZoomIn() bool {
	if t.zoom >= MaxZoom {
		return false
	}
	t.zoom = math.Min(t.zoom*Factor, MaxZoom)
	t.apply()
	return true
}

// ZoomOut scales down by Factor, stopping at MinZoom. It reports whether the
// zoom changed.
func (t *Transform) ZoomOut() bool {
	if t.zoom <= MinZoom {
		return false
	}
	t.zoom = math.Max(t.zoom/Factor, MinZoom)
	t.apply()
	return true
}

// apply recomputes the translation for the current zoom.
func (t *Transform) apply() {
	cx, cy := t.width/2, t.height/2
	t.tx = cx - cx*t.zoom
	t.ty = cy - cy*t.zoom
}

// Matrix returns the canvas-to-device transform.
func (t *Transform) Matrix() gg.Matrix {
	return gg.Translate(t.tx, t.ty).Multiply(gg.Scale(t.zoom, t.zoom))
}

// ToCanvas maps a device position to an unzoomed canvas position.
func (t *Transform) ToCanvas(device gg.Point) gg.Point {
	return t.Matrix().Invert().TransformPoint(device)
}

// ToCell maps a device position to the grid cell under it. The result may
// lie outside the grid.
func (t *Transform) ToCell(device gg.Point) image.Point {
	p := t.ToCanvas(device)
	cs := float64(t.cellSize)
	return image.Pt(int(math.Floor(p.X/cs)), int(math.Floor(p.Y/cs)))
}

// ToDevice returns the device position of the top-left corner of cell.
func (t *Transform) ToDevice(cell image.Point) gg.Point {
	cs := float64(t.cellSize)
	return t.Matrix().TransformPoint(gg.Pt(float64(cell.X)*cs, float64(cell.Y)*cs))
}
