package editor

import (
	"image"
	"image/color"

	"github.com/ha1tch/onepix/internal/brush"
	"github.com/ha1tch/onepix/internal/pixel"
)

// Mode is the active tool. Exactly one mode is active at a time.
type Mode int

const (
	ModePencil Mode = iota
	ModeEraser
	ModeFill
	ModeZoomPan
)

var modeNames = [...]string{"PENCIL", "ERASER", "FILL", "ZOOM"}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "UNKNOWN"
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= ModePencil && m <= ModeZoomPan
}

// handlers are the input reactions of one mode. A nil entry ignores the
// event.
type handlers struct {
	move   func(e *Editor, cell image.Point)
	press  func(e *Editor, cell image.Point)
	drag   func(e *Editor, cell image.Point)
	scroll func(e *Editor, dy float64)
}

// dispatch holds the handler set of every mode. Only the set of the active
// mode ever runs, so zooming and drawing never happen in the same mode.
var dispatch = [...]handlers{
	ModePencil:  {move: (*Editor).hover, press: (*Editor).beginStroke, drag: (*Editor).continueStroke},
	ModeEraser:  {move: (*Editor).hover, press: (*Editor).beginStroke, drag: (*Editor).continueStroke},
	ModeFill:    {press: (*Editor).floodFill},
	ModeZoomPan: {scroll: (*Editor).zoom},
}

// paintColor is the colour the brush lays down in the current mode.
func (e *Editor) paintColor() color.NRGBA {
	if e.mode == ModeEraser {
		return pixel.Background
	}
	return e.color
}

func (e *Editor) hover(cell image.Point) {
	if !e.grid.In(cell) {
		return
	}
	e.preview.Show(e.grid, cell, e.brushSize, e.paintColor())
}

func (e *Editor) beginStroke(cell image.Point) {
	// The snapshot must not capture provisional hover pixels.
	e.preview.Restore(e.grid)
	if !e.grid.In(cell) {
		return
	}
	cmd := PaintCommand{Top: cell, Size: e.brushSize, Color: e.paintColor()}
	if err := e.Do(cmd); err != nil {
		e.logger().Warn("stroke failed", "cell", cell, "error", err)
		return
	}
	e.stroking = true
}

func (e *Editor) continueStroke(cell image.Point) {
	if !e.stroking {
		return
	}
	n := brush.Stroke(e.grid, cell, e.brushSize, e.paintColor())
	e.logger().Debug("stroke", "mode", e.mode, "cell", cell, "cells", n)
}

func (e *Editor) floodFill(cell image.Point) {
	if !e.grid.In(cell) {
		return
	}
	if err := e.Do(FillCommand{Seed: cell, Color: e.color}); err != nil {
		e.logger().Warn("fill failed", "cell", cell, "error", err)
	}
}

func (e *Editor) zoom(dy float64) {
	var changed bool
	switch {
	case dy > 0:
		changed = e.view.ZoomIn()
	case dy < 0:
		changed = e.view.ZoomOut()
	}
	if changed {
		e.logger().Debug("zoom", "level", e.view.Zoom())
	}
}
