package editor

import (
	"image"
	"image/color"

	"github.com/ha1tch/onepix/internal/brush"
	"github.com/ha1tch/onepix/internal/fill"
	"github.com/ha1tch/onepix/internal/imageio"
	"github.com/ha1tch/onepix/internal/pixel"
)

// Command is one undoable mutation of the grid. Apply returns the number of
// cells it wrote.
type Command interface {
	Apply(g *pixel.Grid) (int, error)
}

// noop is implemented by commands that can tell in advance they would not
// change the grid. Such commands do not record an undo step.
type noop interface {
	Noop(g *pixel.Grid) bool
}

// PaintCommand stamps the brush once. Further cells of the same stroke are
// painted without new commands.
type PaintCommand struct {
	Top   image.Point
	Size  int
	Color color.NRGBA
}

func (c PaintCommand) Apply(g *pixel.Grid) (int, error) {
	return brush.Stroke(g, c.Top, c.Size, c.Color), nil
}

// FillCommand flood-fills the region around Seed.
type FillCommand struct {
	Seed  image.Point
	Color color.NRGBA
}

func (c FillCommand) Apply(g *pixel.Grid) (int, error) {
	return fill.Fill(g, c.Seed, c.Color)
}

// Noop reports whether the seed already holds the fill colour.
func (c FillCommand) Noop(g *pixel.Grid) bool {
	target, err := g.At(c.Seed.X, c.Seed.Y)
	return err == nil && target == c.Color
}

// ImportCommand replaces the grid content with a decoded image.
type ImportCommand struct {
	Image image.Image
}

func (c ImportCommand) Apply(g *pixel.Grid) (int, error) {
	imageio.Apply(g, c.Image)
	b := c.Image.Bounds()
	return min(b.Dx(), g.Width()) * min(b.Dy(), g.Height()), nil
}

// Do runs cmd as one undo step: the grid is snapshotted before cmd touches
// it. A failing command is rolled back and leaves no undo step.
func (e *Editor) Do(cmd Command) error {
	if n, ok := cmd.(noop); ok && n.Noop(e.grid) {
		return nil
	}
	snap := e.grid.Snapshot()
	e.history.Push(snap)
	n, err := cmd.Apply(e.grid)
	if err != nil {
		e.rollback(snap)
		return err
	}
	e.logger().Debug("command", "type", commandName(cmd), "cells", n, "undo", e.history.Len())
	return nil
}

// rollback restores snap and drops it from the history.
func (e *Editor) rollback(snap *pixel.Snapshot) {
	e.mustRestore(snap)
	_, _ = e.history.Pop()
}

func commandName(cmd Command) string {
	switch cmd.(type) {
	case PaintCommand:
		return "paint"
	case FillCommand:
		return "fill"
	case ImportCommand:
		return "import"
	default:
		return "custom"
	}
}
