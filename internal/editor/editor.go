// Package editor is the canvas controller of the pixel-art editor. It owns
// the grid, the undo history, the view transform and the hover preview, and
// turns pointer events into commands according to the active mode.
//
// An Editor is driven from a single UI loop and is not safe for concurrent
// use.
package editor

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/ha1tch/onepix/internal/brush"
	"github.com/ha1tch/onepix/internal/history"
	"github.com/ha1tch/onepix/internal/imageio"
	"github.com/ha1tch/onepix/internal/pixel"
	"github.com/ha1tch/onepix/internal/view"
)

// DefaultCellSize is the display size of one cell at zoom 1.
const DefaultCellSize = 10

// Option configures an Editor.
type Option func(*options)

type options struct {
	cellSize     int
	historyLimit int
	logger       *slog.Logger
}

// WithCellSize sets the display size of one cell in device units.
func WithCellSize(n int) Option {
	return func(o *options) {
		o.cellSize = n
	}
}

// WithHistoryLimit sets the number of undo steps kept.
func WithHistoryLimit(n int) Option {
	return func(o *options) {
		o.historyLimit = n
	}
}

// WithLogger sets the logger of this editor instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Editor is the canvas controller.
type Editor struct {
	grid    *pixel.Grid
	history *history.Stack
	view    *view.Transform
	preview *brush.Preview
	log     *slog.Logger

	mode      Mode
	brushSize int
	color     color.NRGBA
	stroking  bool
}

// New creates an editor for a width × height grid.
func New(width, height int, opts ...Option) (*Editor, error) {
	o := options{cellSize: DefaultCellSize, historyLimit: history.Limit}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cellSize < 1 {
		o.cellSize = DefaultCellSize
	}

	g, err := pixel.NewGrid(width, height)
	if err != nil {
		return nil, fmt.Errorf("editor: %dx%d: %w", width, height, err)
	}
	cs := float64(o.cellSize)
	return &Editor{
		grid:      g,
		history:   history.New(o.historyLimit),
		view:      view.New(float64(width)*cs, float64(height)*cs, o.cellSize),
		preview:   brush.NewPreview(),
		log:       o.logger,
		mode:      ModePencil,
		brushSize: brush.MinSize,
		color:     color.NRGBA{A: 255},
	}, nil
}

func (e *Editor) logger() *slog.Logger {
	if e.log != nil {
		return e.log
	}
	return Logger()
}

// Grid returns the edited grid. Callers must not modify it directly.
func (e *Editor) Grid() *pixel.Grid {
	return e.grid
}

// View returns the view transform.
func (e *Editor) View() *view.Transform {
	return e.view
}

// HistoryLen returns the number of undo steps available.
func (e *Editor) HistoryLen() int {
	return e.history.Len()
}

// Mode returns the active mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// SetMode switches tools. Any hover preview is removed and any stroke ends.
func (e *Editor) SetMode(m Mode) {
	if !m.Valid() || m == e.mode {
		return
	}
	e.settle()
	e.mode = m
	e.logger().Debug("mode", "mode", m)
}

// BrushSize returns the brush size in cells.
func (e *Editor) BrushSize() int {
	return e.brushSize
}

// SetBrushSize sets the brush size, clamped to [brush.MinSize, brush.MaxSize].
func (e *Editor) SetBrushSize(n int) {
	n = brush.ClampSize(n)
	if n == e.brushSize {
		return
	}
	e.preview.Restore(e.grid)
	e.brushSize = n
}

// Color returns the foreground colour.
func (e *Editor) Color() color.NRGBA {
	return e.color
}

// SetColor sets the foreground colour used by the pencil and fill tools.
func (e *Editor) SetColor(c color.Color) {
	nc := pixel.FromColor(c)
	if nc == e.color {
		return
	}
	e.preview.Restore(e.grid)
	e.color = nc
}

// Previewing reports whether hover pixels are currently painted.
func (e *Editor) Previewing() bool {
	return e.preview.Len() > 0
}

// settle removes the hover preview and ends the current stroke.
func (e *Editor) settle() {
	e.preview.Restore(e.grid)
	e.stroking = false
}

// PointerMove handles a pointer move with no button held.
func (e *Editor) PointerMove(p gg.Point) {
	if h := dispatch[e.mode].move; h != nil {
		h(e, e.view.ToCell(p))
	}
}

// PointerPress handles a button press.
func (e *Editor) PointerPress(p gg.Point) {
	if h := dispatch[e.mode].press; h != nil {
		h(e, e.view.ToCell(p))
	}
}

// PointerDrag handles a pointer move with the button held.
func (e *Editor) PointerDrag(p gg.Point) {
	if h := dispatch[e.mode].drag; h != nil {
		h(e, e.view.ToCell(p))
	}
}

// PointerRelease ends the current stroke.
func (e *Editor) PointerRelease() {
	e.stroking = false
}

// PointerExit handles the pointer leaving the canvas.
func (e *Editor) PointerExit() {
	e.preview.Restore(e.grid)
}

// Scroll handles a wheel event; positive dy scrolls up.
func (e *Editor) Scroll(dy float64) {
	if h := dispatch[e.mode].scroll; h != nil {
		h(e, dy)
	}
}

// Undo restores the grid to the state before the last command. It returns
// false when there is nothing to undo.
func (e *Editor) Undo() bool {
	e.settle()
	snap, err := e.history.Pop()
	if errors.Is(err, history.ErrEmpty) {
		return false
	}
	e.mustRestore(snap)
	e.logger().Debug("undo", "remaining", e.history.Len())
	return true
}

// mustRestore restores snap. A snapshot that does not fit the grid means the
// editor state is corrupt, so it panics.
func (e *Editor) mustRestore(snap *pixel.Snapshot) {
	if err := e.grid.Restore(snap); err != nil {
		e.logger().Error("restore failed", "error", err)
		panic(fmt.Sprintf("editor: %v", err))
	}
}

// Import decodes a PNG from r and replaces the grid content with it as one
// undo step. If decoding fails the grid and history are left unchanged.
func (e *Editor) Import(r io.Reader) error {
	img, err := imageio.Decode(r)
	if err != nil {
		e.logger().Warn("import failed", "error", err)
		return err
	}
	return e.importImage(img)
}

// ImportFile is Import for the file at path.
func (e *Editor) ImportFile(path string) error {
	img, err := imageio.ReadFile(path)
	if err != nil {
		e.logger().Warn("import failed", "path", path, "error", err)
		return err
	}
	if err := e.importImage(img); err != nil {
		return err
	}
	e.logger().Info("imported", "path", path)
	return nil
}

func (e *Editor) importImage(img image.Image) error {
	e.settle()
	b := img.Bounds()
	if b.Dx() != e.grid.Width() || b.Dy() != e.grid.Height() {
		e.logger().Debug("import size differs from canvas",
			"image", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
			"canvas", fmt.Sprintf("%dx%d", e.grid.Width(), e.grid.Height()))
	}
	return e.Do(ImportCommand{Image: img})
}

// Export returns the drawn content cropped to its bounding box. The grid is
// not changed, apart from removing any hover preview.
func (e *Editor) Export() (*image.NRGBA, error) {
	e.preview.Restore(e.grid)
	return imageio.Export(e.grid)
}

// ExportFile writes the cropped content as PNG to path.
func (e *Editor) ExportFile(path string) error {
	img, err := e.Export()
	if err != nil {
		e.logger().Warn("export failed", "path", path, "error", err)
		return err
	}
	if err := imageio.WriteFile(path, img); err != nil {
		e.logger().Warn("export failed", "path", path, "error", err)
		return err
	}
	e.logger().Info("exported", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}
