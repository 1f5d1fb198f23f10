// Command onepix is a single-window pixel-art editor.
//
// Usage:
//
//	onepix -width 32 -height 32           # new 32x32 canvas
//	onepix -in sprite.png -out sprite.png # start from an existing PNG
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gogpu/gg"

	"github.com/ha1tch/onepix/internal/brush"
	"github.com/ha1tch/onepix/internal/config"
	"github.com/ha1tch/onepix/internal/editor"
	"github.com/ha1tch/onepix/internal/render"
)

const (
	screenWidth  = 1280
	screenHeight = 800
	fontSize     = 8
	leftPanel    = 100
	topBar       = 50
	statusFrames = 180
)

// GUI Control types
type Button struct {
	rect     rl.Rectangle
	text     string
	hover    bool
	selected bool
}

type Slider struct {
	rect  rl.Rectangle
	value int
	min   int
	max   int
	label string
}

// Application state
type App struct {
	cfg config.Config
	ed  *editor.Editor

	// Canvas placement on screen at zoom 1
	canvasX   float32
	canvasY   float32
	canvasW   float32
	canvasH   float32
	texture   rl.Texture2D
	frame     *image.RGBA
	framePix  []color.RGBA
	wasOver   bool
	lastMouse rl.Vector2

	// UI
	toolButtons   []Button
	fileButtons   []Button
	colorPalette  []rl.Color
	sizeSlider    Slider
	status        string
	statusTimer   int
	statusIsError bool
}

var tools = []struct {
	mode editor.Mode
	icon string
}{
	{editor.ModePencil, "P"},
	{editor.ModeEraser, "E"},
	{editor.ModeFill, "F"},
	{editor.ModeZoomPan, "Z"},
}

// Initialize application
func NewApp(cfg config.Config, logger *slog.Logger) (*App, error) {
	ed, err := editor.New(cfg.Width, cfg.Height, editor.WithCellSize(cfg.CellSize), editor.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:     cfg,
		ed:      ed,
		canvasW: float32(cfg.Width * cfg.CellSize),
		canvasH: float32(cfg.Height * cfg.CellSize),
	}

	// Center the canvas in the viewport
	app.canvasX = leftPanel + (screenWidth-leftPanel-app.canvasW)/2
	app.canvasY = topBar + (screenHeight-topBar-app.canvasH)/2

	// Initialize tool buttons
	x := float32(10)
	y := float32(50)
	for i, t := range tools {
		app.toolButtons = append(app.toolButtons, Button{
			rect:     rl.Rectangle{X: x + float32(i%2)*40, Y: y + float32(i/2)*40, Width: 36, Height: 36},
			text:     t.icon,
			selected: t.mode == ed.Mode(),
		})
	}

	// Initialize file buttons
	app.fileButtons = []Button{
		{rect: rl.Rectangle{X: leftPanel + 10, Y: 10, Width: 50, Height: 30}, text: "UNDO"},
		{rect: rl.Rectangle{X: leftPanel + 65, Y: 10, Width: 50, Height: 30}, text: "SAVE"},
		{rect: rl.Rectangle{X: leftPanel + 120, Y: 10, Width: 50, Height: 30}, text: "LOAD"},
	}

	// Initialize color palette
	app.colorPalette = []rl.Color{
		rl.Black, rl.White, rl.Red, rl.Green, rl.Blue,
		rl.Yellow, rl.Orange, rl.Purple, rl.Pink, rl.Brown,
		rl.Gray, rl.DarkGray, rl.SkyBlue, rl.Magenta, rl.Lime,
		{255, 0, 128, 255}, {128, 255, 0, 255}, {0, 128, 255, 255},
	}

	// Initialize brush size slider
	app.sizeSlider = Slider{
		rect:  rl.Rectangle{X: 10, Y: 160, Width: 70, Height: 20},
		value: ed.BrushSize(),
		min:   brush.MinSize,
		max:   brush.MaxSize,
		label: "SIZE",
	}

	return app, nil
}

// Load the canvas texture; needs an open window
func (app *App) LoadTexture() {
	app.frame = render.Canvas(app.ed.Grid(), app.cfg.CellSize)
	img := rl.NewImageFromImage(app.frame)
	app.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(app.texture, rl.FilterPoint)
}

// Show a message in the top bar for a few seconds
func (app *App) SetStatus(msg string, isError bool) {
	app.status = strings.ToUpper(msg)
	app.statusTimer = statusFrames
	app.statusIsError = isError
}

// Screen position to canvas device coordinates (unzoomed canvas space)
func (app *App) ScreenToDevice(pos rl.Vector2) gg.Point {
	return gg.Pt(float64(pos.X-app.canvasX), float64(pos.Y-app.canvasY))
}

// On-screen rectangle of the zoomed canvas
func (app *App) CanvasRect() rl.Rectangle {
	v := app.ed.View()
	tr := v.Translation()
	z := float32(v.Zoom())
	return rl.Rectangle{
		X:      app.canvasX + float32(tr.X),
		Y:      app.canvasY + float32(tr.Y),
		Width:  app.canvasW * z,
		Height: app.canvasH * z,
	}
}

func (app *App) selectMode(m editor.Mode) {
	app.ed.SetMode(m)
	for j := range app.toolButtons {
		app.toolButtons[j].selected = tools[j].mode == m
	}
}

func (app *App) undo() {
	if !app.ed.Undo() {
		app.SetStatus("nothing to undo", false)
	}
}

func (app *App) save() {
	if err := app.ed.ExportFile(app.cfg.Out); err != nil {
		app.SetStatus(err.Error(), true)
		return
	}
	app.SetStatus("canvas saved to "+app.cfg.Out, false)
}

func (app *App) load(path string) {
	if path == "" {
		app.SetStatus("drop a png onto the window to load it", false)
		return
	}
	if err := app.ed.ImportFile(path); err != nil {
		app.SetStatus(err.Error(), true)
		return
	}
	app.SetStatus("loaded "+path, false)
}

// Update application
func (app *App) Update() {
	mousePos := rl.GetMousePosition()
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)

	if app.statusTimer > 0 {
		app.statusTimer--
	}

	// Keyboard shortcuts
	switch {
	case ctrl && rl.IsKeyPressed(rl.KeyZ):
		app.undo()
	case ctrl && rl.IsKeyPressed(rl.KeyS):
		app.save()
	case rl.IsKeyPressed(rl.KeyP):
		app.selectMode(editor.ModePencil)
	case rl.IsKeyPressed(rl.KeyE):
		app.selectMode(editor.ModeEraser)
	case rl.IsKeyPressed(rl.KeyF):
		app.selectMode(editor.ModeFill)
	case rl.IsKeyPressed(rl.KeyZ):
		app.selectMode(editor.ModeZoomPan)
	}

	// Handle dropped files
	if rl.IsFileDropped() {
		files := rl.LoadDroppedFiles()
		if len(files) > 0 {
			app.cfg.In = files[0]
			app.load(files[0])
		}
		rl.UnloadDroppedFiles()
	}

	// Handle tool buttons
	for i := range app.toolButtons {
		btn := &app.toolButtons[i]
		btn.hover = rl.CheckCollisionPointRec(mousePos, btn.rect)

		if btn.hover && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			app.selectMode(tools[i].mode)
		}
	}

	// Handle file buttons
	for i := range app.fileButtons {
		btn := &app.fileButtons[i]
		btn.hover = rl.CheckCollisionPointRec(mousePos, btn.rect)

		if btn.hover && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			switch i {
			case 0: // Undo
				app.undo()
			case 1: // Save
				app.save()
			case 2: // Load
				app.load(app.cfg.In)
			}
		}
	}

	// Handle color palette
	paletteY := float32(220)
	for i, c := range app.colorPalette {
		x := float32(10 + (i%3)*25)
		y := paletteY + float32(i/3)*25
		rect := rl.Rectangle{X: x, Y: y, Width: 20, Height: 20}

		if rl.CheckCollisionPointRec(mousePos, rect) && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			app.ed.SetColor(c)
		}
	}

	// Handle brush size slider
	if rl.CheckCollisionPointRec(mousePos, app.sizeSlider.rect) && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		relX := (mousePos.X - app.sizeSlider.rect.X) / app.sizeSlider.rect.Width
		value := app.sizeSlider.min + int(relX*float32(app.sizeSlider.max-app.sizeSlider.min)+0.5)
		app.ed.SetBrushSize(value)
		app.sizeSlider.value = app.ed.BrushSize()
	}

	// Handle canvas input
	viewport := rl.Rectangle{X: leftPanel, Y: topBar, Width: screenWidth - leftPanel, Height: screenHeight - topBar}
	over := rl.CheckCollisionPointRec(mousePos, viewport) && rl.CheckCollisionPointRec(mousePos, app.CanvasRect())
	device := app.ScreenToDevice(mousePos)
	moved := mousePos != app.lastMouse

	switch {
	case over && rl.IsMouseButtonPressed(rl.MouseLeftButton):
		app.ed.PointerPress(device)
	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		if moved {
			app.ed.PointerDrag(device)
		}
	case over && moved:
		app.ed.PointerMove(device)
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.ed.PointerRelease()
	}

	if app.wasOver && !over {
		app.ed.PointerExit()
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && over {
		app.ed.Scroll(float64(wheel))
	}

	app.wasOver = over
	app.lastMouse = mousePos
}

// Upload the grid to the canvas texture
func (app *App) RefreshTexture() {
	app.frame = render.Into(app.frame, app.ed.Grid(), app.cfg.CellSize)
	pix := app.frame.Pix
	n := len(pix) / 4
	if cap(app.framePix) < n {
		app.framePix = make([]color.RGBA, n)
	}
	app.framePix = app.framePix[:n]
	for i := range app.framePix {
		app.framePix[i] = color.RGBA{pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3]}
	}
	rl.UpdateTexture(app.texture, app.framePix)
}

func drawButton(btn Button) {
	c := rl.Color{70, 70, 70, 255}
	if btn.selected {
		c = rl.Color{100, 100, 150, 255}
	} else if btn.hover {
		c = rl.Color{80, 80, 80, 255}
	}

	rl.DrawRectangleRec(btn.rect, c)
	rl.DrawRectangleLinesEx(btn.rect, 1, rl.Color{90, 90, 90, 255})

	textW := rl.MeasureText(btn.text, fontSize)
	textX := int32(btn.rect.X + btn.rect.Width/2 - float32(textW)/2)
	textY := int32(btn.rect.Y + btn.rect.Height/2 - 4)
	rl.DrawText(btn.text, textX, textY, fontSize, rl.White)
}

// Draw application
func (app *App) Draw() {
	app.RefreshTexture()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{40, 40, 40, 255})

	mousePos := rl.GetMousePosition()

	// Draw left toolbar
	rl.DrawRectangle(0, 0, leftPanel, screenHeight, rl.Color{50, 50, 50, 255})
	rl.DrawText("ONE-PIX", 10, 10, fontSize, rl.White)
	rl.DrawText("TOOLS", 10, 35, fontSize, rl.LightGray)

	for i, btn := range app.toolButtons {
		drawButton(btn)
		if btn.hover {
			rl.DrawText(tools[i].mode.String(), int32(mousePos.X+10), int32(mousePos.Y), fontSize, rl.Yellow)
		}
	}

	// Draw brush size slider
	s := app.sizeSlider
	rl.DrawText(s.label, int32(s.rect.X), int32(s.rect.Y-12), fontSize, rl.LightGray)
	rl.DrawRectangleRec(s.rect, rl.Color{60, 60, 60, 255})
	sliderPos := s.rect.X + float32(s.value-s.min)/float32(s.max-s.min)*s.rect.Width
	rl.DrawRectangle(int32(sliderPos-2), int32(s.rect.Y), 4, int32(s.rect.Height), rl.White)
	rl.DrawText(fmt.Sprintf("%d", s.value), int32(s.rect.X), int32(s.rect.Y+25), fontSize, rl.White)

	// Draw color palette
	current := app.ed.Color()
	currentRL := rl.NewColor(current.R, current.G, current.B, current.A)
	rl.DrawText("COLORS", 10, 205, fontSize, rl.LightGray)
	paletteY := float32(220)
	for i, c := range app.colorPalette {
		x := float32(10 + (i%3)*25)
		y := paletteY + float32(i/3)*25
		rect := rl.Rectangle{X: x, Y: y, Width: 20, Height: 20}

		rl.DrawRectangleRec(rect, c)
		if c == currentRL {
			rl.DrawRectangleLinesEx(rect, 2, rl.White)
		} else {
			rl.DrawRectangleLinesEx(rect, 1, rl.Color{70, 70, 70, 255})
		}
	}

	// Draw current color
	rl.DrawRectangle(10, 390, 40, 30, currentRL)
	rl.DrawRectangleLines(10, 390, 40, 30, rl.White)

	// Draw top bar
	rl.DrawRectangle(leftPanel, 0, screenWidth-leftPanel, topBar, rl.Color{60, 60, 60, 255})
	for _, btn := range app.fileButtons {
		drawButton(btn)
	}
	g := app.ed.Grid()
	info := fmt.Sprintf("ZOOM: %.0f%% | SIZE: %dX%d | TOOL: %s | BRUSH: %d | UNDO: %d",
		app.ed.View().Zoom()*100, g.Width(), g.Height(), app.ed.Mode(), app.ed.BrushSize(), app.ed.HistoryLen())
	rl.DrawText(info, leftPanel+185, 14, fontSize, rl.White)
	if app.statusTimer > 0 {
		c := rl.LightGray
		if app.statusIsError {
			c = rl.Yellow
		}
		rl.DrawText(app.status, leftPanel+185, 30, fontSize, c)
	}

	// Draw canvas viewport
	rl.BeginScissorMode(leftPanel, topBar, screenWidth-leftPanel, screenHeight-topBar)

	srcRect := rl.Rectangle{X: 0, Y: 0, Width: float32(app.texture.Width), Height: float32(app.texture.Height)}
	dstRect := app.CanvasRect()
	rl.DrawTexturePro(app.texture, srcRect, dstRect, rl.Vector2{}, 0, rl.White)
	rl.DrawRectangleLinesEx(dstRect, 2, rl.Color{100, 100, 100, 255})

	rl.EndScissorMode()

	rl.EndDrawing()
}

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "onepix:", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	editor.SetLogger(logger)

	app, err := NewApp(cfg, logger)
	if err != nil {
		logger.Error("onepix: fatal", "error", err)
		os.Exit(1)
	}
	if cfg.In != "" {
		if err := app.ed.ImportFile(cfg.In); err != nil {
			app.SetStatus(err.Error(), true)
		}
	}

	rl.InitWindow(screenWidth, screenHeight, "One-Pix")
	rl.SetTargetFPS(60)
	app.LoadTexture()

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}

	// Clean up
	rl.UnloadTexture(app.texture)
	rl.CloseWindow()
}
