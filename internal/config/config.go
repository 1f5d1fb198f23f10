// Package config reads the startup settings of the editor from the command
// line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Defaults.
const (
	DefaultWidth    = 32
	DefaultHeight   = 32
	DefaultCellSize = 10
	DefaultOut      = "onepix.png"
)

// ErrInvalidSize is returned when a canvas dimension is not a positive
// integer.
var ErrInvalidSize = errors.New("config: canvas size must be a positive integer")

// Config is the startup configuration.
type Config struct {
	Width    int // grid columns
	Height   int // grid rows
	CellSize int // display pixels per cell
	Out      string
	In       string
	LogLevel slog.Level
}

// Parse reads flags from args (without the program name). Usage and errors
// are written to output.
func Parse(args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("onepix", flag.ContinueOnError)
	fs.SetOutput(output)

	width := fs.String("width", strconv.Itoa(DefaultWidth), "canvas width in cells")
	height := fs.String("height", strconv.Itoa(DefaultHeight), "canvas height in cells")
	cellSize := fs.Int("cell", DefaultCellSize, "display size of one cell in pixels")
	out := fs.String("out", DefaultOut, "path the exported PNG is written to")
	in := fs.String("in", "", "PNG to load into the canvas at startup")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	w, h, err := ParseCanvasSize(*width, *height)
	if err != nil {
		return Config{}, err
	}
	if *cellSize < 1 {
		return Config{}, fmt.Errorf("config: cell size %d must be at least 1", *cellSize)
	}

	return Config{
		Width:    w,
		Height:   h,
		CellSize: *cellSize,
		Out:      *out,
		In:       *in,
		LogLevel: ParseLevel(*logLevel),
	}, nil
}

// ParseCanvasSize converts the two dimension strings entered by the user.
func ParseCanvasSize(width, height string) (int, int, error) {
	w, err := parseDim(width)
	if err != nil {
		return 0, 0, fmt.Errorf("width: %w", err)
	}
	h, err := parseDim(height)
	if err != nil {
		return 0, 0, fmt.Errorf("height: %w", err)
	}
	return w, h, nil
}

func parseDim(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	return n, nil
}

// ParseLevel maps a level name to a slog level. Unknown names select info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
