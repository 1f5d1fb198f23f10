package config

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		CellSize: DefaultCellSize,
		Out:      DefaultOut,
		LogLevel: slog.LevelInfo,
	}
	if cfg != want {
		t.Errorf("Parse(nil) = %+v, want %+v", cfg, want)
	}
}

func TestParseFlags(t *testing.T) {
	args := []string{"-width", "64", "-height", "48", "-cell", "6", "-out", "a.png", "-in", "b.png", "-log-level", "debug"}
	cfg, err := Parse(args, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 64 || cfg.Height != 48 || cfg.CellSize != 6 {
		t.Errorf("size = %dx%d cell %d", cfg.Width, cfg.Height, cfg.CellSize)
	}
	if cfg.Out != "a.png" || cfg.In != "b.png" {
		t.Errorf("paths = %q, %q", cfg.Out, cfg.In)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestParseRejectsBadSize(t *testing.T) {
	for _, args := range [][]string{
		{"-width", "abc"},
		{"-height", "12.5"},
		{"-width", "0"},
		{"-height", "-3"},
	} {
		if _, err := Parse(args, io.Discard); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Parse(%v) err = %v, want ErrInvalidSize", args, err)
		}
	}
}

func TestParseRejectsBadCellAndFlag(t *testing.T) {
	if _, err := Parse([]string{"-cell", "0"}, io.Discard); err == nil {
		t.Error("Parse accepted cell size 0")
	}
	if _, err := Parse([]string{"-bogus"}, io.Discard); err == nil {
		t.Error("Parse accepted an unknown flag")
	}
}

func TestParseCanvasSize(t *testing.T) {
	w, h, err := ParseCanvasSize(" 16 ", "9")
	if err != nil {
		t.Fatal(err)
	}
	if w != 16 || h != 9 {
		t.Errorf("ParseCanvasSize = %d, %d", w, h)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
