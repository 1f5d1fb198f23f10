// Package imageio moves pixel art in and out of the grid: cropped PNG
// export and atomic PNG import.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/ha1tch/onepix/internal/pixel"
)

var (
	// ErrNoContent is returned when the grid holds only background cells.
	ErrNoContent = errors.New("no content drawn on the canvas")
	// ErrInvalidDimensions is returned when the computed crop is empty.
	ErrInvalidDimensions = errors.New("invalid dimensions for the drawn content")
	// ErrEncode wraps failures writing an image.
	ErrEncode = errors.New("imageio: encode failed")
	// ErrDecode wraps failures reading an image.
	ErrDecode = errors.New("imageio: decode failed")
)

// Bounds returns the smallest rectangle holding every content cell of g.
func Bounds(g *pixel.Grid) (image.Rectangle, error) {
	minX, minY := g.Width(), g.Height()
	maxX, maxY := -1, -1
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, _ := g.At(x, y)
			if pixel.IsBackground(c) {
				continue
			}
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x), max(maxY, y)
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, ErrNoContent
	}
	r := image.Rect(minX, minY, maxX+1, maxY+1)
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return image.Rectangle{}, ErrInvalidDimensions
	}
	return r, nil
}

// Export returns the content of g cropped to Bounds, one pixel per cell,
// with its origin at (0, 0).
func Export(g *pixel.Grid) (*image.NRGBA, error) {
	r, err := Bounds(g)
	if err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c, _ := g.At(x, y)
			img.SetNRGBA(x-r.Min.X, y-r.Min.Y, c)
		}
	}
	return img, nil
}

// Encode writes img to w as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

// WriteFile encodes img as PNG into the file at path.
func WriteFile(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrEncode, cerr)
		}
	}()
	return Encode(f, img)
}
