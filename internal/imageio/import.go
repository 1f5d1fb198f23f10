package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/ha1tch/onepix/internal/pixel"
)

// Decode reads a complete PNG image from r. Nothing is returned until the
// whole image has been decoded.
func Decode(r io.Reader) (image.Image, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return img, nil
}

// ReadFile decodes the PNG file at path.
func ReadFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()
	return Decode(f)
}

// Apply clears g to the background colour and copies every pixel of img
// that falls inside the grid onto the cell with the same coordinates. The
// image is not scaled.
func Apply(g *pixel.Grid, img image.Image) {
	g.Fill(pixel.Background)
	b := img.Bounds()
	w, h := min(b.Dx(), g.Width()), min(b.Dy(), g.Height())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_ = g.Set(x, y, pixel.FromColor(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
}
