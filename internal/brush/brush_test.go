package brush

import (
	"image"
	"image/color"
	"sort"
	"testing"

	"github.com/ha1tch/onepix/internal/pixel"
)

var (
	blue = color.NRGBA{B: 255, A: 255}
	red  = color.NRGBA{R: 255, A: 255}
)

func newGrid(t *testing.T, w, h int) *pixel.Grid {
	t.Helper()
	g, err := pixel.NewGrid(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func sorted(pts []image.Point) []image.Point {
	out := append([]image.Point(nil), pts...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

func TestFootprint(t *testing.T) {
	bounds := image.Rect(0, 0, 3, 3)
	tests := []struct {
		name string
		top  image.Point
		size int
		want []image.Point
	}{
		{"single", image.Pt(0, 0), 1, []image.Point{{0, 0}}},
		{"size2", image.Pt(1, 1), 2, []image.Point{{1, 1}, {1, 2}, {2, 1}, {2, 2}}},
		{"clipped", image.Pt(1, 1), 3, []image.Point{{1, 1}, {1, 2}, {2, 1}, {2, 2}}},
		{"corner", image.Pt(2, 2), 10, []image.Point{{2, 2}}},
		{"outside", image.Pt(5, 5), 2, nil},
		{"negative", image.Pt(-1, -1), 2, []image.Point{{0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sorted(Footprint(tt.top, tt.size, bounds))
			if len(got) != len(tt.want) {
				t.Fatalf("Footprint = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Footprint = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestStrokeSize2(t *testing.T) {
	g := newGrid(t, 3, 3)
	n := Stroke(g, image.Pt(1, 1), 2, blue)
	if n != 4 {
		t.Errorf("Stroke wrote %d cells, want 4", n)
	}
	painted := map[image.Point]bool{{1, 1}: true, {1, 2}: true, {2, 1}: true, {2, 2}: true}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			c, _ := g.At(x, y)
			want := pixel.Background
			if painted[image.Pt(x, y)] {
				want = blue
			}
			if c != want {
				t.Errorf("cell (%d,%d) = %v, want %v", x, y, c, want)
			}
		}
	}
}

func TestStrokeClipsSilently(t *testing.T) {
	g := newGrid(t, 3, 3)
	if n := Stroke(g, image.Pt(1, 1), 3, blue); n != 4 {
		t.Errorf("Stroke wrote %d cells, want 4", n)
	}
}

func TestClampSize(t *testing.T) {
	for in, want := range map[int]int{-4: 1, 0: 1, 1: 1, 5: 5, 10: 10, 11: 10} {
		if got := ClampSize(in); got != want {
			t.Errorf("ClampSize(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestPreviewShowAndRestore(t *testing.T) {
	g := newGrid(t, 4, 4)
	_ = g.Set(1, 1, red)
	pv := NewPreview()

	if !pv.Show(g, image.Pt(0, 0), 2, blue) {
		t.Fatal("first Show returned false")
	}
	if pv.Len() != 4 {
		t.Fatalf("Len = %d, want 4", pv.Len())
	}
	if c, _ := g.At(1, 1); c != blue {
		t.Errorf("preview not painted: (1,1) = %v", c)
	}

	if pv.Show(g, image.Pt(0, 0), 2, blue) {
		t.Error("Show on same cell returned true")
	}

	pv.Show(g, image.Pt(2, 2), 2, blue)
	if c, _ := g.At(1, 1); c != red {
		t.Errorf("previous preview not restored: (1,1) = %v, want red", c)
	}
	if c, _ := g.At(0, 0); c != pixel.Background {
		t.Errorf("previous preview not restored: (0,0) = %v", c)
	}
	if c, _ := g.At(3, 3); c != blue {
		t.Errorf("new preview not painted: (3,3) = %v", c)
	}

	pv.Restore(g)
	if pv.Len() != 0 {
		t.Errorf("Len after Restore = %d", pv.Len())
	}
	if _, ok := pv.Active(); ok {
		t.Error("preview still active after Restore")
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := pixel.Background
			if x == 1 && y == 1 {
				want = red
			}
			if c, _ := g.At(x, y); c != want {
				t.Errorf("cell (%d,%d) = %v, want %v", x, y, c, want)
			}
		}
	}
}

func TestPreviewReshowAfterRestore(t *testing.T) {
	g := newGrid(t, 2, 2)
	pv := NewPreview()
	pv.Show(g, image.Pt(0, 0), 1, blue)
	pv.Restore(g)
	if !pv.Show(g, image.Pt(0, 0), 1, blue) {
		t.Error("Show at the same cell after Restore returned false")
	}
}

func TestPreviewCommitKeepsPaint(t *testing.T) {
	g := newGrid(t, 2, 2)
	pv := NewPreview()
	pv.Show(g, image.Pt(0, 0), 2, blue)
	pv.Commit()
	pv.Restore(g)
	if c, _ := g.At(1, 1); c != blue {
		t.Errorf("committed cell restored: (1,1) = %v", c)
	}
}
