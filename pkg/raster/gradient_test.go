package raster

import (
	"errors"
	"image/color"
	"testing"
)

func TestVerticalGradientRows(t *testing.T) {
	top := color.RGBA{10, 30, 80, 255}
	bottom := color.RGBA{20, 60, 140, 255}

	tests := []struct {
		name string
		w, h int
	}{
		{"feed", 1080, 1080},
		{"stories", 1080, 1920},
		{"tiny", 3, 2},
		{"single row", 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := VerticalGradient(tt.w, tt.h, top, bottom)
			if err != nil {
				t.Fatal(err)
			}
			if img.Bounds().Dx() != tt.w || img.Bounds().Dy() != tt.h {
				t.Fatalf("expected %dx%d, got %v", tt.w, tt.h, img.Bounds())
			}
			for y := 0; y < tt.h; y++ {
				ratio := float64(y) / float64(tt.h)
				want := [3]float64{
					10 + 10*ratio,
					30 + 30*ratio,
					80 + 60*ratio,
				}
				for _, x := range []int{0, tt.w / 2, tt.w - 1} {
					c := img.RGBAAt(x, y)
					got := [3]float64{float64(c.R), float64(c.G), float64(c.B)}
					for ch := range got {
						if d := got[ch] - want[ch]; d < -1 || d > 1 {
							t.Fatalf("row %d col %d channel %d: got %v, want %.2f", y, x, ch, got[ch], want[ch])
						}
					}
					if c.A != 255 {
						t.Fatalf("row %d: expected opaque, got alpha %d", y, c.A)
					}
				}
			}
			if got := img.RGBAAt(0, 0); got != top {
				t.Errorf("row 0: got %v, want %v", got, top)
			}
		})
	}
}

func TestVerticalGradientLastRowNearBottom(t *testing.T) {
	top := color.RGBA{0, 0, 0, 255}
	bottom := color.RGBA{255, 128, 64, 255}
	img, err := VerticalGradient(4, 256, top, bottom)
	if err != nil {
		t.Fatal(err)
	}
	last := img.RGBAAt(0, 255)
	if last.R < 250 || last.G < 124 || last.B < 60 {
		t.Errorf("last row %v not near bottom color %v", last, bottom)
	}
}

func TestVerticalGradientDescending(t *testing.T) {
	img, err := VerticalGradient(1, 10, color.RGBA{200, 200, 200, 255}, color.RGBA{100, 100, 100, 255})
	if err != nil {
		t.Fatal(err)
	}
	// 200 - 100*0.5 = 150
	if got := img.RGBAAt(0, 5).R; got != 150 {
		t.Errorf("midpoint: got %d, want 150", got)
	}
}

func TestVerticalGradientRejectsEmpty(t *testing.T) {
	for _, sz := range [][2]int{{100, 0}, {0, 100}, {-5, 10}} {
		if _, err := VerticalGradient(sz[0], sz[1], color.RGBA{}, color.RGBA{}); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("%v: expected ErrInvalidGeometry, got %v", sz, err)
		}
	}
}
