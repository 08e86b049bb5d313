package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewLayer(t *testing.T) {
	l, err := NewLayer(30, 20)
	if err != nil {
		t.Fatal(err)
	}
	if l.Bounds().Dx() != 30 || l.Bounds().Dy() != 20 {
		t.Errorf("expected 30x20, got %v", l.Bounds())
	}
	if a := l.NRGBAAt(10, 10).A; a != 0 {
		t.Errorf("expected transparent layer, got alpha %d", a)
	}

	for _, sz := range []image.Point{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := NewLayer(sz.X, sz.Y); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("NewLayer(%d,%d): expected ErrInvalidGeometry, got %v", sz.X, sz.Y, err)
		}
	}
}

func TestPasteBleedClipsToCanvas(t *testing.T) {
	const canvasW, canvasH = 300, 200
	canvas := solid(canvasW, canvasH, color.NRGBA{B: 255, A: 255})
	layer := pattern(200, 60)

	at := image.Pt(canvasW-50, 120)
	out := Paste(canvas, layer, at)

	if out.Bounds() != image.Rect(0, 0, canvasW, canvasH) {
		t.Fatalf("canvas size changed: %v", out.Bounds())
	}
	// Visible part is the 50x60 sub-region at the layer's left edge, but
	// only the rows that fit (200-120 = 80 >= 60).
	for y := 0; y < 60; y++ {
		for x := 0; x < 50; x++ {
			got := out.NRGBAAt(at.X+x, at.Y+y)
			want := layer.NRGBAAt(x, y)
			if got != want {
				t.Fatalf("pixel (%d,%d): got %v, want %v", at.X+x, at.Y+y, got, want)
			}
		}
	}
	if got := out.NRGBAAt(at.X-1, at.Y); got != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("pixel left of layer changed: %v", got)
	}
	if canvas.NRGBAAt(canvasW-1, 150) != (color.NRGBA{B: 255, A: 255}) {
		t.Error("Paste mutated its destination")
	}
}

func TestPasteNegativeOffset(t *testing.T) {
	canvas := solid(100, 100, color.NRGBA{A: 255})
	layer := pattern(40, 40)

	out := Paste(canvas, layer, image.Pt(-10, -20))
	if got, want := out.NRGBAAt(0, 0), layer.NRGBAAt(10, 20); got != want {
		t.Errorf("top-left: got %v, want %v", got, want)
	}
	if got := out.NRGBAAt(30, 20); got != (color.NRGBA{A: 255}) {
		t.Errorf("outside layer: got %v", got)
	}
}

func TestPasteStraightAlpha(t *testing.T) {
	canvas := solid(4, 4, color.NRGBA{R: 0, G: 0, B: 200, A: 255})
	half := solid(4, 4, color.NRGBA{R: 200, G: 0, B: 0, A: 128})

	got := Paste(canvas, half, image.Point{}).NRGBAAt(1, 1)
	// dst = src*a + dst*(1-a) with a = 128/255
	a := 128.0 / 255.0
	wantR := 200 * a
	wantB := 200 * (1 - a)
	if d := float64(got.R) - wantR; d < -1 || d > 1 {
		t.Errorf("red: got %d, want ~%.1f", got.R, wantR)
	}
	if d := float64(got.B) - wantB; d < -1 || d > 1 {
		t.Errorf("blue: got %d, want ~%.1f", got.B, wantB)
	}
	if got.A != 255 {
		t.Errorf("alpha over opaque should stay opaque, got %d", got.A)
	}
}

func TestClipTo(t *testing.T) {
	img := pattern(120, 80)
	out, err := ClipTo(img, 100, 50)
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 50 {
		t.Errorf("expected 100x50, got %v", out.Bounds())
	}
	if _, err := ClipTo(img, 0, 10); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestCropInsets(t *testing.T) {
	img := pattern(100, 200)
	out, err := CropInsets(img, 10, 0, 30, 5)
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds().Dx() != 95 || out.Bounds().Dy() != 160 {
		t.Fatalf("expected 95x160, got %v", out.Bounds())
	}
	if got, want := out.NRGBAAt(0, 0), img.NRGBAAt(5, 10); got != want {
		t.Errorf("origin: got %v, want %v", got, want)
	}

	for _, in := range [][4]int{
		{100, 0, 100, 0}, // exact fit
		{120, 0, 120, 0}, // overlapping rows
		{0, 60, 0, 60},   // overlapping columns
		{0, 0, 250, 0},   // one side past the far edge
	} {
		if _, err := CropInsets(img, in[0], in[1], in[2], in[3]); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("crop %v: expected ErrInvalidGeometry, got %v", in, err)
		}
	}
	if _, err := CropInsets(img, -1, 0, 0, 0); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("negative inset: expected ErrInvalidGeometry, got %v", err)
	}
}
