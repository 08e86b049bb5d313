package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestRoundedRectMaskCorners(t *testing.T) {
	mask, err := RoundedRectMask(100, 100, 20)
	if err != nil {
		t.Fatal(err)
	}
	if mask.Bounds() != image.Rect(0, 0, 100, 100) {
		t.Fatalf("mask bounds %v", mask.Bounds())
	}

	// Centers of the four corner circles are inside.
	for _, p := range []image.Point{{20, 20}, {79, 20}, {20, 79}, {79, 79}} {
		if got := mask.AlphaAt(p.X, p.Y).A; got != 255 {
			t.Errorf("corner center %v: got %d, want 255", p, got)
		}
	}
	// Outermost corner pixels are outside.
	for _, p := range []image.Point{{0, 0}, {99, 0}, {0, 99}, {99, 99}} {
		if got := mask.AlphaAt(p.X, p.Y).A; got != 0 {
			t.Errorf("corner %v: got %d, want 0", p, got)
		}
	}
	// Straight edges are fully covered.
	for _, p := range []image.Point{{0, 50}, {50, 0}, {99, 50}, {50, 99}} {
		if got := mask.AlphaAt(p.X, p.Y).A; got != 255 {
			t.Errorf("edge %v: got %d, want 255", p, got)
		}
	}
}

func TestRoundedRectMaskZeroRadius(t *testing.T) {
	mask, err := RoundedRectMask(16, 9, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i, a := range mask.Pix {
		if a != 255 {
			t.Fatalf("pixel %d: got %d, want 255", i, a)
		}
	}
}

func TestRoundedRectMaskClampsRadius(t *testing.T) {
	if got := ClampRadius(100, 40, 500); got != 20 {
		t.Errorf("ClampRadius: got %d, want 20", got)
	}
	clamped, err := RoundedRectMask(100, 40, 500)
	if err != nil {
		t.Fatal(err)
	}
	exact, err := RoundedRectMask(100, 40, 20)
	if err != nil {
		t.Fatal(err)
	}
	for i := range clamped.Pix {
		if clamped.Pix[i] != exact.Pix[i] {
			t.Fatalf("pixel %d differs between clamped and exact radius", i)
		}
	}
	if clamped.AlphaAt(50, 20).A != 255 {
		t.Error("pill center should be inside")
	}
}

func TestRoundedRectMaskInvalid(t *testing.T) {
	cases := [][3]int{{0, 10, 2}, {10, 0, 2}, {10, 10, -1}}
	for _, c := range cases {
		if _, err := RoundedRectMask(c[0], c[1], c[2]); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("%v: expected ErrInvalidGeometry, got %v", c, err)
		}
	}
}

func TestRoundCorners(t *testing.T) {
	src := solid(60, 40, color.NRGBA{R: 10, G: 200, B: 30, A: 255})
	out, err := RoundCorners(src, 12)
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds() != src.Bounds() {
		t.Fatalf("size changed: %v", out.Bounds())
	}
	if a := out.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha: got %d, want 0", a)
	}
	if got := out.NRGBAAt(30, 20); got != src.NRGBAAt(30, 20) {
		t.Errorf("center changed: got %v", got)
	}
	if src.NRGBAAt(0, 0).A != 255 {
		t.Error("RoundCorners mutated its source")
	}
}

func TestRoundCornersKeepsSourceAlpha(t *testing.T) {
	src := solid(20, 20, color.NRGBA{R: 255, A: 100})
	out, err := RoundCorners(src, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.NRGBAAt(10, 10); got != (color.NRGBA{R: 255, A: 100}) {
		t.Errorf("got %v, want translucent red unchanged", got)
	}
}

func TestFillRoundedRect(t *testing.T) {
	dst := solid(50, 30, color.NRGBA{A: 255})
	rect := image.Rect(10, 5, 40, 25)
	if err := FillRoundedRect(dst, rect, rect.Dy()/2, color.NRGBA{R: 255, G: 255, B: 255, A: 255}); err != nil {
		t.Fatal(err)
	}
	if got := dst.NRGBAAt(25, 15); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("pill center: got %v", got)
	}
	if got := dst.NRGBAAt(10, 5); got != (color.NRGBA{A: 255}) {
		t.Errorf("pill corner should be untouched, got %v", got)
	}
	if got := dst.NRGBAAt(5, 15); got != (color.NRGBA{A: 255}) {
		t.Errorf("outside pill should be untouched, got %v", got)
	}
}
