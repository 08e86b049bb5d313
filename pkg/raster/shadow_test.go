package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestAddShadowSize(t *testing.T) {
	tests := []struct {
		name   string
		offset image.Point
		blur   int
		fg     image.Point
	}{
		{"down right", image.Pt(6, 6), 15, image.Pt(15, 15)},
		{"up left", image.Pt(-4, -8), 10, image.Pt(14, 18)},
		{"mixed", image.Pt(6, -8), 18, image.Pt(18, 26)},
		{"hard", image.Pt(3, 3), 0, image.Pt(0, 0)},
	}

	src := pattern(40, 30)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, fg, err := AddShadow(src, Shadow{Offset: tt.offset, Blur: tt.blur})
			if err != nil {
				t.Fatal(err)
			}
			wantW := 40 + abs(tt.offset.X) + 2*tt.blur
			wantH := 30 + abs(tt.offset.Y) + 2*tt.blur
			if out.Bounds().Dx() != wantW || out.Bounds().Dy() != wantH {
				t.Errorf("expected %dx%d, got %v", wantW, wantH, out.Bounds())
			}
			if fg != tt.fg {
				t.Errorf("foreground origin: got %v, want %v", fg, tt.fg)
			}
		})
	}
}

func TestAddShadowForegroundUnchanged(t *testing.T) {
	src := pattern(50, 40)
	out, fg, err := AddShadow(src, Shadow{Offset: image.Pt(6, 8), Blur: 12, Color: color.NRGBA{A: 255}})
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 40; y++ {
		for x := 0; x < 50; x++ {
			if got, want := out.NRGBAAt(fg.X+x, fg.Y+y), src.NRGBAAt(x, y); got != want {
				t.Fatalf("foreground pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestAddShadowHaloFollowsSilhouette(t *testing.T) {
	src := solid(40, 40, color.NRGBA{R: 255, A: 255})
	s := Shadow{Offset: image.Pt(6, 6), Blur: 10, Color: color.NRGBA{A: 255}}
	out, fg, err := AddShadow(src, s)
	if err != nil {
		t.Fatal(err)
	}

	// Just right of the foreground, inside the offset silhouette.
	near := out.NRGBAAt(fg.X+40+3, fg.Y+20)
	if near.A == 0 {
		t.Fatal("expected shadow halo beside the foreground")
	}
	if near.R != 0 {
		t.Errorf("halo should carry the shadow color, got %v", near)
	}
	// The top-left corner is farthest from the shifted silhouette.
	far := out.NRGBAAt(0, 0)
	if far.A >= near.A {
		t.Errorf("halo not correlated with silhouette: corner alpha %d >= near alpha %d", far.A, near.A)
	}
	// Blurred, so the halo is softer than the hard silhouette.
	if near.A == 255 {
		t.Error("expected a blurred halo, got a hard edge")
	}
}

func TestAddShadowHard(t *testing.T) {
	src := solid(10, 10, color.NRGBA{G: 255, A: 255})
	out, fg, err := AddShadow(src, Shadow{Offset: image.Pt(4, 4), Color: color.NRGBA{B: 50, A: 255}})
	if err != nil {
		t.Fatal(err)
	}
	if fg != (image.Point{}) {
		t.Fatalf("foreground origin %v", fg)
	}
	if got := out.NRGBAAt(12, 12); got != (color.NRGBA{B: 50, A: 255}) {
		t.Errorf("hard shadow pixel: got %v", got)
	}
	if got := out.NRGBAAt(5, 5); got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("foreground pixel: got %v", got)
	}
	if got := out.NRGBAAt(12, 1).A; got != 0 {
		t.Errorf("outside both: got alpha %d", got)
	}
}

func TestAddShadowColorAlpha(t *testing.T) {
	src := solid(10, 10, color.NRGBA{G: 255, A: 255})
	tests := []struct {
		a    uint8
		want uint8
	}{
		{255, 255},
		{0x50, 0x50},
		{0, 0},
	}
	for _, tt := range tests {
		out, _, err := AddShadow(src, Shadow{Offset: image.Pt(4, 4), Color: color.NRGBA{A: tt.a}})
		if err != nil {
			t.Fatal(err)
		}
		// (12,12) is covered only by the shifted silhouette.
		if got := out.NRGBAAt(12, 12).A; got != tt.want {
			t.Errorf("shadow alpha %#x: got %#x, want %#x", tt.a, got, tt.want)
		}
	}

	// Half-transparent source under a half-transparent shadow color.
	half := solid(10, 10, color.NRGBA{G: 255, A: 128})
	out, _, err := AddShadow(half, Shadow{Offset: image.Pt(4, 4), Color: color.NRGBA{A: 128}})
	if err != nil {
		t.Fatal(err)
	}
	if got := out.NRGBAAt(12, 12).A; got < 63 || got > 65 {
		t.Errorf("combined alpha = %d, want 64", got)
	}
}

func TestShadowSigma(t *testing.T) {
	if got := (Shadow{Blur: 15}).Sigma(); got != 15 {
		t.Errorf("sigma = %v, want 15", got)
	}
}

func TestAddShadowInvalid(t *testing.T) {
	if _, _, err := AddShadow(solid(5, 5, color.NRGBA{A: 255}), Shadow{Blur: -1}); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("negative blur: expected ErrInvalidGeometry, got %v", err)
	}
	if _, _, err := AddShadow(image.NewNRGBA(image.Rect(0, 0, 0, 0)), Shadow{Blur: 2}); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("empty source: expected ErrInvalidGeometry, got %v", err)
	}
}
