package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// VerticalGradient creates an opaque w×h image blending from top (row 0) to
// bottom. Row y takes top + (bottom-top)*y/h per channel, truncated.
//
// Each row is a single uniform fill.
func VerticalGradient(w, h int, top, bottom color.RGBA) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("gradient %dx%d: %w", w, h, ErrInvalidGeometry)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	row := &image.Uniform{}
	for y := 0; y < h; y++ {
		row.C = GradientRow(y, h, top, bottom)
		draw.Draw(img, image.Rect(0, y, w, y+1), row, image.Point{}, draw.Src)
	}
	return img, nil
}

// GradientRow returns the color of row y in an h-row vertical gradient.
func GradientRow(y, h int, top, bottom color.RGBA) color.RGBA {
	t := float64(y) / float64(h)
	return color.RGBA{
		R: lerp(top.R, bottom.R, t),
		G: lerp(top.G, bottom.G, t),
		B: lerp(top.B, bottom.B, t),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
