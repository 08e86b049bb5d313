package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
)

// ClampRadius limits a corner radius to half the shorter side of a w×h box.
func ClampRadius(w, h, radius int) int {
	return max(0, min(radius, min(w, h)/2))
}

// RoundedRectMask rasterizes a w×h alpha mask holding a filled rounded
// rectangle: 255 inside, 0 outside, anti-aliased along the arcs. The radius
// is clamped to half the shorter side; radius 0 yields a fully opaque mask.
func RoundedRectMask(w, h, radius int) (*image.Alpha, error) {
	if w <= 0 || h <= 0 || radius < 0 {
		return nil, fmt.Errorf("rounded rect %dx%d r=%d: %w", w, h, radius, ErrInvalidGeometry)
	}

	r := float64(ClampRadius(w, h, radius))
	hw, hh := float64(w)/2, float64(h)/2
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		py := float64(y) + 0.5 - hh
		for x := range row {
			px := float64(x) + 0.5 - hw
			row[x] = coverage(roundedBoxSDF(px, py, hw, hh, r))
		}
	}
	return mask, nil
}

// roundedBoxSDF returns the signed distance from (px, py) to a rounded box
// centered at the origin with half extents (bx, by). Negative is inside.
func roundedBoxSDF(px, py, bx, by, r float64) float64 {
	qx := math.Abs(px) - bx + r
	qy := math.Abs(py) - by + r
	ox, oy := math.Max(qx, 0), math.Max(qy, 0)
	return math.Sqrt(ox*ox+oy*oy) + math.Min(math.Max(qx, qy), 0) - r
}

// coverage maps a pixel-center distance to 8-bit coverage with a one pixel
// wide ramp across the edge.
func coverage(d float64) uint8 {
	switch {
	case d <= -0.5:
		return 255
	case d >= 0.5:
		return 0
	}
	return uint8(math.Round((0.5 - d) * 255))
}

// RoundCorners returns a copy of img whose pixels outside a rounded rectangle
// of the given radius are fully transparent. Pixels inside keep their color
// and alpha; edge pixels have their alpha scaled by the mask coverage.
func RoundCorners(img image.Image, radius int) (*image.NRGBA, error) {
	out := imaging.Clone(img)
	w, h := out.Bounds().Dx(), out.Bounds().Dy()
	mask, err := RoundedRectMask(w, h, radius)
	if err != nil {
		return nil, err
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m := mask.Pix[y*mask.Stride+x]
			if m == 255 {
				continue
			}
			i := y*out.Stride + x*4 + 3
			out.Pix[i] = uint8(uint32(out.Pix[i]) * uint32(m) / 255)
		}
	}
	return out, nil
}

// FillRoundedRect paints rect on dst with c, blending over the existing
// pixels through a rounded-rectangle mask.
func FillRoundedRect(dst draw.Image, rect image.Rectangle, radius int, c color.Color) error {
	mask, err := RoundedRectMask(rect.Dx(), rect.Dy(), radius)
	if err != nil {
		return err
	}
	draw.DrawMask(dst, rect, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
	return nil
}
