// Package raster provides the pixel-level building blocks of a creative:
// gradients, rounded-corner masks, drop shadows, device frames, and
// straight-alpha compositing of layers onto a canvas.
//
// Layers are *image.NRGBA (straight alpha). Backgrounds and final output are
// opaque *image.RGBA. Every operation allocates its result; inputs are never
// mutated, so decoded assets can be shared between renders.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ErrInvalidGeometry reports a zero or negative size, radius, or blur.
var ErrInvalidGeometry = errors.New("invalid geometry")

// NewLayer allocates a fully transparent w×h layer.
func NewLayer(w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("layer %dx%d: %w", w, h, ErrInvalidGeometry)
	}
	return imaging.New(w, h, color.NRGBA{}), nil
}

// Paste composites src over dst with its top-left corner at pt, using src's
// own alpha as the blend weight. The result always has dst's size: any part
// of src that falls outside dst is clipped.
func Paste(dst *image.NRGBA, src image.Image, pt image.Point) *image.NRGBA {
	return imaging.Overlay(dst, src, pt, 1.0)
}

// Composite lays overlay over an opaque background. The result has the
// background's size.
func Composite(bg image.Image, overlay image.Image) *image.NRGBA {
	return imaging.Overlay(bg, overlay, bg.Bounds().Min, 1.0)
}

// ClipTo crops img to the w×h rectangle anchored at its origin.
func ClipTo(img image.Image, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("clip %dx%d: %w", w, h, ErrInvalidGeometry)
	}
	o := img.Bounds().Min
	return imaging.Crop(img, image.Rect(o.X, o.Y, o.X+w, o.Y+h)), nil
}

// CropInsets removes the given number of pixels from each edge of img.
func CropInsets(img image.Image, top, right, bottom, left int) (*image.NRGBA, error) {
	b := img.Bounds()
	if top < 0 || right < 0 || bottom < 0 || left < 0 {
		return nil, fmt.Errorf("crop insets %d,%d,%d,%d: %w", top, right, bottom, left, ErrInvalidGeometry)
	}
	// A literal keeps reversed corners reversed, so overlapping insets are Empty.
	r := image.Rectangle{
		Min: image.Pt(b.Min.X+left, b.Min.Y+top),
		Max: image.Pt(b.Max.X-right, b.Max.Y-bottom),
	}
	if r.Empty() {
		return nil, fmt.Errorf("crop leaves nothing of %dx%d: %w", b.Dx(), b.Dy(), ErrInvalidGeometry)
	}
	return imaging.Crop(img, r), nil
}
