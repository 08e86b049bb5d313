package raster

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ScaleToHeight resizes img to the given height with Lanczos resampling,
// keeping the aspect ratio (the width is truncated). When maxWidth > 0 and
// the scaled width exceeds it, the image is instead fitted to maxWidth and
// the height derived from it.
func ScaleToHeight(img image.Image, height, maxWidth int) (*image.NRGBA, error) {
	b := img.Bounds()
	if height <= 0 || b.Empty() {
		return nil, fmt.Errorf("scale %dx%d to height %d: %w", b.Dx(), b.Dy(), height, ErrInvalidGeometry)
	}

	w := int(float64(b.Dx()) * float64(height) / float64(b.Dy()))
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
		height = int(float64(b.Dy()) * float64(w) / float64(b.Dx()))
	}
	if w <= 0 || height <= 0 {
		return nil, fmt.Errorf("scale %dx%d collapses to %dx%d: %w", b.Dx(), b.Dy(), w, height, ErrInvalidGeometry)
	}
	return imaging.Resize(img, w, height, imaging.Lanczos), nil
}
