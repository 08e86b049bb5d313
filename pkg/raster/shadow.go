package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Shadow describes a blurred drop shadow cast by a layer.
type Shadow struct {
	Offset image.Point // shift of the shadow relative to the foreground
	Blur   int         // Gaussian sigma in pixels; 0 gives a hard shadow
	Color  color.NRGBA // shadow color; its alpha scales the source alpha
}

// DefaultShadow matches the soft shadow used under screenshots.
func DefaultShadow() Shadow {
	return Shadow{
		Offset: image.Pt(6, 6),
		Blur:   15,
		Color:  color.NRGBA{A: 255},
	}
}

// Padding returns the space the shadow needs on the top-left of the
// foreground, i.e. where the foreground lands inside the shadow buffer.
func (s Shadow) Padding() image.Point {
	return image.Pt(s.Blur+max(-s.Offset.X, 0), s.Blur+max(-s.Offset.Y, 0))
}

// Sigma is the Gaussian standard deviation of the halo. Blur is used as-is,
// so a blur of 15 matches a GaussianBlur(15) in other imaging tools; the
// buffer is padded by one Blur on each side and the faint tail past it is
// clipped.
func (s Shadow) Sigma() float64 {
	return float64(s.Blur)
}

// AddShadow renders img on top of a blurred silhouette of itself. The result
// measures (w+|dx|+2r)×(h+|dy|+2r); the returned point is where img's
// top-left corner sits inside it. Opaque pixels of img are copied unchanged:
// only the silhouette is blurred.
func AddShadow(img image.Image, s Shadow) (*image.NRGBA, image.Point, error) {
	b := img.Bounds()
	if b.Empty() || s.Blur < 0 {
		return nil, image.Point{}, fmt.Errorf("shadow for %dx%d blur=%d: %w", b.Dx(), b.Dy(), s.Blur, ErrInvalidGeometry)
	}

	src := imaging.Clone(img)
	dx, dy := s.Offset.X, s.Offset.Y
	w := b.Dx() + abs(dx) + 2*s.Blur
	h := b.Dy() + abs(dy) + 2*s.Blur

	out := imaging.New(w, h, color.NRGBA{})
	out = imaging.Paste(out, silhouette(src, s.Color), image.Pt(s.Blur+max(dx, 0), s.Blur+max(dy, 0)))
	if s.Blur > 0 {
		out = imaging.Blur(out, s.Sigma())
	}

	fg := s.Padding()
	return Paste(out, src, fg), fg, nil
}

// silhouette returns an image shaped like src, filled with c's RGB. Its
// alpha is src's alpha scaled by c.A.
func silhouette(src *image.NRGBA, c color.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(src.Bounds())
	for i := 0; i+3 < len(src.Pix); i += 4 {
		out.Pix[i] = c.R
		out.Pix[i+1] = c.G
		out.Pix[i+2] = c.B
		out.Pix[i+3] = uint8((uint32(src.Pix[i+3])*uint32(c.A) + 127) / 255)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
