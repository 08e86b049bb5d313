// Package typeset measures and draws the text primitives of a creative:
// plain and shadowed text blocks, multi-face styled runs, pill badges and
// check-list items.
//
// Positions are top-left draw origins: a line's baseline sits one ascent
// below the origin, and following lines step by the face height plus
// LineSpacing. Every size used for centering or padding comes from
// measuring the exact face and string being drawn.
package typeset

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// LineSpacing is the extra gap between lines of a multi-line block.
const LineSpacing = 4

// ShadowOffset is the shift of the cheap text drop shadow.
const ShadowOffset = 2

// ShadowColor is the tone of the text drop shadow.
var ShadowColor = color.NRGBA{A: 120}

// normalize returns text in NFC so accented copy maps to precomposed glyphs.
func normalize(text string) string {
	return norm.NFC.String(text)
}

func ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

// LineHeight is the vertical step between baselines of a text block.
func LineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil() + LineSpacing
}

// Measure returns the ink bounding box of text drawn at origin (0,0).
// Min may be non-zero: glyphs rarely start exactly at the origin.
func Measure(face font.Face, text string) image.Rectangle {
	var bounds image.Rectangle
	asc, step := ascent(face), LineHeight(face)
	for i, line := range strings.Split(normalize(text), "\n") {
		b, _ := font.BoundString(face, line)
		base := asc + i*step
		r := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor()+base, b.Max.X.Ceil(), b.Max.Y.Ceil()+base)
		if r.Empty() {
			continue
		}
		bounds = bounds.Union(r)
	}
	return bounds
}

// DrawText draws text with its origin at pt.
func DrawText(dst draw.Image, face font.Face, text string, pt image.Point, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	asc, step := ascent(face), LineHeight(face)
	for i, line := range strings.Split(normalize(text), "\n") {
		d.Dot = fixed.P(pt.X, pt.Y+asc+i*step)
		d.DrawString(line)
	}
}

// DrawShadowedText draws text at pt over a dark copy shifted by ShadowOffset.
func DrawShadowedText(dst draw.Image, face font.Face, text string, pt image.Point, c color.Color) {
	DrawText(dst, face, text, pt.Add(image.Pt(ShadowOffset, ShadowOffset)), ShadowColor)
	DrawText(dst, face, text, pt, c)
}

// CenterX returns the left edge that centers a box of the given bounds
// horizontally on a canvas canvasW wide.
func CenterX(canvasW int, bounds image.Rectangle) int {
	return (canvasW - bounds.Dx()) / 2
}

// CenteredOrigin returns the draw origin x that centers text's ink
// horizontally on a canvas canvasW wide.
func CenteredOrigin(canvasW int, face font.Face, text string) int {
	b := Measure(face, text)
	return CenterX(canvasW, b) - b.Min.X
}
