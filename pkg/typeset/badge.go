package typeset

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"

	"github.com/rafsoft/adstencil/pkg/raster"
)

// Badge is a pill-shaped label: a rounded rectangle whose corner radius is
// half its height, with a run of text centered inside.
type Badge struct {
	Padding    image.Point // horizontal and vertical space around the text
	Background color.Color
}

// DefaultBadge is the translucent white pill used on creatives.
func DefaultBadge() Badge {
	return Badge{
		Padding:    image.Pt(16, 8),
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 35},
	}
}

// Size returns the pill size for run: its measured ink size plus twice the
// padding on each axis.
func (b Badge) Size(run Run) image.Point {
	tb := run.Bounds()
	return image.Pt(tb.Dx()+2*b.Padding.X, tb.Dy()+2*b.Padding.Y)
}

// Draw paints the pill with its top-left corner at pt, centers run inside it
// and returns the pill rectangle.
func (b Badge) Draw(dst draw.Image, run Run, pt image.Point) (image.Rectangle, error) {
	tb := run.Bounds()
	size := b.Size(run)
	pill := image.Rectangle{Min: pt, Max: pt.Add(size)}

	if err := raster.FillRoundedRect(dst, pill, size.Y/2, b.Background); err != nil {
		return image.Rectangle{}, err
	}

	ink := pt.Add(image.Pt((size.X-tb.Dx())/2, (size.Y-tb.Dy())/2))
	run.Draw(dst, ink.Sub(tb.Min))
	return pill, nil
}

// CheckGlyph is the mark drawn before each check-list label.
const CheckGlyph = "✓"

// CheckGap is the space between the check mark and its label.
const CheckGap = 10

// CheckItem is one check-list row: a mark from the symbol face followed by a
// label from the body face.
type CheckItem struct {
	Symbol     font.Face
	Body       font.Face
	Label      string
	CheckColor color.Color
	TextColor  color.Color
	Gap        int
}

// Width returns the row's measured width: mark, gap and label ink.
func (c CheckItem) Width() int {
	return Measure(c.Symbol, CheckGlyph).Dx() + c.Gap + Measure(c.Body, c.Label).Dx()
}

// Draw renders the row with the mark's ink starting at pt.X and both
// glyph runs sharing the top origin pt.Y.
func (c CheckItem) Draw(dst draw.Image, pt image.Point) {
	cb := Measure(c.Symbol, CheckGlyph)
	DrawText(dst, c.Symbol, CheckGlyph, image.Pt(pt.X-cb.Min.X, pt.Y), c.CheckColor)

	lb := Measure(c.Body, c.Label)
	x := pt.X + cb.Dx() + c.Gap
	DrawText(dst, c.Body, c.Label, image.Pt(x-lb.Min.X, pt.Y), c.TextColor)
}
