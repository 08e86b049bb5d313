package typeset

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DefaultSymbols are the runes drawn from the symbol face by SplitRun.
const DefaultSymbols = "★✓"

// Segment is a piece of a styled run drawn with one face and color.
type Segment struct {
	Face  font.Face
	Color color.Color
	Text  string
}

// Run is a single line of segments laid out left to right on a shared
// baseline. Each segment starts where the previous one's advance ends.
type Run []Segment

// SplitRun breaks text into body and symbol segments: every rune found in
// symbols is drawn with the symbol face and color, everything else with the
// body face and color. Text without symbols yields a single body segment.
func SplitRun(text string, body, symbol font.Face, bodyColor, symbolColor color.Color, symbols string) Run {
	var run Run
	var cur strings.Builder
	curSymbol := false

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		seg := Segment{Face: body, Color: bodyColor, Text: cur.String()}
		if curSymbol {
			seg.Face, seg.Color = symbol, symbolColor
		}
		run = append(run, seg)
		cur.Reset()
	}

	for _, r := range normalize(text) {
		isSymbol := strings.ContainsRune(symbols, r)
		if isSymbol != curSymbol {
			flush()
			curSymbol = isSymbol
		}
		cur.WriteRune(r)
	}
	flush()
	return run
}

// Ascent is the largest ascent among the run's faces; the shared baseline
// sits this far below the origin.
func (r Run) Ascent() int {
	asc := 0
	for _, s := range r {
		asc = max(asc, ascent(s.Face))
	}
	return asc
}

// Bounds returns the ink bounding box of the run drawn at origin (0,0).
func (r Run) Bounds() image.Rectangle {
	var bounds image.Rectangle
	var x fixed.Int26_6
	asc := r.Ascent()
	for _, s := range r {
		b, adv := font.BoundString(s.Face, s.Text)
		sb := image.Rect(
			(x + b.Min.X).Floor(), b.Min.Y.Floor()+asc,
			(x + b.Max.X).Ceil(), b.Max.Y.Ceil()+asc,
		)
		if !sb.Empty() {
			bounds = bounds.Union(sb)
		}
		x += adv
	}
	return bounds
}

// Draw renders the run with its origin at pt.
func (r Run) Draw(dst draw.Image, pt image.Point) {
	d := &font.Drawer{Dst: dst}
	d.Dot = fixed.P(pt.X, pt.Y+r.Ascent())
	for _, s := range r {
		d.Face = s.Face
		d.Src = image.NewUniform(s.Color)
		d.DrawString(s.Text)
	}
}
