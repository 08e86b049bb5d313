// layers.go - Draw each layer kind onto a variant's overlay.
package scene

import (
	"fmt"
	"image"
	"strings"

	"github.com/rafsoft/adstencil/pkg/raster"
	"github.com/rafsoft/adstencil/pkg/typeset"
)

// drawContext carries the per-render state shared by the layers of one
// variant.
type drawContext struct {
	*Composer
	fonts  *typeset.FontManager
	canvas image.Point
}

// draw renders l onto overlay and returns the resulting overlay. Text kinds
// draw in place; media kinds paste a new buffer.
func (dc *drawContext) draw(overlay *image.NRGBA, l Layer) (*image.NRGBA, error) {
	switch l.Kind {
	case KindText:
		return overlay, dc.drawText(overlay, l)
	case KindBadge:
		return overlay, dc.drawBadge(overlay, l)
	case KindChecklist:
		return overlay, dc.drawChecklist(overlay, l)
	case KindImage:
		img, err := dc.media(l)
		if err != nil {
			return nil, err
		}
		return dc.pasteMedia(overlay, l, img)
	case KindFrame:
		img, err := dc.frame(l)
		if err != nil {
			return nil, err
		}
		return dc.pasteMedia(overlay, l, img)
	default:
		return nil, fmt.Errorf("unknown layer kind %q", l.Kind)
	}
}

// placeX resolves a horizontal anchor for a box w pixels wide.
func (dc *drawContext) placeX(l Layer, w int) int {
	switch l.Align {
	case AlignCenter:
		return (dc.canvas.X-w)/2 + l.X
	case AlignRight:
		return dc.canvas.X - w + l.X
	default:
		return l.X
	}
}

// placeY resolves a vertical anchor.
func (dc *drawContext) placeY(l Layer) int {
	if l.From == FromBottom {
		return dc.canvas.Y - l.Y
	}
	return l.Y
}

// place resolves the top-left corner of a box of the given size.
func (dc *drawContext) place(l Layer, size image.Point) image.Point {
	return image.Pt(dc.placeX(l, size.X), dc.placeY(l))
}

// ── Text kinds ──

func (dc *drawContext) drawText(overlay *image.NRGBA, l Layer) error {
	face, err := dc.fonts.Face(l.Font, l.Size)
	if err != nil {
		return err
	}
	c, err := dc.Color(l.Color)
	if err != nil {
		return err
	}

	// Left-aligned text starts at its draw origin; centered and right-aligned
	// blocks are placed by their measured ink box.
	origin := image.Pt(l.X, dc.placeY(l))
	switch l.Align {
	case AlignCenter:
		origin.X = typeset.CenteredOrigin(dc.canvas.X, face, l.Text) + l.X
	case AlignRight:
		b := typeset.Measure(face, l.Text)
		origin.X = dc.placeX(l, b.Dx()) - b.Min.X
	}

	if l.TextShadow {
		typeset.DrawShadowedText(overlay, face, l.Text, origin, c)
	} else {
		typeset.DrawText(overlay, face, l.Text, origin, c)
	}
	return nil
}

func (dc *drawContext) drawBadge(overlay *image.NRGBA, l Layer) error {
	body, err := dc.fonts.Face(l.Font, l.Size)
	if err != nil {
		return err
	}
	symbol, err := dc.fonts.Face(typeset.RoleSymbol, l.Size)
	if err != nil {
		return err
	}
	fg, err := dc.Color(l.Color)
	if err != nil {
		return err
	}
	accent, err := dc.Color(l.AccentColor)
	if err != nil {
		return err
	}
	bg, err := dc.Color(l.Background)
	if err != nil {
		return err
	}
	if err := dc.checkSymbols(l.Text, dc.theme.Symbols); err != nil {
		return err
	}

	run := typeset.SplitRun(l.Text, body, symbol, fg, accent, dc.theme.Symbols)
	badge := typeset.Badge{Padding: image.Pt(l.Padding[0], l.Padding[1]), Background: bg}
	_, err = badge.Draw(overlay, run, dc.place(l, badge.Size(run)))
	return err
}

func (dc *drawContext) drawChecklist(overlay *image.NRGBA, l Layer) error {
	body, err := dc.fonts.Face(l.Font, l.Size)
	if err != nil {
		return err
	}
	symbol, err := dc.fonts.Face(typeset.RoleSymbol, l.Size)
	if err != nil {
		return err
	}
	fg, err := dc.Color(l.Color)
	if err != nil {
		return err
	}
	accent, err := dc.Color(l.AccentColor)
	if err != nil {
		return err
	}
	if err := dc.checkSymbols(typeset.CheckGlyph, typeset.CheckGlyph); err != nil {
		return err
	}

	y := dc.placeY(l)
	for _, label := range l.Items {
		item := typeset.CheckItem{
			Symbol:     symbol,
			Body:       body,
			Label:      label,
			CheckColor: accent,
			TextColor:  fg,
			Gap:        l.Gap,
		}
		// Each row is anchored on its own width.
		item.Draw(overlay, image.Pt(dc.placeX(l, item.Width()), y))
		y += l.Spacing
	}
	return nil
}

// checkSymbols fails when the symbol face lacks a glyph for a rune of text
// found in symbols, instead of drawing the font's missing-glyph box.
func (dc *drawContext) checkSymbols(text, symbols string) error {
	for _, r := range text {
		if !strings.ContainsRune(symbols, r) {
			continue
		}
		if !dc.fonts.Covers(typeset.RoleSymbol, r) {
			return fmt.Errorf("symbol font has no glyph for %q: %w", r, typeset.ErrFontLoad)
		}
	}
	return nil
}

// ── Media kinds ──

// source returns the layer's asset with its crop applied.
func (dc *drawContext) source(l Layer) (image.Image, error) {
	img, err := dc.assets.Get(l.Asset)
	if err != nil {
		return nil, err
	}
	if l.Crop == nil {
		return img, nil
	}
	return raster.CropInsets(img, l.Crop.Top, l.Crop.Right, l.Crop.Bottom, l.Crop.Left)
}

func (dc *drawContext) media(l Layer) (*image.NRGBA, error) {
	src, err := dc.source(l)
	if err != nil {
		return nil, err
	}

	height := l.Height
	if height == 0 {
		height = src.Bounds().Dy()
	}
	img, err := raster.ScaleToHeight(src, height, l.MaxWidth)
	if err != nil {
		return nil, err
	}
	if l.CornerRadius > 0 {
		return raster.RoundCorners(img, l.CornerRadius)
	}
	return img, nil
}

func (dc *drawContext) frame(l Layer) (*image.NRGBA, error) {
	src, err := dc.source(l)
	if err != nil {
		return nil, err
	}

	f := raster.DefaultFrame()
	if s := l.Frame; s != nil {
		if s.Padding != nil {
			f.Padding = *s.Padding
		}
		if s.Border != nil {
			f.Border = *s.Border
		}
		if s.Radius != nil {
			f.Radius = *s.Radius
		}
		if s.Color != "" {
			if f.Color, err = dc.Color(s.Color); err != nil {
				return nil, err
			}
		}
	}
	return raster.DeviceFrame(src, l.Height, f)
}

// pasteMedia places img at the layer's anchor. A shadowed layer is pasted
// so its sharp foreground, not the shadow buffer, lands on the anchor.
func (dc *drawContext) pasteMedia(overlay *image.NRGBA, l Layer, img *image.NRGBA) (*image.NRGBA, error) {
	pos := dc.place(l, img.Bounds().Size())
	if l.Shadow == nil {
		return raster.Paste(overlay, img, pos), nil
	}

	s, err := dc.shadow(l.Shadow)
	if err != nil {
		return nil, err
	}
	buf, fg, err := raster.AddShadow(img, s)
	if err != nil {
		return nil, err
	}
	return raster.Paste(overlay, buf, pos.Sub(fg)), nil
}

func (dc *drawContext) shadow(spec *ShadowSpec) (raster.Shadow, error) {
	s := raster.DefaultShadow()
	if spec.Offset != nil {
		s.Offset = image.Pt(spec.Offset[0], spec.Offset[1])
	}
	if spec.Blur != nil {
		s.Blur = *spec.Blur
	}
	if spec.Color != "" {
		c, err := dc.Color(spec.Color)
		if err != nil {
			return s, err
		}
		s.Color = c
	}
	return s, nil
}
