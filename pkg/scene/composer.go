// composer.go - Render a variant: gradient, overlay layers, composite, clip, flatten.
package scene

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"

	"github.com/rafsoft/adstencil/pkg/assets"
	"github.com/rafsoft/adstencil/pkg/generator"
	"github.com/rafsoft/adstencil/pkg/raster"
	"github.com/rafsoft/adstencil/pkg/typeset"
)

// DefaultPalette holds the named colors every theme starts from. Theme
// palettes add to it and override it by name.
func DefaultPalette() map[string]string {
	return map[string]string{
		"white":       "#ffffff",
		"white80":     "#ffffffcc",
		"white60":     "#ffffff99",
		"black":       "#000000",
		"accentBlue":  "#3b82f6",
		"accentGreen": "#22c55e",
		"gold":        "#ffc832",
		"badge":       "#ffffff23",
		"frame":       "#ffffff28",
	}
}

// Options configures a Composer.
type Options struct {
	Assets *assets.Store
	Theme  Theme
	Logger *slog.Logger
}

// Composer renders variants with one theme and asset store. It holds no
// per-render state and is safe for concurrent use.
type Composer struct {
	assets  *assets.Store
	theme   Theme
	palette map[string]color.NRGBA
	logger  *slog.Logger
}

// NewComposer parses the theme palette and returns a composer.
func NewComposer(opts Options) (*Composer, error) {
	if opts.Assets == nil {
		opts.Assets = assets.NewStore(opts.Logger)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	applyThemeDefaults(&opts.Theme)

	named := DefaultPalette()
	for name, hex := range opts.Theme.Palette {
		named[name] = hex
	}
	palette := make(map[string]color.NRGBA, len(named))
	for name, hex := range named {
		c, err := generator.ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette %q: %w", name, err)
		}
		palette[name] = c
	}

	return &Composer{
		assets:  opts.Assets,
		theme:   opts.Theme,
		palette: palette,
		logger:  opts.Logger,
	}, nil
}

// Color resolves a palette name or a hex color.
func (c *Composer) Color(s string) (color.NRGBA, error) {
	if p, ok := c.palette[s]; ok {
		return p, nil
	}
	return generator.ParseColor(s)
}

// Render produces the opaque canvas of v with copy overrides from data
// (may be nil). Any failure aborts the variant and is returned as a
// *RenderError; nothing partial is returned.
func (c *Composer) Render(v Variant, data *DataSpec) (*image.RGBA, error) {
	fail := func(layer string, err error) (*image.RGBA, error) {
		return nil, &RenderError{Variant: v.Name, Layer: layer, Err: err}
	}

	w, h := v.Canvas.Width, v.Canvas.Height
	grad := c.theme.Gradient
	if v.Gradient != nil {
		grad = *v.Gradient
	}
	top, err := c.Color(grad.Top)
	if err != nil {
		return fail("", fmt.Errorf("gradient top: %w", err))
	}
	bottom, err := c.Color(grad.Bottom)
	if err != nil {
		return fail("", fmt.Errorf("gradient bottom: %w", err))
	}

	// 1. Background.
	bg, err := raster.VerticalGradient(w, h, generator.Opaque(top), generator.Opaque(bottom))
	if err != nil {
		return fail("", err)
	}

	// Fonts are loaded per render and dropped with it.
	fm, err := typeset.NewFontManager(c.theme.Fonts)
	if err != nil {
		return fail("", err)
	}

	// 2. Overlay, layers in order.
	overlay, err := raster.NewLayer(w, h)
	if err != nil {
		return fail("", err)
	}
	dc := &drawContext{
		Composer: c,
		fonts:    fm,
		canvas:   image.Pt(w, h),
	}
	for _, l := range Resolve(v, data) {
		overlay, err = dc.draw(overlay, l)
		if err != nil {
			return fail(l.ID, err)
		}
	}

	// 3. Composite, 4. clip to the canvas, 5. flatten.
	clipped, err := raster.ClipTo(raster.Composite(bg, overlay), w, h)
	if err != nil {
		return fail("", err)
	}
	out := generator.Flatten(clipped, color.RGBA{A: 255})

	c.logger.Debug("variant rendered", "variant", v.Name, "width", w, "height", h)
	return out, nil
}
