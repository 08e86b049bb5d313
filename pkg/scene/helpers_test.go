package scene

import (
	"image"
	"image/color"
	"os"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/rafsoft/adstencil/pkg/assets"
	"github.com/rafsoft/adstencil/pkg/typeset"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 200, A: 255}
)

// newStore returns a store holding a solid 120x65 "logo" and a solid
// 600x1300 "screenshot".
func newStore(t *testing.T) *assets.Store {
	t.Helper()
	s := assets.NewStore(nil)
	s.Put("logo", imaging.New(120, 65, red))
	s.Put("screenshot", imaging.New(600, 1300, green))
	return s
}

func newComposer(t *testing.T, store *assets.Store, theme Theme) *Composer {
	t.Helper()
	c, err := NewComposer(Options{Assets: store, Theme: theme})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func opaque(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func ptr[T any](v T) *T { return &v }

// symbolFontPath returns an installed font that carries ★ and ✓.
func symbolFontPath(t *testing.T) string {
	t.Helper()
	for _, p := range []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/usr/local/share/fonts/DejaVuSans.ttf",
	} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	t.Skip("no DejaVu Sans installed")
	return ""
}

// symbolTheme is feedTheme with a symbol font that has real stars and checks.
func symbolTheme(t *testing.T) Theme {
	t.Helper()
	theme := feedTheme
	theme.Fonts = map[string]typeset.FontSpec{typeset.RoleSymbol: {Path: symbolFontPath(t)}}
	return theme
}
