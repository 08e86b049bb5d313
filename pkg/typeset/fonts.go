// fonts.go - Font management with named roles, TTF/OTF/TTC support and
// embedded Go fonts as defaults. Uses golang.org/x/image/font/opentype.
package typeset

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ErrFontLoad reports a missing or unparsable face, an unknown role, or an
// invalid size.
var ErrFontLoad = errors.New("font load failed")

// Well-known font roles.
const (
	RoleRegular = "regular"
	RoleMedium  = "medium"
	RoleBold    = "bold"
	RoleSymbol  = "symbol"
)

// FontSpec locates one face on disk. Index selects a face inside a
// collection (.ttc/.otc) and is ignored for single-font files.
type FontSpec struct {
	Path  string `json:"path,omitempty"`
	Index int    `json:"index,omitempty"`
}

// embedded maps roles to the Go fonts used when no path is configured.
// The Go fonts carry no dingbats: the monospace face only holds the symbol
// role's place, and text that needs ★ or ✓ requires a configured symbol
// font (Covers reports which glyphs are present).
var embedded = map[string][]byte{
	RoleRegular: goregular.TTF,
	RoleMedium:  gomedium.TTF,
	RoleBold:    gobold.TTF,
	RoleSymbol:  gomono.TTF,
	"italic":    goitalic.TTF,
	"mono":      gomono.TTF,
}

// FontManager holds parsed fonts by role and creates sized faces from them.
type FontManager struct {
	fonts map[string]*opentype.Font
	dpi   float64
}

// NewFontManager parses every configured role. Roles with an empty path,
// and embedded roles that are not configured, use the Go fonts. A path that
// cannot be read or parsed is an error: no silent substitution.
func NewFontManager(specs map[string]FontSpec) (*FontManager, error) {
	fm := &FontManager{
		fonts: make(map[string]*opentype.Font, len(embedded)+len(specs)),
		dpi:   72,
	}

	for role, data := range embedded {
		if spec, ok := specs[role]; ok && spec.Path != "" {
			continue
		}
		f, err := parseFont(data, 0)
		if err != nil {
			return nil, fmt.Errorf("embedded %s font: %w", role, err)
		}
		fm.fonts[role] = f
	}

	for role, spec := range specs {
		if spec.Path == "" {
			if _, ok := fm.fonts[role]; !ok {
				return nil, fmt.Errorf("font role %q: no path and no embedded default: %w", role, ErrFontLoad)
			}
			continue
		}
		data, err := os.ReadFile(spec.Path)
		if err != nil {
			return nil, fmt.Errorf("font role %q: %w: %w", role, ErrFontLoad, err)
		}
		f, err := parseFont(data, spec.Index)
		if err != nil {
			return nil, fmt.Errorf("font role %q (%s): %w", role, spec.Path, err)
		}
		fm.fonts[role] = f
	}

	return fm, nil
}

// parseFont parses a single font or a collection and returns face index.
func parseFont(data []byte, index int) (*opentype.Font, error) {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}
	if index < 0 || index >= coll.NumFonts() {
		return nil, fmt.Errorf("face index %d out of range [0,%d): %w", index, coll.NumFonts(), ErrFontLoad)
	}
	f, err := coll.Font(index)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}
	return f, nil
}

// Face returns a font.Face for role at the given pixel size.
func (fm *FontManager) Face(role string, size float64) (font.Face, error) {
	f, ok := fm.fonts[role]
	if !ok {
		return nil, fmt.Errorf("unknown font role %q: %w", role, ErrFontLoad)
	}
	if size <= 0 {
		return nil, fmt.Errorf("font role %q size %v: %w", role, size, ErrFontLoad)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     fm.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s face: %w: %w", role, ErrFontLoad, err)
	}
	return face, nil
}

// Covers reports whether the role's font maps r to a real glyph.
func (fm *FontManager) Covers(role string, r rune) bool {
	f, ok := fm.fonts[role]
	if !ok {
		return false
	}
	var buf sfnt.Buffer
	idx, err := f.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// Roles lists the available roles in sorted order.
func (fm *FontManager) Roles() []string {
	roles := make([]string, 0, len(fm.fonts))
	for r := range fm.fonts {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	return roles
}
