// Package scene describes creatives declaratively and renders them: a scene
// file holds a theme, the assets it needs and one variant per output canvas,
// each an ordered list of layers.
package scene

import (
	"github.com/rafsoft/adstencil/pkg/assets"
	"github.com/rafsoft/adstencil/pkg/typeset"
)

// ── Scene file ──

// Scene is the top-level structure of a scene.json file.
type Scene struct {
	Meta     Meta                   `json:"meta"`
	Theme    Theme                  `json:"theme"`
	Assets   map[string]assets.Spec `json:"assets"`
	Output   Output                 `json:"output"`
	Variants []Variant              `json:"variants"`
}

// Meta holds scene metadata.
type Meta struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

// Theme is the brand style shared by every variant of a scene. It is
// read-only once loaded; several themes can be rendered side by side.
type Theme struct {
	Gradient Gradient                    `json:"gradient"`
	Palette  map[string]string           `json:"palette,omitempty"` // name → "#rrggbb[aa]"
	Fonts    map[string]typeset.FontSpec `json:"fonts,omitempty"`   // role → face
	Symbols  string                      `json:"symbols,omitempty"` // runes drawn with the symbol face
}

// Gradient is a vertical two-color background.
type Gradient struct {
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
}

// Output holds the default encoding of rendered variants.
type Output struct {
	Format  string `json:"format,omitempty"`  // "png" (default) or "jpeg"
	Quality int    `json:"quality,omitempty"` // JPEG only
}

// Canvas defines output dimensions. Preset overrides explicit Width/Height.
type Canvas struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Preset string `json:"preset,omitempty"`
}

// Variant is one output canvas.
type Variant struct {
	Name     string    `json:"name"`
	Canvas   Canvas    `json:"canvas"`
	Gradient *Gradient `json:"gradient,omitempty"` // overrides the theme gradient
	Format   string    `json:"format,omitempty"`
	Quality  int       `json:"quality,omitempty"`
	Layers   []Layer   `json:"layers"`
}

// ── Layers ──

// Layer kinds.
const (
	KindText      = "text"
	KindBadge     = "badge"
	KindChecklist = "checklist"
	KindImage     = "image"
	KindFrame     = "frame"
)

// Horizontal anchors.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Vertical anchors.
const (
	FromTop    = "top"
	FromBottom = "bottom"
)

// Layer is one element drawn on a variant's overlay. Which fields apply
// depends on Kind.
//
// X and Y place the layer's box. With align "center" the box is centered and
// shifted by X; with "right" its left edge is W - w + X, so a positive X
// bleeds past the right edge. With from "bottom" the top edge is H - Y.
type Layer struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Z       int    `json:"z,omitempty"` // rendering order (higher = on top)
	Visible *bool  `json:"visible,omitempty"`

	X     int    `json:"x"`
	Y     int    `json:"y"`
	Align string `json:"align,omitempty"`
	From  string `json:"from,omitempty"`

	// text, badge, checklist
	Text        string   `json:"text,omitempty"`
	Items       []string `json:"items,omitempty"`
	Font        string   `json:"font,omitempty"` // font role
	Size        float64  `json:"size,omitempty"`
	Color       string   `json:"color,omitempty"`
	AccentColor string   `json:"accentColor,omitempty"` // symbol runes and check marks
	TextShadow  bool     `json:"textShadow,omitempty"`
	Background  string   `json:"background,omitempty"` // badge fill
	Padding     *[2]int  `json:"padding,omitempty"`    // badge
	Gap         int      `json:"gap,omitempty"`        // checklist: mark to label
	Spacing     int      `json:"spacing,omitempty"`    // checklist: row step

	// image, frame
	Asset        string      `json:"asset,omitempty"`
	Height       int         `json:"height,omitempty"`
	MaxWidth     int         `json:"maxWidth,omitempty"`
	Crop         *Crop       `json:"crop,omitempty"`
	CornerRadius int         `json:"cornerRadius,omitempty"`
	Shadow       *ShadowSpec `json:"shadow,omitempty"`
	Frame        *FrameSpec  `json:"frame,omitempty"`
}

// Crop trims an asset before it is scaled.
type Crop struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// ShadowSpec configures a blurred drop shadow. Missing fields use the
// raster defaults.
type ShadowSpec struct {
	Offset *[2]int `json:"offset,omitempty"`
	Blur   *int    `json:"blur,omitempty"`
	Color  string  `json:"color,omitempty"`
}

// FrameSpec overrides the device frame defaults.
type FrameSpec struct {
	Padding *int   `json:"padding,omitempty"`
	Border  *int   `json:"border,omitempty"`
	Radius  *int   `json:"radius,omitempty"`
	Color   string `json:"color,omitempty"`
}

// ── Copy overrides ──

// DataSpec is the top-level structure of a copy file. Keys are layer IDs,
// which apply in every variant, or "variant/layer", which apply to one
// variant and win over the plain ID.
type DataSpec struct {
	Layers map[string]LayerData `json:"layers"`
}

// LayerData replaces the copy and visibility of a layer.
type LayerData struct {
	Visible *bool    `json:"visible,omitempty"`
	Text    string   `json:"text,omitempty"`
	Items   []string `json:"items,omitempty"`
	Color   string   `json:"color,omitempty"`
}

// ── Canvas presets ──

// Presets maps preset names to [width, height].
var Presets = map[string][2]int{
	"720p":             {1280, 720},
	"1080p":            {1920, 1080},
	"4k":               {3840, 2160},
	"instagram_square": {1080, 1080},
	"instagram_story":  {1080, 1920},
	"youtube_thumb":    {1280, 720},
}
