// Package generator flattens rendered creatives and writes them as PNG or
// JPEG files.
//
// All output follows one pipeline: flatten the composited image onto an
// opaque matte, then encode it losslessly (PNG) or at a fixed high quality
// (JPEG).
package generator

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrEncoding reports an unsupported format or an encoder failure.
var ErrEncoding = errors.New("encoding failed")

// Supported output formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 95

// Config holds encoding parameters.
type Config struct {
	Format  string     // "png" (default) or "jpeg"
	Quality int        // JPEG quality 1–100 (default: 95)
	Matte   color.RGBA // opaque color under transparent pixels (default: black)
}

// Ext returns the file extension, without the dot, for a format.
func Ext(format string) (string, error) {
	switch normalizeFormat(format) {
	case FormatPNG:
		return "png", nil
	case FormatJPEG:
		return "jpg", nil
	default:
		return "", fmt.Errorf("unsupported format %q: use png or jpeg: %w", format, ErrEncoding)
	}
}

// OutputName returns the deterministic file name of a rendered variant,
// e.g. "whatsapp_feed_1080x1080.png".
func OutputName(variant string, w, h int, format string) (string, error) {
	ext, err := Ext(format)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%dx%d.%s", variant, w, h, ext), nil
}

// Generate flattens img and writes it to output.
func Generate(output string, img image.Image, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}

	if err := GenerateToWriter(f, img, cfg); err != nil {
		f.Close()
		os.Remove(output)
		return err
	}
	return f.Close()
}

// GenerateToWriter flattens img and encodes it to w.
func GenerateToWriter(w io.Writer, img image.Image, cfg Config) error {
	flat := Flatten(img, cfg.Matte)

	var err error
	switch normalizeFormat(cfg.Format) {
	case FormatPNG:
		err = imaging.Encode(w, flat, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	case FormatJPEG:
		q := cfg.Quality
		if q <= 0 {
			q = DefaultQuality
		}
		err = imaging.Encode(w, flat, imaging.JPEG, imaging.JPEGQuality(min(q, 100)))
	default:
		return fmt.Errorf("unsupported format %q: use png or jpeg: %w", cfg.Format, ErrEncoding)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w: %w", normalizeFormat(cfg.Format), ErrEncoding, err)
	}
	return nil
}

// Flatten composites img over an opaque matte so the result carries no
// transparency.
func Flatten(img image.Image, matte color.RGBA) *image.RGBA {
	matte.A = 255
	b := img.Bounds()
	out := NewSolidImage(b.Dx(), b.Dy(), matte)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}

func normalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "", "png":
		return FormatPNG
	case "jpg", "jpeg":
		return FormatJPEG
	default:
		return format
	}
}
