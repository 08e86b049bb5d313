// Package assets holds the decoded source images of a render run: logos,
// screenshots, photos and generated QR codes.
//
// Every asset is decoded once, normalized to *image.NRGBA and then shared
// read-only between variants. Callers must not mutate returned images; all
// raster operations allocate new buffers instead.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/rafsoft/adstencil/pkg/generator"
)

// ErrAssetNotFound reports a missing, unreadable or unknown asset.
var ErrAssetNotFound = errors.New("asset not found")

// DefaultQRSize is the pixel size of a QR asset without an explicit size.
const DefaultQRSize = 256

// Spec describes where an asset comes from: an image file or a QR code
// generated from a string.
type Spec struct {
	Path       string `json:"path,omitempty"`
	QR         string `json:"qr,omitempty"`
	Size       int    `json:"size,omitempty"`       // QR only
	Foreground string `json:"foreground,omitempty"` // QR only, default black
	Background string `json:"background,omitempty"` // QR only, default white
}

// Store is a concurrency-safe set of named, immutable images.
type Store struct {
	mu     sync.RWMutex
	images map[string]*image.NRGBA
	logger *slog.Logger
}

// NewStore returns an empty store. A nil logger discards output.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		images: make(map[string]*image.NRGBA),
		logger: logger,
	}
}

// Load decodes the image file at path and stores it under name. EXIF
// orientation is applied while decoding.
func (s *Store) Load(name, path string) error {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("asset %q (%s): %w: %w", name, path, ErrAssetNotFound, err)
	}
	s.put(name, imaging.Clone(img))
	s.logger.Debug("asset loaded", "name", name, "path", path,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

// LoadBytes decodes an in-memory PNG or JPEG and stores it under name.
func (s *Store) LoadBytes(name string, data []byte) error {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("asset %q: %w: %w", name, ErrAssetNotFound, err)
	}
	s.put(name, imaging.Clone(img))
	s.logger.Debug("asset decoded", "name", name, "bytes", len(data))
	return nil
}

// LoadQR encodes content as a size×size QR code and stores it under name.
func (s *Store) LoadQR(name, content string, size int, fg, bg color.Color) error {
	if size <= 0 {
		size = DefaultQRSize
	}
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("asset %q: qr: %w: %w", name, ErrAssetNotFound, err)
	}
	q.ForegroundColor = fg
	q.BackgroundColor = bg
	s.put(name, imaging.Clone(q.Image(size)))
	s.logger.Debug("qr asset generated", "name", name, "size", size)
	return nil
}

// LoadSpec loads one asset described by spec.
func (s *Store) LoadSpec(name string, spec Spec) error {
	switch {
	case spec.QR != "":
		fg, bg, err := qrColors(spec)
		if err != nil {
			return fmt.Errorf("asset %q: %w", name, err)
		}
		return s.LoadQR(name, spec.QR, spec.Size, fg, bg)
	case spec.Path != "":
		return s.Load(name, spec.Path)
	default:
		return fmt.Errorf("asset %q: no path or qr content: %w", name, ErrAssetNotFound)
	}
}

// LoadAll loads every spec in name order and stops at the first failure.
func (s *Store) LoadAll(specs map[string]Spec) error {
	for _, name := range slices.Sorted(maps.Keys(specs)) {
		if err := s.LoadSpec(name, specs[name]); err != nil {
			return err
		}
	}
	return nil
}

// Put stores a copy of img under name.
func (s *Store) Put(name string, img image.Image) {
	s.put(name, imaging.Clone(img))
}

func (s *Store) put(name string, img *image.NRGBA) {
	s.mu.Lock()
	s.images[name] = img
	s.mu.Unlock()
}

// Get returns the image stored under name. The result is shared and must
// be treated as read-only.
func (s *Store) Get(name string) (*image.NRGBA, error) {
	s.mu.RLock()
	img, ok := s.images[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("asset %q: %w", name, ErrAssetNotFound)
	}
	return img, nil
}

// Names returns the stored asset names, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.images))
}

func qrColors(spec Spec) (fg, bg color.Color, err error) {
	fg, bg = color.Black, color.White
	if spec.Foreground != "" {
		c, err := generator.ParseColor(spec.Foreground)
		if err != nil {
			return nil, nil, fmt.Errorf("qr foreground: %w", err)
		}
		fg = c
	}
	if spec.Background != "" {
		c, err := generator.ParseColor(spec.Background)
		if err != nil {
			return nil, nil, fmt.Errorf("qr background: %w", err)
		}
		bg = c
	}
	return fg, bg, nil
}
