package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Frame describes the translucent "device" border drawn around a screenshot.
type Frame struct {
	Padding int         // subtracted from the target height to size the screen
	Border  int         // frame thickness on each side
	Radius  int         // corner radius of the screen; the frame adds Border
	Color   color.NRGBA // frame fill
}

// DefaultFrame is a thin white phone-like bezel.
func DefaultFrame() Frame {
	return Frame{
		Padding: 20,
		Border:  4,
		Radius:  30,
		Color:   color.NRGBA{R: 255, G: 255, B: 255, A: 40},
	}
}

// DeviceFrame scales src to targetHeight-Padding (keeping its aspect ratio),
// rounds its corners and centers it inside a rounded translucent border.
func DeviceFrame(src image.Image, targetHeight int, f Frame) (*image.NRGBA, error) {
	if f.Border < 0 || f.Radius < 0 || f.Padding < 0 {
		return nil, fmt.Errorf("frame border=%d radius=%d padding=%d: %w", f.Border, f.Radius, f.Padding, ErrInvalidGeometry)
	}
	screen, err := ScaleToHeight(src, targetHeight-f.Padding, 0)
	if err != nil {
		return nil, fmt.Errorf("frame screen: %w", err)
	}
	screen, err = RoundCorners(screen, f.Radius)
	if err != nil {
		return nil, err
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	out := imaging.New(sw+2*f.Border, sh+2*f.Border, color.NRGBA{})
	if err := FillRoundedRect(out, out.Bounds(), f.Radius+f.Border, f.Color); err != nil {
		return nil, err
	}
	return Paste(out, screen, image.Pt(f.Border, f.Border)), nil
}
