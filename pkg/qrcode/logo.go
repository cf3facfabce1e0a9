package qr

import (
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// LoadLogo decodes a PNG, JPEG or BMP image from disk.
func LoadLogo(path string) (image.Image, error) {
	return gg.LoadImage(path)
}

// LogoSize is the side of the square logo placed on a code with the given
// bounds: a third of the shorter side.
func LogoSize(bounds image.Rectangle) int {
	return min(bounds.Dx(), bounds.Dy()) / 3
}

// LogoRect is where Overlay pastes the logo.
func LogoRect(bounds image.Rectangle) image.Rectangle {
	size := LogoSize(bounds)
	x := bounds.Min.X + (bounds.Dx()-size)/2
	y := bounds.Min.Y + (bounds.Dy()-size)/2
	return image.Rect(x, y, x+size, y+size)
}

// Overlay returns a copy of code with logo resized to LogoSize and centered on
// it. A logo with transparency is alpha-blended, an opaque one is pasted.
// Nothing checks that the code stays scannable.
func Overlay(code, logo image.Image) *image.NRGBA {
	bounds := code.Bounds()
	out := image.NewNRGBA(bounds)
	draw.Copy(out, bounds.Min, code, bounds, draw.Src, nil)

	size := LogoSize(bounds)
	if size == 0 || logo == nil {
		return out
	}

	// Resize logo
	resized := resize.Resize(uint(size), uint(size), logo, resize.Lanczos3)

	op := draw.Src
	if HasAlpha(logo) {
		op = draw.Over
	}
	draw.Copy(out, LogoRect(bounds).Min, resized, resized.Bounds(), op, nil)

	return out
}

// HasAlpha reports whether img has any non-opaque pixel.
func HasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return true
}
