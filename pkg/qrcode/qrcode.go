package qr

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	ErrEmptyContent  = errors.New("content cannot be empty")
	ErrInvalidScale  = errors.New("scale must be positive")
	ErrInvalidBorder = errors.New("border must not be negative")
)

// Level is the QR error-correction level.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	switch l {
	case L:
		return "L"
	case Q:
		return "Q"
	case H:
		return "H"
	default:
		return "M"
	}
}

func (l Level) recovery() skipqrcode.RecoveryLevel {
	switch l {
	case L:
		return skipqrcode.Low
	case Q:
		return skipqrcode.High
	case H:
		return skipqrcode.Highest
	default:
		return skipqrcode.Medium
	}
}

// Kind is the output file format.
type Kind int

const (
	PNG Kind = iota
	SVG
)

func (k Kind) String() string {
	if k == SVG {
		return "svg"
	}
	return "png"
}

func (k Kind) Ext() string { return "." + k.String() }

func (k Kind) ContentType() string {
	if k == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// KindFromPath maps a ".png" or ".svg" extension (any case) to its Kind.
// Any other extension, or none, is not a supported output.
func KindFromPath(path string) (Kind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, true
	case ".svg":
		return SVG, true
	}
	return PNG, false
}

func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "", "png":
		return PNG, true
	case "svg":
		return SVG, true
	}
	return PNG, false
}

// Code is an encoded QR symbol without quiet zone.
type Code struct {
	Content string
	Level   Level
	Version int
	// modules[y][x], true is a dark module
	modules [][]bool
}

// Encode builds the module matrix for content. The quiet zone is left to the
// renderer so that its width and color can be chosen per output.
func Encode(content string, level Level) (*Code, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	q, err := skipqrcode.New(content, level.recovery())
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	q.DisableBorder = true

	return &Code{
		Content: content,
		Level:   level,
		Version: q.VersionNumber,
		modules: q.Bitmap(),
	}, nil
}

// Size is the number of modules per side.
func (c *Code) Size() int {
	return len(c.modules)
}

func (c *Code) Dark(x, y int) bool {
	return c.modules[y][x]
}

// Style holds the rendering parameters shared by raster and vector output.
type Style struct {
	Scale     int
	Border    int
	Dark      color.Color
	Light     color.Color
	QuietZone color.Color
}

func (s Style) validate() error {
	if s.Scale <= 0 {
		return ErrInvalidScale
	}
	if s.Border < 0 {
		return ErrInvalidBorder
	}
	return nil
}

func (s Style) withDefaults() Style {
	if s.Dark == nil {
		s.Dark = color.Black
	}
	if s.Light == nil {
		s.Light = color.White
	}
	if s.QuietZone == nil {
		s.QuietZone = s.Light
	}
	return s
}

// Dimension is the side length in pixels of the rendered code.
func (c *Code) Dimension(s Style) int {
	return (c.Size() + 2*s.Border) * s.Scale
}

// Image renders the code to a square raster.
func (c *Code) Image(s Style) (image.Image, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	s = s.withDefaults()

	side := c.Dimension(s)
	scale := float64(s.Scale)
	offset := float64(s.Border * s.Scale)

	dc := gg.NewContext(side, side)

	dc.SetColor(s.QuietZone)
	dc.Clear()

	dc.SetColor(s.Light)
	dc.DrawRectangle(offset, offset, float64(c.Size())*scale, float64(c.Size())*scale)
	dc.Fill()

	dc.SetColor(s.Dark)
	for y, row := range c.modules {
		for x, dark := range row {
			if dark {
				dc.DrawRectangle(offset+float64(x)*scale, offset+float64(y)*scale, scale, scale)
			}
		}
	}
	dc.Fill()

	return dc.Image(), nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
