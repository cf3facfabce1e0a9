package entity

import (
	"image"

	qr "github.com/Badsnus/qrforge/pkg/qrcode"
)

// Artifact is the result of one generate action. It is never mutated; a new
// preview replaces it as a whole.
type Artifact struct {
	Payload string
	Kind    RecordKind
	Code    *qr.Code
	Options RenderOptions
	Style   qr.Style
	// Image is the raster with the logo already composited, if any.
	Image image.Image
}

// Notice is an informational message that does not fail an operation.
type Notice string

const NoticeLogoOmitted Notice = "Logo not added to SVG (not supported). Saved without logo."
