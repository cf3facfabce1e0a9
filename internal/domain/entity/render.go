package entity

import "strings"

// ECLevel is the QR error-correction tier.
type ECLevel string

const (
	LevelL ECLevel = "L"
	LevelM ECLevel = "M"
	LevelQ ECLevel = "Q"
	LevelH ECLevel = "H"
)

func ParseECLevel(s string) (ECLevel, bool) {
	switch ECLevel(strings.ToUpper(strings.TrimSpace(s))) {
	case LevelL:
		return LevelL, true
	case LevelM:
		return LevelM, true
	case LevelQ:
		return LevelQ, true
	case LevelH:
		return LevelH, true
	}
	return "", false
}

// RenderOptions controls how a payload is drawn.
type RenderOptions struct {
	Level     ECLevel
	Scale     int
	Border    int
	Dark      string
	Light     string
	QuietZone string
	LogoPath  string
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Level:     LevelM,
		Scale:     5,
		Border:    4,
		Dark:      "#000000",
		Light:     "#FFFFFF",
		QuietZone: "#FFFFFF",
	}
}

func (o RenderOptions) HasLogo() bool {
	return strings.TrimSpace(o.LogoPath) != ""
}
