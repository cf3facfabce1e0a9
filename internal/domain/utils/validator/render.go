package validator

import (
	"github.com/Badsnus/qrforge/internal/domain/common/errorz"
	"github.com/Badsnus/qrforge/internal/domain/entity"
)

const (
	MaxScale  = 20
	MaxBorder = 10
)

func Scale(scale int) bool {
	return scale >= 1 && scale <= MaxScale
}

func Border(border int) bool {
	return border >= 0 && border <= MaxBorder
}

func Level(level entity.ECLevel) bool {
	_, ok := entity.ParseECLevel(string(level))
	return ok
}

// RenderOptions checks the numeric and enum options. Colors are left to the
// renderer, which reports them as library errors.
func RenderOptions(opts entity.RenderOptions) error {
	if !Level(opts.Level) {
		return errorz.Invalid("level", "must be one of L, M, Q, H, got %q", opts.Level)
	}
	if !Scale(opts.Scale) {
		return errorz.Invalid("scale", "must be between 1 and %d, got %d", MaxScale, opts.Scale)
	}
	if !Border(opts.Border) {
		return errorz.Invalid("border", "must be between 0 and %d, got %d", MaxBorder, opts.Border)
	}
	return nil
}
