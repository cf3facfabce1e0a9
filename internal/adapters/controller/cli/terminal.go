package cli

import (
	"io"

	"github.com/mdp/qrterminal/v3"
	rscqr "rsc.io/qr"

	"github.com/Badsnus/qrforge/internal/domain/entity"
)

// showTerminal re-encodes the payload for a half-block terminal rendering.
// Colors and logo are not shown.
func showTerminal(w io.Writer, a *entity.Artifact) {
	qrterminal.GenerateHalfBlock(a.Payload, terminalLevel(a.Options.Level), w)
}

func terminalLevel(level entity.ECLevel) rscqr.Level {
	switch level {
	case entity.LevelL:
		return rscqr.L
	case entity.LevelQ:
		return rscqr.Q
	case entity.LevelH:
		return rscqr.H
	default:
		return rscqr.M
	}
}
