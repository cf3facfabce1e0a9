package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Badsnus/qrforge/internal/domain/common/errorz"
	"github.com/Badsnus/qrforge/internal/domain/entity"
	"github.com/Badsnus/qrforge/internal/domain/utils/validator"
	"github.com/Badsnus/qrforge/pkg/logger/types"
	qr "github.com/Badsnus/qrforge/pkg/qrcode"
)

type payloadFormatter interface {
	Format(r entity.Record) (string, error)
}

// QrService runs the format → encode → render → overlay pipeline and writes
// artifacts to disk. It holds no state between calls.
type QrService struct {
	formatter payloadFormatter
	logger    *types.Logger
}

func NewQrService(formatter payloadFormatter, logger *types.Logger) *QrService {
	return &QrService{
		formatter: formatter,
		logger:    logger,
	}
}

func (s *QrService) Generate(ctx context.Context, record entity.Record, opts entity.RenderOptions) (*entity.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, err := s.formatter.Format(record)
	if err != nil {
		return nil, err
	}

	if err = validator.RenderOptions(opts); err != nil {
		return nil, err
	}
	level, _ := entity.ParseECLevel(string(opts.Level))

	style, err := Style(opts)
	if err != nil {
		return nil, err
	}

	code, err := qr.Encode(payload, qrLevel(level))
	if err != nil {
		return nil, errorz.Library(err)
	}

	img, err := code.Image(style)
	if err != nil {
		return nil, errorz.Library(err)
	}

	if opts.HasLogo() {
		logo, err := qr.LoadLogo(opts.LogoPath)
		if err != nil {
			return nil, &errorz.IOError{Op: "read logo", Path: opts.LogoPath, Err: err}
		}
		img = qr.Overlay(img, logo)
		s.logger.Debugf("Logo %s placed at %v", opts.LogoPath, qr.LogoRect(img.Bounds()))
	}

	s.logger.Debugf("Generated %s code: version %d, level %s, %dpx", record.Kind(), code.Version, level, img.Bounds().Dx())

	return &entity.Artifact{
		Payload: payload,
		Kind:    record.Kind(),
		Code:    code,
		Options: opts,
		Style:   style,
		Image:   img,
	}, nil
}

// Write encodes the artifact in the requested format. SVG output never
// carries the logo; a notice says so when one was set.
func (s *QrService) Write(w io.Writer, a *entity.Artifact, kind qr.Kind) (entity.Notice, error) {
	if a == nil {
		return "", errorz.ErrNothingGenerated
	}

	switch kind {
	case qr.SVG:
		if err := a.Code.SVG(w, a.Style); err != nil {
			return "", err
		}
		if a.Options.HasLogo() {
			return entity.NoticeLogoOmitted, nil
		}
		return "", nil
	default:
		return "", qr.EncodePNG(w, a.Image)
	}
}

// Save writes the artifact to path, choosing the format from the extension,
// which must be .png or .svg. A failed write leaves no file behind.
func (s *QrService) Save(a *entity.Artifact, path string) (notice entity.Notice, err error) {
	if a == nil {
		return "", errorz.ErrNothingGenerated
	}

	kind, ok := qr.KindFromPath(path)
	if !ok {
		return "", errorz.Invalid("output", "unsupported file extension %q, use .png or .svg", filepath.Ext(path))
	}

	if dir := filepath.Dir(path); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return "", &errorz.IOError{Op: "create directory", Path: dir, Err: err}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", &errorz.IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &errorz.IOError{Op: "close", Path: path, Err: closeErr}
		}
		if err != nil {
			notice = ""
			_ = os.Remove(path)
		}
	}()

	notice, err = s.Write(f, a, kind)
	if err != nil {
		var ioErr *errorz.IOError
		if !errors.As(err, &ioErr) {
			err = &errorz.IOError{Op: "write", Path: path, Err: err}
		}
		return "", err
	}

	s.logger.Infof("Saved %s code to %s", a.Kind, path)
	return notice, nil
}

// Style resolves the color strings of opts.
func Style(opts entity.RenderOptions) (qr.Style, error) {
	dark, err := qr.ParseColor(opts.Dark)
	if err != nil {
		return qr.Style{}, errorz.Library(fmt.Errorf("dark: %w", err))
	}
	light, err := qr.ParseColor(opts.Light)
	if err != nil {
		return qr.Style{}, errorz.Library(fmt.Errorf("light: %w", err))
	}
	quiet, err := qr.ParseColor(opts.QuietZone)
	if err != nil {
		return qr.Style{}, errorz.Library(fmt.Errorf("quiet zone: %w", err))
	}
	return qr.Style{
		Scale:     opts.Scale,
		Border:    opts.Border,
		Dark:      dark,
		Light:     light,
		QuietZone: quiet,
	}, nil
}

func qrLevel(level entity.ECLevel) qr.Level {
	switch level {
	case entity.LevelL:
		return qr.L
	case entity.LevelQ:
		return qr.Q
	case entity.LevelH:
		return qr.H
	default:
		return qr.M
	}
}
