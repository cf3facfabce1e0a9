package service

import (
	"context"
	"io"
	"sync"

	"github.com/Badsnus/qrforge/internal/domain/common/errorz"
	"github.com/Badsnus/qrforge/internal/domain/entity"
	"github.com/Badsnus/qrforge/internal/domain/utils/validator"
	"github.com/Badsnus/qrforge/pkg/logger/types"
	qr "github.com/Badsnus/qrforge/pkg/qrcode"
)

type studioRenderer interface {
	Generate(ctx context.Context, record entity.Record, opts entity.RenderOptions) (*entity.Artifact, error)
	Write(w io.Writer, a *entity.Artifact, kind qr.Kind) (entity.Notice, error)
	Save(a *entity.Artifact, path string) (entity.Notice, error)
}

// Studio owns the current render options and the last generated artifact.
// A failed operation never replaces either.
type Studio struct {
	mu       sync.Mutex
	renderer studioRenderer
	opts     entity.RenderOptions
	last     *entity.Artifact
	logger   *types.Logger
}

func NewStudio(renderer studioRenderer, opts entity.RenderOptions, logger *types.Logger) (*Studio, error) {
	if err := validator.RenderOptions(opts); err != nil {
		return nil, err
	}
	return &Studio{
		renderer: renderer,
		opts:     opts,
		logger:   logger,
	}, nil
}

func (s *Studio) Options() entity.RenderOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

func (s *Studio) SetOptions(opts entity.RenderOptions) error {
	if err := validator.RenderOptions(opts); err != nil {
		return err
	}
	s.mu.Lock()
	s.opts = opts
	s.mu.Unlock()
	return nil
}

func (s *Studio) SetLogo(path string) {
	s.mu.Lock()
	s.opts.LogoPath = path
	s.mu.Unlock()
}

// Last returns the most recent successful preview, or nil.
func (s *Studio) Last() *entity.Artifact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Preview generates a new artifact from record with the current options and
// makes it the one Save writes.
func (s *Studio) Preview(ctx context.Context, record entity.Record) (*entity.Artifact, error) {
	opts := s.Options()

	a, err := s.renderer.Generate(ctx, record, opts)
	if err != nil {
		s.logger.Warnf("Preview failed: %v", err)
		return nil, err
	}

	s.mu.Lock()
	s.last = a
	s.mu.Unlock()

	return a, nil
}

// Save writes the last artifact to path (.svg for vector, anything else PNG).
func (s *Studio) Save(path string) (entity.Notice, error) {
	a := s.Last()
	if a == nil {
		return "", errorz.ErrNothingGenerated
	}

	notice, err := s.renderer.Save(a, path)
	if err != nil {
		s.logger.Errorf("Failed to save %s: %v", path, err)
		return "", err
	}
	if notice != "" {
		s.logger.Info(string(notice))
	}
	return notice, nil
}

// WriteTo streams the last artifact instead of saving it to a file.
func (s *Studio) WriteTo(w io.Writer, kind qr.Kind) (entity.Notice, error) {
	a := s.Last()
	if a == nil {
		return "", errorz.ErrNothingGenerated
	}
	return s.renderer.Write(w, a, kind)
}

// Reset drops the last artifact and the selected logo.
func (s *Studio) Reset() {
	s.mu.Lock()
	s.last = nil
	s.opts.LogoPath = ""
	s.mu.Unlock()
}
