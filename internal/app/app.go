package app

import (
	"github.com/Badsnus/qrforge/internal/adapters/config"
	"github.com/Badsnus/qrforge/internal/domain/service"
	"github.com/Badsnus/qrforge/pkg/generator"
	"github.com/Badsnus/qrforge/pkg/logger"
	"github.com/Badsnus/qrforge/pkg/logger/types"
)

// App is the wired set of services shared by the CLI and the HTTP server.
type App struct {
	Config  *config.Config
	Service *service.QrService
	Studio  *service.Studio
	Output  *generator.Output
	Logger  *types.Logger
}

func New(cfg *config.Config) (*App, error) {
	if err := logger.Init(cfg.Logging); err != nil {
		return nil, err
	}

	appLogger, err := logger.Named("app")
	if err != nil {
		return nil, err
	}
	qrLogger, err := logger.Named("qr")
	if err != nil {
		return nil, err
	}
	studioLogger, err := logger.Named("studio")
	if err != nil {
		return nil, err
	}

	qrService := service.NewQrService(service.NewPayloadFormatter(cfg.Strict), qrLogger)
	studio, err := service.NewStudio(qrService, cfg.Render, studioLogger)
	if err != nil {
		return nil, err
	}

	if cfg.File != "" {
		appLogger.Debugf("Using config file %s", cfg.File)
	}

	return &App{
		Config:  cfg,
		Service: qrService,
		Studio:  studio,
		Output:  generator.NewOutput(cfg.OutputDir),
		Logger:  appLogger,
	}, nil
}
