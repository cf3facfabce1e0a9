package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Badsnus/qrforge/internal/adapters/controller/rest"
	"github.com/Badsnus/qrforge/pkg/logger"
	"github.com/Badsnus/qrforge/pkg/logger/types"
)

func (r *runner) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.load(); err != nil {
				return err
			}
			cfg := r.app.Config
			if cmd.Flags().Changed("addr") {
				cfg.HTTP.Addr = addr
			}

			// Render flags given to serve become the server's defaults.
			if err := r.configure(cmd); err != nil {
				return err
			}

			httpLogger, err := logger.Named("http")
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr: cfg.HTTP.Addr,
				Handler: rest.NewRouter(&rest.Server{
					QR:          r.app.Service,
					Defaults:    r.app.Studio.Options(),
					MaxBodySize: cfg.HTTP.MaxBodySize,
					Logger:      httpLogger,
				}),
				ReadTimeout:  cfg.HTTP.ReadTimeout,
				WriteTimeout: cfg.HTTP.WriteTimeout,
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, srv, cfg.HTTP.ShutdownTimeout, httpLogger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from http.addr)")
	return cmd
}

// serve runs srv until ctx is done, then shuts it down within timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, log *types.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
		if errors.Is(err, context.DeadlineExceeded) {
			_ = srv.Close()
		}
		return err
	}
	return nil
}
