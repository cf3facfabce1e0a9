package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Badsnus/qrforge/internal/domain/entity"
	"github.com/Badsnus/qrforge/pkg/logger/types"
	qr "github.com/Badsnus/qrforge/pkg/qrcode"
)

type qrRenderer interface {
	Generate(ctx context.Context, record entity.Record, opts entity.RenderOptions) (*entity.Artifact, error)
	Write(w io.Writer, a *entity.Artifact, kind qr.Kind) (entity.Notice, error)
}

// Server holds the dependencies for all HTTP handlers. Every request renders
// its own artifact; nothing is shared between requests except Defaults.
type Server struct {
	QR          qrRenderer
	Defaults    entity.RenderOptions
	MaxBodySize int64
	Logger      *types.Logger
}

// NewRouter returns a chi router with all API routes.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.Logger))

	r.Get("/health", s.handleHealth)
	r.Post("/generate", s.handleGenerate)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func requestLogger(log *types.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debugf("%s %s from %s -> %d (%s)", r.Method, r.URL.Path, r.RemoteAddr, ww.Status(), time.Since(start))
		})
	}
}
