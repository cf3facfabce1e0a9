package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Badsnus/qrforge/internal/domain/common/errorz"
	"github.com/Badsnus/qrforge/internal/domain/dto"
	qr "github.com/Badsnus/qrforge/pkg/qrcode"
)

// NoticeHeader carries a non-fatal notice about the returned image.
const NoticeHeader = "X-QR-Notice"

type generateRequest struct {
	Record  dto.RecordForm `json:"record"`
	Options dto.RenderForm `json:"options"`
	Format  string         `json:"format"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if s.MaxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.MaxBodySize)
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	kind, ok := qr.ParseKind(req.Format)
	if !ok {
		writeError(w, http.StatusBadRequest, "format: must be png or svg")
		return
	}

	record, err := req.Record.ToRecord()
	if err != nil {
		s.fail(w, err)
		return
	}

	opts, err := req.Options.Apply(s.Defaults)
	if err != nil {
		s.fail(w, err)
		return
	}

	artifact, err := s.QR.Generate(r.Context(), record, opts)
	if err != nil {
		s.fail(w, err)
		return
	}

	var buf bytes.Buffer
	notice, err := s.QR.Write(&buf, artifact, kind)
	if err != nil {
		s.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", kind.ContentType())
	if notice != "" {
		w.Header().Set(NoticeHeader, string(notice))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errorz.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errorz.IsLibrary(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.Logger.Errorf("Failed to generate code: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
