package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"ppc-optimizer/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON marshals v before touching the response so that encoding
// failures can still be reported as a 500.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
		status = http.StatusInternalServerError
		b, _ = json.Marshal(errorResponse{Error: "failed to encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(b); err != nil {
		h.logger.Debug("write response error", slog.Any("error", err))
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// writeError classifies err: caller mistakes are 400, everything else
// (unreadable spreadsheets, missing or non-numeric fields) is 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, level := http.StatusInternalServerError, slog.LevelError
	if domain.IsClientError(err) {
		status, level = http.StatusBadRequest, slog.LevelWarn
	}
	h.logger.Log(r.Context(), level, op+" error",
		slog.Any("error", err),
		slog.Int("status", status),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	h.writeMessage(w, status, err.Error())
}
