package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"ppc-optimizer/internal/config/configs"
	"ppc-optimizer/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it decodes multipart uploads, hands them to the PPC use case and
// renders the results as JSON.
type Handler struct {
	svc      port.PPCUseCase
	logger   *slog.Logger
	router   chi.Router
	maxBytes int64
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.PPCUseCase, logger *slog.Logger, httpCfg configs.HTTP, uploadCfg configs.Upload) *Handler {
	h := &Handler{svc: svc, logger: logger, maxBytes: uploadCfg.MaxBytes}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: httpCfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Post("/process-ppc", h.handleProcessPPC)
		r.Post("/max-bids", h.handleMaxBids)
		r.Post("/brand-share", h.handleBrandShare)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
