// Package api exposes the marketplace over HTTP: one submission endpoint,
// one listing endpoint and a liveness root. Handlers stay thin; all pipeline
// logic lives in pkg/market.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/debugger-labs/debugger-go/pkg/market"
	"github.com/debugger-labs/debugger-go/pkg/model"
)

// maxBodyBytes caps submission payloads at 10 MiB, matching the limit the
// frontend was built against.
const maxBodyBytes = 10 << 20

// Marketplace is the slice of the market core the HTTP layer needs.
type Marketplace interface {
	Submit(ctx context.Context, sub model.Submission) (*market.SubmitResult, error)
	ListAll(ctx context.Context) ([]model.EnrichedListing, error)
}

// Server is the HTTP front of the marketplace.
type Server struct {
	core   Marketplace
	router chi.Router
}

// NewServer builds the router with CORS, panic recovery and request logging.
func NewServer(core Marketplace) *Server {
	s := &Server{core: core}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(requestLogger)

	r.Get("/", s.handleRoot)
	r.Post("/api/datasets/submit", s.handleSubmit)
	r.Get("/api/datasets", s.handleList)

	s.router = r
	return s
}

// ServeHTTP makes Server a http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Backend server is running!"))
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var sub model.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid request body."})
		return
	}

	res, err := s.core.Submit(r.Context(), sub)
	switch {
	case errors.Is(err, model.ErrMissingFields):
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Missing required fields."})
	case errors.Is(err, model.ErrInvalidPrice):
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Price must be a positive decimal number."})
	case err != nil:
		zap.L().Error("submission failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"message": "Failed to submit dataset.",
			"error":   err.Error(),
		})
	default:
		writeJSON(w, http.StatusCreated, map[string]any{
			"message":  "Dataset submitted and listed successfully!",
			"tokenId":  res.TokenID,
			"tokenURI": res.TokenURI,
		})
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	listings, err := s.core.ListAll(r.Context())
	if err != nil {
		zap.L().Error("listing fetch failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"message": "Failed to fetch datasets.",
			"error":   err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

// requestLogger logs one line per request with status and latency.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zap.L().Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)))
	})
}
