package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegrjumin/phishlens/internal/history"
	"github.com/olegrjumin/phishlens/internal/logging"
	"github.com/olegrjumin/phishlens/internal/service"
)

// NewServer creates and configures the HTTP server.
func NewServer(addr string, logger *logging.Logger, svc *service.Service, repo history.Repository) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: Routes(logger, svc, repo),
	}
}

// Routes builds the router; split out from NewServer so tests can mount
// it directly.
func Routes(logger *logging.Logger, svc *service.Service, repo history.Repository) http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware(logger))

	r.Get("/health", healthHandler)
	r.Post("/assess", assessHandler(svc))
	r.Post("/assess/batch", assessBatchHandler(svc))
	r.Get("/history", listHistoryHandler(repo))
	r.Delete("/history", clearHistoryHandler(repo))
	r.Delete("/history/{id}", removeHistoryHandler(repo))

	return r
}

// healthHandler returns a simple JSON response indicating the service
// is up.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "phishlens-api",
	})
}

// writeJSON sets the Content-Type header and encodes data as JSON.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
