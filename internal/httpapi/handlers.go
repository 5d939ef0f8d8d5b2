package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/olegrjumin/phishlens/internal/analyzer"
	"github.com/olegrjumin/phishlens/internal/history"
	"github.com/olegrjumin/phishlens/internal/report"
	"github.com/olegrjumin/phishlens/internal/service"
)

// assessRequest is the JSON body for POST /assess.
type assessRequest struct {
	URL string `json:"url"`
}

// assessBatchRequest is the JSON body for POST /assess/batch.
type assessBatchRequest struct {
	URLs []string `json:"urls"`
}

// assessBatchResponse wraps batch results.
type assessBatchResponse struct {
	Results []*analyzer.Assessment `json:"results"`
}

// assessHandler handles POST /assess. Blank-input validation lives
// here: the engine itself accepts any non-empty string.
func assessHandler(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if strings.TrimSpace(req.URL) == "" {
			writeError(w, http.StatusBadRequest, "URL is required")
			return
		}

		result := svc.Assess(r.Context(), req.URL)
		writeJSON(w, http.StatusOK, result)
	}
}

// assessBatchHandler handles POST /assess/batch. With ?format=csv the
// response is the CSV report instead of JSON.
func assessBatchHandler(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assessBatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if len(req.URLs) == 0 {
			writeError(w, http.StatusBadRequest, "At least one URL is required")
			return
		}
		for _, url := range req.URLs {
			if strings.TrimSpace(url) == "" {
				writeError(w, http.StatusBadRequest, "URLs must be non-blank")
				return
			}
		}

		results := svc.AssessBatch(r.Context(), req.URLs)

		if r.URL.Query().Get("format") == "csv" {
			w.Header().Set("Content-Type", "text/csv")
			w.Header().Set("Content-Disposition", `attachment; filename="assessments.csv"`)
			if err := report.WriteCSV(w, results); err != nil {
				// Headers are already out; nothing useful left to send.
				return
			}
			return
		}

		writeJSON(w, http.StatusOK, assessBatchResponse{Results: results})
	}
}

// listHistoryHandler handles GET /history.
func listHistoryHandler(repo history.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := repo.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load history")
			return
		}
		if entries == nil {
			entries = []history.Entry{}
		}
		writeJSON(w, http.StatusOK, map[string][]history.Entry{"entries": entries})
	}
}

// clearHistoryHandler handles DELETE /history.
func clearHistoryHandler(repo history.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := repo.Clear(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to clear history")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// removeHistoryHandler handles DELETE /history/{id}.
func removeHistoryHandler(repo history.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		err := repo.Remove(r.Context(), id)
		if errors.Is(err, history.ErrNotFound) {
			writeError(w, http.StatusNotFound, "No such history entry")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to remove history entry")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
