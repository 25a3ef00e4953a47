package feedback

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter serves lines from p over HTTP
func NewRouter(p Provider) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	h := &handler{provider: p}

	r.Route("/api", func(r chi.Router) {
		r.Get("/feedback", h.getFeedback)
		r.Get("/quotes/{outcome}", h.listQuotes)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}

type handler struct {
	provider Provider
}

// getFeedback handles GET /api/feedback?outcome=win&title=...
func (h *handler) getFeedback(w http.ResponseWriter, r *http.Request) {
	outcome, err := ParseOutcome(r.URL.Query().Get("outcome"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	title := r.URL.Query().Get("title")

	quote, err := h.provider.Feedback(r.Context(), outcome, title)
	if err != nil {
		log.Printf("Feedback provider failed: %v", err)
		respondError(w, http.StatusInternalServerError, "feedback unavailable")
		return
	}

	respondJSON(w, http.StatusOK, Response{Outcome: outcome, Title: title, Quote: quote})
}

// listQuotes handles GET /api/quotes/{outcome}
func (h *handler) listQuotes(w http.ResponseWriter, r *http.Request) {
	outcome, err := ParseOutcome(chi.URLParam(r, "outcome"))
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string][]string{"quotes": Pool(outcome)})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
