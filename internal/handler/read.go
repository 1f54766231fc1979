package handler

import (
	"net/http"

	"github.com/velarium/scriptorium/internal/logger"
	"github.com/velarium/scriptorium/internal/progression"
)

// HandleReadQuote draws one quote and applies the full read transition
func HandleReadQuote(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		result, err := svc.ReadQuote(r.Context())
		if err != nil {
			log.Warn("Read failed", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
