package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velarium/scriptorium/internal/progression"
)

// HandleCheckItemArt reports whether item art can be generated right now
func HandleCheckItemArt(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boonID := chi.URLParam(r, "boonID")
		if boonID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		check, err := svc.CheckItemArt(r.Context(), boonID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, check)
	}
}

// HandleGenerateItemArt generates art for one boon. Denials come back in
// the result body with a 200; only transport-level problems use error
// statuses.
func HandleGenerateItemArt(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boonID := chi.URLParam(r, "boonID")
		if boonID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		respondJSON(w, http.StatusOK, svc.GenerateItemArt(r.Context(), boonID))
	}
}

// HandleCheckPortrait reports whether the character card can be generated
func HandleCheckPortrait(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.CheckPortrait(r.Context()))
	}
}

// HandleGeneratePortrait generates the character card
func HandleGeneratePortrait(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.GeneratePortrait(r.Context()))
	}
}
