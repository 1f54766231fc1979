package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/velarium/scriptorium/internal/domain"
	"github.com/velarium/scriptorium/internal/logger"
	"github.com/velarium/scriptorium/internal/progression"
)

type RegisterScriptureRequest struct {
	FileID      string   `json:"file_id" validate:"required,max=100"`
	DisplayName string   `json:"display_name" validate:"required,max=255"`
	Quotes      []string `json:"quotes" validate:"required,min=1,dive,required"`
}

type SetFocusRequest struct {
	Mode   string `json:"mode" validate:"required,focusmode"`
	FileID string `json:"file_id" validate:"max=100"`
}

// HandleRegisterScripture tracks an uploaded text. The caller has already
// parsed the raw text into quotes; the engine never sees the file itself.
func HandleRegisterScripture(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterScriptureRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode scripture request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid scripture request", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":   "Validation failed",
				"details": FormatValidationError(err),
			})
			return
		}

		quotes := make([]domain.Quote, 0, len(req.Quotes))
		for i, text := range req.Quotes {
			quotes = append(quotes, domain.Quote{
				ID:          req.FileID + "-" + strconv.Itoa(i),
				Text:        text,
				SourceLabel: req.DisplayName,
				Index:       i,
				Length:      len(text),
			})
		}

		if err := svc.RegisterScripture(r.Context(), req.FileID, req.DisplayName, quotes); err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, SuccessResponse{Message: "Text registered"})
	}
}

// HandleDeleteScripture removes a tracked text and its stats
func HandleDeleteScripture(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fileID := chi.URLParam(r, "fileID")
		if fileID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := svc.DeleteScripture(r.Context(), fileID); err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Text deleted"})
	}
}

// HandleGetScriptures lists per-text progression records
func HandleGetScriptures(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scriptures, err := svc.GetScriptures(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, scriptures)
	}
}

// HandleSetFocus switches the active quote pool
func HandleSetFocus(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SetFocusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode focus request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid focus request", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":   "Validation failed",
				"details": FormatValidationError(err),
			})
			return
		}

		if err := svc.SetFocus(r.Context(), req.Mode, req.FileID); err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Focus updated"})
	}
}
