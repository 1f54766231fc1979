package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/velarium/scriptorium/internal/logger"
	"github.com/velarium/scriptorium/internal/progression"
	"github.com/velarium/scriptorium/internal/session"
)

type SessionTimeRequest struct {
	Minutes int `json:"minutes" validate:"gte=0,lte=1440"`
}

// HandleSessionStart begins wall-clock reading time tracking
func HandleSessionStart(tracker *session.Tracker, svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracker.Start(time.Now())
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Session started"})
	}
}

// HandleSessionStop ends tracking and credits whole elapsed minutes.
// Partial minutes round down; stopping an idle tracker credits nothing.
func HandleSessionStop(tracker *session.Tracker, svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		minutes := tracker.Stop(time.Now())
		if minutes > 0 {
			if err := svc.AddSessionMinutes(r.Context(), minutes); err != nil {
				respondServiceError(w, err)
				return
			}
		}
		respondJSON(w, http.StatusOK, map[string]int{"minutes_credited": minutes})
	}
}

// HandleAddSessionTime credits externally tracked reading minutes
func HandleAddSessionTime(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SessionTimeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode session time request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":   "Validation failed",
				"details": FormatValidationError(err),
			})
			return
		}

		if err := svc.AddSessionMinutes(r.Context(), req.Minutes); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Time credited"})
	}
}
