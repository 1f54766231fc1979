package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/velarium/scriptorium/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; nothing left to do but log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgBoonNotFoundError      = "Boon not found"
	ErrMsgInvalidSlotError       = "That is not an equipment slot"
	ErrMsgSlotMismatchError      = "That boon does not fit there"
	ErrMsgNoQuotesError          = "No quotes available to read"
	ErrMsgScriptureNotFoundError = "Text not found"
	ErrMsgInvalidBackupError     = "Backup could not be read"
	ErrMsgOnCooldownError        = "Generation is on cooldown. Try again later"
	ErrMsgDailyCapError          = "Daily generation limit reached"
	ErrMsgGenerationFailedError  = "Generation failed. Please try again"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrBoonNotFound):
		return http.StatusNotFound, ErrMsgBoonNotFoundError
	case errors.Is(err, domain.ErrInvalidSlot):
		return http.StatusBadRequest, ErrMsgInvalidSlotError
	case errors.Is(err, domain.ErrSlotMismatch):
		return http.StatusBadRequest, ErrMsgSlotMismatchError
	case errors.Is(err, domain.ErrNoQuotes):
		return http.StatusConflict, ErrMsgNoQuotesError
	case errors.Is(err, domain.ErrScriptureNotFound):
		return http.StatusNotFound, ErrMsgScriptureNotFoundError
	case errors.Is(err, domain.ErrInvalidBackup):
		return http.StatusBadRequest, ErrMsgInvalidBackupError
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrDailyCapReached):
		return http.StatusTooManyRequests, ErrMsgDailyCapError
	case errors.Is(err, domain.ErrGenerationFailed):
		return http.StatusBadGateway, ErrMsgGenerationFailedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError maps a service error and writes the response
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}
