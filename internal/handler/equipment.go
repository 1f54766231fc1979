package handler

import (
	"encoding/json"
	"net/http"

	"github.com/velarium/scriptorium/internal/domain"
	"github.com/velarium/scriptorium/internal/logger"
	"github.com/velarium/scriptorium/internal/progression"
)

type EquipRequest struct {
	Slot   string `json:"slot" validate:"required,equipslot"`
	BoonID string `json:"boon_id" validate:"required,max=100"`
}

type UnequipRequest struct {
	Slot string `json:"slot" validate:"required,equipslot"`
}

// HandleEquipBoon places a boon into its slot
func HandleEquipBoon(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req EquipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode equip request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid equip request", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":   "Validation failed",
				"details": FormatValidationError(err),
			})
			return
		}

		if err := svc.EquipBoon(r.Context(), domain.EquipSlot(req.Slot), req.BoonID); err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Boon equipped"})
	}
}

// HandleUnequipSlot clears one equipment slot
func HandleUnequipSlot(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UnequipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode unequip request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid unequip request", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":   "Validation failed",
				"details": FormatValidationError(err),
			})
			return
		}

		if err := svc.UnequipSlot(r.Context(), domain.EquipSlot(req.Slot)); err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Slot cleared"})
	}
}
