package handler

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/velarium/scriptorium/internal/domain"
	"github.com/velarium/scriptorium/internal/logger"
	"github.com/velarium/scriptorium/internal/progression"
)

// HandleGetState returns the full player aggregate
func HandleGetState(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.GetState(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to read state", "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}

// HandleGetStats returns the derived character stat block
func HandleGetStats(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statBlock, err := svc.GetStats(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, statBlock)
	}
}

// HandleGetDestiny returns the current destiny identity
func HandleGetDestiny(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetDestiny(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, d)
	}
}

// HandleGetProgress returns XP progress within the current level
func HandleGetProgress(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		progress, err := svc.GetProgress(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, progress)
	}
}

// HandleGetBoons returns acquired boons, newest first. Optional query
// params rarity, slot and equipped=true narrow the listing.
func HandleGetBoons(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseBoonFilter(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		boons, err := svc.GetBoons(r.Context(), filter)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, boons)
	}
}

func parseBoonFilter(r *http.Request) (progression.BoonFilter, error) {
	var filter progression.BoonFilter

	if raw := r.URL.Query().Get("rarity"); raw != "" {
		rarity := domain.Rarity(raw)
		if !slices.Contains(domain.AllRarities(), rarity) {
			return filter, fmt.Errorf("unknown rarity %q", raw)
		}
		filter.Rarity = rarity
	}
	if raw := r.URL.Query().Get("slot"); raw != "" {
		slot := domain.EquipSlot(raw)
		if !slices.Contains(domain.AllEquipSlots, slot) {
			return filter, fmt.Errorf("unknown slot %q", raw)
		}
		filter.Slot = slot
	}
	filter.EquippedOnly = r.URL.Query().Get("equipped") == "true"
	return filter, nil
}

// HandleGetBadges returns the badge catalog with unlock state
func HandleGetBadges(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		badges, err := svc.GetBadges(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, badges)
	}
}

// HandleReset wipes progression back to defaults
func HandleReset(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Reset(r.Context()); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Progression reset"})
	}
}
