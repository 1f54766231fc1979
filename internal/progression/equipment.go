package progression

import (
	"context"
	"fmt"

	"github.com/velarium/scriptorium/internal/domain"
)

// EquipBoon places a boon into a slot. The boon must exist and its fixed
// slot must match the requested one. Equipping recomputes destiny.
func (s *service) EquipBoon(ctx context.Context, slot domain.EquipSlot, boonID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !validSlot(slot) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSlot, slot)
	}

	boon := s.state.BoonByID(boonID)
	if boon == nil {
		return fmt.Errorf("%w: %s", domain.ErrBoonNotFound, boonID)
	}
	if boon.EquipSlot != slot {
		return fmt.Errorf("%w: %s belongs in %s", domain.ErrSlotMismatch, boon.ItemType, boon.EquipSlot)
	}

	s.state.Equipment[slot] = boonID
	s.recomputeDestinyLocked(ctx)
	s.persistLocked(ctx)
	return nil
}

// UnequipSlot clears a slot. Clearing an already-empty slot is a no-op.
func (s *service) UnequipSlot(ctx context.Context, slot domain.EquipSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !validSlot(slot) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSlot, slot)
	}

	if s.state.Equipment[slot] == "" {
		return nil
	}

	s.state.Equipment[slot] = ""
	s.recomputeDestinyLocked(ctx)
	s.persistLocked(ctx)
	return nil
}
