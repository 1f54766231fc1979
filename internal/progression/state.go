package progression

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/velarium/scriptorium/internal/domain"
	"github.com/velarium/scriptorium/internal/leveling"
	"github.com/velarium/scriptorium/internal/logger"
)

// GetState returns a deep copy of the aggregate for read-only display.
func (s *service) GetState(_ context.Context) (*domain.PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(s.state)
}

// GetStats derives the current stat block.
func (s *service) GetStats(_ context.Context) (domain.CharacterStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.computeStatsLocked(), nil
}

// GetDestiny returns the cached destiny.
func (s *service) GetDestiny(_ context.Context) (*domain.Destiny, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Destiny == nil {
		return nil, nil
	}
	copied := *s.state.Destiny
	return &copied, nil
}

// GetProgress reports XP progress within the current level.
func (s *service) GetProgress(_ context.Context) (leveling.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return leveling.ProgressForLevel(s.state.XP, s.state.Level), nil
}

// GetBoons returns acquired boons matching the filter, newest first.
func (s *service) GetBoons(_ context.Context, filter BoonFilter) ([]domain.Boon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	boons := make([]domain.Boon, 0, len(s.state.Boons))
	for _, b := range s.state.Boons {
		if filter.Rarity != "" && b.Rarity != filter.Rarity {
			continue
		}
		if filter.Slot != "" && b.EquipSlot != filter.Slot {
			continue
		}
		if filter.EquippedOnly && s.state.Equipment[b.EquipSlot] != b.ID {
			continue
		}
		boons = append(boons, b)
	}
	sort.SliceStable(boons, func(i, j int) bool {
		return boons[i].AcquiredAt.After(boons[j].AcquiredAt)
	})
	return boons, nil
}

// GetBadges returns the badge catalog with unlock state.
func (s *service) GetBadges(_ context.Context) ([]domain.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Badge{}, s.state.Badges...), nil
}

// GetScriptures returns per-text stats sorted by display name.
func (s *service) GetScriptures(_ context.Context) ([]domain.ScriptureStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ScriptureStats, 0, len(s.state.Scripts))
	for _, sc := range s.state.Scripts {
		if sc != nil {
			out = append(out, *sc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })
	return out, nil
}

// AddSessionMinutes credits whole minutes of reading time. Time feeds the
// endurance stat and the focused text's time tally.
func (s *service) AddSessionMinutes(ctx context.Context, minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("%w: negative minutes", domain.ErrInvalidInput)
	}
	if minutes == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.TotalTimeMinutes += minutes
	if s.state.Focus.Mode == domain.FocusModeFile {
		if sc, ok := s.state.Scripts[s.state.Focus.FileID]; ok {
			sc.TimeSpentMinutes += minutes
		}
	}

	s.evaluateBadgesLocked(ctx)
	s.recomputeDestinyLocked(ctx)
	s.persistLocked(ctx)
	return nil
}

// Reset wipes progression back to the documented defaults: level 1, zero
// XP, empty collections, default badge catalog all locked.
func (s *service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = freshState()
	s.recomputeDestinyLocked(ctx)
	s.persistLocked(ctx)

	logger.FromContext(ctx).Info(LogMsgStateReset)
	return nil
}

// copyState deep-copies through the JSON codec; the aggregate is small and
// already round-trips for persistence.
func copyState(state *domain.PlayerState) (*domain.PlayerState, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to copy state: %w", err)
	}
	var copied domain.PlayerState
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil, fmt.Errorf("failed to copy state: %w", err)
	}
	return &copied, nil
}
