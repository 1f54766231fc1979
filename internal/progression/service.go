package progression

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/velarium/scriptorium/internal/artgen"
	"github.com/velarium/scriptorium/internal/backup"
	"github.com/velarium/scriptorium/internal/badge"
	"github.com/velarium/scriptorium/internal/destiny"
	"github.com/velarium/scriptorium/internal/domain"
	"github.com/velarium/scriptorium/internal/event"
	"github.com/velarium/scriptorium/internal/leveling"
	"github.com/velarium/scriptorium/internal/logger"
	"github.com/velarium/scriptorium/internal/loot"
	"github.com/velarium/scriptorium/internal/quote"
	"github.com/velarium/scriptorium/internal/snapshot"
	"github.com/velarium/scriptorium/internal/stats"
)

// ReadResult is what a single read returns to the caller
type ReadResult struct {
	Quote          domain.Quote `json:"quote"`
	XPGained       int          `json:"xp_gained"`
	Boon           *domain.Boon `json:"boon,omitempty"`
	LeveledUp      bool         `json:"leveled_up"`
	NewLevel       int          `json:"new_level"`
	UnlockedBadges []string     `json:"unlocked_badges,omitempty"`
}

// BoonFilter narrows boon listings. Zero value means no filtering.
type BoonFilter struct {
	Rarity       domain.Rarity
	Slot         domain.EquipSlot
	EquippedOnly bool
}

// Service defines the progression engine business logic
type Service interface {
	// Reading
	ReadQuote(ctx context.Context) (*ReadResult, error)

	// Equipment
	EquipBoon(ctx context.Context, slot domain.EquipSlot, boonID string) error
	UnequipSlot(ctx context.Context, slot domain.EquipSlot) error

	// State queries
	GetState(ctx context.Context) (*domain.PlayerState, error)
	GetStats(ctx context.Context) (domain.CharacterStats, error)
	GetDestiny(ctx context.Context) (*domain.Destiny, error)
	GetProgress(ctx context.Context) (leveling.Progress, error)
	GetBoons(ctx context.Context, filter BoonFilter) ([]domain.Boon, error)
	GetBadges(ctx context.Context) ([]domain.Badge, error)
	GetScriptures(ctx context.Context) ([]domain.ScriptureStats, error)

	// Scriptures and focus
	RegisterScripture(ctx context.Context, fileID, displayName string, quotes []domain.Quote) error
	DeleteScripture(ctx context.Context, fileID string) error
	SetFocus(ctx context.Context, mode, fileID string) error

	// Session time
	AddSessionMinutes(ctx context.Context, minutes int) error

	// Backup
	ExportBackup(ctx context.Context) (backup.Export, error)
	ImportBackup(ctx context.Context, data []byte) backup.Result

	// Art generation
	CheckItemArt(ctx context.Context, boonID string) (artgen.Check, error)
	CheckPortrait(ctx context.Context) artgen.Check
	GenerateItemArt(ctx context.Context, boonID string) artgen.Result
	GeneratePortrait(ctx context.Context) artgen.Result

	// Reset wipes all progression back to the documented defaults
	Reset(ctx context.Context) error
}

type service struct {
	store   snapshot.Store
	catalog *quote.Catalog
	roller  *loot.Roller
	art     *artgen.Service
	bus     event.Bus
	now     func() time.Time

	// Serializes every mutation of the aggregate; two rapid reads must not
	// race on XP/streak/badge updates.
	mu    sync.Mutex
	state *domain.PlayerState
}

// NewService hydrates the player state from the store and returns the
// engine. A missing or corrupt snapshot falls back to a fresh level-1
// state with the default badge catalog, all locked.
func NewService(ctx context.Context, store snapshot.Store, catalog *quote.Catalog, roller *loot.Roller, art *artgen.Service, bus event.Bus) (Service, error) {
	log := logger.FromContext(ctx)

	state, err := store.Load(ctx)
	if err != nil {
		if !errors.Is(err, snapshot.ErrNoSnapshot) {
			log.Warn("Snapshot unreadable, starting fresh", "error", err)
		}
		state = freshState()
	}

	s := &service{
		store:   store,
		catalog: catalog,
		roller:  roller,
		art:     art,
		bus:     bus,
		now:     time.Now,
		state:   state,
	}

	s.repairState(ctx)
	log.Info(LogMsgStateHydrated, "level", state.Level, "xp", state.XP)
	return s, nil
}

func freshState() *domain.PlayerState {
	state := domain.NewPlayerState()
	state.Badges = badge.DefaultBadges()
	return state
}

// repairState is the single hydration-time coercion pass. Downstream logic
// assumes a well-formed aggregate, so every malformed shape is fixed here:
// nil collections, dangling equipment references, a focus selection for a
// text that no longer exists, and a level out of step with XP.
func (s *service) repairState(ctx context.Context) {
	log := logger.FromContext(ctx)
	st := s.state
	repaired := false

	if st.Boons == nil {
		st.Boons = []domain.Boon{}
		repaired = true
	}
	if st.Equipment == nil {
		st.Equipment = domain.NewEquipment()
		repaired = true
	}
	if st.Scripts == nil {
		st.Scripts = make(map[string]*domain.ScriptureStats)
		repaired = true
	}
	if len(st.Badges) == 0 {
		st.Badges = badge.DefaultBadges()
		repaired = true
	}

	for slot, id := range st.Equipment {
		if !validSlot(slot) {
			delete(st.Equipment, slot)
			repaired = true
			continue
		}
		if id != "" && st.BoonByID(id) == nil {
			st.Equipment[slot] = ""
			repaired = true
		}
	}
	for _, slot := range domain.AllEquipSlots {
		if _, ok := st.Equipment[slot]; !ok {
			st.Equipment[slot] = ""
			repaired = true
		}
	}

	if st.Focus.Mode != domain.FocusModeAll && st.Focus.Mode != domain.FocusModeFile {
		st.Focus = domain.DefaultFocusState()
		repaired = true
	}
	if st.Focus.Mode == domain.FocusModeFile {
		if _, ok := st.Scripts[st.Focus.FileID]; !ok {
			st.Focus = domain.DefaultFocusState()
			repaired = true
		}
	}

	if level := leveling.LevelFromXP(st.XP); st.Level != level {
		st.Level = level
		repaired = true
	}

	s.recomputeDestinyLocked(ctx)

	if repaired {
		log.Info(LogMsgStateRepaired)
	}
}

func validSlot(slot domain.EquipSlot) bool {
	for _, s := range domain.AllEquipSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// computeStatsLocked derives the current stat block. Never stored; always a
// fresh view over level, equipped boons and invested time.
func (s *service) computeStatsLocked() domain.CharacterStats {
	equipped := s.state.EquippedBoons()
	bonuses := make([]domain.StatBonuses, 0, len(equipped))
	for _, b := range equipped {
		bonuses = append(bonuses, b.StatBonuses)
	}
	return stats.Compute(s.state.Level, bonuses, s.state.TotalTimeMinutes)
}

// recomputeDestinyLocked resolves destiny from the current level and stats
// and swaps it in only when the serialized form actually changed.
func (s *service) recomputeDestinyLocked(ctx context.Context) {
	resolved := destiny.Resolve(s.state.Level, s.computeStatsLocked())

	if s.state.Destiny != nil && s.state.Destiny.Key() == resolved.Key() {
		return
	}

	oldTitle := ""
	if s.state.Destiny != nil {
		oldTitle = s.state.Destiny.Title
	}
	s.state.Destiny = &resolved

	logger.FromContext(ctx).Info(LogMsgDestinyChanged, "title", resolved.Title)
	if s.bus != nil {
		_ = s.bus.Publish(ctx, event.NewDestinyChangedEvent(oldTitle, resolved.Title))
	}
}

// persistLocked writes the snapshot. Persistence is best-effort: a failed
// write costs at most the most recent transition, never the in-memory state.
func (s *service) persistLocked(ctx context.Context) {
	if err := s.store.Save(ctx, s.state); err != nil {
		logger.FromContext(ctx).Error(LogMsgSnapshotFailed, "error", err)
	}
}

// evaluateBadgesLocked re-runs the badge scan and applies any reward XP.
// Safe to call redundantly; unlocks are monotonic and rewards one-shot.
func (s *service) evaluateBadgesLocked(ctx context.Context) []string {
	tierRank := 0
	if s.state.Destiny != nil {
		tierRank = destiny.TierRank(s.state.Destiny.DestinyTier)
	}

	counters := domain.BadgeCounters{
		TotalQuotesRead:  s.state.TotalQuotesRead,
		FilesUploaded:    s.state.FilesUploaded,
		BoonsByRarity:    s.state.BoonCountsByRarity(),
		StreakDays:       s.state.StreakDays,
		Level:            s.state.Level,
		DestinyTierRank:  tierRank,
		TotalTimeMinutes: s.state.TotalTimeMinutes,
	}

	unlocked, xpReward := badge.Evaluate(s.state.Badges, counters, s.now())
	if len(unlocked) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgBadgesUnlocked, "badges", unlocked, "xp_reward", xpReward)
	if s.bus != nil {
		for _, id := range unlocked {
			_ = s.bus.Publish(ctx, event.NewBadgeUnlockedEvent(id, badgeReward(s.state.Badges, id)))
		}
	}

	if xpReward > 0 {
		s.applyXPLocked(ctx, xpReward)
	}
	return unlocked
}

func badgeReward(badges []domain.Badge, id string) int {
	for i := range badges {
		if badges[i].ID == id {
			return badges[i].XPReward
		}
	}
	return 0
}

// applyXPLocked adds XP and recomputes the level, reporting whether a level
// boundary was crossed.
func (s *service) applyXPLocked(ctx context.Context, xp int) bool {
	oldLevel := s.state.Level
	s.state.XP += xp
	s.state.Level = leveling.LevelFromXP(s.state.XP)

	if s.state.Level == oldLevel {
		return false
	}

	logger.FromContext(ctx).Info(LogMsgLevelUp, "old_level", oldLevel, "new_level", s.state.Level)
	if s.bus != nil {
		_ = s.bus.Publish(ctx, event.NewLevelUpEvent(oldLevel, s.state.Level, s.state.XP))
	}
	return true
}
