package progression

import (
	"context"
	"fmt"
	"time"

	"github.com/velarium/scriptorium/internal/domain"
	"github.com/velarium/scriptorium/internal/event"
	"github.com/velarium/scriptorium/internal/leveling"
	"github.com/velarium/scriptorium/internal/logger"
)

// ReadQuote draws one quote from the active pool and applies the whole
// read transition: XP, level, loot roll, streak, per-text stats, badge
// re-evaluation and destiny recompute.
func (s *service) ReadQuote(ctx context.Context) (*ReadResult, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	pool := s.catalog.PoolFor(s.state.Focus)
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: active pool is empty", domain.ErrNoQuotes)
	}

	q := s.roller.PickQuote(pool)
	now := s.now()
	levelBefore := s.state.Level

	xp := leveling.XPForQuoteLength(q.Length)
	s.applyXPLocked(ctx, xp)

	s.state.TotalQuotesRead++
	s.updateStreakLocked(now.Format(domain.DateLayout))
	s.updateScriptureLocked(q)

	// Equipped stats feed the roll only as cosmetic theme context; they
	// must not bias rarity or the stat budget.
	var dropped *domain.Boon
	if rarity, ok := s.roller.RollRarity(); ok {
		boon := s.roller.GenerateBoon(rarity, s.computeStatsLocked(), now)
		s.state.Boons = append(s.state.Boons, boon)
		dropped = &boon

		log.Info(LogMsgBoonDropped, "boon", boon.Name, "rarity", boon.Rarity)
		if s.bus != nil {
			_ = s.bus.Publish(ctx, event.NewBoonDroppedEvent(boon.ID, boon.Name, string(boon.Rarity)))
		}
	}

	unlocked := s.evaluateBadgesLocked(ctx)
	s.recomputeDestinyLocked(ctx)
	s.persistLocked(ctx)

	log.Info(LogMsgQuoteRead, "quote_id", q.ID, "xp", xp, "level", s.state.Level)
	if s.bus != nil {
		_ = s.bus.Publish(ctx, event.NewQuoteReadEvent(q.ID, q.SourceLabel, xp))
	}

	return &ReadResult{
		Quote:          q,
		XPGained:       xp,
		Boon:           dropped,
		LeveledUp:      s.state.Level > levelBefore,
		NewLevel:       s.state.Level,
		UnlockedBadges: unlocked,
	}, nil
}

// updateStreakLocked advances the daily streak. Calendar-date equality, not
// a rolling 24h window: a read at 23:59 and one at 00:01 the next day are
// consecutive.
func (s *service) updateStreakLocked(today string) {
	switch s.state.LastReadDate {
	case today:
		return
	case yesterdayOf(today):
		s.state.StreakDays++
	default:
		s.state.StreakDays = 1
	}
	s.state.LastReadDate = today
}

func yesterdayOf(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(domain.DateLayout)
}

// updateScriptureLocked credits the read to its tracked text, if any.
// Fallback-corpus quotes belong to no text and credit nothing.
func (s *service) updateScriptureLocked(q domain.Quote) {
	fileID, ok := s.catalog.OwnerOf(q.ID)
	if !ok {
		return
	}
	sc, ok := s.state.Scripts[fileID]
	if !ok {
		return
	}

	focusRead := s.state.Focus.Mode == domain.FocusModeFile && s.state.Focus.FileID == fileID

	sc.QuotesRead++
	if focusRead {
		sc.FocusQuotesRead++
	}
	sc.LocalXP += leveling.ScriptureReadReward(focusRead)
	sc.LocalLevel = leveling.ScriptureLevelFromXP(sc.LocalXP)
	sc.MasteryTier = leveling.MasteryTierForReads(sc.QuotesRead)
}
