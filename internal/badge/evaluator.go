// Package badge evaluates achievement unlocks against progression counters.
// Unlocks are monotonic and the evaluator is safe to call redundantly: an
// already-unlocked badge is never re-locked and never re-rewarded.
package badge

import (
	"time"

	"github.com/velarium/scriptorium/internal/domain"
)

// Evaluate scans every locked badge against the counters, marks the newly
// satisfied ones unlocked at now, and returns the ids of badges unlocked in
// this pass plus the accumulated XP reward. The badges slice is mutated in
// place; callers apply the reward once and recompute the level afterwards.
func Evaluate(badges []domain.Badge, counters domain.BadgeCounters, now time.Time) (unlockedIDs []string, xpReward int) {
	predicates := make(map[string]func(domain.BadgeCounters) bool, len(Catalog))
	for _, entry := range Catalog {
		predicates[entry.ID] = entry.Satisfied
	}

	for i := range badges {
		if badges[i].Unlocked {
			continue
		}
		satisfied, known := predicates[badges[i].ID]
		if !known || !satisfied(counters) {
			continue
		}

		unlockedAt := now
		badges[i].Unlocked = true
		badges[i].DateUnlocked = &unlockedAt
		unlockedIDs = append(unlockedIDs, badges[i].ID)
		xpReward += badges[i].XPReward
	}

	return unlockedIDs, xpReward
}
