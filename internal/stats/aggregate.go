// Package stats derives the player's character stat block. The block is a
// view over level, equipped boons and time invested; it is recomputed on
// every call and never persisted as ground truth.
package stats

import (
	"github.com/velarium/scriptorium/internal/domain"
	"github.com/velarium/scriptorium/internal/utils"
)

// Base stat derivation constants.
const (
	// LevelsPerBasePoint: each base stat gains one point per two levels.
	LevelsPerBasePoint = 2

	// MinutesPerEndurancePoint: endurance gains one point per half hour
	// of reading time.
	MinutesPerEndurancePoint = 30
)

// Compute builds the final character stat block.
//
// Base value per stat is floor(level/2) on six of the seven stats;
// endurance starts at zero and is driven solely by time invested,
// floor(minutes/30). Equipped boon bonuses are summed on top.
func Compute(level int, equipped []domain.StatBonuses, timeInvestedMinutes int) domain.CharacterStats {
	level = utils.ClampMin(level, 1)
	timeInvestedMinutes = utils.ClampMin(timeInvestedMinutes, 0)

	base := level / LevelsPerBasePoint
	result := domain.CharacterStats{
		Insight:  base,
		Devotion: base,
		Focus:    base,
		Wonder:   base,
		Clarity:  base,
		Fortune:  base,
	}

	for _, bonuses := range equipped {
		result.Insight += bonuses.Insight
		result.Devotion += bonuses.Devotion
		result.Focus += bonuses.Focus
		result.Wonder += bonuses.Wonder
		result.Clarity += bonuses.Clarity
		result.Fortune += bonuses.Fortune
		result.Endurance += bonuses.Endurance
	}

	result.Endurance += timeInvestedMinutes / MinutesPerEndurancePoint
	return result
}
