package leveling

import (
	"math"

	"github.com/velarium/scriptorium/internal/domain"
)

// Per-read local XP for scripture mastery. Focus-mode reads earn a bonus.
const (
	ScriptureReadXP     = 10
	ScriptureFocusBonus = 5
)

// ScriptureXPForLevel returns the cumulative local XP required to reach
// scripture level l. The mastery curve is steeper than the player curve:
// floor(200 * l^1.4).
func ScriptureXPForLevel(l int) int {
	if l < 1 {
		l = 1
	}
	return int(math.Floor(200 * math.Pow(float64(l), 1.4)))
}

// ScriptureLevelFromXP returns the largest scripture level whose requirement
// localXP meets, with the same level-1 floor as the player curve.
func ScriptureLevelFromXP(localXP int) int {
	level := 1
	for localXP >= ScriptureXPForLevel(level+1) {
		level++
	}
	return level
}

// ScriptureReadReward returns the local XP earned by one read, accounting
// for focus mode.
func ScriptureReadReward(focusRead bool) int {
	if focusRead {
		return ScriptureReadXP + ScriptureFocusBonus
	}
	return ScriptureReadXP
}

// Mastery tier thresholds over cumulative quotes read on one text.
const (
	masteryTouchedMax  = 50
	masteryFamiliarMax = 150
	masteryStudentMax  = 400
	masteryScholarMax  = 800
	masteryKeeperMax   = 1500
)

// MasteryTierForReads maps a quotes-read count to its mastery tier.
// Monotonic: the tier never decreases as quotesRead only increases.
func MasteryTierForReads(quotesRead int) domain.MasteryTier {
	switch {
	case quotesRead <= 0:
		return domain.MasteryUnseen
	case quotesRead < masteryTouchedMax:
		return domain.MasteryTouched
	case quotesRead < masteryFamiliarMax:
		return domain.MasteryFamiliar
	case quotesRead < masteryStudentMax:
		return domain.MasteryStudent
	case quotesRead < masteryScholarMax:
		return domain.MasteryScholar
	case quotesRead < masteryKeeperMax:
		return domain.MasteryKeeper
	default:
		return domain.MasteryLivingVoice
	}
}
