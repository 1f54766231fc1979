// Package destiny derives the player's class identity from level and stats.
// The whole pipeline is deterministic: same inputs, byte-identical output,
// so a recompute after reload always reproduces the stored destiny.
package destiny

import (
	"fmt"

	"github.com/velarium/scriptorium/internal/domain"
)

// SubclassLevelStride is how many levels pass between subclass pool steps.
const SubclassLevelStride = 100

// Resolve runs the four-stage pipeline: rank stats, resolve class and
// subclass, resolve tier and epithet, then compose title and lore.
func Resolve(level int, statBlock domain.CharacterStats) domain.Destiny {
	if level < 1 {
		level = 1
	}

	primary, secondary := RankStats(statBlock)
	class := resolveClass(primary, secondary)
	subclass := resolveSubclass(class, secondary, level)
	tier := ResolveTier(level)
	epithet := resolveEpithet(tier, level, statBlock)

	templates := loreTemplates[class]
	lore := fmt.Sprintf(templates[(len(subclass)+len(epithet))%3], subclass, epithet)

	return domain.Destiny{
		PrimaryClass:    class,
		Subclass:        subclass,
		Epithet:         epithet,
		Title:           fmt.Sprintf("%s %s, %s", tier, class, epithet),
		DestinyTier:     tier,
		LoreDescription: lore,
	}
}

// RankStats returns the highest and second-highest stats. Ties break by
// the fixed priority order in domain.StatRankOrder; earlier entries win.
func RankStats(statBlock domain.CharacterStats) (primary, secondary domain.Stat) {
	primary = rankExcluding(statBlock, "")
	secondary = rankExcluding(statBlock, primary)
	return primary, secondary
}

func rankExcluding(statBlock domain.CharacterStats, excluded domain.Stat) domain.Stat {
	var best domain.Stat
	bestValue := -1
	for _, stat := range domain.StatRankOrder {
		if stat == excluded {
			continue
		}
		if statBlock.Get(stat) > bestValue {
			best = stat
			bestValue = statBlock.Get(stat)
		}
	}
	return best
}

// resolveClass maps the primary stat to a class, with one special case:
// wonder and clarity as the top pair, in either order, make a Fateweaver.
func resolveClass(primary, secondary domain.Stat) string {
	wonderClarity := (primary == domain.StatWonder && secondary == domain.StatClarity) ||
		(primary == domain.StatClarity && secondary == domain.StatWonder)
	if wonderClarity {
		return ClassFateweaver
	}
	return classByPrimaryStat[primary]
}

// resolveSubclass selects from the class's per-secondary pool. The index
// advances once per hundred levels, so the subclass is stable within a
// level band and changes deterministically, never randomly.
func resolveSubclass(class string, secondary domain.Stat, level int) string {
	pool := subclassPools[class][secondary]
	if len(pool) == 0 {
		pool = defaultSubclassPool
	}
	return pool[(level/SubclassLevelStride)%len(pool)]
}

// ResolveTier maps level alone to one of the nine destiny tiers.
func ResolveTier(level int) string {
	for _, tier := range destinyTiers {
		if level >= tier.minLevel {
			return tier.name
		}
	}
	return destinyTiers[len(destinyTiers)-1].name
}

// resolveEpithet indexes the tier's epithet pool by level plus the sum of
// all stats.
func resolveEpithet(tier string, level int, statBlock domain.CharacterStats) string {
	pool := epithetPools[tier]
	if len(pool) == 0 {
		return "the Unnamed"
	}
	return pool[(level+statBlock.Total())%len(pool)]
}
