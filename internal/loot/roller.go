// Package loot implements the rarity gacha roll and procedural boon
// generation. All rolls are total functions; the roller never fails.
package loot

import (
	"time"

	"github.com/google/uuid"

	"github.com/velarium/scriptorium/internal/domain"
	"github.com/velarium/scriptorium/internal/utils"
)

// dropThreshold pairs a rarity with its independent drop chance.
type dropThreshold struct {
	rarity domain.Rarity
	chance float64
}

// dropTable is walked rarest-first: the roll is compared against a running
// cumulative mass starting from legendary. The order is load-bearing; it
// keeps the observable drop-rate ratios exact.
var dropTable = []dropThreshold{
	{domain.RarityLegendary, DropChanceLegendary},
	{domain.RarityEpic, DropChanceEpic},
	{domain.RarityRare, DropChanceRare},
	{domain.RarityUncommon, DropChanceUncommon},
	{domain.RarityCommon, DropChanceCommon},
}

// Roller produces rarity rolls and procedural boons. The random sources are
// injectable for deterministic tests.
type Roller struct {
	randFloat func() float64
	randInt   func(min, max int) int
}

// NewRoller creates a roller backed by the package-level math/rand source.
func NewRoller() *Roller {
	return &Roller{
		randFloat: utils.RandomFloat,
		randInt:   utils.RandomInt,
	}
}

// NewRollerWithSource creates a roller with explicit random sources.
func NewRollerWithSource(randFloat func() float64, randInt func(min, max int) int) *Roller {
	return &Roller{randFloat: randFloat, randInt: randInt}
}

// RollRarity draws one uniform value and walks the drop table from rarest
// to most common, accumulating probability mass. Returns false when the
// roll lands above the total drop chance (no drop).
func (r *Roller) RollRarity() (domain.Rarity, bool) {
	roll := r.randFloat()
	cumulative := 0.0
	for _, dt := range dropTable {
		cumulative += dt.chance
		if roll < cumulative {
			return dt.rarity, true
		}
	}
	return "", false
}

// PickQuote selects one quote uniformly at random. The pool must be
// non-empty; callers guard that.
func (r *Roller) PickQuote(pool []domain.Quote) domain.Quote {
	return pool[r.randInt(0, len(pool)-1)]
}

// PickItemType selects one of the twenty archetypes by weighted random.
func (r *Roller) PickItemType() domain.ItemType {
	total := 0
	for _, iw := range itemWeights {
		total += iw.weight
	}

	target := r.randFloat() * float64(total)
	running := 0.0
	for _, iw := range itemWeights {
		running += float64(iw.weight)
		if target < running {
			return iw.itemType
		}
	}
	// Unreachable unless float rounding lands exactly on the total.
	return itemWeights[len(itemWeights)-1].itemType
}

// SlotForItemType returns the fixed equip slot for an item type.
func SlotForItemType(itemType domain.ItemType) domain.EquipSlot {
	return slotByItemType[itemType]
}

// GenerateStatBonuses rolls a point budget from the rarity's range and
// distributes the points one at a time to uniformly random stat fields.
// A field may receive multiple points; small budgets concentrate on few
// stats on purpose. Rare and above additionally gain 1-2 fortune points.
func (r *Roller) GenerateStatBonuses(rarity domain.Rarity) domain.StatBonuses {
	budget, ok := statBudgets[rarity]
	if !ok {
		budget = statBudgets[domain.RarityCommon]
	}

	var bonuses domain.StatBonuses
	points := r.randInt(budget[0], budget[1])
	for i := 0; i < points; i++ {
		stat := domain.AllStats[r.randInt(0, len(domain.AllStats)-1)]
		bonuses.Add(stat, 1)
	}

	if rarity.Rank() >= domain.RarityRare.Rank() {
		bonuses.Fortune += r.randInt(FortuneBonusMin, FortuneBonusMax)
	}

	return bonuses
}

// GenerateBoon produces a complete boon of the given rarity. The rollCtx
// stats are used only for the cosmetic theme tag; they must not bias the
// rarity or the stat budget.
func (r *Roller) GenerateBoon(rarity domain.Rarity, rollCtx domain.CharacterStats, now time.Time) domain.Boon {
	itemType := r.PickItemType()
	return domain.Boon{
		ID:          uuid.NewString(),
		Name:        r.GenerateName(itemType),
		Description: r.GenerateDescription(itemType),
		Rarity:      rarity,
		AcquiredAt:  now,
		ItemType:    itemType,
		EquipSlot:   SlotForItemType(itemType),
		StatBonuses: r.GenerateStatBonuses(rarity),
		ThemeTag:    ThemeTag(rollCtx),
	}
}

// ThemeTag derives a cosmetic tag from the reader's stat block at roll
// time: the highest stat per the fixed rank order names the theme.
func ThemeTag(stats domain.CharacterStats) string {
	best := domain.StatRankOrder[0]
	bestValue := stats.Get(best)
	for _, stat := range domain.StatRankOrder[1:] {
		if stats.Get(stat) > bestValue {
			best = stat
			bestValue = stats.Get(stat)
		}
	}
	return string(best) + "-touched"
}
