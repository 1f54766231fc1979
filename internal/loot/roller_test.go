package loot

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velarium/scriptorium/internal/domain"
)

// seededRoller returns a roller with a deterministic random source so
// statistical assertions are stable across runs.
func seededRoller(seed int64) *Roller {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic test source
	return NewRollerWithSource(
		rng.Float64,
		func(min, max int) int {
			if min >= max {
				return min
			}
			return rng.Intn(max-min+1) + min
		},
	)
}

func TestRollRarity(t *testing.T) {
	t.Run("empirical rates over a million rolls", func(t *testing.T) {
		roller := seededRoller(42)

		counts := make(map[domain.Rarity]int)
		noDrop := 0
		const rolls = 1_000_000

		for i := 0; i < rolls; i++ {
			rarity, ok := roller.RollRarity()
			if !ok {
				noDrop++
				continue
			}
			counts[rarity]++
		}

		noDropRate := float64(noDrop) / rolls
		assert.InDelta(t, 1-TotalDropChance, noDropRate, 0.005, "no-drop rate")

		assert.InDelta(t, DropChanceCommon, float64(counts[domain.RarityCommon])/rolls, 0.005)
		assert.InDelta(t, DropChanceUncommon, float64(counts[domain.RarityUncommon])/rolls, 0.002)

		// Conditional on a drop, legendary must stay the rarest tier by far.
		require.Greater(t, counts[domain.RarityCommon], 0)
		ratio := float64(counts[domain.RarityLegendary]) / float64(counts[domain.RarityCommon])
		assert.Greater(t, ratio, 0.0005, "legendary:common ratio too low")
		assert.Less(t, ratio, 0.004, "legendary:common ratio too high")
	})

	t.Run("boundary draw wins rarest tier first", func(t *testing.T) {
		// A roll just inside the legendary mass resolves legendary, never a
		// more common tier, because the walk checks rarest first.
		roller := NewRollerWithSource(func() float64 { return DropChanceLegendary / 2 }, nil)

		rarity, ok := roller.RollRarity()
		require.True(t, ok)
		assert.Equal(t, domain.RarityLegendary, rarity)
	})

	t.Run("roll above total mass yields no drop", func(t *testing.T) {
		roller := NewRollerWithSource(func() float64 { return TotalDropChance + 0.01 }, nil)

		_, ok := roller.RollRarity()
		assert.False(t, ok)
	})
}

func TestPickItemType(t *testing.T) {
	t.Run("only returns catalog archetypes", func(t *testing.T) {
		roller := seededRoller(7)
		for i := 0; i < 10_000; i++ {
			itemType := roller.PickItemType()
			_, known := slotByItemType[itemType]
			require.True(t, known, "unknown item type %q", itemType)
		}
	})

	t.Run("heavier weights drop more often", func(t *testing.T) {
		roller := seededRoller(7)
		counts := make(map[domain.ItemType]int)
		for i := 0; i < 100_000; i++ {
			counts[roller.PickItemType()]++
		}

		// Quill (weight 9) should clearly outdraw Crown (weight 4).
		assert.Greater(t, counts[domain.ItemQuill], counts[domain.ItemCrown])
	})
}

func TestSlotForItemType(t *testing.T) {
	// Every one of the twenty types maps to exactly one of the six slots,
	// and the mapping is stable across calls.
	validSlots := map[domain.EquipSlot]bool{}
	for _, slot := range domain.AllEquipSlots {
		validSlots[slot] = true
	}

	assert.Len(t, slotByItemType, 20)
	for itemType := range slotByItemType {
		first := SlotForItemType(itemType)
		assert.True(t, validSlots[first], "item %q maps to unknown slot %q", itemType, first)
		assert.Equal(t, first, SlotForItemType(itemType), "mapping must be stable")
	}
}

func TestGenerateStatBonuses(t *testing.T) {
	budgets := map[domain.Rarity][2]int{
		domain.RarityCommon:    {1, 2},
		domain.RarityUncommon:  {2, 4},
		domain.RarityRare:      {3, 6},
		domain.RarityEpic:      {4, 8},
		domain.RarityLegendary: {6, 12},
	}

	roller := seededRoller(99)

	for rarity, budget := range budgets {
		t.Run(string(rarity), func(t *testing.T) {
			for i := 0; i < 500; i++ {
				bonuses := roller.GenerateStatBonuses(rarity)
				total := bonuses.Total()

				min, max := budget[0], budget[1]
				if rarity.Rank() >= domain.RarityRare.Rank() {
					// Fortune bonus rides on top of the budget.
					min += FortuneBonusMin
					max += FortuneBonusMax
					assert.GreaterOrEqual(t, bonuses.Fortune, FortuneBonusMin,
						"rare+ boons always carry a fortune bonus")
				}

				assert.GreaterOrEqual(t, total, min, "total below budget for %s", rarity)
				assert.LessOrEqual(t, total, max, "total above budget for %s", rarity)
			}
		})
	}
}

func TestGenerateBoon(t *testing.T) {
	roller := seededRoller(5)
	now := time.Now()

	boon := roller.GenerateBoon(domain.RarityRare, domain.CharacterStats{Wonder: 9}, now)

	assert.NotEmpty(t, boon.ID)
	assert.NotEmpty(t, boon.Name)
	assert.NotEmpty(t, boon.Description)
	assert.Equal(t, domain.RarityRare, boon.Rarity)
	assert.Equal(t, now, boon.AcquiredAt)
	assert.Equal(t, SlotForItemType(boon.ItemType), boon.EquipSlot)
	assert.Equal(t, "wonder-touched", boon.ThemeTag)
	assert.Empty(t, boon.ImageURL, "art is filled in later by the collaborator")
}

func TestThemeTag(t *testing.T) {
	t.Run("highest stat names the theme", func(t *testing.T) {
		tag := ThemeTag(domain.CharacterStats{Insight: 3, Fortune: 8})
		assert.Equal(t, "fortune-touched", tag)
	})

	t.Run("ties break by rank order", func(t *testing.T) {
		tag := ThemeTag(domain.CharacterStats{Clarity: 5, Focus: 5})
		assert.Equal(t, "clarity-touched", tag)
	})

	t.Run("zeroed stats fall back to wonder", func(t *testing.T) {
		tag := ThemeTag(domain.CharacterStats{})
		assert.Equal(t, "wonder-touched", tag)
	})
}
