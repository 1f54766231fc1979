package loot

import "github.com/velarium/scriptorium/internal/domain"

// Independent drop probability per rarity tier. The total drop chance is
// the sum, ~0.1577; a roll above that yields no drop.
const (
	DropChanceCommon    = 0.12
	DropChanceUncommon  = 0.03
	DropChanceRare      = 0.006
	DropChanceEpic      = 0.0015
	DropChanceLegendary = 0.0002
)

// TotalDropChance is the probability that a read drops any boon at all.
const TotalDropChance = DropChanceCommon + DropChanceUncommon + DropChanceRare + DropChanceEpic + DropChanceLegendary

// Stat-bonus point budgets per rarity (inclusive ranges).
var statBudgets = map[domain.Rarity][2]int{
	domain.RarityCommon:    {1, 2},
	domain.RarityUncommon:  {2, 4},
	domain.RarityRare:      {3, 6},
	domain.RarityEpic:      {4, 8},
	domain.RarityLegendary: {6, 12},
}

// Extra fortune points granted on top of the budget at rare and above.
const (
	FortuneBonusMin = 1
	FortuneBonusMax = 2
)

// itemWeights is the fixed weighted catalog of the twenty boon archetypes.
// Weights range 4-9; higher weights drop more often.
var itemWeights = []struct {
	itemType domain.ItemType
	weight   int
}{
	{domain.ItemCirclet, 6},
	{domain.ItemHood, 8},
	{domain.ItemCrown, 4},
	{domain.ItemLaurel, 5},
	{domain.ItemQuill, 9},
	{domain.ItemGauntlet, 6},
	{domain.ItemRing, 7},
	{domain.ItemAmulet, 8},
	{domain.ItemLocket, 7},
	{domain.ItemTalisman, 6},
	{domain.ItemTome, 9},
	{domain.ItemScroll, 8},
	{domain.ItemPrism, 5},
	{domain.ItemLantern, 7},
	{domain.ItemCandle, 8},
	{domain.ItemBeacon, 4},
	{domain.ItemChalice, 5},
	{domain.ItemOrb, 6},
	{domain.ItemSigil, 7},
	{domain.ItemHourglass, 4},
}

// slotByItemType is the fixed item-type to equip-slot mapping. Every item
// type maps to exactly one of the six slots.
var slotByItemType = map[domain.ItemType]domain.EquipSlot{
	domain.ItemCirclet:   domain.SlotHead,
	domain.ItemHood:      domain.SlotHead,
	domain.ItemCrown:     domain.SlotHead,
	domain.ItemLaurel:    domain.SlotHead,
	domain.ItemQuill:     domain.SlotHands,
	domain.ItemGauntlet:  domain.SlotHands,
	domain.ItemRing:      domain.SlotHands,
	domain.ItemAmulet:    domain.SlotHeart,
	domain.ItemLocket:    domain.SlotHeart,
	domain.ItemTalisman:  domain.SlotHeart,
	domain.ItemTome:      domain.SlotMind,
	domain.ItemScroll:    domain.SlotMind,
	domain.ItemPrism:     domain.SlotMind,
	domain.ItemLantern:   domain.SlotLight,
	domain.ItemCandle:    domain.SlotLight,
	domain.ItemBeacon:    domain.SlotLight,
	domain.ItemChalice:   domain.SlotRelic,
	domain.ItemOrb:       domain.SlotRelic,
	domain.ItemSigil:     domain.SlotRelic,
	domain.ItemHourglass: domain.SlotRelic,
}

// DescriptorChance is the probability that a generated name carries a
// trailing descriptor clause.
const DescriptorChance = 0.5
