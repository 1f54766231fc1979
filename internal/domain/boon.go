package domain

import "time"

// Rarity represents the drop tier of a boon, ordered from most to least common.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns every rarity ordered from most to least common.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}
}

// Rank returns the ordinal position of the rarity, common=0 through legendary=4.
// Unknown rarities rank as common.
func (r Rarity) Rank() int {
	switch r {
	case RarityUncommon:
		return 1
	case RarityRare:
		return 2
	case RarityEpic:
		return 3
	case RarityLegendary:
		return 4
	}
	return 0
}

// ItemType is one of the twenty fixed boon archetypes.
type ItemType string

const (
	ItemCirclet   ItemType = "circlet"
	ItemHood      ItemType = "hood"
	ItemCrown     ItemType = "crown"
	ItemLaurel    ItemType = "laurel"
	ItemQuill     ItemType = "quill"
	ItemGauntlet  ItemType = "gauntlet"
	ItemRing      ItemType = "ring"
	ItemAmulet    ItemType = "amulet"
	ItemLocket    ItemType = "locket"
	ItemTalisman  ItemType = "talisman"
	ItemTome      ItemType = "tome"
	ItemScroll    ItemType = "scroll"
	ItemPrism     ItemType = "prism"
	ItemLantern   ItemType = "lantern"
	ItemCandle    ItemType = "candle"
	ItemBeacon    ItemType = "beacon"
	ItemChalice   ItemType = "chalice"
	ItemOrb       ItemType = "orb"
	ItemSigil     ItemType = "sigil"
	ItemHourglass ItemType = "hourglass"
)

// EquipSlot is one of the six fixed equipment slots.
type EquipSlot string

const (
	SlotHead  EquipSlot = "head"
	SlotHands EquipSlot = "hands"
	SlotHeart EquipSlot = "heart"
	SlotMind  EquipSlot = "mind"
	SlotLight EquipSlot = "light"
	SlotRelic EquipSlot = "relic"
)

// AllEquipSlots lists the six slots in display order.
var AllEquipSlots = []EquipSlot{SlotHead, SlotHands, SlotHeart, SlotMind, SlotLight, SlotRelic}

// Boon is a randomly dropped loot item. Immutable after acquisition except
// for the image fields, which the external art collaborator fills in later.
type Boon struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	Rarity           Rarity      `json:"rarity"`
	AcquiredAt       time.Time   `json:"acquired_at"`
	ItemType         ItemType    `json:"item_type"`
	EquipSlot        EquipSlot   `json:"equip_slot"`
	StatBonuses      StatBonuses `json:"stat_bonuses"`
	ThemeTag         string      `json:"theme_tag,omitempty"`
	ImageURL         string      `json:"image_url,omitempty"`
	ImageGeneratedAt *time.Time  `json:"image_generated_at,omitempty"`
}

// Equipment maps each slot to the id of the boon equipped there.
// A missing or empty entry means the slot is empty.
type Equipment map[EquipSlot]string

// NewEquipment returns an equipment map with every slot empty.
func NewEquipment() Equipment {
	eq := make(Equipment, len(AllEquipSlots))
	for _, slot := range AllEquipSlots {
		eq[slot] = ""
	}
	return eq
}
