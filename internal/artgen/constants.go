package artgen

import "time"

const (
	// ItemArtDailyCap is the number of item-art generations allowed per
	// calendar day.
	ItemArtDailyCap = 10

	// ItemArtCooldown is the per-item re-generation cooldown.
	ItemArtCooldown = 60 * time.Second

	// PortraitCooldown is the character-card cooldown. No daily cap.
	PortraitCooldown = 10 * time.Minute

	// GeneratorTimeout bounds a single generation round trip.
	GeneratorTimeout = 30 * time.Second

	// recentItemCacheSize bounds the per-item cooldown tracker. Entries
	// expire on their own after ItemArtCooldown.
	recentItemCacheSize = 256
)

// Denial reason strings surfaced to the caller.
const (
	ReasonDailyCapReached  = "daily item-art limit reached, try again tomorrow"
	ReasonItemCooldown     = "this item was generated moments ago, wait a minute"
	ReasonPortraitCooldown = "character card was generated recently, wait a few minutes"
)
