package domain

import "time"

// Badge is an achievement entry in the static catalog. Unlock is monotonic:
// once true it never reverts, and the XP reward is granted exactly once.
type Badge struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	XPReward     int        `json:"xp_reward"`
	Unlocked     bool       `json:"unlocked"`
	DateUnlocked *time.Time `json:"date_unlocked,omitempty"`
}

// BadgeCounters is the snapshot of counters badge threshold predicates
// evaluate against.
type BadgeCounters struct {
	TotalQuotesRead  int
	FilesUploaded    int
	BoonsByRarity    map[Rarity]int
	StreakDays       int
	Level            int
	DestinyTierRank  int
	TotalTimeMinutes int
}
