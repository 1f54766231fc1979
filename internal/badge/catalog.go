package badge

import "github.com/velarium/scriptorium/internal/domain"

// CatalogEntry pairs a badge definition with its unlock predicate.
type CatalogEntry struct {
	ID          string
	Name        string
	Description string
	XPReward    int
	Satisfied   func(c domain.BadgeCounters) bool
}

// Catalog is the static badge table. Order is display order; evaluation
// order does not matter because predicates only read counters.
var Catalog = []CatalogEntry{
	{
		ID: "first-quote", Name: "First Light",
		Description: "Read your first quote.", XPReward: 25,
		Satisfied:   func(c domain.BadgeCounters) bool { return c.TotalQuotesRead >= 1 },
	},
	{
		ID: "quotes-100", Name: "Steady Reader",
		Description: "Read one hundred quotes.", XPReward: 100,
		Satisfied:   func(c domain.BadgeCounters) bool { return c.TotalQuotesRead >= 100 },
	},
	{
		ID: "quotes-1000", Name: "Devourer of Pages",
		Description: "Read one thousand quotes.", XPReward: 500,
		Satisfied:   func(c domain.BadgeCounters) bool { return c.TotalQuotesRead >= 1000 },
	},
	{
		ID: "quotes-10000", Name: "The Living Library",
		Description: "Read ten thousand quotes.", XPReward: 2000,
		Satisfied:   func(c domain.BadgeCounters) bool { return c.TotalQuotesRead >= 10000 },
	},
	{
		ID: "first-upload", Name: "Collector",
		Description: "Upload your first text.", XPReward: 50,
		Satisfied:   func(c domain.BadgeCounters) bool { return c.FilesUploaded >= 1 },
	},
	{
		ID: "uploads-10", Name: "Curator",
		Description: "Upload ten texts.", XPReward: 200,
		Satisfied:   func(c domain.BadgeCounters) bool { return c.FilesUploaded >= 10 },
	},
	{
		ID: "first-boon", Name: "Beginner's Luck",
		Description: "Receive your first boon.", XPReward: 50,
		Satisfied: func(c domain.BadgeCounters) bool {
			return totalBoons(c) >= 1
		},
	},
	{
		ID: "boons-50", Name: "Hoard of Small Wonders",
		Description: "Collect fifty boons.", XPReward: 300,
		Satisfied: func(c domain.BadgeCounters) bool {
			return totalBoons(c) >= 50
		},
	},
	{
		ID: "first-rare", Name: "Glint in the Dark",
		Description: "Receive a rare or better boon.", XPReward: 100,
		Satisfied: func(c domain.BadgeCounters) bool {
			return c.BoonsByRarity[domain.RarityRare] >= 1 ||
				c.BoonsByRarity[domain.RarityEpic] >= 1 ||
				c.BoonsByRarity[domain.RarityLegendary] >= 1
		},
	},
	{
		ID: "first-legendary", Name: "Touched by Fate",
		Description: "Receive a legendary boon.", XPReward: 1000,
		Satisfied: func(c domain.BadgeCounters) bool {
			return c.BoonsByRarity[domain.RarityLegendary] >= 1
		},
	},
	{
		ID: "streak-7", Name: "One Quiet Week",
		Description: "Read on seven consecutive days.", XPReward: 150,
		Satisfied:   func(c domain.BadgeCounters) bool { return c.StreakDays >= 7 },
	},
	{
		ID: "streak-30", Name: "A Month of Mornings",
		Description: "Read on thirty consecutive days.", XPReward: 600,
		Satisfied:   func(c domain.BadgeCounters) bool { return c.StreakDays >= 30 },
	},
	{
		ID: "level-10", Name: "Rising",
		Description: "Reach level ten.", XPReward: 100,
		Satisfied:   func(c domain.BadgeCounters) bool { return c.Level >= 10 },
	},
	{
		ID: "level-50", Name: "Ascendant",
		Description: "Reach level fifty.", XPReward: 500,
		Satisfied:   func(c domain.BadgeCounters) bool { return c.Level >= 50 },
	},
	{
		ID: "level-100", Name: "Centenarian",
		Description: "Reach level one hundred.", XPReward: 1500,
		Satisfied:   func(c domain.BadgeCounters) bool { return c.Level >= 100 },
	},
	{
		ID: "tier-adept", Name: "Past the Gate",
		Description: "Reach the Adept destiny tier.", XPReward: 200,
		Satisfied:   func(c domain.BadgeCounters) bool { return c.DestinyTierRank >= 2 },
	},
	{
		ID: "tier-luminary", Name: "Seen from Afar",
		Description: "Reach the Luminary destiny tier.", XPReward: 800,
		Satisfied:   func(c domain.BadgeCounters) bool { return c.DestinyTierRank >= 3 },
	},
	{
		ID: "hours-10", Name: "Ten Hours Deep",
		Description: "Spend ten hours reading.", XPReward: 250,
		Satisfied:   func(c domain.BadgeCounters) bool { return c.TotalTimeMinutes >= 600 },
	},
	{
		ID: "hours-100", Name: "A Season of Pages",
		Description: "Spend one hundred hours reading.", XPReward: 1200,
		Satisfied:   func(c domain.BadgeCounters) bool { return c.TotalTimeMinutes >= 6000 },
	},
}

func totalBoons(c domain.BadgeCounters) int {
	total := 0
	for _, n := range c.BoonsByRarity {
		total += n
	}
	return total
}

// DefaultBadges returns the catalog as a fresh, all-locked badge list for
// state initialization.
func DefaultBadges() []domain.Badge {
	badges := make([]domain.Badge, 0, len(Catalog))
	for _, entry := range Catalog {
		badges = append(badges, domain.Badge{
			ID:          entry.ID,
			Name:        entry.Name,
			Description: entry.Description,
			XPReward:    entry.XPReward,
		})
	}
	return badges
}
