package domain

import "time"

// DateLayout is the calendar-date form used for streak and daily-quota
// comparisons. Calendar equality, not a rolling 24h window.
const DateLayout = "2006-01-02"

// GenerationQuota tracks daily-capped art generation usage. Count resets
// when DayStamp no longer matches the current calendar date.
type GenerationQuota struct {
	DayStamp string `json:"day_stamp"`
	Count    int    `json:"count"`
}

// PlayerState is the single player-progression aggregate. All entities in
// the system are owned by this value; mutations are serialized by the
// progression service.
type PlayerState struct {
	XP               int    `json:"xp"`
	Level            int    `json:"level"`
	TotalQuotesRead  int    `json:"total_quotes_read"`
	FilesUploaded    int    `json:"files_uploaded"`
	StreakDays       int    `json:"streak_days"`
	LastReadDate     string `json:"last_read_date,omitempty"`
	TotalTimeMinutes int    `json:"total_time_minutes"`

	Boons     []Boon                     `json:"boons"`
	Equipment Equipment                  `json:"equipment"`
	Destiny   *Destiny                   `json:"destiny,omitempty"`
	Badges    []Badge                    `json:"badges"`
	Scripts   map[string]*ScriptureStats `json:"scriptures"`
	Focus     FocusState                 `json:"focus"`

	ItemArtQuota        GenerationQuota `json:"item_art_quota"`
	PortraitLastGenAt   *time.Time      `json:"portrait_last_gen_at,omitempty"`
	PortraitImageURL    string          `json:"portrait_image_url,omitempty"`
	PortraitGeneratedAt *time.Time      `json:"portrait_generated_at,omitempty"`
}

// NewPlayerState returns a fresh level-1 state with empty collections and
// the default badge set wired in by the caller.
func NewPlayerState() *PlayerState {
	return &PlayerState{
		Level:     1,
		Boons:     []Boon{},
		Equipment: NewEquipment(),
		Badges:    []Badge{},
		Scripts:   make(map[string]*ScriptureStats),
		Focus:     DefaultFocusState(),
	}
}

// BoonByID returns the boon with the given id, or nil if absent.
func (p *PlayerState) BoonByID(id string) *Boon {
	for i := range p.Boons {
		if p.Boons[i].ID == id {
			return &p.Boons[i]
		}
	}
	return nil
}

// EquippedBoons resolves the equipment map to the boons it references,
// skipping empty slots and dangling ids.
func (p *PlayerState) EquippedBoons() []Boon {
	var equipped []Boon
	for _, slot := range AllEquipSlots {
		id := p.Equipment[slot]
		if id == "" {
			continue
		}
		if b := p.BoonByID(id); b != nil {
			equipped = append(equipped, *b)
		}
	}
	return equipped
}

// BoonCountsByRarity tallies owned boons per rarity tier.
func (p *PlayerState) BoonCountsByRarity() map[Rarity]int {
	counts := make(map[Rarity]int, 5)
	for i := range p.Boons {
		counts[p.Boons[i].Rarity]++
	}
	return counts
}
