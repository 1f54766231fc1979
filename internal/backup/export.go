package backup

import (
	"time"

	"github.com/velarium/scriptorium/internal/domain"
)

// PlayerExport is the player progression slice of an export. Quote bodies
// and focus selection are deliberately excluded; only progression travels.
type PlayerExport struct {
	XP               int              `json:"xp"`
	Level            int              `json:"level"`
	TotalQuotesRead  int              `json:"total_quotes_read"`
	FilesUploaded    int              `json:"files_uploaded"`
	StreakDays       int              `json:"streak_days"`
	LastReadDate     string           `json:"last_read_date,omitempty"`
	TotalTimeMinutes int              `json:"total_time_minutes"`
	Boons            []domain.Boon    `json:"boons"`
	Equipment        domain.Equipment `json:"equipment"`
	Destiny          *domain.Destiny  `json:"destiny,omitempty"`
	Badges           []domain.Badge   `json:"badges"`
}

// Export is the reduced-shape backup envelope
type Export struct {
	Version    string                  `json:"version"`
	ExportedAt time.Time               `json:"exported_at"`
	Player     PlayerExport            `json:"player"`
	Scriptures []domain.ScriptureStats `json:"scriptures"`
}

// BuildExport snapshots the exportable slice of the given state
func BuildExport(state *domain.PlayerState, now time.Time) Export {
	scriptures := make([]domain.ScriptureStats, 0, len(state.Scripts))
	for _, s := range state.Scripts {
		if s != nil {
			scriptures = append(scriptures, *s)
		}
	}

	return Export{
		Version:    ExportVersion,
		ExportedAt: now,
		Player: PlayerExport{
			XP:               state.XP,
			Level:            state.Level,
			TotalQuotesRead:  state.TotalQuotesRead,
			FilesUploaded:    state.FilesUploaded,
			StreakDays:       state.StreakDays,
			LastReadDate:     state.LastReadDate,
			TotalTimeMinutes: state.TotalTimeMinutes,
			Boons:            append([]domain.Boon{}, state.Boons...),
			Equipment:        cloneEquipment(state.Equipment),
			Destiny:          cloneDestiny(state.Destiny),
			Badges:           append([]domain.Badge{}, state.Badges...),
		},
		Scriptures: scriptures,
	}
}

func cloneEquipment(eq domain.Equipment) domain.Equipment {
	out := domain.NewEquipment()
	for slot, id := range eq {
		out[slot] = id
	}
	return out
}

func cloneDestiny(d *domain.Destiny) *domain.Destiny {
	if d == nil {
		return nil
	}
	copied := *d
	return &copied
}
