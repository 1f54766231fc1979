package backup

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/velarium/scriptorium/internal/domain"
)

// Result is the non-throwing outcome of an import attempt
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

var validate = validator.New()

// PlayerPayload mirrors PlayerExport with pointer numerics so that missing
// required fields are distinguishable from zero values.
type PlayerPayload struct {
	XP               *int             `json:"xp" validate:"required,gte=0"`
	Level            *int             `json:"level" validate:"required,gte=1"`
	TotalQuotesRead  *int             `json:"total_quotes_read" validate:"required,gte=0"`
	FilesUploaded    *int             `json:"files_uploaded" validate:"omitempty,gte=0"`
	StreakDays       *int             `json:"streak_days" validate:"omitempty,gte=0"`
	LastReadDate     string           `json:"last_read_date"`
	TotalTimeMinutes *int             `json:"total_time_minutes" validate:"omitempty,gte=0"`
	Boons            []domain.Boon    `json:"boons"`
	Equipment        domain.Equipment `json:"equipment"`
	Destiny          *domain.Destiny  `json:"destiny"`
	Badges           []domain.Badge   `json:"badges"`
}

type ScripturePayload struct {
	FileID           string `json:"file_id" validate:"required"`
	DisplayName      string `json:"display_name"`
	QuotesRead       *int   `json:"quotes_read" validate:"required,gte=0"`
	FocusSessions    *int   `json:"focus_sessions" validate:"omitempty,gte=0"`
	FocusQuotesRead  *int   `json:"focus_quotes_read" validate:"omitempty,gte=0"`
	LocalXP          *int   `json:"local_xp" validate:"required,gte=0"`
	LocalLevel       *int   `json:"local_level" validate:"omitempty,gte=1"`
	MasteryTier      string `json:"mastery_tier"`
	TimeSpentMinutes *int   `json:"time_spent_minutes" validate:"omitempty,gte=0"`
}

type Envelope struct {
	Version    string            `json:"version"`
	Player     *PlayerPayload     `json:"player" validate:"required"`
	Scriptures []ScripturePayload `json:"scriptures" validate:"omitempty,dive"`
}

// Parse decodes and validates a backup payload. It never mutates anything;
// a failed parse carries a human-readable reason in the returned error.
func Parse(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidBackup, ReasonWrongFieldType)
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidBackup, ReasonMalformedJSON)
	}

	if env.Version != "" && env.Version != ExportVersion {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidBackup, ReasonUnknownVersion)
	}

	if err := validate.Struct(&env); err != nil {
		if hasNegativeViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidBackup, ReasonNegativeNumbers)
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidBackup, ReasonMissingFields)
	}

	return &env, nil
}

func hasNegativeViolation(err error) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == "gte" {
			return true
		}
	}
	return false
}

// Merge folds a validated import into a copy of the current state. The
// current state is never touched; callers swap in the returned aggregate
// only once the whole merge succeeds.
//
// Scripture records are matched to existing texts by file id first, then by
// display name. Unmatched records are preserved under their original key so
// a re-uploaded file can reclaim them later.
func Merge(current *domain.PlayerState, env *Envelope) *domain.PlayerState {
	merged := *current
	p := env.Player

	merged.XP = *p.XP
	merged.Level = *p.Level
	merged.TotalQuotesRead = *p.TotalQuotesRead
	merged.FilesUploaded = intOr(p.FilesUploaded, current.FilesUploaded)
	merged.StreakDays = intOr(p.StreakDays, current.StreakDays)
	merged.TotalTimeMinutes = intOr(p.TotalTimeMinutes, current.TotalTimeMinutes)
	if p.LastReadDate != "" {
		merged.LastReadDate = p.LastReadDate
	}

	if p.Boons != nil {
		merged.Boons = append([]domain.Boon{}, p.Boons...)
	}
	if p.Equipment != nil {
		merged.Equipment = cloneEquipment(p.Equipment)
	}
	if p.Destiny != nil {
		merged.Destiny = cloneDestiny(p.Destiny)
	}
	if p.Badges != nil {
		merged.Badges = append([]domain.Badge{}, p.Badges...)
	}

	merged.Scripts = make(map[string]*domain.ScriptureStats, len(current.Scripts)+len(env.Scriptures))
	for id, s := range current.Scripts {
		if s != nil {
			copied := *s
			merged.Scripts[id] = &copied
		}
	}

	byName := make(map[string]string, len(merged.Scripts))
	for id, s := range merged.Scripts {
		if s.DisplayName != "" {
			byName[s.DisplayName] = id
		}
	}

	for _, imp := range env.Scriptures {
		targetID := imp.FileID
		if _, exists := merged.Scripts[targetID]; !exists {
			if localID, ok := byName[imp.DisplayName]; ok && imp.DisplayName != "" {
				targetID = localID
			}
		}

		existing := merged.Scripts[targetID]
		name := imp.DisplayName
		if name == "" && existing != nil {
			name = existing.DisplayName
		}

		merged.Scripts[targetID] = &domain.ScriptureStats{
			FileID:           targetID,
			DisplayName:      name,
			QuotesRead:       *imp.QuotesRead,
			FocusSessions:    intOr(imp.FocusSessions, 0),
			FocusQuotesRead:  intOr(imp.FocusQuotesRead, 0),
			LocalXP:          *imp.LocalXP,
			LocalLevel:       intOr(imp.LocalLevel, 1),
			MasteryTier:      domain.MasteryTier(imp.MasteryTier),
			TimeSpentMinutes: intOr(imp.TimeSpentMinutes, 0),
		}
	}

	return &merged
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
