package domain

// MasteryTier names the per-text progression stage. Derived from the
// cumulative quotes-read count for that text; never decreases.
type MasteryTier string

const (
	MasteryUnseen      MasteryTier = "Unseen"
	MasteryTouched     MasteryTier = "Touched"
	MasteryFamiliar    MasteryTier = "Familiar"
	MasteryStudent     MasteryTier = "Student"
	MasteryScholar     MasteryTier = "Scholar"
	MasteryKeeper      MasteryTier = "Keeper"
	MasteryLivingVoice MasteryTier = "Living Voice"
)

// ScriptureStats tracks progression for one uploaded text, separate from the
// player's global level. Created on registration, mutated on every read
// attributed to the text, deleted with the text.
type ScriptureStats struct {
	FileID           string      `json:"file_id"`
	DisplayName      string      `json:"display_name"`
	QuotesRead       int         `json:"quotes_read"`
	FocusSessions    int         `json:"focus_sessions"`
	FocusQuotesRead  int         `json:"focus_quotes_read"`
	LocalXP          int         `json:"local_xp"`
	LocalLevel       int         `json:"local_level"`
	MasteryTier      MasteryTier `json:"mastery_tier"`
	TimeSpentMinutes int         `json:"time_spent_minutes"`
}
