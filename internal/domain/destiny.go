package domain

// Destiny is the fully derived class identity computed from level and stats.
// It is a cache of a deterministic computation, persisted only for display
// continuity, and is never independently mutated.
type Destiny struct {
	PrimaryClass    string `json:"primary_class"`
	Subclass        string `json:"subclass"`
	Epithet         string `json:"epithet"`
	Title           string `json:"title"`
	DestinyTier     string `json:"destiny_tier"`
	LoreDescription string `json:"lore_description"`
}

// Key returns the serialized comparison form used to decide whether a newly
// computed destiny differs from the stored one.
func (d Destiny) Key() string {
	return d.DestinyTier + "|" + d.PrimaryClass + "|" + d.Subclass + "|" + d.Epithet
}
