package domain

// Stat identifies one of the seven character statistics.
type Stat string

const (
	StatInsight   Stat = "insight"
	StatDevotion  Stat = "devotion"
	StatFocus     Stat = "focus"
	StatWonder    Stat = "wonder"
	StatClarity   Stat = "clarity"
	StatFortune   Stat = "fortune"
	StatEndurance Stat = "endurance"
)

// AllStats lists every stat in declaration order.
// Used when distributing stat-bonus points across random fields.
var AllStats = []Stat{
	StatInsight,
	StatDevotion,
	StatFocus,
	StatWonder,
	StatClarity,
	StatFortune,
	StatEndurance,
}

// StatRankOrder is the fixed tie-break priority when ranking stats.
// Earlier entries win ties.
var StatRankOrder = []Stat{
	StatWonder,
	StatClarity,
	StatInsight,
	StatDevotion,
	StatFocus,
	StatFortune,
	StatEndurance,
}

// StatBonuses is a fixed record of per-stat bonus points carried by a boon.
// All fields are non-negative.
type StatBonuses struct {
	Insight   int `json:"insight"`
	Devotion  int `json:"devotion"`
	Focus     int `json:"focus"`
	Wonder    int `json:"wonder"`
	Clarity   int `json:"clarity"`
	Fortune   int `json:"fortune"`
	Endurance int `json:"endurance"`
}

// CharacterStats is the final derived stat block for the player.
// It is always recomputed from level, equipped boons and time invested;
// it is never stored as ground truth.
type CharacterStats = StatBonuses

// Get returns the value of the named stat. Unknown stats return 0.
func (s StatBonuses) Get(stat Stat) int {
	switch stat {
	case StatInsight:
		return s.Insight
	case StatDevotion:
		return s.Devotion
	case StatFocus:
		return s.Focus
	case StatWonder:
		return s.Wonder
	case StatClarity:
		return s.Clarity
	case StatFortune:
		return s.Fortune
	case StatEndurance:
		return s.Endurance
	}
	return 0
}

// Add increments the named stat by n. Unknown stats are ignored.
func (s *StatBonuses) Add(stat Stat, n int) {
	switch stat {
	case StatInsight:
		s.Insight += n
	case StatDevotion:
		s.Devotion += n
	case StatFocus:
		s.Focus += n
	case StatWonder:
		s.Wonder += n
	case StatClarity:
		s.Clarity += n
	case StatFortune:
		s.Fortune += n
	case StatEndurance:
		s.Endurance += n
	}
}

// Total returns the sum of all seven stat values.
func (s StatBonuses) Total() int {
	return s.Insight + s.Devotion + s.Focus + s.Wonder + s.Clarity + s.Fortune + s.Endurance
}
