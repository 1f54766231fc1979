// Package leveling holds the pure XP and level curves for the player and
// for per-scripture mastery. Every function here is total: bad input is
// clamped, never rejected.
package leveling

// XPForLevel returns the cumulative XP required to reach player level l.
// The player curve is quadratic: 100 * l^2.
func XPForLevel(l int) int {
	if l < 1 {
		l = 1
	}
	return 100 * l * l
}

// LevelFromXP returns the largest level whose XP requirement totalXP meets.
// Level 1 is the floor regardless of XP, even zero or negative.
// The search is iterative rather than closed-form to keep exact-boundary
// results stable.
func LevelFromXP(totalXP int) int {
	level := 1
	for totalXP >= XPForLevel(level+1) {
		level++
	}
	return level
}

// Progress describes position within the current player level.
type Progress struct {
	Current    int     `json:"current"`
	Needed     int     `json:"needed"`
	Percentage float64 `json:"percentage"`
}

// ProgressForLevel reports XP progress through the given level.
func ProgressForLevel(totalXP, level int) Progress {
	if level < 1 {
		level = 1
	}
	current := totalXP - XPForLevel(level)
	if current < 0 {
		current = 0
	}
	needed := XPForLevel(level+1) - XPForLevel(level)
	return Progress{
		Current:    current,
		Needed:     needed,
		Percentage: float64(current) / float64(needed) * 100,
	}
}

// XP award steps by quote text length.
const (
	xpShortQuote  = 5
	xpMediumQuote = 10
	xpLongQuote   = 20
	xpEpicQuote   = 40

	shortQuoteMaxLen  = 80
	mediumQuoteMaxLen = 200
	longQuoteMaxLen   = 400
)

// XPForQuoteLength returns the XP award for reading a quote of the given
// text length.
func XPForQuoteLength(length int) int {
	switch {
	case length <= shortQuoteMaxLen:
		return xpShortQuote
	case length <= mediumQuoteMaxLen:
		return xpMediumQuote
	case length <= longQuoteMaxLen:
		return xpLongQuote
	default:
		return xpEpicQuote
	}
}
