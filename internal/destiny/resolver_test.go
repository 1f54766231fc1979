package destiny

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velarium/scriptorium/internal/domain"
)

func TestResolveDeterminism(t *testing.T) {
	statBlock := domain.CharacterStats{
		Insight: 12, Devotion: 3, Focus: 7, Wonder: 9,
		Clarity: 9, Fortune: 2, Endurance: 5,
	}

	first := Resolve(137, statBlock)
	second := Resolve(137, statBlock)

	assert.Equal(t, first, second, "identical inputs must produce identical destinies")
	assert.Equal(t, first.Key(), second.Key())
}

func TestRankStats(t *testing.T) {
	t.Run("highest and second highest", func(t *testing.T) {
		primary, secondary := RankStats(domain.CharacterStats{
			Insight: 10, Focus: 7, Devotion: 2,
		})

		assert.Equal(t, domain.StatInsight, primary)
		assert.Equal(t, domain.StatFocus, secondary)
	})

	t.Run("ties break by fixed priority order", func(t *testing.T) {
		// wonder and focus tied: wonder ranks earlier and wins.
		primary, _ := RankStats(domain.CharacterStats{Wonder: 5, Focus: 5})
		assert.Equal(t, domain.StatWonder, primary)

		// endurance only wins when nothing else matches it.
		primary, _ = RankStats(domain.CharacterStats{Endurance: 5, Fortune: 5})
		assert.Equal(t, domain.StatFortune, primary)
	})
}

func TestFateweaverSpecialCase(t *testing.T) {
	t.Run("wonder over clarity", func(t *testing.T) {
		d := Resolve(10, domain.CharacterStats{Wonder: 9, Clarity: 8, Insight: 1})
		assert.Equal(t, ClassFateweaver, d.PrimaryClass)
	})

	t.Run("clarity over wonder", func(t *testing.T) {
		d := Resolve(10, domain.CharacterStats{Clarity: 9, Wonder: 8})
		assert.Equal(t, ClassFateweaver, d.PrimaryClass)
	})

	t.Run("exact tie still resolves Fateweaver", func(t *testing.T) {
		d := Resolve(10, domain.CharacterStats{Wonder: 7, Clarity: 7, Focus: 3})
		assert.Equal(t, ClassFateweaver, d.PrimaryClass)
	})

	t.Run("wonder with another secondary is a Mystic", func(t *testing.T) {
		d := Resolve(10, domain.CharacterStats{Wonder: 9, Insight: 8, Clarity: 1})
		assert.Equal(t, "Mystic", d.PrimaryClass)
	})
}

func TestResolveTier(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Initiate"},
		{24, "Initiate"},
		{25, "Seeker"},
		{49, "Seeker"},
		{50, "Adept"},
		{99, "Adept"},
		{100, "Luminary"},
		{199, "Luminary"},
		{200, "Harbinger"},
		{299, "Harbinger"},
		{300, "Exalted"},
		{499, "Exalted"},
		{500, "Transcendent"},
		{749, "Transcendent"},
		{750, "Mythic"},
		{999, "Mythic"},
		{1000, "Paragon"},
		{5000, "Paragon"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveTier(tt.level), "level %d", tt.level)
	}
}

func TestTierRank(t *testing.T) {
	assert.Equal(t, 0, TierRank("Initiate"))
	assert.Equal(t, 8, TierRank("Paragon"))
	assert.Greater(t, TierRank("Mythic"), TierRank("Adept"))
	assert.Equal(t, 0, TierRank("NoSuchTier"))
}

func TestSubclassAdvancesByLevelBand(t *testing.T) {
	statBlock := domain.CharacterStats{Insight: 20, Devotion: 10}

	band0 := Resolve(50, statBlock)
	band0Again := Resolve(99, statBlock)
	band1 := Resolve(150, statBlock)
	wrapped := Resolve(350, statBlock)

	assert.Equal(t, band0.Subclass, band0Again.Subclass, "same hundred-level band")
	assert.NotEqual(t, band0.Subclass, band1.Subclass, "next band steps the pool")
	assert.Equal(t, band0.Subclass, wrapped.Subclass, "pool of three wraps at band three")
}

func TestEpithetSelection(t *testing.T) {
	// level + stat sum indexes the tier pool; shifting the sum by one moves
	// to the adjacent epithet.
	base := domain.CharacterStats{Insight: 10}
	bumped := domain.CharacterStats{Insight: 10, Devotion: 1}

	a := Resolve(10, base)
	b := Resolve(10, bumped)

	assert.NotEqual(t, a.Epithet, b.Epithet)

	pool := epithetPools[a.DestinyTier]
	require.NotEmpty(t, pool)
	assert.Contains(t, pool, a.Epithet)
}

func TestComposedOutput(t *testing.T) {
	d := Resolve(60, domain.CharacterStats{Devotion: 14, Wonder: 6})

	require.Equal(t, "Votary", d.PrimaryClass)
	assert.Equal(t, "Adept", d.DestinyTier)
	assert.Equal(t, "Adept Votary, "+d.Epithet, d.Title)
	assert.Contains(t, d.LoreDescription, d.Subclass)
	assert.Contains(t, d.LoreDescription, d.Epithet)
}

func TestTableCompleteness(t *testing.T) {
	t.Run("every class has lore templates", func(t *testing.T) {
		for class := range subclassPools {
			_, ok := loreTemplates[class]
			assert.True(t, ok, "class %q missing lore templates", class)
		}
	})

	t.Run("regular classes cover every non-primary secondary", func(t *testing.T) {
		for stat, class := range classByPrimaryStat {
			pools := subclassPools[class]
			require.NotNil(t, pools, "class %q has no subclass pools", class)
			for _, secondary := range domain.AllStats {
				if secondary == stat {
					continue
				}
				assert.Len(t, pools[secondary], 3,
					"class %q secondary %q needs a pool of three", class, secondary)
			}
		}
	})

	t.Run("every tier has ten epithets", func(t *testing.T) {
		for _, tier := range destinyTiers {
			assert.Len(t, epithetPools[tier.name], 10, "tier %q", tier.name)
		}
	})
}
