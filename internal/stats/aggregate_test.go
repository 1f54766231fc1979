package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velarium/scriptorium/internal/domain"
)

func TestCompute(t *testing.T) {
	t.Run("base stats from level alone", func(t *testing.T) {
		got := Compute(10, nil, 0)

		want := domain.CharacterStats{
			Insight:  5,
			Devotion: 5,
			Focus:    5,
			Wonder:   5,
			Clarity:  5,
			Fortune:  5,
			// Endurance has no level-derived base.
		}
		assert.Equal(t, want, got)
	})

	t.Run("level zero is treated as level one", func(t *testing.T) {
		got := Compute(0, []domain.StatBonuses{{Fortune: 3}}, 90)

		assert.Equal(t, 0, got.Insight, "floor(1/2) = 0 base")
		assert.Equal(t, 3, got.Fortune, "base 0 plus boon bonus")
		assert.Equal(t, 3, got.Endurance, "floor(90/30) from time invested")
	})

	t.Run("equipped bonuses sum per field", func(t *testing.T) {
		equipped := []domain.StatBonuses{
			{Wonder: 2, Clarity: 1},
			{Wonder: 1, Endurance: 4},
		}

		got := Compute(4, equipped, 0)

		assert.Equal(t, 2+3, got.Wonder)
		assert.Equal(t, 2+1, got.Clarity)
		assert.Equal(t, 4, got.Endurance)
		assert.Equal(t, 2, got.Devotion, "untouched stat keeps base only")
	})

	t.Run("time bonus applies only to endurance", func(t *testing.T) {
		got := Compute(2, nil, 59)
		assert.Equal(t, 1, got.Endurance)

		got = Compute(2, nil, 60)
		assert.Equal(t, 2, got.Endurance)

		assert.Equal(t, 1, got.Insight, "other stats unaffected by time")
	})

	t.Run("negative time is clamped", func(t *testing.T) {
		got := Compute(2, nil, -30)
		assert.Equal(t, 0, got.Endurance)
	})
}
