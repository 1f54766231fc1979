package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTracker(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("credits whole minutes on tick", func(t *testing.T) {
		tr := NewTracker()
		tr.Start(base)

		assert.Equal(t, 0, tr.Tick(base.Add(59*time.Second)), "partial minute not credited")
		assert.Equal(t, 1, tr.Tick(base.Add(61*time.Second)))
		assert.Equal(t, 0, tr.Tick(base.Add(90*time.Second)), "same minute not credited twice")
		assert.Equal(t, 2, tr.Tick(base.Add(3*time.Minute+5*time.Second)))
	})

	t.Run("stop rounds down and ends the session", func(t *testing.T) {
		tr := NewTracker()
		tr.Start(base)
		tr.Tick(base.Add(2 * time.Minute))

		newly := tr.Stop(base.Add(5*time.Minute + 59*time.Second))

		assert.Equal(t, 3, newly, "two already credited, three more complete")
		assert.False(t, tr.Active())
		assert.Equal(t, 0, tr.Tick(base.Add(10*time.Minute)), "idle tracker credits nothing")
	})

	t.Run("double start does not reset the clock", func(t *testing.T) {
		tr := NewTracker()
		tr.Start(base)
		tr.Start(base.Add(50 * time.Second))

		assert.Equal(t, 1, tr.Tick(base.Add(66*time.Second)),
			"minute measured from the original start")
	})

	t.Run("stop on idle tracker returns zero", func(t *testing.T) {
		tr := NewTracker()
		assert.Equal(t, 0, tr.Stop(base))
	})

	t.Run("restart after stop begins a fresh session", func(t *testing.T) {
		tr := NewTracker()
		tr.Start(base)
		tr.Stop(base.Add(90 * time.Second))

		tr.Start(base.Add(10 * time.Minute))

		assert.Equal(t, 0, tr.Tick(base.Add(10*time.Minute+30*time.Second)))
		assert.Equal(t, 1, tr.Tick(base.Add(11*time.Minute)))
	})
}
