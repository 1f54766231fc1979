// Package session accumulates wall-clock reading time in whole minutes.
// Partial minutes are never credited: tearing a session down mid-interval
// rounds down, and repeated ticks never double-count.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/velarium/scriptorium/internal/logger"
)

// TickInterval is how often a running session credits elapsed minutes.
const TickInterval = time.Minute

// Tracker owns one reading session at a time. Credited minutes are pushed
// to the sink as they complete.
type Tracker struct {
	mu        sync.Mutex
	active    bool
	startedAt time.Time
	credited  int
}

// NewTracker returns an idle tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Start begins a session at now. Starting an already active session is a
// no-op so a double-tap cannot reset the clock.
func (t *Tracker) Start(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active {
		return
	}
	t.active = true
	t.startedAt = now
	t.credited = 0
}

// Active reports whether a session is running.
func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Tick credits any whole minutes completed since the last credit and
// returns how many were newly credited. Idle trackers credit nothing.
func (t *Tracker) Tick(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.creditLocked(now)
}

// Stop credits the final whole minutes, ends the session, and returns the
// newly credited count. Stopping an idle tracker returns zero.
func (t *Tracker) Stop(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active {
		return 0
	}
	newly := t.creditLocked(now)
	t.active = false
	return newly
}

func (t *Tracker) creditLocked(now time.Time) int {
	if !t.active {
		return 0
	}
	elapsed := int(now.Sub(t.startedAt) / time.Minute)
	if elapsed <= t.credited {
		return 0
	}
	newly := elapsed - t.credited
	t.credited = elapsed
	return newly
}

// Run ticks the tracker once per TickInterval until the context ends,
// pushing newly credited minutes into sink. Safe to cancel mid-interval.
func (t *Tracker) Run(ctx context.Context, sink func(minutes int)) {
	log := logger.FromContext(ctx)
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("Session tracker stopped")
			return
		case now := <-ticker.C:
			if newly := t.Tick(now); newly > 0 {
				sink(newly)
			}
		}
	}
}
