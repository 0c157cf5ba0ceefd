package stats

import (
	"sync"
	"time"

	"github.com/axiomhq/hyperloglog"
)

// ActivityTracker estimates how many distinct assets were active today
// relative to a configured universe size, using a HyperLogLog sketch so the
// memory cost stays flat no matter how many observations arrive.
type ActivityTracker struct {
	mu       sync.Mutex
	sketch   *hyperloglog.Sketch
	day      time.Time
	universe int
	now      func() time.Time
}

// NewActivityTracker creates a tracker. universe is the expected number of
// assets in the ecosystem; activity is reported as a percentage of it.
func NewActivityTracker(universe int) *ActivityTracker {
	if universe <= 0 {
		universe = 100
	}
	return &ActivityTracker{
		sketch:   hyperloglog.New14(),
		universe: universe,
		now:      time.Now,
	}
}

// Observe records one asset as active. The sketch resets at day rollover.
func (t *ActivityTracker) Observe(asset string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollover()
	t.sketch.Insert([]byte(asset))
}

// ActivityPct returns the estimated share of the universe active today,
// capped at 100.
func (t *ActivityTracker) ActivityPct() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollover()
	pct := float64(t.sketch.Estimate()) / float64(t.universe) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

func (t *ActivityTracker) rollover() {
	day := t.now().UTC().Truncate(24 * time.Hour)
	if !day.Equal(t.day) {
		t.day = day
		t.sketch = hyperloglog.New14()
	}
}
