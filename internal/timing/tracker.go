package timing

import (
	"sync"
	"time"
)

// Tracker records per-operation durations for stage timing summaries.
type Tracker struct {
	mu      sync.RWMutex
	timings map[string][]time.Duration
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
	}
}

// StartTiming marks the beginning of an operation.
func (t *Tracker) StartTiming(operation string) time.Time {
	return time.Now()
}

// EndTiming records the elapsed time and returns it.
func (t *Tracker) EndTiming(operation string, start time.Time) time.Duration {
	elapsed := time.Since(start)

	t.mu.Lock()
	t.timings[operation] = append(t.timings[operation], elapsed)
	t.mu.Unlock()

	return elapsed
}

// Average returns the mean duration recorded for the operation.
func (t *Tracker) Average(operation string) time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	samples := t.timings[operation]
	if len(samples) == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range samples {
		total += d
	}
	return total / time.Duration(len(samples))
}

// Count returns how many samples were recorded for the operation.
func (t *Tracker) Count(operation string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.timings[operation])
}
