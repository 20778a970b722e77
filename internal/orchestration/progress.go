package orchestration

import (
	"sync"
	"time"
)

// BatchTracker aggregates completion updates into a fraction and an ETA
// estimate. The CLI progress reporter refreshes from it on a ticker between
// updates, so all methods are safe for concurrent use.
type BatchTracker struct {
	mu        sync.Mutex
	total     int
	completed int
	startTime time.Time
}

// NewBatchTracker creates a tracker for the given batch size. Returns nil
// if total <= 0.
func NewBatchTracker(total int) *BatchTracker {
	if total <= 0 {
		return nil
	}
	return &BatchTracker{total: total, startTime: time.Now()}
}

// Observe records a completion update. Updates may arrive out of order from
// concurrent workers; the highest completed count wins.
func (t *BatchTracker) Observe(update ProgressUpdate) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if update.Completed > t.completed {
		t.completed = update.Completed
	}
}

// Fraction returns the current completion fraction, 0.0 to 1.0.
func (t *BatchTracker) Fraction() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return float64(t.completed) / float64(t.total)
}

// ETA estimates the time remaining from the observed completion rate.
// It returns 0 until the first completion arrives, since no rate is known
// yet.
func (t *BatchTracker) ETA() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.completed == 0 {
		return 0
	}
	if t.completed >= t.total {
		return 0
	}
	elapsed := time.Since(t.startTime)
	perInput := elapsed / time.Duration(t.completed)
	return perInput * time.Duration(t.total-t.completed)
}

// Total returns the batch size being tracked.
func (t *BatchTracker) Total() int {
	return t.total
}
