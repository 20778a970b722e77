package orchestration

import (
	"testing"
	"time"
)

func TestNewBatchTracker(t *testing.T) {
	t.Parallel()

	if NewBatchTracker(0) != nil {
		t.Error("tracker for zero inputs should be nil")
	}
	if NewBatchTracker(-1) != nil {
		t.Error("tracker for negative inputs should be nil")
	}

	tr := NewBatchTracker(4)
	if tr == nil {
		t.Fatal("tracker should not be nil")
	}
	if tr.Total() != 4 {
		t.Errorf("Total() = %d, want 4", tr.Total())
	}
	if tr.Fraction() != 0 {
		t.Errorf("initial Fraction() = %f, want 0", tr.Fraction())
	}
	if tr.ETA() != 0 {
		t.Errorf("initial ETA() = %v, want 0", tr.ETA())
	}
}

func TestBatchTracker_Observe(t *testing.T) {
	t.Parallel()

	tr := NewBatchTracker(4)
	tr.Observe(ProgressUpdate{Completed: 2, Total: 4})
	if tr.Fraction() != 0.5 {
		t.Errorf("Fraction() = %f, want 0.5", tr.Fraction())
	}

	// Out-of-order updates never move the count backwards.
	tr.Observe(ProgressUpdate{Completed: 1, Total: 4})
	if tr.Fraction() != 0.5 {
		t.Errorf("Fraction() after stale update = %f, want 0.5", tr.Fraction())
	}

	tr.Observe(ProgressUpdate{Completed: 4, Total: 4})
	if tr.Fraction() != 1 {
		t.Errorf("Fraction() = %f, want 1", tr.Fraction())
	}
}

func TestBatchTracker_ETA(t *testing.T) {
	t.Parallel()

	tr := NewBatchTracker(2)

	time.Sleep(time.Millisecond)
	tr.Observe(ProgressUpdate{Completed: 1, Total: 2})
	if eta := tr.ETA(); eta <= 0 {
		t.Errorf("ETA() with half the batch done = %v, want > 0", eta)
	}

	tr.Observe(ProgressUpdate{Completed: 2, Total: 2})
	if eta := tr.ETA(); eta != 0 {
		t.Errorf("ETA() after completion = %v, want 0", eta)
	}
}
