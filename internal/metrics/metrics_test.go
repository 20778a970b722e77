package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestNewMetrics tests the Metrics constructor.
func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	if m == nil {
		t.Fatal("NewMetrics returned nil")
	}
	if m.handler == nil {
		t.Error("Metrics.handler should be initialized")
	}
	if m.registry == nil {
		t.Error("Metrics.registry should be initialized")
	}
}

// TestMetrics_ActiveSolves tests the in-flight gauge.
func TestMetrics_ActiveSolves(t *testing.T) {
	m := NewMetrics()

	m.IncrementActiveSolves()
	if got := testutil.ToFloat64(m.activeSolves); got != 1 {
		t.Errorf("active solves after increment = %v, want 1", got)
	}

	m.DecrementActiveSolves()
	if got := testutil.ToFloat64(m.activeSolves); got != 0 {
		t.Errorf("active solves after decrement = %v, want 0", got)
	}
}

// TestMetrics_ObserveSolve tests the solve counters.
func TestMetrics_ObserveSolve(t *testing.T) {
	m := NewMetrics()

	m.ObserveSolve("calculation", "calculation", false, 5*time.Millisecond)
	m.ObserveSolve("algebraic", "linear-equation", false, time.Millisecond)
	m.ObserveSolve("algebraic", "algebraic-error", true, time.Millisecond)

	if got := testutil.ToFloat64(m.solvesTotal.WithLabelValues("calculation", "calculation")); got != 1 {
		t.Errorf("solves_total{calculation} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.solvesTotal.WithLabelValues("algebraic", "linear-equation")); got != 1 {
		t.Errorf("solves_total{algebraic,linear-equation} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.errorsTotal.WithLabelValues("algebraic-error")); got != 1 {
		t.Errorf("errors_total{algebraic-error} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.errorsTotal.WithLabelValues("linear-equation")); got != 0 {
		t.Errorf("errors_total{linear-equation} = %v, want 0", got)
	}
}

// TestMetrics_WritePrometheus tests the text exposition endpoint.
func TestMetrics_WritePrometheus(t *testing.T) {
	m := NewMetrics()

	m.IncrementActiveSolves()
	defer m.DecrementActiveSolves()
	m.ObserveSolve("calculation", "calculation", false, time.Millisecond)
	m.ObserveUnclaimed()

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rec := httptest.NewRecorder()

	m.WritePrometheus(rec, req)

	body := rec.Body.String()

	t.Run("Contains active solves gauge", func(t *testing.T) {
		if !strings.Contains(body, "stepsolve_active_solves") {
			t.Error("metrics output should contain stepsolve_active_solves")
		}
	})

	t.Run("Contains solve counter", func(t *testing.T) {
		if !strings.Contains(body, "stepsolve_solves_total") {
			t.Error("metrics output should contain stepsolve_solves_total")
		}
	})

	t.Run("Contains unclaimed counter", func(t *testing.T) {
		if !strings.Contains(body, "stepsolve_unclaimed_inputs_total") {
			t.Error("metrics output should contain stepsolve_unclaimed_inputs_total")
		}
	})

	t.Run("Contains Go runtime metrics", func(t *testing.T) {
		if !strings.Contains(body, "go_") {
			t.Error("metrics output should contain Go runtime metrics")
		}
	})
}

// TestMetrics_IsolatedRegistries verifies two instances do not share state.
func TestMetrics_IsolatedRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.ObserveSolve("calculation", "calculation", false, time.Millisecond)

	if got := testutil.ToFloat64(b.solvesTotal.WithLabelValues("calculation", "calculation")); got != 0 {
		t.Errorf("second instance solves_total = %v, want 0", got)
	}
}
