package orchestration

import (
	"io"
	"sync"
	"time"
)

// ProgressUpdate is one completion notification from a batch worker.
type ProgressUpdate struct {
	// Completed is the number of inputs finished so far.
	Completed int
	// Total is the batch size.
	Total int
}

// ProgressReporter defines the interface for displaying batch progress.
// It decouples the orchestration layer from the presentation layer:
// implementations handle the visual representation (spinner, progress bar)
// while orchestration focuses on coordinating the workers.
type ProgressReporter interface {
	// DisplayProgress consumes progress updates from the channel until it
	// is closed. It should be called in a separate goroutine.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving completion updates from workers.
	//   - total: The batch size being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer) {
	f(wg, progressChan, total, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting batch outcomes.
// This keeps output formats (text table, JSON) out of the orchestration
// logic.
type ResultPresenter interface {
	// PresentBatchTable displays the per-input outcome table.
	PresentBatchTable(results []BatchResult, out io.Writer)
}

// Recorder receives instrumentation events from the batch workers. The
// metrics package provides the production implementation.
type Recorder interface {
	IncrementActiveSolves()
	DecrementActiveSolves()
	ObserveSolve(solver, solutionType string, isError bool, duration time.Duration)
	ObserveUnclaimed()
}

// NopRecorder discards all instrumentation events.
type NopRecorder struct{}

// IncrementActiveSolves does nothing.
func (NopRecorder) IncrementActiveSolves() {}

// DecrementActiveSolves does nothing.
func (NopRecorder) DecrementActiveSolves() {}

// ObserveSolve does nothing.
func (NopRecorder) ObserveSolve(string, string, bool, time.Duration) {}

// ObserveUnclaimed does nothing.
func (NopRecorder) ObserveUnclaimed() {}
