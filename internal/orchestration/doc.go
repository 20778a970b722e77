// Package orchestration coordinates concurrent solving of input batches
// and aggregates the outcomes into a summary. It decouples solving from
// presentation via ProgressReporter and ResultPresenter interfaces.
package orchestration
