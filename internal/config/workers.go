package config

import "runtime"

// Worker-count resolution chain (highest priority first):
//   1. CLI flag (--workers)
//   2. Environment variable (STEPSOLVE_WORKERS)
//   3. Adaptive hardware estimation (this file)

// workerCap bounds the adaptive estimate. Individual solves are cheap, so
// past this point extra workers only add scheduling overhead.
const workerCap = 8

// ApplyAdaptiveWorkers fills in the batch worker count from hardware
// characteristics when the configured value is the adaptive zero default,
// preserving any user-specified override.
func ApplyAdaptiveWorkers(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateOptimalWorkers()
	}
	return cfg
}

// EstimateOptimalWorkers provides a heuristic worker count without running
// benchmarks: one worker per CPU, capped at workerCap.
func EstimateOptimalWorkers() int {
	numCPU := runtime.NumCPU()
	if numCPU < 1 {
		return 1
	}
	if numCPU > workerCap {
		return workerCap
	}
	return numCPU
}
