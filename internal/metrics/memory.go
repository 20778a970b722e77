package metrics

import "runtime"

// MemorySnapshot is a point-in-time reading of the Go runtime's memory
// statistics, taken before and after a batch run so the summary can report
// what the run cost.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes currently in use by the application
	HeapSys      uint64 // bytes obtained from the OS for the heap
	Sys          uint64 // total bytes obtained from the OS
	NumGC        uint32 // completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // live heap objects
}

// HeapAllocMB returns the in-use heap in mebibytes.
func (s MemorySnapshot) HeapAllocMB() float64 {
	return float64(s.HeapAlloc) / (1 << 20)
}

// GCDelta returns the number of GC cycles completed since an earlier
// snapshot.
func (s MemorySnapshot) GCDelta(earlier MemorySnapshot) uint32 {
	return s.NumGC - earlier.NumGC
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads the current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}
