package metrics

import "runtime"

// MemorySnapshot is a point-in-time view of the Go runtime's memory
// accounting. The verbose report takes one after the benchmark session;
// the dashboard takes one per tick.
type MemorySnapshot struct {
	HeapAlloc    uint64 // live heap bytes
	HeapSys      uint64 // heap bytes reserved from the OS
	Sys          uint64 // total bytes reserved from the OS
	NumGC        uint32 // completed GC cycles
	PauseTotalNs uint64 // cumulative stop-the-world pause time
	HeapObjects  uint64 // live heap objects
}

// MemoryCollector produces MemorySnapshots from runtime.ReadMemStats.
type MemoryCollector struct{}

// NewMemoryCollector returns a collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads the current runtime memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return MemorySnapshot{
		HeapAlloc:    stats.HeapAlloc,
		HeapSys:      stats.HeapSys,
		Sys:          stats.Sys,
		NumGC:        stats.NumGC,
		PauseTotalNs: stats.PauseTotalNs,
		HeapObjects:  stats.HeapObjects,
	}
}
