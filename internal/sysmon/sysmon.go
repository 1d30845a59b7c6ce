// Package sysmon samples host-level CPU and memory usage. The dashboard
// polls it on each tick to show what the machine was doing while the
// benchmark ran.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one host resource snapshot.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample takes one host-wide CPU and memory reading. The CPU percentage
// covers the interval since the previous call (the first call measures
// since process start and may read zero). Sampling errors degrade to
// zero values; a stats row is not worth failing a benchmark over.
func Sample() Stats {
	var snap Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		snap.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		snap.MemPercent = vm.UsedPercent
	}
	return snap
}
