// Package debugging reads process memory statistics, used to show how much
// heap a list gives back once it shrinks.
package debugging

import (
	"fmt"
	"runtime"
)

// MemUsage is a snapshot of the process memory statistics, in bytes.
type MemUsage struct {
	TotalReserved uint64
	HeapReserved  uint64
	HeapInUse     uint64
	HeapAllocated uint64
}

// ReadMemUsage returns the current memory statistics. With collect set, a
// garbage collection runs first so the heap figures count live data only.
func ReadMemUsage(collect bool) MemUsage {
	if collect {
		runtime.GC()
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemUsage{
		TotalReserved: m.Sys,
		HeapReserved:  m.HeapSys,
		HeapInUse:     m.HeapInuse,
		HeapAllocated: m.HeapAlloc,
	}
}

// String renders the snapshot in MiB on a single line.
func (u MemUsage) String() string {
	return fmt.Sprintf("reserved=%d MiB heap_reserved=%d MiB heap_in_use=%d MiB heap_allocated=%d MiB",
		BytesToMb(u.TotalReserved),
		BytesToMb(u.HeapReserved),
		BytesToMb(u.HeapInUse),
		BytesToMb(u.HeapAllocated),
	)
}

func BytesToMb(b uint64) uint64 {
	return b / 1024 / 1024
}
