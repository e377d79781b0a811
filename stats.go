package lpmap

import (
	"fmt"
	"strings"
	"unsafe"
)

// Stats returns statistics for the HashMap. It walks the whole table, so it
// is an O(capacity) operation meant for diagnostics and tests.
func (m *HashMap[K, V]) Stats() *MapStats {
	stats := &MapStats{
		Capacity:         m.Capacity(),
		Counter:          m.size,
		SlotSize:         unsafe.Sizeof(slotOf[K, V]{}),
		TotalGrowths:     m.growths,
		TotalCompactions: m.compactions,
	}
	stats.SlotsPerCacheLine = int(CacheLineSize / stats.SlotSize)
	table := m.table
	if table == nil {
		return stats
	}

	// Start right after an empty slot so that no cluster wraps around the
	// end of the walk.
	capacity := table.capacity()
	start := 0
	for start < capacity && table.at(start).hasValue() {
		start++
	}
	run, totalProbe := 0, 0
	closeRun := func() {
		if run > 0 {
			stats.Clusters++
			stats.MaxCluster = max(stats.MaxCluster, run)
		}
		run = 0
	}
	for n := 1; n <= capacity; n++ {
		i := (start + n) % capacity
		s := table.at(i)
		if !s.hasValue() {
			closeRun()
			continue
		}
		run++
		stats.Size++
		probe := (i-home(m.slotHashOf(s), capacity)+capacity)%capacity + 1
		totalProbe += probe
		stats.MaxProbeLength = max(stats.MaxProbeLength, probe)
	}
	closeRun()

	stats.LoadFactor = float64(stats.Size) / float64(capacity)
	if stats.Size > 0 {
		stats.AvgProbeLength = float64(totalProbe) / float64(stats.Size)
	}
	return stats
}

// MapStats is HashMap statistics.
//
// Warning: map statistics are intended to be used for diagnostic
// purposes, not for production code. This means that breaking changes
// may be introduced into this struct even between minor releases.
type MapStats struct {
	// Capacity is the number of slots of the table.
	Capacity int
	// Size is the number of occupied slots found by walking the table.
	Size int
	// Counter is the entry count the map maintains. It always equals Size.
	Counter int
	// LoadFactor is Size/Capacity. It never exceeds 0.5.
	LoadFactor float64
	// Clusters is the number of maximal runs of occupied slots.
	Clusters int
	// MaxCluster is the length of the longest cluster.
	MaxCluster int
	// MaxProbeLength is the largest number of slots a successful lookup
	// inspects, i.e. the largest displacement from a home slot plus one.
	MaxProbeLength int
	// AvgProbeLength is the mean number of slots a successful lookup
	// inspects.
	AvgProbeLength float64
	// SlotSize is the size in bytes of one slot.
	SlotSize uintptr
	// SlotsPerCacheLine is how many whole slots fit in a CPU cache line;
	// zero when a slot is larger than a cache line.
	SlotsPerCacheLine int
	// TotalGrowths is the number of times the table doubled.
	TotalGrowths uint32
	// TotalCompactions is the number of erasures that had to reinsert the
	// rest of a cluster.
	TotalCompactions uint32
}

// ToString returns string representation of map stats.
func (s *MapStats) ToString() string {
	var sb strings.Builder
	sb.WriteString("MapStats{\n")
	sb.WriteString(fmt.Sprintf("Capacity:          %d\n", s.Capacity))
	sb.WriteString(fmt.Sprintf("Size:              %d\n", s.Size))
	sb.WriteString(fmt.Sprintf("Counter:           %d\n", s.Counter))
	sb.WriteString(fmt.Sprintf("LoadFactor:        %.3f\n", s.LoadFactor))
	sb.WriteString(fmt.Sprintf("Clusters:          %d\n", s.Clusters))
	sb.WriteString(fmt.Sprintf("MaxCluster:        %d\n", s.MaxCluster))
	sb.WriteString(fmt.Sprintf("MaxProbeLength:    %d\n", s.MaxProbeLength))
	sb.WriteString(fmt.Sprintf("AvgProbeLength:    %.3f\n", s.AvgProbeLength))
	sb.WriteString(fmt.Sprintf("SlotSize:          %d\n", s.SlotSize))
	sb.WriteString(fmt.Sprintf("SlotsPerCacheLine: %d\n", s.SlotsPerCacheLine))
	sb.WriteString(fmt.Sprintf("TotalGrowths:      %d\n", s.TotalGrowths))
	sb.WriteString(fmt.Sprintf("TotalCompactions:  %d\n", s.TotalCompactions))
	sb.WriteString("}\n")
	return sb.String()
}
