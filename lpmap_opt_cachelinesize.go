//go:build !lpmap_opt_cachelinesize_32 && !lpmap_opt_cachelinesize_64 && !lpmap_opt_cachelinesize_128 && !lpmap_opt_cachelinesize_256

package lpmap

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the cache line size of the target CPU, taken from
// golang.org/x/sys/cpu. Stats uses it to report how many slots a probe
// reads per cache line.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})
