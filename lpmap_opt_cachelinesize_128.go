//go:build lpmap_opt_cachelinesize_128

package lpmap

// CacheLineSize overrides the detected cache line size.
const CacheLineSize uintptr = 128
