//go:build lpmap_opt_cachelinesize_256

package lpmap

// CacheLineSize overrides the detected cache line size.
const CacheLineSize uintptr = 256
