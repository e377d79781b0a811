//go:build lpmap_opt_embeddedhash

package lpmap

const embeddedHash = true

// slotHash caches the full hash of the held key. Probing compares it before
// the key, and growth and compaction reuse it instead of calling the hasher
// again, at the price of 8 bytes per slot.
type slotHash struct {
	hash uint64
}

//go:nosplit
func (h *slotHash) getHash() uint64 {
	return h.hash
}

//go:nosplit
func (h *slotHash) setHash(hash uint64) {
	h.hash = hash
}
