//go:build !lpmap_opt_embeddedhash

package lpmap

const embeddedHash = false

// slotHash is empty unless built with lpmap_opt_embeddedhash; the hash of a
// key is then recomputed whenever it is needed.
type slotHash struct{}

//go:nosplit
func (*slotHash) getHash() uint64 {
	return 0
}

//go:nosplit
func (*slotHash) setHash(uint64) {
}
