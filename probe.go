package lpmap

// probeOf walks a table linearly: it starts at the home slot of a hash and
// advances one slot at a time, wrapping to 0 past the last slot.
type probeOf struct {
	idx      int
	capacity int
}

//go:nosplit
func newProbe(hash uint64, capacity int) probeOf {
	return probeOf{idx: home(hash, capacity), capacity: capacity}
}

//go:nosplit
func (p *probeOf) next() {
	p.idx++
	if p.idx == p.capacity {
		p.idx = 0
	}
}

// home returns the slot a hash maps to in a table of the given capacity.
//
//go:nosplit
func home(hash uint64, capacity int) int {
	return int(hash % uint64(capacity))
}

// findSlot runs the probe sequence for key. It stops at the slot holding key
// (found is true) or at the first empty slot (found is false, and the slot is
// where key belongs). Every lookup, insertion and deletion goes through here,
// so they all agree on where a key lives.
//
// The load factor bound guarantees an empty slot exists, so the walk always
// terminates.
func findSlot[K comparable, V any](
	table *tableOf[K, V],
	hash uint64,
	key K,
) (idx int, s *slotOf[K, V], found bool) {
	for p := newProbe(hash, table.capacity()); ; p.next() {
		s = table.at(p.idx)
		if !s.hasValue() {
			return p.idx, s, false
		}
		if embeddedHash {
			if s.getHash() == hash && s.e.Key == key {
				return p.idx, s, true
			}
		} else {
			if s.e.Key == key {
				return p.idx, s, true
			}
		}
	}
}
