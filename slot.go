package lpmap

// slotOf is a single cell of the table. It holds at most one entry in place,
// with occupancy tracked by an explicit flag so that no key value has to be
// reserved as an "empty" marker.
//
// Copying a slotOf copies the held entry (if any) together with its
// occupancy, an empty slot copies as empty.
type slotOf[K comparable, V any] struct {
	slotHash
	e        EntryOf[K, V]
	occupied bool
}

// insert replaces the held entry, releasing the previous one first.
func (s *slotOf[K, V]) insert(hash uint64, e EntryOf[K, V]) {
	if s.occupied {
		s.reset()
	}
	s.e = e
	s.setHash(hash)
	s.occupied = true
}

// reset drops the held entry. The entry is zeroed so that the slot no
// longer keeps anything it referenced alive.
func (s *slotOf[K, V]) reset() {
	*s = slotOf[K, V]{}
}

//go:nosplit
func (s *slotOf[K, V]) hasValue() bool {
	return s.occupied
}

// entry exposes the held entry. The result is the zero entry for an empty
// slot and must not be used.
//
//go:nosplit
func (s *slotOf[K, V]) entry() *EntryOf[K, V] {
	return &s.e
}
