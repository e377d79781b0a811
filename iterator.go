package lpmap

import "math"

// Iterator is a forward cursor over the occupied slots of a HashMap, in
// storage order. It always rests on an occupied slot or at the end.
//
// Two iterators are equal when they point at the same position of the same
// table. An iterator becomes stale as soon as the map grows, compacts or is
// cleared; a stale iterator keeps reading the table it was created on.
//
//	for it := m.Begin(); !it.Done(); it.Next() {
//		*it.Value() += 1
//	}
type Iterator[K comparable, V any] struct {
	table *tableOf[K, V]
	pos   int
}

func newIterator[K comparable, V any](table *tableOf[K, V], pos int) Iterator[K, V] {
	it := Iterator[K, V]{table: table, pos: pos}
	it.skipEmpty()
	return it
}

//go:nosplit
func (it *Iterator[K, V]) skipEmpty() {
	if it.table == nil {
		return
	}
	for it.pos < it.table.capacity() && !it.table.at(it.pos).hasValue() {
		it.pos++
	}
}

// Next advances to the next occupied slot.
func (it *Iterator[K, V]) Next() {
	it.pos++
	it.skipEmpty()
}

// Done reports whether the iterator is at the end.
func (it Iterator[K, V]) Done() bool {
	return it.table == nil || it.pos >= it.table.capacity()
}

// Equal reports whether it and other point at the same position.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.table == other.table && it.pos == other.pos
}

// Key returns the key at the current position.
func (it Iterator[K, V]) Key() K {
	return it.table.at(it.pos).entry().Key
}

// Value returns a pointer to the value at the current position. The value
// may be modified in place.
func (it Iterator[K, V]) Value() *V {
	return &it.table.at(it.pos).entry().Value
}

// Entry returns a copy of the entry at the current position.
func (it Iterator[K, V]) Entry() EntryOf[K, V] {
	return *it.table.at(it.pos).entry()
}

// Begin returns an iterator at the first entry in storage order, or End()
// if the map is empty.
func (m *HashMap[K, V]) Begin() Iterator[K, V] {
	return newIterator(m.table, 0)
}

// End returns the past-the-end iterator.
func (m *HashMap[K, V]) End() Iterator[K, V] {
	if m.table == nil {
		return Iterator[K, V]{}
	}
	return Iterator[K, V]{table: m.table, pos: m.table.capacity()}
}

// RangeEntry calls yield for every entry in storage order until yield
// returns false.
//
// Notes:
//   - The Value of an entry may be modified, its Key must never be.
//   - The map must not be modified by yield.
func (m *HashMap[K, V]) RangeEntry(yield func(e *EntryOf[K, V]) bool) {
	if m.table == nil {
		return
	}
	for i := range m.table.slots {
		if s := m.table.at(i); s.hasValue() {
			if !yield(s.entry()) {
				return
			}
		}
	}
}

// All is the iterator version of Range, for use with range-over-func.
func (m *HashMap[K, V]) All() func(yield func(K, V) bool) {
	return m.Range
}

// Keys is the iterator version for iterating over all keys.
func (m *HashMap[K, V]) Keys() func(yield func(K) bool) {
	return m.RangeKeys
}

// Values is the iterator version for iterating over all values.
func (m *HashMap[K, V]) Values() func(yield func(V) bool) {
	return m.RangeValues
}

// Range calls yield for every key and value in storage order until yield
// returns false.
func (m *HashMap[K, V]) Range(yield func(key K, value V) bool) {
	m.RangeEntry(func(e *EntryOf[K, V]) bool {
		return yield(e.Key, e.Value)
	})
}

// RangeKeys to iterate over all keys
func (m *HashMap[K, V]) RangeKeys(yield func(key K) bool) {
	m.RangeEntry(func(e *EntryOf[K, V]) bool {
		return yield(e.Key)
	})
}

// RangeValues to iterate over all values
func (m *HashMap[K, V]) RangeValues(yield func(value V) bool) {
	m.RangeEntry(func(e *EntryOf[K, V]) bool {
		return yield(e.Value)
	})
}

// ToMap collect all entries and return a map[K]V
func (m *HashMap[K, V]) ToMap() map[K]V {
	a := make(map[K]V, m.Size())
	m.RangeEntry(func(e *EntryOf[K, V]) bool {
		a[e.Key] = e.Value
		return true
	})
	return a
}

// ToMapWithLimit collect up to limit entries into a map[K]V, limit < 0 is no limit
func (m *HashMap[K, V]) ToMapWithLimit(limit int) map[K]V {
	if limit == 0 {
		return map[K]V{}
	}
	if limit < 0 {
		limit = math.MaxInt
	}
	a := make(map[K]V, min(m.Size(), limit))
	m.RangeEntry(func(e *EntryOf[K, V]) bool {
		a[e.Key] = e.Value
		limit--
		return limit > 0
	})
	return a
}
