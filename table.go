package lpmap

const (
	// initialCapacity is the number of slots of a new or cleared table.
	initialCapacity = 13
	// maxLoadNumerator/maxLoadDenominator bound the load factor: a table of
	// capacity C holds at most C*maxLoadNumerator/maxLoadDenominator entries.
	// Keeping it at or below one half guarantees every probe sequence meets
	// an empty slot.
	maxLoadNumerator   = 1
	maxLoadDenominator = 2
)

// tableOf is the backing array of slots. Its capacity is fixed for its whole
// life; growth and Clear replace the table instead of resizing it.
type tableOf[K comparable, V any] struct {
	slots []slotOf[K, V]
}

func newTableOf[K comparable, V any](capacity int) *tableOf[K, V] {
	return &tableOf[K, V]{slots: make([]slotOf[K, V], capacity)}
}

//go:nosplit
func (t *tableOf[K, V]) capacity() int {
	return len(t.slots)
}

//go:nosplit
func (t *tableOf[K, V]) at(i int) *slotOf[K, V] {
	return &t.slots[i]
}

// clone copies every slot into a new table of the same capacity, so the
// copy has the same layout and the same probe paths.
func (t *tableOf[K, V]) clone() *tableOf[K, V] {
	c := &tableOf[K, V]{slots: make([]slotOf[K, V], len(t.slots))}
	copy(c.slots, t.slots)
	return c
}

// overloaded reports whether holding size entries would break the load
// factor bound of a table with the given capacity.
//
//go:nosplit
func overloaded(size, capacity int) bool {
	return size*maxLoadDenominator > capacity*maxLoadNumerator
}

// nextCapacity returns the capacity of the table that replaces a full one.
// Capacities keep doubling from initialCapacity: 13, 26, 52, ...
//
//go:nosplit
func nextCapacity(capacity int) int {
	return capacity << 1
}
