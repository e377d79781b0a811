package lpmap

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by At when the key is not in the map.
var ErrKeyNotFound = errors.New("lpmap: key not found")

// HashMap is a hash table with open addressing and linear probing.
//
// Entries live directly in the slots of a single table. Each slot records its
// own occupancy, so no key value is reserved to mean "empty". Deletion leaves
// no tombstones: the slot is cleared and the rest of its cluster is reinserted,
// which keeps every probe path free of gaps.
//
// Key features:
//   - Load factor never exceeds 1/2; the table doubles before an insertion
//     would break that bound and never shrinks (except on Clear)
//   - First write wins: Insert does not replace the value of an existing key
//   - Index inserts a zero value on a miss, At never inserts
//   - Iteration visits slots in storage order
//   - Zero value is an empty map using the default hasher
//
// A HashMap is not safe for concurrent use. Any operation that may grow or
// compact the table (Insert, Index, Erase, Clear, CopyFrom, FromMap,
// InsertAll, UnmarshalJSON) invalidates every outstanding Iterator and
// every pointer returned by Index or Iterator.Value.
type HashMap[K comparable, V any] struct {
	table       *tableOf[K, V]
	size        int
	keyHash     HashFunc[K]
	growths     uint32
	compactions uint32
}

// EntryOf is a key-value pair held by the map.
type EntryOf[K comparable, V any] struct {
	Key   K
	Value V
}

// New creates an empty HashMap using the default hasher.
func New[K comparable, V any]() *HashMap[K, V] {
	return NewWithHasher[K, V](nil)
}

// NewWithHasher creates an empty HashMap using keyHash.
// A nil keyHash selects the default hasher.
func NewWithHasher[K comparable, V any](keyHash HashFunc[K]) *HashMap[K, V] {
	m := &HashMap[K, V]{}
	m.Init(keyHash)
	return m
}

// NewFromEntries creates a HashMap holding entries. When a key repeats, the
// first occurrence wins. A nil keyHash selects the default hasher.
func NewFromEntries[K comparable, V any](
	keyHash HashFunc[K],
	entries ...EntryOf[K, V],
) *HashMap[K, V] {
	m := NewWithHasher[K, V](keyHash)
	for _, e := range entries {
		m.Insert(e.Key, e.Value)
	}
	return m
}

// NewFromSeq creates a HashMap holding the pairs produced by seq, typically
// the All method of another container. When a key repeats, the first
// occurrence wins. A nil keyHash selects the default hasher.
func NewFromSeq[K comparable, V any](
	keyHash HashFunc[K],
	seq func(yield func(K, V) bool),
) *HashMap[K, V] {
	m := NewWithHasher[K, V](keyHash)
	m.InsertAll(seq)
	return m
}

// NewFromMap creates a HashMap holding a copy of source.
func NewFromMap[K comparable, V any](source map[K]V) *HashMap[K, V] {
	m := New[K, V]()
	m.FromMap(source)
	return m
}

// Init resets the map to an empty table of initial capacity using keyHash.
// A nil keyHash selects the default hasher.
func (m *HashMap[K, V]) Init(keyHash HashFunc[K]) {
	if keyHash == nil {
		keyHash = defaultHasher[K]()
	}
	m.keyHash = keyHash
	m.table = newTableOf[K, V](initialCapacity)
	m.size = 0
}

// initSlow makes a zero HashMap usable.
func (m *HashMap[K, V]) initSlow() *tableOf[K, V] {
	if m.table == nil {
		m.Init(m.keyHash)
	}
	return m.table
}

func (m *HashMap[K, V]) hash(key K) uint64 {
	if m.keyHash == nil {
		m.keyHash = defaultHasher[K]()
	}
	return m.keyHash(key)
}

// slotHashOf returns the hash of the key held by s.
func (m *HashMap[K, V]) slotHashOf(s *slotOf[K, V]) uint64 {
	if embeddedHash {
		return s.getHash()
	}
	return m.hash(s.e.Key)
}

// Size returns the number of entries in the map. This is an O(1) operation.
func (m *HashMap[K, V]) Size() int {
	return m.size
}

// IsZero reports whether the map holds no entries.
func (m *HashMap[K, V]) IsZero() bool {
	return m.size == 0
}

// Capacity returns the number of slots of the current table.
func (m *HashMap[K, V]) Capacity() int {
	if m.table == nil {
		return initialCapacity
	}
	return m.table.capacity()
}

// HashFunction returns the hash function used by the map.
func (m *HashMap[K, V]) HashFunction() HashFunc[K] {
	if m.keyHash == nil {
		m.keyHash = defaultHasher[K]()
	}
	return m.keyHash
}

// Insert adds key with value and reports whether it was added.
// If key is already present, the map is left unchanged and Insert returns
// false: the first value stored for a key wins.
//
// Insert grows the table first when one more entry would push the load
// factor above 1/2, even if key turns out to be present.
func (m *HashMap[K, V]) Insert(key K, value V) bool {
	return m.insert(m.hash(key), EntryOf[K, V]{Key: key, Value: value})
}

func (m *HashMap[K, V]) insert(hash uint64, e EntryOf[K, V]) bool {
	m.growIfNeeded()
	return m.place(hash, e)
}

// place puts e into the current table without checking the load factor.
func (m *HashMap[K, V]) place(hash uint64, e EntryOf[K, V]) bool {
	_, s, found := findSlot(m.table, hash, e.Key)
	if found {
		return false
	}
	s.insert(hash, e)
	m.size++
	return true
}

// growIfNeeded replaces the table with one twice as large when adding an
// entry would break the load factor bound. Entries are reinserted in storage
// order and the size is recounted while doing so.
func (m *HashMap[K, V]) growIfNeeded() {
	table := m.initSlow()
	if !overloaded(m.size+1, table.capacity()) {
		return
	}
	m.table = newTableOf[K, V](nextCapacity(table.capacity()))
	m.size = 0
	for i := range table.slots {
		if s := table.at(i); s.hasValue() {
			m.place(m.slotHashOf(s), *s.entry())
		}
	}
	m.growths++
}

// Find returns an iterator positioned at key, or End() if key is absent.
// Find never modifies the map.
func (m *HashMap[K, V]) Find(key K) Iterator[K, V] {
	if m.table == nil {
		return m.End()
	}
	idx, _, found := findSlot(m.table, m.hash(key), key)
	if !found {
		return m.End()
	}
	return Iterator[K, V]{table: m.table, pos: idx}
}

// Load returns the value stored for key, or the zero value and false if key
// is absent. Load never modifies the map.
func (m *HashMap[K, V]) Load(key K) (value V, ok bool) {
	if m.table == nil {
		return
	}
	_, s, found := findSlot(m.table, m.hash(key), key)
	if !found {
		return
	}
	return s.entry().Value, true
}

// HasKey reports whether key is present.
func (m *HashMap[K, V]) HasKey(key K) bool {
	_, ok := m.Load(key)
	return ok
}

// At returns the value stored for key. If key is absent it returns an error
// wrapping ErrKeyNotFound. At never modifies the map.
func (m *HashMap[K, V]) At(key K) (V, error) {
	value, ok := m.Load(key)
	if !ok {
		return value, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return value, nil
}

// Index returns a pointer to the value stored for key, inserting key with
// the zero value of V first if it is absent. Like Insert, it may grow the
// table even when key is present.
//
// Writes through the pointer reach the map only until the next operation
// that can grow or compact the table.
func (m *HashMap[K, V]) Index(key K) *V {
	hash := m.hash(key)
	m.growIfNeeded()
	_, s, found := findSlot(m.table, hash, key)
	if !found {
		s.insert(hash, EntryOf[K, V]{Key: key})
		m.size++
	}
	return &s.entry().Value
}

// Erase removes key and reports whether it was present.
//
// Clearing a slot inside a cluster would cut the probe path of every later
// key of the cluster whose home is at or before that slot. So the slots that
// follow it, up to the next empty slot, are cleared as well and their entries
// inserted again.
func (m *HashMap[K, V]) Erase(key K) bool {
	if m.table == nil {
		return false
	}
	table := m.table
	idx, s, found := findSlot(table, m.hash(key), key)
	if !found {
		return false
	}
	s.reset()
	m.size--

	var (
		run    []EntryOf[K, V]
		hashes []uint64
	)
	for p := (probeOf{idx: idx, capacity: table.capacity()}); ; {
		p.next()
		s := table.at(p.idx)
		if !s.hasValue() {
			break
		}
		run = append(run, *s.entry())
		if embeddedHash {
			hashes = append(hashes, s.getHash())
		}
		s.reset()
		m.size--
	}
	if len(run) == 0 {
		return true
	}
	for i, e := range run {
		var hash uint64
		if embeddedHash {
			hash = hashes[i]
		} else {
			hash = m.hash(e.Key)
		}
		m.insert(hash, e)
	}
	m.compactions++
	return true
}

// Clear removes all entries and goes back to a table of initial capacity.
func (m *HashMap[K, V]) Clear() {
	m.Init(m.keyHash)
}

// Clone returns a copy of the map sharing its hash function. Values are
// copied by assignment.
func (m *HashMap[K, V]) Clone() *HashMap[K, V] {
	c := &HashMap[K, V]{}
	c.CopyFrom(m)
	return c
}

// CopyFrom replaces the contents and hash function of m with a copy of
// src's. Copying a map onto itself does nothing.
func (m *HashMap[K, V]) CopyFrom(src *HashMap[K, V]) {
	if m == src {
		return
	}
	m.keyHash = src.keyHash
	m.size = src.size
	m.growths = src.growths
	m.compactions = src.compactions
	if src.table == nil {
		m.table = nil
		return
	}
	m.table = src.table.clone()
}

// InsertAll inserts every pair produced by seq, keeping existing values on
// duplicate keys.
func (m *HashMap[K, V]) InsertAll(seq func(yield func(K, V) bool)) {
	seq(func(key K, value V) bool {
		m.Insert(key, value)
		return true
	})
}

// FromMap inserts every entry of source, keeping existing values on
// duplicate keys.
func (m *HashMap[K, V]) FromMap(source map[K]V) {
	for k, v := range source {
		m.Insert(k, v)
	}
}
