/*
Package lpmap provides HashMap, a single-goroutine hash table with open
addressing and linear probing.

Basic usage:

	m := lpmap.New[string, int]()
	m.Insert("a", 1)
	m.Insert("a", 2) // no-op, the first value wins
	*m.Index("b") += 10

	v, err := m.At("a")
	if errors.Is(err, lpmap.ErrKeyNotFound) {
		// ...
	}

	for k, v := range m.All() {
		fmt.Println(k, v)
	}

Implementation details:

The table is an array of slots; each slot holds at most one entry and an
occupancy flag. A key's home slot is its hash modulo the capacity, and a
lookup walks forward from there, wrapping at the end, until it meets the key
or an empty slot. Tables start with 13 slots and double whenever one more
entry would take the load factor above 1/2, so an empty slot always exists.

Deleting does not leave tombstones. The deleted slot and every occupied slot
after it, up to the next empty slot, are cleared, and the entries removed
after it are inserted again. This keeps the property that no empty slot lies
between a key's home slot and the slot holding it.

Build tags:

  - lpmap_opt_embeddedhash stores each key's hash in its slot
  - lpmap_opt_cachelinesize_{32,64,128,256} override the detected cache
    line size reported by Stats
*/
package lpmap
