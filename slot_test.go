package lpmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlot(t *testing.T) {
	var s slotOf[string, *int]
	require.False(t, s.hasValue())

	v := 1
	s.insert(7, EntryOf[string, *int]{Key: "a", Value: &v})
	require.True(t, s.hasValue())
	require.Equal(t, "a", s.entry().Key)
	if embeddedHash {
		require.Equal(t, uint64(7), s.getHash())
	}

	c := s
	w := 2
	s.insert(9, EntryOf[string, *int]{Key: "b", Value: &w})
	require.Equal(t, "b", s.entry().Key)
	require.Equal(t, "a", c.entry().Key, "a copied slot keeps its own entry")
	require.True(t, c.hasValue())

	s.reset()
	require.False(t, s.hasValue())
	require.Nil(t, s.entry().Value, "reset must release the held value")
	require.Equal(t, slotOf[string, *int]{}, s)

	var empty slotOf[string, *int]
	e := empty
	require.False(t, e.hasValue())
}

func TestProbeWraps(t *testing.T) {
	p := newProbe(25, 13)
	require.Equal(t, 12, p.idx)
	p.next()
	require.Equal(t, 0, p.idx)
	p.next()
	require.Equal(t, 1, p.idx)
}

func TestFindSlot(t *testing.T) {
	table := newTableOf[int, int](13)
	table.at(12).insert(12, EntryOf[int, int]{Key: 12})
	table.at(0).insert(25, EntryOf[int, int]{Key: 25})

	idx, s, found := findSlot(table, 25, 25)
	require.True(t, found)
	require.Equal(t, 0, idx)
	require.Equal(t, 25, s.entry().Key)

	idx, s, found = findSlot(table, 38, 38)
	require.False(t, found)
	require.Equal(t, 1, idx, "a miss stops at the first empty slot")
	require.False(t, s.hasValue())
}

func TestTableCapacities(t *testing.T) {
	require.False(t, overloaded(6, 13))
	require.True(t, overloaded(7, 13))
	require.False(t, overloaded(13, 26))
	require.True(t, overloaded(14, 26))

	c := initialCapacity
	for _, want := range []int{26, 52, 104, 208} {
		c = nextCapacity(c)
		require.Equal(t, want, c)
	}

	table := newTableOf[int, string](13)
	table.at(3).insert(3, EntryOf[int, string]{Key: 3, Value: "x"})
	clone := table.clone()
	clone.at(3).entry().Value = "y"
	require.Equal(t, "x", table.at(3).entry().Value)
	require.Equal(t, table.capacity(), clone.capacity())
}
