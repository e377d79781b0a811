package lpmap

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

type opKind int

const (
	opInsert opKind = iota
	opErase
	opIndex
	opAt
	opFind
	opClear
)

// runRandomOps replays a random stream of operations against m and a
// builtin map, comparing results and checking the table layout after every
// step.
func runRandomOps(t *testing.T, m *HashMap[int, int], seed uint64, steps, keySpace int) {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	oracle := make(map[int]int)
	for step := 0; step < steps; step++ {
		k := r.IntN(keySpace)
		var op opKind
		switch n := r.IntN(100); {
		case n < 40:
			op = opInsert
		case n < 70:
			op = opErase
		case n < 80:
			op = opIndex
		case n < 90:
			op = opAt
		case n < 99:
			op = opFind
		default:
			op = opClear
		}

		switch op {
		case opInsert:
			v := r.Int()
			_, had := oracle[k]
			require.Equal(t, !had, m.Insert(k, v), "step %d insert %d", step, k)
			if !had {
				oracle[k] = v
			}
		case opErase:
			_, had := oracle[k]
			require.Equal(t, had, m.Erase(k), "step %d erase %d", step, k)
			delete(oracle, k)
		case opIndex:
			p := m.Index(k)
			require.Equal(t, oracle[k], *p, "step %d index %d", step, k)
			*p++
			oracle[k]++
		case opAt:
			v, err := m.At(k)
			if want, ok := oracle[k]; ok {
				require.NoError(t, err)
				require.Equal(t, want, v)
			} else {
				require.ErrorIs(t, err, ErrKeyNotFound)
			}
		case opFind:
			it := m.Find(k)
			if want, ok := oracle[k]; ok {
				require.False(t, it.Done())
				require.Equal(t, k, it.Key())
				require.Equal(t, want, *it.Value())
			} else {
				require.True(t, it.Equal(m.End()))
			}
		case opClear:
			m.Clear()
			clear(oracle)
			require.Equal(t, initialCapacity, m.Capacity())
		}

		require.Equal(t, len(oracle), m.Size(), "step %d", step)
		checkInvariants(t, m)
	}
	require.Equal(t, oracle, m.ToMap())
}

func TestHashMap_RandomOps(t *testing.T) {
	hashers := map[string]HashFunc[int]{
		"default":  nil,
		"identity": identity,
		"mod7":     func(k int) uint64 { return uint64(k % 7) },
		"constant": func(int) uint64 { return 3 },
	}
	for name, h := range hashers {
		t.Run(name, func(t *testing.T) {
			for seed := uint64(1); seed <= 4; seed++ {
				m := NewWithHasher[int, int](h)
				runRandomOps(t, m, seed, 2000, 64)
			}
		})
	}
}

func TestHashMap_RandomOpsZeroValue(t *testing.T) {
	var m HashMap[int, int]
	runRandomOps(t, &m, 42, 3000, 256)
}

func TestHashMap_LoadFactorAfterEveryInsert(t *testing.T) {
	m := New[int, struct{}]()
	for i := 0; i < 10000; i++ {
		m.Insert(testDataIntLarge[i], struct{}{})
		require.LessOrEqual(t, 2*m.Size(), m.Capacity())
	}
	s := m.Stats()
	require.Equal(t, 10000, s.Size)
	require.Equal(t, s.Size, s.Counter)
	require.LessOrEqual(t, s.LoadFactor, 0.5)
}
