package lpmap

import (
	"hash/maphash"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// HashFunc maps a key to a 64-bit hash. The home slot of a key is the hash
// modulo the table capacity, so it must be deterministic for the lifetime of
// the map: equal keys must always produce equal hashes.
type HashFunc[K comparable] func(key K) uint64

// IdentityHash hashes an integer key to its own value.
// With it, key k lives at slot k mod capacity unless displaced.
func IdentityHash[K constraints.Integer](key K) uint64 {
	return uint64(key)
}

// StringHash hashes string keys with xxHash64.
func StringHash[K ~string](key K) uint64 {
	return xxhash.Sum64String(string(key))
}

// defaultHasher picks the hash used when none is supplied:
//   - integer keys hash to themselves
//   - string keys use xxHash64
//   - any other comparable key uses hash/maphash with a per-map random seed
func defaultHasher[K comparable]() HashFunc[K] {
	switch any(*new(K)).(type) {
	case uint, int, uintptr:
		return func(key K) uint64 {
			return uint64(*(*uintptr)(unsafe.Pointer(&key)))
		}

	case uint64, int64:
		return func(key K) uint64 {
			return *(*uint64)(unsafe.Pointer(&key))
		}

	case uint32, int32:
		return func(key K) uint64 {
			return uint64(*(*uint32)(unsafe.Pointer(&key)))
		}

	case uint16, int16:
		return func(key K) uint64 {
			return uint64(*(*uint16)(unsafe.Pointer(&key)))
		}

	case uint8, int8:
		return func(key K) uint64 {
			return uint64(*(*uint8)(unsafe.Pointer(&key)))
		}

	case string:
		return func(key K) uint64 {
			return xxhash.Sum64String(*(*string)(unsafe.Pointer(&key)))
		}

	default:
		seed := maphash.MakeSeed()
		return func(key K) uint64 {
			return maphash.Comparable(seed, key)
		}
	}
}
