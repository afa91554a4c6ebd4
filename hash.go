package htab

import "hash/maphash"

const (
	fnvOffset64 uint64 = 0xcbf29ce484222325
	fnvPrime64  uint64 = 0x100000001b3
)

// HashFunc maps a key to an unsigned 64-bit hash.
// The table reduces the result modulo its bucket count,
// so the function does not need to be range-bounded.
type HashFunc func(key string) uint64

// FNV1a64 is the 64-bit FNV-1a hash of the raw bytes of key.
// It is the default HashFunc of a Table.
func FNV1a64(key string) uint64 {
	h := fnvOffset64
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= fnvPrime64
	}
	return h
}

// Mod10 sums the bytes of key modulo 10.
//
// It collides heavily by construction and exists to exercise
// bucket chains in tests; do not use it for real workloads.
func Mod10(key string) uint64 {
	var sum uint64
	for i := 0; i < len(key); i++ {
		sum += uint64(key[i])
	}
	return sum % 10
}

// NewMapHasher returns a HashFunc backed by hash/maphash with a fresh
// random seed. Results are only stable for the returned function, so
// two tables built with different NewMapHasher calls bucket keys
// differently.
//
// Usage:
//
//	t := NewTable[int](1024, WithHashFunc(NewMapHasher()))
func NewMapHasher() HashFunc {
	seed := maphash.MakeSeed()
	return func(key string) uint64 {
		return maphash.String(seed, key)
	}
}
