// Package htab provides a fixed-size, separately chained hash table
// keyed by strings.
//
// A Table owns N buckets, chosen once at construction. A key lives in bucket
// hash(key) % N, and keys that collide are kept in a singly linked chain
// inside that bucket. Set is an upsert, Add only inserts absent keys, and
// Get and Remove report absence with a boolean instead of an error.
//
//	t := htab.NewTable[int](1024)
//	t.Set("answer", 42)
//	v, ok := t.Get("answer") // 42, true
//	t.Remove("answer")       // true
//
// The hash function is pluggable through WithHashFunc. FNV1a64 is the
// default. Mod10 is a deliberately poor hash that forces collisions, and
// NewMapHasher returns a randomly seeded hash/maphash hasher.
//
// Tables never resize and are not safe for concurrent use.
package htab
