package htab

import (
	"fmt"
	"math"
	"strings"
	"unsafe"
)

// Table is a hash table of string keys to values of type V with a fixed
// number of buckets. Colliding keys share a bucket and are kept in a singly
// linked chain, in insertion order.
//
// The bucket count is chosen at construction and never changes: there is no
// resizing or rehashing, so lookups degrade linearly once the number of
// entries grows well past the bucket count.
//
// Table is not safe for concurrent use. Callers sharing a Table between
// goroutines must synchronize access themselves.
//
// A Table must not be copied after first use.
type Table[V any] struct {
	_ [(CacheLineSize - unsafe.Sizeof(struct {
		_       noCopy
		buckets []unsafe.Pointer
		hashFn  HashFunc
		size    int
	}{})%CacheLineSize) % CacheLineSize]byte

	_       noCopy
	buckets []*entry[V]
	hashFn  HashFunc
	size    int
}

// TableConfig defines configurable Table options.
type TableConfig struct {
	// HashFunc hashes keys to pick a bucket. Nil selects FNV1a64.
	HashFunc HashFunc
}

// WithHashFunc configures the hash function used to pick a key's bucket.
// A nil fn leaves the default (FNV1a64) in place.
func WithHashFunc(fn HashFunc) func(*TableConfig) {
	return func(c *TableConfig) {
		if fn != nil {
			c.HashFunc = fn
		}
	}
}

// NewTable creates a Table with bucketCount buckets.
// It panics if bucketCount is not positive.
//
// Parameters:
//   - bucketCount: number of buckets, fixed for the table's lifetime
//   - WithHashFunc option to replace the default FNV1a64 hash
func NewTable[V any](bucketCount int, options ...func(*TableConfig)) *Table[V] {
	t := &Table[V]{}
	t.Init(bucketCount, options...)
	return t
}

// Init initializes a Table in place, discarding any previous contents.
// It is meant for tables embedded by value in other structures;
// NewTable is the usual way to obtain one.
func (t *Table[V]) Init(bucketCount int, options ...func(*TableConfig)) {
	if bucketCount <= 0 {
		panic(fmt.Sprintf("htab: bucket count must be positive, got %d", bucketCount))
	}
	var cfg TableConfig
	for _, opt := range options {
		opt(&cfg)
	}
	t.hashFn = FNV1a64
	if cfg.HashFunc != nil {
		t.hashFn = cfg.HashFunc
	}
	t.buckets = make([]*entry[V], bucketCount)
	t.size = 0
}

// bucket returns the slot of the bucket responsible for key.
func (t *Table[V]) bucket(key string) **entry[V] {
	if t.buckets == nil {
		panic("htab: Table used before Init")
	}
	return &t.buckets[t.hashFn(key)%uint64(len(t.buckets))]
}

// Get returns the value stored for key, or the zero value and false
// if the key is absent.
func (t *Table[V]) Get(key string) (value V, ok bool) {
	head := *t.bucket(key)
	if head == nil {
		return value, false
	}
	return head.search(key)
}

// HasKey reports whether key is present.
func (t *Table[V]) HasKey(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Set stores value for key, replacing any previous value.
func (t *Table[V]) Set(key string, value V) {
	slot := t.bucket(key)
	if *slot == nil {
		*slot = newEntry(key, value)
		t.size++
		return
	}
	if (*slot).set(key, value) {
		t.size++
	}
}

// Add stores value for key only if key is absent.
// It reports whether the value was stored; an existing value is never
// overwritten.
func (t *Table[V]) Add(key string, value V) bool {
	slot := t.bucket(key)
	if *slot == nil {
		*slot = newEntry(key, value)
		t.size++
		return true
	}
	if (*slot).add(key, value) {
		t.size++
		return true
	}
	return false
}

// Remove deletes key and reports whether it was present.
func (t *Table[V]) Remove(key string) bool {
	slot := t.bucket(key)
	head := *slot
	if head == nil {
		return false
	}
	if head.key == key {
		*slot = head.next
		t.size--
		return true
	}
	if head.remove(key) {
		t.size--
		return true
	}
	return false
}

// Size returns the number of entries in the table.
func (t *Table[V]) Size() int {
	return t.size
}

// IsZero reports whether the table holds no entries.
func (t *Table[V]) IsZero() bool {
	return t.size == 0
}

// BucketCount returns the fixed number of buckets.
func (t *Table[V]) BucketCount() int {
	return len(t.buckets)
}

// Clear removes all entries. The bucket count and hash function are kept.
func (t *Table[V]) Clear() {
	clear(t.buckets)
	t.size = 0
}

// Stats returns statistics for the Table. It walks every chain,
// so it is an O(N) operation meant for diagnostics and tuning the
// bucket count, not for hot paths.
func (t *Table[V]) Stats() *TableStats {
	stats := &TableStats{
		Buckets:    len(t.buckets),
		Counter:    t.size,
		MinEntries: math.MaxInt,
	}
	for _, head := range t.buckets {
		n := head.length()
		stats.Size += n
		if n == 0 {
			stats.EmptyBuckets++
		}
		if n < stats.MinEntries {
			stats.MinEntries = n
		}
		if n > stats.MaxEntries {
			stats.MaxEntries = n
		}
	}
	if stats.Buckets == 0 {
		stats.MinEntries = 0
		return stats
	}
	stats.LoadFactor = float64(stats.Size) / float64(stats.Buckets)
	return stats
}

// TableStats is Table statistics.
//
// Warning: table statistics are intended for diagnostic purposes.
// Fields may be added between minor releases.
type TableStats struct {
	// Buckets is the fixed number of buckets.
	Buckets int
	// EmptyBuckets is the number of buckets with no chain.
	EmptyBuckets int
	// Size is the number of entries found by walking every chain.
	Size int
	// Counter is the number of entries according to the table's counter.
	// It always equals Size; a mismatch indicates a bug.
	Counter int
	// MinEntries is the length of the shortest chain.
	MinEntries int
	// MaxEntries is the length of the longest chain.
	MaxEntries int
	// LoadFactor is Size divided by Buckets.
	LoadFactor float64
}

// ToString returns string representation of table stats.
func (s *TableStats) ToString() string {
	var sb strings.Builder
	sb.WriteString("TableStats{\n")
	fmt.Fprintf(&sb, "Buckets:      %d\n", s.Buckets)
	fmt.Fprintf(&sb, "EmptyBuckets: %d\n", s.EmptyBuckets)
	fmt.Fprintf(&sb, "Size:         %d\n", s.Size)
	fmt.Fprintf(&sb, "Counter:      %d\n", s.Counter)
	fmt.Fprintf(&sb, "MinEntries:   %d\n", s.MinEntries)
	fmt.Fprintf(&sb, "MaxEntries:   %d\n", s.MaxEntries)
	fmt.Fprintf(&sb, "LoadFactor:   %.3f\n", s.LoadFactor)
	sb.WriteString("}\n")
	return sb.String()
}

// noCopy may be added to structs which must not be copied
// after the first use. See https://golang.org/issues/8005#issuecomment-190753527
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
