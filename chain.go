package htab

// entry is a node of a bucket chain.
// Each entry exclusively owns its successor; keys are unique within a chain.
type entry[V any] struct {
	key   string
	value V
	next  *entry[V]
}

func newEntry[V any](key string, value V) *entry[V] {
	return &entry[V]{key: key, value: value}
}

// search returns the value of the first entry, starting at e, whose key
// matches.
func (e *entry[V]) search(key string) (value V, ok bool) {
	for n := e; n != nil; n = n.next {
		if n.key == key {
			return n.value, true
		}
	}
	return value, false
}

// set overwrites the value of key in place, or appends a new tail entry
// when no entry from e onwards holds key. It reports whether an entry
// was appended.
func (e *entry[V]) set(key string, value V) (inserted bool) {
	n := e
	for {
		if n.key == key {
			n.value = value
			return false
		}
		if n.next == nil {
			n.next = newEntry(key, value)
			return true
		}
		n = n.next
	}
}

// add appends key as the new tail unless some entry from e onwards already
// holds it, in which case the chain is left untouched and false is returned.
func (e *entry[V]) add(key string, value V) bool {
	n := e
	for {
		if n.key == key {
			return false
		}
		if n.next == nil {
			n.next = newEntry(key, value)
			return true
		}
		n = n.next
	}
}

// remove unlinks the first successor of e that holds key.
//
// e itself is never removed, even when its key matches: a chain cannot
// drop its own head. Removing a bucket's head is done by the Table,
// which replaces the bucket slot with head.next.
func (e *entry[V]) remove(key string) bool {
	for prev := e; prev.next != nil; prev = prev.next {
		if prev.next.key == key {
			prev.next = prev.next.next
			return true
		}
	}
	return false
}

// length counts the entries reachable from e, e included.
func (e *entry[V]) length() int {
	n := 0
	for ; e != nil; e = e.next {
		n++
	}
	return n
}
