package cache

import "sync"

// entry records the cached state of a single key. A non-nil value means the
// object is loaded; a nil value memoizes a lookup that found no file on
// disk. Keys with no entry at all have never been looked up.
type entry[V any] struct {
	value *V
}

func (e *entry[V]) present() bool {
	return e != nil && e.value != nil
}

// entryMap is a typed view over sync.Map.
//
// Entry locks serialize the protocol steps for a single key, but two
// goroutines inserting distinct keys still touch the map structure at the
// same time. sync.Map keeps that structurally safe; the locking strategy
// owns the per-key semantics.
type entryMap[K comparable, V any] struct {
	m sync.Map
}

// load returns the entry stored for key, or nil when the key has never been
// looked up.
func (em *entryMap[K, V]) load(key K) *entry[V] {
	v, ok := em.m.Load(key)
	if !ok {
		return nil
	}
	return v.(*entry[V])
}

func (em *entryMap[K, V]) store(key K, e *entry[V]) {
	em.m.Store(key, e)
}

func (em *entryMap[K, V]) delete(key K) {
	em.m.Delete(key)
}

func (em *entryMap[K, V]) clear() {
	em.m.Clear()
}

// rangeEntries calls fn for each key and entry until fn returns false.
func (em *entryMap[K, V]) rangeEntries(fn func(key K, e *entry[V]) bool) {
	em.m.Range(func(key, value any) bool {
		return fn(key.(K), value.(*entry[V]))
	})
}
