package concurrency

import (
	"cmp"
	"slices"
	"sync"
)

// EntryLocking is a Strategy backed by one mutex per key plus a table mutex
// guarding the set of per-key mutexes. Operations on distinct keys run in
// parallel while operations on the same key serialize, and the collection
// lock excludes every entry operation, even for keys never locked before.
//
// The lock table grows on first use of a key and never shrinks. The zero
// value is ready to use.
type EntryLocking[K cmp.Ordered] struct {
	mu    sync.Mutex
	locks map[K]*sync.Mutex
}

// NewEntryLocking returns an entry-locking strategy with an empty lock
// table.
func NewEntryLocking[K cmp.Ordered]() *EntryLocking[K] {
	return &EntryLocking[K]{locks: make(map[K]*sync.Mutex)}
}

// LockEntry blocks until the lock for key is held and returns its release
// function. The key's mutex is created on first use and acquired outside
// the table mutex, so waiting on a contended key never blocks lookups of
// other keys.
func (s *EntryLocking[K]) LockEntry(key K) UnlockFunc {
	s.mu.Lock()
	if s.locks == nil {
		s.locks = make(map[K]*sync.Mutex)
	}
	m, ok := s.locks[key]
	if !ok {
		m = new(sync.Mutex)
		s.locks[key] = m
	}
	s.mu.Unlock()

	m.Lock()

	var once sync.Once
	return func() { once.Do(m.Unlock) }
}

// LockAll blocks until every entry lock is held and returns one release
// function for the whole set. The table mutex stays held until release, so
// no entry lock can be created or looked up while the collection is locked;
// keys the strategy has never seen are covered too.
//
// Entry locks are acquired in ascending key order and released in reverse.
func (s *EntryLocking[K]) LockAll() UnlockFunc {
	s.mu.Lock()

	keys := make([]K, 0, len(s.locks))
	for k := range s.locks {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		s.locks[k].Lock()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(keys) - 1; i >= 0; i-- {
				s.locks[keys[i]].Unlock()
			}
			s.mu.Unlock()
		})
	}
}

var _ Strategy[int] = (*EntryLocking[int])(nil)
