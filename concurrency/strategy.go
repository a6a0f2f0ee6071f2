package concurrency

import "cmp"

// UnlockFunc releases a lock handed out by a Strategy. Calling it more than
// once is a no-op, so a release can sit safely in a defer even when the
// caller already released early.
type UnlockFunc func()

// Strategy controls how cache operations synchronize with each other. Keys
// are constrained to cmp.Ordered because a strategy that acquires multiple
// entry locks needs a total order over keys to do so without deadlocking.
type Strategy[K cmp.Ordered] interface {
	// LockEntry acquires the lock covering a single key, blocking until it
	// is available, and returns its release function.
	LockEntry(key K) UnlockFunc

	// LockAll acquires a lock covering every key, known or not, blocking
	// until the whole collection is held, and returns a single release
	// function for it.
	LockAll() UnlockFunc
}
