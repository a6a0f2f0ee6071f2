package concurrency

import "cmp"

// NoOp is a Strategy that performs no synchronization. Both lock methods
// return immediately and their release functions do nothing.
//
// It is the right strategy when the cache is only ever touched from a
// single goroutine. Using it from multiple goroutines is a data race.
type NoOp[K cmp.Ordered] struct{}

// NewNoOp returns a no-op locking strategy.
func NewNoOp[K cmp.Ordered]() *NoOp[K] {
	return &NoOp[K]{}
}

// LockEntry implements Strategy without synchronizing.
func (*NoOp[K]) LockEntry(K) UnlockFunc {
	return func() {}
}

// LockAll implements Strategy without synchronizing.
func (*NoOp[K]) LockAll() UnlockFunc {
	return func() {}
}

var _ Strategy[int] = (*NoOp[int])(nil)
