// Package concurrency provides the locking strategies the cache uses to
// synchronize access to its entries.
//
// A Strategy hands out locks at two granularities: per-entry locks that
// serialize operations on a single key, and a collection lock that covers
// every entry at once. Acquisition returns an UnlockFunc; only the caller
// that acquired a lock holds its release function, and calling it more than
// once is a safe no-op.
//
// Two strategies are provided:
//
//   - NoOp: no synchronization at all. This is the cache's default and the
//     right choice for single-goroutine use, where lock overhead buys
//     nothing.
//   - EntryLocking: one mutex per key plus a collection lock built from
//     them. Operations on distinct keys proceed in parallel while
//     operations on the same key serialize.
//
// # Collection lock
//
// EntryLocking's collection lock dominates every entry lock, including
// locks for keys the strategy has never seen: the lock table's own mutex is
// held for the whole duration of the collection hold, so no new entry lock
// can be created until the collection lock is released. Entry locks are
// acquired in ascending key order and released in reverse, which keeps
// concurrent LockAll calls from deadlocking against each other.
package concurrency
