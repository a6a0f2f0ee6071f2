package cache

import (
	"cmp"

	"github.com/jmgilman/go/fs/core"
	"github.com/sirupsen/logrus"

	"github.com/m-renaud/cache/concurrency"
)

// Cache is a disk-backed, read-through object cache.
//
// Each key maps to one file on disk at the path its Resolver produces.
// Objects are loaded lazily on first access and held in memory as shared
// pointers; mutations made through those pointers stay in memory until Save
// writes them back. A lookup that finds no file is remembered, so repeated
// misses never touch the filesystem again until Refresh or Create.
//
// All synchronization is delegated to a concurrency.Strategy. The default
// strategy performs no locking and is intended for single-goroutine use;
// see the concurrency package for the entry-locking alternative.
type Cache[K cmp.Ordered, V any] struct {
	resolver   Resolver[K]
	fs         Filesystem
	serializer Serializer
	logger     logrus.Ext1FieldLogger
	locking    concurrency.Strategy[K]

	entries entryMap[K, V]
}

// Filesystem is the gateway the cache stores objects through. It combines
// the read, write, and manage halves of the fs/core contract; both
// billy.NewLocal and billy.NewMemory satisfy it.
type Filesystem interface {
	core.ReadFS
	core.WriteFS
	core.ManageFS
}

// Resolver maps a key to the path of its object file. Paths must be unique
// per key and stable across calls; the file's parent directory is treated
// as the object's directory by Remove.
//
// The usual layout gives every object its own directory under a common
// base, base/<key>/data.<format>. KeyPath builds resolvers of that shape.
type Resolver[K any] func(key K) string

// Stats reports the in-memory population of a cache.
type Stats struct {
	Entries int // Tracked keys (Present + Absent)
	Present int // Keys holding a loaded object
	Absent  int // Keys remembered as having no object on disk
}

// Option configures a Cache at construction.
type Option[K cmp.Ordered, V any] func(*cacheOptions[K, V])

type cacheOptions[K cmp.Ordered, V any] struct {
	fs         Filesystem
	serializer Serializer
	logger     logrus.Ext1FieldLogger
	locking    concurrency.Strategy[K]
}

// WithFilesystem replaces the default local filesystem. Tests typically
// pass billy.NewMemory().
func WithFilesystem[K cmp.Ordered, V any](filesystem Filesystem) Option[K, V] {
	return func(o *cacheOptions[K, V]) {
		o.fs = filesystem
	}
}

// WithSerializer replaces the default JSON serializer. A cache must keep
// using the serializer that produced its on-disk files.
func WithSerializer[K cmp.Ordered, V any](serializer Serializer) Option[K, V] {
	return func(o *cacheOptions[K, V]) {
		o.serializer = serializer
	}
}

// WithLogger directs the cache's logging to the given logrus logger.
// By default nothing is logged.
func WithLogger[K cmp.Ordered, V any](logger logrus.Ext1FieldLogger) Option[K, V] {
	return func(o *cacheOptions[K, V]) {
		o.logger = logger
	}
}

// WithLocking replaces the default no-op locking strategy. Pass
// concurrency.NewEntryLocking to share the cache across goroutines.
func WithLocking[K cmp.Ordered, V any](strategy concurrency.Strategy[K]) Option[K, V] {
	return func(o *cacheOptions[K, V]) {
		o.locking = strategy
	}
}
