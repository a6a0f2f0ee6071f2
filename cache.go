package cache

import (
	"cmp"
	"fmt"
	"io"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/billy"
	"github.com/sirupsen/logrus"

	"github.com/m-renaud/cache/concurrency"
)

// New creates a cache whose objects live at the paths produced by resolver.
//
// Defaults: local filesystem, JSON serialization, no logging, and no
// locking (single-goroutine use). Each can be replaced through the
// corresponding option.
//
// Example:
//
//	c, err := cache.New[string, Book](
//	    cache.KeyPath[string]("/srv/books", "data.json"))
//
//	// Shared across goroutines, backed by memory (for testing)
//	c, err := cache.New[string, Book](resolver,
//	    cache.WithFilesystem[string, Book](billy.NewMemory()),
//	    cache.WithLocking[string, Book](concurrency.NewEntryLocking[string]()))
func New[K cmp.Ordered, V any](resolver Resolver[K], opts ...Option[K, V]) (*Cache[K, V], error) {
	if resolver == nil {
		return nil, errors.New(errors.CodeInvalidConfig, "cache requires a filename resolver")
	}

	options := &cacheOptions[K, V]{
		fs:         billy.NewLocal(),
		serializer: JSONSerializer{},
		logger:     discardLogger(),
		locking:    concurrency.NewNoOp[K](),
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.fs == nil || options.serializer == nil || options.logger == nil || options.locking == nil {
		return nil, errors.New(errors.CodeInvalidConfig, "cache options must not be nil")
	}

	return &Cache[K, V]{
		resolver:   resolver,
		fs:         options.fs,
		serializer: options.serializer,
		logger:     options.logger,
		locking:    options.locking,
	}, nil
}

// Stats reports how many keys the cache is tracking, split into loaded
// objects and remembered misses. The collection lock is held while
// counting.
func (c *Cache[K, V]) Stats() Stats {
	unlock := c.locking.LockAll()
	defer unlock()

	var stats Stats
	c.entries.rangeEntries(func(_ K, e *entry[V]) bool {
		stats.Entries++
		if e.present() {
			stats.Present++
		} else {
			stats.Absent++
		}
		return true
	})
	return stats
}

// KeyPath returns a resolver mapping each key to base/<key>/<filename>,
// the conventional one-directory-per-object layout.
func KeyPath[K cmp.Ordered](base, filename string) Resolver[K] {
	return func(key K) string {
		return filepath.Join(base, fmt.Sprint(key), filename)
	}
}

// DefaultBasePath returns an XDG-compliant cache directory for the named
// application, typically ~/.cache/<name> on Linux.
func DefaultBasePath(name string) string {
	return filepath.Join(xdg.CacheHome, name)
}

func discardLogger() logrus.Ext1FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
