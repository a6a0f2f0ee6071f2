// Package cache provides a disk-backed, read-through object cache with
// pluggable concurrency control.
//
// # Overview
//
// The cache maps keys to objects stored one file per key:
//
//  1. Lookups load objects from disk lazily and keep them in memory
//  2. Mutations happen in memory and reach disk only on Save
//  3. Lookups that find no file are remembered, so repeated misses never
//     touch the filesystem
//
// Where each object lives is decided by a caller-supplied Resolver, how it
// is encoded by a Serializer (JSON by default, with XML, YAML, and TOML
// provided), and all I/O goes through an injected filesystem gateway.
//
// # Disk Layout
//
// With the conventional KeyPath resolver, every object owns a directory
// under a common base:
//
//	/srv/books/
//	├── hamlet/
//	│   └── data.json
//	├── macbeth/
//	│   └── data.json
//	└── trash/                  # Removed objects, recoverable by hand
//	    └── srv/books/
//	        └── othello/
//	            └── data.json
//
// Remove never deletes data: it moves the object's directory into the
// trash with a single rename.
//
// # Usage
//
// Create a cache and work with objects:
//
//	c, err := cache.New[string, Book](
//	    cache.KeyPath[string]("/srv/books", "data.json"))
//	if err != nil {
//	    return err
//	}
//
//	if err := c.Create("hamlet", Book{Title: "Hamlet"}); err != nil {
//	    return err
//	}
//
//	book, ok, err := c.Get("hamlet")
//	if err != nil || !ok {
//	    return err
//	}
//	book.ReadCount++ // in memory only
//
//	if err := c.Save(); err != nil { // now on disk
//	    return err
//	}
//
// # Concurrency
//
// By default the cache does not lock at all, which suits the common case
// of a single goroutine owning it. To share a cache, inject a locking
// strategy:
//
//	c, err := cache.New[string, Book](resolver,
//	    cache.WithLocking[string, Book](concurrency.NewEntryLocking[string]()))
//
// Entry locking serializes operations per key while letting distinct keys
// proceed in parallel. Save, Clear, ForceClear, and Stats take a
// collection lock that excludes every per-key operation, including ones
// for keys the cache has never seen.
//
// Pointers returned by Get alias the cached object. The cache's own
// operations are safe under a locking strategy, but reads and writes
// through a returned pointer are not locked; when a key is shared across
// goroutines, go through Update and View instead of holding the pointer.
package cache
