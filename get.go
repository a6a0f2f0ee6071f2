package cache

import "github.com/sirupsen/logrus"

// Get retrieves the object for key, loading it from disk on first access.
//
// The returned pointer aliases the cached object: mutations through it are
// visible to later calls and reach disk on the next Save. ok reports
// whether the object exists. A miss (no file on disk) is remembered, so
// later Gets for the key answer from memory without touching the
// filesystem; use Refresh once the file appears.
//
// A file that exists but cannot be read or decoded yields an error and is
// not remembered, so the next Get retries the load.
func (c *Cache[K, V]) Get(key K) (*V, bool, error) {
	unlock := c.locking.LockEntry(key)
	defer unlock()

	return c.getLocked(key)
}

// getLocked is the read-through lookup. Callers must hold the key's entry
// lock.
func (c *Cache[K, V]) getLocked(key K) (*V, bool, error) {
	if e := c.entries.load(key); e != nil {
		return e.value, e.present(), nil
	}

	value, err := c.loadFromDisk(key)
	if err != nil {
		return nil, false, err
	}

	c.entries.store(key, &entry[V]{value: value})
	return value, value != nil, nil
}

// Refresh reloads the entry for key from disk, replacing whatever the cache
// holds. Keys that have never been looked up are left alone. In particular,
// a remembered miss becomes the object once its file exists.
func (c *Cache[K, V]) Refresh(key K) error {
	unlock := c.locking.LockEntry(key)
	defer unlock()

	return c.refreshLocked(key)
}

// refreshLocked reloads key from disk if the cache is tracking it. Callers
// must hold the key's entry lock.
func (c *Cache[K, V]) refreshLocked(key K) error {
	if c.entries.load(key) == nil {
		return nil
	}

	value, err := c.loadFromDisk(key)
	if err != nil {
		return err
	}

	c.entries.store(key, &entry[V]{value: value})
	return nil
}

// loadFromDisk reads and decodes the object file for key. A missing file is
// not an error; it returns (nil, nil), the remembered-miss state.
func (c *Cache[K, V]) loadFromDisk(key K) (*V, error) {
	path := c.resolver(key)
	c.logger.WithFields(logrus.Fields{"key": key, "path": path}).
		Debug("loading object from disk")

	exists, err := c.fs.Exists(path)
	if err != nil {
		return nil, wrapReadError(err, path)
	}
	if !exists {
		return nil, nil
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return nil, wrapReadError(err, path)
	}

	value := new(V)
	if err := c.serializer.Decode(data, value); err != nil {
		return nil, wrapDecodeError(err, path)
	}

	return value, nil
}
