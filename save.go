package cache

import stderrors "errors"

// Save writes every loaded object back to its file. Remembered misses are
// skipped. The collection lock is held for the whole pass, so no entry
// operation can interleave with it.
//
// One object's failure does not stop the pass: Save carries on and returns
// the joined failures at the end. This is the only path that persists
// in-memory mutations.
func (c *Cache[K, V]) Save() error {
	unlock := c.locking.LockAll()
	defer unlock()

	return c.saveLocked()
}

// saveLocked writes all present entries to disk. Callers must hold the
// collection lock.
func (c *Cache[K, V]) saveLocked() error {
	var errs []error
	c.entries.rangeEntries(func(key K, e *entry[V]) bool {
		if !e.present() {
			return true
		}
		c.logger.WithField("key", key).Trace("saving object")
		if err := c.writeObject(c.resolver(key), e.value); err != nil {
			errs = append(errs, err)
		}
		return true
	})
	return stderrors.Join(errs...)
}

// Clear empties the in-memory cache after saving it. If the save fails the
// cache is left untouched, so unsaved mutations survive for a later Save.
// Disk files are never removed by Clear.
func (c *Cache[K, V]) Clear() error {
	unlock := c.locking.LockAll()
	defer unlock()

	if err := c.saveLocked(); err != nil {
		return err
	}

	c.entries.clear()
	return nil
}

// ForceClear empties the in-memory cache without saving. Mutations not yet
// written by Save are lost; disk files are untouched.
func (c *Cache[K, V]) ForceClear() {
	unlock := c.locking.LockAll()
	defer unlock()

	c.entries.clear()
}

// writeObject atomically serializes a value to path: encode, write to a
// temporary sibling, rename over the final name.
func (c *Cache[K, V]) writeObject(path string, value *V) error {
	c.logger.WithField("path", path).Debug("writing object to disk")

	data, err := c.serializer.Encode(value)
	if err != nil {
		return wrapEncodeError(err, path)
	}

	tmpPath := path + ".tmp"
	if err := c.fs.WriteFile(tmpPath, data, 0o644); err != nil {
		return wrapWriteError(err, path)
	}

	if err := c.fs.Rename(tmpPath, path); err != nil {
		_ = c.fs.Remove(tmpPath)
		return wrapWriteError(err, path)
	}

	return nil
}
