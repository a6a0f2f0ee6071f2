package cache

import (
	"path/filepath"

	"github.com/jmgilman/go/errors"
	"github.com/sirupsen/logrus"
)

// Create writes a new object for key to disk. The object is not loaded into
// memory; the first Get after Create does that. If the key had been looked
// up before, including as a remembered miss, its entry is reloaded so the
// new object becomes visible.
//
// Keys are unique: when the resolved path already holds a file, Create
// fails with CodeAlreadyExists and changes nothing.
func (c *Cache[K, V]) Create(key K, value V) error {
	unlock := c.locking.LockEntry(key)
	defer unlock()

	path := c.resolver(key)
	log := c.logger.WithFields(logrus.Fields{"key": key, "path": path})

	exists, err := c.fs.Exists(path)
	if err != nil {
		return wrapReadError(err, path)
	}
	if exists {
		log.Error("object already exists")
		return errors.Newf(errors.CodeAlreadyExists, "object already exists at %s", path)
	}

	dir := filepath.Dir(path)
	if err := c.fs.MkdirAll(dir, 0o755); err != nil {
		log.WithError(err).Error("object directory cannot be created")
		return errors.Wrapf(err, errors.CodeInternal, "failed to create object directory %s", dir)
	}

	if err := c.writeObject(path, &value); err != nil {
		return err
	}

	if err := c.refreshLocked(key); err != nil {
		return err
	}

	log.Info("object created")
	return nil
}
