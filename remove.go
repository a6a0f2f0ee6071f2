package cache

import (
	"path/filepath"

	"github.com/jmgilman/go/errors"
	"github.com/sirupsen/logrus"
)

// Remove deletes the object for key from both the cache and disk. The
// object's directory is moved into a trash directory in a single rename
// rather than deleted, so accidental removals can be recovered by hand.
//
// The trash root sits one level above the object's directory and the
// object's full directory path is reproduced beneath it: removing
// base/17/data.json moves base/17 to base/trash/base/17.
func (c *Cache[K, V]) Remove(key K) error {
	unlock := c.locking.LockEntry(key)
	defer unlock()

	path := c.resolver(key)
	log := c.logger.WithFields(logrus.Fields{"key": key, "path": path})
	log.Info("removing object")

	objectDir := filepath.Dir(path)

	exists, err := c.fs.Exists(objectDir)
	if err != nil {
		return wrapReadError(err, objectDir)
	}
	if !exists {
		log.Info("no object directory to remove")
		return errors.Newf(errors.CodeNotFound, "no stored object at %s", objectDir)
	}

	trashDir := trashPath(path)
	if err := c.fs.MkdirAll(filepath.Dir(trashDir), 0o755); err != nil {
		return errors.Wrapf(err, errors.CodeInternal, "failed to create trash directory %s", filepath.Dir(trashDir))
	}

	log.WithField("trash", trashDir).Info("moving object directory to trash")

	if err := c.fs.Rename(objectDir, trashDir); err != nil {
		return errors.Wrapf(err, errors.CodeInternal, "failed to move %s to trash", objectDir)
	}

	c.entries.delete(key)
	return nil
}

// Erase drops key from the in-memory cache without touching disk. The next
// Get loads the object again. Use Remove to delete the stored object too.
func (c *Cache[K, V]) Erase(key K) {
	unlock := c.locking.LockEntry(key)
	defer unlock()

	c.entries.delete(key)
}

// trashPath computes the trash destination for an object file's directory.
func trashPath(path string) string {
	objectDir := filepath.Dir(path)
	return filepath.Join(filepath.Dir(objectDir), "trash", objectDir)
}
