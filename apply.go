package cache

// Update runs fn on the live object for key under the key's entry lock,
// loading the object first if needed. It reports whether the object was
// found; fn is not called for missing objects. Changes made by fn live in
// memory until the next Save.
func (c *Cache[K, V]) Update(key K, fn func(*V)) (bool, error) {
	unlock := c.locking.LockEntry(key)
	defer unlock()

	value, ok, err := c.getLocked(key)
	if err != nil || !ok {
		return false, err
	}

	fn(value)
	return true, nil
}

// View runs fn on a copy of the object for key under the key's entry lock.
// fn cannot modify the cached object through the copy; use Update for that.
func (c *Cache[K, V]) View(key K, fn func(V)) (bool, error) {
	unlock := c.locking.LockEntry(key)
	defer unlock()

	value, ok, err := c.getLocked(key)
	if err != nil || !ok {
		return false, err
	}

	fn(*value)
	return true, nil
}
