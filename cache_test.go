package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/billy"
	"github.com/stretchr/testify/require"
)

// book is the object type stored by the tests.
type book struct {
	Title string `json:"title" xml:"title" yaml:"title" toml:"title"`
	Pages int    `json:"pages" xml:"pages" yaml:"pages" toml:"pages"`
}

func bookPath(key string) string {
	return filepath.Join("/srv/books", key, "data.json")
}

// newTestCache builds a cache over the given filesystem with the standard
// test layout. Extra options come after the filesystem default so they can
// override it.
func newTestCache(t *testing.T, filesystem Filesystem, opts ...Option[string, book]) *Cache[string, book] {
	t.Helper()

	all := append([]Option[string, book]{WithFilesystem[string, book](filesystem)}, opts...)
	c, err := New[string, book](KeyPath[string]("/srv/books", "data.json"), all...)
	require.NoError(t, err)
	return c
}

// writeBookFile places a JSON object file directly on the filesystem,
// bypassing the cache.
func writeBookFile(t *testing.T, filesystem Filesystem, key string, b book) {
	t.Helper()

	path := bookPath(key)
	require.NoError(t, filesystem.MkdirAll(filepath.Dir(path), 0o755))
	data, err := JSONSerializer{}.Encode(b)
	require.NoError(t, err)
	require.NoError(t, filesystem.WriteFile(path, data, 0o644))
}

func TestNew(t *testing.T) {
	t.Run("rejects a nil resolver", func(t *testing.T) {
		_, err := New[string, book](nil)
		require.Error(t, err)
		require.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})

	t.Run("rejects nil option values", func(t *testing.T) {
		_, err := New[string, book](KeyPath[string]("/srv/books", "data.json"),
			WithSerializer[string, book](nil))
		require.Error(t, err)
		require.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})

	t.Run("defaults to JSON storage", func(t *testing.T) {
		filesystem := billy.NewMemory()
		c := newTestCache(t, filesystem)

		require.NoError(t, c.Create("b", book{Title: "Default Format"}))

		data, err := filesystem.ReadFile(bookPath("b"))
		require.NoError(t, err)

		var stored book
		require.NoError(t, JSONSerializer{}.Decode(data, &stored))
		require.Equal(t, "Default Format", stored.Title)
	})
}

func TestStats(t *testing.T) {
	filesystem := billy.NewMemory()
	c := newTestCache(t, filesystem)

	require.Equal(t, Stats{}, c.Stats())

	require.NoError(t, c.Create("a", book{Title: "A"}))
	require.NoError(t, c.Create("b", book{Title: "B"}))

	// Created objects are not loaded until looked up.
	require.Equal(t, Stats{}, c.Stats())

	for _, key := range []string{"a", "b"} {
		_, ok, err := c.Get(key)
		require.NoError(t, err)
		require.True(t, ok)
	}
	_, ok, err := c.Get("ghost")
	require.NoError(t, err)
	require.False(t, ok)

	require.Equal(t, Stats{Entries: 3, Present: 2, Absent: 1}, c.Stats())
}

func TestKeyPath(t *testing.T) {
	strings := KeyPath[string]("/srv/books", "data.json")
	require.Equal(t, filepath.Join("/srv/books", "hamlet", "data.json"), strings("hamlet"))

	ints := KeyPath[int]("/srv/numbers", "data.json")
	require.Equal(t, filepath.Join("/srv/numbers", "17", "data.json"), ints(17))
}

func TestDefaultBasePath(t *testing.T) {
	require.Equal(t, filepath.Join(xdg.CacheHome, "books"), DefaultBasePath("books"))
}

// TestCacheEndToEnd walks one object through its whole life: created,
// looked up, mutated, saved, reopened by a second cache, and removed into
// the trash.
func TestCacheEndToEnd(t *testing.T) {
	filesystem := billy.NewMemory()

	c := newTestCache(t, filesystem)
	require.NoError(t, c.Create("one", book{Title: "one", Pages: 1}))

	b, ok, err := c.Get("one")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "one", b.Title)

	b.Title = "uno"
	require.NoError(t, c.Save())

	// A second cache over the same filesystem sees the saved mutation.
	reopened := newTestCache(t, filesystem)
	b2, ok, err := reopened.Get("one")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "uno", b2.Title)
	require.Equal(t, 1, b2.Pages)

	require.NoError(t, reopened.Remove("one"))

	gone, err := filesystem.Exists("/srv/books/one")
	require.NoError(t, err)
	require.False(t, gone)

	// The trashed file mirrors the object's old path and still holds the
	// saved mutation.
	data, err := filesystem.ReadFile("/srv/books/trash/srv/books/one/data.json")
	require.NoError(t, err)
	var trashed book
	require.NoError(t, JSONSerializer{}.Decode(data, &trashed))
	require.Equal(t, "uno", trashed.Title)

	_, ok, err = reopened.Get("one")
	require.NoError(t, err)
	require.False(t, ok)
}

// TestCacheOnLocalFilesystem runs the lifecycle against the default local
// filesystem, rooted in a temporary directory.
func TestCacheOnLocalFilesystem(t *testing.T) {
	base := t.TempDir()
	resolver := KeyPath[string](base, "data.json")

	c, err := New[string, book](resolver)
	require.NoError(t, err)

	require.NoError(t, c.Create("one", book{Title: "one", Pages: 1}))

	b, ok, err := c.Get("one")
	require.NoError(t, err)
	require.True(t, ok)
	b.Title = "uno"
	require.NoError(t, c.Save())

	reopened, err := New[string, book](resolver)
	require.NoError(t, err)
	b2, ok, err := reopened.Get("one")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "uno", b2.Title)

	require.NoError(t, reopened.Remove("one"))

	_, err = os.Stat(filepath.Join(base, "one"))
	require.ErrorIs(t, err, os.ErrNotExist)

	data, err := os.ReadFile(filepath.Join(base, "trash", base, "one", "data.json"))
	require.NoError(t, err)
	var trashed book
	require.NoError(t, JSONSerializer{}.Decode(data, &trashed))
	require.Equal(t, "uno", trashed.Title)
}
