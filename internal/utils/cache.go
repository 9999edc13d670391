package utils

import (
	"os"
	"sync"
	"time"
)

// cacheEntry holds a cached value plus the metadata of the file it came from
type cacheEntry[V any] struct {
	value   V
	modTime time.Time
	size    int64
}

// FileCache is a concurrency-safe cache keyed by file path. Entries are
// dropped when the backing file changes on disk, so stale content is never
// served across a write.
type FileCache[V any] struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry[V]
}

// NewFileCache creates an empty file cache
func NewFileCache[V any]() *FileCache[V] {
	return &FileCache[V]{
		entries: make(map[string]*cacheEntry[V]),
	}
}

// Get returns the cached value for path while the file's modification time
// and size still match what was recorded at Set time
func (c *FileCache[V]) Get(path string) (V, bool) {
	c.mu.RLock()
	entry, ok := c.entries[path]
	c.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}

	if stat, err := os.Stat(path); err == nil {
		if stat.ModTime().Equal(entry.modTime) && stat.Size() == entry.size {
			return entry.value, true
		}
	}

	// File changed or disappeared, drop the entry
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()

	var zero V
	return zero, false
}

// Set stores a value for path together with the file's current metadata
func (c *FileCache[V]) Set(path string, value V) error {
	stat, err := os.Stat(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[path] = &cacheEntry[V]{
		value:   value,
		modTime: stat.ModTime(),
		size:    stat.Size(),
	}
	return nil
}

// Delete removes the entry for path
func (c *FileCache[V]) Delete(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, path)
}

// Clear removes all entries
func (c *FileCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry[V])
}

// Size returns the number of cached entries
func (c *FileCache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
