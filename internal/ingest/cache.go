package ingest

import (
	"os"
	"sync"
	"time"

	"github.com/lox/bikeusage/internal/models"
)

// Cache memoises parsed datasets keyed by path. An entry is reused only while
// the file's modification time and size are unchanged.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	modTime time.Time
	size    int64
	ds      *models.Dataset
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Get returns the cached dataset for path if the file has not changed since
// it was stored.
func (c *Cache) Get(path string) (*models.Dataset, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[path]
	if !ok || !e.modTime.Equal(info.ModTime()) || e.size != info.Size() {
		return nil, false
	}
	return e.ds, true
}

// Set stores ds against the file's current modification time and size.
func (c *Cache) Set(path string, ds *models.Dataset) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[path] = cacheEntry{modTime: info.ModTime(), size: info.Size(), ds: ds}
	return nil
}

// Invalidate drops any entry for path.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}
