// Package assets handles asset loading and caching.
package assets

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/snowfight/internal/logger"
)

// preloadWorkers bounds concurrent reads during Preload.
const preloadWorkers = 4

// Manager loads assets from a directory tree and caches their contents.
type Manager struct {
	fsys  fs.FS
	cache *Cache
	log   *zap.Logger
}

// NewManager creates a manager rooted at dir.
func NewManager(dir string) *Manager {
	return NewManagerFS(os.DirFS(dir))
}

// NewManagerFS creates a manager reading from fsys.
func NewManagerFS(fsys fs.FS) *Manager {
	return &Manager{
		fsys:  fsys,
		cache: NewCache(),
		log:   logger.Named("assets"),
	}
}

// Load returns the contents of the slash-separated path name.
func (m *Manager) Load(name string) ([]byte, error) {
	name = path.Clean(name)
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid asset path: %s", name)
	}

	// Check cache first
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	data, err := fs.ReadFile(m.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	m.cache.Set(name, data)
	m.log.Debug("asset loaded", zap.String("path", name), zap.Int("bytes", len(data)))
	return data, nil
}

// Preload reads every path concurrently into the cache. It returns the first
// error; the remaining reads are cancelled.
func (m *Manager) Preload(ctx context.Context, names ...string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadWorkers)

	for _, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := m.Load(name)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("preload: %w", err)
	}
	hits, misses := m.cache.Stats()
	m.log.Info("assets preloaded",
		zap.Int("count", len(names)),
		zap.Int("cache_hits", hits),
		zap.Int("cache_misses", misses),
	)
	return nil
}

// Cache returns the asset cache.
func (m *Manager) Cache() *Cache {
	return m.cache
}

// Close drops every cached asset.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Len returns the number of cached items.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
