// Package assets handles asset loading and caching.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Source loads files from a list of root directories with caching.
type Source struct {
	roots []string
	cache *Cache
	mu    sync.RWMutex
}

// NewSource creates an asset source with no roots. Paths given to Load
// are then tried as-is, relative to the working directory.
func NewSource() *Source {
	return &Source{
		cache: NewCache(),
	}
}

// AddRoot adds a search root. Roots are searched in reverse order
// (last added = highest priority).
func (s *Source) AddRoot(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("asset root %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset root %s: not a directory", dir)
	}

	s.mu.Lock()
	s.roots = append(s.roots, dir)
	s.mu.Unlock()

	return nil
}

// Load reads a file, trying each root in reverse order and finally the
// path itself.
func (s *Source) Load(path string) ([]byte, error) {
	if data, ok := s.cache.Get(path); ok {
		return data, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.roots) - 1; i >= 0; i-- {
		data, err := os.ReadFile(filepath.Join(s.roots[i], path))
		if err == nil {
			s.cache.Set(path, data)
			return data, nil
		}
	}

	data, err := os.ReadFile(path)
	if err == nil {
		s.cache.Set(path, data)
		return data, nil
	}

	return nil, fmt.Errorf("asset not found: %s", path)
}

// Resolve returns the on-disk path Load would read, without reading it.
func (s *Source) Resolve(path string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.roots) - 1; i >= 0; i-- {
		full := filepath.Join(s.roots[i], path)
		if _, err := os.Stat(full); err == nil {
			return full, nil
		}
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", fmt.Errorf("asset not found: %s", path)
}

// Close drops the cache and roots.
func (s *Source) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roots = nil
	s.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

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
