package layoutcache

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/textpath/text"
)

// Key identifies one layout: a named document in a box at a size.
type Key struct {
	Document string
	In       text.InputTransform
}

// Cache is a fixed-capacity LRU of path lists.
type Cache struct {
	mu       sync.Mutex
	entries  map[Key]*node
	order    recency
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// New creates a cache holding at most capacity layouts.
// A capacity <= 0 yields a cache that stores nothing.
func New(capacity int) *Cache {
	return &Cache{
		entries:  make(map[Key]*node),
		capacity: max(0, capacity),
	}
}

// Get returns the paths stored for key. The slice is shared and must not
// be modified.
func (c *Cache) Get(key Key) ([]string, bool) {
	c.mu.Lock()
	n, ok := c.entries[key]
	var paths []string
	if ok {
		c.order.moveToFront(n)
		paths = n.paths
	}
	c.mu.Unlock()

	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return paths, true
}

// Put stores paths for key, evicting the least recently used layout when
// the cache is full. The cache keeps paths; callers must not modify it
// afterwards.
func (c *Cache) Put(key Key, paths []string) {
	if c.capacity == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		n.paths = paths
		c.order.moveToFront(n)
		return
	}
	n := &node{key: key, paths: paths}
	c.entries[key] = n
	c.order.pushFront(n)

	for c.order.len > c.capacity {
		old := c.order.popBack()
		delete(c.entries, old.key)
	}
}

// Purge drops every entry. Statistics are kept.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Key]*node)
	c.order = recency{}
}

// Len returns the number of stored layouts.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats contains cache statistics.
type Stats struct {
	Len      int
	Capacity int
	Hits     uint64
	Misses   uint64
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache) Stats() Stats {
	return Stats{
		Len:      c.Len(),
		Capacity: c.capacity,
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
	}
}
