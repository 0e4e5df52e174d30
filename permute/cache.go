// SPDX-License-Identifier: MIT

package permute

import (
	"slices"
	"sync"
)

type cacheKey struct {
	kind Kind
	n    int
}

// Cache memoizes permutation tables by (Kind, N). It is safe for concurrent
// use; each table is computed at most once. The zero value is not usable,
// call NewCache.
type Cache struct {
	mu     sync.RWMutex
	tables map[cacheKey][]int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{tables: make(map[cacheKey][]int)}
}

// Table returns a copy of s.Table(), computing it on first use.
// Complexity: O(2^N) on a miss, O(2^N) copy on a hit.
func (c *Cache) Table(s Spec) []int {
	key := cacheKey{kind: s.Kind, n: s.N}

	c.mu.RLock()
	t, ok := c.tables[key]
	c.mu.RUnlock()
	if ok {
		return slices.Clone(t)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok = c.tables[key]; !ok { // re-check under the write lock
		t = s.Table()
		c.tables[key] = t
	}

	return slices.Clone(t)
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.tables)
}
