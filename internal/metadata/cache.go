package metadata

import "sync"

// Cache memoizes one reconciled metadata table, keyed by the data root it was
// built from. Requesting a different root rebuilds and replaces the slot;
// requesting the same root returns the cached table, including a cached nil
// (absent source). The zero value is ready to use.
//
// The cache is an optimization only: disabling it (a fresh Cache per call)
// must not change results.
type Cache[R any] struct {
	mu     sync.Mutex
	loaded bool
	root   string
	table  map[string]R
}

// Get returns the table for dataRoot, invoking build on a miss. A nil table
// with nil error from build is cached like any other result and denotes an
// absent metadata source.
func (c *Cache[R]) Get(dataRoot string, build func(string) (map[string]R, error)) (map[string]R, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded && c.root == dataRoot {
		return c.table, nil
	}

	table, err := build(dataRoot)
	if err != nil {
		return nil, err
	}

	c.loaded = true
	c.root = dataRoot
	c.table = table
	return table, nil
}

// Invalidate clears the slot, forcing the next Get to rebuild.
func (c *Cache[R]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.root = ""
	c.table = nil
}
