package dataset

import "sync"

// ============================================================================
// CACHE — memoized tables keyed by source identity
// ============================================================================
// Repeated renders of the same source must not re-parse the spreadsheet.
// The cache is an explicit collaborator passed to whoever loads data — not
// a package-level singleton. Entries are never invalidated within a process;
// a new upload gets a new identity instead.
// ============================================================================

// Cache memoizes normalized tables by source identity.
// Safe for concurrent use; at most one load runs per identity.
type Cache struct {
	mu     sync.Mutex
	tables map[string]*Table
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{tables: make(map[string]*Table)}
}

// Load returns the cached table for identity, calling load to produce it on
// first use. Failed loads are not cached, so a corrected source can be
// retried under the same identity.
func (c *Cache) Load(identity string, load func() (*Table, error)) (*Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.tables[identity]; ok {
		return t, nil
	}
	t, err := load()
	if err != nil {
		return nil, err
	}
	c.tables[identity] = t
	return t, nil
}

// LoadBytes memoizes Load(name, data) under the given identity.
func (c *Cache) LoadBytes(identity, name string, data []byte) (*Table, error) {
	return c.Load(identity, func() (*Table, error) { return Load(name, data) })
}

// Lookup returns a previously loaded table without triggering a load.
func (c *Cache) Lookup(identity string) (*Table, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.tables[identity]
	return t, ok
}
