package version

import "sync"

// Cache holds the Electron major version once it is known. Create one per
// process and share it between presets so the lookup happens at most once.
type Cache struct {
	mu    sync.RWMutex
	value string
	set   bool
}

func NewCache() *Cache {
	return &Cache{}
}

// Get returns the cached version and whether one has been stored.
func (c *Cache) Get() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.value, c.set
}

// SetIfAbsent stores v unless a value is already present, and returns the
// value held after the call.
func (c *Cache) SetIfAbsent(v string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.set {
		c.value = v
		c.set = true
	}

	return c.value
}
