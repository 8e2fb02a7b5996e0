package variations

import (
	"sync"

	"github.com/stagepass/inventory/models"
)

// Cache memoizes combination expansion across calls. It is an explicit
// handle the caller passes around, keyed by item ID; there is no hidden
// per-instance state and no global. Invalidation is the caller's job,
// typically driven by catalog change notifications from the store layer.
type Cache struct {
	mu      sync.Mutex
	entries map[uint]cacheEntry
}

type cacheEntry struct {
	eventID      uint
	combinations []Combination
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[uint]cacheEntry),
	}
}

// AllCombinations returns the cached expansion for the item, computing and
// storing it on first use.
func (c *Cache) AllCombinations(item *models.Item) []Combination {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[item.ID]; ok {
		return entry.combinations
	}
	combinations := AllCombinations(item)
	c.entries[item.ID] = cacheEntry{
		eventID:      item.EventID,
		combinations: combinations,
	}
	return combinations
}

// Invalidate drops the cached expansion for one item.
func (c *Cache) Invalidate(itemID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, itemID)
}

// InvalidateEvent drops every cached expansion belonging to the event.
// Catalog writes are keyed per event, so this is the granularity change
// notifications arrive at.
func (c *Cache) InvalidateEvent(eventID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for itemID, entry := range c.entries {
		if entry.eventID == eventID {
			delete(c.entries, itemID)
		}
	}
}

// Clear drops everything.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint]cacheEntry)
}
