package menu

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

// DefaultMaxAge is the staleness threshold after which a cached menu is
// refreshed on the next read.
const DefaultMaxAge = time.Hour

// Fetcher retrieves the current menu from the menu collaborator.
type Fetcher interface {
	Fetch(ctx context.Context) (*Menu, error)
}

// Cache is the process-wide, read-mostly menu cache. A slightly stale menu is
// preferable to blocking calls on a synchronous fetch, so reads between
// refreshes may observe old data and two near-simultaneous refreshes are
// tolerated.
type Cache struct {
	fetcher Fetcher

	mu        sync.Mutex
	data      *Menu
	fetchedAt time.Time
}

// NewCache creates an empty cache backed by the given fetcher.
func NewCache(f Fetcher) *Cache {
	return &Cache{fetcher: f}
}

// GetOrRefresh returns the cached menu, refreshing it first when the cache is
// empty or older than maxAge. On fetch failure the previous value (possibly
// nil) is served.
func (c *Cache) GetOrRefresh(ctx context.Context, maxAge time.Duration) *Menu {
	c.mu.Lock()
	data, fetchedAt := c.data, c.fetchedAt
	c.mu.Unlock()

	if data != nil && time.Since(fetchedAt) < maxAge {
		return data
	}
	if c.fetcher == nil {
		return data
	}

	fresh, err := c.fetcher.Fetch(ctx)
	if err != nil {
		log.Printf("menu: refresh failed, serving cached copy: %v", err)
		return data
	}

	c.mu.Lock()
	c.data = fresh
	c.fetchedAt = time.Now()
	c.mu.Unlock()
	return fresh
}

// Format renders a menu as prompt text, one section per category. Labels stay
// in Dutch regardless of the caller's language; the model translates dish
// descriptions as needed.
func Format(m *Menu) string {
	if m == nil || len(m.Categories) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Actueel menu (vandaag beschikbaar):\n")
	for _, cat := range m.Categories {
		b.WriteString(cat.Name)
		b.WriteString(":\n")
		for _, it := range cat.Items {
			b.WriteString("- ")
			b.WriteString(it.Name)
			if it.Description != "" {
				b.WriteString(": ")
				b.WriteString(it.Description)
			}
			if it.Price > 0 {
				fmt.Fprintf(&b, " (€%.2f)", it.Price)
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("Alleen bovenstaande gerechten zijn beschikbaar.\n")
	return b.String()
}
