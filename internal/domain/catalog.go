package domain

import (
	"strings"
	"sync"
)

// Catalog is the in-memory set of trends and content updates for a session.
// It is safe for concurrent use; every accessor returns copies.
type Catalog struct {
	mu      sync.RWMutex
	trends  []Trend
	updates []ContentUpdate
}

// NewCatalog creates a catalog holding copies of trends and updates.
func NewCatalog(trends []Trend, updates []ContentUpdate) *Catalog {
	c := &Catalog{
		trends:  make([]Trend, 0, len(trends)),
		updates: append([]ContentUpdate(nil), updates...),
	}
	for _, t := range trends {
		c.trends = append(c.trends, t.clone())
	}
	return c
}

// Trends returns the trends in category, or every trend when category is empty.
func (c *Catalog) Trends(category string) []Trend {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Trend, 0, len(c.trends))
	for _, t := range c.trends {
		if category == "" || strings.EqualFold(category, t.Category) {
			out = append(out, t.clone())
		}
	}
	return out
}

// Trend returns the trend with the given ID.
func (c *Catalog) Trend(id int) (Trend, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.trendIndex(id)
	if i < 0 {
		return Trend{}, ErrTrendNotFound
	}
	return c.trends[i].clone(), nil
}

// AdoptedTrends returns the trends marked adopted, in catalog order.
func (c *Catalog) AdoptedTrends() []Trend {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Trend
	for _, t := range c.trends {
		if t.Adopted {
			out = append(out, t.clone())
		}
	}
	return out
}

// MarkTrendAdopted flips a trend to adopted and returns the updated copy.
func (c *Catalog) MarkTrendAdopted(id int) (Trend, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.trendIndex(id)
	if i < 0 {
		return Trend{}, ErrTrendNotFound
	}
	if c.trends[i].Adopted {
		return c.trends[i].clone(), ErrAlreadyAdopted
	}
	c.trends[i].Adopted = true
	return c.trends[i].clone(), nil
}

// Updates returns the content updates matching filter.
func (c *Catalog) Updates(filter UpdateFilter) []ContentUpdate {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]ContentUpdate, 0, len(c.updates))
	for _, u := range c.updates {
		if filter.Matches(u) {
			out = append(out, u)
		}
	}
	return out
}

// Update returns the content update with the given ID.
func (c *Catalog) Update(id int) (ContentUpdate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.updateIndex(id)
	if i < 0 {
		return ContentUpdate{}, ErrUpdateNotFound
	}
	return c.updates[i], nil
}

// MarkUpdateIntegrated flips a content update to integrated and returns the updated copy.
func (c *Catalog) MarkUpdateIntegrated(id int) (ContentUpdate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.updateIndex(id)
	if i < 0 {
		return ContentUpdate{}, ErrUpdateNotFound
	}
	if c.updates[i].Integrated {
		return c.updates[i], ErrAlreadyIntegrated
	}
	c.updates[i].Integrated = true
	return c.updates[i], nil
}

// trendIndex must be called with mu held.
func (c *Catalog) trendIndex(id int) int {
	for i := range c.trends {
		if c.trends[i].ID == id {
			return i
		}
	}
	return -1
}

// updateIndex must be called with mu held.
func (c *Catalog) updateIndex(id int) int {
	for i := range c.updates {
		if c.updates[i].ID == id {
			return i
		}
	}
	return -1
}
