package services

import (
	"strings"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"
)

// CuratedCatalog is the hand-audited local dish catalog. Lookups are pure,
// in-memory, and never fail; a curated hit wins arbitration unconditionally.
type CuratedCatalog struct {
	entries []models.DishEntry
	byName  map[string]*models.DishEntry
}

func NewCuratedCatalog() *CuratedCatalog {
	return newCuratedCatalog(curatedDishes)
}

func newCuratedCatalog(entries []models.DishEntry) *CuratedCatalog {
	c := &CuratedCatalog{
		entries: entries,
		byName:  make(map[string]*models.DishEntry, len(entries)),
	}
	for i := range c.entries {
		c.byName[strings.ToLower(c.entries[i].Name)] = &c.entries[i]
	}
	return c
}

// Lookup resolves a query against the curated catalog: exact name first, then
// substring containment either way, then alias keywords. Returns nil on miss.
func (c *CuratedCatalog) Lookup(query string) *models.DishEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	if e, ok := c.byName[q]; ok {
		return e
	}

	for i := range c.entries {
		name := strings.ToLower(c.entries[i].Name)
		if strings.Contains(q, name) || strings.Contains(name, q) {
			return &c.entries[i]
		}
	}

	for i := range c.entries {
		for _, kw := range c.entries[i].Keywords {
			if strings.Contains(q, strings.ToLower(kw)) {
				return &c.entries[i]
			}
		}
	}
	return nil
}

func (c *CuratedCatalog) Len() int { return len(c.entries) }
