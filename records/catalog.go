package records

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/gemfin/gemfin/chart"
)

// CatalogEntry is the display metadata for one reporting entity. It is
// optional enrichment: integration only needs the id/year/source triple,
// but display layers want localized names and scaling denominators.
type CatalogEntry struct {
	ID            string           `json:"id"`
	Name          chart.Labels     `json:"name"`
	Description   chart.Labels     `json:"description,omitempty"`
	ScalingFactor *decimal.Decimal `json:"scalingFactor,omitempty"`
	ScalingInfo   chart.Labels     `json:"scalingInfo,omitempty"`
	Years         []int            `json:"years,omitempty"`
}

// Catalog looks up entity display metadata by entity id.
type Catalog struct {
	entries map[string]CatalogEntry
}

// NewCatalog creates a catalog from a list of entries.
func NewCatalog(entries []CatalogEntry) *Catalog {
	c := &Catalog{entries: make(map[string]CatalogEntry, len(entries))}
	for _, e := range entries {
		c.entries[e.ID] = e
	}
	return c
}

// LoadCatalog reads a catalog from a JSON file holding an array of entries.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	var entries []CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", path, err)
	}
	return NewCatalog(entries), nil
}

// Lookup returns the entry for an entity id, if present.
func (c *Catalog) Lookup(entityID string) (CatalogEntry, bool) {
	if c == nil {
		return CatalogEntry{}, false
	}
	e, ok := c.entries[entityID]
	return e, ok
}

// HasYear reports whether the catalog lists the year as available for the
// entity. Entities missing from the catalog are not constrained.
func (c *Catalog) HasYear(entityID string, year int) bool {
	e, ok := c.Lookup(entityID)
	if !ok || len(e.Years) == 0 {
		return true
	}
	for _, y := range e.Years {
		if y == year {
			return true
		}
	}
	return false
}
