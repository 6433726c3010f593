package catalog

import (
	"sort"

	"github.com/moarsenal/arsenal/internal/model"
)

// Catalog is the loaded unit roster: faction → subfaction → category →
// alphabetically sorted records with unique names. It is built once by Load
// and never mutated afterwards.
type Catalog struct {
	hierarchy *Hierarchy
	buckets   map[string]map[string]map[string][]*model.UnitRecord
}

// NewCatalog creates an empty catalog for the given hierarchy. Every
// declared (faction, subfaction, category) bucket exists, so lookups on an
// unloaded catalog behave the same as lookups after a partial load.
func NewCatalog(hierarchy *Hierarchy) *Catalog {
	buckets := make(map[string]map[string]map[string][]*model.UnitRecord, len(hierarchy.Factions))
	for _, f := range hierarchy.Factions {
		subs := make(map[string]map[string][]*model.UnitRecord, len(f.Subfactions))
		for _, s := range f.Subfactions {
			cats := make(map[string][]*model.UnitRecord, len(hierarchy.Categories))
			for _, c := range hierarchy.Categories {
				cats[c] = nil
			}
			subs[s.Name] = cats
		}
		buckets[f.Name] = subs
	}
	return &Catalog{hierarchy: hierarchy, buckets: buckets}
}

// Hierarchy returns the hierarchy the catalog was built for.
func (c *Catalog) Hierarchy() *Hierarchy {
	return c.hierarchy
}

func (c *Catalog) put(faction, subfaction, category string, units []*model.UnitRecord) {
	if subs, ok := c.buckets[faction]; ok {
		if cats, ok := subs[subfaction]; ok {
			cats[category] = units
		}
	}
}

// CategoryUnits returns the exact (faction, subfaction, category) bucket.
// Unknown keys yield nil, never an error.
func (c *Catalog) CategoryUnits(faction, subfaction, category string) []*model.UnitRecord {
	subs, ok := c.buckets[faction]
	if !ok {
		return nil
	}
	cats, ok := subs[subfaction]
	if !ok {
		return nil
	}
	return cats[category]
}

// SubfactionUnits returns the union of all category buckets for a
// subfaction, in the hierarchy's category order.
func (c *Catalog) SubfactionUnits(faction, subfaction string) []*model.UnitRecord {
	subs, ok := c.buckets[faction]
	if !ok {
		return nil
	}
	cats, ok := subs[subfaction]
	if !ok {
		return nil
	}
	var units []*model.UnitRecord
	for _, category := range c.hierarchy.Categories {
		units = append(units, cats[category]...)
	}
	return units
}

// FactionUnits returns the union of all records across the faction's
// subfactions and categories. Base-faction records are present in every
// subfaction bucket, so the union deduplicates by record identity.
func (c *Catalog) FactionUnits(faction string) []*model.UnitRecord {
	f, ok := c.hierarchy.Faction(faction)
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var units []*model.UnitRecord
	for _, sub := range f.Subfactions {
		for _, unit := range c.SubfactionUnits(faction, sub.Name) {
			if seen[unit.ID] {
				continue
			}
			seen[unit.ID] = true
			units = append(units, unit)
		}
	}
	return units
}

// BaseUnits returns the base-faction records for a category: records
// loaded at the faction level and inherited by every subfaction.
func (c *Catalog) BaseUnits(faction, category string) []*model.UnitRecord {
	f, ok := c.hierarchy.Faction(faction)
	if !ok || len(f.Subfactions) == 0 {
		return nil
	}
	var units []*model.UnitRecord
	for _, unit := range c.CategoryUnits(faction, f.Subfactions[0].Name, category) {
		if unit.IsBase() {
			units = append(units, unit)
		}
	}
	return units
}

// SubfactionSpecificUnits returns the records of a subfaction bucket that
// are not inherited from the faction level.
func (c *Catalog) SubfactionSpecificUnits(faction, subfaction, category string) []*model.UnitRecord {
	var units []*model.UnitRecord
	for _, unit := range c.CategoryUnits(faction, subfaction, category) {
		if !unit.IsBase() {
			units = append(units, unit)
		}
	}
	return units
}

// CategoryCount returns the number of units a faction has in a category
// across all its subfactions, counting each record once.
func (c *Catalog) CategoryCount(faction, category string) int {
	f, ok := c.hierarchy.Faction(faction)
	if !ok {
		return 0
	}
	seen := make(map[string]bool)
	for _, sub := range f.Subfactions {
		for _, unit := range c.CategoryUnits(faction, sub.Name, category) {
			seen[unit.ID] = true
		}
	}
	return len(seen)
}

// AllRecords returns every loaded record exactly once, sorted by name.
// Inherited copies share identity with their base record and collapse.
func (c *Catalog) AllRecords() []*model.UnitRecord {
	seen := make(map[string]bool)
	var records []*model.UnitRecord
	for _, f := range c.hierarchy.Factions {
		for _, unit := range c.FactionUnits(f.Name) {
			if seen[unit.ID] {
				continue
			}
			seen[unit.ID] = true
			records = append(records, unit)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records
}

// Len returns the number of distinct loaded records.
func (c *Catalog) Len() int {
	return len(c.AllRecords())
}
