package catalog

import (
	"sort"
	"strings"

	"github.com/moarsenal/arsenal/internal/model"
)

// Index is the flat search index over all loaded records, sorted
// case-insensitively by name. Queries are linear substring scans; the
// catalog holds a few hundred records, so nothing smarter is warranted.
type Index struct {
	items []*model.SearchItem
}

// NewIndex flattens the catalog into search items, one per distinct
// record.
func NewIndex(cat *Catalog) *Index {
	records := cat.AllRecords()
	items := make([]*model.SearchItem, 0, len(records))
	for _, record := range records {
		items = append(items, &model.SearchItem{
			Name:       record.Name,
			Faction:    record.Faction,
			Subfaction: record.Subfaction,
			Category:   record.Category,
			Record:     record,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return &Index{items: items}
}

// Search returns all items whose name, faction, subfaction, or category
// contains the query, case-insensitively, in the index's alphabetical
// order. An empty query returns nothing.
func (ix *Index) Search(query string) []*model.SearchItem {
	if query == "" {
		return nil
	}
	lower := strings.ToLower(query)
	var results []*model.SearchItem
	for _, item := range ix.items {
		if item.Matches(lower) {
			results = append(results, item)
		}
	}
	return results
}

// Len returns the number of indexed records.
func (ix *Index) Len() int {
	return len(ix.items)
}
