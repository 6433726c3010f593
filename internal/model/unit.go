package model

import (
	"strings"
)

// Attribute is a single infobox property. Attributes keep the order they
// appear in the unit file, which is why records carry a slice instead of a
// map.
type Attribute struct {
	Key   string
	Value any // string, float64, []any, or []Attribute for a nested table
}

// ArticleTable is a table lifted from a unit's wiki article.
type ArticleTable struct {
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// UnitRecord represents a single unit, structure, or support power.
// A record loaded directly under a faction directory has an empty
// Subfaction and is inherited by every subfaction of that faction.
type UnitRecord struct {
	ID            string // stable identity assigned at load time
	Name          string
	Faction       string
	Subfaction    string
	Category      string
	Attributes    []Attribute
	IconFile      string
	IconURL       string
	ArticleTables []ArticleTable
}

// Attribute returns the value for the named infobox key, matched
// case-insensitively.
func (u *UnitRecord) Attribute(key string) (any, bool) {
	for _, attr := range u.Attributes {
		if strings.EqualFold(attr.Key, key) {
			return attr.Value, true
		}
	}
	return nil, false
}

// IsBase reports whether the record was defined at the faction level
// rather than inside a subfaction directory.
func (u *UnitRecord) IsBase() bool {
	return u.Subfaction == ""
}

// Origin returns "Faction" or "Faction - Subfaction" for display.
func (u *UnitRecord) Origin() string {
	if u.Subfaction == "" {
		return u.Faction
	}
	return u.Faction + " - " + u.Subfaction
}

// SearchItem is one entry of the flat search index: the searchable fields
// of a record plus a back-reference to it.
type SearchItem struct {
	Name       string
	Faction    string
	Subfaction string
	Category   string
	Record     *UnitRecord
}

// Matches reports whether the lowercased query is a substring of the
// item's name, faction, subfaction, or category. The query must already
// be lowercased by the caller.
func (si *SearchItem) Matches(lowerQuery string) bool {
	return strings.Contains(strings.ToLower(si.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(si.Faction), lowerQuery) ||
		strings.Contains(strings.ToLower(si.Subfaction), lowerQuery) ||
		strings.Contains(strings.ToLower(si.Category), lowerQuery)
}
