package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/moarsenal/arsenal/internal/model"
)

// Icon files use the webp extension throughout the data tree.
const iconFileExt = ".webp"

// IconCache loads unit and faction icons from the data tree and caches
// them by path. Icon files live in per-category icons folders whose parent
// directories use inconsistent space/underscore spelling, so lookups try
// the same variants the catalog loader does.
type IconCache struct {
	dataDir string
	cache   map[string]fyne.Resource
}

// NewIconCache creates a cache rooted at the data directory.
func NewIconCache(dataDir string) *IconCache {
	return &IconCache{
		dataDir: dataDir,
		cache:   make(map[string]fyne.Resource),
	}
}

// UnitIcon returns the icon resource for a unit, or nil when no icon file
// can be found.
func (ic *IconCache) UnitIcon(unit *model.UnitRecord) fyne.Resource {
	if unit.IconFile == "" {
		return nil
	}
	for _, relPath := range ic.unitIconVariants(unit) {
		if res := ic.load(relPath); res != nil {
			return res
		}
	}
	return nil
}

// HierarchyIcon returns the icon for a faction or subfaction by its
// configured icon name, or nil when missing. Hierarchy icons sit at the
// root of the data tree.
func (ic *IconCache) HierarchyIcon(iconName string) fyne.Resource {
	if iconName == "" {
		return nil
	}
	return ic.load(iconName + iconFileExt)
}

// load fetches a resource by data-relative path. Hits are cached; misses
// are not, the data tree does not change while the app runs anyway.
func (ic *IconCache) load(relPath string) fyne.Resource {
	if res, ok := ic.cache[relPath]; ok {
		return res
	}
	fullPath := filepath.Join(ic.dataDir, relPath)
	if _, err := os.Stat(fullPath); err != nil {
		return nil
	}
	res, err := fyne.LoadResourceFromPath(fullPath)
	if err != nil {
		return nil
	}
	ic.cache[relPath] = res
	return res
}

// unitIconVariants lists the candidate icon paths for a unit, mirroring
// the spelling variants of the data tree.
func (ic *IconCache) unitIconVariants(unit *model.UnitRecord) []string {
	underscore := func(s string) string { return strings.ReplaceAll(s, " ", "_") }

	if unit.Subfaction == "" {
		return []string{
			fmt.Sprintf("%s/%s/icons/%s", unit.Faction, unit.Category, unit.IconFile),
			fmt.Sprintf("%s/%s/icons/%s", underscore(unit.Faction), underscore(unit.Category), unit.IconFile),
		}
	}
	return []string{
		fmt.Sprintf("%s/subfaction/%s/%s/icons/%s",
			underscore(unit.Faction), unit.Subfaction, unit.Category, unit.IconFile),
		fmt.Sprintf("%s/subfaction/%s/%s/icons/%s",
			unit.Faction, unit.Subfaction, unit.Category, unit.IconFile),
		fmt.Sprintf("%s/subfaction/%s/%s/icons/%s",
			underscore(unit.Faction), underscore(unit.Subfaction), underscore(unit.Category), unit.IconFile),
		fmt.Sprintf("%s/%s/icons/%s", unit.Faction, unit.Category, unit.IconFile),
		fmt.Sprintf("%s/%s/icons/%s", underscore(unit.Faction), underscore(unit.Category), unit.IconFile),
	}
}
