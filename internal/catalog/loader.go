package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/moarsenal/arsenal/internal/model"
)

// Layout constants of the data tree.
const (
	SubfactionDirName = "subfaction"
	IconsDirName      = "icons"
	UnitFileExt       = ".json"
)

// Recognized keys of a unit file.
const (
	keyUnitName      = "unit_name"
	keyInfoboxData   = "infobox_data"
	keyIconFilename  = "icon_filename"
	keyIconURL       = "icon_url"
	keyArticleTables = "article_tables"

	sectionKeyPrefix = "_section_"
)

// Load walks the data tree under root and builds the catalog for the given
// hierarchy. A missing root is the only error; missing faction or subfaction
// directories are logged and skipped, and malformed unit files are logged
// per file without aborting the load.
func Load(root string, hierarchy *Hierarchy, logger *log.Logger) (*Catalog, error) {
	if logger == nil {
		logger = log.Default()
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("data directory not found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data path %s is not a directory", root)
	}

	cat := NewCatalog(hierarchy)
	for _, faction := range hierarchy.Factions {
		factionDir, ok := resolveDir(root, faction.Name, false)
		if !ok {
			logger.Warn("faction directory not found", "faction", faction.Name)
			continue
		}
		logger.Debug("loading faction", "faction", faction.Name, "dir", factionDir)

		// Units directly under the faction directory are base-faction
		// units, inherited by every subfaction below.
		base := make(map[string][]*model.UnitRecord, len(hierarchy.Categories))
		for _, category := range hierarchy.Categories {
			base[category] = loadCategoryDir(factionDir, faction.Name, "", category, logger)
		}

		for _, sub := range faction.Subfactions {
			subDir, found := resolveDir(filepath.Join(factionDir, SubfactionDirName), sub.Name, true)
			if !found {
				logger.Warn("subfaction directory not found", "faction", faction.Name, "subfaction", sub.Name)
			}

			for _, category := range hierarchy.Categories {
				var units []*model.UnitRecord
				if found {
					units = loadCategoryDir(subDir, faction.Name, sub.Name, category, logger)
				}
				// Inheritance applies whether or not the subfaction
				// directory exists.
				units = append(units, base[category]...)
				cat.put(faction.Name, sub.Name, category, normalizeBucket(units))
			}
		}
	}
	return cat, nil
}

// resolveDir finds the directory for name under base, trying the exact
// name, spaces replaced by underscores, and spaces removed. When firstToken
// is set, the first whitespace-delimited token of a multi-word name is
// tried as well (subfaction folders are often abbreviated that way).
func resolveDir(base, name string, firstToken bool) (string, bool) {
	variants := []string{
		name,
		strings.ReplaceAll(name, " ", "_"),
		strings.ReplaceAll(name, " ", ""),
	}
	if firstToken && strings.Contains(name, " ") {
		variants = append(variants, strings.Fields(name)[0])
	}
	for _, variant := range variants {
		path := filepath.Join(base, variant)
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// loadCategoryDir loads all unit files from the category subfolder of dir.
// A missing category folder yields no units; unparsable files are skipped.
func loadCategoryDir(dir, faction, subfaction, category string, logger *log.Logger) []*model.UnitRecord {
	categoryDir := filepath.Join(dir, strings.ReplaceAll(category, " ", "_"))
	entries, err := os.ReadDir(categoryDir)
	if err != nil {
		return nil
	}

	var units []*model.UnitRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), UnitFileExt) {
			continue
		}
		path := filepath.Join(categoryDir, entry.Name())
		record, err := parseUnitFile(path)
		if err != nil {
			logger.Error("failed to load unit file", "path", path, "error", err)
			continue
		}
		record.ID = uuid.NewString()
		record.Faction = faction
		record.Subfaction = subfaction
		record.Category = category
		units = append(units, record)
	}
	if len(units) > 0 {
		logger.Debug("loaded units", "count", len(units), "category", category,
			"faction", faction, "subfaction", subfaction)
	}
	return units
}

// normalizeBucket deduplicates a merged bucket by unit name (first
// occurrence wins, so subfaction-specific records shadow inherited base
// records) and sorts it alphabetically.
func normalizeBucket(units []*model.UnitRecord) []*model.UnitRecord {
	seen := make(map[string]bool, len(units))
	unique := make([]*model.UnitRecord, 0, len(units))
	for _, unit := range units {
		if seen[unit.Name] {
			continue
		}
		seen[unit.Name] = true
		unique = append(unique, unit)
	}
	sort.Slice(unique, func(i, j int) bool {
		return unique[i].Name < unique[j].Name
	})
	return unique
}

// parseUnitFile reads one unit file: a single JSON object with the
// recognized keys. Infobox attributes keep their file order, which rules
// out unmarshalling into a map, so the object is walked token by token.
func parseUnitFile(path string) (*model.UnitRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open unit file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	record := &model.UnitRecord{}
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		switch key {
		case keyUnitName:
			if err := dec.Decode(&record.Name); err != nil {
				return nil, fmt.Errorf("invalid %s: %w", keyUnitName, err)
			}
		case keyInfoboxData:
			attrs, err := decodeAttributes(dec)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %w", keyInfoboxData, err)
			}
			record.Attributes = attrs
		case keyIconFilename:
			if err := dec.Decode(&record.IconFile); err != nil {
				return nil, fmt.Errorf("invalid %s: %w", keyIconFilename, err)
			}
		case keyIconURL:
			if err := dec.Decode(&record.IconURL); err != nil {
				return nil, fmt.Errorf("invalid %s: %w", keyIconURL, err)
			}
		case keyArticleTables:
			if err := dec.Decode(&record.ArticleTables); err != nil {
				return nil, fmt.Errorf("invalid %s: %w", keyArticleTables, err)
			}
		default:
			var skip any
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("invalid value for key %q: %w", key, err)
			}
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("malformed unit file: %w", err)
	}

	if record.Name == "" {
		// Fall back to the file name without extension.
		base := filepath.Base(path)
		record.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return record, nil
}

// decodeAttributes decodes an ordered JSON object into an attribute list,
// dropping keys with the section-marker prefix.
func decodeAttributes(dec *json.Decoder) ([]model.Attribute, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var attrs []model.Attribute
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(key, sectionKeyPrefix) {
			continue
		}
		attrs = append(attrs, model.Attribute{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return attrs, nil
}

// decodeValue decodes the next JSON value. Objects become nested ordered
// attribute lists, arrays become []any, scalars come back as produced by
// encoding/json (string, float64, bool, nil).
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		var attrs []model.Attribute
		for dec.More() {
			key, err := readKey(dec)
			if err != nil {
				return nil, err
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			if strings.HasPrefix(key, sectionKeyPrefix) {
				continue
			}
			attrs = append(attrs, model.Attribute{Key: key, Value: value})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return attrs, nil
	case '[':
		list := []any{}
		for dec.More() {
			item, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, item)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("malformed JSON: %w", err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}
