package catalog

import (
	"testing"
)

// buildTestCatalog loads a small two-subfaction tree: one base infantry
// unit, one Russia-specific infantry unit, one Russia-specific vehicle.
func buildTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	root := t.TempDir()
	writeUnit(t, root, []string{"Soviet Union", "Infantry", "conscript.json"},
		`{"unit_name": "Conscript"}`)
	writeUnit(t, root, []string{"Soviet Union", "subfaction", "Russia", "Infantry", "tesla_trooper.json"},
		`{"unit_name": "Tesla Trooper"}`)
	writeUnit(t, root, []string{"Soviet Union", "subfaction", "Russia", "Vehicles", "rhino_tank.json"},
		`{"unit_name": "Rhino Tank"}`)

	cat, err := Load(root, testHierarchy(), testLogger())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return cat
}

func TestCatalog_CategoryUnits(t *testing.T) {
	cat := buildTestCatalog(t)

	units := cat.CategoryUnits("Soviet Union", "Russia", "Infantry")
	if len(units) != 2 {
		t.Fatalf("Expected 2 infantry units for Russia, got %d", len(units))
	}

	// Superset property: the bucket contains every base-faction record.
	base := cat.BaseUnits("Soviet Union", "Infantry")
	for _, b := range base {
		found := false
		for _, u := range units {
			if u.ID == b.ID {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Base unit %s missing from Russia Infantry bucket", b.Name)
		}
	}
}

func TestCatalog_SubfactionUnits(t *testing.T) {
	cat := buildTestCatalog(t)

	units := cat.SubfactionUnits("Soviet Union", "Russia")
	if len(units) != 3 {
		t.Fatalf("Expected 3 units across Russia categories, got %d", len(units))
	}

	// Latin Confederation only inherits the base unit.
	latin := cat.SubfactionUnits("Soviet Union", "Latin Confederation")
	if len(latin) != 1 || latin[0].Name != "Conscript" {
		t.Fatalf("Expected Latin Confederation = [Conscript], got %v", latin)
	}
}

func TestCatalog_FactionUnits_Deduplicates(t *testing.T) {
	cat := buildTestCatalog(t)

	// Conscript is inherited by both subfactions but must appear once.
	units := cat.FactionUnits("Soviet Union")
	if len(units) != 3 {
		t.Fatalf("Expected 3 distinct faction units, got %d", len(units))
	}
	seen := make(map[string]int)
	for _, u := range units {
		seen[u.Name]++
	}
	if seen["Conscript"] != 1 {
		t.Errorf("Expected Conscript once in faction union, got %d", seen["Conscript"])
	}
}

func TestCatalog_UnknownKeys(t *testing.T) {
	cat := buildTestCatalog(t)

	if units := cat.FactionUnits("Atreides"); units != nil {
		t.Errorf("Unknown faction should yield nil, got %v", units)
	}
	if units := cat.SubfactionUnits("Soviet Union", "Mars"); units != nil {
		t.Errorf("Unknown subfaction should yield nil, got %v", units)
	}
	if units := cat.CategoryUnits("Soviet Union", "Russia", "Submarines"); units != nil {
		t.Errorf("Unknown category should yield nil, got %v", units)
	}
}

func TestCatalog_SubfactionSpecificUnits(t *testing.T) {
	cat := buildTestCatalog(t)

	specific := cat.SubfactionSpecificUnits("Soviet Union", "Russia", "Infantry")
	if len(specific) != 1 || specific[0].Name != "Tesla Trooper" {
		t.Fatalf("Expected [Tesla Trooper] as Russia-specific infantry, got %v", specific)
	}

	if specific := cat.SubfactionSpecificUnits("Soviet Union", "Latin Confederation", "Infantry"); len(specific) != 0 {
		t.Errorf("Expected no Latin Confederation specific infantry, got %v", specific)
	}
}

func TestCatalog_CategoryCount(t *testing.T) {
	cat := buildTestCatalog(t)

	// Conscript (shared) + Tesla Trooper = 2 distinct infantry records.
	if count := cat.CategoryCount("Soviet Union", "Infantry"); count != 2 {
		t.Errorf("Expected infantry count 2, got %d", count)
	}
	if count := cat.CategoryCount("Soviet Union", "Vehicles"); count != 1 {
		t.Errorf("Expected vehicle count 1, got %d", count)
	}
	if count := cat.CategoryCount("Atreides", "Infantry"); count != 0 {
		t.Errorf("Expected unknown faction count 0, got %d", count)
	}
}

func TestCatalog_AllRecords(t *testing.T) {
	cat := buildTestCatalog(t)

	records := cat.AllRecords()
	if len(records) != 3 {
		t.Fatalf("Expected 3 distinct records, got %d", len(records))
	}
	expected := []string{"Conscript", "Rhino Tank", "Tesla Trooper"}
	for i, name := range expected {
		if records[i].Name != name {
			t.Errorf("Record %d: expected %s, got %s", i, name, records[i].Name)
		}
	}
}
