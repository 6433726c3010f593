package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultHierarchy(t *testing.T) {
	h := DefaultHierarchy()

	if err := h.Validate(); err != nil {
		t.Fatalf("Default hierarchy should validate: %v", err)
	}
	if len(h.Factions) != 4 {
		t.Errorf("Expected 4 factions, got %d", len(h.Factions))
	}
	if len(h.Categories) != 6 {
		t.Errorf("Expected 6 categories, got %d", len(h.Categories))
	}

	soviet, ok := h.Faction("Soviet Union")
	if !ok {
		t.Fatal("Expected Soviet Union faction to exist")
	}
	if len(soviet.Subfactions) != 3 {
		t.Errorf("Expected 3 Soviet subfactions, got %d", len(soviet.Subfactions))
	}
}

func TestLoadHierarchy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hierarchy.yml")
	contents := `
factions:
  - name: Soviet Union
    icon: Sovicon
    subfactions:
      - name: Russia
        icon: Russiaicon
categories:
  - Infantry
  - Vehicles
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write hierarchy file: %v", err)
	}

	h, err := LoadHierarchy(path)
	if err != nil {
		t.Fatalf("LoadHierarchy failed: %v", err)
	}
	if len(h.Factions) != 1 || h.Factions[0].Name != "Soviet Union" {
		t.Errorf("Unexpected factions: %v", h.Factions)
	}
	if h.SubfactionIcon("Soviet Union", "Russia") != "Russiaicon" {
		t.Errorf("Expected Russiaicon, got %q", h.SubfactionIcon("Soviet Union", "Russia"))
	}
	if len(h.Categories) != 2 {
		t.Errorf("Expected 2 categories, got %d", len(h.Categories))
	}
}

func TestLoadHierarchy_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hierarchy.yml")
	if err := os.WriteFile(path, []byte("factions: [1, 2"), 0o644); err != nil {
		t.Fatalf("Failed to write hierarchy file: %v", err)
	}

	if _, err := LoadHierarchy(path); err == nil {
		t.Error("Expected error for malformed YAML, got nil")
	}
}

func TestLoadHierarchy_EmptyHierarchy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hierarchy.yml")
	if err := os.WriteFile(path, []byte("factions: []\ncategories: []\n"), 0o644); err != nil {
		t.Fatalf("Failed to write hierarchy file: %v", err)
	}

	if _, err := LoadHierarchy(path); err == nil {
		t.Error("Expected validation error for empty hierarchy, got nil")
	}
}

func TestLoadHierarchyOrDefault(t *testing.T) {
	// Missing file falls back to the built-in hierarchy.
	h, err := LoadHierarchyOrDefault(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("LoadHierarchyOrDefault failed: %v", err)
	}
	if len(h.Factions) != 4 {
		t.Errorf("Expected default hierarchy fallback, got %d factions", len(h.Factions))
	}
}

func TestHierarchy_Validate_Duplicates(t *testing.T) {
	h := &Hierarchy{
		Factions: []Faction{
			{Name: "Soviet Union"},
			{Name: "Soviet Union"},
		},
		Categories: []string{"Infantry"},
	}
	if err := h.Validate(); err == nil {
		t.Error("Expected validation error for duplicate faction, got nil")
	}

	h = &Hierarchy{
		Factions: []Faction{
			{Name: "Soviet Union", Subfactions: []Subfaction{{Name: "Russia"}, {Name: "Russia"}}},
		},
		Categories: []string{"Infantry"},
	}
	if err := h.Validate(); err == nil {
		t.Error("Expected validation error for duplicate subfaction, got nil")
	}
}
