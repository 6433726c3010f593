package catalog

import (
	"testing"
)

func buildTestIndex(t *testing.T) *Index {
	t.Helper()
	return NewIndex(buildTestCatalog(t))
}

func TestIndex_EmptyQuery(t *testing.T) {
	ix := buildTestIndex(t)

	if results := ix.Search(""); len(results) != 0 {
		t.Errorf("Empty query should return no results, got %d", len(results))
	}
}

func TestIndex_ExactName(t *testing.T) {
	ix := buildTestIndex(t)

	results := ix.Search("Tesla Trooper")
	if len(results) != 1 {
		t.Fatalf("Expected 1 result for exact name, got %d", len(results))
	}
	if results[0].Record.Name != "Tesla Trooper" {
		t.Errorf("Expected Tesla Trooper, got %s", results[0].Record.Name)
	}
}

func TestIndex_CaseInsensitiveSubstring(t *testing.T) {
	ix := buildTestIndex(t)

	results := ix.Search("TESLA")
	if len(results) != 1 || results[0].Name != "Tesla Trooper" {
		t.Fatalf("Expected case-insensitive match for TESLA, got %v", results)
	}
}

func TestIndex_MatchesFactionAndCategory(t *testing.T) {
	ix := buildTestIndex(t)

	// Every record belongs to the Soviet Union.
	if results := ix.Search("soviet"); len(results) != 3 {
		t.Errorf("Expected 3 results for faction query, got %d", len(results))
	}

	// Category match.
	results := ix.Search("vehicles")
	if len(results) != 1 || results[0].Name != "Rhino Tank" {
		t.Fatalf("Expected [Rhino Tank] for category query, got %v", results)
	}

	// Subfaction match only hits subfaction-specific records; base records
	// carry no subfaction.
	results = ix.Search("russia")
	if len(results) != 2 {
		t.Errorf("Expected 2 results for subfaction query, got %d", len(results))
	}
}

func TestIndex_ResultsKeepAlphabeticalOrder(t *testing.T) {
	ix := buildTestIndex(t)

	results := ix.Search("soviet")
	expected := []string{"Conscript", "Rhino Tank", "Tesla Trooper"}
	if len(results) != len(expected) {
		t.Fatalf("Expected %d results, got %d", len(expected), len(results))
	}
	for i, name := range expected {
		if results[i].Name != name {
			t.Errorf("Result %d: expected %s, got %s", i, name, results[i].Name)
		}
	}
}

func TestIndex_NoMatch(t *testing.T) {
	ix := buildTestIndex(t)

	if results := ix.Search("kirov"); len(results) != 0 {
		t.Errorf("Expected no results for unknown query, got %d", len(results))
	}
}

func TestIndex_Len(t *testing.T) {
	ix := buildTestIndex(t)

	if ix.Len() != 3 {
		t.Errorf("Expected 3 indexed records, got %d", ix.Len())
	}
}
