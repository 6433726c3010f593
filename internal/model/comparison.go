package model

// ComparisonSet holds the units the user selected for side-by-side
// comparison. Selection order is preserved; a record appears at most once.
// The set is only touched from the UI thread, so no locking is needed.
type ComparisonSet struct {
	records []*UnitRecord
}

// NewComparisonSet creates an empty comparison set.
func NewComparisonSet() *ComparisonSet {
	return &ComparisonSet{}
}

// Contains reports whether the record is currently selected.
func (cs *ComparisonSet) Contains(record *UnitRecord) bool {
	for _, r := range cs.records {
		if r.ID == record.ID {
			return true
		}
	}
	return false
}

// Toggle adds the record if absent and removes it if present. It returns
// true when the record ended up selected.
func (cs *ComparisonSet) Toggle(record *UnitRecord) bool {
	if cs.Contains(record) {
		cs.Remove(record)
		return false
	}
	cs.records = append(cs.records, record)
	return true
}

// Remove drops the record from the selection if present.
func (cs *ComparisonSet) Remove(record *UnitRecord) {
	for i, r := range cs.records {
		if r.ID == record.ID {
			cs.records = append(cs.records[:i], cs.records[i+1:]...)
			return
		}
	}
}

// Clear empties the selection.
func (cs *ComparisonSet) Clear() {
	cs.records = nil
}

// Records returns the selected records in selection order.
func (cs *ComparisonSet) Records() []*UnitRecord {
	return cs.records
}

// Len returns the number of selected records.
func (cs *ComparisonSet) Len() int {
	return len(cs.records)
}
