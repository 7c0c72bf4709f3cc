package models

// Selection is either AllStates or one state name from the dataset.
type Selection string

// AllStates aggregates across the whole dataset, averaged per state.
const AllStates Selection = "All"

// FilterResult is the row subset an aggregator operates on.
type FilterResult struct {
	Rows []StateRecord

	// All is true when the selection was AllStates. DistinctStates is
	// only populated in that case; it divides the sums into per-state
	// averages.
	All            bool
	DistinctStates int
}

// Filter narrows the table to the current selection. AllStates returns every
// row plus the distinct state count; a named state returns the rows whose
// state name matches exactly, which may be empty if the name is unknown.
func Filter(table *Table, sel Selection) FilterResult {
	if sel == AllStates {
		return FilterResult{
			Rows:           table.Rows,
			All:            true,
			DistinctStates: len(table.index),
		}
	}

	result := FilterResult{}
	for _, row := range table.Rows {
		if row.State == string(sel) {
			result.Rows = append(result.Rows, row)
		}
	}
	return result
}
