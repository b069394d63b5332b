package tablekit

import "fmt"

// SelectState is the ternary state of the select-all control over the
// visible window.
type SelectState int

const (
	// SelectionNone means no visible row is selected.
	SelectionNone SelectState = iota
	// SelectionSome means at least one but not all visible rows are selected
	// (the indeterminate checkbox state).
	SelectionSome
	// SelectionAll means every visible row is selected.
	SelectionAll
)

// String returns the string representation of a SelectState.
func (s SelectState) String() string {
	switch s {
	case SelectionNone:
		return "none"
	case SelectionSome:
		return "some"
	case SelectionAll:
		return "all"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// View is the computed visible window plus the totals a presentation shell
// needs to render controls and status lines. Rows are the caller's values;
// the view never copies or mutates them.
type View[T any] struct {
	// Rows is the visible window: the current page of the filtered, sorted
	// collection.
	Rows []T

	// Page is the page actually shown, after clamping.
	Page int

	// TotalPages is the page count over the filtered collection, at least 1.
	TotalPages int

	// TotalRows is the size of the unfiltered source collection.
	TotalRows int

	// FilteredRows is the size of the collection after search.
	FilteredRows int

	// Selection summarizes the visible window's selection state.
	Selection SelectState

	columns []Column[T]
}

// Cell renders the display text of the column at col for the row at row in
// the visible window, honoring the column's Render hook.
func (v View[T]) Cell(row, col int) string {
	if row < 0 || row >= len(v.Rows) || col < 0 || col >= len(v.columns) {
		return ""
	}
	return v.columns[col].cell(v.Rows[row])
}
