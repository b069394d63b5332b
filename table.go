package tablekit

import (
	"fmt"
	"time"

	"github.com/tablekit/tablekit/paging"
	"github.com/tablekit/tablekit/search"
	"github.com/tablekit/tablekit/selection"
	"github.com/tablekit/tablekit/sorting"
)

// Table owns the state of one tabular view: source rows, search query, sort
// state, pagination state, and the selection tracker. All state is mutated
// only through its methods by a single logical owner; Table is not safe for
// concurrent use.
//
// The derived stages are memoized on their input tuples: the filtered set on
// (query, data revision) and the sorted set on (sort state, filtered
// revision). A selection toggle therefore never re-runs search or sort.
type Table[T any, K comparable] struct {
	keyFn    selection.KeyFunc[T, K]
	columns  []Column[T]
	colIndex map[string]int

	logger  *Logger
	metrics MetricsCollector

	rows    []T
	dataRev uint64

	query    string
	sort     sorting.State
	page     paging.State
	paginate bool
	pred     search.Predicate[T]

	tracker selection.Tracker[T, K]

	filtered      []T
	filteredQuery string
	filteredRev   uint64
	filteredSeq   uint64
	filteredOK    bool

	sorted    []T
	sortedFor sorting.State
	sortedSeq uint64
	sortedOK  bool
}

// New creates a Table. keyFn extracts each row's unique identifier; columns
// describe sorting and rendering per field. Selection is uncontrolled unless
// WithControlledSelection is supplied.
func New[T any, K comparable](keyFn selection.KeyFunc[T, K], columns []Column[T], optFns ...Option[T, K]) (*Table[T, K], error) {
	if keyFn == nil {
		return nil, ErrNilKeyFunc
	}

	o := applyOptions(optFns)
	if o.pageSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, o.pageSize)
	}

	var tracker selection.Tracker[T, K]
	switch {
	case o.controlledSnapshot != nil && o.controlledOnChange != nil:
		tracker = selection.NewControlled(keyFn, o.controlledSnapshot, o.controlledOnChange)
	case o.set != nil:
		tracker = selection.NewTrackerWithSet(keyFn, o.set)
	default:
		tracker = selection.NewTracker(keyFn)
	}

	colIndex := make(map[string]int, len(columns))
	for i, c := range columns {
		colIndex[c.Key] = i
	}

	return &Table[T, K]{
		keyFn:    keyFn,
		columns:  columns,
		colIndex: colIndex,
		logger:   o.logger,
		metrics:  o.metrics,
		page:     paging.NewState(o.pageSize),
		paginate: o.paginate,
		pred:     o.predicate,
		tracker:  tracker,
	}, nil
}

// SetRows replaces the source collection. Query, sort, and selection state
// are untouched; the current page re-clamps lazily if the filtered count
// shrank below its range.
func (t *Table[T, K]) SetRows(rows []T) {
	t.rows = rows
	t.dataRev++
}

// Len returns the size of the unfiltered source collection.
func (t *Table[T, K]) Len() int {
	return len(t.rows)
}

// SetQuery sets the free-text search query. An empty or whitespace-only
// query clears the filter.
func (t *Table[T, K]) SetQuery(query string) {
	t.query = query
}

// Query returns the current search query.
func (t *Table[T, K]) Query() string {
	return t.query
}

// SortBy cycles the sort state for the given column: ascending on first
// selection, descending on the second, back to natural order on the third;
// selecting a different column restarts at ascending.
func (t *Table[T, K]) SortBy(key string) error {
	if err := t.checkSortable(key); err != nil {
		return err
	}
	t.sort = t.sort.Cycle(key)
	return nil
}

// SetSort sets the sort state directly. Direction None clears the sort
// regardless of key.
func (t *Table[T, K]) SetSort(key string, dir sorting.Direction) error {
	if dir == sorting.None {
		t.sort = sorting.State{}
		return nil
	}
	if err := t.checkSortable(key); err != nil {
		return err
	}
	t.sort = sorting.State{Key: key, Direction: dir}
	return nil
}

// ResetSort restores natural order.
func (t *Table[T, K]) ResetSort() {
	t.sort = sorting.State{}
}

// Sort returns the current sort state.
func (t *Table[T, K]) Sort() sorting.State {
	return t.sort
}

func (t *Table[T, K]) checkSortable(key string) error {
	i, ok := t.colIndex[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, key)
	}
	if !t.columns[i].Sortable {
		return fmt.Errorf("%w: %q", ErrColumnNotSortable, key)
	}
	return nil
}

// SetPage moves to the given 1-indexed page. Out-of-range pages clamp
// silently at view time.
func (t *Table[T, K]) SetPage(page int) {
	t.page.SetPage(page)
}

// Page returns the current page as of the last computed view.
func (t *Table[T, K]) Page() int {
	return t.page.Page
}

// SetPageSize changes the page size and resets to the first page.
func (t *Table[T, K]) SetPageSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, size)
	}
	t.page.SetSize(size)
	return nil
}

// PageSize returns the current page size.
func (t *Table[T, K]) PageSize() int {
	return t.page.Size
}

// SetPaginated enables or disables the paginator. When disabled the full
// filtered/sorted collection is one page.
func (t *Table[T, K]) SetPaginated(enabled bool) {
	t.paginate = enabled
}

// filteredRows returns the memoized search result, recomputing only when the
// query or the source data changed.
func (t *Table[T, K]) filteredRows() []T {
	if t.filteredOK && t.filteredQuery == t.query && t.filteredRev == t.dataRev {
		return t.filtered
	}

	start := time.Now()
	t.filtered = search.Apply(t.rows, t.query, t.pred)
	t.filteredQuery = t.query
	t.filteredRev = t.dataRev
	t.filteredSeq++
	t.filteredOK = true

	t.metrics.RecordSearch(time.Since(start), len(t.filtered))
	t.logger.LogSearch(t.query, len(t.rows), len(t.filtered))
	return t.filtered
}

// sortedRows returns the memoized sort result, recomputing only when the
// sort state or the filtered set changed.
func (t *Table[T, K]) sortedRows() []T {
	filtered := t.filteredRows()
	if t.sortedOK && t.sortedFor == t.sort && t.sortedSeq == t.filteredSeq {
		return t.sorted
	}

	if !t.sort.IsSorted() {
		t.sorted = filtered
	} else {
		start := time.Now()
		cmp := t.columns[t.colIndex[t.sort.Key]].comparator()
		t.sorted = sorting.Apply(filtered, cmp, t.sort.Direction)
		t.metrics.RecordSort(time.Since(start), len(t.sorted))
		t.logger.LogSort(t.sort.Key, t.sort.Direction.String(), len(t.sorted))
	}

	t.sortedFor = t.sort
	t.sortedSeq = t.filteredSeq
	t.sortedOK = true
	return t.sorted
}

// window computes the visible slice and writes the clamped page back.
func (t *Table[T, K]) window() (win []T, totalPages int) {
	rows := t.sortedRows()
	size := t.page.Size
	if !t.paginate {
		size = 0
	}
	win, totalPages, clamped := paging.Window(rows, t.page.Page, size)
	t.page.Page = clamped
	return win, totalPages
}

// View computes the visible window: raw data -> search -> sort -> paginate.
// Memoized stages are reused when their inputs are unchanged.
func (t *Table[T, K]) View() View[T] {
	requested := t.page.Page
	win, totalPages := t.window()
	t.metrics.RecordPaginate(len(win))
	t.logger.LogPaginate(requested, t.page.Page, totalPages, len(win))

	sel := SelectionNone
	switch {
	case t.tracker.AllSelected(win):
		sel = SelectionAll
	case t.tracker.SomeSelected(win):
		sel = SelectionSome
	}

	return View[T]{
		Rows:         win,
		Page:         t.page.Page,
		TotalPages:   totalPages,
		TotalRows:    len(t.rows),
		FilteredRows: len(t.sortedRows()),
		Selection:    sel,
		columns:      t.columns,
	}
}

// Toggle flips the selection of a single row identifier.
func (t *Table[T, K]) Toggle(id K) {
	t.tracker.Toggle(id)
	t.metrics.RecordSelection(t.tracker.Count())
	t.logger.LogSelection("toggle", t.tracker.Count())
}

// SelectAllVisible selects every row on the current page, or deselects
// exactly those rows if all of them are already selected. Selections outside
// the page are untouched.
func (t *Table[T, K]) SelectAllVisible() {
	win, _ := t.window()
	t.tracker.SelectAllVisible(win)
	t.metrics.RecordSelection(t.tracker.Count())
	t.logger.LogSelection("select-all-visible", t.tracker.Count())
}

// AllSelected reports whether the current page is non-empty and fully
// selected.
func (t *Table[T, K]) AllSelected() bool {
	win, _ := t.window()
	return t.tracker.AllSelected(win)
}

// SomeSelected reports whether the current page is partially selected (the
// indeterminate checkbox state).
func (t *Table[T, K]) SomeSelected() bool {
	win, _ := t.window()
	return t.tracker.SomeSelected(win)
}

// IsSelected reports whether the identifier is selected, visible or not.
func (t *Table[T, K]) IsSelected(id K) bool {
	return t.tracker.IsSelected(id)
}

// Selected returns the selected identifiers, including rows currently hidden
// by the filter or on other pages.
func (t *Table[T, K]) Selected() []K {
	return t.tracker.Selected()
}

// SelectedCount returns the number of selected identifiers.
func (t *Table[T, K]) SelectedCount() int {
	return t.tracker.Count()
}

// ClearSelection deselects everything.
func (t *Table[T, K]) ClearSelection() {
	t.tracker.Clear()
	t.metrics.RecordSelection(0)
	t.logger.LogSelection("clear", 0)
}
