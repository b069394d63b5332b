// Package tablekit implements the data pipeline behind a tabular view:
// free-text search, single-column sorting, pagination, and selection
// tracking over an arbitrary in-memory row collection.
//
// The pipeline is a chain of pure, composable stages:
//
//	raw rows -> search filter -> sort engine -> paginator -> visible window
//
// Rows are opaque caller-owned values of any type; the core never mutates
// them. Selection operates orthogonally, keyed by a caller-supplied row
// identifier, and survives filter, sort, and page changes: a row hidden by a
// filter stays selected until explicitly deselected or removed from the
// source data.
//
// # Quick start
//
//	type User struct {
//	    ID   int
//	    Name string
//	    Age  int
//	}
//
//	tbl, err := tablekit.New(
//	    func(u User) int { return u.ID },
//	    []tablekit.Column[User]{
//	        {Key: "Name", Sortable: true},
//	        {Key: "Age", Sortable: true},
//	    },
//	    tablekit.WithPageSize[User, int](25),
//	)
//	if err != nil {
//	    panic(err)
//	}
//
//	tbl.SetRows(users)
//	tbl.SetQuery("ada")
//	_ = tbl.SortBy("Age") // ascending; again for descending; again to clear
//	view := tbl.View()
//	for i, u := range view.Rows {
//	    fmt.Println(view.Cell(i, 0), u.Age)
//	}
//
// # State ownership
//
// By default the table owns all four pieces of state (query, sort, page,
// selection). Selection can instead be controlled by the caller: supply
// WithControlledSelection with a snapshot getter and a change callback, and
// the table computes derived views without retaining a selection of its own.
// Toggle and select-all semantics are identical in both modes.
//
// # Stages as functions
//
// ApplySearch, ApplySort, and Paginate expose the stages directly for
// callers that keep their own state. The subpackages search, sorting,
// paging, and selection carry the stage implementations and can be used
// independently.
//
// The pipeline is synchronous and single-threaded: every operation is an
// immediate, deterministic transform. Derived results are memoized on their
// input tuples, so unrelated state changes (for example a selection toggle)
// do not re-run search or sort.
package tablekit
