package tablekit

import (
	"fmt"

	"github.com/tablekit/tablekit/paging"
	"github.com/tablekit/tablekit/search"
	"github.com/tablekit/tablekit/sorting"
)

// The free functions below expose the pipeline stages directly for callers
// that manage their own state instead of using Table.

// ApplySearch returns the rows matching query, in input order. A nil
// predicate selects the default field scan; an empty query returns rows
// unchanged.
func ApplySearch[T any](rows []T, query string, pred search.Predicate[T]) []T {
	return search.Apply(rows, query, pred)
}

// ApplySort returns a newly ordered copy of rows by the named column. An
// empty key or Direction None returns rows in natural order. The column's
// Compare is used when present, generic ordering over the column field
// otherwise.
func ApplySort[T any](rows []T, key string, dir sorting.Direction, columns []Column[T]) ([]T, error) {
	if key == "" || dir == sorting.None {
		return rows, nil
	}
	for _, c := range columns {
		if c.Key != key {
			continue
		}
		if !c.Sortable {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotSortable, key)
		}
		return sorting.Apply(rows, c.comparator(), dir), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, key)
}

// PageResult is the outcome of a standalone pagination call.
type PageResult[T any] struct {
	// Page is the visible window.
	Page []T
	// TotalPages is the page count, at least 1.
	TotalPages int
	// ClampedPage is the page actually returned after clamping.
	ClampedPage int
}

// Paginate slices rows into the window for the requested 1-indexed page.
// Out-of-range pages are clamped, never an error. size <= 0 disables
// pagination and returns everything as page 1 of 1.
func Paginate[T any](rows []T, page, size int) PageResult[T] {
	win, totalPages, clamped := paging.Window(rows, page, size)
	return PageResult[T]{Page: win, TotalPages: totalPages, ClampedPage: clamped}
}
