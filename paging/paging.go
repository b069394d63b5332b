// Package paging slices an ordered row collection into fixed-size pages.
//
// Pages are 1-indexed. An out-of-range page is silently clamped, never an
// error: after a filter shrinks the collection the caller keeps seeing the
// last page with content rather than an empty window.
package paging

// State tracks the current page and page size. The zero value is not useful;
// construct with NewState.
type State struct {
	// Page is the current page, 1-indexed.
	Page int
	// Size is the number of rows per page. Size <= 0 disables pagination:
	// the whole collection is one page.
	Size int
}

// NewState returns pagination state positioned on the first page.
func NewState(size int) State {
	return State{Page: 1, Size: size}
}

// SetSize changes the page size and resets to the first page. Switching size
// mid-list would otherwise land on a confusing or empty window.
func (s *State) SetSize(size int) {
	s.Size = size
	s.Page = 1
}

// SetPage moves to the given page. Values below 1 clamp to 1; clamping
// against the upper bound happens at window time, when the row count is
// known.
func (s *State) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Page = page
}

// TotalPages returns the number of pages needed for n rows. It is always at
// least 1: an empty collection still has a single (empty) page.
func TotalPages(n, size int) int {
	if size <= 0 || n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Window returns the visible slice of rows for the requested page, the total
// page count, and the page actually shown after clamping to
// [1, TotalPages(len(rows), size)].
//
// size <= 0 means pagination is disabled and the full collection is returned
// as page 1 of 1.
func Window[T any](rows []T, page, size int) (win []T, totalPages, clampedPage int) {
	totalPages = TotalPages(len(rows), size)
	if size <= 0 {
		return rows, 1, 1
	}

	clampedPage = page
	if clampedPage < 1 {
		clampedPage = 1
	}
	if clampedPage > totalPages {
		clampedPage = totalPages
	}

	start := (clampedPage - 1) * size
	if start >= len(rows) {
		return nil, totalPages, clampedPage
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], totalPages, clampedPage
}
