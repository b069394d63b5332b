package tablekit

import "errors"

// Common errors returned by the tablekit package.
var (
	// ErrColumnNotFound is returned when a sort references an unknown column key.
	ErrColumnNotFound = errors.New("column not found")

	// ErrColumnNotSortable is returned when a sort references a column whose
	// descriptor is not marked sortable.
	ErrColumnNotSortable = errors.New("column not sortable")

	// ErrInvalidPageSize is returned when a positive page size is required.
	ErrInvalidPageSize = errors.New("page size must be positive")

	// ErrNilKeyFunc is returned when a table is constructed without a row key
	// accessor.
	ErrNilKeyFunc = errors.New("key function is nil")
)
