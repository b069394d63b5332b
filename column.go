package tablekit

import (
	"fmt"

	"github.com/tablekit/tablekit/internal/fieldref"
	"github.com/tablekit/tablekit/sorting"
)

// Column describes how a row field participates in sorting and rendering.
// Key must address a field reachable on every row; when no accessor or
// comparator is supplied the field is read by name and compared with generic
// ordering (missing values sort below all defined values).
type Column[T any] struct {
	// Key is the field name this column maps to.
	Key string

	// Sortable marks the column as eligible for sorting.
	Sortable bool

	// Compare, if set, fully replaces the default comparator. It is called
	// with two full rows and must return negative/zero/positive. A comparator
	// that panics propagates to the caller unmodified.
	Compare func(a, b T) int

	// Value, if set, replaces the by-name field read for this column. Useful
	// for computed columns or row types reflection cannot address.
	Value func(row T) any

	// Render, if set, maps a row to this column's display text. The core
	// never calls it on its own; View.Cell exposes it to the presentation
	// shell.
	Render func(row T) string
}

// value reads the column's raw value off a row.
func (c Column[T]) value(row T) any {
	if c.Value != nil {
		return c.Value(row)
	}
	v, ok := fieldref.Lookup(row, c.Key)
	if !ok {
		return nil
	}
	return v
}

// comparator resolves the comparator for this column: Compare if present,
// otherwise generic ordering over the column's raw value.
func (c Column[T]) comparator() func(a, b T) int {
	if c.Compare != nil {
		return c.Compare
	}
	if c.Value != nil {
		return func(a, b T) int {
			return sorting.CompareValues(c.Value(a), c.Value(b))
		}
	}
	return sorting.FieldComparator[T](c.Key)
}

// cell renders the column's display text for a row: Render if present,
// otherwise the default text rendering of the raw value.
func (c Column[T]) cell(row T) string {
	if c.Render != nil {
		return c.Render(row)
	}
	v := c.value(row)
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
