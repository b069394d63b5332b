// Package search reduces a row collection to the rows matching a free-text
// query.
//
// Matching is intentionally simple: a case-insensitive substring test against
// the string rendering of every row field. There is no ranking and no fuzzy
// matching; the result preserves the input order. Callers that need different
// semantics supply a Predicate, which fully replaces the field scan.
package search

import (
	"fmt"
	"strings"

	"github.com/tablekit/tablekit/internal/fieldref"
)

// Predicate reports whether a row matches a query. The query passed to the
// predicate is already lowercased. A predicate that panics propagates to the
// caller unmodified.
type Predicate[T any] func(row T, query string) bool

// Apply returns the subset of rows matching query, in input order.
//
// An empty or whitespace-only query returns the input slice itself, not a
// copy; callers can rely on this identity to skip downstream work. When pred
// is nil the default field scan is used.
func Apply[T any](rows []T, query string, pred Predicate[T]) []T {
	if strings.TrimSpace(query) == "" {
		return rows
	}
	if pred == nil {
		pred = Default[T]()
	}

	lowered := strings.ToLower(query)
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if pred(row, lowered) {
			out = append(out, row)
		}
	}
	return out
}

// Default returns the standard predicate: the row matches if any of its own
// field values, rendered as text, contains the lowercased query.
func Default[T any]() Predicate[T] {
	return func(row T, query string) bool {
		for _, v := range fieldref.Fields(row) {
			if v == nil {
				continue
			}
			if strings.Contains(strings.ToLower(fmt.Sprintf("%v", v)), query) {
				return true
			}
		}
		return false
	}
}

// And combines predicates so that all must match. Evaluation short-circuits
// on the first failure. An empty combinator matches every row.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(row T, query string) bool {
		for _, p := range preds {
			if !p(row, query) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates so that at least one must match. Evaluation
// short-circuits on the first success. An empty combinator matches no row.
func Or[T any](preds ...Predicate[T]) Predicate[T] {
	return func(row T, query string) bool {
		for _, p := range preds {
			if p(row, query) {
				return true
			}
		}
		return false
	}
}
