// Package sorting orders a row collection by a single column.
//
// Sorting is stable and never mutates its input. Descending order inverts
// the comparator while keeping the sort stable, so rows that compare equal
// keep their ascending relative order in both directions. Only one column is
// sorted at a time.
package sorting

import (
	"fmt"
	"slices"
)

// Direction specifies the direction of a sort.
type Direction int

const (
	// None indicates no active sort; rows keep their natural order.
	None Direction = iota
	// Ascending indicates ascending sort order.
	Ascending
	// Descending indicates descending sort order.
	Descending
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("unknown(%d)", d)
	}
}

// State is the current sorting configuration. The zero value means no sort.
// Invariant: Direction None implies Key "" and vice versa.
type State struct {
	// Key is the sorted column key ("" if unsorted).
	Key string
	// Direction is the sort direction.
	Direction Direction
}

// IsSorted returns true if the state represents an active sort.
func (s State) IsSorted() bool {
	return s.Key != "" && s.Direction != None
}

// Cycle returns the state after selecting key. Reselecting the active column
// advances ascending -> descending -> none (natural order); selecting a
// different column starts ascending on that column.
func (s State) Cycle(key string) State {
	if s.Key != key {
		return State{Key: key, Direction: Ascending}
	}
	switch s.Direction {
	case Ascending:
		return State{Key: key, Direction: Descending}
	case Descending:
		return State{}
	default:
		return State{Key: key, Direction: Ascending}
	}
}

// Apply returns a newly ordered copy of rows per cmp and dir. The input is
// never mutated. When dir is None (or cmp is nil) the input slice itself is
// returned, preserving natural order.
//
// The sort is stable in both directions: descending inverts the comparator
// rather than reversing the sequence, so rows that compare equal retain
// their ascending relative order. This tie-break is a deliberate, observable
// guarantee, not an implementation accident.
func Apply[T any](rows []T, cmp func(a, b T) int, dir Direction) []T {
	if dir == None || cmp == nil {
		return rows
	}

	out := make([]T, len(rows))
	copy(out, rows)
	if dir == Descending {
		slices.SortStableFunc(out, func(a, b T) int { return cmp(b, a) })
	} else {
		slices.SortStableFunc(out, cmp)
	}
	return out
}
