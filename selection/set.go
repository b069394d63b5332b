// Package selection maintains the set of selected row identifiers
// independently of which rows are currently visible.
//
// Membership is a property of row identity, not of view position: filtering,
// sorting, or paging never changes the selection. The tracker comes in two
// flavors: an uncontrolled tracker that owns its set, and a controlled
// tracker that reads and writes state owned by the caller. Both expose the
// same toggle, select-all, and query semantics.
//
// Identifiers must be unique within the dataset. Two distinct rows sharing an
// identifier is a caller contract violation; the tracker does not detect it.
package selection

import "iter"

// Set holds row identifiers. Implementations are not safe for concurrent
// use; the view pipeline has a single logical owner.
type Set[K comparable] interface {
	// Add inserts an identifier.
	Add(id K)
	// Remove deletes an identifier.
	Remove(id K)
	// Contains reports membership.
	Contains(id K) bool
	// Toggle flips membership of a single identifier.
	Toggle(id K)
	// Len returns the number of identifiers in the set.
	Len() int
	// Clear removes all identifiers.
	Clear()
	// All iterates over the identifiers in unspecified order.
	All() iter.Seq[K]
}

// MapSet is the map-backed Set used by default for arbitrary comparable
// identifier types.
type MapSet[K comparable] struct {
	ids map[K]struct{}
}

// NewMapSet creates an empty map-backed set.
func NewMapSet[K comparable]() *MapSet[K] {
	return &MapSet[K]{ids: make(map[K]struct{})}
}

// Add inserts an identifier.
func (s *MapSet[K]) Add(id K) {
	s.ids[id] = struct{}{}
}

// Remove deletes an identifier.
func (s *MapSet[K]) Remove(id K) {
	delete(s.ids, id)
}

// Contains reports membership.
func (s *MapSet[K]) Contains(id K) bool {
	_, ok := s.ids[id]
	return ok
}

// Toggle flips membership of a single identifier.
func (s *MapSet[K]) Toggle(id K) {
	if s.Contains(id) {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
}

// Len returns the number of identifiers in the set.
func (s *MapSet[K]) Len() int {
	return len(s.ids)
}

// Clear removes all identifiers.
func (s *MapSet[K]) Clear() {
	clear(s.ids)
}

// All iterates over the identifiers in unspecified order.
func (s *MapSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for id := range s.ids {
			if !yield(id) {
				return
			}
		}
	}
}
