package selection

// KeyFunc extracts the unique identifier from a row. The identifier must be
// stable and unique within the dataset.
type KeyFunc[T any, K comparable] func(row T) K

// Tracker maintains selection state keyed by row identity. The two
// implementations, Local (the tracker owns its set) and Controlled (the
// caller owns the state), expose identical semantics.
type Tracker[T any, K comparable] interface {
	// Toggle flips membership of a single identifier.
	Toggle(id K)

	// SelectAllVisible acts as the select-all checkbox over the visible
	// window: if every visible row is already selected it deselects exactly
	// those rows, otherwise it selects every visible row. Selections outside
	// the window are untouched either way.
	SelectAllVisible(visible []T)

	// AllSelected reports whether visible is non-empty and every visible row
	// is selected.
	AllSelected(visible []T) bool

	// SomeSelected reports whether at least one but not all visible rows are
	// selected. This drives the indeterminate display state of a select-all
	// control.
	SomeSelected(visible []T) bool

	// IsSelected reports membership of a single identifier.
	IsSelected(id K) bool

	// Selected returns the selected identifiers in unspecified order.
	Selected() []K

	// Count returns the number of selected identifiers.
	Count() int

	// Clear deselects everything.
	Clear()
}

// Local is the uncontrolled Tracker: it owns its Set.
type Local[T any, K comparable] struct {
	keyFn KeyFunc[T, K]
	set   Set[K]
}

// NewTracker creates an uncontrolled tracker backed by a MapSet.
func NewTracker[T any, K comparable](keyFn KeyFunc[T, K]) *Local[T, K] {
	return NewTrackerWithSet(keyFn, NewMapSet[K]())
}

// NewTrackerWithSet creates an uncontrolled tracker backed by the given set,
// e.g. a Bitmap for dense uint32 identifiers.
func NewTrackerWithSet[T any, K comparable](keyFn KeyFunc[T, K], set Set[K]) *Local[T, K] {
	return &Local[T, K]{keyFn: keyFn, set: set}
}

// Toggle implements Tracker.
func (l *Local[T, K]) Toggle(id K) {
	l.set.Toggle(id)
}

// SelectAllVisible implements Tracker.
func (l *Local[T, K]) SelectAllVisible(visible []T) {
	if l.AllSelected(visible) {
		for _, row := range visible {
			l.set.Remove(l.keyFn(row))
		}
		return
	}
	for _, row := range visible {
		l.set.Add(l.keyFn(row))
	}
}

// AllSelected implements Tracker.
func (l *Local[T, K]) AllSelected(visible []T) bool {
	return allSelected(visible, l.keyFn, l.set.Contains)
}

// SomeSelected implements Tracker.
func (l *Local[T, K]) SomeSelected(visible []T) bool {
	return someSelected(visible, l.keyFn, l.set.Contains)
}

// IsSelected implements Tracker.
func (l *Local[T, K]) IsSelected(id K) bool {
	return l.set.Contains(id)
}

// Selected implements Tracker.
func (l *Local[T, K]) Selected() []K {
	out := make([]K, 0, l.set.Len())
	for id := range l.set.All() {
		out = append(out, id)
	}
	return out
}

// Count implements Tracker.
func (l *Local[T, K]) Count() int {
	return l.set.Len()
}

// Clear implements Tracker.
func (l *Local[T, K]) Clear() {
	l.set.Clear()
}

func allSelected[T any, K comparable](visible []T, keyFn KeyFunc[T, K], contains func(K) bool) bool {
	if len(visible) == 0 {
		return false
	}
	for _, row := range visible {
		if !contains(keyFn(row)) {
			return false
		}
	}
	return true
}

func someSelected[T any, K comparable](visible []T, keyFn KeyFunc[T, K], contains func(K) bool) bool {
	n := 0
	for _, row := range visible {
		if contains(keyFn(row)) {
			n++
		}
	}
	return n > 0 && n < len(visible)
}
