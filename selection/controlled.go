package selection

// Controlled is the Tracker for caller-owned selection state. It never
// retains a copy: every query rebuilds from Snapshot and every mutation
// reports the new selection through OnChange, leaving the caller to store it.
type Controlled[T any, K comparable] struct {
	keyFn    KeyFunc[T, K]
	snapshot func() []K
	onChange func([]K)
}

// NewControlled creates a controlled tracker. snapshot returns the current
// caller-owned selection; onChange is invoked with the full new selection on
// every mutation. Both must be non-nil.
func NewControlled[T any, K comparable](keyFn KeyFunc[T, K], snapshot func() []K, onChange func([]K)) *Controlled[T, K] {
	return &Controlled[T, K]{keyFn: keyFn, snapshot: snapshot, onChange: onChange}
}

func (c *Controlled[T, K]) current() map[K]struct{} {
	ids := c.snapshot()
	m := make(map[K]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

// Toggle implements Tracker.
func (c *Controlled[T, K]) Toggle(id K) {
	cur := c.snapshot()
	if _, ok := c.current()[id]; ok {
		next := make([]K, 0, len(cur)-1)
		for _, v := range cur {
			if v != id {
				next = append(next, v)
			}
		}
		c.onChange(next)
		return
	}
	next := make([]K, len(cur), len(cur)+1)
	copy(next, cur)
	c.onChange(append(next, id))
}

// SelectAllVisible implements Tracker.
func (c *Controlled[T, K]) SelectAllVisible(visible []T) {
	cur := c.snapshot()
	m := make(map[K]struct{}, len(cur))
	for _, id := range cur {
		m[id] = struct{}{}
	}

	if allSelected(visible, c.keyFn, func(id K) bool { _, ok := m[id]; return ok }) {
		drop := make(map[K]struct{}, len(visible))
		for _, row := range visible {
			drop[c.keyFn(row)] = struct{}{}
		}
		next := make([]K, 0, len(cur))
		for _, id := range cur {
			if _, ok := drop[id]; !ok {
				next = append(next, id)
			}
		}
		c.onChange(next)
		return
	}

	next := make([]K, len(cur))
	copy(next, cur)
	for _, row := range visible {
		id := c.keyFn(row)
		if _, ok := m[id]; !ok {
			next = append(next, id)
			m[id] = struct{}{}
		}
	}
	c.onChange(next)
}

// AllSelected implements Tracker.
func (c *Controlled[T, K]) AllSelected(visible []T) bool {
	m := c.current()
	return allSelected(visible, c.keyFn, func(id K) bool { _, ok := m[id]; return ok })
}

// SomeSelected implements Tracker.
func (c *Controlled[T, K]) SomeSelected(visible []T) bool {
	m := c.current()
	return someSelected(visible, c.keyFn, func(id K) bool { _, ok := m[id]; return ok })
}

// IsSelected implements Tracker.
func (c *Controlled[T, K]) IsSelected(id K) bool {
	_, ok := c.current()[id]
	return ok
}

// Selected implements Tracker.
func (c *Controlled[T, K]) Selected() []K {
	return c.snapshot()
}

// Count implements Tracker.
func (c *Controlled[T, K]) Count() int {
	return len(c.snapshot())
}

// Clear implements Tracker.
func (c *Controlled[T, K]) Clear() {
	c.onChange(nil)
}
