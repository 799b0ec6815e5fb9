package bloqs

import (
	"iter"
	"slices"
)

// DependencyTracker is an insertion-ordered set of resource identifiers.
// Each identifier is kept once, in the order it was first added.
// The zero value is ready to use.
type DependencyTracker[K comparable] struct {
	order []K
	seen  map[K]struct{}
}

// NewDependencyTracker creates a tracker holding the distinct ids.
func NewDependencyTracker[K comparable](ids ...K) *DependencyTracker[K] {
	t := &DependencyTracker[K]{}
	return t.Add(ids...)
}

// Add appends the ids not already present and returns t.
func (t *DependencyTracker[K]) Add(ids ...K) *DependencyTracker[K] {
	if t.seen == nil {
		t.seen = make(map[K]struct{}, len(ids))
	}
	for _, id := range ids {
		if _, ok := t.seen[id]; ok {
			continue
		}
		t.seen[id] = struct{}{}
		t.order = append(t.order, id)
	}
	return t
}

// Contains reports whether id has been added.
func (t *DependencyTracker[K]) Contains(id K) bool {
	_, ok := t.seen[id]
	return ok
}

// Len returns the number of distinct ids.
func (t *DependencyTracker[K]) Len() int {
	return len(t.order)
}

// All iterates the ids in first-seen order.
func (t *DependencyTracker[K]) All() iter.Seq[K] {
	return slices.Values(t.order)
}

// Slice returns a copy of the ids in first-seen order.
func (t *DependencyTracker[K]) Slice() []K {
	return slices.Clone(t.order)
}

// Set returns the ids as an unordered set.
func (t *DependencyTracker[K]) Set() map[K]struct{} {
	set := make(map[K]struct{}, len(t.order))
	for _, id := range t.order {
		set[id] = struct{}{}
	}
	return set
}
