package bloqs

import (
	"bytes"
	"io"
	"slices"
	"sync"
)

// ResolveFunc maps an interactive identifier to the fragment it stands for.
type ResolveFunc func(id string) (Fragment, error)

// Registry collects interactive resource identifiers declared by
// independently built sub-blocks and emits them once at final assembly.
//
// Identifiers are resolved when they are registered, so an unknown
// identifier fails at the call site and flushing only renders. Registration
// keeps duplicates; flushing deduplicates in first registration order and
// clears the registry.
type Registry struct {
	mu      sync.Mutex
	entries []entry
	gen     uint64 // bumped whenever entries are removed
	resolve ResolveFunc
}

type entry struct {
	id   string
	frag Fragment
}

// NewRegistry creates an empty registry that resolves identifiers with resolve.
func NewRegistry(resolve ResolveFunc) *Registry {
	return &Registry{resolve: resolve}
}

// Register resolves ids and appends them. Duplicates are allowed and an id
// already pending is not resolved again. If any id fails to resolve,
// nothing is registered and the error is returned.
func (r *Registry) Register(ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	known := r.fragments()
	added := make([]entry, 0, len(ids))
	for _, id := range ids {
		frag, ok := known[id]
		if !ok {
			var err error
			if frag, err = r.resolve(id); err != nil {
				return err
			}
			known[id] = frag
		}
		added = append(added, entry{id: id, frag: frag})
	}

	r.mu.Lock()
	r.entries = append(r.entries, added...)
	r.mu.Unlock()
	return nil
}

// fragments returns the first fragment registered for each pending id.
func (r *Registry) fragments() map[string]Fragment {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := make(map[string]Fragment, len(r.entries))
	for _, e := range r.entries {
		if _, ok := m[e.id]; !ok {
			m[e.id] = e.frag
		}
	}
	return m
}

// Len returns the number of registrations, duplicates included.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Pending returns the distinct registered ids in first registration order.
func (r *Registry) Pending() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return entryIDs(uniqueEntries(r.entries))
}

// Drain returns the pending ids and clears the registry without rendering.
func (r *Registry) Drain() []string {
	return entryIDs(r.drain())
}

func (r *Registry) drain() []entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	pending := uniqueEntries(r.entries)
	r.entries = nil
	r.gen++
	return pending
}

// Reset clears the registry without rendering.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.gen++
	r.mu.Unlock()
}

// WriteTo renders every pending fragment into w, then clears the entries
// it rendered. Entries registered while rendering are kept for the next
// flush. If a fragment fails to render, nothing is written and the
// registry is left as it was. An empty registry writes nothing.
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	r.mu.Lock()
	snapshot := slices.Clone(r.entries)
	gen := r.gen
	r.mu.Unlock()

	if len(snapshot) == 0 {
		return 0, nil
	}

	var buf bytes.Buffer
	pending := uniqueEntries(snapshot)
	for _, e := range pending {
		if _, err := e.frag.WriteTo(&buf); err != nil {
			return 0, err
		}
	}

	// Entries are only appended while gen is unchanged, so the snapshot
	// is still their prefix. After a Reset or Drain there is nothing of
	// the snapshot left to remove.
	r.mu.Lock()
	if r.gen == gen {
		r.entries = slices.Clone(r.entries[len(snapshot):])
		r.gen++
	}
	r.mu.Unlock()

	Logger().Debug("interactive resources flushed", "count", len(pending), "bytes", buf.Len())
	return buf.WriteTo(w)
}

// Flush renders the pending resources into a single fragment and clears
// the registry. An empty registry yields "".
func (r *Registry) Flush() (string, error) {
	var b bytes.Buffer
	if _, err := r.WriteTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func uniqueEntries(entries []entry) []entry {
	seen := NewDependencyTracker[string]()
	unique := make([]entry, 0, len(entries))
	for _, e := range entries {
		if seen.Contains(e.id) {
			continue
		}
		seen.Add(e.id)
		unique = append(unique, e)
	}
	return unique
}

func entryIDs(entries []entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}
	return ids
}
