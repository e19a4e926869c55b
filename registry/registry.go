// Package registry provides the engine's name and id indexed entity
// collections: the generic named registry used for textures, fonts and
// sounds, the object registry, and object templates.
package registry

// Registry is an append-ordered, name-keyed collection. Duplicate
// names are allowed; name lookups resolve to the earliest inserted
// entry still present (first-match-by-name). Name comparison is exact,
// byte-wise equality.
type Registry[T comparable] struct {
	entries []*entry[T]
	byName  map[string][]*entry[T]
	destroy func(T)
}

type entry[T comparable] struct {
	name string
	item T
}

// New creates an empty registry. destroy, if non-nil, runs once for
// every entry released by Clear.
func New[T comparable](destroy func(T)) *Registry[T] {
	return &Registry[T]{
		byName:  make(map[string][]*entry[T]),
		destroy: destroy,
	}
}

// Insert appends an item under name. It always succeeds; inserting a
// second item under an existing name shadows nothing, the older entry
// keeps winning name lookups.
func (r *Registry[T]) Insert(name string, item T) {
	e := &entry[T]{name: name, item: item}
	r.entries = append(r.entries, e)
	r.byName[name] = append(r.byName[name], e)
}

// Find returns the first entry inserted under name.
func (r *Registry[T]) Find(name string) (T, bool) {
	if es := r.byName[name]; len(es) > 0 {
		return es[0].item, true
	}
	var zero T
	return zero, false
}

// All returns every item inserted under name, oldest first.
func (r *Registry[T]) All(name string) []T {
	es := r.byName[name]
	if len(es) == 0 {
		return nil
	}
	items := make([]T, len(es))
	for i, e := range es {
		items[i] = e.item
	}
	return items
}

// Has reports whether any entry exists under name.
func (r *Registry[T]) Has(name string) bool {
	return len(r.byName[name]) > 0
}

// RemoveFirst removes the earliest entry inserted under name. Removing
// an absent name is a no-op, not an error.
func (r *Registry[T]) RemoveFirst(name string) {
	es := r.byName[name]
	if len(es) == 0 {
		return
	}
	target := es[0]
	if len(es) == 1 {
		delete(r.byName, name)
	} else {
		r.byName[name] = es[1:]
	}
	r.dropEntry(target)
}

// RemoveAll removes every entry inserted under name.
func (r *Registry[T]) RemoveAll(name string) {
	es := r.byName[name]
	if len(es) == 0 {
		return
	}
	delete(r.byName, name)
	doomed := make(map[*entry[T]]struct{}, len(es))
	for _, e := range es {
		doomed[e] = struct{}{}
	}
	kept := r.entries[:0]
	for _, e := range r.entries {
		if _, gone := doomed[e]; !gone {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}

// RemoveItem removes the entry holding exactly this item, if present.
// Reports whether an entry was removed.
func (r *Registry[T]) RemoveItem(item T) bool {
	for _, e := range r.entries {
		if e.item != item {
			continue
		}
		es := r.byName[e.name]
		for i, cand := range es {
			if cand == e {
				if len(es) == 1 {
					delete(r.byName, e.name)
				} else {
					r.byName[e.name] = append(es[:i:i], es[i+1:]...)
				}
				break
			}
		}
		r.dropEntry(e)
		return true
	}
	return false
}

// Clear releases every entry, running the destructor on each, and
// leaves the registry in the same state as freshly created.
func (r *Registry[T]) Clear() {
	if r.destroy != nil {
		for _, e := range r.entries {
			r.destroy(e.item)
		}
	}
	r.entries = nil
	r.byName = make(map[string][]*entry[T])
}

// Len returns the number of entries.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}

// Each visits every entry in insertion order.
func (r *Registry[T]) Each(fn func(name string, item T)) {
	for _, e := range r.entries {
		fn(e.name, e.item)
	}
}

// dropEntry removes e from the ordered entry list. The name index must
// already have been updated by the caller.
func (r *Registry[T]) dropEntry(target *entry[T]) {
	for i, e := range r.entries {
		if e == target {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}
