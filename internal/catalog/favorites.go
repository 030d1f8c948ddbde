package catalog

import "sync"

// Favorites is a set of item ids independent of category membership. An id
// may reference an item that no longer exists anywhere; dangling ids are
// tolerated and filtered out at resolution time, not here.
type Favorites struct {
	mu    sync.RWMutex
	ids   map[string]struct{}
	order []string // insertion order, for a stable resolved view
}

// NewFavorites creates an empty favorite set.
func NewFavorites() *Favorites {
	return &Favorites{ids: make(map[string]struct{})}
}

// Toggle flips membership for the id and returns the resulting state:
// true when the id is now a favorite.
func (f *Favorites) Toggle(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.ids[id]; ok {
		delete(f.ids, id)
		f.order = remove(f.order, id)
		return false
	}
	f.ids[id] = struct{}{}
	f.order = append(f.order, id)
	return true
}

// Contains reports whether the id is currently a favorite.
func (f *Favorites) Contains(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, ok := f.ids[id]
	return ok
}

// Remove drops the id from the set. Removing an absent id is a no-op.
func (f *Favorites) Remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.ids[id]; !ok {
		return
	}
	delete(f.ids, id)
	f.order = remove(f.order, id)
}

// IDs returns the favorite ids in insertion order.
func (f *Favorites) IDs() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

func remove(ids []string, id string) []string {
	kept := ids[:0:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return kept
}
