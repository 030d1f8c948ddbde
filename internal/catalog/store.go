// Package catalog holds the in-memory category store and the mutation surface
// built on top of it.
package catalog

import (
	"sync"

	"github.com/mstrand/cinestream/internal/models"
)

// Known category identifiers. Unknown ids referenced by persisted data are
// still created on the fly; the known set only gates strict mutations
// (admin add) and the category listing.
const (
	CategoryTrending  = "trending"
	CategoryAction    = "action"
	CategoryScifi     = "scifi"
	CategoryDrama     = "drama"
	CategoryComedy    = "comedy"
	CategoryHorror    = "horror"
	CategoryAnimation = "animation"
	CategoryUploads   = "uploads"
)

// Category is a named, ordered collection of items shown together.
type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// KnownCategories lists the externally defined category set in display order.
var KnownCategories = []Category{
	{ID: CategoryTrending, Title: "Trending Now"},
	{ID: CategoryAction, Title: "High Octane Action"},
	{ID: CategoryScifi, Title: "Sci-Fi & Cyberpunk"},
	{ID: CategoryDrama, Title: "Critically Acclaimed Dramas"},
	{ID: CategoryComedy, Title: "Comedy"},
	{ID: CategoryHorror, Title: "Horror"},
	{ID: CategoryAnimation, Title: "Animation"},
	{ID: CategoryUploads, Title: "My Uploads"},
}

// IsKnownCategory reports whether id is one of the externally defined
// category identifiers.
func IsKnownCategory(id string) bool {
	for _, c := range KnownCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Store maps category ids to ordered item lists (most recently added first).
// It is constructed once at process start and passed by handle to every
// component that needs it. All operations are safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	lists map[string][]models.Item
	order []string // category ids in creation order, for deterministic iteration
}

// NewStore creates an empty store with the known categories pre-registered
// in display order.
func NewStore() *Store {
	s := &Store{
		lists: make(map[string][]models.Item),
	}
	for _, c := range KnownCategories {
		s.lists[c.ID] = nil
		s.order = append(s.order, c.ID)
	}
	return s
}

// AddToCategory prepends item to the category's list iff no existing item in
// that list has the same id. The category list is created if it does not
// exist. Returns true when the item was inserted.
func (s *Store) AddToCategory(categoryID string, item models.Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[categoryID]
	if !ok {
		s.order = append(s.order, categoryID)
	}
	for _, existing := range list {
		if existing.ID == item.ID {
			return false
		}
	}
	s.lists[categoryID] = append([]models.Item{item}, list...)
	return true
}

// RemoveItem removes the item with the given id from every category's list.
// Removing a non-existent id is a no-op. Returns the number of category lists
// the item was removed from.
func (s *Store) RemoveItem(itemID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, list := range s.lists {
		kept := list[:0:0]
		for _, item := range list {
			if item.ID == itemID {
				removed++
				continue
			}
			kept = append(kept, item)
		}
		s.lists[id] = kept
	}
	return removed
}

// Category returns a copy of the ordered list for the category, or an empty
// list if the category is absent.
func (s *Store) Category(categoryID string) []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.lists[categoryID]
	out := make([]models.Item, len(list))
	copy(out, list)
	return out
}

// AllItems returns the union of all items across all categories,
// deduplicated by id. Order is deterministic: category creation order, then
// list order, first occurrence wins.
func (s *Store) AllItems() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []models.Item
	for _, categoryID := range s.order {
		for _, item := range s.lists[categoryID] {
			if _, ok := seen[item.ID]; ok {
				continue
			}
			seen[item.ID] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Contains reports whether any category holds an item with the given id.
func (s *Store) Contains(itemID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, list := range s.lists {
		for _, item := range list {
			if item.ID == itemID {
				return true
			}
		}
	}
	return false
}

// CategoryIDs returns every category id the store currently tracks, in
// creation order. Includes categories created on the fly by persisted data.
func (s *Store) CategoryIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
