package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mstrand/cinestream/internal/logger"
	"github.com/mstrand/cinestream/internal/models"
)

// genreCategories routes an item's first genre to a category id when
// auto-filing uploads. Unrecognized genres fall back to "trending".
var genreCategories = map[string]string{
	"action":           CategoryAction,
	"adventure":        CategoryAction,
	"crime":            CategoryAction,
	"thriller":         CategoryAction,
	"post-apocalyptic": CategoryAction,
	"sci-fi":           CategoryScifi,
	"scifi":            CategoryScifi,
	"cyberpunk":        CategoryScifi,
	"tech":             CategoryScifi,
	"drama":            CategoryDrama,
	"music":            CategoryDrama,
	"family":           CategoryDrama,
	"comedy":           CategoryComedy,
	"horror":           CategoryHorror,
	"mystery":          CategoryHorror,
	"animation":        CategoryAnimation,
}

// CategoryForGenre returns the category id an item with the given leading
// genre is auto-filed under.
func CategoryForGenre(genre string) string {
	if id, ok := genreCategories[strings.ToLower(strings.TrimSpace(genre))]; ok {
		return id
	}
	return CategoryTrending
}

// Persister records membership mutations to durable storage. Failures are
// the persister's to log and absorb; the in-memory store stays authoritative.
type Persister interface {
	PersistAdd(ctx context.Context, item models.Item, categoryID string)
	PersistRemove(ctx context.Context, itemID string)
}

// Service is the catalog mutation surface. Every mutation updates the store
// and favorite set in memory first, then records the delta with the
// persister.
type Service struct {
	store     *Store
	favorites *Favorites
	persister Persister
	log       zerolog.Logger

	mu         sync.Mutex
	selectedID string
}

// NewService wires the mutation surface over an existing store and favorite
// set. persister may be nil (session-only catalog, used in tests).
func NewService(store *Store, favorites *Favorites, persister Persister) *Service {
	return &Service{
		store:     store,
		favorites: favorites,
		persister: persister,
		log:       logger.With("catalog"),
	}
}

// Store returns the underlying category store handle.
func (s *Service) Store() *Store {
	return s.store
}

// FavoriteSet returns the underlying favorite set handle.
func (s *Service) FavoriteSet() *Favorites {
	return s.favorites
}

// UploadItem files a user upload: into "uploads" unconditionally and into
// the category derived from its leading genre, persisting both memberships.
func (s *Service) UploadItem(ctx context.Context, raw models.Item) models.Item {
	item := models.Normalize(raw)
	if item.ID == "" {
		item.ID = models.NewUploadID()
	}
	item.Provenance = models.ProvenanceUpload

	target := CategoryForGenre(item.Genres[0])
	s.store.AddToCategory(CategoryUploads, item)
	if target != CategoryUploads {
		s.store.AddToCategory(target, item)
	}

	if s.persister != nil {
		// The persister mirrors an "uploads" entry for qualifying items,
		// so one call records both memberships.
		s.persister.PersistAdd(ctx, item, target)
	}

	s.log.Info().
		Str("item_id", item.ID).
		Str("title", item.Title).
		Str("category", target).
		Msg("Upload filed")

	return item
}

// AdminAddItem adds an item to the caller-specified category. Category ids
// outside the known set are rejected with ErrUnknownCategory and the store
// is left untouched. Upload-qualifying items are additionally filed into
// "uploads".
func (s *Service) AdminAddItem(ctx context.Context, raw models.Item, categoryID string) (models.Item, error) {
	if !IsKnownCategory(categoryID) {
		return models.Item{}, ErrUnknownCategory
	}

	item := models.Normalize(raw)
	if item.PlaybackLocator != "" {
		if item.ID == "" {
			item.ID = models.NewUploadID()
		}
		item.Provenance = models.ProvenanceUpload
	} else {
		if item.ID == "" {
			item.ID = models.NewAdminID()
		}
		item.Provenance = models.ProvenanceAdmin
	}

	s.store.AddToCategory(categoryID, item)
	if item.UploadQualifying() && categoryID != CategoryUploads {
		s.store.AddToCategory(CategoryUploads, item)
	}

	if s.persister != nil {
		s.persister.PersistAdd(ctx, item, categoryID)
	}

	s.log.Info().
		Str("item_id", item.ID).
		Str("title", item.Title).
		Str("category", categoryID).
		Msg("Admin item added")

	return item, nil
}

// DeleteItem removes the item from every category, from the favorite set,
// clears the selection if it was the open item, and drops it from the
// persisted log. Deleting an unknown id is a no-op.
func (s *Service) DeleteItem(ctx context.Context, itemID string) {
	removed := s.store.RemoveItem(itemID)
	s.favorites.Remove(itemID)

	s.mu.Lock()
	if s.selectedID == itemID {
		s.selectedID = ""
	}
	s.mu.Unlock()

	if s.persister != nil {
		s.persister.PersistRemove(ctx, itemID)
	}

	s.log.Info().
		Str("item_id", itemID).
		Int("categories", removed).
		Msg("Item deleted")
}

// ToggleFavorite flips favorite membership for the id and returns the
// resulting state.
func (s *Service) ToggleFavorite(itemID string) bool {
	return s.favorites.Toggle(itemID)
}

// Select records the currently open item.
func (s *Service) Select(itemID string) {
	s.mu.Lock()
	s.selectedID = itemID
	s.mu.Unlock()
}

// Selected returns the currently open item id, or empty when nothing is open.
func (s *Service) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}
