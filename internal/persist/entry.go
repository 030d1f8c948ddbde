// Package persist translates between the in-memory category store and the
// externally durable persisted-entries log, tolerating historical format
// drift.
package persist

import (
	"encoding/json"

	"github.com/mstrand/cinestream/internal/models"
)

// Category ids the reconciler routes to. Kept as local constants so the
// package stays decoupled from the store's category registry.
const (
	uploadsCategory  = "uploads"
	trendingCategory = "trending"
)

// Entry is the canonical persisted shape: one entry per (item, category)
// membership the user or admin caused to exist.
type Entry struct {
	Item       models.Item `json:"item"`
	CategoryID string      `json:"categoryId"`
}

// rawItem accepts both the canonical field names and the legacy ones older
// revisions persisted (imageUrl/backdropUrl/videoUrl/duration/year).
type rawItem struct {
	models.Item
	ImageURL    string `json:"imageUrl"`
	BackdropURL string `json:"backdropUrl"`
	VideoURL    string `json:"videoUrl"`
	Duration    string `json:"duration"`
	Year        int    `json:"year"`
}

// canonical maps legacy aliases onto the canonical fields when those are
// empty, then lets Normalize fill whatever is still missing.
func (r rawItem) canonical() models.Item {
	item := r.Item
	if item.PosterLocator == "" {
		item.PosterLocator = r.ImageURL
	}
	if item.BackdropLocator == "" {
		item.BackdropLocator = r.BackdropURL
	}
	if item.PlaybackLocator == "" {
		item.PlaybackLocator = r.VideoURL
	}
	if item.DurationLabel == "" {
		item.DurationLabel = r.Duration
	}
	if item.ReleaseYear == 0 {
		item.ReleaseYear = r.Year
	}
	return models.Normalize(item)
}

// DecodeEntry normalizes one raw persisted entry into the canonical shape.
// It accepts the new format ({item, categoryId}) and the legacy bare-item
// format; a bare item is filed under "uploads" when it carries a playback
// locator, else "trending". Entries with no item id are rejected.
func DecodeEntry(raw json.RawMessage) (Entry, bool) {
	var wrapped struct {
		Item       *rawItem `json:"item"`
		CategoryID string   `json:"categoryId"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Item != nil && wrapped.Item.ID != "" {
		item := wrapped.Item.canonical()
		categoryID := wrapped.CategoryID
		if categoryID == "" {
			categoryID = inferCategory(item)
		}
		return Entry{Item: item, CategoryID: categoryID}, true
	}

	var bare rawItem
	if err := json.Unmarshal(raw, &bare); err == nil && bare.ID != "" {
		item := bare.canonical()
		return Entry{Item: item, CategoryID: inferCategory(item)}, true
	}

	return Entry{}, false
}

func inferCategory(item models.Item) string {
	if item.PlaybackLocator != "" {
		return uploadsCategory
	}
	return trendingCategory
}

// encodeEntry marshals a new-format entry. Marshaling a plain struct cannot
// fail here; the error path exists for completeness.
func encodeEntry(item models.Item, categoryID string) (json.RawMessage, error) {
	return json.Marshal(Entry{Item: item, CategoryID: categoryID})
}

// entryItemID extracts the item id from a raw entry of either shape.
func entryItemID(raw json.RawMessage) (string, bool) {
	entry, ok := DecodeEntry(raw)
	if !ok {
		return "", false
	}
	return entry.Item.ID, true
}
