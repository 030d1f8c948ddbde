package persist

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mstrand/cinestream/internal/logger"
	"github.com/mstrand/cinestream/internal/models"
)

// DefaultBlobKey is the single fixed key the whole persisted-entries log
// lives under.
const DefaultBlobKey = "catalog_entries"

// BlobStore is the external durable store the reconciler reads and writes.
// Its durability guarantees are outside this package's control.
type BlobStore interface {
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	Write(ctx context.Context, key, value string) error
}

// CategorySink receives reconciled memberships. Implemented by the category
// store; AddToCategory must dedupe by item id.
type CategorySink interface {
	AddToCategory(categoryID string, item models.Item) bool
}

// LoadStats summarizes one reconciliation pass.
type LoadStats struct {
	Loaded   int // entries decoded and filed
	Skipped  int // malformed entries dropped
	Mirrored int // extra "uploads" memberships created for playable items
	Reset    bool
}

// Reconciler owns the persisted-entries log: it rehydrates the category
// store on startup and records every membership mutation back to the blob
// store. Storage failures are logged and absorbed; the in-memory store stays
// authoritative for the running session.
type Reconciler struct {
	blob  BlobStore
	store CategorySink
	key   string

	mu      sync.Mutex
	entries []json.RawMessage // raw log, legacy shapes preserved as written
	log     zerolog.Logger
}

// NewReconciler creates a reconciler over the given blob store and sink,
// using the default log key.
func NewReconciler(blob BlobStore, store CategorySink) *Reconciler {
	return &Reconciler{
		blob:  blob,
		store: store,
		key:   DefaultBlobKey,
		log:   logger.With("reconciler"),
	}
}

// Load reads the persisted log and merges every entry into the category
// store. An absent or unparsable blob is a recoverable condition: the log is
// cleared and reconciliation proceeds with zero entries. Malformed entries
// are skipped individually and never abort the rest of the batch. Load is
// idempotent: the sink dedupes, so re-running it reproduces the same
// memberships.
func (r *Reconciler) Load(ctx context.Context) LoadStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stats LoadStats
	r.entries = nil

	value, ok, err := r.blob.Read(ctx, r.key)
	if err != nil {
		r.log.Warn().Err(err).Msg("Persisted log unreadable, starting empty")
		return stats
	}
	if !ok || strings.TrimSpace(value) == "" {
		return stats
	}

	var raws []json.RawMessage
	if err := json.Unmarshal([]byte(value), &raws); err != nil {
		r.log.Warn().Err(err).Msg("Persisted log corrupt, clearing it")
		stats.Reset = true
		if werr := r.blob.Write(ctx, r.key, "[]"); werr != nil {
			r.log.Error().Err(werr).Msg("Failed to clear corrupt persisted log")
		}
		return stats
	}

	r.entries = raws
	for _, raw := range raws {
		entry, ok := DecodeEntry(raw)
		if !ok {
			stats.Skipped++
			continue
		}
		r.store.AddToCategory(entry.CategoryID, entry.Item)
		stats.Loaded++

		// The "My Uploads" view must reflect all playable content no
		// matter which category it was filed under historically.
		if entry.Item.UploadQualifying() && entry.CategoryID != uploadsCategory {
			if r.store.AddToCategory(uploadsCategory, entry.Item) {
				stats.Mirrored++
			}
		}
	}

	r.log.Info().
		Int("loaded", stats.Loaded).
		Int("skipped", stats.Skipped).
		Int("mirrored", stats.Mirrored).
		Msg("Persisted catalog reconciled")

	return stats
}

// PersistAdd appends a new-format entry for the membership and writes the
// whole log back (append-only, no compaction). Upload-qualifying items filed
// outside "uploads" get a second mirrored entry so a later full reload
// reproduces the same membership.
func (r *Reconciler) PersistAdd(ctx context.Context, item models.Item, categoryID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.appendEntry(item, categoryID)
	if item.UploadQualifying() && categoryID != uploadsCategory {
		r.appendEntry(item, uploadsCategory)
	}
	r.flush(ctx)
}

// PersistRemove filters out every entry, of either shape, whose item id
// matches, and writes the filtered log back.
func (r *Reconciler) PersistRemove(ctx context.Context, itemID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0:0]
	for _, raw := range r.entries {
		if id, ok := entryItemID(raw); ok && id == itemID {
			continue
		}
		kept = append(kept, raw)
	}
	if len(kept) == len(r.entries) {
		return
	}
	r.entries = kept
	r.flush(ctx)
}

// appendEntry marshals and appends one new-format entry. Caller holds r.mu.
func (r *Reconciler) appendEntry(item models.Item, categoryID string) {
	raw, err := encodeEntry(item, categoryID)
	if err != nil {
		r.log.Error().Err(err).Str("item_id", item.ID).Msg("Failed to encode persisted entry")
		return
	}
	r.entries = append(r.entries, raw)
}

// flush writes the whole log back. Failures are logged and absorbed; the
// entries stay in memory so the next successful flush carries them. Caller
// holds r.mu.
func (r *Reconciler) flush(ctx context.Context) {
	value, err := json.Marshal(r.entries)
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to marshal persisted log")
		return
	}
	if r.entries == nil {
		value = []byte("[]")
	}
	if err := r.blob.Write(ctx, r.key, string(value)); err != nil {
		r.log.Error().Err(err).Int("entries", len(r.entries)).Msg("Failed to write persisted log")
	}
}
