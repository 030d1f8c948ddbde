package persist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstrand/cinestream/internal/models"
)

// memoryBlob is an in-memory BlobStore with switchable failure modes.
type memoryBlob struct {
	values    map[string]string
	readErr   error
	writeErr  error
	writeLog  []string
	readCalls int
}

func newMemoryBlob() *memoryBlob {
	return &memoryBlob{values: make(map[string]string)}
}

func (m *memoryBlob) Read(_ context.Context, key string) (string, bool, error) {
	m.readCalls++
	if m.readErr != nil {
		return "", false, m.readErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryBlob) Write(_ context.Context, key, value string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.values[key] = value
	m.writeLog = append(m.writeLog, value)
	return nil
}

// memorySink collects reconciled memberships with the store's dedup rule.
type memorySink struct {
	lists map[string][]models.Item
}

func newMemorySink() *memorySink {
	return &memorySink{lists: make(map[string][]models.Item)}
}

func (s *memorySink) AddToCategory(categoryID string, item models.Item) bool {
	for _, existing := range s.lists[categoryID] {
		if existing.ID == item.ID {
			return false
		}
	}
	s.lists[categoryID] = append([]models.Item{item}, s.lists[categoryID]...)
	return true
}

func (s *memorySink) ids(categoryID string) []string {
	var out []string
	for _, item := range s.lists[categoryID] {
		out = append(out, item.ID)
	}
	return out
}

func setupTestReconciler(t *testing.T) (*Reconciler, *memoryBlob, *memorySink) {
	t.Helper()
	blob := newMemoryBlob()
	sink := newMemorySink()
	return NewReconciler(blob, sink), blob, sink
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("absent blob starts empty", func(t *testing.T) {
		r, _, sink := setupTestReconciler(t)

		stats := r.Load(ctx)

		assert.Zero(t, stats.Loaded)
		assert.False(t, stats.Reset)
		assert.Empty(t, sink.lists)
	})

	t.Run("read failure starts empty", func(t *testing.T) {
		r, blob, sink := setupTestReconciler(t)
		blob.readErr = errors.New("disk gone")

		stats := r.Load(ctx)

		assert.Zero(t, stats.Loaded)
		assert.Empty(t, sink.lists)
	})

	t.Run("corrupt blob is cleared", func(t *testing.T) {
		r, blob, sink := setupTestReconciler(t)
		blob.values[DefaultBlobKey] = "{not json"

		stats := r.Load(ctx)

		assert.True(t, stats.Reset)
		assert.Zero(t, stats.Loaded)
		assert.Equal(t, "[]", blob.values[DefaultBlobKey])
		assert.Empty(t, sink.lists)
	})

	t.Run("new format entries are filed under their category", func(t *testing.T) {
		r, blob, sink := setupTestReconciler(t)
		blob.values[DefaultBlobKey] = `[
			{"item":{"id":"custom-1","title":"Quiet Fields"},"categoryId":"drama"},
			{"item":{"id":"m9","title":"Old Favorite"},"categoryId":"comedy"}
		]`

		stats := r.Load(ctx)

		assert.Equal(t, 2, stats.Loaded)
		assert.Equal(t, []string{"custom-1"}, sink.ids("drama"))
		assert.Equal(t, []string{"m9"}, sink.ids("comedy"))
	})

	t.Run("legacy bare playable item goes to uploads", func(t *testing.T) {
		r, blob, sink := setupTestReconciler(t)
		blob.values[DefaultBlobKey] = `[{"id":"upload-1","title":"Home Movie","videoUrl":"blob:abc"}]`

		stats := r.Load(ctx)

		assert.Equal(t, 1, stats.Loaded)
		assert.Equal(t, []string{"upload-1"}, sink.ids("uploads"))
		require.Len(t, sink.lists["uploads"], 1)
		assert.Equal(t, "blob:abc", sink.lists["uploads"][0].PlaybackLocator)
	})

	t.Run("legacy bare non-playable item goes to trending", func(t *testing.T) {
		r, blob, sink := setupTestReconciler(t)
		blob.values[DefaultBlobKey] = `[{"id":"m1","title":"Plain"}]`

		r.Load(ctx)

		assert.Equal(t, []string{"m1"}, sink.ids("trending"))
	})

	t.Run("playable item outside uploads is mirrored", func(t *testing.T) {
		r, blob, sink := setupTestReconciler(t)
		blob.values[DefaultBlobKey] = `[{"item":{"id":"upload-2","title":"Scare","playbackLocator":"/media/files/s.mp4"},"categoryId":"horror"}]`

		stats := r.Load(ctx)

		assert.Equal(t, 1, stats.Loaded)
		assert.Equal(t, 1, stats.Mirrored)
		assert.Equal(t, []string{"upload-2"}, sink.ids("horror"))
		assert.Equal(t, []string{"upload-2"}, sink.ids("uploads"))
	})

	t.Run("malformed entries are skipped individually", func(t *testing.T) {
		r, blob, sink := setupTestReconciler(t)
		blob.values[DefaultBlobKey] = `[
			{"item":{"title":"No ID"},"categoryId":"drama"},
			42,
			{"id":"m1","title":"Survivor"}
		]`

		stats := r.Load(ctx)

		assert.Equal(t, 1, stats.Loaded)
		assert.Equal(t, 2, stats.Skipped)
		assert.Equal(t, []string{"m1"}, sink.ids("trending"))
	})

	t.Run("legacy field names are normalized", func(t *testing.T) {
		r, blob, sink := setupTestReconciler(t)
		blob.values[DefaultBlobKey] = `[{"id":"m2","title":"Renamed","imageUrl":"p.jpg","backdropUrl":"b.jpg","duration":"2h","year":1999}]`

		r.Load(ctx)

		require.Len(t, sink.lists["trending"], 1)
		item := sink.lists["trending"][0]
		assert.Equal(t, "p.jpg", item.PosterLocator)
		assert.Equal(t, "b.jpg", item.BackdropLocator)
		assert.Equal(t, "2h", item.DurationLabel)
		assert.Equal(t, 1999, item.ReleaseYear)
	})
}

func TestPersistAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("playable item outside uploads writes two entries", func(t *testing.T) {
		r, blob, _ := setupTestReconciler(t)

		r.PersistAdd(ctx, models.Normalize(models.Item{
			ID:              "upload-7",
			Title:           "Midnight Static",
			Genres:          []string{"Horror"},
			PlaybackLocator: "/media/files/v.mp4",
			Provenance:      models.ProvenanceUpload,
		}), "horror")

		fresh := newMemorySink()
		r2 := NewReconciler(blob, fresh)
		stats := r2.Load(ctx)

		assert.Equal(t, 2, stats.Loaded)
		assert.Equal(t, []string{"upload-7"}, fresh.ids("horror"))
		assert.Equal(t, []string{"upload-7"}, fresh.ids("uploads"))
	})

	t.Run("non-playable admin item writes one entry", func(t *testing.T) {
		r, blob, _ := setupTestReconciler(t)

		r.PersistAdd(ctx, models.Normalize(models.Item{
			ID:         "custom-3",
			Title:      "Quiet Fields",
			Provenance: models.ProvenanceAdmin,
		}), "drama")

		fresh := newMemorySink()
		stats := NewReconciler(blob, fresh).Load(ctx)

		assert.Equal(t, 1, stats.Loaded)
		assert.Equal(t, []string{"custom-3"}, fresh.ids("drama"))
		assert.Empty(t, fresh.ids("uploads"))
	})

	t.Run("write failure is absorbed and retried on next flush", func(t *testing.T) {
		r, blob, _ := setupTestReconciler(t)
		blob.writeErr = errors.New("disk full")

		r.PersistAdd(ctx, models.Normalize(models.Item{ID: "m1", Title: "A"}), "trending")

		assert.Empty(t, blob.values)

		// Entries survive in memory; the next successful write carries both.
		blob.writeErr = nil
		r.PersistAdd(ctx, models.Normalize(models.Item{ID: "m2", Title: "B"}), "trending")

		fresh := newMemorySink()
		stats := NewReconciler(blob, fresh).Load(ctx)
		assert.Equal(t, 2, stats.Loaded)
	})
}

func TestPersistRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes entries of both shapes", func(t *testing.T) {
		r, blob, _ := setupTestReconciler(t)
		blob.values[DefaultBlobKey] = `[
			{"id":"upload-1","title":"Legacy","videoUrl":"blob:x"},
			{"item":{"id":"upload-1","title":"Legacy"},"categoryId":"uploads"},
			{"item":{"id":"m2","title":"Keeper"},"categoryId":"drama"}
		]`
		r.Load(ctx)

		r.PersistRemove(ctx, "upload-1")

		fresh := newMemorySink()
		stats := NewReconciler(blob, fresh).Load(ctx)
		assert.Equal(t, 1, stats.Loaded)
		assert.Equal(t, []string{"m2"}, fresh.ids("drama"))
	})

	t.Run("no-op when id is absent", func(t *testing.T) {
		r, blob, _ := setupTestReconciler(t)
		blob.values[DefaultBlobKey] = `[{"item":{"id":"m1","title":"A"},"categoryId":"drama"}]`
		r.Load(ctx)
		writes := len(blob.writeLog)

		r.PersistRemove(ctx, "missing")

		assert.Len(t, blob.writeLog, writes)
	})

	t.Run("empty log writes an empty array", func(t *testing.T) {
		r, blob, _ := setupTestReconciler(t)
		r.PersistAdd(ctx, models.Normalize(models.Item{ID: "m1", Title: "A"}), "trending")

		r.PersistRemove(ctx, "m1")

		assert.Equal(t, "[]", blob.values[DefaultBlobKey])
	})
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	r, blob, _ := setupTestReconciler(t)

	r.PersistAdd(ctx, models.Normalize(models.Item{ID: "upload-1", Title: "Clip", PlaybackLocator: "/media/files/c.mp4"}), "scifi")
	r.PersistAdd(ctx, models.Normalize(models.Item{ID: "custom-1", Title: "Entered"}), "comedy")
	r.PersistRemove(ctx, "nope")

	fresh := newMemorySink()
	NewReconciler(blob, fresh).Load(ctx)

	assert.Equal(t, []string{"upload-1"}, fresh.ids("scifi"))
	assert.Equal(t, []string{"upload-1"}, fresh.ids("uploads"))
	assert.Equal(t, []string{"custom-1"}, fresh.ids("comedy"))
}

func TestDecodeEntry(t *testing.T) {
	t.Run("wrapper without category infers one", func(t *testing.T) {
		entry, ok := DecodeEntry([]byte(`{"item":{"id":"m1","title":"A"}}`))
		require.True(t, ok)
		assert.Equal(t, "trending", entry.CategoryID)

		entry, ok = DecodeEntry([]byte(`{"item":{"id":"u1","title":"B","playbackLocator":"x"}}`))
		require.True(t, ok)
		assert.Equal(t, "uploads", entry.CategoryID)
	})

	t.Run("rejects entries without an id", func(t *testing.T) {
		_, ok := DecodeEntry([]byte(`{"title":"No ID"}`))
		assert.False(t, ok)
		_, ok = DecodeEntry([]byte(`"just a string"`))
		assert.False(t, ok)
	})

	t.Run("normalizes decoded items", func(t *testing.T) {
		entry, ok := DecodeEntry([]byte(`{"id":"m1","title":"A"}`))
		require.True(t, ok)
		assert.Equal(t, models.DefaultSynopsis, entry.Item.Synopsis)
		assert.Equal(t, models.PlaceholderPoster, entry.Item.PosterLocator)
	})
}
