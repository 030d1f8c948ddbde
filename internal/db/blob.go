package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm/clause"

	"github.com/mstrand/cinestream/internal/models"
)

// BlobRepository handles database operations for persisted key/value blobs.
// It satisfies the reconciler's BlobStore interface.
type BlobRepository struct {
	db *DB
}

// NewBlobRepository creates a new blob repository
func NewBlobRepository(db *DB) *BlobRepository {
	return &BlobRepository{db: db}
}

// Read returns the value stored under key. ok is false when the key is
// absent; that is not an error.
func (r *BlobRepository) Read(ctx context.Context, key string) (string, bool, error) {
	var blob models.CatalogBlob
	result := r.db.WithContext(ctx).Where("key = ?", key).First(&blob)
	if result.Error != nil {
		if errors.Is(MapGormError(result.Error), ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read blob %q: %w", key, MapGormError(result.Error))
	}
	return blob.Value, true, nil
}

// Write upserts the value under key.
func (r *BlobRepository) Write(ctx context.Context, key, value string) error {
	blob := models.CatalogBlob{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob)
	if result.Error != nil {
		return fmt.Errorf("failed to write blob %q: %w", key, MapGormError(result.Error))
	}
	return nil
}

// Delete removes the key. Deleting an absent key is a no-op.
func (r *BlobRepository) Delete(ctx context.Context, key string) error {
	result := r.db.WithContext(ctx).Where("key = ?", key).Delete(&models.CatalogBlob{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete blob %q: %w", key, MapGormError(result.Error))
	}
	return nil
}
