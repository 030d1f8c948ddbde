// Package models defines the catalog's core data records.
package models

import (
	"strings"

	"github.com/google/uuid"
)

// Provenance classifies where a catalog item came from. It is set explicitly at
// creation time; the legacy id-prefix convention ("upload-", "custom-") is only
// consulted when classifying records that predate the field.
type Provenance string

const (
	ProvenanceCatalog   Provenance = "catalog"
	ProvenanceUpload    Provenance = "upload"
	ProvenanceAdmin     Provenance = "admin"
	ProvenanceGenerated Provenance = "generated"
)

// Legacy id prefixes, still emitted for new ids so persisted data stays
// readable by older revisions.
const (
	UploadIDPrefix = "upload-"
	AdminIDPrefix  = "custom-"
)

// Default values substituted by Normalize when a field is absent.
const (
	DefaultSynopsis      = "No synopsis provided."
	DefaultDirector      = "Unknown"
	DefaultDurationLabel = "Unknown"
	DefaultGenre         = "Indie"
	DefaultMatchScore    = 80
	PlaceholderPoster    = "https://picsum.photos/seed/placeholder/400/600"
	PlaceholderBackdrop  = "https://picsum.photos/seed/placeholder_wide/1280/720"
)

const maxRating = 10.0

// Item is the canonical media-item record.
//
// PlaybackLocator is optional; its presence is what distinguishes a playable
// item (user/admin upload) from a catalog/demo item whose play action is a no-op.
type Item struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Synopsis        string     `json:"synopsis"`
	Director        string     `json:"director"`
	DurationLabel   string     `json:"durationLabel"`
	Rating          float64    `json:"rating"`
	ReleaseYear     int        `json:"releaseYear"`
	Genres          []string   `json:"genres"`
	PosterLocator   string     `json:"posterLocator"`
	BackdropLocator string     `json:"backdropLocator"`
	Cast            []string   `json:"cast"`
	MatchScore      int        `json:"matchScore"`
	PlaybackLocator string     `json:"playbackLocator,omitempty"`
	Provenance      Provenance `json:"provenance"`
}

// NewUploadID returns a fresh id for a user-uploaded item.
func NewUploadID() string {
	return UploadIDPrefix + uuid.NewString()
}

// NewAdminID returns a fresh id for an admin-entered item.
func NewAdminID() string {
	return AdminIDPrefix + uuid.NewString()
}

// InferProvenance derives a provenance from the legacy id-prefix convention.
// Used when classifying records that carry no explicit provenance field.
func InferProvenance(id string) Provenance {
	switch {
	case strings.HasPrefix(id, UploadIDPrefix):
		return ProvenanceUpload
	case strings.HasPrefix(id, AdminIDPrefix):
		return ProvenanceAdmin
	case strings.HasPrefix(id, "gen-"):
		return ProvenanceGenerated
	default:
		return ProvenanceCatalog
	}
}

// Normalize fills any missing descriptive field with its fixed default and
// clamps out-of-range values. It never fails; it is defensive against
// partially-formed input from the AI source or legacy persisted records.
func Normalize(raw Item) Item {
	item := raw

	if item.Title == "" {
		item.Title = "Untitled"
	}
	if item.Synopsis == "" {
		item.Synopsis = DefaultSynopsis
	}
	if item.Director == "" {
		item.Director = DefaultDirector
	}
	if item.DurationLabel == "" {
		item.DurationLabel = DefaultDurationLabel
	}
	if item.Rating < 0 {
		item.Rating = 0
	}
	if item.Rating > maxRating {
		item.Rating = maxRating
	}
	if len(item.Genres) == 0 {
		item.Genres = []string{DefaultGenre}
	}
	if item.PosterLocator == "" {
		item.PosterLocator = PlaceholderPoster
	}
	if item.BackdropLocator == "" {
		item.BackdropLocator = PlaceholderBackdrop
	}
	if item.Cast == nil {
		item.Cast = []string{}
	}
	if item.MatchScore <= 0 {
		item.MatchScore = DefaultMatchScore
	}
	if item.Provenance == "" {
		item.Provenance = InferProvenance(item.ID)
	}

	return item
}

// UploadQualifying reports whether the item must always be reflected in the
// "uploads" category: it carries a playback locator or originated from an
// upload action.
func (i Item) UploadQualifying() bool {
	return i.PlaybackLocator != "" ||
		i.Provenance == ProvenanceUpload ||
		strings.HasPrefix(i.ID, UploadIDPrefix)
}
