package db

// Repositories provides access to all database repositories
type Repositories struct {
	Blobs *BlobRepository
}

// NewRepositories creates a new repository collection
func NewRepositories(db *DB) *Repositories {
	return &Repositories{
		Blobs: NewBlobRepository(db),
	}
}
