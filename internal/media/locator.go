// Package media stores uploaded files on disk and hands back the playback
// locators the catalog records for them.
package media

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mstrand/cinestream/internal/config"
)

// ServePrefix is the URL prefix under which stored files are served.
const ServePrefix = "/media/files"

// Resolver writes uploaded files into a local directory and resolves them to
// stable locator paths.
type Resolver struct {
	dir      string
	maxBytes int64
}

// NewResolver ensures the upload directory exists and returns a resolver
// bound to it.
func NewResolver(cfg config.MediaConfig) (*Resolver, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Resolver{dir: cfg.UploadDir, maxBytes: cfg.MaxUploadBytes}, nil
}

// Dir returns the directory the resolver writes into.
func (r *Resolver) Dir() string {
	return r.dir
}

// Store saves one uploaded file under a generated name and returns the
// locator path it will be served from. The original filename contributes only
// its extension.
func (r *Resolver) Store(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if r.maxBytes > 0 && file.Size > r.maxBytes {
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", r.maxBytes)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(r.dir, name)); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}
	return ServePrefix + "/" + name, nil
}
