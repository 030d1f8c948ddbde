package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstrand/cinestream/internal/catalog"
	"github.com/mstrand/cinestream/internal/config"
	"github.com/mstrand/cinestream/internal/media"
	"github.com/mstrand/cinestream/internal/models"
)

func setupUploadRouter(t *testing.T) (*gin.Engine, *catalog.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := catalog.NewStore()
	service := catalog.NewService(store, catalog.NewFavorites(), nil)

	resolver, err := media.NewResolver(config.MediaConfig{
		UploadDir:      t.TempDir(),
		MaxUploadBytes: 1 << 20,
	})
	require.NoError(t, err)

	router := gin.New()
	apiGroup := router.Group("/api")
	SetupUploadRoutes(apiGroup, service, resolver)
	return router, service
}

// multipartBody builds a multipart form with the given fields and files.
func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for field, filename := range files {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake file content"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func postMultipart(router *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)
	return w
}

func TestUpload(t *testing.T) {
	t.Run("stores the video and files the item", func(t *testing.T) {
		router, service := setupUploadRouter(t)

		body, contentType := multipartBody(t,
			map[string]string{"title": "Midnight Static", "synopsis": "Home-made horror.", "genre": "Horror"},
			map[string]string{"video": "clip.mp4"},
		)
		w := postMultipart(router, body, contentType)
		require.Equal(t, http.StatusCreated, w.Code)

		var item models.Item
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
		assert.Equal(t, "Midnight Static", item.Title)
		assert.Equal(t, models.ProvenanceUpload, item.Provenance)
		assert.True(t, strings.HasPrefix(item.PlaybackLocator, media.ServePrefix+"/"))
		assert.True(t, strings.HasSuffix(item.PlaybackLocator, ".mp4"))
		assert.Equal(t, 10.0, item.Rating)
		assert.Equal(t, 100, item.MatchScore)
		assert.Equal(t, []string{"You"}, item.Cast)

		assert.Len(t, service.Store().Category(catalog.CategoryUploads), 1)
		assert.Len(t, service.Store().Category(catalog.CategoryHorror), 1)
	})

	t.Run("stores optional poster and backdrop", func(t *testing.T) {
		router, _ := setupUploadRouter(t)

		body, contentType := multipartBody(t,
			map[string]string{"title": "With Art"},
			map[string]string{"video": "v.mp4", "poster": "p.jpg", "backdrop": "b.jpg"},
		)
		w := postMultipart(router, body, contentType)
		require.Equal(t, http.StatusCreated, w.Code)

		var item models.Item
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
		assert.True(t, strings.HasPrefix(item.PosterLocator, media.ServePrefix+"/"))
		assert.True(t, strings.HasPrefix(item.BackdropLocator, media.ServePrefix+"/"))
	})

	t.Run("missing art falls back to placeholders", func(t *testing.T) {
		router, _ := setupUploadRouter(t)

		body, contentType := multipartBody(t,
			map[string]string{"title": "Plain"},
			map[string]string{"video": "v.mp4"},
		)
		w := postMultipart(router, body, contentType)
		require.Equal(t, http.StatusCreated, w.Code)

		var item models.Item
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
		assert.Equal(t, models.PlaceholderPoster, item.PosterLocator)
		assert.Equal(t, models.PlaceholderBackdrop, item.BackdropLocator)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		router, _ := setupUploadRouter(t)

		body, contentType := multipartBody(t, nil, map[string]string{"video": "v.mp4"})
		w := postMultipart(router, body, contentType)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects missing video", func(t *testing.T) {
		router, _ := setupUploadRouter(t)

		body, contentType := multipartBody(t, map[string]string{"title": "No Video"}, nil)
		w := postMultipart(router, body, contentType)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects files over the size limit", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		store := catalog.NewStore()
		service := catalog.NewService(store, catalog.NewFavorites(), nil)
		resolver, err := media.NewResolver(config.MediaConfig{UploadDir: t.TempDir(), MaxUploadBytes: 4})
		require.NoError(t, err)

		router := gin.New()
		SetupUploadRoutes(router.Group("/api"), service, resolver)

		body, contentType := multipartBody(t, map[string]string{"title": "Huge"}, map[string]string{"video": "v.mp4"})
		w := postMultipart(router, body, contentType)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, service.Store().Category(catalog.CategoryUploads))
	})
}
