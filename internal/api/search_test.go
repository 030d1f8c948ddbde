package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstrand/cinestream/internal/catalog"
	"github.com/mstrand/cinestream/internal/models"
	"github.com/mstrand/cinestream/internal/search"
)

func setupSearchRouter(items ...models.Item) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := catalog.NewStore()
	for _, item := range items {
		store.AddToCategory(catalog.CategoryTrending, item)
	}
	searcher := search.NewSearcher(store, nil, nil)

	router := gin.New()
	apiGroup := router.Group("/api")
	SetupSearchRoutes(apiGroup, searcher)
	return router
}

func TestSearchEndpoint(t *testing.T) {
	t.Run("returns local matches", func(t *testing.T) {
		router := setupSearchRouter(
			models.Normalize(models.Item{ID: "a", Title: "Neon Abyss", Genres: []string{"Sci-Fi"}}),
			models.Normalize(models.Item{ID: "b", Title: "Quiet Fields", Genres: []string{"Drama"}}),
		)

		w := doRequest(router, http.MethodGet, "/api/search?q=neon")
		require.Equal(t, http.StatusOK, w.Code)

		var resp SearchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "neon", resp.Query)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "a", resp.Items[0].ID)
		assert.False(t, resp.Pending)
	})

	t.Run("matches by genre", func(t *testing.T) {
		router := setupSearchRouter(
			models.Normalize(models.Item{ID: "a", Title: "Neon Abyss", Genres: []string{"Sci-Fi"}}),
		)

		w := doRequest(router, http.MethodGet, "/api/search?q=sci-fi")
		require.Equal(t, http.StatusOK, w.Code)

		var resp SearchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Items, 1)
	})

	t.Run("rejects missing query", func(t *testing.T) {
		router := setupSearchRouter()

		w := doRequest(router, http.MethodGet, "/api/search")
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_request", resp.Error)
	})
}

func TestSearchResultsEndpoint(t *testing.T) {
	router := setupSearchRouter(
		models.Normalize(models.Item{ID: "a", Title: "Neon Abyss"}),
	)

	t.Run("empty before any search", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/search/results")
		require.Equal(t, http.StatusOK, w.Code)

		var resp SearchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Query)
		assert.Empty(t, resp.Items)
	})

	t.Run("reflects the latest search", func(t *testing.T) {
		doRequest(router, http.MethodGet, "/api/search?q=neon")

		w := doRequest(router, http.MethodGet, "/api/search/results")
		require.Equal(t, http.StatusOK, w.Code)

		var resp SearchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "neon", resp.Query)
		assert.Len(t, resp.Items, 1)
		assert.False(t, resp.Pending)
	})
}
