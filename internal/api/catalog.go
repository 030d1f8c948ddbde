package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mstrand/cinestream/internal/ai"
	"github.com/mstrand/cinestream/internal/catalog"
	"github.com/mstrand/cinestream/internal/logger"
	"github.com/mstrand/cinestream/internal/models"
	"github.com/mstrand/cinestream/internal/search"
)

// CategoryResponse represents one category row with its items
type CategoryResponse struct {
	ID    string        `json:"id"`
	Title string        `json:"title"`
	Items []models.Item `json:"items"`
}

// CategoryListResponse represents the full category listing
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// RefreshResponse reports the outcome of a category refresh
type RefreshResponse struct {
	CategoryID string        `json:"categoryId"`
	Added      int           `json:"added"`
	Items      []models.Item `json:"items"`
}

// ItemListResponse wraps a bare item list
type ItemListResponse struct {
	Items []models.Item `json:"items"`
}

// FavoriteResponse reports favorite membership after a toggle
type FavoriteResponse struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

// CatalogHandler handles category, featured, and favorite requests
type CatalogHandler struct {
	service  *catalog.Service
	searcher *search.Searcher
	fetcher  ai.CandidateFetcher
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(service *catalog.Service, searcher *search.Searcher, fetcher ai.CandidateFetcher) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		searcher: searcher,
		fetcher:  fetcher,
	}
}

// categoryTitle resolves the display title for a category id. Categories
// created on the fly by persisted data fall back to their id.
func categoryTitle(id string) string {
	for _, c := range catalog.KnownCategories {
		if c.ID == id {
			return c.Title
		}
	}
	return id
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	store := h.service.Store()

	var categories []CategoryResponse
	for _, id := range store.CategoryIDs() {
		categories = append(categories, CategoryResponse{
			ID:    id,
			Title: categoryTitle(id),
			Items: store.Category(id),
		})
	}

	c.JSON(http.StatusOK, CategoryListResponse{Categories: categories})
}

// GetCategory handles GET /api/categories/:id
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id := c.Param("id")

	c.JSON(http.StatusOK, CategoryResponse{
		ID:    id,
		Title: categoryTitle(id),
		Items: h.service.Store().Category(id),
	})
}

// RefreshCategory handles POST /api/categories/:id/refresh. Fetched
// candidates are merged additively into the in-memory row only; they are not
// persisted, and a fetch failure leaves the row untouched.
func (h *CatalogHandler) RefreshCategory(c *gin.Context) {
	id := c.Param("id")
	if !catalog.IsKnownCategory(id) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "category_not_found",
			Message: fmt.Sprintf("unknown category: %s", id),
		})
		return
	}
	if h.fetcher == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "ai_disabled",
			Message: "no AI source is configured",
		})
		return
	}

	store := h.service.Store()
	added := 0

	candidates, err := h.fetcher.FetchCandidates(c.Request.Context(), categoryTitle(id))
	if err != nil {
		logger.Log.Warn().Err(err).Str("category", id).Msg("Category refresh fetch failed")
	} else {
		for _, item := range candidates {
			if store.AddToCategory(id, item) {
				added++
			}
		}
	}

	c.JSON(http.StatusOK, RefreshResponse{
		CategoryID: id,
		Added:      added,
		Items:      store.Category(id),
	})
}

// GetFeatured handles GET /api/featured
func (h *CatalogHandler) GetFeatured(c *gin.Context) {
	c.JSON(http.StatusOK, ItemListResponse{Items: h.searcher.FeaturedSet()})
}

// ListFavorites handles GET /api/favorites. Favorite ids with no resolvable
// item are omitted.
func (h *CatalogHandler) ListFavorites(c *gin.Context) {
	ids := h.service.FavoriteSet().IDs()
	c.JSON(http.StatusOK, ItemListResponse{Items: h.searcher.ResolveFavorites(ids)})
}

// ToggleFavorite handles PUT /api/favorites/:id
func (h *CatalogHandler) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, FavoriteResponse{
		ID:       id,
		Favorite: h.service.ToggleFavorite(id),
	})
}

// SetupCatalogRoutes registers category, featured, and favorite routes
func SetupCatalogRoutes(apiGroup *gin.RouterGroup, service *catalog.Service, searcher *search.Searcher, fetcher ai.CandidateFetcher) {
	handler := NewCatalogHandler(service, searcher, fetcher)

	apiGroup.GET("/categories", handler.ListCategories)
	apiGroup.GET("/categories/:id", handler.GetCategory)
	apiGroup.POST("/categories/:id/refresh", handler.RefreshCategory)
	apiGroup.GET("/featured", handler.GetFeatured)
	apiGroup.GET("/favorites", handler.ListFavorites)
	apiGroup.PUT("/favorites/:id", handler.ToggleFavorite)
}
