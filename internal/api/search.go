package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mstrand/cinestream/internal/models"
	"github.com/mstrand/cinestream/internal/search"
)

// SearchResponse represents the current search-result view. Pending is true
// while an AI continuation for the query is still outstanding; clients poll
// the results endpoint until it clears.
type SearchResponse struct {
	Query   string        `json:"query"`
	Items   []models.Item `json:"items"`
	Pending bool          `json:"pending"`
}

// SearchHandler handles search requests
type SearchHandler struct {
	searcher *search.Searcher
}

// NewSearchHandler creates a new search handler instance
func NewSearchHandler(searcher *search.Searcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// Search handles GET /api/search?q=. It replies with the synchronous local
// matches; the AI phase continues in the background.
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "query parameter 'q' is required",
		})
		return
	}

	items := h.searcher.Search(c.Request.Context(), query)
	_, _, pending := h.searcher.Results()

	c.JSON(http.StatusOK, SearchResponse{
		Query:   query,
		Items:   items,
		Pending: pending,
	})
}

// Results handles GET /api/search/results
func (h *SearchHandler) Results(c *gin.Context) {
	query, items, pending := h.searcher.Results()

	c.JSON(http.StatusOK, SearchResponse{
		Query:   query,
		Items:   items,
		Pending: pending,
	})
}

// SetupSearchRoutes registers search routes
func SetupSearchRoutes(apiGroup *gin.RouterGroup, searcher *search.Searcher) {
	handler := NewSearchHandler(searcher)

	apiGroup.GET("/search", handler.Search)
	apiGroup.GET("/search/results", handler.Results)
}
