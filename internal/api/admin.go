package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mstrand/cinestream/internal/catalog"
	"github.com/mstrand/cinestream/internal/models"
)

// AddItemRequest represents a request to add an item to a category. Only
// title and category are required; everything else is defaulted on
// normalization.
type AddItemRequest struct {
	CategoryID      string   `json:"categoryId" binding:"required"`
	Title           string   `json:"title" binding:"required"`
	Synopsis        string   `json:"synopsis"`
	Director        string   `json:"director"`
	DurationLabel   string   `json:"durationLabel"`
	Rating          float64  `json:"rating"`
	ReleaseYear     int      `json:"releaseYear"`
	Genres          []string `json:"genres"`
	PosterLocator   string   `json:"posterLocator"`
	BackdropLocator string   `json:"backdropLocator"`
	Cast            []string `json:"cast"`
	MatchScore      int      `json:"matchScore"`
	PlaybackLocator string   `json:"playbackLocator"`
}

// AdminHandler handles catalog management requests
type AdminHandler struct {
	service *catalog.Service
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(service *catalog.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// AddItem handles POST /api/admin/items
func (h *AdminHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	item, err := h.service.AdminAddItem(c.Request.Context(), models.Item{
		Title:           req.Title,
		Synopsis:        req.Synopsis,
		Director:        req.Director,
		DurationLabel:   req.DurationLabel,
		Rating:          req.Rating,
		ReleaseYear:     req.ReleaseYear,
		Genres:          req.Genres,
		PosterLocator:   req.PosterLocator,
		BackdropLocator: req.BackdropLocator,
		Cast:            req.Cast,
		MatchScore:      req.MatchScore,
		PlaybackLocator: req.PlaybackLocator,
	}, req.CategoryID)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownCategory) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "unknown_category",
				Message: "unknown category: " + req.CategoryID,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to add item",
		})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// ListItems handles GET /api/admin/items. The optional filter parameter
// narrows the library to items whose title contains it, case-insensitively.
func (h *AdminHandler) ListItems(c *gin.Context) {
	filter := strings.ToLower(strings.TrimSpace(c.Query("filter")))

	items := h.service.Store().AllItems()
	if filter != "" {
		kept := items[:0:0]
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Title), filter) {
				kept = append(kept, item)
			}
		}
		items = kept
	}

	c.JSON(http.StatusOK, ItemListResponse{Items: items})
}

// DeleteItem handles DELETE /api/admin/items/:id. Deleting an unknown id is
// a no-op and still succeeds.
func (h *AdminHandler) DeleteItem(c *gin.Context) {
	h.service.DeleteItem(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// SetupAdminRoutes registers catalog management routes
func SetupAdminRoutes(apiGroup *gin.RouterGroup, service *catalog.Service) {
	handler := NewAdminHandler(service)

	adminGroup := apiGroup.Group("/admin")
	adminGroup.POST("/items", handler.AddItem)
	adminGroup.GET("/items", handler.ListItems)
	adminGroup.DELETE("/items/:id", handler.DeleteItem)
}
