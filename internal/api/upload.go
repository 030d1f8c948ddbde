package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mstrand/cinestream/internal/catalog"
	"github.com/mstrand/cinestream/internal/logger"
	"github.com/mstrand/cinestream/internal/media"
	"github.com/mstrand/cinestream/internal/models"
)

// UploadHandler handles user upload requests
type UploadHandler struct {
	service  *catalog.Service
	resolver *media.Resolver
}

// NewUploadHandler creates a new upload handler instance
func NewUploadHandler(service *catalog.Service, resolver *media.Resolver) *UploadHandler {
	return &UploadHandler{
		service:  service,
		resolver: resolver,
	}
}

// Upload handles POST /api/uploads. The request is multipart form data with
// title, synopsis, and genre fields, a required video file, and optional
// poster and backdrop files.
func (h *UploadHandler) Upload(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "form field 'title' is required",
		})
		return
	}

	video, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "form file 'video' is required",
		})
		return
	}

	playbackLocator, err := h.resolver.Store(c, video)
	if err != nil {
		logger.Log.Error().Err(err).Str("title", title).Msg("Failed to store uploaded video")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "storage_failed",
			Message: "Failed to store uploaded video",
		})
		return
	}

	var posterLocator, backdropLocator string
	if poster, err := c.FormFile("poster"); err == nil {
		if posterLocator, err = h.resolver.Store(c, poster); err != nil {
			logger.Log.Warn().Err(err).Str("title", title).Msg("Failed to store poster, using placeholder")
		}
	}
	if backdrop, err := c.FormFile("backdrop"); err == nil {
		if backdropLocator, err = h.resolver.Store(c, backdrop); err != nil {
			logger.Log.Warn().Err(err).Str("title", title).Msg("Failed to store backdrop, using placeholder")
		}
	}

	genre := c.PostForm("genre")
	if genre == "" {
		genre = models.DefaultGenre
	}

	item := h.service.UploadItem(c.Request.Context(), models.Item{
		Title:           title,
		Synopsis:        c.PostForm("synopsis"),
		Director:        "You",
		DurationLabel:   "Unknown",
		Rating:          10,
		ReleaseYear:     time.Now().Year(),
		Genres:          []string{genre},
		Cast:            []string{"You"},
		MatchScore:      100,
		PosterLocator:   posterLocator,
		BackdropLocator: backdropLocator,
		PlaybackLocator: playbackLocator,
	})

	c.JSON(http.StatusCreated, item)
}

// SetupUploadRoutes registers upload routes
func SetupUploadRoutes(apiGroup *gin.RouterGroup, service *catalog.Service, resolver *media.Resolver) {
	handler := NewUploadHandler(service, resolver)
	apiGroup.POST("/uploads", handler.Upload)
}
