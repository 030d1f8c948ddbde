// Package server provides the HTTP server setup and routing configuration.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mstrand/cinestream/internal/ai"
	"github.com/mstrand/cinestream/internal/api"
	"github.com/mstrand/cinestream/internal/catalog"
	"github.com/mstrand/cinestream/internal/config"
	"github.com/mstrand/cinestream/internal/db"
	"github.com/mstrand/cinestream/internal/logger"
	"github.com/mstrand/cinestream/internal/media"
	"github.com/mstrand/cinestream/internal/middleware"
	"github.com/mstrand/cinestream/internal/persist"
	"github.com/mstrand/cinestream/internal/search"
)

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	db         *db.DB
	repos      *db.Repositories
	store      *catalog.Store
	service    *catalog.Service
	reconciler *persist.Reconciler
	searcher   *search.Searcher
	resolver   *media.Resolver
	fetcher    ai.CandidateFetcher
	router     *gin.Engine
	server     *http.Server
}

// New creates a new server instance. fetcher may be nil when no AI source is
// configured; search then completes after its local phase and category
// refresh is disabled.
func New(cfg *config.Config, database *db.DB, fetcher ai.CandidateFetcher) (*Server, error) {
	repos := db.NewRepositories(database)

	store := catalog.NewStore()
	catalog.Seed(store)

	reconciler := persist.NewReconciler(repos.Blobs, store)
	service := catalog.NewService(store, catalog.NewFavorites(), reconciler)
	searcher := search.NewSearcher(store, catalog.BootstrapPool(), fetcher)

	resolver, err := media.NewResolver(cfg.Media)
	if err != nil {
		return nil, fmt.Errorf("failed to set up media storage: %w", err)
	}

	return &Server{
		config:     cfg,
		db:         database,
		repos:      repos,
		store:      store,
		service:    service,
		reconciler: reconciler,
		searcher:   searcher,
		resolver:   resolver,
		fetcher:    fetcher,
	}, nil
}

// setupRouter initializes the Gin router with middleware and routes
func (s *Server) setupRouter() {
	if s.config.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()

	s.router.Use(middleware.RequestLogger())
	s.router.Use(gin.Recovery())
	s.router.Use(cors.Default())

	s.router.Static(media.ServePrefix, s.resolver.Dir())

	apiGroup := s.router.Group("/api")

	api.SetupHealthRoutes(apiGroup, s.db)
	api.SetupCatalogRoutes(apiGroup, s.service, s.searcher, s.fetcher)
	api.SetupSearchRoutes(apiGroup, s.searcher)
	api.SetupAdminRoutes(apiGroup, s.service)
	api.SetupUploadRoutes(apiGroup, s.service, s.resolver)
}

// Start reconciles persisted catalog state into the store and starts the
// HTTP server.
func (s *Server) Start() error {
	stats := s.reconciler.Load(context.Background())
	if stats.Reset {
		logger.Log.Warn().Msg("Persisted catalog was corrupt and has been cleared")
	}

	s.setupRouter()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	s.server = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	logger.Log.Info().
		Str("host", s.config.Server.Host).
		Int("port", s.config.Server.Port).
		Msg("Starting HTTP server")

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Log.Info().Msg("Shutting down server gracefully")

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
	}

	logger.Log.Info().Msg("Server stopped")
	return nil
}
