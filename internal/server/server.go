package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"electrorank/internal/config"
	custommiddleware "electrorank/internal/middleware"
	"electrorank/internal/repository"
	"electrorank/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config      *config.Config
	logger      *zap.Logger
	db          *sql.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *sql.DB) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	for _, mw := range custommiddleware.DefaultMiddlewareStack() {
		router.Use(mw)
	}
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware([]string{cfg.Site.BaseURL}, cfg.Server.Env == "development"))

	// Rate limit the JSON API through Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	rateLimitConfig := custommiddleware.RateLimitConfig{
		RequestsPerWindow: 100,
		Window:            time.Minute,
		KeyPrefix:         "electrorank:ratelimit",
	}

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)

	// Initialize handlers
	productHandler := transport.NewProductHandler(productRepo, logger)

	// Register API routes behind the rate limiter
	router.Group(func(r chi.Router) {
		r.Use(custommiddleware.RateLimitMiddleware(redisClient, rateLimitConfig, logger))
		productHandler.RegisterRoutes(r)
	})

	// SEO artifacts produced by the daily job
	router.Get("/sitemap.xml", serveFile(filepath.Join(cfg.Site.SEODir, "sitemap.xml"), "application/xml"))
	router.Get("/robots.txt", serveFile(filepath.Join(cfg.Site.SEODir, "robots.txt"), "text/plain"))

	// Generated static pages: /category/..., /product/..., /compare/...
	router.Get("/category/{name}", servePage(cfg.Site.PagesDir))
	router.Get("/product/{name}", servePage(cfg.Site.PagesDir))
	router.Get("/compare/{name}", servePage(cfg.Site.PagesDir))

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:      cfg,
		logger:      logger,
		db:          db,
		redisClient: redisClient,
	}

	return server
}

// serveFile serves a single file with a fixed content type, 404 if absent
func serveFile(path, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		http.ServeFile(w, r, path)
	}
}

// servePage serves one generated HTML page from the pages directory. URL
// paths come without the .html suffix the generator writes.
func servePage(pagesDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
			http.NotFound(w, r)
			return
		}

		section := strings.Trim(strings.TrimSuffix(r.URL.Path, name), "/")
		page := filepath.Join(pagesDir, section, strings.TrimSuffix(name, ".html")+".html")
		http.ServeFile(w, r, page)
	}
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	// Close database connection
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
