package server

import (
	"fmt"
	"net/http"
	"time"

	_ "item-showcase/docs" // registers the OpenAPI document
	"item-showcase/internal/config"
	custommiddleware "item-showcase/internal/middleware"
	"item-showcase/internal/service"
	"item-showcase/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	redis  redis.UniversalClient
}

// NewServer builds the HTTP server. redisClient may be nil, in which case
// requests are not rate limited.
func NewServer(cfg *config.Config, logger *zap.Logger, redisClient redis.UniversalClient) (*Server, error) {
	router, err := NewRouter(cfg, logger, redisClient)
	if err != nil {
		return nil, err
	}

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		redis:  redisClient,
	}

	return server, nil
}

// NewRouter assembles the middleware stack and mounts the configured snapshot
// at the root path and every snapshot under its /vN prefix.
func NewRouter(cfg *config.Config, logger *zap.Logger, redisClient redis.UniversalClient) (chi.Router, error) {
	rootSnapshot, err := transport.ParseSnapshot(cfg.API.Snapshot)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()

	router.Use(custommiddleware.DefaultMiddlewareStack()...)
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, !cfg.IsProduction()))

	if redisClient != nil {
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.Requests,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         "item_showcase_rate_limit",
		}, logger))
	}

	router.NotFound(custommiddleware.NotFoundHandler)
	router.MethodNotAllowed(custommiddleware.MethodNotAllowedHandler)

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		custommiddleware.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	userService := service.NewUserService(logger)

	transport.RegisterSnapshot(router, rootSnapshot, userService, logger)
	for _, snapshot := range transport.Snapshots() {
		router.Route(snapshot.Prefix(), func(r chi.Router) {
			transport.RegisterSnapshot(r, snapshot, userService, logger)
		})
	}

	logger.Info("Routes registered", zap.Int("root_snapshot", int(rootSnapshot)))
	return router, nil
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
