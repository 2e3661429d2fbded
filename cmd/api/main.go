package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"item-showcase/internal/config"
	"item-showcase/internal/logger"
	"item-showcase/internal/server"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// In-flight requests get 30 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")

	done <- true
}

// connectRedis returns nil when rate limiting is not configured
func connectRedis(cfg *config.Config, log *zap.Logger) redis.UniversalClient {
	if !cfg.RateLimitEnabled() {
		log.Info("Rate limiting disabled, REDIS_ADDR not set")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// The limiter fails open, so an unreachable Redis is not fatal
		log.Warn("Redis not reachable, rate limiter will let requests through",
			zap.String("addr", cfg.Redis.Addr),
			zap.Error(err),
		)
	}

	return client
}

//	@title			Item Showcase API
//	@version		3.0
//	@description	Request and response validation showcase. The configured snapshot is served at the root path; every snapshot is also served under /v1, /v2 and /v3.
//	@BasePath		/
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	log.Info("Starting item showcase API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.Int("snapshot", cfg.API.Snapshot),
	)

	srv, err := server.NewServer(cfg, log, connectRedis(cfg, log))
	if err != nil {
		log.Fatal("Failed to create server", zap.Error(err))
	}

	done := make(chan bool, 1)

	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	<-done
	log.Info("Graceful shutdown complete")
}
