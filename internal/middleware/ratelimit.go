package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	RequestsPerWindow int           // Number of requests allowed per window
	Window            time.Duration // Time window for rate limiting
	KeyPrefix         string        // Redis key prefix
}

func (c RateLimitConfig) key(clientID string) string {
	return c.KeyPrefix + ":" + clientID
}

// RateLimitMiddleware implements a fixed-window rate limit per client address.
// Counters live in Redis so several replicas share one budget.
func RateLimitMiddleware(redisClient redis.UniversalClient, config RateLimitConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// RealIP has already rewritten RemoteAddr when a proxy header is present
			key := config.key(r.RemoteAddr)
			ctx := r.Context()

			count, err := redisClient.Incr(ctx, key).Result()
			if err != nil {
				logger.Error("Failed to increment rate limit counter",
					zap.Error(err),
					zap.String("key", key),
				)
				// Fail open on Redis errors
				next.ServeHTTP(w, r)
				return
			}

			// First hit opens the window
			if count == 1 {
				if err := redisClient.Expire(ctx, key, config.Window).Err(); err != nil {
					logger.Warn("Failed to set rate limit window", zap.Error(err), zap.String("key", key))
				}
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(config.RequestsPerWindow))

			if count > int64(config.RequestsPerWindow) {
				ttl, err := redisClient.TTL(ctx, key).Result()
				if err != nil || ttl < 0 {
					ttl = config.Window
				}

				logger.Warn("Rate limit exceeded",
					zap.String("client_id", r.RemoteAddr),
					zap.Int64("count", count),
					zap.Int("limit", config.RequestsPerWindow),
				)

				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				w.Header().Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))

				RespondWithError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.RequestsPerWindow)-count, 10))

			next.ServeHTTP(w, r)
		})
	}
}
