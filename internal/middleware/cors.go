package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// CORSMiddleware configures CORS settings
func CORSMiddleware(allowedOrigins []string, isDevelopment bool) func(http.Handler) http.Handler {
	// In development, allow all origins
	if isDevelopment || len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})
}

// DefaultMiddlewareStack returns a stack of commonly used middleware
func DefaultMiddlewareStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		RequestID,
		middleware.RealIP,
		middleware.Compress(5),
	}
}
