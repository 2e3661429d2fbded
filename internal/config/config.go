package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	API       APIConfig
	CORS      CORSConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type APIConfig struct {
	Snapshot int // snapshot mounted at the root path
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RedisConfig struct {
	Addr     string // empty disables rate limiting
	Password string
	DB       int
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// IsProduction reports whether the server runs with production settings
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// RateLimitEnabled reports whether a Redis backend is configured
func (c *Config) RateLimitEnabled() bool {
	return c.Redis.Addr != ""
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	if c.API.Snapshot < 1 || c.API.Snapshot > 3 {
		return fmt.Errorf("API_SNAPSHOT must be 1, 2 or 3, got %d", c.API.Snapshot)
	}
	if c.RateLimitEnabled() && c.RateLimit.Requests < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.RateLimit.Requests)
	}
	if c.RateLimitEnabled() && c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimit.Window)
	}
	return nil
}

func Load() *Config {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("API_SNAPSHOT", 3)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: v.GetString("SERVER_PORT"),
			Env:  v.GetString("SERVER_ENV"),
		},
		API: APIConfig{
			Snapshot: v.GetInt("API_SNAPSHOT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   v.GetDuration("RATE_LIMIT_WINDOW"),
		},
	}
}

// splitList parses a comma separated setting, dropping blanks
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
