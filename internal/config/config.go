// README: Config loader with env defaults for HTTP, rates DB, Redis, and external API keys.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type TollGuruConfig struct {
	BaseURL  string
	APIKey   string
	CacheTTL time.Duration
	// UseMock forces the built-in lookup table instead of the live API.
	// Also implied when APIKey is empty.
	UseMock bool
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Log struct {
		Level  string
		Format string
	}
	DB struct {
		// DSN is optional; without it jurisdiction rates come from the
		// built-in table only.
		DSN string
	}
	Redis struct {
		// Addr is optional; without it toll lookups are not cached.
		Addr string
	}
	TollGuru TollGuruConfig
	Maps     struct {
		APIKey string
	}
	AI struct {
		GeminiKey string
	}
}

func Load() (Config, error) {
	// Local development keeps secrets in a .env file; absence is fine.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TOLLWISE_HTTP_ADDR", ":4000")
	cfg.Log.Level = envOrDefault("TOLLWISE_LOG_LEVEL", "info")
	cfg.Log.Format = envOrDefault("TOLLWISE_LOG_FORMAT", "json")
	cfg.DB.DSN = envOrDefault("TOLLWISE_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("TOLLWISE_REDIS_ADDR", "")
	cfg.TollGuru.BaseURL = envOrDefault("TOLLGURU_BASE_URL", "https://apis.tollguru.com")
	cfg.TollGuru.APIKey = envOrDefault("TOLLGURU_API_KEY", "")
	cfg.TollGuru.CacheTTL = envOrDefaultDuration("TOLLGURU_CACHE_TTL", 6*time.Hour)
	cfg.TollGuru.UseMock = envOrDefaultBool("TOLLWISE_MOCK_TOLLS", false)
	cfg.Maps.APIKey = envOrDefault("MAPS_API_KEY", "")
	cfg.AI.GeminiKey = envOrDefault("GEMINI_API_KEY", "")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
