// ABOUTME: Configuration management for the application with file and environment support
// ABOUTME: Defaults, then an optional YAML file, then environment variables, loaded with koanf

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `koanf:"server"`

	// Cache contains cache configuration
	Cache CacheConfig `koanf:"cache"`

	// Search contains the web-search provider configuration
	Search SearchConfig `koanf:"search"`

	// AI contains generative model configuration
	AI AIConfig `koanf:"ai"`

	// Adoption contains adoption pipeline limits
	Adoption AdoptionConfig `koanf:"adoption"`

	// Log contains logger configuration
	Log LogConfig `koanf:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `koanf:"port"`

	// RateLimit is the number of requests one client IP may make per RateWindow; 0 disables limiting
	RateLimit int `koanf:"rate_limit"`

	// RateWindow is the rate limiting window
	RateWindow time.Duration `koanf:"rate_window"`

	// AllowedOrigins are the CORS origins; empty allows any
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string `koanf:"type"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig `koanf:"redis"`

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig `koanf:"sqlite"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `koanf:"address"`

	// Password is the Redis authentication password
	Password string `koanf:"password"`

	// DB is the Redis database number
	DB int `koanf:"db"`
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string `koanf:"path"`
}

// SearchConfig holds web-search provider configuration
type SearchConfig struct {
	// APIKey is the SerpAPI key; adoption search degrades to fallbacks without it
	APIKey string `koanf:"api_key"`

	// MaxResults is the organic results requested per query (at most 12)
	MaxResults int `koanf:"max_results"`

	// CacheTTL is how long a query's hits are cached; 0 disables caching
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// ProviderConfig holds one generative model provider's credentials
type ProviderConfig struct {
	APIKey string `koanf:"api_key"`
	Model  string `koanf:"model"`
}

// AIConfig holds generative model configuration
type AIConfig struct {
	// Provider selects the backend: google or openai
	Provider string `koanf:"provider"`

	Gemini ProviderConfig `koanf:"gemini"`
	OpenAI ProviderConfig `koanf:"openai"`

	// Timeout bounds each model call
	Timeout time.Duration `koanf:"timeout"`

	// Retries is the number of extra scoring attempts after the first
	Retries int `koanf:"retries"`
}

// AdoptionConfig holds adoption pipeline limits
type AdoptionConfig struct {
	MaxCandidates      int `koanf:"max_candidates"`
	DisplayLimit       int `koanf:"display_limit"`
	ScoringConcurrency int `koanf:"scoring_concurrency"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `koanf:"level"`

	// Format is json or text
	Format string `koanf:"format"`
}

// Provider names accepted in AI.Provider
const (
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
)

// envKeys maps the conventional environment variable names to config keys
var envKeys = map[string]string{
	"PORT":                "server.port",
	"RATE_LIMIT":          "server.rate_limit",
	"RATE_WINDOW":         "server.rate_window",
	"ALLOWED_ORIGINS":     "server.allowed_origins",
	"CACHE_TYPE":          "cache.type",
	"REDIS_ADDRESS":       "cache.redis.address",
	"REDIS_PASSWORD":      "cache.redis.password",
	"REDIS_DB":            "cache.redis.db",
	"SQLITE_PATH":         "cache.sqlite.path",
	"SERPAPI_KEY":         "search.api_key",
	"MAX_RESULTS":         "search.max_results",
	"SEARCH_CACHE_TTL":    "search.cache_ttl",
	"AI_PROVIDER":         "ai.provider",
	"GEMINI_API_KEY":      "ai.gemini.api_key",
	"GEMINI_MODEL":        "ai.gemini.model",
	"OPENAI_API_KEY":      "ai.openai.api_key",
	"OPENAI_MODEL":        "ai.openai.model",
	"AI_TIMEOUT":          "ai.timeout",
	"AI_RETRIES":          "ai.retries",
	"MAX_CANDIDATES":      "adoption.max_candidates",
	"DISPLAY_LIMIT":       "adoption.display_limit",
	"SCORING_CONCURRENCY": "adoption.scoring_concurrency",
	"LOG_LEVEL":           "log.level",
	"LOG_FORMAT":          "log.format",
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:       "8000",
			RateLimit:  30,
			RateWindow: time.Minute,
		},
		Cache: CacheConfig{
			Type: "memory",
			Redis: RedisConfig{
				Address: "localhost:6379",
			},
			SQLite: SQLiteConfig{
				Path: "catbytes-cache.db",
			},
		},
		Search: SearchConfig{
			MaxResults: 12,
			CacheTTL:   6 * time.Hour,
		},
		AI: AIConfig{
			Provider: ProviderGoogle,
			Gemini:   ProviderConfig{Model: "gemini-1.5-flash"},
			OpenAI:   ProviderConfig{Model: "gpt-4o-mini"},
			Timeout:  8 * time.Second,
			Retries:  1,
		},
		Adoption: AdoptionConfig{
			MaxCandidates:      30,
			DisplayLimit:       20,
			ScoringConcurrency: 8,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadFromEnv loads configuration from environment variables, reading the
// YAML file named by CONFIG_FILE first when it is set
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv("CONFIG_FILE"))
}

// Load reads defaults, then the YAML file at path (if any), then the environment
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.Server.AllowedOrigins = splitList(cfg.Server.AllowedOrigins)
	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
	cfg.Cache.Type = strings.ToLower(strings.TrimSpace(cfg.Cache.Type))

	return cfg, nil
}

// splitList flattens comma-separated entries
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ActiveModel returns the selected provider's credentials
func (c *Config) ActiveModel() ProviderConfig {
	if c.AI.Provider == ProviderOpenAI {
		return c.AI.OpenAI
	}
	return c.AI.Gemini
}

// AIConfigured reports whether the selected provider has an API key
func (c *Config) AIConfigured() bool {
	return c.ActiveModel().APIKey != ""
}

// AIAttempts is the total number of scoring calls per listing
func (c *Config) AIAttempts() int {
	return c.AI.Retries + 1
}

var (
	validCacheTypes = map[string]bool{"memory": true, "redis": true, "sqlite": true}
	validProviders  = map[string]bool{ProviderGoogle: true, ProviderOpenAI: true}
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"json": true, "text": true}
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}
	if c.Server.RateLimit < 0 {
		return errors.New("rate limit must be non-negative")
	}
	if c.Server.RateLimit > 0 && c.Server.RateWindow <= 0 {
		return errors.New("rate window must be positive when rate limiting is enabled")
	}

	if !validCacheTypes[c.Cache.Type] {
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}
	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}
	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Search.MaxResults < 1 || c.Search.MaxResults > 12 {
		return errors.New("max results must be between 1 and 12")
	}
	if c.Search.CacheTTL < 0 {
		return errors.New("search cache TTL must be non-negative")
	}

	if !validProviders[c.AI.Provider] {
		return fmt.Errorf("invalid AI provider %q: must be one of google, openai", c.AI.Provider)
	}
	if c.AI.Timeout <= 0 {
		return errors.New("AI timeout must be positive")
	}
	if c.AI.Retries < 0 || c.AI.Retries > 3 {
		return errors.New("AI retries must be between 0 and 3")
	}

	if c.Adoption.MaxCandidates < 1 {
		return errors.New("max candidates must be at least 1")
	}
	if c.Adoption.DisplayLimit < 0 {
		return errors.New("display limit must be non-negative")
	}
	if c.Adoption.ScoringConcurrency < 1 {
		return errors.New("scoring concurrency must be at least 1")
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if !validLogFormats[strings.ToLower(c.Log.Format)] {
		return fmt.Errorf("invalid log format %q: must be json or text", c.Log.Format)
	}

	return nil
}
