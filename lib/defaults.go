// ABOUTME: Default implementations for library dependencies
// ABOUTME: Builds caches, loggers, HTTP clients and AI providers from options or app config

package catbytes

import (
	"io"
	"os"
	"time"

	"github.com/ipierette/catbytes-portfolio/core/config"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
	"github.com/ipierette/catbytes-portfolio/core/search"
	"github.com/ipierette/catbytes-portfolio/infrastructure/cache/memory"
	"github.com/ipierette/catbytes-portfolio/infrastructure/cache/redis"
	"github.com/ipierette/catbytes-portfolio/infrastructure/cache/sqlite"
	httpInfra "github.com/ipierette/catbytes-portfolio/infrastructure/http/standard"
	"github.com/ipierette/catbytes-portfolio/infrastructure/llm/gemini"
	"github.com/ipierette/catbytes-portfolio/infrastructure/llm/openai"
	"github.com/ipierette/catbytes-portfolio/infrastructure/logger/structured"
	appconfig "github.com/ipierette/catbytes-portfolio/pkg/config"
)

// DefaultHTTPTimeout bounds one outbound request
const DefaultHTTPTimeout = 30 * time.Second

// DefaultHTTPClient creates the outbound client. Searches are issued once
// and never retried, so the client makes a single attempt.
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(DefaultHTTPTimeout, httpInfra.WithAttempts(1))
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultLogger creates a JSON logger at info level writing to stderr
func DefaultLogger() interfaces.Logger {
	logger, err := structured.New(structured.Options{Level: "info", Format: "json", Output: os.Stderr})
	if err != nil {
		return interfaces.NopLogger{}
	}
	return logger
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return interfaces.NopLogger{}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return WithLogger(QuietLogger())
}

// CacheType represents the type of cache
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeSQLite CacheType = "sqlite"
	CacheTypeRedis  CacheType = "redis"
)

// CacheOption represents cache configuration options
type CacheOption struct {
	Type     CacheType
	FilePath string                // SQLite
	Redis    appconfig.RedisConfig // Redis
}

// WithCacheOption creates a cache based on the provided options
func WithCacheOption(opt CacheOption) Option {
	return func(c *Config) error {
		cache, err := openCache(opt, c.Logger)
		if err != nil {
			return err
		}
		c.Cache = cache
		c.own(cache)
		return nil
	}
}

func openCache(opt CacheOption, logger interfaces.Logger) (interfaces.Cache, error) {
	switch opt.Type {
	case CacheTypeMemory, "":
		return DefaultMemoryCache(), nil
	case CacheTypeSQLite:
		cache, err := sqlite.NewSQLiteCache(opt.FilePath, logger)
		if err != nil {
			return nil, NewError(ErrorTypeConfiguration, "failed to open sqlite cache").
				WithCause(err).
				WithContext("path", opt.FilePath)
		}
		return cache, nil
	case CacheTypeRedis:
		cache, err := redis.NewRedisCache(opt.Redis)
		if err != nil {
			return nil, NewError(ErrorTypeConfiguration, "failed to connect to redis").
				WithCause(err).
				WithContext("address", opt.Redis.Address)
		}
		return cache, nil
	default:
		return nil, NewError(ErrorTypeConfiguration, "invalid cache type").
			WithContext("type", string(opt.Type))
	}
}

// NewTextModel builds the configured AI provider, or nil when the selected
// provider has no API key
func NewTextModel(cfg *appconfig.Config, httpClient interfaces.HTTPClient, metrics interfaces.Metrics) interfaces.TextModel {
	if !cfg.AIConfigured() {
		return nil
	}
	active := cfg.ActiveModel()
	if cfg.AI.Provider == appconfig.ProviderOpenAI {
		return openai.NewProvider(active.APIKey, active.Model, openai.WithMetrics(metrics))
	}
	return gemini.NewProvider(httpClient, active.APIKey, active.Model, gemini.WithMetrics(metrics))
}

// WithConfig applies the application configuration loaded by pkg/config.
// Dependencies set by other options take precedence.
func WithConfig(cfg *appconfig.Config) Option {
	return func(c *Config) error {
		if cfg == nil {
			return NewError(ErrorTypeConfiguration, "nil application config")
		}
		c.App = cfg
		return nil
	}
}

// applyApp builds what App describes and the options did not set
func applyApp(cfg *Config) error {
	app := cfg.App

	if cfg.Logger == nil {
		logger, err := structured.New(structured.Options{Level: app.Log.Level, Format: app.Log.Format, Output: os.Stderr})
		if err != nil {
			return NewError(ErrorTypeConfiguration, "invalid log settings").WithCause(err)
		}
		cfg.Logger = logger
	}

	if cfg.HTTPClient == nil {
		cfg.HTTPClient = DefaultHTTPClient()
	}
	cfg.Metrics = interfaces.MetricsOrNop(cfg.Metrics)

	if cfg.Cache == nil {
		cache, err := openCache(CacheOption{
			Type:     CacheType(app.Cache.Type),
			FilePath: app.Cache.SQLite.Path,
			Redis:    app.Cache.Redis,
		}, cfg.Logger)
		if err != nil {
			cfg.Logger.Error("Failed to open cache, falling back to memory", map[string]interface{}{
				"cache_type": app.Cache.Type,
				"error":      err.Error(),
			})
			cache = DefaultMemoryCache()
		}
		cfg.Cache = cache
		cfg.own(cache)
	}

	if cfg.TextModel == nil {
		cfg.TextModel = NewTextModel(app, cfg.HTTPClient, cfg.Metrics)
		cfg.ModelName = app.ActiveModel().Model
	}

	if cfg.Search.APIKey == "" {
		cfg.Search.APIKey = app.Search.APIKey
	}
	if cfg.Search.ResultCount == 0 {
		cfg.Search.ResultCount = app.Search.MaxResults
	}
	if cfg.Search.CacheTTL == 0 {
		cfg.Search.CacheTTL = app.Search.CacheTTL
	}
	if cfg.AITimeout == 0 {
		cfg.AITimeout = app.AI.Timeout
	}

	// app limits go first so explicit WithAdoptionOptions still win
	cfg.AdoptionOptions = append([]config.AdoptionOption{
		config.WithMaxCandidates(app.Adoption.MaxCandidates),
		config.WithDisplayLimit(app.Adoption.DisplayLimit),
		config.WithScoringConcurrency(app.Adoption.ScoringConcurrency),
		config.WithAIPolicy(app.AI.Timeout, app.AIAttempts()),
	}, cfg.AdoptionOptions...)

	return nil
}

// DefaultAITimeout bounds ad-copy and identification calls when nothing else does
const DefaultAITimeout = 20 * time.Second

// defaultConfig returns the default client configuration. Dependencies are
// created lazily in resolve; search caching stays off unless configured.
func defaultConfig() Config {
	return Config{Search: search.Options{}}
}

// own registers a dependency the client must close
func (c *Config) own(dep interface{}) {
	if closer, ok := dep.(io.Closer); ok {
		c.owned = append(c.owned, closer)
	}
}
