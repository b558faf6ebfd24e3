// ABOUTME: Configuration options for the CatBytes library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package catbytes

import (
	"time"

	"github.com/ipierette/catbytes-portfolio/core/config"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
	"github.com/ipierette/catbytes-portfolio/pkg/featureflags"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics sets the metrics sink shared by every service
func WithMetrics(metrics interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = metrics
		return nil
	}
}

// WithTextModel sets the generative model used for scoring, ads and identification
func WithTextModel(model interfaces.TextModel, modelName string) Option {
	return func(c *Config) error {
		c.TextModel = model
		c.ModelName = modelName
		return nil
	}
}

// WithSearchAPIKey sets the SerpAPI key; without it adoption search only returns fallbacks
func WithSearchAPIKey(key string) Option {
	return func(c *Config) error {
		c.Search.APIKey = key
		return nil
	}
}

// WithSearchEndpoint points the search service at another endpoint
func WithSearchEndpoint(endpoint string) Option {
	return func(c *Config) error {
		c.Search.Endpoint = endpoint
		return nil
	}
}

// WithSearchCacheTTL sets how long a query's hits are cached; 0 disables caching
func WithSearchCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl < 0 {
			return NewError(ErrorTypeConfiguration, "search cache TTL must be non-negative").
				WithContext("ttl", ttl.String())
		}
		c.Search.CacheTTL = ttl
		return nil
	}
}

// WithAdoptionOptions tunes the adoption pipeline
func WithAdoptionOptions(opts ...config.AdoptionOption) Option {
	return func(c *Config) error {
		c.AdoptionOptions = append(c.AdoptionOptions, opts...)
		return nil
	}
}

// WithAITimeout bounds each ad-copy and identification call
func WithAITimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		c.AITimeout = timeout
		return nil
	}
}

// WithMXResolver replaces the DNS resolver used by email validation
func WithMXResolver(resolver MXResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFlags sets the feature flags applied to every call made through the client
func WithFlags(manager featureflags.Manager) Option {
	return func(c *Config) error {
		c.Flags = manager
		return nil
	}
}
