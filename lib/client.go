// ABOUTME: Main client for the CatBytes library: adoption search, ad copy, photo identification, email checks
// ABOUTME: Offers a clean API for using core functionality without HTTP dependencies

package catbytes

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/ipierette/catbytes-portfolio/core/adcopy"
	"github.com/ipierette/catbytes-portfolio/core/adoption"
	"github.com/ipierette/catbytes-portfolio/core/config"
	"github.com/ipierette/catbytes-portfolio/core/email"
	"github.com/ipierette/catbytes-portfolio/core/identify"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
	"github.com/ipierette/catbytes-portfolio/core/search"
	appconfig "github.com/ipierette/catbytes-portfolio/pkg/config"
	"github.com/ipierette/catbytes-portfolio/pkg/featureflags"
)

// Client is the main entry point for the CatBytes library
type Client struct {
	searchService   *search.SearchService
	adoptionService *adoption.AdoptionService
	adService       *adcopy.AdService
	identifyService *identify.IdentifyService
	emailService    *email.EmailService

	deps   interfaces.Dependencies
	config Config

	closers   []io.Closer
	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
}

// Config holds the configuration for the client
type Config struct {
	Cache      interfaces.Cache
	HTTPClient interfaces.HTTPClient
	Logger     interfaces.Logger
	Metrics    interfaces.Metrics

	// TextModel is optional; without it scoring is heuristic-only and the
	// ad and identification calls return a configuration error
	TextModel interfaces.TextModel
	ModelName string

	Search          search.Options
	AdoptionOptions []config.AdoptionOption
	AITimeout       time.Duration
	Resolver        MXResolver

	// Flags default to featureflags.Defaults()
	Flags featureflags.Manager

	// App, when set by WithConfig, supplies whatever the options above left empty
	App *appconfig.Config

	owned []io.Closer
}

// NewClient creates a new CatBytes client with the given options
func NewClient(options ...Option) (*Client, error) {
	cfg := defaultConfig()

	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	client := &Client{}
	err := resolve(&cfg)
	client.closers = cfg.owned
	if err != nil {
		_ = client.closeOwned()
		return nil, err
	}

	deps := interfaces.Dependencies{
		Cache:      cfg.Cache,
		HTTPClient: cfg.HTTPClient,
		Logger:     cfg.Logger,
		TextModel:  cfg.TextModel,
		Metrics:    cfg.Metrics,
	}

	adoptionCfg := config.NewAdoptionConfig(cfg.AdoptionOptions...)

	client.deps = deps
	client.config = cfg
	client.searchService = search.NewSearchService(deps, cfg.Search)
	client.adoptionService = adoption.NewAdoptionService(deps, client.searchService, adoptionCfg, cfg.ModelName)
	client.adService = adcopy.NewAdService(deps, adcopy.Options{Model: cfg.ModelName, Timeout: cfg.AITimeout})
	client.identifyService = identify.NewIdentifyService(deps, identify.Options{Model: cfg.ModelName, Timeout: cfg.AITimeout})
	client.emailService = email.NewEmailService(deps, email.Options{Resolver: cfg.Resolver})

	return client, nil
}

// resolve fills everything the options left empty, from App first and then
// from the library defaults
func resolve(cfg *Config) error {
	if cfg.App != nil {
		if err := applyApp(cfg); err != nil {
			return err
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger()
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = DefaultHTTPClient()
	}
	if cfg.Cache == nil {
		cfg.Cache = DefaultMemoryCache()
	}
	cfg.Metrics = interfaces.MetricsOrNop(cfg.Metrics)
	if cfg.AITimeout == 0 {
		cfg.AITimeout = DefaultAITimeout
	}
	if cfg.Flags == nil {
		cfg.Flags = featureflags.NewStaticManager(featureflags.Defaults())
	}
	return nil
}

// Close releases caches the client opened itself
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
		err = c.closeOwned()
	})
	return err
}

func (c *Client) closeOwned() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}

// begin checks the client is open and the feature is on, and attaches the
// client's flags to ctx
func (c *Client) begin(ctx context.Context, flag featureflags.FeatureFlag) (context.Context, error) {
	c.mu.RLock()
	closed := c.closed
	c.mu.RUnlock()
	if closed {
		return ctx, ErrClientClosed
	}

	if _, ok := featureflags.Lookup(ctx); !ok {
		ctx = featureflags.WithManager(ctx, c.config.Flags)
	}
	if !featureflags.IsEnabled(ctx, flag) {
		return ctx, NewError(ErrorTypeConfiguration, "feature disabled").
			WithContext("flag", string(flag))
	}
	return ctx, nil
}

// FindCats runs the adoption search. Upstream failures never surface here:
// they degrade to fewer listings or to the two fallback links.
func (c *Client) FindCats(ctx context.Context, filters Filters) (*AdoptionResult, error) {
	ctx, err := c.begin(ctx, featureflags.AdoptionSearch)
	if err != nil {
		return nil, err
	}
	return c.adoptionService.Search(ctx, filters), nil
}

// GenerateAd writes a social-media adoption post for description
func (c *Client) GenerateAd(ctx context.Context, description string) (*AdPackage, error) {
	ctx, err := c.begin(ctx, featureflags.AdGeneration)
	if err != nil {
		return nil, err
	}
	pkg, err := c.adService.Generate(ctx, description)
	if err != nil {
		return nil, translateError(err)
	}
	return pkg, nil
}

// IdentifyCat estimates age, breeds and temperament from a photo
func (c *Client) IdentifyCat(ctx context.Context, image Image) (*CatProfile, error) {
	ctx, err := c.begin(ctx, featureflags.CatIdentification)
	if err != nil {
		return nil, err
	}
	profile, err := c.identifyService.Identify(ctx, image)
	if err != nil {
		return nil, translateError(err)
	}
	return profile, nil
}

// ValidateEmail checks a contact-form address. Rejections are reported in
// the verdict, not as errors.
func (c *Client) ValidateEmail(ctx context.Context, address string) (EmailVerdict, error) {
	ctx, err := c.begin(ctx, featureflags.EmailValidation)
	if err != nil {
		return EmailVerdict{}, err
	}
	return c.emailService.Validate(ctx, address), nil
}

// Adoption exposes the adoption pipeline for the HTTP handlers
func (c *Client) Adoption() interfaces.AdoptionSearcher { return c.adoptionService }

// Ads exposes the ad writer for the HTTP handlers
func (c *Client) Ads() interfaces.AdGenerator { return c.adService }

// Identifier exposes the photo identifier for the HTTP handlers
func (c *Client) Identifier() interfaces.CatIdentifier { return c.identifyService }

// Emails exposes the email validator for the HTTP handlers
func (c *Client) Emails() interfaces.EmailValidator { return c.emailService }

// Flags returns the feature flag manager in effect
func (c *Client) Flags() featureflags.Manager { return c.config.Flags }

// SearchConfigured reports whether a search API key is present
func (c *Client) SearchConfigured() bool { return c.searchService.Configured() }

// AIProvider returns the AI provider name, empty when none is configured
func (c *Client) AIProvider() string {
	if c.deps.TextModel == nil {
		return ""
	}
	return c.deps.TextModel.Name()
}
