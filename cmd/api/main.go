// ABOUTME: Main entry point for the CatBytes API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ipierette/catbytes-portfolio/api"
	"github.com/ipierette/catbytes-portfolio/api/handlers"
	"github.com/ipierette/catbytes-portfolio/api/middleware"
	stdhttp "github.com/ipierette/catbytes-portfolio/infrastructure/http/standard"
	"github.com/ipierette/catbytes-portfolio/infrastructure/logger/structured"
	"github.com/ipierette/catbytes-portfolio/infrastructure/metrics"
	catbytes "github.com/ipierette/catbytes-portfolio/lib"
	"github.com/ipierette/catbytes-portfolio/pkg/config"
	"github.com/ipierette/catbytes-portfolio/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	logger.Info("Starting CatBytes API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"cache_type":  cfg.Cache.Type,
		"ai_provider": cfg.AI.Provider,
		"ai_ready":    cfg.AIConfigured(),
		"search":      cfg.Search.APIKey != "",
	})

	prom := metrics.NewPrometheus()
	flags := featureflags.NewEnvManager("FEATURE_", featureflags.Defaults())

	// Outbound calls carry the inbound request ID. Searches are not retried.
	httpClient := stdhttp.NewStandardHTTPClient(catbytes.DefaultHTTPTimeout,
		stdhttp.WithAttempts(1),
		stdhttp.WithTransport(&middleware.LoggingRoundTripper{
			Transport: http.DefaultTransport,
			Logger:    logger,
		}),
	)

	client, err := catbytes.NewClient(
		catbytes.WithConfig(cfg),
		catbytes.WithLogger(logger),
		catbytes.WithHTTPClient(httpClient),
		catbytes.WithMetrics(prom),
		catbytes.WithFlags(flags),
	)
	if err != nil {
		logger.Error("Failed to initialize services", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer client.Close()

	if !client.SearchConfigured() {
		logger.Warn("SERPAPI_KEY not set, adoption search will only return fallback links", nil)
	}
	if client.AIProvider() == "" {
		logger.Warn("AI provider not configured, scoring is heuristic-only and AI endpoints return 500", map[string]interface{}{
			"ai_provider": cfg.AI.Provider,
		})
	}

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:         logger,
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Flags:          flags,
		Metrics:        prom,
	})

	handlers.NewAdoptionHandler(client.Adoption()).RegisterRoutes(humaAPI)
	handlers.NewAdHandler(client.Ads()).RegisterRoutes(humaAPI)
	handlers.NewIdentifyHandler(client.Identifier()).RegisterRoutes(humaAPI)
	handlers.NewEmailHandler(client.Emails()).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(handlers.HealthInfo{
		Cache:  cfg.Cache.Type,
		AI:     client.AIProvider(),
		Search: client.SearchConfigured(),
	}).RegisterRoutes(humaAPI)

	router.Handle("/metrics", prom.Handler())

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      90 * time.Second, // adoption search with AI scoring can take a while
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}
