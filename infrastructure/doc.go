// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
//   - cache/memory: in-process cache on patrickmn/go-cache
//   - cache/redis: shared cache on go-redis
//   - cache/sqlite: file-backed cache on modernc.org/sqlite
//   - http/standard: net/http client with retries for idempotent GETs
//   - llm/gemini: Gemini REST provider over the HTTP client
//   - llm/openai: OpenAI provider on sashabaranov/go-openai
//   - logger/structured: logrus-backed structured logger
//   - metrics: Prometheus collectors and the /metrics handler
//
// # Cache Implementations
//
// Every cache returns interfaces.ErrCacheMiss for absent or expired keys.
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "search:serp:gato", data, time.Hour)
//	value, err := cache.Get(ctx, "search:serp:gato")
//
//	shared, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//	local, err := sqlite.NewSQLiteCache("catbytes-cache.db", logger)
//
// # HTTP Client
//
// GETs are retried on network errors and 5xx answers with exponential
// backoff; POSTs are sent once.
//
//	client := standard.NewStandardHTTPClient(30*time.Second, standard.WithAttempts(1))
//
// # AI Providers
//
//	model := gemini.NewProvider(client, apiKey, "", gemini.WithMetrics(prom))
//	resp, err := model.Complete(ctx, interfaces.CompletionRequest{Messages: msgs, JSONMode: true})
package infrastructure
