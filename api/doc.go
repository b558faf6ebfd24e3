// Package api provides the HTTP API layer for the CatBytes portfolio backend.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
//   - server.go: Huma API configuration, CORS and the middleware chain
//   - handlers/: HTTP request handlers, one per endpoint
//   - dto/: request and response shapes plus mappers from domain types
//   - middleware/: request IDs and logging, feature flags, metrics, rate limiting
//
// # Endpoints
//
//	POST /adopt-cat       adoption listing search (never fails, degrades to fallback links)
//	POST /generate-ad     social-media ad copy for a cat description
//	POST /identify-cat    multipart photo upload, field "data"
//	POST /validate-email  contact-form email check, always 200
//	GET  /healthz         liveness, backends and feature flag states
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  30,
//	    RateWindow: time.Minute,
//	    Flags:      featureflags.NewEnvManager("FEATURE_", featureflags.Defaults()),
//	})
//	handlers.NewAdoptionHandler(adoptionService).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8080", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. Validation errors map to 400,
// missing configuration to 500, upstream AI failures to 502 (504 on timeout,
// 429 when the provider is throttling) and disabled features to 503.
package api
