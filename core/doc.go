// Package core contains the business logic for the CatBytes API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
//   - domain: pure models (Listing, Filters, AdoptionResult, AdPackage, CatProfile, EmailVerdict)
//   - search: query builder and the SerpAPI search client
//   - adoption: normalization, dedupe, assembly and fallbacks for the adoption search
//   - scoring: heuristic and AI scorers, the adopted override and the concurrent runner
//   - adcopy, identify: AI ad writer and photo identifier
//   - email: contact-form address validation
//   - llm: JSON extraction from model output and shared upstream errors
//   - config: pipeline limits, allowlists and heuristic weights
//   - errors: typed errors mapped to HTTP statuses by the API layer
//   - interfaces: contracts for external dependencies (cache, HTTP, logger, text model, metrics)
//
// # Design Principles
//
//   - No web framework dependencies
//   - All external dependencies are injected via interfaces.Dependencies
//   - Business logic is testable in isolation with func-field mocks
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	    TextModel:  myModel,      // optional; heuristic scoring without it
//	}
//
//	searcher := search.NewSearchService(deps, search.Options{APIKey: key})
//	pipeline := adoption.NewAdoptionService(deps, searcher, config.NewAdoptionConfig(), "")
//	result := pipeline.Search(ctx, domain.Filters{Color: "preto"})
package core
