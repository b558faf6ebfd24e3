// ABOUTME: Health check handler
// ABOUTME: Reports liveness, configured backends and feature flag states

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ipierette/catbytes-portfolio/api/dto/responses"
	"github.com/ipierette/catbytes-portfolio/pkg/featureflags"
)

// HealthInfo is static deployment information shown on /healthz
type HealthInfo struct {
	Cache  string
	AI     string
	Search bool
}

// HealthHandler serves GET /healthz
type HealthHandler struct {
	info HealthInfo
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(info HealthInfo) *HealthHandler {
	return &HealthHandler{info: info}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Health check",
		Tags:        []string{"Ops"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body *responses.HealthResponse
}

// Health handles GET /healthz
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	features := make(map[string]bool, len(featureflags.All))
	for _, flag := range featureflags.All {
		features[string(flag)] = featureflags.IsEnabled(ctx, flag)
	}

	return &HealthOutput{Body: &responses.HealthResponse{
		Status:   "ok",
		Cache:    h.info.Cache,
		AI:       h.info.AI,
		Search:   h.info.Search,
		Features: features,
	}}, nil
}
