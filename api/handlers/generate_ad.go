// ABOUTME: Ad generation handler
// ABOUTME: Turns a free-text cat description into a social-media adoption post

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ipierette/catbytes-portfolio/api/dto/mappers"
	"github.com/ipierette/catbytes-portfolio/api/dto/requests"
	"github.com/ipierette/catbytes-portfolio/api/dto/responses"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
	"github.com/ipierette/catbytes-portfolio/pkg/featureflags"
)

// AdHandler serves POST /generate-ad
type AdHandler struct {
	generator interfaces.AdGenerator
}

// NewAdHandler creates a new ad handler
func NewAdHandler(generator interfaces.AdGenerator) *AdHandler {
	return &AdHandler{generator: generator}
}

// RegisterRoutes registers the ad generation route
func (h *AdHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "generateAd",
		Method:      http.MethodPost,
		Path:        "/generate-ad",
		Summary:     "Generate an adoption ad",
		Description: "Writes a title, ad copy, hashtags and a posting plan for a cat up for adoption",
		Tags:        []string{"AI"},
	}, h.GenerateAd)
}

// GenerateAdInput defines the input for the GenerateAd operation
type GenerateAdInput struct {
	Body requests.GenerateAdRequest
}

// GenerateAdOutput defines the output for the GenerateAd operation
type GenerateAdOutput struct {
	Body *responses.GenerateAdResponse
}

// GenerateAd handles POST /generate-ad
func (h *AdHandler) GenerateAd(ctx context.Context, input *GenerateAdInput) (*GenerateAdOutput, error) {
	if !featureflags.IsEnabled(ctx, featureflags.AdGeneration) {
		return nil, featureDisabled(featureflags.AdGeneration)
	}

	pkg, err := h.generator.Generate(ctx, input.Body.Description)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &GenerateAdOutput{Body: mappers.ToGenerateAdResponse(pkg)}, nil
}
