// ABOUTME: Adoption search handler
// ABOUTME: Runs the search pipeline; upstream failures never surface, they become fallback links

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

// AdoptionHandler serves POST /adopt-cat
type AdoptionHandler struct {
	searcher interfaces.AdoptionSearcher
}

// NewAdoptionHandler creates a new adoption handler
func NewAdoptionHandler(searcher interfaces.AdoptionSearcher) *AdoptionHandler {
	return &AdoptionHandler{searcher: searcher}
}

// RegisterRoutes registers the adoption route
func (h *AdoptionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "adoptCat",
		Method:      http.MethodPost,
		Path:        "/adopt-cat",
		Summary:     "Search cat adoption listings",
		Description: "Searches the web for cat adoption ads matching the filters, scores and ranks them. " +
			"When nothing usable is found two generic search links are returned with meta.onlyFallbacks=true.",
		Tags: []string{"Adoption"},
	}, h.AdoptCat)
}

// AdoptCatInput defines the input for the AdoptCat operation
type AdoptCatInput struct {
	Body *requests.AdoptCatRequest
}

// AdoptCatOutput defines the output for the AdoptCat operation
type AdoptCatOutput struct {
	Body *responses.AdoptCatResponse
}

// AdoptCat handles POST /adopt-cat
func (h *AdoptionHandler) AdoptCat(ctx context.Context, input *AdoptCatInput) (*AdoptCatOutput, error) {
	if !featureflags.IsEnabled(ctx, featureflags.AdoptionSearch) {
		return nil, featureDisabled(featureflags.AdoptionSearch)
	}

	result := h.searcher.Search(ctx, mappers.ToFilters(input.Body))
	return &AdoptCatOutput{Body: mappers.ToAdoptCatResponse(result)}, nil
}
