// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/ipierette/catbytes-portfolio/core/errors"
	"github.com/ipierette/catbytes-portfolio/pkg/featureflags"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsConfiguration(err) {
		return huma.Error500InternalServerError(err.Error())
	}

	if apiErr, ok := errors.AsExternalAPI(err); ok {
		switch {
		case apiErr.StatusCode == 504:
			return huma.Error504GatewayTimeout("External service timed out", err)
		case apiErr.StatusCode >= 500:
			return huma.Error502BadGateway("External service error", err)
		case apiErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by external service")
		case apiErr.StatusCode >= 400:
			return huma.Error400BadRequest("External service request error", err)
		default:
			return huma.Error500InternalServerError("Unexpected external service response", err)
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}

// featureDisabled is returned by handlers whose flag is off
func featureDisabled(flag featureflags.FeatureFlag) error {
	return huma.Error503ServiceUnavailable("Feature disabled: " + string(flag))
}
