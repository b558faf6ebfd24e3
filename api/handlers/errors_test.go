package handlers

import (
	"fmt"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"

	"github.com/ipierette/catbytes-portfolio/core/errors"
	"github.com/ipierette/catbytes-portfolio/pkg/featureflags"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "nil error returns nil",
			input:          nil,
			expectedStatus: 0,
		},
		{
			name:           "NotFoundError returns 404",
			input:          &errors.NotFoundError{Resource: "listing", ID: "x"},
			expectedStatus: 404,
			expectedInMsg:  "listing not found",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "description", Message: "is required"},
			expectedStatus: 400,
			expectedInMsg:  "description",
		},
		{
			name:           "ConfigurationError returns 500",
			input:          &errors.ConfigurationError{Setting: "AI provider"},
			expectedStatus: 500,
			expectedInMsg:  "AI provider is not configured",
		},
		{
			name:           "ExternalAPIError with 500 returns 502",
			input:          &errors.ExternalAPIError{StatusCode: 500, Message: "server error"},
			expectedStatus: 502,
			expectedInMsg:  "External service error",
		},
		{
			name:           "ExternalAPIError with 504 returns 504",
			input:          &errors.ExternalAPIError{StatusCode: 504, Message: "deadline"},
			expectedStatus: 504,
			expectedInMsg:  "timed out",
		},
		{
			name:           "ExternalAPIError with 429 returns 429",
			input:          &errors.ExternalAPIError{StatusCode: 429, Message: "rate limited"},
			expectedStatus: 429,
			expectedInMsg:  "Rate limited by external service",
		},
		{
			name:           "ExternalAPIError with 404 returns 400",
			input:          &errors.ExternalAPIError{StatusCode: 404, Message: "not found"},
			expectedStatus: 400,
			expectedInMsg:  "External service request error",
		},
		{
			name:           "ExternalAPIError with unexpected status returns 500",
			input:          &errors.ExternalAPIError{StatusCode: 200, Message: "ok but error"},
			expectedStatus: 500,
			expectedInMsg:  "Unexpected external service response",
		},
		{
			name:           "wrapped ExternalAPIError keeps mapping",
			input:          fmt.Errorf("generate: %w", &errors.ExternalAPIError{StatusCode: 503}),
			expectedStatus: 502,
			expectedInMsg:  "External service error",
		},
		{
			name:           "wrapped ValidationError returns 400",
			input:          fmt.Errorf("context: %w", &errors.ValidationError{Field: "data", Message: "required"}),
			expectedStatus: 400,
			expectedInMsg:  "data",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			if tt.input == nil {
				assert.Nil(t, result)
				return
			}

			humaErr, ok := result.(*huma.ErrorModel)
			assert.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedInMsg)
		})
	}
}

func TestFeatureDisabled(t *testing.T) {
	humaErr, ok := featureDisabled(featureflags.AdGeneration).(*huma.ErrorModel)

	assert.True(t, ok)
	assert.Equal(t, 503, humaErr.Status)
	assert.Contains(t, humaErr.Detail, "ad_generation")
}
