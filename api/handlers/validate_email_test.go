package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipierette/catbytes-portfolio/api/dto/responses"
	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/pkg/featureflags"
)

func TestEmailHandler_ValidateEmail_AlwaysOK(t *testing.T) {
	tests := []struct {
		email   string
		verdict domain.EmailVerdict
	}{
		{"ana@gmail.com", domain.EmailVerdict{Valid: true}},
		{"ana@gmial.com", domain.EmailVerdict{Reason: domain.EmailTypo, Suggestion: "gmail.com"}},
		{"", domain.EmailVerdict{Reason: domain.EmailEmpty}},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			validator := &mockValidator{
				validateFunc: func(ctx context.Context, email string) domain.EmailVerdict {
					assert.Equal(t, tt.email, email)
					return tt.verdict
				},
			}
			_, api := humatest.New(t)
			NewEmailHandler(validator).RegisterRoutes(api)

			resp := api.Post("/validate-email", map[string]interface{}{"email": tt.email})

			require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
			var body responses.ValidateEmailResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.verdict.Valid, body.Valid)
			assert.Equal(t, string(tt.verdict.Reason), body.Reason)
			assert.Equal(t, tt.verdict.Suggestion, body.Suggestion)
		})
	}
}

func TestEmailHandler_ValidateEmail_FeatureDisabled(t *testing.T) {
	_, api := humatest.New(t)
	withFlags(api, featureflags.EmailValidation)
	NewEmailHandler(&mockValidator{}).RegisterRoutes(api)

	resp := api.Post("/validate-email", map[string]interface{}{"email": "a@b.com"})

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}
