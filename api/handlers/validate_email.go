// ABOUTME: Email validation handler
// ABOUTME: Always answers 200 with a verdict so the contact form can show inline hints

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

// EmailHandler serves POST /validate-email
type EmailHandler struct {
	validator interfaces.EmailValidator
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(validator interfaces.EmailValidator) *EmailHandler {
	return &EmailHandler{validator: validator}
}

// RegisterRoutes registers the email validation route
func (h *EmailHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "validateEmail",
		Method:      http.MethodPost,
		Path:        "/validate-email",
		Summary:     "Validate a contact email",
		Description: "Checks format, disposable domains, common typos and MX records",
		Tags:        []string{"Contact"},
	}, h.ValidateEmail)
}

// ValidateEmailInput defines the input for the ValidateEmail operation
type ValidateEmailInput struct {
	Body requests.ValidateEmailRequest
}

// ValidateEmailOutput defines the output for the ValidateEmail operation
type ValidateEmailOutput struct {
	Body *responses.ValidateEmailResponse
}

// ValidateEmail handles POST /validate-email
func (h *EmailHandler) ValidateEmail(ctx context.Context, input *ValidateEmailInput) (*ValidateEmailOutput, error) {
	if !featureflags.IsEnabled(ctx, featureflags.EmailValidation) {
		return nil, featureDisabled(featureflags.EmailValidation)
	}

	verdict := h.validator.Validate(ctx, input.Body.Email)
	return &ValidateEmailOutput{Body: mappers.ToValidateEmailResponse(verdict)}, nil
}
