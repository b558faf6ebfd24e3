// ABOUTME: Request DTOs for the CatBytes API endpoints
// ABOUTME: Field names match what the portfolio front-end already sends

package requests

import "strings"

// AdoptCatRequest is the adoption search form. Every field is optional.
type AdoptCatRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Age         string `json:"age,omitempty" maxLength:"60" doc:"Desired age, free text (e.g. filhote, adulto)" example:"filhote"`
	Color       string `json:"color,omitempty" maxLength:"60" doc:"Coat color" example:"preto"`
	Localizacao string `json:"localizacao,omitempty" maxLength:"120" doc:"City or state" example:"São Paulo"`
}

// GenerateAdRequest asks for a social-media adoption post
type GenerateAdRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Description string `json:"description" doc:"Free-text description of the cat"`
}

// ValidateEmailRequest is the contact-form email check
type ValidateEmailRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Email string `json:"email" doc:"Address typed by the visitor"`
}

// Trimmed returns a copy with surrounding whitespace removed
func (r AdoptCatRequest) Trimmed() AdoptCatRequest {
	return AdoptCatRequest{
		Age:         strings.TrimSpace(r.Age),
		Color:       strings.TrimSpace(r.Color),
		Localizacao: strings.TrimSpace(r.Localizacao),
	}
}
