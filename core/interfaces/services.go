// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts the HTTP handlers and the library facade depend on

package interfaces

import (
	"context"

	"github.com/ipierette/catbytes-portfolio/core/domain"
)

// AdoptionSearcher runs the adoption-listing search pipeline.
type AdoptionSearcher interface {
	Search(ctx context.Context, filters domain.Filters) *domain.AdoptionResult
}

// AdGenerator writes social-media adoption ads.
type AdGenerator interface {
	Generate(ctx context.Context, description string) (*domain.AdPackage, error)
}

// CatIdentifier estimates age, breed and temperament from a photo.
type CatIdentifier interface {
	Identify(ctx context.Context, image domain.Image) (*domain.CatProfile, error)
}

// EmailValidator checks contact-form email addresses.
type EmailValidator interface {
	Validate(ctx context.Context, email string) domain.EmailVerdict
}
