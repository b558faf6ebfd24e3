package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/pkg/featureflags"
)

type mockSearcher struct {
	searchFunc func(ctx context.Context, filters domain.Filters) *domain.AdoptionResult
}

func (m *mockSearcher) Search(ctx context.Context, filters domain.Filters) *domain.AdoptionResult {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, filters)
	}
	return &domain.AdoptionResult{}
}

type mockGenerator struct {
	generateFunc func(ctx context.Context, description string) (*domain.AdPackage, error)
}

func (m *mockGenerator) Generate(ctx context.Context, description string) (*domain.AdPackage, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, description)
	}
	return &domain.AdPackage{}, nil
}

type mockIdentifier struct {
	identifyFunc func(ctx context.Context, image domain.Image) (*domain.CatProfile, error)
}

func (m *mockIdentifier) Identify(ctx context.Context, image domain.Image) (*domain.CatProfile, error) {
	if m.identifyFunc != nil {
		return m.identifyFunc(ctx, image)
	}
	return &domain.CatProfile{}, nil
}

type mockValidator struct {
	validateFunc func(ctx context.Context, email string) domain.EmailVerdict
}

func (m *mockValidator) Validate(ctx context.Context, email string) domain.EmailVerdict {
	if m.validateFunc != nil {
		return m.validateFunc(ctx, email)
	}
	return domain.EmailVerdict{Valid: true}
}

// withFlags installs a huma middleware that turns off the given flags
func withFlags(api huma.API, disabled ...featureflags.FeatureFlag) {
	flags := featureflags.Defaults()
	for _, f := range disabled {
		flags[f] = false
	}
	manager := featureflags.NewStaticManager(flags)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, featureflags.WithManager(ctx.Context(), manager)))
	})
}
