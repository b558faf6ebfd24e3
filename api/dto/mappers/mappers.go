// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Keeps the Portuguese wire names out of the core packages

package mappers

import (
	"github.com/ipierette/catbytes-portfolio/api/dto/requests"
	"github.com/ipierette/catbytes-portfolio/api/dto/responses"
	"github.com/ipierette/catbytes-portfolio/core/domain"
)

// ToFilters converts the search form into domain filters. A missing form
// means no filters.
func ToFilters(form *requests.AdoptCatRequest) domain.Filters {
	if form == nil {
		return domain.Filters{}
	}
	req := form.Trimmed()
	return domain.Filters{
		Age:      req.Age,
		Color:    req.Color,
		Location: req.Localizacao,
	}
}

// ToAdoptCatResponse converts a search result. A nil result maps to an
// empty, unsuccessful response.
func ToAdoptCatResponse(result *domain.AdoptionResult) *responses.AdoptCatResponse {
	if result == nil {
		return &responses.AdoptCatResponse{
			Anuncios: []responses.ListingResponse{},
			Meta:     responses.AdoptionMetaResponse{Termos: []string{}},
		}
	}

	listings := make([]responses.ListingResponse, 0, len(result.Listings))
	for _, l := range result.Listings {
		listings = append(listings, ToListingResponse(l))
	}

	queries := result.Meta.Queries
	if queries == nil {
		queries = []string{}
	}

	return &responses.AdoptCatResponse{
		Sucesso:    true,
		Quantidade: len(listings),
		Anuncios:   listings,
		Mensagem:   result.Message,
		Meta: responses.AdoptionMetaResponse{
			Engine:        result.Meta.Engine,
			Termos:        queries,
			OnlyFallbacks: result.Meta.OnlyFallbacks,
			AIScoring:     result.Meta.AIScoring,
			Scorer:        result.Meta.Scorer,
			Candidatos:    result.Meta.Candidates,
			Retornados:    result.Meta.Returned,
		},
	}
}

// ToListingResponse converts one listing
func ToListingResponse(l domain.Listing) responses.ListingResponse {
	return responses.ListingResponse{
		Titulo:      l.Title,
		Descricao:   l.Description,
		URL:         l.URL,
		Fonte:       l.Source,
		Score:       l.Score,
		IsAdopted:   l.IsAdopted,
		ScoreSource: string(l.ScoreSource),
		Motivo:      l.Reason,
	}
}

// ToGenerateAdResponse converts a generated ad package
func ToGenerateAdResponse(pkg *domain.AdPackage) *responses.GenerateAdResponse {
	if pkg == nil {
		return &responses.GenerateAdResponse{}
	}

	data := responses.AdPackageResponse{
		Title:    pkg.Title,
		AdCopy:   pkg.AdCopy,
		Hashtags: pkg.Hashtags,
		Raw:      pkg.Raw,
	}
	if p := pkg.PostingPlan; p != nil {
		plan := &responses.PostingPlanResponse{
			Platforms:     p.Platforms,
			WhereToPost:   p.WhereToPost,
			WhoToTag:      p.WhoToTag,
			CTATips:       p.CTATips,
			CrosspostTips: p.CrosspostTips,
		}
		for _, slot := range p.When {
			plan.When = append(plan.When, responses.PostingSlotResponse{Day: slot.Day, Time: slot.Time})
		}
		data.PostingPlan = plan
	}

	return &responses.GenerateAdResponse{OK: true, Data: data}
}

// ToIdentifyCatResponse converts a cat profile; slices are never null
func ToIdentifyCatResponse(p *domain.CatProfile) *responses.IdentifyCatResponse {
	if p == nil {
		return &responses.IdentifyCatResponse{Racas: []string{}, Personalidade: []string{}}
	}
	out := &responses.IdentifyCatResponse{
		Idade:         p.Age,
		Racas:         p.Breeds,
		Personalidade: p.Personality,
		Observacoes:   p.Notes,
	}
	if out.Racas == nil {
		out.Racas = []string{}
	}
	if out.Personalidade == nil {
		out.Personalidade = []string{}
	}
	return out
}

// ToValidateEmailResponse converts an email verdict
func ToValidateEmailResponse(v domain.EmailVerdict) *responses.ValidateEmailResponse {
	return &responses.ValidateEmailResponse{
		Valid:      v.Valid,
		Reason:     string(v.Reason),
		Suggestion: v.Suggestion,
	}
}
