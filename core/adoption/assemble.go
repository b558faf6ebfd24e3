// ABOUTME: Response assembly for adoption searches
// ABOUTME: Stable sort by score, display cap, and the two synthetic fallback listings

package adoption

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/core/search"
)

// FallbackScore is the fixed score of synthetic fallback listings
const FallbackScore = 0.5

const (
	messageFound     = "Encontramos %d anúncio(s) de adoção para você."
	messageFallbacks = "Não encontramos anúncios específicos agora. Tente estas buscas gerais:"
)

// Assemble sorts listings by descending score (ties keep insertion order),
// truncates to limit (0 means no limit) and substitutes the fallback pair
// when nothing survived. Meta carries only OnlyFallbacks and Returned; the
// caller fills in the rest.
func Assemble(listings []domain.Listing, filters domain.Filters, limit int) *domain.AdoptionResult {
	if len(listings) == 0 {
		fallbacks := Fallbacks(filters)
		return &domain.AdoptionResult{
			Listings: fallbacks,
			Message:  messageFallbacks,
			Meta: domain.AdoptionMeta{
				OnlyFallbacks: true,
				Returned:      len(fallbacks),
			},
		}
	}

	sorted := make([]domain.Listing, len(listings))
	copy(sorted, listings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	return &domain.AdoptionResult{
		Listings: sorted,
		Message:  fmt.Sprintf(messageFound, len(sorted)),
		Meta: domain.AdoptionMeta{
			Returned: len(sorted),
		},
	}
}

// Fallbacks returns the two generic links: a web search for the filters and
// the classifieds site's cat section.
func Fallbacks(filters domain.Filters) []domain.Listing {
	f := filters.Normalize()

	terms := []string{search.BasePhrase}
	for _, t := range []string{f.Color, f.Age, f.Location} {
		if t != "" {
			terms = append(terms, t)
		}
	}
	webQuery := strings.Join(terms, " ")

	classifiedsQuery := "adoção"
	if f.Location != "" {
		classifiedsQuery += " " + f.Location
	}

	return []domain.Listing{
		{
			Title:       "Buscar gatos para adoção no Google",
			Description: "Veja os resultados mais recentes para \"" + webQuery + "\" diretamente no buscador.",
			URL:         "https://www.google.com/search?q=" + url.QueryEscape(webQuery),
			Source:      "google.com",
			Score:       FallbackScore,
			ScoreSource: domain.ScoreSourceFallback,
		},
		{
			Title:       "Gatos para adoção na OLX",
			Description: "Anúncios de doação de gatos publicados por tutores e protetores na OLX.",
			URL:         "https://www.olx.com.br/animais-de-estimacao/gatos?q=" + url.QueryEscape(classifiedsQuery),
			Source:      "olx.com.br",
			Score:       FallbackScore,
			ScoreSource: domain.ScoreSourceFallback,
		},
	}
}
