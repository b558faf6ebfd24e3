// ABOUTME: Query builder for adoption searches
// ABOUTME: Expands form filters into progressively broader web-search queries

package search

import (
	"strings"

	"github.com/ipierette/catbytes-portfolio/core/domain"
)

const (
	// BasePhrase is kept in every query
	BasePhrase = "gato para adoção"

	// ExclusionToken suppresses "filhote à venda" noise
	ExclusionToken = "-venda"
)

// BuildQueries returns the queries for f, most specific first:
//
//  1. base + color + age + location + (site:a OR site:b ...) + exclusion
//  2. base + color + location + exclusion
//  3. base + location
//
// Consecutive duplicates are collapsed, so empty filters still yield at
// least one valid query.
func BuildQueries(f domain.Filters, sites []string) []string {
	f = f.Normalize()

	candidates := []string{
		joinTerms(BasePhrase, f.Color, f.Age, f.Location, siteClause(sites), ExclusionToken),
		joinTerms(BasePhrase, f.Color, f.Location, ExclusionToken),
		joinTerms(BasePhrase, f.Location),
	}

	queries := make([]string, 0, len(candidates))
	for _, q := range candidates {
		if len(queries) > 0 && queries[len(queries)-1] == q {
			continue
		}
		queries = append(queries, q)
	}
	return queries
}

// siteClause renders "(site:a OR site:b)"; empty when no sites are given
func siteClause(sites []string) string {
	parts := make([]string, 0, len(sites))
	for _, s := range sites {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		parts = append(parts, "site:"+s)
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

func joinTerms(terms ...string) string {
	kept := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, " ")
}
