// ABOUTME: Maps raw search hits to listings and drops the ones that are not adoption ads
// ABOUTME: Rules: minimum description length, banned for-sale keywords, absolute http(s) URL

package adoption

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/pkg/utils/html"
	"github.com/ipierette/catbytes-portfolio/pkg/utils/textmatch"
)

const (
	// MinDescriptionLength is the shortest description (in runes) kept
	MinDescriptionLength = 20

	// DefaultTitle replaces missing titles
	DefaultTitle = "Gato para adoção"
)

// BannedKeywords signal a sale rather than an adoption. Matched as
// case- and accent-insensitive substrings of the description.
var BannedKeywords = []string{
	"venda",
	"vendo",
	"vende-se",
	"preço",
	"r$",
	"pedigree",
	"criatório",
	"gatil",
	"filhote de raça",
}

// Normalize turns a hit into a listing. It reports false when the hit must
// be dropped.
func Normalize(hit domain.SearchHit) (domain.Listing, bool) {
	description := html.StripHTML(hit.Snippet)
	if utf8.RuneCountInString(description) < MinDescriptionLength {
		return domain.Listing{}, false
	}
	if _, banned := textmatch.ContainsAny(description, BannedKeywords); banned {
		return domain.Listing{}, false
	}

	link, ok := absoluteURL(hit.Link)
	if !ok {
		return domain.Listing{}, false
	}

	title := html.StripHTML(hit.Title)
	if title == "" {
		title = DefaultTitle
	}

	return domain.Listing{
		Title:       title,
		Description: description,
		URL:         link.String(),
		Source:      sourceLabel(link, hit),
	}, true
}

func absoluteURL(raw string) (*url.URL, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, false
	}
	if u.Hostname() == "" {
		return nil, false
	}
	return u, true
}

// sourceLabel prefers the hostname without "www."; the provider's display
// labels are only used if the hostname is somehow empty.
func sourceLabel(u *url.URL, hit domain.SearchHit) string {
	if host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www."); host != "" {
		return host
	}
	if hit.Source != "" {
		return hit.Source
	}
	return hit.DisplayedLink
}
