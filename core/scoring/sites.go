// ABOUTME: Source host helpers for scoring
// ABOUTME: Normalizes source labels and matches them against the site allowlists

package scoring

import "strings"

// Host strips scheme-less noise from a source label: lowercase, no "www.",
// no path or port.
func Host(source string) string {
	host := strings.ToLower(strings.TrimSpace(source))
	if i := strings.IndexAny(host, "/:? "); i >= 0 {
		host = host[:i]
	}
	return strings.TrimPrefix(host, "www.")
}

// MatchesSite reports whether source is one of sites or a subdomain of one.
func MatchesSite(source string, sites []string) bool {
	host := Host(source)
	if host == "" {
		return false
	}
	for _, site := range sites {
		site = Host(site)
		if site == "" {
			continue
		}
		if host == site || strings.HasSuffix(host, "."+site) {
			return true
		}
	}
	return false
}
