// ABOUTME: Listing collector shared by the sequential search queries
// ABOUTME: Deduplicates by URL and keeps first-seen order

package adoption

import "github.com/ipierette/catbytes-portfolio/core/domain"

// Collector accumulates listings across queries, unique by URL. The first
// listing seen for a URL wins and insertion order is preserved.
type Collector struct {
	seen     map[string]struct{}
	listings []domain.Listing
}

// NewCollector creates an empty collector
func NewCollector(capacity int) *Collector {
	return &Collector{
		seen:     make(map[string]struct{}, capacity),
		listings: make([]domain.Listing, 0, capacity),
	}
}

// Add stores listing unless its URL was already collected
func (c *Collector) Add(listing domain.Listing) bool {
	if _, ok := c.seen[listing.URL]; ok {
		return false
	}
	c.seen[listing.URL] = struct{}{}
	c.listings = append(c.listings, listing)
	return true
}

// Len returns the number of unique listings
func (c *Collector) Len() int {
	return len(c.listings)
}

// Listings returns the collected listings in insertion order
func (c *Collector) Listings() []domain.Listing {
	out := make([]domain.Listing, len(c.listings))
	copy(out, c.listings)
	return out
}
