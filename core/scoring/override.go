// ABOUTME: Adopted-listing override for top-tier sources
// ABOUTME: Forces the maximum score when the text or the AI says the cat was adopted

package scoring

import (
	"regexp"

	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/pkg/utils/textmatch"
)

// adoptedPattern runs on folded (lowercase, accent-free) text.
var adoptedPattern = regexp.MustCompile(
	`\b(ja\s+(foi\s+)?adotad[oa]s?|foi\s+adotad[oa]|foram\s+adotad[oa]s|ganhou\s+(um\s+)?(novo\s+)?lar|encontrou\s+(um\s+)?(novo\s+)?lar|ja\s+tem\s+(um\s+)?lar|already\s+adopted)\b`,
)

// AlreadyAdopted reports whether text says the animal was already placed
func AlreadyAdopted(text string) bool {
	return adoptedPattern.MatchString(textmatch.Fold(text))
}

// ApplyOverride forces score 1.0 and IsAdopted for a top-tier source whose
// text, or the AI verdict, says the cat already found a home. It reports
// whether the override fired.
func ApplyOverride(listing *domain.Listing, topTier []string) bool {
	if !MatchesSite(listing.Source, topTier) {
		return false
	}
	if !listing.IsAdopted && !AlreadyAdopted(listing.Text()) {
		return false
	}
	listing.Score = 1.0
	listing.IsAdopted = true
	listing.ScoreSource = domain.ScoreSourceOverride
	return true
}
