// ABOUTME: Public types for the CatBytes library API
// ABOUTME: Re-exports the domain models callers pass in and get back

package catbytes

import (
	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/core/email"
)

// Filters are the optional adoption search filters
type Filters = domain.Filters

// Listing is one scored adoption ad
type Listing = domain.Listing

// AdoptionResult is the ranked search response with its metadata
type AdoptionResult = domain.AdoptionResult

// AdPackage is a generated social-media post with its posting plan
type AdPackage = domain.AdPackage

// Image is an uploaded photo
type Image = domain.Image

// CatProfile is what the model could tell about a photographed cat
type CatProfile = domain.CatProfile

// EmailVerdict is the result of validating one address
type EmailVerdict = domain.EmailVerdict

// MXResolver looks up mail exchangers for a domain
type MXResolver = email.MXResolver
