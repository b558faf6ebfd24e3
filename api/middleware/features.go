// ABOUTME: Feature flag middleware
// ABOUTME: Attaches the flag manager to each request context so core services can consult it

package middleware

import (
	"net/http"

	"github.com/ipierette/catbytes-portfolio/pkg/featureflags"
)

// FeatureFlagsMiddleware makes manager visible through featureflags.FromContext
func FeatureFlagsMiddleware(manager featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(featureflags.WithManager(r.Context(), manager)))
		})
	}
}
