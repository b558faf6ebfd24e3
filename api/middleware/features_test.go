package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipierette/catbytes-portfolio/pkg/featureflags"
)

func TestFeatureFlagsMiddleware_InjectsManager(t *testing.T) {
	manager := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.AIScoring: false,
	})
	var aiScoring, adoption bool

	handler := FeatureFlagsMiddleware(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		aiScoring = featureflags.IsEnabled(r.Context(), featureflags.AIScoring)
		adoption = featureflags.IsEnabled(r.Context(), featureflags.AdoptionSearch)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/adopt-cat", nil))

	assert.False(t, aiScoring)
	assert.False(t, adoption, "flags missing from a static manager are off")
}

type flagObservation struct {
	method, route string
	status        int
}

type recordingObserver struct {
	seen []flagObservation
}

func (o *recordingObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	o.seen = append(o.seen, flagObservation{method, route, status})
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	observer := &recordingObserver{}
	router := chi.NewRouter()
	router.Use(MetricsMiddleware(observer))
	router.Get("/cats/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/cats/42", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/nope", nil))

	require.Len(t, observer.seen, 2)
	assert.Equal(t, flagObservation{"GET", "/cats/{id}", http.StatusAccepted}, observer.seen[0])
	assert.Equal(t, http.StatusNotFound, observer.seen[1].status)
}
