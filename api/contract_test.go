// ABOUTME: Wire-format tests for the JSON the portfolio front-end reads
// ABOUTME: Fails when a field name or type the site depends on changes

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipierette/catbytes-portfolio/api/handlers"
	"github.com/ipierette/catbytes-portfolio/core/domain"
)

type fixedSearcher struct {
	result *domain.AdoptionResult
}

func (f fixedSearcher) Search(ctx context.Context, _ domain.Filters) *domain.AdoptionResult {
	return f.result
}

func postJSON(t *testing.T, h http.Handler, path, body string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestContract_AdoptCat(t *testing.T) {
	humaAPI, router := NewAPI()
	handlers.NewAdoptionHandler(fixedSearcher{result: &domain.AdoptionResult{
		Listings: []domain.Listing{{
			Title: "Mia", Description: "Gatinha dócil", URL: "https://catland.org.br/mia",
			Source: "catland.org.br", Score: 0.8, ScoreSource: domain.ScoreSourceAI,
		}},
		Message: "ok",
		Meta:    domain.AdoptionMeta{Engine: "google", Queries: []string{"gato para adoção"}, Returned: 1},
	}}).RegisterRoutes(humaAPI)

	out := postJSON(t, router, "/adopt-cat", `{"color":"preto"}`)

	for _, key := range []string{"sucesso", "quantidade", "anuncios", "mensagem", "meta"} {
		assert.Contains(t, out, key)
	}
	assert.Equal(t, true, out["sucesso"])

	anuncios, ok := out["anuncios"].([]interface{})
	require.True(t, ok)
	require.Len(t, anuncios, 1)
	listing := anuncios[0].(map[string]interface{})
	for _, key := range []string{"titulo", "descricao", "url", "fonte", "score", "is_adopted"} {
		assert.Contains(t, listing, key)
	}

	meta := out["meta"].(map[string]interface{})
	for _, key := range []string{"engine", "termos", "onlyFallbacks", "aiScoring", "candidatos", "retornados"} {
		assert.Contains(t, meta, key)
	}
}

func TestContract_AdoptCat_NeverNullArrays(t *testing.T) {
	humaAPI, router := NewAPI()
	handlers.NewAdoptionHandler(fixedSearcher{result: &domain.AdoptionResult{}}).RegisterRoutes(humaAPI)

	out := postJSON(t, router, "/adopt-cat", `{}`)

	assert.Equal(t, []interface{}{}, out["anuncios"])
	assert.Equal(t, []interface{}{}, out["meta"].(map[string]interface{})["termos"])
}
