package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipierette/catbytes-portfolio/core/domain"
	catbytes "github.com/ipierette/catbytes-portfolio/lib"
)

func TestRenderAdoption(t *testing.T) {
	result := &catbytes.AdoptionResult{
		Message: "Encontramos 2 anúncio(s) de adoção.",
		Listings: []catbytes.Listing{
			{Title: "Mia", Source: "catland.org.br", URL: "https://catland.org.br/mia", Score: 0.92,
				ScoreSource: domain.ScoreSourceAI, Description: "Gatinha dócil", Reason: "anúncio de ONG"},
			{Title: "Tom", Source: "ampara.org.br", URL: "https://ampara.org.br/tom", Score: 0.2,
				ScoreSource: domain.ScoreSourceOverride, IsAdopted: true},
		},
		Meta: domain.AdoptionMeta{Queries: []string{"gato para adoção preto"}},
	}

	var buf bytes.Buffer
	require.NoError(t, renderAdoption(&buf, result))
	out := buf.String()

	assert.Contains(t, out, " 1. Mia")
	assert.Contains(t, out, "score: 0.92 (ai)")
	assert.Contains(t, out, "motivo: anúncio de ONG")
	assert.Contains(t, out, "[já adotado]")
	assert.Contains(t, out, "termos: gato para adoção preto")
	assert.Less(t, strings.Index(out, "Mia"), strings.Index(out, "Tom"))
}

func TestRenderEmail(t *testing.T) {
	tests := []struct {
		verdict catbytes.EmailVerdict
		want    string
	}{
		{catbytes.EmailVerdict{Valid: true}, "a@gmail.com: ok\n"},
		{catbytes.EmailVerdict{Reason: domain.EmailTypo, Suggestion: "gmail.com"}, "a@gmail.com: typo (você quis dizer gmail.com?)\n"},
		{catbytes.EmailVerdict{Reason: domain.EmailDisposable}, "a@gmail.com: disposable\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, renderEmail(&buf, "a@gmail.com", tt.verdict))
		assert.Equal(t, tt.want, buf.String())
	}
}

func TestRenderAd(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderAd(&buf, &catbytes.AdPackage{
		Title:    "Conheça a Lua",
		AdCopy:   "Lua é carinhosa.",
		Hashtags: []string{"#adote", "#gatos"},
		PostingPlan: &domain.PostingPlan{
			When:      []domain.PostingSlot{{Day: "sábado", Time: "10:00"}},
			Platforms: []string{"Instagram"},
		},
	}))

	out := buf.String()
	assert.Contains(t, out, "Conheça a Lua\n\nLua é carinhosa.")
	assert.Contains(t, out, "#adote #gatos")
	assert.Contains(t, out, "  - sábado 10:00")
	assert.Contains(t, out, "plataformas: Instagram")
}

func TestRenderAd_RawFallback(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderAd(&buf, &catbytes.AdPackage{Raw: "texto livre do modelo"}))

	assert.Equal(t, "texto livre do modelo\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "çã…", truncate("çãõéí", 3))
}
