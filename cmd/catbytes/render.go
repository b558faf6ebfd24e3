package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	catbytes "github.com/ipierette/catbytes-portfolio/lib"
)

// maxSnippet is the description width shown on a card (runes)
const maxSnippet = 160

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// renderAdoption prints one card per listing, best first
func renderAdoption(w io.Writer, result *catbytes.AdoptionResult) error {
	var b strings.Builder

	if result.Message != "" {
		fmt.Fprintln(&b, result.Message)
		fmt.Fprintln(&b)
	}

	for i, l := range result.Listings {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, l.Title)
		if l.Source != "" {
			fmt.Fprintf(&b, "    fonte: %s\n", l.Source)
		}
		fmt.Fprintf(&b, "    score: %.2f (%s)", l.Score, l.ScoreSource)
		if l.IsAdopted {
			b.WriteString("  [já adotado]")
		}
		b.WriteString("\n")
		if l.Description != "" {
			fmt.Fprintf(&b, "    %s\n", truncate(l.Description, maxSnippet))
		}
		if l.Reason != "" {
			fmt.Fprintf(&b, "    motivo: %s\n", l.Reason)
		}
		fmt.Fprintf(&b, "    %s\n\n", l.URL)
	}

	if len(result.Meta.Queries) > 0 {
		fmt.Fprintf(&b, "termos: %s\n", strings.Join(result.Meta.Queries, " | "))
	}
	if result.Meta.OnlyFallbacks {
		b.WriteString("nenhum anúncio encontrado; links de busca genéricos\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderEmail(w io.Writer, address string, verdict catbytes.EmailVerdict) error {
	switch {
	case verdict.Valid:
		_, err := fmt.Fprintf(w, "%s: ok\n", address)
		return err
	case verdict.Suggestion != "":
		_, err := fmt.Fprintf(w, "%s: %s (você quis dizer %s?)\n", address, verdict.Reason, verdict.Suggestion)
		return err
	default:
		_, err := fmt.Fprintf(w, "%s: %s\n", address, verdict.Reason)
		return err
	}
}

func renderAd(w io.Writer, pkg *catbytes.AdPackage) error {
	var b strings.Builder

	if pkg.Title == "" && pkg.AdCopy == "" {
		// the model answered with something other than the expected JSON
		b.WriteString(pkg.Raw)
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "%s\n\n%s\n", pkg.Title, pkg.AdCopy)
	if len(pkg.Hashtags) > 0 {
		fmt.Fprintf(&b, "\n%s\n", strings.Join(pkg.Hashtags, " "))
	}

	if plan := pkg.PostingPlan; plan != nil {
		b.WriteString("\nPlano de postagem\n")
		for _, slot := range plan.When {
			fmt.Fprintf(&b, "  - %s %s\n", slot.Day, slot.Time)
		}
		writeList(&b, "plataformas", plan.Platforms)
		writeList(&b, "onde postar", plan.WhereToPost)
		writeList(&b, "marcar", plan.WhoToTag)
		writeList(&b, "dicas de CTA", plan.CTATips)
		writeList(&b, "crosspost", plan.CrosspostTips)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderProfile(w io.Writer, p *catbytes.CatProfile) error {
	var b strings.Builder
	fmt.Fprintf(&b, "idade: %s\n", p.Age)
	writeList(&b, "raças", p.Breeds)
	writeList(&b, "personalidade", p.Personality)
	if p.Notes != "" {
		fmt.Fprintf(&b, "observações: %s\n", p.Notes)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s: %s\n", label, strings.Join(items, ", "))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
