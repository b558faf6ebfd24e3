// ABOUTME: HTML utilities for turning search snippets into plain text
// ABOUTME: Parses fragments with goquery so entities and stray tags are handled by a real parser

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML removes tags and decodes entities from a snippet, collapsing whitespace.
// Input that fails to parse is returned whitespace-collapsed but otherwise untouched.
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return CollapseSpace(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return CollapseSpace(fragment)
	}

	doc.Find("script, style").Remove()
	return CollapseSpace(doc.Text())
}

// CollapseSpace trims and replaces any run of whitespace with a single space
func CollapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
