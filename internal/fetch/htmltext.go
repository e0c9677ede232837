package fetch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML converts an HTML fragment to plain text. Search APIs sometimes
// return markup inside result snippets; the report and checkpoints should
// only ever carry plain text.
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<>") {
		return cleanWhitespace(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return cleanWhitespace(fragment)
	}

	doc.Find("script, style, noscript").Remove()

	return cleanWhitespace(doc.Text())
}

// cleanWhitespace normalizes whitespace in text.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
