package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Job-posting pages keep the actual description in a handful of common
// containers; tried in order before falling back to the whole body.
var contentSelectors = []string{
	".job-description",
	".description",
	"#job-details",
	"article",
	"main",
}

var blankRunRe = regexp.MustCompile(`\n\n\n+`)

// ExtractHTMLText strips an HTML job posting down to its readable text,
// removing navigation chrome and scripts first.
func ExtractHTMLText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .sidebar, .cookie-banner").Remove()

	var mainContent *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	var sb strings.Builder
	mainContent.Find("p, li, h1, h2, h3, h4, div").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes; skip containers whose text would duplicate
		// their children's.
		if s.Children().Filter("p, li, h1, h2, h3, h4, div").Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		text = mainContent.Text()
	}
	return strings.TrimSpace(blankRunRe.ReplaceAllString(text, "\n\n")), nil
}

// LooksLikeHTML reports whether an uploaded job description is an HTML
// document rather than plain text.
func LooksLikeHTML(text string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	return strings.HasPrefix(trimmed, "<!doctype html") ||
		strings.HasPrefix(trimmed, "<html") ||
		strings.Contains(trimmed, "</div>") ||
		strings.Contains(trimmed, "</p>")
}
