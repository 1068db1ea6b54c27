// Package parsing turns free-form resume text into structured education and
// work-experience records. Extraction runs as a cascade of strategies in
// descending order of sophistication; every strategy is a pure function over
// the input text.
package parsing

import (
	"regexp"
	"strings"
)

var (
	crlfRe     = regexp.MustCompile(`\r\n?`)
	hspaceRe   = regexp.MustCompile(`[ \t]+`)
	blankRunRe = regexp.MustCompile(`\n{3,}`)
)

// bulletGlyphs maps typographic bullet and dash glyphs to canonical ASCII
// equivalents so the extractors only ever see "•" and "-".
var bulletGlyphs = map[string]string{
	"▪": "•", // black small square
	"‣": "•", // triangular bullet
	"●": "•", // black circle
	"·": "•", // middle dot
	"–": "-", // en dash
	"—": "-", // em dash
}

// headerAliases rewrites known section-header spelling variants to the
// canonical header tokens the section extractor anchors on.
var headerAliases = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`(?i)EDUCATION\s*:`), "EDUCATION"},
	{regexp.MustCompile(`(?i)WORK\s+EXPERIENCE\s*:`), "EXPERIENCE"},
	{regexp.MustCompile(`(?i)PROFESSIONAL\s+EXPERIENCE\s*:`), "EXPERIENCE"},
	{regexp.MustCompile(`(?i)EMPLOYMENT\s+HISTORY\s*:`), "EXPERIENCE"},
	{regexp.MustCompile(`(?i)SKILLS?\s*:`), "SKILLS"},
}

// Normalize canonicalizes raw resume text so the pattern tables downstream
// have a consistent canvas: Unix line endings, single spaces, at most one
// blank line in a row, ASCII bullets, and canonical section headers. It never
// fails; empty input yields empty output.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	text := crlfRe.ReplaceAllString(raw, "\n")
	text = strings.ReplaceAll(text, " ", " ")
	text = hspaceRe.ReplaceAllString(text, " ")
	text = blankRunRe.ReplaceAllString(text, "\n\n")

	for bad, good := range bulletGlyphs {
		text = strings.ReplaceAll(text, bad, good)
	}

	for _, alias := range headerAliases {
		text = alias.pattern.ReplaceAllString(text, alias.repl)
	}

	return strings.TrimSpace(text)
}
