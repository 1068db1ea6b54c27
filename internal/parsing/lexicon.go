package parsing

import (
	"regexp"
	"sort"
	"strings"
)

// Fixed technology lexicon used to derive skills from job-description text.
// Grouped the way the patterns are scanned: languages and frameworks,
// cloud/platform tooling, and data stores/APIs.
var technologyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(React|Vue|Angular|JavaScript|TypeScript|Python|Java|C\+\+|Go|Node\.js|Express|Django|Flask|Spring)\b`),
	regexp.MustCompile(`(?i)\b(AWS|Azure|GCP|Docker|Kubernetes|Git|Jenkins|Terraform|CI/CD|Linux)\b`),
	regexp.MustCompile(`(?i)\b(MongoDB|PostgreSQL|MySQL|Redis|Elasticsearch|Kafka|GraphQL|REST|gRPC)\b`),
}

// ExtractSkills scans text against the technology lexicon and returns the
// deduplicated matches in a stable order.
func ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}

	seen := make(map[string]string) // lowercase -> first-seen spelling
	for _, pattern := range technologyPatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			key := strings.ToLower(m)
			if _, ok := seen[key]; !ok {
				seen[key] = m
			}
		}
	}

	if len(seen) == 0 {
		return nil
	}
	skills := make([]string, 0, len(seen))
	for _, spelling := range seen {
		skills = append(skills, spelling)
	}
	sort.Strings(skills)
	return skills
}
