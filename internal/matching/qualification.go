package matching

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// degreeFamilies maps degree levels to the spelling variants that count as
// that level appearing in a resume.
var degreeFamilies = map[string][]*regexp.Regexp{
	"bachelor": {
		regexp.MustCompile(`\bbachelor\b`),
		regexp.MustCompile(`\bb\.?\s*a\.?\b`),
		regexp.MustCompile(`\bb\.?\s*s\.?\b`),
		regexp.MustCompile(`\bb\.?\s*tech\b`),
		regexp.MustCompile(`\bb\.?\s*sc\.?\b`),
		regexp.MustCompile(`\bb\.?\s*eng\.?\b`),
		regexp.MustCompile(`\bundergraduate\b`),
	},
	"master": {
		regexp.MustCompile(`\bmaster\b`),
		regexp.MustCompile(`\bm\.?\s*a\.?\b`),
		regexp.MustCompile(`\bm\.?\s*s\.?\b`),
		regexp.MustCompile(`\bm\.?\s*tech\b`),
		regexp.MustCompile(`\bm\.?\s*sc\.?\b`),
		regexp.MustCompile(`\bm\.?\s*eng\.?\b`),
		regexp.MustCompile(`\bmba\b`),
		regexp.MustCompile(`\bgraduate\b`),
	},
	"phd": {
		regexp.MustCompile(`\bphd\b`),
		regexp.MustCompile(`\bph\.?\s*d\.?\b`),
		regexp.MustCompile(`\bdoctorate\b`),
		regexp.MustCompile(`\bdoctoral\b`),
	},
	"diploma": {
		regexp.MustCompile(`\bdiploma\b`),
		regexp.MustCompile(`\bcertificate\b`),
		regexp.MustCompile(`\bcert\.?\b`),
	},
}

// Fixed field-of-study vocabulary for the related-field check.
var studyFields = []string{
	"computer", "software", "engineering", "science", "technology",
	"business", "management", "information", "mathematics", "physics",
}

// Generic education vocabulary for the weakest tier of matching.
var educationKeywords = []string{
	"university", "college", "institute", "school", "education",
	"degree", "graduated", "studied",
}

// ScoreQualification scores how well a resume satisfies the job's
// qualification requirement, working down from exact match (100) through
// degree-level (80), related-field (60), and any-education (40) tiers to a
// floor of 20. No requirement scores 100.
func ScoreQualification(jobQualification, resumeText string) (float64, string) {
	if strings.TrimSpace(jobQualification) == "" {
		return 100, "No specific qualification requirement."
	}

	jobQuali := strings.ToLower(jobQualification)
	resumeLower := strings.ToLower(resumeText)

	if strings.Contains(resumeLower, jobQuali) {
		return 100, "Perfect qualification match found."
	}

	for degreeType, patterns := range degreeFamilies {
		if !strings.Contains(jobQuali, degreeType) {
			continue
		}
		for _, pattern := range patterns {
			if pattern.MatchString(resumeLower) {
				return 80, fmt.Sprintf("Matching %s level qualification found.", degreeType)
			}
		}
	}

	var common []string
	for _, field := range studyFields {
		if strings.Contains(jobQuali, field) && strings.Contains(resumeLower, field) {
			common = append(common, field)
		}
	}
	if len(common) > 0 {
		sort.Strings(common)
		return 60, fmt.Sprintf("Related field qualification found: %s.", strings.Join(common, ", "))
	}

	for _, keyword := range educationKeywords {
		if strings.Contains(resumeLower, keyword) {
			return 40, "Some educational background found."
		}
	}

	return 20, fmt.Sprintf("No matching qualification found for requirement: %s.", jobQualification)
}
