package matching

import (
	"regexp"
	"strings"
)

const fuzzyMatchThreshold = 0.85

// techAliases is a fixed bidirectional table of equivalent spellings and
// abbreviations of the same technology. Checked both ways: a required "js"
// matches a resume saying "JavaScript" and vice versa.
var techAliases = map[string][]string{
	"javascript": {"js", "ecmascript"},
	"js":         {"javascript"},
	"typescript": {"ts"},
	"ts":         {"typescript"},
	"react":      {"reactjs", "react.js"},
	"node":       {"nodejs", "node.js"},
	"python":     {"py", "python3"},
	"golang":     {"go"},
	"c++":        {"cpp", "cplusplus"},
	"c#":         {"csharp", "c-sharp"},
	"aws":        {"amazon web services"},
	"gcp":        {"google cloud platform", "google cloud"},
	"docker":     {"containerization"},
	"kubernetes": {"k8s"},
	"postgresql": {"postgres"},
	"mongodb":    {"mongo"},
	"mysql":      {"my sql"},
	"html5":      {"html"},
	"css3":       {"css"},
	"restful":    {"rest api", "rest"},
	"graphql":    {"graph ql"},
	"git":        {"version control"},
	"jenkins":    {"ci/cd"},
	"angular":    {"angularjs"},
}

var resumeWordRe = regexp.MustCompile(`\b\w{3,}\b`)

// SkillSimilarity reports whether a required skill is considered present in
// the resume. Checks, in order: exact substring; punctuation/space-stripped
// variants ("+"→"plus", "#"→"sharp"); the alias table in both directions;
// for multi-word skills, a 70% constituent-word threshold; and for longer
// single words, a fuzzy spelling comparison against each resume word.
func SkillSimilarity(skill, resumeText string) bool {
	skillLower := strings.ToLower(strings.TrimSpace(skill))
	resumeLower := strings.ToLower(resumeText)

	if skillLower == "" {
		return false
	}

	if strings.Contains(resumeLower, skillLower) {
		return true
	}

	for _, variation := range skillVariations(skillLower) {
		if strings.Contains(resumeLower, variation) {
			return true
		}
	}

	for _, alias := range techAliases[skillLower] {
		if strings.Contains(resumeLower, alias) {
			return true
		}
	}
	for canonical, aliases := range techAliases {
		for _, alias := range aliases {
			if skillLower == alias && strings.Contains(resumeLower, canonical) {
				return true
			}
		}
	}

	words := strings.Fields(skillLower)
	if len(words) > 1 {
		matches := 0
		for _, w := range words {
			if len(w) > 2 && strings.Contains(resumeLower, w) {
				matches++
			}
		}
		return float64(matches) >= float64(len(words))*0.7
	}

	if len(skillLower) > 3 {
		for _, word := range resumeWordRe.FindAllString(resumeLower, -1) {
			if wordSimilarity(skillLower, word) > fuzzyMatchThreshold {
				return true
			}
		}
	}

	return false
}

func skillVariations(skill string) []string {
	return []string{
		strings.ReplaceAll(skill, ".", ""),
		strings.ReplaceAll(skill, " ", ""),
		strings.ReplaceAll(skill, "-", ""),
		strings.ReplaceAll(skill, "+", "plus"),
		strings.ReplaceAll(skill, "#", "sharp"),
	}
}

// ScoreSkills scores the fraction of required skills found in the resume,
// scaled to 0..100. An empty requirement list scores 0 by convention, not an
// error.
func ScoreSkills(required []string, resumeText string) (float64, []string, []string) {
	matched := []string{}
	unmatched := []string{}

	if len(required) == 0 {
		return 0, matched, unmatched
	}

	for _, skill := range required {
		if SkillSimilarity(skill, resumeText) {
			matched = append(matched, skill)
		} else {
			unmatched = append(unmatched, skill)
		}
	}

	score := float64(len(matched)) / float64(len(required)) * 100
	return score, matched, unmatched
}

// ScoreTools scores required tooling with the same matcher. Unlike skills,
// an empty tool list counts as fully satisfied.
func ScoreTools(tools []string, resumeText string) (float64, []string, []string) {
	if len(tools) == 0 {
		return 100, []string{}, []string{}
	}
	score, matched, unmatched := ScoreSkills(tools, resumeText)
	return score, matched, unmatched
}
