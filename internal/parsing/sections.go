package parsing

import (
	"regexp"
	"strings"
)

// Section names recognized by the extractor.
const (
	SectionEducation      = "education"
	SectionExperience     = "experience"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
)

// Header patterns are line-anchored: a header must start a line and be
// followed by a line break, so the word "experience" inside prose never
// opens a section. Each pattern captures everything up to the next
// recognized header or end of text.
var sectionPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{SectionEducation, regexp.MustCompile(
		`(?is)(?:^|\n)[ \t]*(?:EDUCATION|ACADEMIC BACKGROUND|QUALIFICATIONS)[ \t]*\n` +
			`(.*?)(?:\n[ \t]*(?:EXPERIENCE|WORK EXPERIENCE|EMPLOYMENT|PROFESSIONAL EXPERIENCE|CAREER|SKILLS|PROJECTS|CERTIFICATIONS)[ \t]*(?:\n|$)|$)`)},
	{SectionExperience, regexp.MustCompile(
		`(?is)(?:^|\n)[ \t]*(?:EXPERIENCE|WORK EXPERIENCE|EMPLOYMENT|PROFESSIONAL EXPERIENCE|CAREER)[ \t]*\n` +
			`(.*?)(?:\n[ \t]*(?:SKILLS|PROJECTS|CERTIFICATIONS|EDUCATION)[ \t]*(?:\n|$)|$)`)},
	{SectionSkills, regexp.MustCompile(
		`(?is)(?:^|\n)[ \t]*(?:SKILLS?|TECHNICAL SKILLS|PROGRAMMING)[ \t]*\n` +
			`(.*?)(?:\n[ \t]*(?:PROJECTS?|CERTIFICATIONS|EXPERIENCE|EDUCATION)[ \t]*(?:\n|$)|$)`)},
	{SectionProjects, regexp.MustCompile(
		`(?is)(?:^|\n)[ \t]*(?:PROJECTS?|PROJECT EXPERIENCE)[ \t]*\n` +
			`(.*?)(?:\n[ \t]*(?:CERTIFICATIONS?|SKILLS|EXPERIENCE|EDUCATION)[ \t]*(?:\n|$)|$)`)},
	{SectionCertifications, regexp.MustCompile(
		`(?is)(?:^|\n)[ \t]*(?:CERTIFICATIONS?|CERTIFICATES?)[ \t]*\n` +
			`(.*?)(?:\n[ \t]*(?:SKILLS|PROJECTS|EXPERIENCE|EDUCATION)[ \t]*(?:\n|$)|$)`)},
}

// Fixed vocabularies for the keyword fallback.
var (
	educationKeywords = []string{
		"bachelor", "master", "phd", "univers", "college", "diploma",
		"degree", "gpa", "polytechnic", "academy",
	}
	experienceKeywords = []string{
		"developer", "engineer", "manager", "analyst", "technologies",
		"company", "intern", "lead", "consultant", "architect",
	}
)

// ExtractSections locates the recognized resume sections by header
// detection. When no line-anchored header is found it falls back to a
// per-line keyword-scoring heuristic. Only non-empty sections appear in the
// returned map.
func ExtractSections(text string) map[string]string {
	sections := make(map[string]string)

	for _, sp := range sectionPatterns {
		m := sp.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		content := strings.TrimSpace(m[1])
		if content != "" {
			sections[sp.name] = content
		}
	}

	if len(sections) == 0 {
		sections = extractSectionsByKeywords(text)
	}

	return sections
}

// extractSectionsByKeywords walks the text line by line, scores each line
// against the education and experience vocabularies, and appends it to
// whichever bucket currently holds the majority. The active bucket persists
// across lines until a later line shifts the majority.
func extractSectionsByKeywords(text string) map[string]string {
	buckets := map[string][]string{
		SectionEducation:  nil,
		SectionExperience: nil,
	}
	current := ""

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		lower := strings.ToLower(line)

		eduScore := countKeywords(lower, educationKeywords)
		expScore := countKeywords(lower, experienceKeywords)

		switch {
		case eduScore > expScore && eduScore > 0:
			current = SectionEducation
		case expScore > eduScore && expScore > 0:
			current = SectionExperience
		}

		if current != "" {
			buckets[current] = append(buckets[current], line)
		}
	}

	sections := make(map[string]string)
	for name, lines := range buckets {
		content := strings.TrimSpace(strings.Join(lines, "\n"))
		if content != "" {
			sections[name] = content
		}
	}
	return sections
}

func countKeywords(line string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			n++
		}
	}
	return n
}
