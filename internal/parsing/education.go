package parsing

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Kieseatic/Ats/internal/types"
)

// Placeholder values substituted when a field cannot be recovered.
const (
	UnknownInstitution = "Institution not specified"
	UnknownDegree      = "Degree not specified"
	UnknownCompany     = "Company not specified"
	UnknownPosition    = "Position not specified"
)

var (
	degreeRe = regexp.MustCompile(
		`(?i)(Bachelor|Master|PhD|Doctorate|Associate|Diploma|Certificate)(?:\s+(?:of|in)\s+[A-Za-z][A-Za-z ]{1,40})?`)
	institutionRe = regexp.MustCompile(
		`[A-Z][A-Za-z]*(?:[ \t]+[A-Z][A-Za-z]*){0,4}[ \t]+(?:University|College|Institute|Polytechnic|School)`)
	locationRe = regexp.MustCompile(
		`[A-Z][a-z]+,\s*[A-Z][a-z]+`)
	yearRe       = regexp.MustCompile(`\b(\d{4})\b`)
	fieldRe      = regexp.MustCompile(`(?i)(?:of|in)\s+([A-Za-z][A-Za-z ]{1,40})`)
	gpaRe        = regexp.MustCompile(`(?i)GPA[:\s]+(\d\.\d{1,2})`)
	degreeLength = 4 // assumed program length in years when only one year is found
)

// ParseEducationSection turns the education block into structured entries.
// Blocks separated by blank lines are treated as separate degrees; missing
// fields get the documented placeholder defaults rather than failing the
// entry. When only a single 4-digit year is present the start date is
// estimated as four years before the end date, modeling a typical program.
func ParseEducationSection(sections map[string]string) []types.EducationEntry {
	eduText := sections[SectionEducation]
	if eduText == "" {
		return nil
	}

	var education []types.EducationEntry
	for _, block := range splitBlocks(eduText) {
		entry, ok := parseEducationBlock(block)
		if ok {
			education = append(education, entry)
		}
	}
	return education
}

func parseEducationBlock(block string) (types.EducationEntry, bool) {
	degree := degreeRe.FindString(block)
	institution := institutionRe.FindString(block)
	if degree == "" && institution == "" {
		return types.EducationEntry{}, false
	}

	entry := types.EducationEntry{
		Institution: strings.TrimSpace(institution),
		Degree:      strings.TrimSpace(degree),
	}
	if entry.Institution == "" {
		entry.Institution = UnknownInstitution
	}
	if entry.Degree == "" {
		entry.Degree = UnknownDegree
	}
	entry.FieldOfStudy = extractFieldOfStudy(degree)

	if m := gpaRe.FindStringSubmatch(block); m != nil {
		entry.GPA = m[1]
	}

	// Explicit range first, single year as a fallback estimate.
	r := ParseDateRange(block)
	switch {
	case r.Start != nil && (r.End != nil || r.Current):
		entry.StartDate = ISODate(*r.Start)
		if r.Current {
			entry.Current = true
		} else {
			entry.EndDate = ISODate(*r.End)
		}
	default:
		if m := yearRe.FindStringSubmatch(block); m != nil {
			year, _ := strconv.Atoi(m[1])
			end := time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
			start := time.Date(year-degreeLength, time.September, 1, 0, 0, 0, 0, time.UTC)
			entry.StartDate = ISODate(start)
			entry.EndDate = ISODate(end)
		}
	}

	return entry, true
}

// extractFieldOfStudy pulls the subject out of degree text like
// "Bachelor of Software Development".
func extractFieldOfStudy(degreeText string) string {
	if degreeText == "" {
		return ""
	}
	if m := fieldRe.FindStringSubmatch(degreeText); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// splitBlocks splits section text into candidate entry blocks on blank-line
// boundaries.
func splitBlocks(text string) []string {
	parts := strings.Split(text, "\n\n")
	blocks := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			blocks = append(blocks, p)
		}
	}
	return blocks
}
