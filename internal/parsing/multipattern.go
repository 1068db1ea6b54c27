package parsing

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Kieseatic/Ats/internal/types"
)

// Looser patterns tried across the whole text, independent of section
// boundaries. Used by cascade strategy 3 when section parsing finds nothing.
var (
	// "Bachelor of X at Some University, 2021" and "Some University - Master of Y - 2021"
	eduDegreeFirstRe = regexp.MustCompile(
		`(?i)((?:Bachelor|Master|PhD|Doctorate|Diploma)[A-Za-z ]*?)\s+(?:at|from)\s+([A-Z][A-Za-z ,]+?(?:University|College|Institute|School))[^\n]*?(\d{4})`)
	eduInstitutionFirstRe = regexp.MustCompile(
		`([A-Z][A-Za-z ,]+?(?:University|College|Institute|School))\s*-\s*((?:Bachelor|Master|PhD|Doctorate|Diploma)[A-Za-z ]*?)\s*-?\s*(\d{4})`)

	// "Software Engineer at Acme Corp (Jan 2020 - Dec 2022)" and "Acme Inc - Software Engineer - Jan 2020 - Present"
	expTitleFirstRe = regexp.MustCompile(
		`(?i)([A-Z][A-Za-z ]+(?:Engineer|Developer|Manager|Analyst|Director|Lead))\s+at\s+([A-Z][A-Za-z &,.]+?)\s*\(([^)]+)\)`)
	expCompanyFirstRe = regexp.MustCompile(
		`(?i)([A-Z][A-Za-z &,.]+(?:Inc|LLC|Corp|Company|Ltd|Technologies))\s*-\s*([A-Z][A-Za-z ]+(?:Engineer|Developer|Manager|Analyst|Lead))\s*-\s*([^•\n]+)`)
)

// ParseMultiPattern applies the looser multi-pattern tables to the full text
// and assembles whatever entries they yield.
func ParseMultiPattern(text string) ([]types.EducationEntry, []types.ExperienceEntry) {
	var education []types.EducationEntry
	var experience []types.ExperienceEntry

	for _, m := range eduDegreeFirstRe.FindAllStringSubmatch(text, -1) {
		education = append(education, multiPatternEducation(m[1], m[2], m[3]))
	}
	for _, m := range eduInstitutionFirstRe.FindAllStringSubmatch(text, -1) {
		education = append(education, multiPatternEducation(m[2], m[1], m[3]))
	}

	for _, m := range expTitleFirstRe.FindAllStringSubmatch(text, -1) {
		if entry, ok := multiPatternExperience(m[1], m[2], m[3]); ok {
			experience = append(experience, entry)
		}
	}
	for _, m := range expCompanyFirstRe.FindAllStringSubmatch(text, -1) {
		if entry, ok := multiPatternExperience(m[2], m[1], m[3]); ok {
			experience = append(experience, entry)
		}
	}

	return education, experience
}

func multiPatternEducation(degree, institution, year string) types.EducationEntry {
	entry := types.EducationEntry{
		Institution:  strings.TrimSpace(institution),
		Degree:       strings.TrimSpace(degree),
		FieldOfStudy: extractFieldOfStudy(degree),
	}
	if y, err := strconv.Atoi(year); err == nil {
		entry.StartDate = ISODate(time.Date(y-degreeLength, time.September, 1, 0, 0, 0, 0, time.UTC))
		entry.EndDate = ISODate(time.Date(y, time.June, 1, 0, 0, 0, 0, time.UTC))
	}
	return entry
}

func multiPatternExperience(position, company, dates string) (types.ExperienceEntry, bool) {
	entry := types.ExperienceEntry{
		Company:        strings.TrimSpace(company),
		Position:       strings.TrimSpace(position),
		EmploymentType: employmentType(position),
	}

	r := ParseDateRange(dates)
	if r.Start != nil {
		entry.StartDate = ISODate(*r.Start)
	}
	if r.Current {
		entry.Current = true
	} else if r.End != nil {
		entry.EndDate = ISODate(*r.End)
	}
	if entry.StartDate == "" {
		return entry, false
	}
	return entry, true
}
