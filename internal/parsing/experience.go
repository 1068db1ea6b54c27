package parsing

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Kieseatic/Ats/internal/types"
)

var (
	// Entries split on bullet markers or blank lines.
	entrySplitRe = regexp.MustCompile(`\n\s*\n|\n\s*•|•`)

	// Title is a capitalized phrase at the start of the block.
	titleRe = regexp.MustCompile(`^[A-Z][A-Za-z &/+-]{3,60}`)

	// Company follows "at" or a line break and precedes the date token. The
	// date prefix is consumed by the match but only the company is captured.
	// Case-insensitivity is scoped to the "at" and date sub-patterns: the
	// capture anchor must stay [A-Z]-strict, or a line break followed by
	// "at Acme ..." captures the literal "at " as part of the company.
	companyRe = regexp.MustCompile(
		`(?:(?i:\bat\b)|\n)\s*([A-Z][A-Za-z0-9 &.,-]{2,80}?)\s+(?i:` + monthPat + `\s+\d{4}|\d{4}|\d{1,2}/\d{4})`)
)

// ExtractJobEntries parses each bullet or paragraph inside the experience
// block into a work-experience record. A block with no recoverable date is
// discarded: start_date is required. Handles layouts like
//
//	Junior Product Lead
//	Koralbyte Technologies
//	April 2025 - Present Toronto, Ontario
func ExtractJobEntries(expText string) []types.ExperienceEntry {
	var jobs []types.ExperienceEntry

	for _, block := range entrySplitRe.Split(expText, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if entry, ok := parseJobBlock(block); ok {
			jobs = append(jobs, entry)
		}
	}
	return jobs
}

func parseJobBlock(block string) (types.ExperienceEntry, bool) {
	var entry types.ExperienceEntry

	r := ParseDateRange(block)
	if r.Start != nil {
		entry.StartDate = ISODate(*r.Start)
	}
	if r.Current {
		entry.Current = true
	} else if r.End != nil {
		entry.EndDate = ISODate(*r.End)
	}

	// Last resort: synthesize a start date from any bare year.
	if entry.StartDate == "" {
		if m := yearRe.FindStringSubmatch(block); m != nil {
			year, _ := strconv.Atoi(m[1])
			entry.StartDate = ISODate(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
		}
	}
	if entry.StartDate == "" {
		return entry, false
	}

	title := strings.TrimSpace(titleRe.FindString(block))
	entry.Position = title
	if entry.Position == "" {
		entry.Position = UnknownPosition
	}

	if m := companyRe.FindStringSubmatch(block); m != nil {
		entry.Company = strings.TrimSpace(m[1])
	}
	if entry.Company == "" {
		entry.Company = UnknownCompany
	}

	if m := locationRe.FindString(block); m != "" {
		entry.Location = m
	}

	entry.Description = describeBlock(block)
	entry.Skills = ExtractSkills(entry.Description)
	entry.EmploymentType = employmentType(title)

	return entry, true
}

// describeBlock keeps the first two non-empty lines after the title, with
// bullet markers stripped.
func describeBlock(block string) string {
	lines := strings.Split(block, "\n")
	if len(lines) < 2 {
		return ""
	}
	var kept []string
	for _, l := range lines[1:] {
		l = strings.TrimSpace(strings.TrimLeft(l, "• "))
		if l == "" {
			continue
		}
		kept = append(kept, l)
		if len(kept) == 2 {
			break
		}
	}
	return strings.Join(kept, " ")
}

func employmentType(title string) string {
	if strings.Contains(strings.ToLower(title), "intern") {
		return "Internship"
	}
	return "Full-time"
}

// ParseExperienceSection is the section-level wrapper around the date-driven
// entry extractor.
func ParseExperienceSection(sections map[string]string) []types.ExperienceEntry {
	expText := sections[SectionExperience]
	if expText == "" {
		return nil
	}
	return ExtractJobEntries(expText)
}
