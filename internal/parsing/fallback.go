package parsing

import (
	"strconv"
	"strings"
	"time"

	"github.com/Kieseatic/Ats/internal/types"
)

var (
	fallbackEducationWords  = []string{"university", "college", "degree", "bachelor", "master"}
	fallbackExperienceWords = []string{"developer", "engineer", "manager", "analyst", "experience"}
)

// ParseFallback is the last cascade strategy: pure keyword-presence
// detection. It cannot fail and returns placeholder entries whenever
// career-related vocabulary appears in the text. The placeholders are marked
// for review rather than pretending to be accurate.
func ParseFallback(text string) ([]types.EducationEntry, []types.ExperienceEntry) {
	lower := strings.ToLower(text)

	var education []types.EducationEntry
	if containsAny(lower, fallbackEducationWords) {
		education = append(education, types.EducationEntry{
			Institution: "Institution found in resume",
			Degree:      "Degree mentioned in resume",
			Description: "Extracted from resume text - please review and edit",
		})
	}

	var experience []types.ExperienceEntry
	if containsAny(lower, fallbackExperienceWords) {
		experience = append(experience, types.ExperienceEntry{
			Company:        "Company mentioned in resume",
			Position:       "Position found in resume",
			StartDate:      fallbackStartDate(text),
			Description:    "Extracted from resume text - please review and edit",
			EmploymentType: "Full-time",
		})
	}

	return education, experience
}

// fallbackStartDate synthesizes the required start date for a placeholder
// entry: the first 4-digit year in the text, or the current year when none
// appears.
func fallbackStartDate(text string) string {
	year := time.Now().Year()
	if m := yearRe.FindStringSubmatch(text); m != nil {
		if y, err := strconv.Atoi(m[1]); err == nil {
			year = y
		}
	}
	return ISODate(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
