package matching

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Years-of-experience patterns, tried in order; the first match wins.
var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`(?:experience|exp).*?(\d+)\+?\s*(?:years?|yrs?)`),
	regexp.MustCompile(`over\s+(\d+)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`more\s+than\s+(\d+)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+)\+\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)`),
}

// ExtractYears pulls a years-of-experience figure out of free text. Returns
// 0 when no pattern matches.
func ExtractYears(text string) int {
	lower := strings.ToLower(text)
	for _, pattern := range yearsPatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			years, err := strconv.Atoi(m[1])
			if err == nil {
				return years
			}
		}
	}
	return 0
}

// ScoreExperience compares the job's required years against the candidate's,
// tiering the score at 100/75/50/25. A job with no stated requirement scores
// 100.
func ScoreExperience(jobExperience, resumeText string) (float64, string) {
	required := 0
	if jobExperience != "" {
		required = ExtractYears(jobExperience)
	}
	candidate := ExtractYears(resumeText)

	if required == 0 {
		return 100, "No specific experience requirement mentioned."
	}

	switch {
	case candidate >= required:
		return 100, fmt.Sprintf("Candidate meets/exceeds required experience (%d+ years vs %d+ required).", candidate, required)
	case candidate >= required-1:
		return 75, fmt.Sprintf("Candidate has close experience (%d+ years vs %d+ required).", candidate, required)
	case candidate >= required-2:
		return 50, fmt.Sprintf("Candidate has some experience (%d+ years vs %d+ required).", candidate, required)
	default:
		return 25, fmt.Sprintf("Candidate has limited experience (%d+ years vs %d+ required).", candidate, required)
	}
}
