package parsing

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date token grammar, matching what actually shows up in resumes:
// "Apr 2025", "April 2025", "05/2023", "2021", "Summer 2022".
const (
	monthPat  = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*`
	seasonPat = `(?:Spring|Summer|Fall|Winter)`
	datePat   = `(?:` + monthPat + `\s+\d{4}|\d{1,2}/\d{4}|\b\d{4}\b|` + seasonPat + `\s+\d{4})`
)

var (
	dateTokenRe = regexp.MustCompile(`(?i)` + datePat)
	// Range separator is a dash (en/em dashes are normalized to "-" before
	// parsing, but raw input is accepted too) or the word "to".
	dateRangeRe = regexp.MustCompile(`(?i)(` + datePat + `)\s*(?:[-–—]|\bto\b)\s*((?:Present|Current)|` + datePat + `)`)

	monthYearRe   = regexp.MustCompile(`(?i)^(` + monthPat + `)\s+(\d{4})$`)
	numericRe     = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
	bareYearRe    = regexp.MustCompile(`^(\d{4})$`)
	seasonYearRe  = regexp.MustCompile(`(?i)^(` + seasonPat + `)\s+(\d{4})$`)
	presentWordRe = regexp.MustCompile(`(?i)^(?:present|current)$`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Seasons approximate to a fixed month.
var monthsBySeason = map[string]time.Month{
	"spring": time.March,
	"summer": time.June,
	"fall":   time.September,
	"winter": time.December,
}

// DateRange is the result of parsing a free-form date range. Nil pointers
// mean "date unknown", never an error.
type DateRange struct {
	Start   *time.Time
	End     *time.Time
	Current bool
}

// ParseDateToken converts a single free-form date token into a calendar date.
// A bare year defaults to January 1 of that year. The second return value is
// false when the token is not recognized; callers must treat that as "date
// unknown" rather than a failure.
func ParseDateToken(token string) (time.Time, bool) {
	token = strings.TrimSpace(token)
	if token == "" || presentWordRe.MatchString(token) {
		return time.Time{}, false
	}

	if m := monthYearRe.FindStringSubmatch(token); m != nil {
		prefix := strings.ToLower(m[1])
		if len(prefix) > 3 {
			prefix = prefix[:3]
		}
		month, ok := monthsByPrefix[prefix]
		if !ok {
			return time.Time{}, false
		}
		year, _ := strconv.Atoi(m[2])
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
	}

	if m := numericRe.FindStringSubmatch(token); m != nil {
		monthNum, _ := strconv.Atoi(m[1])
		if monthNum < 1 || monthNum > 12 {
			return time.Time{}, false
		}
		year, _ := strconv.Atoi(m[2])
		return time.Date(year, time.Month(monthNum), 1, 0, 0, 0, 0, time.UTC), true
	}

	if m := seasonYearRe.FindStringSubmatch(token); m != nil {
		month := monthsBySeason[strings.ToLower(m[1])]
		year, _ := strconv.Atoi(m[2])
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
	}

	if m := bareYearRe.FindStringSubmatch(token); m != nil {
		year, _ := strconv.Atoi(m[1])
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

// ParseDateRange locates a date range inside text. A range match takes
// priority over a lone date appearing in the same text. "Present" or
// "Current" as the end token sets Current and leaves End nil.
func ParseDateRange(text string) DateRange {
	var r DateRange

	if m := dateRangeRe.FindStringSubmatch(text); m != nil {
		if start, ok := ParseDateToken(m[1]); ok {
			r.Start = &start
		}
		if presentWordRe.MatchString(m[2]) {
			r.Current = true
		} else if end, ok := ParseDateToken(m[2]); ok {
			r.End = &end
		}
		return r
	}

	if m := dateTokenRe.FindString(text); m != "" {
		if start, ok := ParseDateToken(m); ok {
			r.Start = &start
		}
	}
	return r
}

// ISODate formats a date the way the API serializes it.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
