package parsing

import (
	"context"
	"regexp"
	"strings"

	"github.com/Kieseatic/Ats/internal/types"
)

// Entity is one span recognized by the external entity-recognition
// collaborator.
type Entity struct {
	Text  string
	Label string // "ORG", "DATE", "TITLE", ...
}

// EntityRecognizer is the optional NLP collaborator consumed by cascade
// strategy 2. Availability is a capability flag resolved once at startup so
// the orchestrator can skip the strategy deterministically without blocking.
type EntityRecognizer interface {
	Available() bool
	Recognize(ctx context.Context, text string) ([]Entity, error)
}

var (
	institutionWords = []string{"university", "college", "institute", "school", "polytechnic"}

	nlpDegreeRe = regexp.MustCompile(
		`(?i)(Bachelor|Master|PhD|Doctorate|Associate|MBA|B\.?S\.?|M\.?S\.?)(?:\s+(?:of|in)\s+[A-Za-z ]{2,40})?`)
	nlpTitleRe = regexp.MustCompile(
		`(?im)^[ \t]*([A-Z][A-Za-z &]+(?:Engineer|Developer|Manager|Analyst|Consultant|Director|Lead|Intern))`)
)

// parseWithNLP is cascade strategy 2: it leans on the recognizer for
// organizations, pairs them with regex-recovered degrees, titles, and dates,
// and reports its own confidence based on how much it extracted.
func parseWithNLP(ctx context.Context, rec EntityRecognizer, text string) ([]types.EducationEntry, []types.ExperienceEntry, float64, error) {
	sections := ExtractSections(text)

	var education []types.EducationEntry
	var experience []types.ExperienceEntry

	if eduText := sections[SectionEducation]; eduText != "" {
		entities, err := rec.Recognize(ctx, eduText)
		if err != nil {
			return nil, nil, 0, &StrategyError{Strategy: "nlp", Message: "entity recognition failed", Cause: err}
		}
		education = assembleNLPEducation(eduText, entities)
	}

	if expText := sections[SectionExperience]; expText != "" {
		entities, err := rec.Recognize(ctx, expText)
		if err != nil {
			return nil, nil, 0, &StrategyError{Strategy: "nlp", Message: "entity recognition failed", Cause: err}
		}
		experience = assembleNLPExperience(expText, entities)
	}

	// Confidence grows with the amount of structure recovered, capped below
	// the structured parser's nominal confidence ceiling.
	confidence := 0.6 + float64(len(education))*0.1 + float64(len(experience))*0.05
	if confidence > 0.95 {
		confidence = 0.95
	}

	return education, experience, confidence, nil
}

func assembleNLPEducation(eduText string, entities []Entity) []types.EducationEntry {
	var institutions []string
	for _, ent := range entities {
		if ent.Label != "ORG" {
			continue
		}
		lower := strings.ToLower(ent.Text)
		if containsAny(lower, institutionWords) {
			institutions = append(institutions, ent.Text)
		}
	}

	var degrees []string
	for _, m := range nlpDegreeRe.FindAllString(eduText, -1) {
		degrees = append(degrees, strings.TrimSpace(m))
	}

	n := len(institutions)
	if len(degrees) > n {
		n = len(degrees)
	}

	var education []types.EducationEntry
	for i := 0; i < n; i++ {
		entry := types.EducationEntry{}
		if i < len(institutions) {
			entry.Institution = institutions[i]
		}
		if i < len(degrees) {
			entry.Degree = degrees[i]
			entry.FieldOfStudy = extractFieldOfStudy(degrees[i])
		}
		if entry.Institution == "" && entry.Degree == "" {
			continue
		}
		if entry.Institution == "" {
			entry.Institution = UnknownInstitution
		}
		if entry.Degree == "" {
			entry.Degree = UnknownDegree
		}
		r := ParseDateRange(eduText)
		if r.Start != nil {
			entry.StartDate = ISODate(*r.Start)
		}
		if r.End != nil {
			entry.EndDate = ISODate(*r.End)
		}
		education = append(education, entry)
	}
	return education
}

func assembleNLPExperience(expText string, entities []Entity) []types.ExperienceEntry {
	var companies []string
	for _, ent := range entities {
		if ent.Label == "ORG" {
			companies = append(companies, ent.Text)
		}
	}

	var titles []string
	for _, m := range nlpTitleRe.FindAllStringSubmatch(expText, -1) {
		title := strings.TrimSpace(m[1])
		if len(title) < 50 {
			titles = append(titles, title)
		}
	}

	n := len(companies)
	if len(titles) > n {
		n = len(titles)
	}

	r := ParseDateRange(expText)

	var experience []types.ExperienceEntry
	for i := 0; i < n; i++ {
		entry := types.ExperienceEntry{EmploymentType: "Full-time"}
		if i < len(companies) {
			entry.Company = companies[i]
		}
		if i < len(titles) {
			entry.Position = titles[i]
			entry.EmploymentType = employmentType(titles[i])
		}
		if entry.Company == "" && entry.Position == "" {
			continue
		}
		if entry.Company == "" {
			entry.Company = UnknownCompany
		}
		if entry.Position == "" {
			entry.Position = UnknownPosition
		}
		if r.Start != nil {
			entry.StartDate = ISODate(*r.Start)
		}
		entry.Current = r.Current
		if !r.Current && r.End != nil {
			entry.EndDate = ISODate(*r.End)
		}
		if entry.StartDate == "" {
			// start_date is required; without one the entry cannot be kept.
			continue
		}
		experience = append(experience, entry)
	}
	return experience
}
