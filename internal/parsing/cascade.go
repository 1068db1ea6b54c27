package parsing

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/Kieseatic/Ats/internal/types"
)

// Parsing method names reported in parsing_metadata.
const (
	MethodFixedSection      = "fixed_section"
	MethodNLP               = "nlp"
	MethodMultiPattern      = "multi-pattern"
	MethodFallback          = "fallback"
	MethodEmergencyFallback = "emergency_fallback"
)

// Nominal confidence per strategy. The NLP strategy computes its own.
const (
	confidenceStructured   = 0.9
	confidenceMultiPattern = 0.7
	confidenceFallback     = 0.3
	confidenceEmergency    = 0.1
	confidenceCeiling      = 0.95
	completeRecordBonus    = 0.05
)

// Parser runs the extraction cascade. The zero value works without the
// optional entity-recognition collaborator; use NewParser to inject one.
type Parser struct {
	recognizer EntityRecognizer
}

// NewParser builds a Parser. recognizer may be nil when no NLP collaborator
// is configured; the cascade then skips strategy 2 deterministically.
func NewParser(recognizer EntityRecognizer) *Parser {
	return &Parser{recognizer: recognizer}
}

// ParseStructured is cascade strategy 1: the section-level entry extractors
// over an already-extracted section map.
func ParseStructured(sections map[string]string) ([]types.EducationEntry, []types.ExperienceEntry) {
	return ParseEducationSection(sections), ParseExperienceSection(sections)
}

// Parse runs the cascade over raw resume text and always produces a
// well-formed ParsedResume. Strategy failures become warnings, never errors;
// the only error returned is for empty input.
func (p *Parser) Parse(ctx context.Context, rawText string) (*types.ParsedResume, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, &EmptyInputError{}
	}

	result := p.runCascade(ctx, rawText)
	return result, nil
}

// runCascade attempts each strategy in order and escalates on empty output.
// A panic anywhere inside the strategies is caught and answered with an
// emergency re-run of the keyword fallback, which itself cannot fail.
func (p *Parser) runCascade(ctx context.Context, rawText string) (result *types.ParsedResume) {
	var warnings []string

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[parser] critical error, using emergency fallback: %v", r)
			education, experience := ParseFallback(rawText)
			warnings = append(warnings, fmt.Sprintf("critical parsing error: %v", r))
			result = finalize(education, experience, MethodEmergencyFallback, confidenceEmergency, warnings, nil)
		}
	}()

	text := Normalize(rawText)

	// Strategy 1: structured section parsing.
	sections := ExtractSections(text)
	education, experience := ParseStructured(sections)
	if len(education) > 0 || len(experience) > 0 {
		return finalize(education, experience, MethodFixedSection, confidenceStructured, warnings, sectionNames(sections))
	}
	warnings = append(warnings, "fixed section parsing returned no results")

	// Strategy 2: entity-recognition-assisted parsing, when the collaborator
	// is present.
	if p.recognizer != nil && p.recognizer.Available() {
		education, experience, confidence, err := parseWithNLP(ctx, p.recognizer, text)
		if err != nil {
			warnings = append(warnings, err.Error())
		} else if len(education) > 0 || len(experience) > 0 {
			return finalize(education, experience, MethodNLP, confidence, warnings, nil)
		} else {
			warnings = append(warnings, "nlp parsing returned no results")
		}
	} else {
		warnings = append(warnings, "nlp model not available")
	}

	// Strategy 3: multi-pattern regex parsing across section boundaries.
	education, experience = ParseMultiPattern(text)
	if len(education) > 0 || len(experience) > 0 {
		return finalize(education, experience, MethodMultiPattern, confidenceMultiPattern, warnings, nil)
	}
	warnings = append(warnings, "multi-pattern parsing returned no results")

	// Strategy 4: keyword fallback, which always terminates the cascade.
	education, experience = ParseFallback(text)
	warnings = append(warnings, "used basic fallback parsing - accuracy may be limited")
	return finalize(education, experience, MethodFallback, confidenceFallback, warnings, nil)
}

// finalize runs the validation/cleanup pass and assembles the result with a
// blended confidence.
func finalize(education []types.EducationEntry, experience []types.ExperienceEntry,
	method string, baseConfidence float64, warnings []string, sectionsFound []string) *types.ParsedResume {

	education = CleanEducation(education)
	experience = CleanExperience(experience)

	if warnings == nil {
		warnings = []string{}
	}
	if education == nil {
		education = []types.EducationEntry{}
	}
	if experience == nil {
		experience = []types.ExperienceEntry{}
	}

	return &types.ParsedResume{
		Education:      education,
		WorkExperience: experience,
		ParsingMetadata: types.ParsingMetadata{
			Method:          method,
			Confidence:      blendConfidence(education, experience, baseConfidence),
			Warnings:        warnings,
			SectionsFound:   sectionsFound,
			EducationCount:  len(education),
			ExperienceCount: len(experience),
		},
	}
}

// CleanEducation validates education entries: entries with neither
// institution nor degree are dropped, blanks get placeholder defaults, and
// current entries never carry an end date.
func CleanEducation(entries []types.EducationEntry) []types.EducationEntry {
	cleaned := make([]types.EducationEntry, 0, len(entries))
	for _, e := range entries {
		e.Institution = strings.TrimSpace(e.Institution)
		e.Degree = strings.TrimSpace(e.Degree)
		e.FieldOfStudy = strings.TrimSpace(e.FieldOfStudy)
		if e.Institution == "" && e.Degree == "" {
			continue
		}
		if e.Institution == "" {
			e.Institution = UnknownInstitution
		}
		if e.Degree == "" {
			e.Degree = UnknownDegree
		}
		if e.Current {
			e.EndDate = ""
		}
		cleaned = append(cleaned, e)
	}
	return cleaned
}

// CleanExperience validates work-experience entries: entries with neither
// company nor position are dropped, as is any entry without the required
// start date; current entries never carry an end date.
func CleanExperience(entries []types.ExperienceEntry) []types.ExperienceEntry {
	cleaned := make([]types.ExperienceEntry, 0, len(entries))
	for _, e := range entries {
		e.Company = strings.TrimSpace(e.Company)
		e.Position = strings.TrimSpace(e.Position)
		e.Location = strings.TrimSpace(e.Location)
		if e.Company == "" && e.Position == "" {
			continue
		}
		if e.StartDate == "" {
			continue
		}
		if e.Company == "" {
			e.Company = UnknownCompany
		}
		if e.Position == "" {
			e.Position = UnknownPosition
		}
		if e.Current {
			e.EndDate = ""
		}
		if e.Skills == nil {
			e.Skills = []string{}
		}
		cleaned = append(cleaned, e)
	}
	return cleaned
}

// blendConfidence rewards complete records with a small additive bonus on
// top of the strategy's nominal confidence, capped at the ceiling.
func blendConfidence(education []types.EducationEntry, experience []types.ExperienceEntry, base float64) float64 {
	score := base
	for _, e := range education {
		if e.Institution != "" && e.Institution != UnknownInstitution &&
			e.Degree != "" && e.Degree != UnknownDegree && e.EndDate != "" {
			score += completeRecordBonus
		}
	}
	for _, e := range experience {
		if e.Company != "" && e.Company != UnknownCompany &&
			e.Position != "" && e.Position != UnknownPosition && e.StartDate != "" {
			score += completeRecordBonus
		}
	}
	if score > confidenceCeiling {
		return confidenceCeiling
	}
	return score
}

func sectionNames(sections map[string]string) []string {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
