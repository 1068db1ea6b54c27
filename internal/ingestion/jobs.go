package ingestion

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Kieseatic/Ats/internal/parsing"
	"github.com/Kieseatic/Ats/internal/types"
)

//go:embed job_record.schema.json
var jobSchema string

// ValidationError reports schema violations in an uploaded job payload with
// field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at one field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("job validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ParseJobsJSON decodes an uploaded JSON payload into job records. The
// payload may be a single object or an array; every record is validated
// against the job schema and assigned an ID when it arrives without one.
func ParseJobsJSON(data []byte) ([]types.JobRecord, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, fmt.Errorf("empty job payload")
	}

	// Normalize a single object to a one-element array before validation.
	if strings.HasPrefix(trimmed, "{") {
		trimmed = "[" + trimmed + "]"
	}

	if err := validateJobs(trimmed); err != nil {
		return nil, err
	}

	var jobs []types.JobRecord
	if err := json.Unmarshal([]byte(trimmed), &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode jobs: %w", err)
	}

	for i := range jobs {
		if jobs[i].ID == "" {
			jobs[i].ID = uuid.NewString()
		}
		if jobs[i].Skills == nil {
			jobs[i].Skills = []string{}
		}
		if jobs[i].Tools == nil {
			jobs[i].Tools = []string{}
		}
	}
	return jobs, nil
}

func validateJobs(payload string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(jobSchema),
		gojsonschema.NewStringLoader(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to validate job payload: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

var (
	jobExperienceRe = regexp.MustCompile(
		`(?i)(\d+\+?\s*(?:years?|yrs?)(?:\s*of)?\s*(?:experience|exp)?)`)
	jobQualificationRe = regexp.MustCompile(
		`(?i)((?:bachelor|master|phd|doctorate|diploma|degree)[^\n.]{0,60})`)
)

// ParseJobText builds a job record from a plain-text (or HTML) job
// description: title from the first non-empty line, skills from the
// technology lexicon, experience and qualification requirements from the
// first matching phrase.
func ParseJobText(text string) (types.JobRecord, error) {
	if LooksLikeHTML(text) {
		extracted, err := ExtractHTMLText(text)
		if err == nil && extracted != "" {
			text = extracted
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return types.JobRecord{}, fmt.Errorf("empty job description")
	}

	job := types.JobRecord{
		ID:          uuid.NewString(),
		Description: text,
		Skills:      parsing.ExtractSkills(text),
		Tools:       []string{},
	}

	for _, line := range strings.Split(text, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			job.Title = l
			break
		}
	}

	if m := jobExperienceRe.FindStringSubmatch(text); m != nil {
		job.Experience = strings.TrimSpace(m[1])
	}
	if m := jobQualificationRe.FindStringSubmatch(text); m != nil {
		job.Qualification = strings.TrimSpace(m[1])
	}
	return job, nil
}
