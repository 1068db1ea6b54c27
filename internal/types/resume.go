// Package types defines the structured records exchanged between the parsing
// pipeline, the match scorers, and the HTTP API.
package types

// EducationEntry represents one degree or program extracted from a resume.
// Institution and degree are guaranteed non-empty after validation; the
// cleanup pass substitutes "Institution not specified" / "Degree not
// specified" for blanks.
type EducationEntry struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date,omitempty"` // ISO date (YYYY-MM-DD), empty when unknown
	EndDate      string `json:"end_date,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
	GPA          string `json:"gpa"`
	Activities   string `json:"activities"`
}

// ExperienceEntry represents one job extracted from a resume. StartDate is
// required: the extractors drop any block with no recoverable date.
type ExperienceEntry struct {
	Company        string   `json:"company"`
	Position       string   `json:"position"`
	Location       string   `json:"location"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date,omitempty"` // absent when current or unterminated
	Current        bool     `json:"current"`
	Description    string   `json:"description"`
	Skills         []string `json:"skills"`
	EmploymentType string   `json:"employment_type"` // "Full-time" or "Internship"
}

// ParsingMetadata records which cascade strategy produced the result and how
// reliable it is believed to be.
type ParsingMetadata struct {
	Method          string   `json:"method"`
	Confidence      float64  `json:"confidence"` // heuristic, 0..1
	Warnings        []string `json:"warnings"`
	SectionsFound   []string `json:"sections_found,omitempty"`
	EducationCount  int      `json:"education_count"`
	ExperienceCount int      `json:"experience_count"`
}

// ParsedResume is the full output of a parse request. It is a request-scoped
// value: immutable once returned and owned solely by the caller.
type ParsedResume struct {
	Education       []EducationEntry  `json:"education"`
	WorkExperience  []ExperienceEntry `json:"work_experience"`
	ParsingMetadata ParsingMetadata   `json:"parsing_metadata"`
}
