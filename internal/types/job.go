package types

// FactorWeights optionally overrides the equal weighting of the four match
// factors for a single job. Zero-valued weights fall back to equal weighting.
type FactorWeights struct {
	Skills        float64 `json:"skills,omitempty"`
	Experience    float64 `json:"experience,omitempty"`
	Qualification float64 `json:"qualification,omitempty"`
	Contextual    float64 `json:"contextual,omitempty"`
}

// IsZero reports whether no weight has been supplied.
func (w FactorWeights) IsZero() bool {
	return w.Skills == 0 && w.Experience == 0 && w.Qualification == 0 && w.Contextual == 0
}

// JobRecord is a parsed job description. Records are produced by the
// ingestion layer and are read-only to the scoring engine.
type JobRecord struct {
	ID            string         `json:"id,omitempty"`
	Title         string         `json:"title"`
	Company       string         `json:"company,omitempty"`
	Skills        []string       `json:"skills"`
	Experience    string         `json:"experience"`    // free text, e.g. "3+ years"
	Qualification string         `json:"qualification"` // free text, e.g. "Bachelor's in Computer Science"
	Tools         []string       `json:"tools"`
	Description   string         `json:"description"`
	Weights       *FactorWeights `json:"weights,omitempty"`
}

// Identifier returns the best available identifier for match results: the
// explicit ID when assigned, otherwise the job title.
func (j *JobRecord) Identifier() string {
	if j.ID != "" {
		return j.ID
	}
	return j.Title
}
