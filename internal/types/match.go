package types

// Factor names used as keys in the match explanation.
const (
	FactorSkills        = "Skill Match"
	FactorExperience    = "Experience Match"
	FactorQualification = "Education Fit"
	FactorContextual    = "Contextual Similarity"
	FactorTools         = "Tech Fit"
)

// FactorDetail holds one factor's sub-score and its human-readable
// justification.
type FactorDetail struct {
	Score  float64 `json:"score"`
	Detail string  `json:"detail"`
}

// MatchResult is the outcome of scoring one resume against one job. It is
// derived and recomputed per request, never cached.
type MatchResult struct {
	JobID       string                  `json:"job_id"`
	Score       float64                 `json:"score"` // 0..100
	Explanation map[string]FactorDetail `json:"explanation"`
}

// Recommendation returns the hiring recommendation tier for a score. Tier
// boundaries are inclusive on the lower bound.
func Recommendation(score float64) string {
	switch {
	case score >= 80:
		return "Excellent match - Highly recommended"
	case score >= 60:
		return "Good match - Consider for interview"
	case score >= 40:
		return "Moderate match - Review carefully"
	default:
		return "Low match - May not be suitable"
	}
}
