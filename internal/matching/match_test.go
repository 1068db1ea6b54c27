package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kieseatic/Ats/internal/types"
)

const strongResume = "4 years of Python and AWS experience, Bachelor of Science in Computer Science."

func strongJob() *types.JobRecord {
	return &types.JobRecord{
		ID:            "job-1",
		Title:         "Backend Developer",
		Skills:        []string{"Python", "AWS"},
		Experience:    "3+ years",
		Qualification: "Bachelor",
		Description:   "Python and AWS experience, Bachelor degree preferred.",
	}
}

func TestMatch_StrongCandidate(t *testing.T) {
	m := NewMatcher(nil)

	result, err := m.Match(context.Background(), strongJob(), strongResume)
	require.NoError(t, err)

	assert.Equal(t, "job-1", result.JobID)
	assert.Greater(t, result.Score, 80.0)
	assert.Contains(t, types.Recommendation(result.Score), "Excellent match")

	require.Contains(t, result.Explanation, types.FactorSkills)
	require.Contains(t, result.Explanation, types.FactorExperience)
	require.Contains(t, result.Explanation, types.FactorQualification)
	require.Contains(t, result.Explanation, types.FactorContextual)
	assert.NotContains(t, result.Explanation, types.FactorTools, "no tools requested")

	assert.Equal(t, 100.0, result.Explanation[types.FactorSkills].Score)
	assert.Equal(t, 100.0, result.Explanation[types.FactorExperience].Score)
	assert.Equal(t, 100.0, result.Explanation[types.FactorQualification].Score)
}

func TestMatch_ToolsReportedButNotAggregated(t *testing.T) {
	m := NewMatcher(nil)

	job := strongJob()
	withoutTools, err := m.Match(context.Background(), job, strongResume)
	require.NoError(t, err)

	job.Tools = []string{"Docker", "Terraform"}
	withTools, err := m.Match(context.Background(), job, strongResume)
	require.NoError(t, err)

	require.Contains(t, withTools.Explanation, types.FactorTools)
	assert.Equal(t, 0.0, withTools.Explanation[types.FactorTools].Score)
	assert.Equal(t, withoutTools.Score, withTools.Score, "tool fit never moves the aggregate")
}

func TestMatch_NoDescriptionSkipsContextualFactor(t *testing.T) {
	m := NewMatcher(nil)

	job := strongJob()
	job.Description = ""
	result, err := m.Match(context.Background(), job, strongResume)
	require.NoError(t, err)

	// Skills, experience, and qualification all score 100; an absent
	// description must not drag the mean down with a zero contextual score.
	assert.Equal(t, 100.0, result.Score)
}

func TestMatch_WeightedFactors(t *testing.T) {
	m := NewMatcher(nil)

	job := strongJob()
	job.Skills = []string{"Rust"} // skills score 0
	job.Weights = &types.FactorWeights{Skills: 1, Experience: 1, Qualification: 1, Contextual: 1}
	equal, err := m.Match(context.Background(), job, strongResume)
	require.NoError(t, err)

	job.Weights = &types.FactorWeights{Skills: 10, Experience: 1, Qualification: 1, Contextual: 1}
	skillsHeavy, err := m.Match(context.Background(), job, strongResume)
	require.NoError(t, err)

	assert.Less(t, skillsHeavy.Score, equal.Score, "upweighting the failed factor must lower the score")
}

func TestMatch_WeakCandidate(t *testing.T) {
	m := NewMatcher(nil)

	job := &types.JobRecord{
		Title:         "Staff Engineer",
		Skills:        []string{"Rust", "Haskell", "Erlang"},
		Experience:    "10+ years of experience",
		Qualification: "PhD in Computer Science",
		Description:   "Distributed consensus research implementation.",
	}
	result, err := m.Match(context.Background(), job, "1 year of experience writing HTML newsletters")
	require.NoError(t, err)

	assert.Less(t, result.Score, 40.0)
	assert.Contains(t, types.Recommendation(result.Score), "Low match")
}

func TestMatchAll_RanksBestFirst(t *testing.T) {
	m := NewMatcher(nil)

	jobs := []types.JobRecord{
		{
			ID:          "weak",
			Title:       "Embedded Engineer",
			Skills:      []string{"Rust", "Zig"},
			Experience:  "9+ years of experience",
			Description: "Firmware for custom silicon.",
		},
		*strongJob(),
	}

	results, err := m.MatchAll(context.Background(), jobs, strongResume)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "job-1", results[0].JobID)
	assert.Equal(t, "weak", results[1].JobID)
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
}

func TestMatchAll_Empty(t *testing.T) {
	m := NewMatcher(nil)
	results, err := m.MatchAll(context.Background(), nil, strongResume)
	require.NoError(t, err)
	assert.Empty(t, results)
}
