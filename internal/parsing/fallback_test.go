package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFallback_Placeholders(t *testing.T) {
	education, experience := ParseFallback("I studied at a university and worked as a developer since 2018.")

	require.Len(t, education, 1)
	assert.Equal(t, "Institution found in resume", education[0].Institution)
	assert.Equal(t, "Degree mentioned in resume", education[0].Degree)
	assert.Equal(t, "Extracted from resume text - please review and edit", education[0].Description)

	require.Len(t, experience, 1)
	assert.Equal(t, "Company mentioned in resume", experience[0].Company)
	assert.Equal(t, "Position found in resume", experience[0].Position)
	assert.Equal(t, "2018-01-01", experience[0].StartDate)
	assert.Equal(t, "Full-time", experience[0].EmploymentType)
}

func TestParseFallback_NoEvidence(t *testing.T) {
	education, experience := ParseFallback("completely unrelated text about cooking")
	assert.Empty(t, education)
	assert.Empty(t, experience)
}

func TestParseFallback_ExperienceOnly(t *testing.T) {
	education, experience := ParseFallback("seasoned engineer, shipped many systems")
	assert.Empty(t, education)
	require.Len(t, experience, 1)
	// No year in the text: the start date is synthesized from the current
	// year, so it must at least be present and well-formed.
	assert.Regexp(t, `^\d{4}-01-01$`, experience[0].StartDate)
}

func TestExtractSkills_Lexicon(t *testing.T) {
	skills := ExtractSkills("Built services in Go and Python on AWS with PostgreSQL and Docker, exposing REST and GraphQL APIs.")
	assert.ElementsMatch(t, []string{"Go", "Python", "AWS", "PostgreSQL", "Docker", "REST", "GraphQL"}, skills)
}

func TestExtractSkills_DeduplicatesAndSorts(t *testing.T) {
	skills := ExtractSkills("python PYTHON Python react React")
	assert.Equal(t, []string{"python", "react"}, skills)
}

func TestExtractSkills_Empty(t *testing.T) {
	assert.Nil(t, ExtractSkills(""))
	assert.Nil(t, ExtractSkills("no technology words here"))
}
