package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Smith
john@example.com

EDUCATION
Bachelor of Computer Science
Seneca College
2019 - 2023

EXPERIENCE
Software Developer
at Koralbyte Technologies Apr 2023 - Present
Built REST services in Go and Python

SKILLS
Go, Python, Docker, PostgreSQL
`

func TestExtractSections_Headers(t *testing.T) {
	sections := ExtractSections(sampleResume)

	require.Contains(t, sections, SectionEducation)
	require.Contains(t, sections, SectionExperience)
	require.Contains(t, sections, SectionSkills)

	assert.Contains(t, sections[SectionEducation], "Seneca College")
	assert.NotContains(t, sections[SectionEducation], "Koralbyte")
	assert.Contains(t, sections[SectionExperience], "Koralbyte Technologies")
	assert.NotContains(t, sections[SectionExperience], "Docker")
	assert.Contains(t, sections[SectionSkills], "Docker")
}

func TestExtractSections_MidSentenceHeaderIgnored(t *testing.T) {
	text := "I have five years of experience in building distributed systems and a passion for education technology."
	sections := ExtractSections(text)

	// "experience" and "education" appear mid-sentence only; neither may open
	// a section via header matching. The keyword fallback may still bucket the
	// line, but no header-extracted section content should start after the
	// word "experience".
	assert.NotContains(t, sections[SectionExperience], "in building distributed")
}

func TestExtractSections_KeywordFallback(t *testing.T) {
	text := `bachelor degree from a local college
software developer at some company for three years`

	sections := ExtractSections(text)

	require.Contains(t, sections, SectionEducation)
	require.Contains(t, sections, SectionExperience)
	assert.Contains(t, sections[SectionEducation], "bachelor")
	assert.Contains(t, sections[SectionExperience], "developer")
}

func TestExtractSections_EmptyText(t *testing.T) {
	sections := ExtractSections("")
	assert.Empty(t, sections)
}

func TestExtractSections_AlternateHeaders(t *testing.T) {
	text := Normalize(`ACADEMIC BACKGROUND
Master of Science in Data Engineering
Toronto University 2021

PROFESSIONAL EXPERIENCE:
Data Engineer
at Pipeline Corp Jan 2021 - Dec 2022
`)
	sections := ExtractSections(text)

	require.Contains(t, sections, SectionEducation)
	require.Contains(t, sections, SectionExperience)
	assert.Contains(t, sections[SectionExperience], "Pipeline Corp")
}
