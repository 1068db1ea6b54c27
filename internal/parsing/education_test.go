package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEducationSection_FullEntry(t *testing.T) {
	sections := map[string]string{
		SectionEducation: `Bachelor of Computer Science
Seneca College
Sep 2019 - Jun 2023
GPA: 3.8`,
	}

	entries := ParseEducationSection(sections)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "Seneca College", e.Institution)
	assert.Equal(t, "Bachelor of Computer Science", e.Degree)
	assert.Equal(t, "Computer Science", e.FieldOfStudy)
	assert.Equal(t, "2019-09-01", e.StartDate)
	assert.Equal(t, "2023-06-01", e.EndDate)
	assert.Equal(t, "3.8", e.GPA)
}

func TestParseEducationSection_SingleYearEstimatesProgram(t *testing.T) {
	sections := map[string]string{
		SectionEducation: "Master of Business Administration\nToronto University 2021",
	}

	entries := ParseEducationSection(sections)
	require.Len(t, entries, 1)

	// One lone year: treat it as graduation and estimate a four-year program.
	assert.Equal(t, "2017-09-01", entries[0].StartDate)
	assert.Equal(t, "2021-06-01", entries[0].EndDate)
}

func TestParseEducationSection_CurrentStudent(t *testing.T) {
	sections := map[string]string{
		SectionEducation: "Bachelor of Software Development\nSeneca Polytechnic\nSep 2022 - Present",
	}

	entries := ParseEducationSection(sections)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Current)
	assert.Empty(t, entries[0].EndDate)
}

func TestParseEducationSection_MultipleBlocks(t *testing.T) {
	sections := map[string]string{
		SectionEducation: `Master of Science in Computing
Queens University
2021 - 2023

Bachelor of Engineering
Lagos Institute
2015 - 2019`,
	}

	entries := ParseEducationSection(sections)
	require.Len(t, entries, 2)
	assert.Equal(t, "Queens University", entries[0].Institution)
	assert.Equal(t, "Lagos Institute", entries[1].Institution)
}

func TestParseEducationSection_PlaceholderDefaults(t *testing.T) {
	sections := map[string]string{
		SectionEducation: "Diploma earned with honors in 2018",
	}

	entries := ParseEducationSection(sections)
	require.Len(t, entries, 1)
	assert.Equal(t, UnknownInstitution, entries[0].Institution)
	assert.Equal(t, "Diploma", entries[0].Degree)
}

func TestParseEducationSection_NoEvidenceNoEntries(t *testing.T) {
	assert.Nil(t, ParseEducationSection(map[string]string{SectionEducation: "nothing relevant here"}))
	assert.Nil(t, ParseEducationSection(map[string]string{}))
}
