package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMultiPattern_DegreeFirst(t *testing.T) {
	text := "Earned a Bachelor of Science from Waterloo University in 2020, then moved into industry."

	education, _ := ParseMultiPattern(text)
	require.Len(t, education, 1)
	assert.Equal(t, "Waterloo University", education[0].Institution)
	assert.Contains(t, education[0].Degree, "Bachelor")
	assert.Equal(t, "2020-06-01", education[0].EndDate)
	assert.Equal(t, "2016-09-01", education[0].StartDate)
}

func TestParseMultiPattern_InstitutionFirst(t *testing.T) {
	text := "Humber College - Diploma in Network Administration - 2018"

	education, _ := ParseMultiPattern(text)
	require.Len(t, education, 1)
	assert.Equal(t, "Humber College", education[0].Institution)
	assert.Contains(t, education[0].Degree, "Diploma")
}

func TestParseMultiPattern_TitleFirstExperience(t *testing.T) {
	text := "Software Engineer at Acme Corp (Jan 2020 - Dec 2022)"

	_, experience := ParseMultiPattern(text)
	require.Len(t, experience, 1)
	assert.Equal(t, "Software Engineer", experience[0].Position)
	assert.Equal(t, "Acme Corp", experience[0].Company)
	assert.Equal(t, "2020-01-01", experience[0].StartDate)
	assert.Equal(t, "2022-12-01", experience[0].EndDate)
}

func TestParseMultiPattern_CompanyFirstExperience(t *testing.T) {
	text := "Acme Inc - Backend Developer - Jan 2020 - Present"

	_, experience := ParseMultiPattern(text)
	require.Len(t, experience, 1)
	assert.Equal(t, "Backend Developer", experience[0].Position)
	assert.Equal(t, "Acme Inc", experience[0].Company)
	assert.True(t, experience[0].Current)
}

func TestParseMultiPattern_UndatedExperienceDropped(t *testing.T) {
	text := "Software Engineer at Acme Corp (remote)"

	_, experience := ParseMultiPattern(text)
	assert.Empty(t, experience)
}

func TestParseMultiPattern_Nothing(t *testing.T) {
	education, experience := ParseMultiPattern("plain prose with no career structure")
	assert.Empty(t, education)
	assert.Empty(t, experience)
}
