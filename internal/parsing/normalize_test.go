package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LineEndings(t *testing.T) {
	got := Normalize("line one\r\nline two\rline three")
	assert.Equal(t, "line one\nline two\nline three", got)
}

func TestNormalize_CollapsesSpacesAndBlankRuns(t *testing.T) {
	got := Normalize("a\t\t b\n\n\n\n\nc")
	assert.Equal(t, "a b\n\nc", got)
}

func TestNormalize_BulletGlyphs(t *testing.T) {
	got := Normalize("▪ one\n‣ two\n● three\n· four")
	assert.Equal(t, "• one\n• two\n• three\n• four", got)
}

func TestNormalize_DashGlyphs(t *testing.T) {
	got := Normalize("Jan 2020 – Mar 2021 — done")
	assert.Equal(t, "Jan 2020 - Mar 2021 - done", got)
}

func TestNormalize_HeaderAliases(t *testing.T) {
	got := Normalize("Work Experience:\nthings\nEmployment History:\nmore\nSkills:\nGo")
	assert.Contains(t, got, "EXPERIENCE\nthings")
	assert.Contains(t, got, "EXPERIENCE\nmore")
	assert.Contains(t, got, "SKILLS\nGo")
}

func TestNormalize_NonBreakingSpace(t *testing.T) {
	got := Normalize("Seneca College")
	assert.Equal(t, "Seneca College", got)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\n  "))
}
