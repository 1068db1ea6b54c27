package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobsJSON_Array(t *testing.T) {
	payload := `[
		{"title": "Backend Developer", "description": "Go services", "skills": ["Go", "PostgreSQL"]},
		{"id": "fixed-id", "title": "Data Engineer", "description": "Pipelines", "experience": "3+ years"}
	]`

	jobs, err := ParseJobsJSON([]byte(payload))
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.NotEmpty(t, jobs[0].ID, "missing IDs are assigned")
	assert.Equal(t, "fixed-id", jobs[1].ID, "existing IDs are preserved")
	assert.Equal(t, []string{"Go", "PostgreSQL"}, jobs[0].Skills)
	assert.NotNil(t, jobs[1].Skills)
	assert.NotNil(t, jobs[1].Tools)
}

func TestParseJobsJSON_SingleObject(t *testing.T) {
	payload := `{"title": "Backend Developer", "description": "Go services"}`

	jobs, err := ParseJobsJSON([]byte(payload))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Backend Developer", jobs[0].Title)
}

func TestParseJobsJSON_MissingRequiredField(t *testing.T) {
	payload := `[{"title": "Backend Developer"}]`

	_, err := ParseJobsJSON([]byte(payload))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestParseJobsJSON_Empty(t *testing.T) {
	_, err := ParseJobsJSON([]byte("   "))
	assert.Error(t, err)
}

func TestParseJobText_Heuristics(t *testing.T) {
	job, err := ParseJobText(`Senior Backend Developer
We build payment infrastructure in Go and PostgreSQL on AWS.
Requirements: 5+ years of experience, Bachelor degree in Computer Science.`)
	require.NoError(t, err)

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "Senior Backend Developer", job.Title)
	assert.Contains(t, job.Skills, "Go")
	assert.Contains(t, job.Skills, "PostgreSQL")
	assert.Contains(t, job.Skills, "AWS")
	assert.Contains(t, job.Experience, "5+ years")
	assert.Contains(t, job.Qualification, "Bachelor degree in Computer Science")
}

func TestParseJobText_Empty(t *testing.T) {
	_, err := ParseJobText("   ")
	assert.Error(t, err)
}

func TestParseJobText_HTMLBody(t *testing.T) {
	job, err := ParseJobText(`<html><body>
<nav>Jobs Home</nav>
<div class="job-description">
<h1>Platform Engineer</h1>
<p>Operate Kubernetes and Docker at scale.</p>
</div>
<footer>footer noise</footer>
</body></html>`)
	require.NoError(t, err)

	assert.Equal(t, "Platform Engineer", job.Title)
	assert.Contains(t, job.Skills, "Kubernetes")
	assert.Contains(t, job.Skills, "Docker")
	assert.NotContains(t, job.Description, "footer noise")
}

func TestExtractHTMLText_StripsChrome(t *testing.T) {
	text, err := ExtractHTMLText(`<html><body>
<nav>navigation</nav>
<main><p>First paragraph.</p><li>Second item</li></main>
<script>var x = 1;</script>
</body></html>`)
	require.NoError(t, err)

	assert.Contains(t, text, "First paragraph.")
	assert.Contains(t, text, "Second item")
	assert.NotContains(t, text, "navigation")
	assert.NotContains(t, text, "var x")
}

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, LooksLikeHTML("<html><body>hi</body></html>"))
	assert.True(t, LooksLikeHTML("  <!DOCTYPE html><html></html>"))
	assert.True(t, LooksLikeHTML("some text <div>x</div> more"))
	assert.False(t, LooksLikeHTML("plain description with 5 < 6 comparisons"))
}

func TestExtractText_PlainText(t *testing.T) {
	assert.Equal(t, "hello resume", ExtractText("resume.txt", []byte("hello resume")))
}

func TestExtractText_CorruptPDFBecomesEmpty(t *testing.T) {
	assert.Equal(t, "", ExtractText("resume.pdf", []byte("not a real pdf")))
}

func TestStripDocxMarkup(t *testing.T) {
	got := stripDocxMarkup(`<w:p><w:r><w:t>First line</w:t></w:r></w:p><w:p><w:r><w:t>Second</w:t></w:r></w:p>`)
	assert.Equal(t, "First line\nSecond", got)
}
