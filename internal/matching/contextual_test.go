package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordOverlap_FullCoverage(t *testing.T) {
	score := KeywordOverlap("python backend services", "python backend services developer")
	assert.Equal(t, 100.0, score)
}

func TestKeywordOverlap_Partial(t *testing.T) {
	// 2 of 4 meaningful job words appear in the resume.
	score := KeywordOverlap("python kafka streaming pipelines", "python pipelines at scale")
	assert.InDelta(t, 50.0, score, 0.001)
}

func TestKeywordOverlap_StopWordsIgnored(t *testing.T) {
	// Every job word is a stop word or shorter than three characters.
	score := KeywordOverlap("the and for with", "anything at all")
	assert.Equal(t, 0.0, score)
}

func TestKeywordOverlap_EmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, KeywordOverlap("", "resume"))
	assert.Equal(t, 0.0, KeywordOverlap("job", ""))
}

func TestKeywordOverlapScorer_ImplementsContextualScorer(t *testing.T) {
	var scorer ContextualScorer = KeywordOverlapScorer{}
	score, err := scorer.Similarity(context.Background(), "go services", "go services everywhere")
	require.NoError(t, err)
	assert.Equal(t, 100.0, score)
}
