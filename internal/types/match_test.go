package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendation_Tiers(t *testing.T) {
	assert.Equal(t, "Excellent match - Highly recommended", Recommendation(95))
	assert.Equal(t, "Excellent match - Highly recommended", Recommendation(80))
	assert.Equal(t, "Good match - Consider for interview", Recommendation(79.9))
	assert.Equal(t, "Good match - Consider for interview", Recommendation(60))
	assert.Equal(t, "Moderate match - Review carefully", Recommendation(59.9))
	assert.Equal(t, "Moderate match - Review carefully", Recommendation(40))
	assert.Equal(t, "Low match - May not be suitable", Recommendation(39.9))
	assert.Equal(t, "Low match - May not be suitable", Recommendation(0))
}

func TestJobRecordIdentifier(t *testing.T) {
	j := &JobRecord{ID: "abc", Title: "Backend Developer"}
	assert.Equal(t, "abc", j.Identifier())

	j = &JobRecord{Title: "Backend Developer"}
	assert.Equal(t, "Backend Developer", j.Identifier())
}

func TestFactorWeightsIsZero(t *testing.T) {
	assert.True(t, FactorWeights{}.IsZero())
	assert.False(t, FactorWeights{Skills: 0.5}.IsZero())
}
