package matching

import (
	"context"
	"regexp"
	"strings"
)

// ContextualScorer measures how much of the job description's vocabulary the
// resume covers. Implementations must return a value in [0,100] and are
// interchangeable behind this contract; the Gemini embedding scorer in
// internal/nlp is the enhanced variant.
type ContextualScorer interface {
	Similarity(ctx context.Context, jobDescription, resumeText string) (float64, error)
}

// Fixed stop-word set removed before overlap counting.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "as": true, "is": true, "was": true, "are": true,
	"were": true, "be": true, "been": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "could": true, "should": true, "may": true, "might": true,
	"must": true, "can": true, "this": true, "that": true, "these": true,
	"those": true, "i": true, "you": true, "he": true, "she": true,
	"it": true, "we": true, "they": true,
}

var contextWordRe = regexp.MustCompile(`\b\w{3,}\b`)

// KeywordOverlapScorer is the baseline contextual scorer: the fraction of
// meaningful job-description words also present in the resume, scaled to
// 0..100.
type KeywordOverlapScorer struct{}

// Similarity never fails; the error is part of the ContextualScorer contract
// for the enhanced variants.
func (KeywordOverlapScorer) Similarity(_ context.Context, jobDescription, resumeText string) (float64, error) {
	return KeywordOverlap(jobDescription, resumeText), nil
}

// KeywordOverlap computes the baseline contextual similarity directly.
func KeywordOverlap(jobDescription, resumeText string) float64 {
	if jobDescription == "" || resumeText == "" {
		return 0
	}

	jobWords := meaningfulWords(jobDescription)
	resumeWords := meaningfulWords(resumeText)

	if len(jobWords) == 0 {
		return 0
	}

	overlap := 0
	for word := range jobWords {
		if resumeWords[word] {
			overlap++
		}
	}

	similarity := float64(overlap) / float64(len(jobWords)) * 100
	if similarity > 100 {
		return 100
	}
	return similarity
}

func meaningfulWords(text string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range contextWordRe.FindAllString(strings.ToLower(text), -1) {
		if !stopWords[w] {
			words[w] = true
		}
	}
	return words
}
