// Package nlp provides the optional Gemini-backed collaborators: named-entity
// recognition for the resume parser and embedding-based similarity for the
// match scorer. Both degrade cleanly when no API key is configured.
package nlp

import (
	"context"

	"github.com/Kieseatic/Ats/internal/parsing"
)

// NullRecognizer is the recognizer used when no NLP backend is configured.
// It reports unavailable so the parse cascade skips the NLP strategy.
type NullRecognizer struct{}

// Available always reports false.
func (NullRecognizer) Available() bool { return false }

// Recognize never runs; it satisfies the interface for completeness.
func (NullRecognizer) Recognize(_ context.Context, _ string) ([]parsing.Entity, error) {
	return nil, nil
}
