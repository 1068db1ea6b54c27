package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Kieseatic/Ats/internal/parsing"
)

const (
	recognizerModel = "gemini-1.5-flash"
	embeddingModel  = "text-embedding-004"
)

const recognizerPrompt = `Extract named entities from the following resume text.
Return a JSON array of objects with "text" and "label" fields.
Labels: ORG for organizations (companies, universities), DATE for dates,
TITLE for job titles. Return only the JSON array, nothing else.

Text:
%s`

// GeminiClient backs both the entity recognizer consumed by the parse
// cascade and the embedding-based contextual scorer. One client serves both
// because they share the underlying connection.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a Gemini client. The API key is required.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// Available reports whether the client can serve requests.
func (c *GeminiClient) Available() bool {
	return c != nil && c.client != nil
}

// Recognize extracts named entities from resume text.
func (c *GeminiClient) Recognize(ctx context.Context, text string) ([]parsing.Entity, error) {
	model := c.client.GenerativeModel(recognizerModel)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(recognizerPrompt, text)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	raw, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	var out []struct {
		Text  string `json:"text"`
		Label string `json:"label"`
	}
	if err := json.Unmarshal([]byte(cleanJSONBlock(raw)), &out); err != nil {
		return nil, fmt.Errorf("failed to decode entity response: %w", err)
	}

	entities := make([]parsing.Entity, 0, len(out))
	for _, e := range out {
		if e.Text == "" || e.Label == "" {
			continue
		}
		entities = append(entities, parsing.Entity{Text: e.Text, Label: strings.ToUpper(e.Label)})
	}
	return entities, nil
}

// Similarity scores the semantic closeness of a job description and a resume
// by cosine similarity of their embeddings, scaled to 0..100.
func (c *GeminiClient) Similarity(ctx context.Context, jobDescription, resumeText string) (float64, error) {
	if jobDescription == "" || resumeText == "" {
		return 0, nil
	}

	em := c.client.EmbeddingModel(embeddingModel)
	batch := em.NewBatch().
		AddContent(genai.Text(jobDescription)).
		AddContent(genai.Text(resumeText))

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("failed to embed contents: %w", err)
	}
	if len(resp.Embeddings) < 2 {
		return 0, fmt.Errorf("expected 2 embeddings, got %d", len(resp.Embeddings))
	}

	sim := cosine(resp.Embeddings[0].Values, resp.Embeddings[1].Values)
	if sim < 0 {
		sim = 0
	}
	return sim * 100, nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
