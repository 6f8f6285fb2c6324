// Package ai turns note text into flashcards and answers via an external
// generative-text service.
package ai

import (
	"context"
	"fmt"
	"strings"

	"noteshare/apperrors"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// TextGenerator is the single capability this package needs from the
// external service: prompt in, completion out. The Gemini client satisfies
// it in production; tests substitute a fake.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator calls the Gemini API. A fresh client is opened per call;
// there is no connection to keep warm and no caching of completions.
type GeminiGenerator struct {
	apiKey string
	model  string
}

// NewGeminiGenerator fails fast when no API key is configured; that is a
// deployment problem, not something to retry.
func NewGeminiGenerator(apiKey string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GOOGLE_API_KEY is not set", apperrors.ErrConfig)
	}
	return &GeminiGenerator{apiKey: apiKey, model: geminiModel}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("creating generative client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}
