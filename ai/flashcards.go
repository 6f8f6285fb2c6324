package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"noteshare/apperrors"
)

// Character budgets applied to note text before it is sent out. They bound
// cost and latency against the external service; truncation is by byte
// length, with an ellipsis marker appended.
const (
	flashcardCharBudget = 5000
	answerCharBudget    = 4000
)

// Flashcard is a generated question/answer pair. It is never persisted.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

const flashcardPrompt = `Act as a flashcard generator for students. Create a set of flashcards from the provided note content. Each flashcard must be a JSON object with two fields: "question" (string) and "answer" (string). Return the entire set of flashcards as a single JSON array. Respond with only the JSON array and no additional text, explanation, or markdown formatting.

Note content: %s`

const answerPrompt = `You are an AI assistant helping students understand their notes. Based on the following note content, please answer the student's question comprehensively and accurately.

Note content: %s

Student's question: %s

Please provide a clear answer based on the note content. If the question cannot be answered from the provided content, say so politely.`

// GenerateFlashcards asks the generator for a flashcard set built from
// noteText. The model's reply must be a JSON array of complete cards; any
// malformed or partially-filled reply fails the whole call.
func GenerateFlashcards(ctx context.Context, gen TextGenerator, noteText string) ([]Flashcard, error) {
	prompt := fmt.Sprintf(flashcardPrompt, truncate(noteText, flashcardCharBudget))

	raw, err := gen.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGeneration, err)
	}

	var cards []Flashcard
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &cards); err != nil {
		return nil, fmt.Errorf("%w: response is not a valid JSON array: %v", apperrors.ErrGeneration, err)
	}
	for _, card := range cards {
		if card.Question == "" || card.Answer == "" {
			return nil, fmt.Errorf("%w: invalid flashcard structure", apperrors.ErrGeneration)
		}
	}
	return cards, nil
}

// AnswerQuestion asks the generator to answer question using noteText as
// grounding.
func AnswerQuestion(ctx context.Context, gen TextGenerator, noteText, question string) (string, error) {
	prompt := fmt.Sprintf(answerPrompt, truncate(noteText, answerCharBudget), question)

	answer, err := gen.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrGeneration, err)
	}
	return strings.TrimSpace(answer), nil
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}

// stripCodeFences removes the markdown wrapping models add despite being
// told not to.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
