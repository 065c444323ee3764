package domain

import "context"

// CompletionClient is the boundary to the external LLM completion service.
// Implementations return the raw response text; any transport, auth, rate
// limit or empty-response failure is returned as an error and handled by the
// caller's retry layer.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// TextExtractor produces plain text from a PDF file on disk
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// QuizGenerationService generates quiz questions from source text
type QuizGenerationService interface {
	GenerateQuiz(ctx context.Context, spec QuestionSpec) ([]Question, error)
}
