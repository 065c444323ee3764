package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"go.uber.org/zap"
)

// Generation policy. The retry budget is deliberately small and a partial
// batch is accepted as-is rather than spending further calls chasing the
// exact count (quantity over reliability).
const (
	maxAttempts = 2

	// Share of questions routed to multiple choice when both types are
	// requested; the remainder becomes true/false.
	multipleChoiceShare = 0.7

	// Output token budgets per batch type. Multiple choice payloads are
	// larger because of the options array.
	multipleChoiceMaxTokens = 8000
	trueFalseMaxTokens      = 6000
)

var trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)

// quizGenerationService implements domain.QuizGenerationService
type quizGenerationService struct {
	client domain.CompletionClient
}

// NewQuizGenerationService creates a new quiz generation service backed by
// the given completion client.
func NewQuizGenerationService(client domain.CompletionClient) domain.QuizGenerationService {
	return &quizGenerationService{client: client}
}

// GenerateQuiz runs the type batches strictly in sequence (multiple choice
// first, then true/false) and concatenates their results. The returned slice
// may be shorter than requested, or empty; the caller distinguishes full,
// partial and failed generation purely by comparing lengths.
func (s *quizGenerationService) GenerateQuiz(ctx context.Context, spec domain.QuestionSpec) ([]domain.Question, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	mcCount, tfCount := splitTypeCounts(spec.NumQuestions, spec.HasType(domain.MultipleChoice), spec.HasType(domain.TrueFalse))

	questions := []domain.Question{}

	if mcCount > 0 {
		batch := s.generateBatch(ctx, domain.MultipleChoice, mcCount, spec.Difficulty, spec.SourceText)
		questions = append(questions, batch...)
	}

	if tfCount > 0 {
		batch := s.generateBatch(ctx, domain.TrueFalse, tfCount, spec.Difficulty, spec.SourceText)
		questions = append(questions, batch...)
	}

	// Defensive schema check; recovery already guarantees the minimal shape,
	// so this only reports records the exporter would later drop.
	if invalid := len(questions) - len(domain.FilterValid(questions)); invalid > 0 {
		logger.Get().Warn("Generated questions failed schema validation",
			zap.Int("invalid_count", invalid),
			zap.Int("total_count", len(questions)))
	}

	return questions, nil
}

// splitTypeCounts computes the per-type sub-counts for a request. The
// sub-counts always sum to total; a zero sub-count skips that batch.
func splitTypeCounts(total int, wantMC, wantTF bool) (mcCount, tfCount int) {
	switch {
	case wantMC && wantTF:
		mcCount = int(float64(total) * multipleChoiceShare)
		tfCount = total - mcCount
	case wantMC:
		mcCount = total
	case wantTF:
		tfCount = total
	}
	return mcCount, tfCount
}

// generateBatch runs invocation plus recovery for one question type with up
// to maxAttempts attempts. An exact-count recovery is accepted immediately;
// a non-empty short or over-produced recovery is accepted truncated to count
// without further retries; only a zero-yield attempt is retried. After the
// budget is exhausted the batch is empty, which the orchestrator tolerates.
func (s *quizGenerationService) generateBatch(ctx context.Context, qt domain.QuestionType, count int, difficulty domain.Difficulty, text string) []domain.Question {
	l := logger.Get()

	var prompt string
	var maxTokens int
	if qt == domain.MultipleChoice {
		prompt = multipleChoicePrompt(count, difficulty, text)
		maxTokens = multipleChoiceMaxTokens
	} else {
		prompt = trueFalsePrompt(count, difficulty, text)
		maxTokens = trueFalseMaxTokens
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		raw, err := s.client.Complete(ctx, prompt, maxTokens)
		if err != nil {
			l.Error("LLM call failed",
				zap.String("question_type", string(qt)),
				zap.Int("attempt", attempt),
				zap.Error(err))
			continue
		}

		questions := extractQuestions(raw, qt)

		if len(questions) == count {
			return questions
		}

		if len(questions) > 0 {
			l.Warn("Generated question count does not match request",
				zap.String("question_type", string(qt)),
				zap.Int("requested", count),
				zap.Int("generated", len(questions)))
			if len(questions) > count {
				questions = questions[:count]
			}
			return questions
		}

		l.Warn("No questions recovered from LLM response",
			zap.String("question_type", string(qt)),
			zap.Int("attempt", attempt))
	}

	return nil
}

// extractQuestions recovers a list of questions from free-form LLM output.
// It never fails loudly: any unparseable response yields an empty slice and
// a log entry carrying the offending text for diagnosis.
func extractQuestions(response string, qt domain.QuestionType) []domain.Question {
	l := logger.Get()

	text := strings.TrimSpace(response)

	// Remove markdown code fences
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-len("```")]
	}
	text = strings.TrimSpace(text)

	// Locate the JSON array boundaries
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		l.Error("No JSON array found in LLM response",
			zap.String("question_type", string(qt)),
			zap.String("response", text))
		return nil
	}
	jsonText := text[start : end+1]

	questions, err := parseQuestionArray(jsonText, qt)
	if err == nil {
		return questions
	}

	// Repair pass for common LLM output defects: single-quoted strings and
	// trailing commas before closing brackets.
	fixed := strings.ReplaceAll(jsonText, "'", `"`)
	fixed = trailingCommaRe.ReplaceAllString(fixed, "$1")

	questions, fixErr := parseQuestionArray(fixed, qt)
	if fixErr != nil {
		l.Error("JSON parsing failed after repair pass",
			zap.String("question_type", string(qt)),
			zap.NamedError("parse_error", err),
			zap.NamedError("repair_error", fixErr),
			zap.String("problematic_json", fixed))
		return nil
	}

	return questions
}

// parseQuestionArray parses a JSON array of question objects, keeping only
// elements that are objects carrying at least a question and a
// correct_answer key, and tags survivors with the expected type.
func parseQuestionArray(jsonText string, qt domain.QuestionType) ([]domain.Question, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(jsonText), &elements); err != nil {
		return nil, fmt.Errorf("response is not a JSON array: %w", err)
	}

	questions := []domain.Question{}
	for _, elem := range elements {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(elem, &fields); err != nil {
			continue
		}
		if _, ok := fields["question"]; !ok {
			continue
		}
		if _, ok := fields["correct_answer"]; !ok {
			continue
		}

		var q domain.Question
		if err := json.Unmarshal(elem, &q); err != nil {
			continue
		}
		q.Type = qt
		questions = append(questions, q)
	}

	return questions, nil
}

func multipleChoicePrompt(count int, difficulty domain.Difficulty, text string) string {
	return fmt.Sprintf(`Create exactly %d multiple-choice questions from the text provided.

CRITICAL: You must create exactly %d questions, no more, no less.

Return ONLY a valid JSON array in this exact format:
[
  {
    "question": "Your question here?",
    "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
    "correct_answer": "A",
    "explanation": "Brief explanation"
  }
]

Requirements:
- Exactly %d questions in the JSON array
- Difficulty level: %s
- Each question has exactly 4 options
- Correct answer must be A, B, C, or D
- Include brief explanations
- Focus on key concepts from the provided text
- Return valid JSON only, no other text

Text to analyze:
%s`, count, count, count, difficulty, text)
}

func trueFalsePrompt(count int, difficulty domain.Difficulty, text string) string {
	return fmt.Sprintf(`Create exactly %d true/false questions from the text provided.

CRITICAL: You must create exactly %d questions, no more, no less.

Return ONLY a valid JSON array in this exact format:
[
  {
    "question": "Statement to evaluate as true or false",
    "correct_answer": "True",
    "explanation": "Brief explanation"
  }
]

Requirements:
- Exactly %d questions in the JSON array
- Difficulty level: %s
- Correct answer must be either "True" or "False"
- Mix of true and false answers
- Include brief explanations
- Focus on key facts from the provided text
- Return valid JSON only, no other text

Text to analyze:
%s`, count, count, count, difficulty, text)
}
