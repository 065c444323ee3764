package dto

import (
	"quizforge/internal/domain"
)

// GenerateQuizRequest represents the quiz generation parameters
// @Description Request body for generating a quiz from source text
type GenerateQuizRequest struct {
	SourceText    string   `json:"source_text"`
	NumQuestions  int      `json:"num_questions"`
	Difficulty    string   `json:"difficulty"`
	QuestionTypes []string `json:"question_types"`
}

// Validate checks the request against the user-facing control bounds:
// question count in [5,50] in steps of 5, an enumerated difficulty and a
// non-empty subset of the supported question types.
func (r *GenerateQuizRequest) Validate() error {
	if r.NumQuestions < 5 || r.NumQuestions > 50 {
		return domain.NewInvalidInputError("num_questions must be between 5 and 50")
	}
	if r.NumQuestions%5 != 0 {
		return domain.NewInvalidInputError("num_questions must be a multiple of 5")
	}
	if !domain.IsValidDifficulty(domain.Difficulty(r.Difficulty)) {
		return domain.NewInvalidInputError("difficulty must be one of Easy, Medium, Hard")
	}
	if len(r.QuestionTypes) == 0 {
		return domain.NewInvalidInputError("question_types must not be empty")
	}
	for _, t := range r.QuestionTypes {
		qt := domain.QuestionType(t)
		if qt != domain.MultipleChoice && qt != domain.TrueFalse {
			return domain.NewInvalidInputError("question_types entries must be multiple_choice or true_false")
		}
	}
	if r.SourceText == "" {
		return domain.NewInvalidInputError("source_text is required")
	}
	return nil
}

// ToSpec converts the request into a domain generation spec
func (r *GenerateQuizRequest) ToSpec() domain.QuestionSpec {
	types := make([]domain.QuestionType, 0, len(r.QuestionTypes))
	for _, t := range r.QuestionTypes {
		types = append(types, domain.QuestionType(t))
	}
	return domain.QuestionSpec{
		NumQuestions: r.NumQuestions,
		Difficulty:   domain.Difficulty(r.Difficulty),
		Types:        types,
		SourceText:   r.SourceText,
	}
}

// QuestionResponse represents a single generated question in API responses
type QuestionResponse struct {
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
	Type          string   `json:"type"`
}

// GenerateQuizResponse represents a generated quiz in the API response.
// Callers compare generated against requested to distinguish a fully
// satisfied request from a partial one.
type GenerateQuizResponse struct {
	QuizID    string             `json:"quiz_id"`
	Requested int                `json:"requested"`
	Generated int                `json:"generated"`
	Questions []QuestionResponse `json:"questions"`
}

// UploadPDFResponse represents the result of PDF text extraction
type UploadPDFResponse struct {
	Text     string `json:"text"`
	NumChars int    `json:"num_chars"`
	Preview  string `json:"preview"`
}

// ExportQuizRequest represents the questions to render as a document
type ExportQuizRequest struct {
	Questions []QuestionResponse `json:"questions"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// FromDomainQuestions maps domain questions into API responses
func FromDomainQuestions(questions []domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, QuestionResponse{
			Question:      q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Type:          string(q.Type),
		})
	}
	return out
}

// ToDomainQuestions maps API question payloads back into domain questions
func ToDomainQuestions(questions []QuestionResponse) []domain.Question {
	out := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, domain.Question{
			Text:          q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Type:          domain.QuestionType(q.Type),
		})
	}
	return out
}
