package domain

// QuestionType identifies the shape of a generated question
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
)

// Difficulty represents the requested difficulty tier
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// IsValidDifficulty reports whether d is one of the supported tiers
func IsValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question represents a single generated quiz question.
// For MultipleChoice questions Options holds exactly 4 entries labeled A-D
// by position and CorrectAnswer is one of "A".."D". For TrueFalse questions
// Options is empty and CorrectAnswer is "True" or "False".
type Question struct {
	Text          string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer"`
	Explanation   string       `json:"explanation,omitempty"`
	Type          QuestionType `json:"type"`
}

// QuestionSpec holds the parameters of one generation request
type QuestionSpec struct {
	NumQuestions int
	Difficulty   Difficulty
	Types        []QuestionType
	SourceText   string
}

// HasType reports whether the request includes the given question type
func (s QuestionSpec) HasType(t QuestionType) bool {
	for _, qt := range s.Types {
		if qt == t {
			return true
		}
	}
	return false
}

// Validate validates the generation request parameters
func (s QuestionSpec) Validate() error {
	if s.NumQuestions <= 0 {
		return NewInvalidInputError("number of questions must be positive")
	}
	if !IsValidDifficulty(s.Difficulty) {
		return NewInvalidInputError("difficulty must be Easy, Medium or Hard")
	}
	if len(s.Types) == 0 {
		return NewInvalidInputError("at least one question type is required")
	}
	for _, t := range s.Types {
		if t != MultipleChoice && t != TrueFalse {
			return NewInvalidInputError("unsupported question type: " + string(t))
		}
	}
	if s.SourceText == "" {
		return NewInvalidInputError("source text is required")
	}
	return nil
}

// ValidateQuestion is the schema check applied before a question is trusted
// for display or export. Records failing it are dropped, never surfaced as
// errors.
func ValidateQuestion(q Question) bool {
	if q.Text == "" || q.CorrectAnswer == "" {
		return false
	}

	switch q.Type {
	case MultipleChoice:
		if len(q.Options) != 4 {
			return false
		}
		switch q.CorrectAnswer {
		case "A", "B", "C", "D":
			return true
		}
		return false
	case TrueFalse:
		return q.CorrectAnswer == "True" || q.CorrectAnswer == "False"
	}

	return false
}

// FilterValid returns the subset of questions passing ValidateQuestion,
// preserving order.
func FilterValid(questions []Question) []Question {
	valid := make([]Question, 0, len(questions))
	for _, q := range questions {
		if ValidateQuestion(q) {
			valid = append(valid, q)
		}
	}
	return valid
}
