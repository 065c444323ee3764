package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuestion(t *testing.T) {
	fourOptions := []string{"Opt 1", "Opt 2", "Opt 3", "Opt 4"}

	tests := []struct {
		name     string
		question Question
		valid    bool
	}{
		{
			name:     "valid multiple choice",
			question: Question{Text: "Q?", Options: fourOptions, CorrectAnswer: "B", Type: MultipleChoice},
			valid:    true,
		},
		{
			name:     "multiple choice with three options",
			question: Question{Text: "Q?", Options: []string{"a", "b", "c"}, CorrectAnswer: "A", Type: MultipleChoice},
			valid:    false,
		},
		{
			name:     "multiple choice with answer outside A-D",
			question: Question{Text: "Q?", Options: fourOptions, CorrectAnswer: "E", Type: MultipleChoice},
			valid:    false,
		},
		{
			name:     "valid true false",
			question: Question{Text: "Statement", CorrectAnswer: "False", Type: TrueFalse},
			valid:    true,
		},
		{
			name:     "true false with letter answer",
			question: Question{Text: "Statement", CorrectAnswer: "A", Type: TrueFalse},
			valid:    false,
		},
		{
			name:     "lowercase true is not accepted",
			question: Question{Text: "Statement", CorrectAnswer: "true", Type: TrueFalse},
			valid:    false,
		},
		{
			name:     "empty question text",
			question: Question{Text: "", Options: fourOptions, CorrectAnswer: "A", Type: MultipleChoice},
			valid:    false,
		},
		{
			name:     "missing correct answer",
			question: Question{Text: "Q?", Options: fourOptions, Type: MultipleChoice},
			valid:    false,
		},
		{
			name:     "unknown type",
			question: Question{Text: "Q?", CorrectAnswer: "A", Type: "fill_in_the_blank"},
			valid:    false,
		},
		{
			name:     "missing type",
			question: Question{Text: "Q?", CorrectAnswer: "A"},
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateQuestion(tt.question))
		})
	}
}

func TestFilterValid(t *testing.T) {
	questions := []Question{
		{Text: "Keep 1", CorrectAnswer: "True", Type: TrueFalse},
		{Text: "Drop", CorrectAnswer: "Maybe", Type: TrueFalse},
		{Text: "Keep 2", CorrectAnswer: "False", Type: TrueFalse},
	}

	valid := FilterValid(questions)

	require.Len(t, valid, 2)
	assert.Equal(t, "Keep 1", valid[0].Text)
	assert.Equal(t, "Keep 2", valid[1].Text)
}

func TestQuestionSpecValidate(t *testing.T) {
	base := QuestionSpec{
		NumQuestions: 10,
		Difficulty:   DifficultyMedium,
		Types:        []QuestionType{MultipleChoice},
		SourceText:   "chapter text",
	}

	assert.NoError(t, base.Validate())

	invalid := base
	invalid.NumQuestions = 0
	assert.Error(t, invalid.Validate())

	invalid = base
	invalid.Difficulty = "Extreme"
	assert.Error(t, invalid.Validate())

	invalid = base
	invalid.Types = nil
	assert.Error(t, invalid.Validate())

	invalid = base
	invalid.Types = []QuestionType{"essay"}
	assert.Error(t, invalid.Validate())

	invalid = base
	invalid.SourceText = ""
	assert.Error(t, invalid.Validate())
}

func TestQuestionSpecHasType(t *testing.T) {
	spec := QuestionSpec{Types: []QuestionType{TrueFalse}}
	assert.True(t, spec.HasType(TrueFalse))
	assert.False(t, spec.HasType(MultipleChoice))
}
