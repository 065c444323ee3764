package export

import (
	"strings"
	"testing"

	"quizforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []domain.Question {
	return []domain.Question{
		{
			Text:          "Which organelle produces ATP?",
			Options:       []string{"Nucleus", "Mitochondria", "Ribosome", "Golgi apparatus"},
			CorrectAnswer: "B",
			Explanation:   "Mitochondria carry out cellular respiration.",
			Type:          domain.MultipleChoice,
		},
		{
			Text:          "DNA is stored in the nucleus.",
			CorrectAnswer: "True",
			Explanation:   "In eukaryotes the nucleus holds the genome.",
			Type:          domain.TrueFalse,
		},
	}
}

func TestExportText_Sections(t *testing.T) {
	out := ExportText(sampleQuestions())

	assert.Contains(t, out, "AI GENERATED QUIZ")
	assert.Contains(t, out, "QUESTIONS")
	assert.Contains(t, out, "ANSWER KEY")
	assert.Contains(t, out, "Total Questions: 2")

	// Questions are listed before the answer key
	questionsIdx := strings.Index(out, "QUESTIONS")
	keyIdx := strings.Index(out, "ANSWER KEY")
	require.Greater(t, keyIdx, questionsIdx)
}

func TestExportText_NumberingAndOptions(t *testing.T) {
	out := ExportText(sampleQuestions())

	assert.Contains(t, out, "Question 1: Which organelle produces ATP?")
	assert.Contains(t, out, "   A. Nucleus")
	assert.Contains(t, out, "   B. Mitochondria")
	assert.Contains(t, out, "   D. Golgi apparatus")

	assert.Contains(t, out, "Question 2: DNA is stored in the nucleus.")
	assert.Contains(t, out, "   A. True")
	assert.Contains(t, out, "   B. False")
}

func TestExportText_AnswerKey(t *testing.T) {
	out := ExportText(sampleQuestions())

	key := out[strings.Index(out, "ANSWER KEY"):]
	assert.Contains(t, key, "Question 1: B")
	assert.Contains(t, key, "Explanation: Mitochondria carry out cellular respiration.")
	assert.Contains(t, key, "Question 2: True")
}

func TestExportText_AnswersNotShownInQuestionSection(t *testing.T) {
	out := ExportText(sampleQuestions())

	questionSection := out[strings.Index(out, "QUESTIONS"):strings.Index(out, "ANSWER KEY")]
	assert.NotContains(t, questionSection, "Explanation:")
}

func TestExportText_InvalidRecordsDropped(t *testing.T) {
	questions := append(sampleQuestions(), domain.Question{
		Text:          "Broken",
		Options:       []string{"only", "three", "options"},
		CorrectAnswer: "A",
		Type:          domain.MultipleChoice,
	})

	out := ExportText(questions)

	assert.NotContains(t, out, "Broken")
	assert.Contains(t, out, "Total Questions: 2")
}
