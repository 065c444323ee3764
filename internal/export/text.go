package export

import (
	"fmt"
	"strings"
	"time"

	"quizforge/internal/domain"
)

const bannerWidth = 60

// ExportText renders the quiz as a plain-text document: a header banner, an
// unanswered QUESTIONS section and an ANSWER KEY section numbered
// identically. Records failing the schema check are dropped.
func ExportText(questions []domain.Question) string {
	questions = domain.FilterValid(questions)

	banner := strings.Repeat("=", bannerWidth)
	divider := strings.Repeat("-", 40)
	currentDate := time.Now().Format("January 2, 2006")

	var lines []string

	// Header
	lines = append(lines,
		banner,
		"AI GENERATED QUIZ",
		banner,
		fmt.Sprintf("Generated on: %s", currentDate),
		fmt.Sprintf("Total Questions: %d", len(questions)),
		"",
		"INSTRUCTIONS:",
		"Choose the best answer for each question.",
		"For True/False questions, select True or False.",
		"",
		banner,
		"QUESTIONS",
		banner,
		"",
	)

	for i, q := range questions {
		lines = append(lines, fmt.Sprintf("Question %d: %s", i+1, q.Text), "")

		switch q.Type {
		case domain.MultipleChoice:
			for j, option := range q.Options {
				lines = append(lines, fmt.Sprintf("   %c. %s", 'A'+j, option))
			}
		case domain.TrueFalse:
			lines = append(lines, "   A. True", "   B. False")
		}

		lines = append(lines, "", divider, "")
	}

	// Answer Key
	lines = append(lines, "", banner, "ANSWER KEY", banner, "")

	for i, q := range questions {
		lines = append(lines, fmt.Sprintf("Question %d: %s", i+1, q.CorrectAnswer))
		if q.Explanation != "" {
			lines = append(lines, fmt.Sprintf("   Explanation: %s", q.Explanation))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
