package export

import (
	"fmt"
	"io"
	"time"

	"quizforge/internal/domain"

	"github.com/jung-kurt/gofpdf"
)

// ExportPDF renders the quiz as a paginated PDF document: questions without
// answers first, then a page break and an answer key page listing each
// question's correct answer and explanation. Records failing the schema
// check are dropped, so question numbering matches the text export.
func ExportPDF(w io.Writer, questions []domain.Question) error {
	questions = domain.FilterValid(questions)

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("AI Generated Quiz", false)
	doc.SetAutoPageBreak(true, 25)
	doc.AddPage()

	// Title
	doc.SetFont("Helvetica", "B", 24)
	doc.SetTextColor(220, 38, 38)
	doc.CellFormat(0, 12, "AI Generated Quiz", "", 1, "C", false, 0, "")
	doc.Ln(4)

	// Metadata
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(31, 41, 55)
	meta := fmt.Sprintf("Generated on: %s | Questions: %d", time.Now().Format("January 2, 2006"), len(questions))
	doc.CellFormat(0, 6, meta, "", 1, "L", false, 0, "")
	doc.Ln(4)

	// Instructions
	doc.SetFont("Helvetica", "I", 10)
	doc.MultiCell(0, 5, "Instructions: Choose the best answer for each question. For True/False questions, circle T for True or F for False.", "", "L", false)
	doc.Ln(6)

	for i, q := range questions {
		doc.SetFont("Helvetica", "B", 12)
		doc.MultiCell(0, 6, fmt.Sprintf("Question %d: %s", i+1, q.Text), "", "L", false)
		doc.Ln(1)

		doc.SetFont("Helvetica", "", 11)
		switch q.Type {
		case domain.MultipleChoice:
			for j, option := range q.Options {
				doc.SetX(doc.GetX() + 8)
				doc.MultiCell(0, 5, fmt.Sprintf("%c. %s", 'A'+j, option), "", "L", false)
			}
		case domain.TrueFalse:
			doc.SetX(doc.GetX() + 8)
			doc.MultiCell(0, 5, "A. True", "", "L", false)
			doc.SetX(doc.GetX() + 8)
			doc.MultiCell(0, 5, "B. False", "", "L", false)
		}
		doc.Ln(4)
	}

	// Answer key on its own page
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 24)
	doc.SetTextColor(220, 38, 38)
	doc.CellFormat(0, 12, "Answer Key", "", 1, "C", false, 0, "")
	doc.Ln(6)

	doc.SetTextColor(5, 150, 105)
	for i, q := range questions {
		doc.SetFont("Helvetica", "B", 11)
		doc.MultiCell(0, 6, fmt.Sprintf("Question %d: %s", i+1, q.CorrectAnswer), "", "L", false)
		if q.Explanation != "" {
			doc.SetFont("Helvetica", "I", 10)
			doc.MultiCell(0, 5, fmt.Sprintf("Explanation: %s", q.Explanation), "", "L", false)
		}
		doc.Ln(2)
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("failed to render quiz PDF: %w", err)
	}
	return nil
}
