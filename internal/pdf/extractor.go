package pdf

import (
	"fmt"
	"io"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// Minimum usable content lengths. The per-page pass is preferred; the
// whole-document fallback tends to include more layout noise, so it has to
// clear a higher bar.
const (
	minPrimaryLength  = 50
	minFallbackLength = 100
)

// Extractor implements domain.TextExtractor on top of a page-oriented PDF
// reader with a whole-document fallback.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText extracts the text content of the PDF at path. It returns a
// domain.ExtractionError when the file is unreadable or yields no usable
// text.
func (e *Extractor) ExtractText(path string) (string, error) {
	text, err := e.extractByPage(path)
	if err != nil {
		logger.Get().Warn("Page-wise PDF extraction failed", zap.String("path", path), zap.Error(err))
	}
	if len(strings.TrimSpace(text)) > minPrimaryLength {
		return text, nil
	}

	text, err = e.extractWholeDocument(path)
	if err != nil {
		logger.Get().Error("Fallback PDF extraction failed", zap.String("path", path), zap.Error(err))
		return "", domain.NewExtractionError("Error processing PDF", err)
	}
	if len(strings.TrimSpace(text)) > minFallbackLength {
		return text, nil
	}

	return "", domain.NewExtractionError("No readable text could be extracted from this PDF", nil)
}

// extractByPage walks the document page by page, cleaning each page and
// prefixing it with a page marker.
func (e *Extractor) extractByPage(path string) (text string, err error) {
	// The underlying reader panics on some malformed documents; a corrupt
	// upload must surface as an error, not take the process down.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF reader panic: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var pages []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			logger.Get().Warn("Failed to extract text from page",
				zap.Int("page", pageNum),
				zap.Error(pageErr))
			continue
		}

		cleaned := cleanExtractedText(pageText)
		if cleaned != "" {
			pages = append(pages, fmt.Sprintf("--- Page %d ---\n%s", pageNum, cleaned))
		}
	}

	return strings.Join(pages, "\n\n"), nil
}

// extractWholeDocument reads the document's full text stream in one pass.
func (e *Extractor) extractWholeDocument(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF reader panic: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	contentReader, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read document text: %w", err)
	}

	raw, err := io.ReadAll(contentReader)
	if err != nil {
		return "", fmt.Errorf("failed to read document text: %w", err)
	}

	return cleanExtractedText(string(raw)), nil
}

// cleanExtractedText normalizes raw page text: drops very short lines,
// collapses whitespace and strips null characters.
func cleanExtractedText(text string) string {
	if text == "" {
		return ""
	}

	var cleanedLines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 2 {
			cleanedLines = append(cleanedLines, strings.Join(strings.Fields(line), " "))
		}
	}

	cleaned := strings.Join(cleanedLines, " ")
	cleaned = strings.ReplaceAll(cleaned, "\x00", "")
	return strings.Join(strings.Fields(cleaned), " ")
}

// Static assertion to ensure Extractor implements TextExtractor
var _ domain.TextExtractor = (*Extractor)(nil)
