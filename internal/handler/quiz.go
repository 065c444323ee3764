package handler

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/export"
	"quizforge/internal/logger"
	"quizforge/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const previewLength = 1000

// QuizHandler handles quiz generation and export HTTP requests
type QuizHandler struct {
	generator domain.QuizGenerationService
	extractor domain.TextExtractor
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(generator domain.QuizGenerationService, extractor domain.TextExtractor) *QuizHandler {
	return &QuizHandler{
		generator: generator,
		extractor: extractor,
	}
}

// UploadPDF godoc
// @Summary Extract text from an uploaded PDF chapter
// @Description Accepts a multipart PDF upload and returns the extracted text
// @Tags quiz
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Success 200 {object} dto.UploadPDFResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /quiz/pdf [post]
func (h *QuizHandler) UploadPDF(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.NewInvalidInputError("a PDF file upload is required")
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		return domain.NewInvalidInputError("only PDF files are supported")
	}

	// The extractor works on files, so stage the upload in a temp path.
	tmpPath := filepath.Join(os.TempDir(), util.NewULID()+".pdf")
	if err := c.SaveFile(fileHeader, tmpPath); err != nil {
		return domain.NewInternalError("Failed to store uploaded file", err)
	}
	defer os.Remove(tmpPath)

	text, err := h.extractor.ExtractText(tmpPath)
	if err != nil {
		logger.Get().Warn("PDF extraction failed",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err))
		return err
	}

	logger.Get().Info("PDF processed",
		zap.String("filename", fileHeader.Filename),
		zap.Int("num_chars", len(text)))

	preview := text
	if len(preview) > previewLength {
		preview = preview[:previewLength] + "..."
	}

	return c.JSON(dto.UploadPDFResponse{
		Text:     text,
		NumChars: len(text),
		Preview:  preview,
	})
}

// GenerateQuiz godoc
// @Summary Generate a quiz from source text
// @Description Generates multiple-choice and true/false questions with an LLM
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Generation parameters"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /quiz/generate [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	questions, err := h.generator.GenerateQuiz(c.UserContext(), req.ToSpec())
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return domain.NewGenerationEmptyError()
	}

	quizID := util.NewULID()
	logger.Get().Info("Quiz generated",
		zap.String("quiz_id", quizID),
		zap.Int("requested", req.NumQuestions),
		zap.Int("generated", len(questions)))

	return c.JSON(dto.GenerateQuizResponse{
		QuizID:    quizID,
		Requested: req.NumQuestions,
		Generated: len(questions),
		Questions: dto.FromDomainQuestions(questions),
	})
}

// ExportPDF godoc
// @Summary Export a quiz as a PDF document
// @Description Renders questions plus an answer key page as a PDF download
// @Tags export
// @Accept json
// @Produce application/pdf
// @Param request body dto.ExportQuizRequest true "Questions to export"
// @Success 200 {file} file
// @Failure 400 {object} middleware.ErrorResponse
// @Router /quiz/export/pdf [post]
func (h *QuizHandler) ExportPDF(c *fiber.Ctx) error {
	questions, err := parseExportRequest(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.ExportPDF(&buf, questions); err != nil {
		return domain.NewInternalError("Failed to create PDF", err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="quiz.pdf"`)
	return c.Send(buf.Bytes())
}

// ExportText godoc
// @Summary Export a quiz as a plain-text document
// @Description Renders questions and an answer key as a text download
// @Tags export
// @Accept json
// @Produce plain
// @Param request body dto.ExportQuizRequest true "Questions to export"
// @Success 200 {string} string
// @Failure 400 {object} middleware.ErrorResponse
// @Router /quiz/export/text [post]
func (h *QuizHandler) ExportText(c *fiber.Ctx) error {
	questions, err := parseExportRequest(c)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="quiz.txt"`)
	return c.SendString(export.ExportText(questions))
}

func parseExportRequest(c *fiber.Ctx) ([]domain.Question, error) {
	var req dto.ExportQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request body")
	}
	if len(req.Questions) == 0 {
		return nil, domain.NewInvalidInputError("questions must not be empty")
	}

	questions := dto.ToDomainQuestions(req.Questions)
	if len(domain.FilterValid(questions)) == 0 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("none of the %d submitted questions passed validation", len(questions)))
	}
	return questions, nil
}
