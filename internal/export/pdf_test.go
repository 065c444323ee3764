package export

import (
	"bytes"
	"testing"

	"quizforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPDF_ProducesDocument(t *testing.T) {
	var buf bytes.Buffer

	err := ExportPDF(&buf, sampleQuestions())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, buf.Len(), 1000)
}

func TestExportPDF_InvalidRecordsDropped(t *testing.T) {
	questions := []domain.Question{
		{Text: "Valid statement", CorrectAnswer: "True", Type: domain.TrueFalse},
		{Text: "Invalid", CorrectAnswer: "E", Options: []string{"a", "b", "c", "d"}, Type: domain.MultipleChoice},
	}

	var buf bytes.Buffer
	err := ExportPDF(&buf, questions)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestExportPDF_EmptyQuizStillRenders(t *testing.T) {
	var buf bytes.Buffer

	err := ExportPDF(&buf, nil)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
