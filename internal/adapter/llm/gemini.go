package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// Sampling temperature is fixed: creative enough for question variety,
// repeatable enough to stay close to the source text.
const temperature = 0.7

const requestTimeout = 60 * time.Second

// GeminiClient implements domain.CompletionClient using the Gemini API via
// langchaingo.
type GeminiClient struct {
	llm       *googleai.GoogleAI
	modelName string
}

// NewGeminiClient creates a new Gemini completion client.
func NewGeminiClient(ctx context.Context, apiKey string, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("Gemini API key is required")
	}
	if modelName == "" {
		return nil, errors.New("Gemini model name is required")
	}

	client, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Get().Info("Initialized Gemini completion client", zap.String("model", modelName))

	return &GeminiClient{llm: client, modelName: modelName}, nil
}

// Complete sends the prompt to Gemini and returns the raw response text.
func (c *GeminiClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	response, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt,
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", domain.NewLLMServiceError(fmt.Errorf("LLM request timed out: %w", err))
		}
		return "", domain.NewLLMServiceError(fmt.Errorf("LLM call failed: %w", err))
	}

	if response == "" {
		return "", domain.NewLLMServiceError(errors.New("LLM returned an empty response"))
	}

	return response, nil
}

// Static assertion to ensure GeminiClient implements CompletionClient
var _ domain.CompletionClient = (*GeminiClient)(nil)
