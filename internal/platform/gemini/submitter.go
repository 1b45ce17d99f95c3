package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/classroom-assist/internal/config"
	"github.com/phrazzld/classroom-assist/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used by Submitter.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Submitter sends prompts to a Gemini model.
type Submitter struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models performs the GenerateContent calls
	models contentGenerator

	// model is the name of the Gemini model to use
	model string
}

var _ generation.Submitter = (*Submitter)(nil)

// NewSubmitter creates a Submitter from the LLM configuration.
//
// It fails with generation.ErrInvalidConfig when the API key or model name is
// missing or the genai client cannot be built. Callers treat any error here as
// "service never initialized" and hand a nil Submitter to generation.NewClient.
func NewSubmitter(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Submitter, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	logger.InfoContext(ctx, "Gemini submitter initialized", "model", cfg.ModelName)

	return newSubmitter(logger, client.Models, cfg.ModelName), nil
}

func newSubmitter(logger *slog.Logger, models contentGenerator, model string) *Submitter {
	return &Submitter{
		logger: logger,
		models: models,
		model:  model,
	}
}

// Submit sends prompt to the model and returns the concatenated text parts
// of the first candidate.
func (s *Submitter) Submit(ctx context.Context, prompt string) (string, error) {
	resp, err := s.models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}

	s.logger.DebugContext(ctx, "Gemini response received",
		"model", s.model,
		"response_length", len(text))

	return text, nil
}

// extractText validates the response shape and joins the candidate's text parts.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, candidate.FinishReason)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("%w: response contained no text", generation.ErrInvalidResponse)
	}

	return b.String(), nil
}
