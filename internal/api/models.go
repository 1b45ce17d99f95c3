package api

import (
	"github.com/phrazzld/classroom-assist/internal/domain"
)

// Common request/response structures

// GenerateRequest defines the payload for raw prompt generation.
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required"`

	// MaxAttempts overrides the configured attempt budget when set.
	MaxAttempts int `json:"max_attempts,omitempty" validate:"omitempty,gte=1,lte=10"`
}

// GenerateResponse is the result of a raw prompt generation. Text is always
// displayable, including when Outcome reports a failure.
type GenerateResponse struct {
	Text     string `json:"text"`
	Outcome  string `json:"outcome"`
	Attempts int    `json:"attempts"`
}

// QueryRequest defines the payload for assistant questions.
type QueryRequest struct {
	Query string `json:"query" validate:"required,max=2000"`
}

// ResourceNeedsRequest sizes a trend rollout.
type ResourceNeedsRequest struct {
	Teachers int `json:"teachers" validate:"required,gte=1"`
	Students int `json:"students" validate:"required,gte=1"`
}

// VisitPageRequest records navigation to a dashboard page.
type VisitPageRequest struct {
	Page string `json:"page" validate:"required,max=64"`
}

// TextResponse carries generated text.
type TextResponse struct {
	Text string `json:"text"`
}

// VoiceResponse carries the voice reply and the conversation so far.
type VoiceResponse struct {
	Text    string               `json:"text"`
	History []domain.ChatMessage `json:"history"`
}

// TrendListResponse wraps a list of trends.
type TrendListResponse struct {
	Trends []domain.Trend `json:"trends"`
}

// UpdateListResponse wraps a list of content updates.
type UpdateListResponse struct {
	Updates []domain.ContentUpdate `json:"updates"`
}
