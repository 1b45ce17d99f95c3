package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/phrazzld/classroom-assist/internal/api/shared"
	"github.com/phrazzld/classroom-assist/internal/domain"
	"github.com/phrazzld/classroom-assist/internal/generation"
	"github.com/phrazzld/classroom-assist/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		sub := mocks.NewMockSubmitterWithText("Water evaporates and falls as rain.")
		router := newTestRouter(t, sub)

		rr := doRequest(t, router, http.MethodPost, "/api/generate",
			GenerateRequest{Prompt: "Summarize the water cycle in one sentence."})

		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody[GenerateResponse](t, rr)
		assert.Equal(t, "Water evaporates and falls as rain.", resp.Text)
		assert.Equal(t, "success", resp.Outcome)
		assert.Equal(t, 1, resp.Attempts)
	})

	t.Run("exhausted retries still return 200", func(t *testing.T) {
		sub := mocks.NewMockSubmitterWithError(errors.New("quota exceeded"))
		router := newTestRouter(t, sub)

		rr := doRequest(t, router, http.MethodPost, "/api/generate",
			GenerateRequest{Prompt: "Explain fractions", MaxAttempts: 2})

		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody[GenerateResponse](t, rr)
		assert.Equal(t, "Error generating response: quota exceeded", resp.Text)
		assert.Equal(t, "exhausted_retries", resp.Outcome)
		assert.Equal(t, 2, resp.Attempts)
		assert.Equal(t, 2, sub.CallCount())
	})

	t.Run("unavailable model", func(t *testing.T) {
		router := newTestRouter(t, nil)

		rr := doRequest(t, router, http.MethodPost, "/api/generate", GenerateRequest{Prompt: "Hi"})

		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody[GenerateResponse](t, rr)
		assert.Equal(t, generation.UnavailableMessage, resp.Text)
		assert.Equal(t, "service_unavailable", resp.Outcome)
		assert.Zero(t, resp.Attempts)
	})

	t.Run("validation", func(t *testing.T) {
		router := newTestRouter(t, mocks.NewMockSubmitterWithText("x"))

		tests := []struct {
			name    string
			body    interface{}
			wantMsg string
		}{
			{"malformed json", `{"prompt":`, "Invalid request format"},
			{"missing prompt", GenerateRequest{}, "Invalid Prompt: required field"},
			{"too many attempts", GenerateRequest{Prompt: "x", MaxAttempts: 11}, "Invalid MaxAttempts: too large"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rr := doRequest(t, router, http.MethodPost, "/api/generate", tt.body)

				assert.Equal(t, http.StatusBadRequest, rr.Code)
				assert.Equal(t, tt.wantMsg, decodeBody[shared.ErrorResponse](t, rr).Error)
			})
		}
	})
}

func TestTextEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       interface{}
		wantPrompt string
	}{
		{
			name:       "insights",
			method:     http.MethodPost,
			path:       "/api/insights",
			body:       map[string]string{"context": "Grade 5 math", "data": "avg 72%"},
			wantPrompt: "Data: avg 72%",
		},
		{
			name:   "lesson plan",
			method: http.MethodPost,
			path:   "/api/lesson-plans",
			body: map[string]interface{}{
				"subject":         "Science",
				"grade_level":     "Grade 7",
				"topic":           "Photosynthesis",
				"duration":        "45-minute",
				"learning_styles": []string{"Visual"},
			},
			wantPrompt: "accommodate Visual learning styles",
		},
		{
			name:       "classroom question",
			method:     http.MethodPost,
			path:       "/api/assistant/ask",
			body:       QueryRequest{Query: "Quick warm-up idea?"},
			wantPrompt: "provide a brief response to: Quick warm-up idea?",
		},
		{
			name:       "implementation plan",
			method:     http.MethodPost,
			path:       "/api/trends/1/implementation-plan",
			wantPrompt: "Trend: AI-Enhanced Personalized Learning",
		},
		{
			name:       "stepwise plan",
			method:     http.MethodPost,
			path:       "/api/trends/2/stepwise-plan",
			wantPrompt: "The implementation difficulty is Low.",
		},
		{
			name:       "resources",
			method:     http.MethodPost,
			path:       "/api/trends/3/resources",
			body:       ResourceNeedsRequest{Teachers: 8, Students: 160},
			wantPrompt: "for 8 teachers and 160 students",
		},
		{
			name:       "trend insights",
			method:     http.MethodGet,
			path:       "/api/trends/insights",
			wantPrompt: "Provide 3 key insights",
		},
		{
			name:       "integration plan",
			method:     http.MethodPost,
			path:       "/api/updates/4/integration-plan",
			wantPrompt: "Create a detailed integration plan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := mocks.NewMockSubmitterWithText("generated text")
			router := newTestRouter(t, sub)

			rr := doRequest(t, router, tt.method, tt.path, tt.body)

			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			assert.Equal(t, "generated text", decodeBody[TextResponse](t, rr).Text)
			prompts := sub.Prompts()
			require.Len(t, prompts, 1)
			assert.Contains(t, prompts[0], tt.wantPrompt)
		})
	}
}

func TestTextEndpoints_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       interface{}
		wantStatus int
		wantMsg    string
	}{
		{"unknown trend", "/api/trends/99/implementation-plan", nil, http.StatusNotFound, "Trend not found"},
		{"non numeric trend id", "/api/trends/abc/stepwise-plan", nil, http.StatusBadRequest, "Invalid ID"},
		{"zero trend id", "/api/trends/0/stepwise-plan", nil, http.StatusBadRequest, "Invalid ID"},
		{"unknown update", "/api/updates/42/integration-plan", nil, http.StatusNotFound, "Content update not found"},
		{
			"resources without students", "/api/trends/1/resources",
			ResourceNeedsRequest{Teachers: 3}, http.StatusBadRequest, "Invalid Students: required field",
		},
		{
			"lesson plan without topic", "/api/lesson-plans",
			map[string]string{"subject": "Math", "grade_level": "5", "duration": "30-minute"},
			http.StatusBadRequest, "Invalid Topic: required field",
		},
		{"empty question", "/api/assistant/ask", QueryRequest{}, http.StatusBadRequest, "Invalid Query: required field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := mocks.NewMockSubmitterWithText("unused")
			router := newTestRouter(t, sub)

			rr := doRequest(t, router, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeBody[shared.ErrorResponse](t, rr).Error)
			assert.Zero(t, sub.CallCount())
		})
	}
}

func TestAskVoice(t *testing.T) {
	sub := mocks.NewMockSubmitterWithText("Try exit tickets.")
	router := newTestRouter(t, sub)

	rr := doRequest(t, router, http.MethodPost, "/api/assistant/voice",
		QueryRequest{Query: "How do I check understanding?"})

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[VoiceResponse](t, rr)
	assert.Equal(t, "Try exit tickets.", resp.Text)
	assert.Equal(t, []domain.ChatMessage{
		{Role: domain.RoleAssistant, Content: domain.VoiceGreeting},
		{Role: domain.RoleUser, Content: "How do I check understanding?"},
		{Role: domain.RoleAssistant, Content: "Try exit tickets."},
	}, resp.History)
}
