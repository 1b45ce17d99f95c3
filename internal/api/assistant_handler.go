package api

import (
	"net/http"

	"github.com/phrazzld/classroom-assist/internal/api/shared"
	"github.com/phrazzld/classroom-assist/internal/prompt"
	"github.com/phrazzld/classroom-assist/internal/service"
)

// AssistantHandler serves the AI generation endpoints. Generated text is
// returned with 200 even when it describes a failure, so clients can show it
// as-is.
type AssistantHandler struct {
	assistant service.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler
func NewAssistantHandler(assistant service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Generate handles POST /api/generate requests
func (h *AssistantHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result := h.assistant.Generate(r.Context(), req.Prompt, req.MaxAttempts)
	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{
		Text:     result.Text,
		Outcome:  result.Outcome.String(),
		Attempts: result.Attempts,
	})
}

// Insights handles POST /api/insights requests
func (h *AssistantHandler) Insights(w http.ResponseWriter, r *http.Request) {
	var req prompt.InsightsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.respondText(w, r)(h.assistant.Insights(r.Context(), req))
}

// LessonPlan handles POST /api/lesson-plans requests
func (h *AssistantHandler) LessonPlan(w http.ResponseWriter, r *http.Request) {
	var req prompt.LessonPlanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.respondText(w, r)(h.assistant.LessonPlan(r.Context(), req))
}

// AskAssistant handles POST /api/assistant/ask requests
func (h *AssistantHandler) AskAssistant(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.respondText(w, r)(h.assistant.AskAssistant(r.Context(), req.Query))
}

// AskVoice handles POST /api/assistant/voice requests
func (h *AssistantHandler) AskVoice(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	text, err := h.assistant.AskVoice(r.Context(), req.Query)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, VoiceResponse{
		Text:    text,
		History: h.assistant.Session().VoiceHistory,
	})
}

// IntegrationPlan handles POST /api/updates/{id}/integration-plan requests
func (h *AssistantHandler) IntegrationPlan(w http.ResponseWriter, r *http.Request, id int) {
	h.respondText(w, r)(h.assistant.IntegrationPlan(r.Context(), id))
}

// ImplementationPlan handles POST /api/trends/{id}/implementation-plan requests
func (h *AssistantHandler) ImplementationPlan(w http.ResponseWriter, r *http.Request, id int) {
	h.respondText(w, r)(h.assistant.ImplementationPlan(r.Context(), id))
}

// StepwisePlan handles POST /api/trends/{id}/stepwise-plan requests
func (h *AssistantHandler) StepwisePlan(w http.ResponseWriter, r *http.Request, id int) {
	h.respondText(w, r)(h.assistant.StepwisePlan(r.Context(), id))
}

// ResourceNeeds handles POST /api/trends/{id}/resources requests
func (h *AssistantHandler) ResourceNeeds(w http.ResponseWriter, r *http.Request, id int) {
	var req ResourceNeedsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.respondText(w, r)(h.assistant.ResourceNeeds(r.Context(), id, req.Teachers, req.Students))
}

// TrendInsights handles GET /api/trends/insights requests
func (h *AssistantHandler) TrendInsights(w http.ResponseWriter, r *http.Request) {
	h.respondText(w, r)(h.assistant.TrendInsights(r.Context()))
}

// respondText returns a writer for a (text, error) service result.
func (h *AssistantHandler) respondText(w http.ResponseWriter, r *http.Request) func(string, error) {
	return func(text string, err error) {
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, TextResponse{Text: text})
	}
}
