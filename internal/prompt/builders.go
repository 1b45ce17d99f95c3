package prompt

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/classroom-assist/internal/domain"
)

// ErrInvalidInput is returned when a builder's input fails validation.
var ErrInvalidInput = errors.New("invalid prompt input")

var validate = validator.New()

// InsightsRequest carries free-form context and data for an insights prompt.
type InsightsRequest struct {
	Context string `json:"context" validate:"required"`
	Data    string `json:"data" validate:"required"`
}

// LessonPlanRequest describes the lesson to plan.
type LessonPlanRequest struct {
	Subject        string   `json:"subject" validate:"required"`
	GradeLevel     string   `json:"grade_level" validate:"required"`
	Topic          string   `json:"topic" validate:"required"`
	Duration       string   `json:"duration" validate:"required"`
	Standards      []string `json:"standards" validate:"omitempty,dive,required"`
	LearningStyles []string `json:"learning_styles" validate:"omitempty,dive,required"`
}

// ResourceRequest sizes a trend rollout.
type ResourceRequest struct {
	Trend    domain.Trend `json:"-"`
	Teachers int          `json:"teachers" validate:"gte=1"`
	Students int          `json:"students" validate:"gte=1"`
}

// Insights renders the general-purpose insights prompt.
func Insights(req InsightsRequest) (string, error) {
	return render("insights", req)
}

// LessonPlan renders the lesson plan prompt.
func LessonPlan(req LessonPlanRequest) (string, error) {
	return render("lesson_plan", req)
}

// ClassroomQuery renders a live-classroom assistant question.
func ClassroomQuery(query string) (string, error) {
	if query == "" {
		return "", fmt.Errorf("%w: query cannot be empty", ErrInvalidInput)
	}
	return execute("classroom_query", query)
}

// VoiceAssistant renders a voice assistant question.
func VoiceAssistant(query string) (string, error) {
	if query == "" {
		return "", fmt.Errorf("%w: query cannot be empty", ErrInvalidInput)
	}
	return execute("voice_assistant", query)
}

// IntegrationPlan renders the plan for folding a content update into lessons.
func IntegrationPlan(update domain.ContentUpdate) (string, error) {
	if update.Title == "" {
		return "", fmt.Errorf("%w: content update has no title", ErrInvalidInput)
	}
	return execute("integration_plan", update)
}

// TrendImplementation renders the teacher-facing plan for adopting a trend.
func TrendImplementation(trend domain.Trend) (string, error) {
	if trend.Title == "" {
		return "", fmt.Errorf("%w: trend has no title", ErrInvalidInput)
	}
	return execute("trend_implementation", trend)
}

// StepwiseImplementation renders the school-wide 5-step rollout prompt.
func StepwiseImplementation(trend domain.Trend) (string, error) {
	if trend.Title == "" {
		return "", fmt.Errorf("%w: trend has no title", ErrInvalidInput)
	}
	return execute("stepwise_implementation", trend)
}

// ResourceCalculation renders the cost and training estimate prompt.
func ResourceCalculation(req ResourceRequest) (string, error) {
	if req.Trend.Title == "" {
		return "", fmt.Errorf("%w: trend has no title", ErrInvalidInput)
	}
	return render("resource_calculation", req)
}

// TrendInsights renders the cross-trend analysis prompt.
func TrendInsights(trends []domain.Trend) (string, error) {
	if len(trends) == 0 {
		return "", fmt.Errorf("%w: no trends to analyze", ErrInvalidInput)
	}
	return execute("trend_insights", trends)
}

// render validates a request struct before executing its template.
func render(name string, req any) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return execute(name, req)
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute %s prompt template: %w", name, err)
	}
	return buf.String(), nil
}
