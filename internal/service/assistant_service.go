package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/classroom-assist/internal/domain"
	"github.com/phrazzld/classroom-assist/internal/generation"
	"github.com/phrazzld/classroom-assist/internal/prompt"
)

// Generator is the subset of generation.Client the service depends on.
type Generator interface {
	GenerateResult(ctx context.Context, prompt string, maxAttempts int) generation.Result
}

// AssistantService provides the dashboard's AI and workflow operations.
type AssistantService interface {
	// Generate runs a raw prompt. attempts below 1 use the service default.
	Generate(ctx context.Context, text string, attempts int) generation.Result

	// Insights generates recommendations from free-form context and data.
	Insights(ctx context.Context, req prompt.InsightsRequest) (string, error)

	// LessonPlan generates a structured lesson plan.
	LessonPlan(ctx context.Context, req prompt.LessonPlanRequest) (string, error)

	// AskAssistant answers a short live-classroom question.
	AskAssistant(ctx context.Context, query string) (string, error)

	// AskVoice answers a voice assistant question and records both turns in
	// the session's voice history.
	AskVoice(ctx context.Context, query string) (string, error)

	// IntegrationPlan generates a plan for integrating a content update.
	IntegrationPlan(ctx context.Context, updateID int) (string, error)

	// ImplementationPlan generates a teacher-facing plan for adopting a trend.
	ImplementationPlan(ctx context.Context, trendID int) (string, error)

	// StepwisePlan generates a school-wide 5-step rollout for a trend.
	StepwisePlan(ctx context.Context, trendID int) (string, error)

	// ResourceNeeds estimates what it takes to roll a trend out at a given scale.
	ResourceNeeds(ctx context.Context, trendID, teachers, students int) (string, error)

	// TrendInsights analyzes every trend in the catalog.
	TrendInsights(ctx context.Context) (string, error)

	// ListTrends returns the trends in category, or all when category is empty.
	ListTrends(category string) []domain.Trend

	// ListUpdates returns the content updates matching filter.
	ListUpdates(filter domain.UpdateFilter) []domain.ContentUpdate

	// AdoptTrend marks a trend adopted and records it in the session.
	AdoptTrend(ctx context.Context, trendID int) (domain.Trend, error)

	// IntegrateUpdate marks a content update integrated and records it in the session.
	IntegrateUpdate(ctx context.Context, updateID int) (domain.ContentUpdate, error)

	// VisitPage records navigation to page.
	VisitPage(page string)

	// Session returns a snapshot of the session state.
	Session() domain.SessionSnapshot
}

// Option customizes the assistant service.
type Option func(*assistantServiceImpl)

// WithMaxAttempts sets the attempt budget used for every generation request.
func WithMaxAttempts(n int) Option {
	return func(s *assistantServiceImpl) {
		if n >= 1 {
			s.maxAttempts = n
		}
	}
}

// WithClock replaces time.Now for session timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *assistantServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// assistantServiceImpl implements the AssistantService interface
type assistantServiceImpl struct {
	generator   Generator
	catalog     *domain.Catalog
	session     *domain.Session
	logger      *slog.Logger
	maxAttempts int
	now         func() time.Time
}

// NewAssistantService creates a new AssistantService.
// It returns an error if any of the required dependencies are nil.
func NewAssistantService(
	generator Generator,
	catalog *domain.Catalog,
	session *domain.Session,
	logger *slog.Logger,
	opts ...Option,
) (AssistantService, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if catalog == nil {
		return nil, errors.New("catalog cannot be nil")
	}
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	s := &assistantServiceImpl{
		generator:   generator,
		catalog:     catalog,
		session:     session,
		logger:      logger.With(slog.String("component", "assistant_service")),
		maxAttempts: generation.DefaultMaxAttempts,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// generate stamps the session and runs text through the client.
func (s *assistantServiceImpl) generate(ctx context.Context, op, text string, attempts int) generation.Result {
	if attempts < 1 {
		attempts = s.maxAttempts
	}
	s.session.RecordAIInteraction(s.now())

	result := s.generator.GenerateResult(ctx, text, attempts)
	s.logger.DebugContext(ctx, "generation finished",
		slog.String("operation", op),
		slog.String("outcome", result.Outcome.String()),
		slog.Int("attempts", result.Attempts))
	return result
}

func (s *assistantServiceImpl) Generate(ctx context.Context, text string, attempts int) generation.Result {
	return s.generate(ctx, "generate", text, attempts)
}

// run builds a prompt and generates from it, or reports the build error.
func (s *assistantServiceImpl) run(ctx context.Context, op string, build func() (string, error)) (string, error) {
	text, err := build()
	if err != nil {
		s.logger.WarnContext(ctx, "prompt rejected",
			slog.String("operation", op),
			slog.String("error", err.Error()))
		return "", wrapAssistantError(op, err)
	}
	return s.generate(ctx, op, text, 0).Text, nil
}

func (s *assistantServiceImpl) Insights(ctx context.Context, req prompt.InsightsRequest) (string, error) {
	return s.run(ctx, "insights", func() (string, error) { return prompt.Insights(req) })
}

func (s *assistantServiceImpl) LessonPlan(ctx context.Context, req prompt.LessonPlanRequest) (string, error) {
	return s.run(ctx, "lesson_plan", func() (string, error) { return prompt.LessonPlan(req) })
}

func (s *assistantServiceImpl) AskAssistant(ctx context.Context, query string) (string, error) {
	return s.run(ctx, "ask_assistant", func() (string, error) { return prompt.ClassroomQuery(query) })
}

func (s *assistantServiceImpl) AskVoice(ctx context.Context, query string) (string, error) {
	reply, err := s.run(ctx, "ask_voice", func() (string, error) { return prompt.VoiceAssistant(query) })
	if err != nil {
		return "", err
	}
	s.session.AppendChat(domain.RoleUser, query)
	s.session.AppendChat(domain.RoleAssistant, reply)
	return reply, nil
}

func (s *assistantServiceImpl) IntegrationPlan(ctx context.Context, updateID int) (string, error) {
	update, err := s.catalog.Update(updateID)
	if err != nil {
		return "", wrapAssistantError("integration_plan", err)
	}
	return s.run(ctx, "integration_plan", func() (string, error) { return prompt.IntegrationPlan(update) })
}

func (s *assistantServiceImpl) ImplementationPlan(ctx context.Context, trendID int) (string, error) {
	trend, err := s.catalog.Trend(trendID)
	if err != nil {
		return "", wrapAssistantError("implementation_plan", err)
	}
	return s.run(ctx, "implementation_plan", func() (string, error) { return prompt.TrendImplementation(trend) })
}

func (s *assistantServiceImpl) StepwisePlan(ctx context.Context, trendID int) (string, error) {
	trend, err := s.catalog.Trend(trendID)
	if err != nil {
		return "", wrapAssistantError("stepwise_plan", err)
	}
	return s.run(ctx, "stepwise_plan", func() (string, error) { return prompt.StepwiseImplementation(trend) })
}

func (s *assistantServiceImpl) ResourceNeeds(ctx context.Context, trendID, teachers, students int) (string, error) {
	trend, err := s.catalog.Trend(trendID)
	if err != nil {
		return "", wrapAssistantError("resource_needs", err)
	}
	return s.run(ctx, "resource_needs", func() (string, error) {
		return prompt.ResourceCalculation(prompt.ResourceRequest{
			Trend:    trend,
			Teachers: teachers,
			Students: students,
		})
	})
}

func (s *assistantServiceImpl) TrendInsights(ctx context.Context) (string, error) {
	trends := s.catalog.Trends("")
	return s.run(ctx, "trend_insights", func() (string, error) { return prompt.TrendInsights(trends) })
}

func (s *assistantServiceImpl) ListTrends(category string) []domain.Trend {
	return s.catalog.Trends(category)
}

func (s *assistantServiceImpl) ListUpdates(filter domain.UpdateFilter) []domain.ContentUpdate {
	return s.catalog.Updates(filter)
}

func (s *assistantServiceImpl) AdoptTrend(ctx context.Context, trendID int) (domain.Trend, error) {
	trend, err := s.catalog.MarkTrendAdopted(trendID)
	if err != nil {
		return trend, wrapAssistantError("adopt_trend", err)
	}
	s.session.RecordAdoption(trendID)
	s.logger.InfoContext(ctx, "trend adopted",
		slog.Int("trend_id", trendID),
		slog.String("title", trend.Title))
	return trend, nil
}

func (s *assistantServiceImpl) IntegrateUpdate(ctx context.Context, updateID int) (domain.ContentUpdate, error) {
	update, err := s.catalog.MarkUpdateIntegrated(updateID)
	if err != nil {
		return update, wrapAssistantError("integrate_update", err)
	}
	s.session.RecordIntegration(updateID)
	s.logger.InfoContext(ctx, "content update integrated",
		slog.Int("update_id", updateID),
		slog.String("title", update.Title))
	return update, nil
}

func (s *assistantServiceImpl) VisitPage(page string) {
	s.session.VisitPage(page)
}

func (s *assistantServiceImpl) Session() domain.SessionSnapshot {
	return s.session.Snapshot()
}
