package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/classroom-assist/internal/config"
	"github.com/phrazzld/classroom-assist/internal/domain"
	"github.com/phrazzld/classroom-assist/internal/generation"
	"github.com/phrazzld/classroom-assist/internal/platform/gemini"
	"github.com/phrazzld/classroom-assist/internal/platform/logger"
	"github.com/phrazzld/classroom-assist/internal/prompt"
	"github.com/phrazzld/classroom-assist/internal/service"
	"github.com/spf13/cobra"
)

// assistantFactory builds the service the commands run against.
type assistantFactory func(ctx context.Context, cfg *config.Config, log *slog.Logger) (service.AssistantService, error)

// newAssistant wires the Gemini submitter and sample catalog. Without an API
// key the commands still run and print the unavailable message.
func newAssistant(ctx context.Context, cfg *config.Config, log *slog.Logger) (service.AssistantService, error) {
	var submitter generation.Submitter
	if s, err := gemini.NewSubmitter(ctx, log, cfg.LLM); err != nil {
		log.Warn("Text generation unavailable", "error", err)
	} else {
		submitter = s
	}

	client := generation.NewClient(log, submitter, generation.WithBackoff(cfg.LLM.RetryBackoff))
	return service.NewAssistantService(
		client,
		domain.NewCatalog(domain.SampleTrends(), domain.SampleUpdates()),
		domain.NewSession(cfg.Session.Username, cfg.Session.Role),
		log,
		service.WithMaxAttempts(cfg.LLM.MaxAttempts),
	)
}

func newRootCmd(factory assistantFactory) *cobra.Command {
	var (
		attempts  int
		logLevel  string
		assistant service.AssistantService
	)

	rootCmd := &cobra.Command{
		Use:          "assist",
		Short:        "Classroom assistant text generation",
		Long:         "Generate lesson plans, insights and answers from the command line with bounded retries.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if attempts > 0 {
				cfg.LLM.MaxAttempts = attempts
			}

			log := logger.New(cmd.ErrOrStderr(), logLevel)
			assistant, err = factory(cmd.Context(), cfg, log)
			if err != nil {
				return fmt.Errorf("failed to create assistant: %w", err)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().IntVarP(&attempts, "attempts", "a", 0, "Maximum attempts per request (default from configuration)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level written to stderr (debug, info, warn, error)")

	current := func() service.AssistantService { return assistant }
	rootCmd.AddCommand(
		newGenerateCmd(current),
		newInsightsCmd(current),
		newLessonPlanCmd(current),
		newTrendInsightsCmd(current),
	)
	return rootCmd
}

func newGenerateCmd(assistant func() service.AssistantService) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Generate text for a raw prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := assistant().Generate(cmd.Context(), strings.Join(args, " "), 0)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			return err
		},
	}
}

func newInsightsCmd(assistant func() service.AssistantService) *cobra.Command {
	var req prompt.InsightsRequest
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Generate educational insights from context and data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := assistant().Insights(cmd.Context(), req)
			return printText(cmd, text, err)
		},
	}
	cmd.Flags().StringVar(&req.Context, "context", "", "Classroom context")
	cmd.Flags().StringVar(&req.Data, "data", "", "Data to analyze")
	_ = cmd.MarkFlagRequired("context")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func newLessonPlanCmd(assistant func() service.AssistantService) *cobra.Command {
	var req prompt.LessonPlanRequest
	cmd := &cobra.Command{
		Use:   "lesson-plan",
		Short: "Generate a structured lesson plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := assistant().LessonPlan(cmd.Context(), req)
			return printText(cmd, text, err)
		},
	}
	cmd.Flags().StringVar(&req.Subject, "subject", "", "Subject, e.g. Science")
	cmd.Flags().StringVar(&req.GradeLevel, "grade", "", "Grade level, e.g. \"Grade 7\"")
	cmd.Flags().StringVar(&req.Topic, "topic", "", "Lesson topic")
	cmd.Flags().StringVar(&req.Duration, "duration", "45-minute", "Lesson duration")
	cmd.Flags().StringSliceVar(&req.Standards, "standard", nil, "Standard to align with (repeatable)")
	cmd.Flags().StringSliceVar(&req.LearningStyles, "style", nil, "Learning style to accommodate (repeatable)")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("grade")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

func newTrendInsightsCmd(assistant func() service.AssistantService) *cobra.Command {
	return &cobra.Command{
		Use:   "trend-insights",
		Short: "Analyze the sample educational trends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := assistant().TrendInsights(cmd.Context())
			return printText(cmd, text, err)
		},
	}
}

func printText(cmd *cobra.Command, text string, err error) error {
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
