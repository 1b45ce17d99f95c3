package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/classroom-assist/internal/service"
)

// RegisterRoutes mounts every /api endpoint on r.
func RegisterRoutes(r chi.Router, assistant service.AssistantService) {
	assistantHandler := NewAssistantHandler(assistant)
	catalogHandler := NewCatalogHandler(assistant)
	sessionHandler := NewSessionHandler(assistant)

	r.Route("/api", func(r chi.Router) {
		// Generation endpoints
		r.Post("/generate", assistantHandler.Generate)
		r.Post("/insights", assistantHandler.Insights)
		r.Post("/lesson-plans", assistantHandler.LessonPlan)
		r.Post("/assistant/ask", assistantHandler.AskAssistant)
		r.Post("/assistant/voice", assistantHandler.AskVoice)

		// Trend endpoints
		r.Get("/trends", catalogHandler.ListTrends)
		r.Get("/trends/insights", assistantHandler.TrendInsights)
		r.Post("/trends/{id}/adopt", withPathID(catalogHandler.AdoptTrend))
		r.Post("/trends/{id}/implementation-plan", withPathID(assistantHandler.ImplementationPlan))
		r.Post("/trends/{id}/stepwise-plan", withPathID(assistantHandler.StepwisePlan))
		r.Post("/trends/{id}/resources", withPathID(assistantHandler.ResourceNeeds))

		// Content update endpoints
		r.Get("/updates", catalogHandler.ListUpdates)
		r.Post("/updates/{id}/integrate", withPathID(catalogHandler.IntegrateUpdate))
		r.Post("/updates/{id}/integration-plan", withPathID(assistantHandler.IntegrationPlan))

		// Session endpoints
		r.Get("/session", sessionHandler.GetSession)
		r.Post("/session/visit", sessionHandler.VisitPage)
	})
}
