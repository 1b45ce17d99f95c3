package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/classroom-assist/internal/api"
	apiMiddleware "github.com/phrazzld/classroom-assist/internal/api/middleware"
	"github.com/phrazzld/classroom-assist/internal/api/shared"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// healthResponse reports liveness and whether text generation is configured.
type healthResponse struct {
	Status              string `json:"status"`
	GenerationAvailable bool   `json:"generation_available"`
}

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	api.RegisterRoutes(r, app.assistant)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, healthResponse{
			Status:              "ok",
			GenerationAvailable: app.client.Available(),
		})
	})

	if app.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))
	}

	return r
}
