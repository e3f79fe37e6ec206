package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wortwahl/wortwahl-api/internal/api"
	apimiddleware "github.com/wortwahl/wortwahl-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	drillHandler := api.NewDrillHandler(app.drillService, app.config.Drill.SessionSize, app.logger)
	statsHandler := api.NewStatsHandler(app.drillService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/drills", drillHandler.StartDrill)
		r.Post("/answers", drillHandler.SubmitAnswer)
		r.Post("/sessions", drillHandler.CompleteSession)

		r.Get("/stats", statsHandler.GetStats)
		r.Delete("/stats", statsHandler.ResetStats)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
