package api

import (
	"log/slog"
	"net/http"

	"github.com/wortwahl/wortwahl-api/internal/api/shared"
	"github.com/wortwahl/wortwahl-api/internal/platform/logger"
	"github.com/wortwahl/wortwahl-api/internal/service/drill"
)

// StatsHandler handles progress statistics HTTP requests
type StatsHandler struct {
	drillService drill.Service
	logger       *slog.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(drillService drill.Service, logger *slog.Logger) *StatsHandler {
	if drillService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("drillService cannot be nil for StatsHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StatsHandler")
	}

	return &StatsHandler{
		drillService: drillService,
		logger:       logger.With(slog.String("component", "stats_handler")),
	}
}

// GetStats handles GET /stats requests.
// It reports the accumulated progress across all modes.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	report, err := h.drillService.Stats(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to load statistics", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, report)
}

// ResetStats handles DELETE /stats requests.
// It discards all recorded progress and question history.
func (h *StatsHandler) ResetStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := h.drillService.Reset(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to reset statistics", err)
		return
	}

	log.Info("statistics reset by request")
	w.WriteHeader(http.StatusNoContent)
}
