package api

import (
	"log/slog"
	"net/http"

	"github.com/wortwahl/wortwahl-api/internal/api/shared"
	"github.com/wortwahl/wortwahl-api/internal/domain"
	"github.com/wortwahl/wortwahl-api/internal/platform/logger"
	"github.com/wortwahl/wortwahl-api/internal/service/drill"
)

// DrillHandler handles drill-related HTTP requests
type DrillHandler struct {
	drillService       drill.Service
	defaultSessionSize int
	logger             *slog.Logger
}

// NewDrillHandler creates a new DrillHandler
func NewDrillHandler(
	drillService drill.Service,
	defaultSessionSize int,
	logger *slog.Logger,
) *DrillHandler {
	if drillService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("drillService cannot be nil for DrillHandler")
	}
	if defaultSessionSize <= 0 {
		defaultSessionSize = 10
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DrillHandler")
	}

	return &DrillHandler{
		drillService:       drillService,
		defaultSessionSize: defaultSessionSize,
		logger:             logger.With(slog.String("component", "drill_handler")),
	}
}

// StartDrill handles POST /drills requests.
// It assembles an adaptive question set for the requested mode.
func (h *DrillHandler) StartDrill(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req DrillRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed drill request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	count := req.Count
	if count == 0 {
		count = h.defaultSessionSize
	}

	questions, err := h.drillService.StartDrill(r.Context(), domain.Mode(req.Mode), count)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := DrillResponse{
		Mode:      req.Mode,
		Questions: make([]Question, len(questions)),
	}
	for i, q := range questions {
		response.Questions[i] = questionToResponse(q)
	}

	log.Debug("drill served",
		slog.String("mode", req.Mode),
		slog.Int("questions", len(response.Questions)))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// questionToResponse transforms a drill question into its response shape.
func questionToResponse(q drill.Question) Question {
	return Question{
		ID:             q.ID,
		Mode:           string(q.Exercise.Mode),
		Word:           q.Exercise.Word,
		Translation:    q.Exercise.Translation,
		SentenceBefore: q.Exercise.SentenceBefore,
		SentenceAfter:  q.Exercise.SentenceAfter,
		Answer:         q.Exercise.Answer,
		Options:        q.Exercise.Options,
	}
}

// SubmitAnswer handles POST /answers requests.
// It records one answered question against the learner's history.
func (h *DrillHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed answer request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	err := h.drillService.SubmitAnswer(r.Context(), drill.AnswerSubmission{
		QuestionID: req.QuestionID,
		Mode:       domain.Mode(req.Mode),
		Correct:    *req.Correct,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CompleteSession handles POST /sessions requests.
// It records a finished practice session in the session history.
func (h *DrillHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed session request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	err := h.drillService.CompleteSession(r.Context(), drill.SessionSummary{
		Mode:    domain.Mode(req.Mode),
		Total:   req.Total,
		Correct: req.Correct,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
