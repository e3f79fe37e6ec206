// Package drill provides the application service for running practice
// drills: assembling adaptive question sets, recording answers, and
// reporting accumulated progress.
package drill

import (
	"context"
	"errors"

	"github.com/wortwahl/wortwahl-api/internal/domain"
	"github.com/wortwahl/wortwahl-api/internal/selection"
)

// Common error types for the drill service. The API layer maps these to
// HTTP status codes.
var (
	// ErrUnknownMode indicates the requested drill mode does not exist.
	ErrUnknownMode = errors.New("unknown drill mode")

	// ErrInvalidSubmission indicates an answer submission that fails
	// validation, for example a question ID that does not belong to
	// the submitted mode.
	ErrInvalidSubmission = errors.New("invalid answer submission")

	// ErrInvalidSession indicates a session result that fails
	// validation, for example more correct answers than questions.
	ErrInvalidSession = errors.New("invalid session result")
)

// Question is one exercise prepared for the learner: the underlying
// exercise with its shuffled choice set, plus the stable identifier the
// client echoes back when submitting the answer.
type Question struct {
	ID       string          `json:"id"`
	Exercise domain.Exercise `json:"exercise"`
}

// AnswerSubmission is the client's report of a single answered question.
type AnswerSubmission struct {
	QuestionID string      `json:"question_id"`
	Mode       domain.Mode `json:"mode"`
	Correct    bool        `json:"correct"`
}

// SessionSummary is the client's report of a finished practice session.
type SessionSummary struct {
	Mode    domain.Mode `json:"mode"`
	Total   int         `json:"total"`
	Correct int         `json:"correct"`
}

// ModeReport is the per-mode slice of a stats report.
type ModeReport struct {
	TotalAttempted int `json:"totalAttempted"`
	TotalCorrect   int `json:"totalCorrect"`
	Accuracy       int `json:"accuracy"`
}

// StatsReport aggregates everything the stats screens need: per-mode
// totals with derived accuracy, the recent session history, and the raw
// per-question records.
type StatsReport struct {
	Modes     map[domain.Mode]ModeReport `json:"modes"`
	Sessions  []domain.SessionRecord     `json:"sessions"`
	Questions domain.QuestionStatsMap    `json:"questions"`
}

// Service runs practice drills.
type Service interface {
	// StartDrill assembles a question set for the mode: up to count
	// exercises picked by the adaptive selector, each with a shuffled
	// choice set. Returns ErrUnknownMode for a mode without a pool.
	StartDrill(ctx context.Context, mode domain.Mode, count int) ([]Question, error)

	// SubmitAnswer records one answered question against both the
	// per-question history and the per-mode totals. Recording is
	// best-effort: storage failures are logged, not returned.
	// Returns ErrInvalidSubmission if the submission fails validation.
	SubmitAnswer(ctx context.Context, submission AnswerSubmission) error

	// CompleteSession records a finished session in the bounded
	// session history. Recording is best-effort like SubmitAnswer.
	// Returns ErrInvalidSession if the summary fails validation.
	CompleteSession(ctx context.Context, summary SessionSummary) error

	// Stats reports the accumulated progress across all modes.
	Stats(ctx context.Context) (*StatsReport, error)

	// Reset discards all recorded progress and question history.
	Reset(ctx context.Context) error
}

// QuestionStatsRepository is the slice of the question stats store the
// drill service needs.
type QuestionStatsRepository interface {
	GetAll(ctx context.Context) (domain.QuestionStatsMap, error)
	RecordAnswer(ctx context.Context, questionID string, correct bool) error
	Reset(ctx context.Context) error
}

// ProgressRepository is the slice of the progress store the drill
// service needs.
type ProgressRepository interface {
	Get(ctx context.Context) (*domain.Progress, error)
	RecordAnswer(ctx context.Context, mode domain.Mode, correct bool) error
	RecordSession(ctx context.Context, session domain.SessionRecord) error
	Reset(ctx context.Context) error
}

// ExerciseSelector picks exercises from a pool, adaptively weighted by
// answer history.
type ExerciseSelector interface {
	Select(ctx context.Context, mode domain.Mode, pool []domain.Exercise, count int) (*selection.Selection, error)
}

// ContentProvider serves the exercise pool for each mode plus the
// cross-verb fallback pools the verb distractor generators use.
type ContentProvider interface {
	Pool(mode domain.Mode) ([]domain.Exercise, bool)
	PraeteritumForms() []string
	PartizipForms() []string
}
