package drill

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/wortwahl/wortwahl-api/internal/distractor"
	"github.com/wortwahl/wortwahl-api/internal/domain"
	"github.com/wortwahl/wortwahl-api/internal/platform/logger"
)

// Verify interface compliance at compile time
var _ Service = (*drillServiceImpl)(nil)

// drillServiceImpl implements the Service interface.
type drillServiceImpl struct {
	content       ContentProvider
	selector      ExerciseSelector
	questionStats QuestionStatsRepository
	progress      ProgressRepository
	logger        *slog.Logger
	now           func() time.Time
}

// NewService creates a new drill Service implementation.
func NewService(
	content ContentProvider,
	selector ExerciseSelector,
	questionStats QuestionStatsRepository,
	progress ProgressRepository,
	logger *slog.Logger,
) Service {
	// Validate inputs
	if content == nil {
		panic("content cannot be nil")
	}
	if selector == nil {
		panic("selector cannot be nil")
	}
	if questionStats == nil {
		panic("questionStats cannot be nil")
	}
	if progress == nil {
		panic("progress cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &drillServiceImpl{
		content:       content,
		selector:      selector,
		questionStats: questionStats,
		progress:      progress,
		logger:        logger.With(slog.String("component", "drill_service")),
		now:           time.Now,
	}
}

// StartDrill implements Service.StartDrill.
func (s *drillServiceImpl) StartDrill(
	ctx context.Context,
	mode domain.Mode,
	count int,
) ([]Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	pool, ok := s.content.Pool(mode)
	if !ok {
		log.Debug("drill requested for unknown mode", slog.String("mode", string(mode)))
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	selected, err := s.selector.Select(ctx, mode, pool, count)
	if err != nil {
		log.Error("exercise selection failed",
			slog.String("mode", string(mode)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("selecting exercises: %w", err)
	}

	questions := make([]Question, len(selected.Exercises))
	for i, ex := range selected.Exercises {
		ex.Options = s.buildOptions(ex)
		questions[i] = Question{
			ID:       selected.QuestionIDs[i],
			Exercise: ex,
		}
	}

	log.Debug("drill assembled",
		slog.String("mode", string(mode)),
		slog.Int("requested", count),
		slog.Int("served", len(questions)))
	return questions, nil
}

// buildOptions dispatches to the distractor generator for the exercise's
// mode and returns the shuffled choice set.
func (s *drillServiceImpl) buildOptions(ex domain.Exercise) []string {
	switch ex.Mode {
	case domain.ModeGender:
		return distractor.GenderArticleOptions(ex.Answer)
	case domain.ModePlurals:
		return distractor.PluralOptions(ex.Word, ex.Answer)
	case domain.ModeAdjectives:
		return distractor.AdjectiveEndingOptions(ex.Answer)
	case domain.ModeCases:
		return distractor.CaseOptions(ex.Answer)
	case domain.ModePossessives:
		return distractor.PossessiveOptions(ex.Person, ex.Answer)
	case domain.ModeArticles:
		return distractor.ArticleOptions(ex.ArticleType, ex.Answer)
	case domain.ModePronouns:
		return distractor.PronounOptions(ex.Person, ex.Case, ex.Answer)
	case domain.ModePraeteritum:
		return distractor.PraeteritumOptions(ex.VerbForms, s.content.PraeteritumForms(), ex.Answer)
	case domain.ModePerfekt:
		return distractor.PartizipOptions(ex.Verb, ex.VerbForms, s.content.PartizipForms(), ex.Answer)
	case domain.ModePrepositions:
		return distractor.PrepositionOptions(ex.Answer)
	case domain.ModeModals:
		return distractor.ModalOptions(ex.Verb, ex.ModalPerson, ex.Answer)
	default:
		// Unknown modes are rejected in StartDrill before we get here.
		return []string{ex.Answer}
	}
}

// SubmitAnswer implements Service.SubmitAnswer.
func (s *drillServiceImpl) SubmitAnswer(ctx context.Context, submission AnswerSubmission) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := validateSubmission(submission); err != nil {
		log.Warn("rejecting answer submission",
			slog.String("question_id", submission.QuestionID),
			slog.String("error", err.Error()))
		return err
	}

	// Recording is best-effort: a failed write loses one increment, which
	// the adaptive scoring absorbs. The client is never failed for it.
	if err := s.questionStats.RecordAnswer(ctx, submission.QuestionID, submission.Correct); err != nil {
		log.Error("failed to record question answer",
			slog.String("question_id", submission.QuestionID),
			slog.String("error", err.Error()))
	}
	if err := s.progress.RecordAnswer(ctx, submission.Mode, submission.Correct); err != nil {
		log.Error("failed to record mode answer",
			slog.String("mode", string(submission.Mode)),
			slog.String("error", err.Error()))
	}

	return nil
}

// validateSubmission checks the submission's mode and question ID shape,
// and that the two agree.
func validateSubmission(submission AnswerSubmission) error {
	if !submission.Mode.IsValid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidSubmission, submission.Mode)
	}

	mode, index, ok := strings.Cut(submission.QuestionID, ":")
	if !ok {
		return fmt.Errorf("%w: malformed question ID %q", ErrInvalidSubmission, submission.QuestionID)
	}
	if mode != string(submission.Mode) {
		return fmt.Errorf("%w: question %q does not belong to mode %q",
			ErrInvalidSubmission, submission.QuestionID, submission.Mode)
	}
	if n, err := strconv.Atoi(index); err != nil || n < 0 {
		return fmt.Errorf("%w: malformed question ID %q", ErrInvalidSubmission, submission.QuestionID)
	}
	return nil
}

// CompleteSession implements Service.CompleteSession.
func (s *drillServiceImpl) CompleteSession(ctx context.Context, summary SessionSummary) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !summary.Mode.IsValid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidSession, summary.Mode)
	}

	session := domain.SessionRecord{
		Mode:    summary.Mode,
		Date:    s.now().UTC().Format(time.RFC3339),
		Total:   summary.Total,
		Correct: summary.Correct,
	}
	if err := session.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	// Best-effort, like answer recording.
	if err := s.progress.RecordSession(ctx, session); err != nil {
		log.Error("failed to record session",
			slog.String("mode", string(summary.Mode)),
			slog.String("error", err.Error()))
		return nil
	}

	log.Debug("session recorded",
		slog.String("mode", string(summary.Mode)),
		slog.Int("total", summary.Total),
		slog.Int("correct", summary.Correct))
	return nil
}

// Stats implements Service.Stats.
func (s *drillServiceImpl) Stats(ctx context.Context) (*StatsReport, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	progress, err := s.progress.Get(ctx)
	if err != nil {
		log.Error("failed to load progress", slog.String("error", err.Error()))
		return nil, fmt.Errorf("loading progress: %w", err)
	}
	questions, err := s.questionStats.GetAll(ctx)
	if err != nil {
		log.Error("failed to load question stats", slog.String("error", err.Error()))
		return nil, fmt.Errorf("loading question stats: %w", err)
	}

	modes := make(map[domain.Mode]ModeReport, len(progress.Modes))
	for mode, stats := range progress.Modes {
		modes[mode] = ModeReport{
			TotalAttempted: stats.TotalAttempted,
			TotalCorrect:   stats.TotalCorrect,
			Accuracy:       stats.Accuracy(),
		}
	}

	return &StatsReport{
		Modes:     modes,
		Sessions:  progress.Sessions,
		Questions: questions,
	}, nil
}

// Reset implements Service.Reset.
func (s *drillServiceImpl) Reset(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.questionStats.Reset(ctx); err != nil {
		return fmt.Errorf("resetting question stats: %w", err)
	}
	if err := s.progress.Reset(ctx); err != nil {
		return fmt.Errorf("resetting progress: %w", err)
	}

	log.Info("all progress reset")
	return nil
}
