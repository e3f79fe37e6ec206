package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/wortwahl/wortwahl-api/internal/domain"
)

// ProgressStore persists the aggregate progress blob: per-mode running
// totals plus the bounded session history. Like QuestionStatsStore it
// degrades a missing or corrupt blob to a fresh zeroed Progress, and
// serializes its read-modify-write updates with mu.
type ProgressStore struct {
	kv     KV
	logger *slog.Logger
	mu     sync.Mutex
}

// NewProgressStore creates a progress store on top of the given
// key-value layer. If logger is nil, a default logger will be used.
func NewProgressStore(kv KV, logger *slog.Logger) *ProgressStore {
	if kv == nil {
		panic("kv cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressStore{
		kv:     kv,
		logger: logger.With(slog.String("component", "progress_store")),
	}
}

// Get returns the aggregate progress. A missing blob and a blob that
// fails to decode both return a fresh zeroed Progress; only an
// underlying storage failure is an error.
func (s *ProgressStore) Get(ctx context.Context) (*domain.Progress, error) {
	raw, err := s.kv.Get(ctx, KeyProgress)
	if errors.Is(err, ErrKeyNotFound) {
		return domain.NewProgress(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading progress: %w", err)
	}

	var progress domain.Progress
	if err := json.Unmarshal(raw, &progress); err != nil {
		s.logger.WarnContext(ctx, "progress blob is corrupt, starting fresh",
			slog.String("error", err.Error()))
		return domain.NewProgress(), nil
	}
	if progress.Modes == nil {
		progress.Modes = domain.NewProgress().Modes
	}
	if progress.Sessions == nil {
		progress.Sessions = []domain.SessionRecord{}
	}
	return &progress, nil
}

// RecordAnswer bumps the running total for mode.
func (s *ProgressStore) RecordAnswer(ctx context.Context, mode domain.Mode, correct bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress, err := s.Get(ctx)
	if err != nil {
		return err
	}
	progress.RecordAnswer(mode, correct)
	return s.save(ctx, progress)
}

// RecordSession prepends the session to the history, evicting the
// oldest entry past the history cap.
func (s *ProgressStore) RecordSession(ctx context.Context, session domain.SessionRecord) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("invalid session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	progress, err := s.Get(ctx)
	if err != nil {
		return err
	}
	progress.AddSession(session)
	return s.save(ctx, progress)
}

// Reset discards all aggregate progress.
func (s *ProgressStore) Reset(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyProgress); err != nil {
		return fmt.Errorf("resetting progress: %w", err)
	}
	return nil
}

func (s *ProgressStore) save(ctx context.Context, progress *domain.Progress) error {
	raw, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("encoding progress: %w", err)
	}
	if err := s.kv.Set(ctx, KeyProgress, raw); err != nil {
		return fmt.Errorf("writing progress: %w", err)
	}
	return nil
}
