package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/wortwahl/wortwahl-api/internal/domain"
)

// QuestionStatsStore persists the per-question attempt history as a
// single JSON blob. Reads degrade gracefully: a missing or corrupt blob
// yields an empty history rather than an error, so a damaged store can
// never lock the learner out of practicing.
//
// RecordAnswer is a read-modify-write on the whole blob; mu serializes
// concurrent submissions so increments are never lost.
type QuestionStatsStore struct {
	kv     KV
	logger *slog.Logger
	now    func() time.Time
	mu     sync.Mutex
}

// NewQuestionStatsStore creates a question stats store on top of the
// given key-value layer. If logger is nil, a default logger will be used.
func NewQuestionStatsStore(kv KV, logger *slog.Logger) *QuestionStatsStore {
	if kv == nil {
		panic("kv cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionStatsStore{
		kv:     kv,
		logger: logger.With(slog.String("component", "question_stats_store")),
		now:    time.Now,
	}
}

// GetAll returns the full question attempt history. A missing blob and a
// blob that fails to decode both return an empty map; only an underlying
// storage failure is an error.
func (s *QuestionStatsStore) GetAll(ctx context.Context) (domain.QuestionStatsMap, error) {
	raw, err := s.kv.Get(ctx, KeyQuestionStats)
	if errors.Is(err, ErrKeyNotFound) {
		return domain.QuestionStatsMap{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading question stats: %w", err)
	}

	var stats domain.QuestionStatsMap
	if err := json.Unmarshal(raw, &stats); err != nil {
		s.logger.WarnContext(ctx, "question stats blob is corrupt, starting fresh",
			slog.String("error", err.Error()))
		return domain.QuestionStatsMap{}, nil
	}
	if stats == nil {
		stats = domain.QuestionStatsMap{}
	}
	return stats, nil
}

// RecordAnswer increments the attempt history for questionID and stamps
// it as seen now.
func (s *QuestionStatsStore) RecordAnswer(ctx context.Context, questionID string, correct bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := s.GetAll(ctx)
	if err != nil {
		return err
	}

	record := stats[questionID]
	record.Attempts++
	if correct {
		record.Correct++
	}
	record.LastSeen = s.now().UTC().Format(time.RFC3339)
	stats[questionID] = record

	return s.save(ctx, stats)
}

// Reset discards the entire question history.
func (s *QuestionStatsStore) Reset(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyQuestionStats); err != nil {
		return fmt.Errorf("resetting question stats: %w", err)
	}
	return nil
}

func (s *QuestionStatsStore) save(ctx context.Context, stats domain.QuestionStatsMap) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encoding question stats: %w", err)
	}
	if err := s.kv.Set(ctx, KeyQuestionStats, raw); err != nil {
		return fmt.Errorf("writing question stats: %w", err)
	}
	return nil
}
