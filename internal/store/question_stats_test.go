package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wortwahl/wortwahl-api/internal/domain"
)

func newTestQuestionStatsStore(kv KV) *QuestionStatsStore {
	s := NewQuestionStatsStore(kv, nil)
	s.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	}
	return s
}

func TestQuestionStatsStore_GetAll_Empty(t *testing.T) {
	t.Parallel()

	s := newTestQuestionStatsStore(newMemoryKV())

	stats, err := s.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, stats)
	assert.Empty(t, stats)
}

func TestQuestionStatsStore_GetAll_CorruptBlobStartsFresh(t *testing.T) {
	t.Parallel()

	kv := newMemoryKV()
	require.NoError(t, kv.Set(context.Background(), KeyQuestionStats, []byte("{not json")))
	s := newTestQuestionStatsStore(kv)

	stats, err := s.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestQuestionStatsStore_GetAll_BackendError(t *testing.T) {
	t.Parallel()

	kv := newMemoryKV()
	kv.failWith = errBackend
	s := newTestQuestionStatsStore(kv)

	_, err := s.GetAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errBackend)
}

func TestQuestionStatsStore_RecordAnswer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestQuestionStatsStore(newMemoryKV())
	id := domain.QuestionID(domain.ModeGender, 3)

	require.NoError(t, s.RecordAnswer(ctx, id, true))
	require.NoError(t, s.RecordAnswer(ctx, id, false))
	require.NoError(t, s.RecordAnswer(ctx, id, true))

	stats, err := s.GetAll(ctx)
	require.NoError(t, err)

	record, ok := stats[id]
	require.True(t, ok)
	assert.Equal(t, 3, record.Attempts)
	assert.Equal(t, 2, record.Correct)
	assert.Equal(t, "2024-03-15T10:00:00Z", record.LastSeen)
}

func TestQuestionStatsStore_RecordAnswer_SeparateQuestions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestQuestionStatsStore(newMemoryKV())

	require.NoError(t, s.RecordAnswer(ctx, domain.QuestionID(domain.ModeGender, 0), true))
	require.NoError(t, s.RecordAnswer(ctx, domain.QuestionID(domain.ModePlurals, 0), false))

	stats, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, stats, 2)
	assert.Equal(t, 1, stats["gender:0"].Correct)
	assert.Equal(t, 0, stats["plurals:0"].Correct)
}

func TestQuestionStatsStore_RecordAnswer_ConcurrentSubmissions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestQuestionStatsStore(newMemoryKV())
	id := domain.QuestionID(domain.ModeGender, 0)

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, s.RecordAnswer(ctx, id, true))
		}()
	}
	wg.Wait()

	stats, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, workers, stats[id].Attempts, "no increments may be lost")
	assert.Equal(t, workers, stats[id].Correct)
}

func TestQuestionStatsStore_Reset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestQuestionStatsStore(newMemoryKV())

	require.NoError(t, s.RecordAnswer(ctx, "gender:0", true))
	require.NoError(t, s.Reset(ctx))

	stats, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, stats)

	// Resetting an already empty store is fine.
	require.NoError(t, s.Reset(ctx))
}

func TestNewQuestionStatsStore_NilKVPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewQuestionStatsStore(nil, nil)
	})
}
