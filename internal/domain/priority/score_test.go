package priority

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wortwahl/wortwahl-api/internal/domain"
)

func TestScoreUnseen(t *testing.T) {
	t.Parallel()
	scorer := NewScorer()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1.0, scorer.Score(nil, now), "nil record must score exactly 1.0")

	zero := &domain.QuestionRecord{}
	assert.Equal(t, 1.0, scorer.Score(zero, now), "zero-attempt record must score exactly 1.0")
}

func TestScoreAccuracyTiers(t *testing.T) {
	t.Parallel()
	scorer := NewScorer()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-time.Hour).Format(time.RFC3339)

	testCases := []struct {
		name     string
		attempts int
		correct  int
		expected float64
	}{
		{
			name:     "accuracy at exactly 0.5 is struggling",
			attempts: 10,
			correct:  5,
			expected: 0.8,
		},
		{
			name:     "low accuracy is struggling",
			attempts: 5,
			correct:  1,
			expected: 0.8,
		},
		{
			name:     "accuracy between 0.5 and 0.8 is medium",
			attempts: 10,
			correct:  6,
			expected: 0.5,
		},
		{
			name:     "accuracy at exactly 0.8 is medium",
			attempts: 10,
			correct:  8,
			expected: 0.5,
		},
		{
			name:     "high accuracy is mastered",
			attempts: 10,
			correct:  9,
			expected: 0.2,
		},
		{
			name:     "perfect accuracy is mastered",
			attempts: 4,
			correct:  4,
			expected: 0.2,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			record := &domain.QuestionRecord{
				Attempts: tc.attempts,
				Correct:  tc.correct,
				LastSeen: recent,
			}
			assert.InDelta(t, tc.expected, scorer.Score(record, now), 1e-9)
		})
	}
}

func TestScoreMonotonicInAccuracy(t *testing.T) {
	t.Parallel()
	scorer := NewScorer()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-time.Hour).Format(time.RFC3339)

	low := scorer.Score(&domain.QuestionRecord{Attempts: 10, Correct: 4, LastSeen: recent}, now)
	mid := scorer.Score(&domain.QuestionRecord{Attempts: 10, Correct: 6, LastSeen: recent}, now)
	high := scorer.Score(&domain.QuestionRecord{Attempts: 10, Correct: 9, LastSeen: recent}, now)

	assert.GreaterOrEqual(t, low, mid)
	assert.GreaterOrEqual(t, mid, high)
}

func TestScoreRecencyBoost(t *testing.T) {
	t.Parallel()
	scorer := NewScorer()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		since time.Duration
		boost bool
	}{
		{name: "seen an hour ago gets no boost", since: time.Hour, boost: false},
		{name: "seen six days ago gets no boost", since: 6 * 24 * time.Hour, boost: false},
		{name: "seen exactly seven days ago gets the boost", since: 7 * 24 * time.Hour, boost: true},
		{name: "seen a month ago gets the boost", since: 30 * 24 * time.Hour, boost: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			record := &domain.QuestionRecord{
				Attempts: 10,
				Correct:  9,
				LastSeen: now.Add(-tc.since).Format(time.RFC3339),
			}
			expected := 0.2
			if tc.boost {
				expected += 0.1
			}
			assert.InDelta(t, expected, scorer.Score(record, now), 1e-9)
		})
	}
}

// A stale mastered question must still rank below an unseen one.
func TestStaleMasteredStaysBelowUnseen(t *testing.T) {
	t.Parallel()
	scorer := NewScorer()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	stale := &domain.QuestionRecord{
		Attempts: 20,
		Correct:  20,
		LastSeen: now.Add(-90 * 24 * time.Hour).Format(time.RFC3339),
	}
	assert.Less(t, scorer.Score(stale, now), scorer.Score(nil, now))
}

// Struggling questions outrank mastered ones regardless of recency, per
// the jitter-free ordering guarantee.
func TestStrugglingOutranksMastered(t *testing.T) {
	t.Parallel()
	scorer := NewScorer()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-time.Hour).Format(time.RFC3339)

	struggling := &domain.QuestionRecord{Attempts: 5, Correct: 1, LastSeen: recent}
	mastered := &domain.QuestionRecord{Attempts: 10, Correct: 9, LastSeen: recent}

	assert.Greater(t, scorer.Score(struggling, now), scorer.Score(mastered, now))
}

func TestScoreUnparseableLastSeen(t *testing.T) {
	t.Parallel()
	scorer := NewScorer()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	record := &domain.QuestionRecord{Attempts: 10, Correct: 9, LastSeen: "not-a-timestamp"}
	assert.InDelta(t, 0.2, scorer.Score(record, now), 1e-9, "corrupt timestamp must not trigger the boost")
}
