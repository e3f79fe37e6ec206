// Package selection picks the drill items to serve in a practice session.
// It scores an entire candidate pool against the learner's per-question
// history, applies multiplicative jitter so ties and near-ties do not
// produce a frozen ordering, ranks, truncates to the requested count and
// returns the subset in shuffled presentation order together with the
// stable question identifiers used to record future answers.
package selection

import (
	"context"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/wortwahl/wortwahl-api/internal/domain"
	"github.com/wortwahl/wortwahl-api/internal/domain/priority"
)

// Default multiplicative jitter range applied to base scores.
const (
	defaultJitterMin = 0.8
	defaultJitterMax = 1.2
)

// QuestionStatsReader provides the attempt history the selector scores
// against. Implementations degrade to an empty map when nothing has been
// persisted yet.
type QuestionStatsReader interface {
	GetAll(ctx context.Context) (domain.QuestionStatsMap, error)
}

// Selection is the result of one selection call. Exercises and QuestionIDs
// are index-aligned: QuestionIDs[i] identifies Exercises[i] for answer
// recording.
type Selection struct {
	Exercises   []domain.Exercise
	QuestionIDs []string
}

// scoredCandidate pairs a pool item with its jittered score during ranking.
type scoredCandidate struct {
	exercise domain.Exercise
	id       string
	score    float64
}

// Selector orchestrates priority scoring over a content pool. One
// Selector is shared by all requests; randMu serializes draws from rand,
// which is not safe for concurrent use.
type Selector struct {
	stats     QuestionStatsReader
	scorer    *priority.Scorer
	logger    *slog.Logger
	randMu    sync.Mutex
	rand      *rand.Rand
	jitterMin float64
	jitterMax float64
	now       func() time.Time
}

// NewSelector creates a Selector. If logger is nil, the default logger is
// used.
func NewSelector(stats QuestionStatsReader, scorer *priority.Scorer, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{
		stats:     stats,
		scorer:    scorer,
		logger:    logger.With(slog.String("component", "selector")),
		rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		jitterMin: defaultJitterMin,
		jitterMax: defaultJitterMax,
		now:       time.Now,
	}
}

// Select returns min(count, len(pool)) items from the pool, biased toward
// high-priority questions and shuffled into presentation order. The stats
// map is fetched once for the whole pool. An empty pool or non-positive
// count yields an empty, non-nil result.
//
// Selection is intentionally not deterministic: jitter reshuffles ties and
// near-ties, and the final shuffle decouples presentation order from
// priority rank.
func (s *Selector) Select(ctx context.Context, mode domain.Mode, pool []domain.Exercise, count int) (*Selection, error) {
	if len(pool) == 0 || count <= 0 {
		return &Selection{Exercises: []domain.Exercise{}, QuestionIDs: []string{}}, nil
	}

	// History read failures degrade to everything-unseen rather than
	// failing the drill request.
	statsMap, err := s.stats.GetAll(ctx)
	if err != nil {
		s.logger.Warn("failed to read question stats, selecting without history",
			slog.String("mode", mode.String()),
			slog.String("error", err.Error()))
		statsMap = domain.QuestionStatsMap{}
	}

	now := s.now()
	candidates := make([]scoredCandidate, len(pool))
	for i, exercise := range pool {
		id := domain.QuestionID(mode, i)
		base := s.scoreFor(statsMap, id, now)
		candidates[i] = scoredCandidate{
			exercise: exercise,
			id:       id,
			score:    base * s.jitter(),
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	if count > len(candidates) {
		count = len(candidates)
	}
	picked := shuffleWith(candidates[:count], s.intn)

	result := &Selection{
		Exercises:   make([]domain.Exercise, len(picked)),
		QuestionIDs: make([]string, len(picked)),
	}
	for i, c := range picked {
		result.Exercises[i] = c.exercise
		result.QuestionIDs[i] = c.id
	}

	s.logger.Debug("selected exercises",
		slog.String("mode", mode.String()),
		slog.Int("pool_size", len(pool)),
		slog.Int("selected", len(picked)))

	return result, nil
}

// scoreFor computes the jitter-free base score for one question id.
func (s *Selector) scoreFor(statsMap domain.QuestionStatsMap, id string, now time.Time) float64 {
	record, ok := statsMap[id]
	if !ok {
		return s.scorer.Score(nil, now)
	}
	return s.scorer.Score(&record, now)
}

// jitter draws a uniform multiplier in [jitterMin, jitterMax).
func (s *Selector) jitter() float64 {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return s.jitterMin + s.rand.Float64()*(s.jitterMax-s.jitterMin)
}

// intn is rand.Intn behind the selector's RNG lock.
func (s *Selector) intn(n int) int {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return s.rand.Intn(n)
}
