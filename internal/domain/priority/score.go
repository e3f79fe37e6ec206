package priority

import (
	"time"

	"github.com/wortwahl/wortwahl-api/internal/domain"
)

// Scorer computes selection-priority scores from question attempt history.
type Scorer struct {
	params *Params
}

// NewScorer creates a Scorer with default parameters.
func NewScorer() *Scorer {
	return &Scorer{params: NewDefaultParams()}
}

// NewScorerWithParams creates a Scorer with custom parameters.
func NewScorerWithParams(params *Params) *Scorer {
	return &Scorer{params: params}
}

// Score returns the selection priority for a question given its attempt
// history. A nil record or one with zero attempts scores UnseenScore
// exactly. Otherwise the historical accuracy picks one of three tiers,
// and a fixed boost is added when the question has not been seen for
// StaleAfter or longer relative to now.
//
// Higher scores mean the question should be served sooner. The result is
// deterministic given (record, now).
func (s *Scorer) Score(record *domain.QuestionRecord, now time.Time) float64 {
	if record == nil || record.Attempts == 0 {
		return s.params.UnseenScore
	}

	var base float64
	switch accuracy := record.Accuracy(); {
	case accuracy <= s.params.StrugglingThreshold:
		base = s.params.StrugglingScore
	case accuracy <= s.params.MasteredThreshold:
		base = s.params.MediumScore
	default:
		base = s.params.MasteredScore
	}

	if lastSeen, ok := record.LastSeenTime(); ok {
		if now.Sub(lastSeen) >= s.params.StaleAfter {
			base += s.params.StaleBoost
		}
	}

	return base
}
