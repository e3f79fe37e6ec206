// Package priority implements the selection-priority scoring used to bias
// drill selection toward questions the learner struggles with or has not
// seen recently. Scoring is deterministic; the randomized jitter applied on
// top of it lives in the selection package so the two can be tested
// independently.
package priority

import "time"

// Params defines all configurable parameters for priority scoring.
type Params struct {
	// UnseenScore is assigned to questions with no attempt history. It is
	// the highest tier: unseen questions always outrank seen ones before
	// jitter.
	UnseenScore float64

	// Accuracy tier scores. A seen question falls into exactly one tier
	// based on its historical accuracy.
	StrugglingScore float64 // accuracy <= StrugglingThreshold
	MediumScore     float64 // StrugglingThreshold < accuracy <= MasteredThreshold
	MasteredScore   float64 // accuracy > MasteredThreshold

	// Tier boundaries.
	StrugglingThreshold float64
	MasteredThreshold   float64

	// StaleAfter is how long a question must go unseen before the recency
	// boost applies; StaleBoost is added to the base tier when it does.
	StaleAfter time.Duration
	StaleBoost float64
}

// NewDefaultParams creates a Params instance with the standard values. The
// maximum score for a seen question is StrugglingScore + StaleBoost = 0.9,
// below UnseenScore, so unseen questions always rank first before jitter.
func NewDefaultParams() *Params {
	return &Params{
		UnseenScore:         1.0,
		StrugglingScore:     0.8,
		MediumScore:         0.5,
		MasteredScore:       0.2,
		StrugglingThreshold: 0.5,
		MasteredThreshold:   0.8,
		StaleAfter:          7 * 24 * time.Hour,
		StaleBoost:          0.1,
	}
}
